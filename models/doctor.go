package models

import "time"

// Doctor statuses.
const (
	DoctorAvailable = "available"
	DoctorBusy      = "busy"
	DoctorOnLeave   = "on_leave"
)

// Doctor is a clinic doctor profile. The embedded Schedule maps ISO dates
// ("2025-03-20") to chronologically ordered bookable slot starts ("09:00").
// Only the schedule materializer writes Schedule; an empty slice for a date
// is a valid value meaning "working day with no free slots generated".
type Doctor struct {
	ID              string              `bson:"id" json:"id"`
	UserID          string              `bson:"userId" json:"user_id"`
	Name            string              `bson:"name" json:"name"`
	Specialty       string              `bson:"specialty" json:"specialty"`
	Qualification   string              `bson:"qualification" json:"qualification"`
	ExperienceYears int                 `bson:"experienceYears" json:"experience_years"`
	ConsultationFee float64             `bson:"consultationFee" json:"consultation_fee"`
	IsAvailable     bool                `bson:"isAvailable" json:"is_available"`
	Status          string              `bson:"status" json:"status"`
	Schedule        map[string][]string `bson:"schedule" json:"schedule"`
	Rating          float64             `bson:"rating" json:"rating"`
	RatingCount     int                 `bson:"ratingCount" json:"rating_count"`
	CreatedAt       time.Time           `bson:"createdAt" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updated_at"`
}

// DoctorStatusUpdate is the admin payload for changing availability.
type DoctorStatusUpdate struct {
	Status      string `json:"status" binding:"required"`
	IsAvailable *bool  `json:"is_available"`
}
