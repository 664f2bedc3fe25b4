package models

import "time"

// Campaign statuses.
const (
	CampaignDraft    = "draft"
	CampaignActive   = "active"
	CampaignFinished = "finished"
)

// Campaign audiences.
const (
	AudienceAll      = "all"
	AudiencePatients = "patients"
	AudienceDoctors  = "doctors"
)

// Campaign is an announcement fanned out to users as notifications.
type Campaign struct {
	ID        string     `bson:"id" json:"id"`
	Title     string     `bson:"title" json:"title"`
	Message   string     `bson:"message" json:"message"`
	Audience  string     `bson:"audience" json:"audience"`
	Status    string     `bson:"status" json:"status"`
	StartsAt  *time.Time `bson:"startsAt,omitempty" json:"starts_at,omitempty"`
	EndsAt    *time.Time `bson:"endsAt,omitempty" json:"ends_at,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"created_at"`
}

// CampaignRequest is the admin payload for campaign creation.
type CampaignRequest struct {
	Title    string     `json:"title" binding:"required"`
	Message  string     `json:"message" binding:"required"`
	Audience string     `json:"audience"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

// Notification kinds.
const (
	NotificationCampaign = "campaign"
	NotificationReminder = "reminder"
	NotificationSystem   = "system"
)

// Notification is a per-user message record, delivered best-effort via push.
type Notification struct {
	ID        string     `bson:"id" json:"id"`
	UserID    string     `bson:"userId" json:"user_id"`
	Title     string     `bson:"title" json:"title"`
	Body      string     `bson:"body" json:"body"`
	Kind      string     `bson:"kind" json:"kind"`
	Read      bool       `bson:"read" json:"read"`
	SentAt    *time.Time `bson:"sentAt,omitempty" json:"sent_at,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"created_at"`
}

// Feedback is a patient rating for a completed appointment.
type Feedback struct {
	ID            string    `bson:"id" json:"id"`
	AppointmentID string    `bson:"appointmentId" json:"appointment_id"`
	DoctorID      string    `bson:"doctorId" json:"doctor_id"`
	PatientID     string    `bson:"patientId" json:"patient_id"`
	Rating        int       `bson:"rating" json:"rating"` // 1..5
	Comment       string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"created_at"`
}

// FeedbackRequest is the patient payload for submitting feedback.
type FeedbackRequest struct {
	AppointmentID string `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}

// DoctorRating is the aggregated feedback for one doctor.
type DoctorRating struct {
	DoctorID string  `bson:"_id" json:"doctor_id"`
	Count    int     `bson:"count" json:"count"`
	Average  float64 `bson:"average" json:"average"`
}

// MedicalRecord is a confidential patient document entry. Attachments hold
// URLs only; upload mechanics live outside this service.
type MedicalRecord struct {
	ID             string    `bson:"id" json:"id"`
	PatientID      string    `bson:"patientId" json:"patient_id"`
	RecordType     string    `bson:"recordType" json:"record_type"` // consultation, lab_report, prescription
	DoctorID       string    `bson:"doctorId,omitempty" json:"doctor_id,omitempty"`
	Title          string    `bson:"title" json:"title"`
	Content        string    `bson:"content" json:"content"`
	Attachments    []string  `bson:"attachments" json:"attachments"`
	IsConfidential bool      `bson:"isConfidential" json:"is_confidential"`
	Date           time.Time `bson:"date" json:"date"`
}
