package models

import "time"

// Schedule template cadences.
const (
	ScheduleWeekly  = "weekly"
	ScheduleDaily   = "daily"
	ScheduleMonthly = "monthly"
)

// Leave statuses. Only approved leaves block slot generation.
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// BreakInterval is a [Start, End) pause within working hours, both "HH:MM".
// A slot starting exactly at End is valid; one starting at Start is not.
type BreakInterval struct {
	Start string `bson:"start" json:"start" binding:"required"`
	End   string `bson:"end" json:"end" binding:"required"`
}

// ScheduleTemplate is a reusable weekly availability pattern for one doctor.
// DaysOfWeek uses 0=Monday .. 6=Sunday; the authoring UI and the generator
// share this single convention.
type ScheduleTemplate struct {
	ID           string          `bson:"id" json:"id"`
	DoctorID     string          `bson:"doctorId" json:"doctor_id"`
	TemplateName string          `bson:"templateName" json:"template_name"`
	ScheduleType string          `bson:"scheduleType" json:"schedule_type"`
	DaysOfWeek   []int           `bson:"daysOfWeek" json:"days_of_week"`
	StartTime    string          `bson:"startTime" json:"start_time"`
	EndTime      string          `bson:"endTime" json:"end_time"`
	SlotDuration int             `bson:"slotDuration" json:"slot_duration"` // minutes
	BreakTimes   []BreakInterval `bson:"breakTimes" json:"break_times"`
	IsActive     bool            `bson:"isActive" json:"is_active"`
	CreatedAt    time.Time       `bson:"createdAt" json:"created_at"`
}

// DoctorLeave is a doctor unavailability request over an inclusive date range.
type DoctorLeave struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctorId" json:"doctor_id"`
	StartDate string    `bson:"startDate" json:"start_date"` // "YYYY-MM-DD"
	EndDate   string    `bson:"endDate" json:"end_date"`     // inclusive
	Status    string    `bson:"status" json:"status"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

// Holiday marks a clinic-wide date override. A record with IsWorkingDay=false
// blocks generation for that date regardless of templates; absence of a
// record means a normal working day.
type Holiday struct {
	ID           string    `bson:"id" json:"id"`
	Date         string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	IsWorkingDay bool      `bson:"isWorkingDay" json:"is_working_day"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
}

// GenerateScheduleRequest asks for slot materialization over a date range.
type GenerateScheduleRequest struct {
	DoctorID   string `json:"doctor_id" binding:"required"`
	TemplateID string `json:"template_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

// CreateTemplateRequest is the typed payload for template creation.
type CreateTemplateRequest struct {
	DoctorID     string          `json:"doctor_id" binding:"required"`
	TemplateName string          `json:"template_name" binding:"required"`
	ScheduleType string          `json:"schedule_type"`
	DaysOfWeek   []int           `json:"days_of_week" binding:"required"`
	StartTime    string          `json:"start_time" binding:"required"`
	EndTime      string          `json:"end_time" binding:"required"`
	SlotDuration int             `json:"slot_duration" binding:"required"`
	BreakTimes   []BreakInterval `json:"break_times"`
	IsActive     *bool           `json:"is_active"`
}

// LeaveRequest creates a doctor leave record.
type LeaveRequest struct {
	DoctorID  string `json:"doctor_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

// HolidayRequest creates a clinic holiday record.
type HolidayRequest struct {
	Date         string `json:"date" binding:"required"`
	Name         string `json:"name"`
	IsWorkingDay bool   `json:"is_working_day"`
}
