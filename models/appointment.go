package models

import "time"

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment is a booked slot for one patient with one doctor.
// Active mirrors "status != cancelled" and backs the unique partial index
// that makes concurrent double-booking impossible; cancelling flips it off,
// which reopens the slot.
type Appointment struct {
	ID               string    `bson:"id" json:"id"`
	PatientID        string    `bson:"patientId" json:"patient_id"`
	DoctorID         string    `bson:"doctorId" json:"doctor_id"`
	AppointmentDate  string    `bson:"appointmentDate" json:"appointment_date"` // "YYYY-MM-DD"
	AppointmentTime  string    `bson:"appointmentTime" json:"appointment_time"` // "HH:MM"
	Status           string    `bson:"status" json:"status"`
	Active           bool      `bson:"active" json:"-"`
	ConsultationType string    `bson:"consultationType" json:"consultation_type"`
	Symptoms         string    `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"created_at"`
}

// BookAppointmentRequest is the patient-facing booking payload.
type BookAppointmentRequest struct {
	DoctorID         string `json:"doctor_id" binding:"required"`
	AppointmentDate  string `json:"appointment_date" binding:"required"`
	AppointmentTime  string `json:"appointment_time" binding:"required"`
	ConsultationType string `json:"consultation_type"`
	Symptoms         string `json:"symptoms"`
}
