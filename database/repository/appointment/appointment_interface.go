package appointmentRepo

import (
	"errors"

	"unicare/models"
)

// ErrDuplicateSlot is returned by Create when another active appointment
// already occupies the same (doctor, date, time) triple. The unique partial
// index makes this check atomic under concurrent inserts.
var ErrDuplicateSlot = errors.New("slot already booked")

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment; ErrDuplicateSlot on an active clash.
	Create(appointment *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID; nil when not found.
	GetByID(id string) (*models.Appointment, error)
	// FindActive returns the active appointment on the triple, nil if free.
	FindActive(doctorID, date, timeOfDay string) (*models.Appointment, error)
	// GetByPatient returns all appointments for a patient.
	GetByPatient(patientID string) ([]models.Appointment, error)
	// GetByDate returns all appointments on a calendar date.
	GetByDate(date string) ([]models.Appointment, error)
	// SetStatus transitions the appointment; cancelling clears the active flag.
	SetStatus(id, status string) error
}
