package doctorRepo

import "unicare/models"

// DoctorRepository defines methods for doctor data access. MergeSchedule is
// the single write path for the embedded schedule map (the materializer).
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID; nil when not found.
	GetByID(id string) (*models.Doctor, error)
	// GetAll retrieves all doctors.
	GetAll() ([]models.Doctor, error)
	// Create inserts a new doctor record.
	Create(doctor *models.Doctor) error
	// Update modifies an existing doctor record.
	Update(doctor *models.Doctor) error
	// Delete removes a doctor record by its ID.
	Delete(id string) error
	// UpdateStatus sets availability status fields.
	UpdateStatus(id, status string, isAvailable bool) error
	// MergeSchedule replaces the given date keys on the doctor's schedule.
	// Dates absent from generated are left untouched.
	MergeSchedule(id string, generated map[string][]string) error
	// SetRating stores the denormalized feedback aggregate.
	SetRating(id string, average float64, count int) error
}
