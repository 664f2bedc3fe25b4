package scheduleRepo

import "unicare/models"

// TemplateRepository stores weekly availability templates.
type TemplateRepository interface {
	Create(template *models.ScheduleTemplate) error
	GetByID(id string) (*models.ScheduleTemplate, error)
	GetByDoctor(doctorID string) ([]models.ScheduleTemplate, error)
	Update(template *models.ScheduleTemplate) error
	Delete(id string) error
}

// HolidayRepository stores clinic-wide date overrides.
type HolidayRepository interface {
	Upsert(holiday *models.Holiday) error
	// GetByDate returns zero or one holiday record for the date.
	GetByDate(date string) (*models.Holiday, error)
	// GetRange returns holiday records with start <= date <= end.
	GetRange(start, end string) ([]models.Holiday, error)
	GetAll() ([]models.Holiday, error)
	Delete(id string) error
}

// LeaveRepository stores doctor leave requests.
type LeaveRepository interface {
	Create(leave *models.DoctorLeave) error
	GetByID(id string) (*models.DoctorLeave, error)
	GetByDoctor(doctorID string) ([]models.DoctorLeave, error)
	// GetApprovedInRange returns approved leaves for the doctor whose
	// inclusive [startDate, endDate] overlaps [start, end].
	GetApprovedInRange(doctorID, start, end string) ([]models.DoctorLeave, error)
	SetStatus(id, status string) error
	Delete(id string) error
}
