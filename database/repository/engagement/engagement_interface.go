package engagementRepo

import "unicare/models"

// CampaignRepository stores announcement campaigns.
type CampaignRepository interface {
	Create(campaign *models.Campaign) error
	GetByID(id string) (*models.Campaign, error)
	GetAll() ([]models.Campaign, error)
	SetStatus(id, status string) error
	Delete(id string) error
}

// NotificationRepository stores per-user notification records.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByUser(userID string) ([]models.Notification, error)
	MarkSent(id string) error
	MarkRead(id string) error
}

// FeedbackRepository stores patient feedback and computes aggregates.
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	// GetByAppointment returns existing feedback for the appointment, nil if none.
	GetByAppointment(appointmentID string) (*models.Feedback, error)
	GetAll() ([]models.Feedback, error)
	// AggregateForDoctor computes count and average rating for one doctor.
	AggregateForDoctor(doctorID string) (*models.DoctorRating, error)
}

// RecordRepository stores confidential medical records.
type RecordRepository interface {
	Create(record *models.MedicalRecord) error
	GetByPatient(patientID string) ([]models.MedicalRecord, error)
	GetByID(id string) (*models.MedicalRecord, error)
	Delete(id string) error
}
