package feedback

import (
	"fmt"

	appointmentRepo "unicare/database/repository/appointment"
	doctorRepo "unicare/database/repository/doctor"
	engagementRepo "unicare/database/repository/engagement"
	"unicare/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidationError reports feedback that fails domain rules.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FeedbackService accepts patient ratings and keeps the denormalized doctor
// aggregates current.
type FeedbackService interface {
	// Submit records feedback for a completed appointment owned by the
	// patient. One feedback per appointment.
	Submit(patientID string, req models.FeedbackRequest) (*models.Feedback, error)
	ListAll() ([]models.Feedback, error)
	DoctorRating(doctorID string) (*models.DoctorRating, error)
}

// DefaultFeedbackService is the production implementation.
type DefaultFeedbackService struct {
	Feedback     engagementRepo.FeedbackRepository
	Appointments appointmentRepo.AppointmentRepository
	Doctors      doctorRepo.DoctorRepository
	Logger       *zap.Logger
}

func (s *DefaultFeedbackService) Submit(patientID string, req models.FeedbackRequest) (*models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, &ValidationError{Message: "rating must be between 1 and 5"}
	}

	appointment, err := s.Appointments.GetByID(req.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.PatientID != patientID {
		return nil, &ValidationError{Message: fmt.Sprintf("appointment %s not found", req.AppointmentID)}
	}
	if appointment.Status != models.AppointmentCompleted {
		return nil, &ValidationError{Message: "feedback is only accepted for completed appointments"}
	}

	existing, err := s.Feedback.GetByAppointment(req.AppointmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("feedback for appointment %s already submitted", req.AppointmentID)}
	}

	feedback := &models.Feedback{
		ID:            uuid.New().String(),
		AppointmentID: req.AppointmentID,
		DoctorID:      appointment.DoctorID,
		PatientID:     patientID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := s.Feedback.Create(feedback); err != nil {
		return nil, err
	}

	// Refresh the denormalized aggregate on the doctor document. A failure
	// here leaves a stale average until the next submission, which is
	// acceptable; the feedback record itself is already stored.
	if rating, err := s.Feedback.AggregateForDoctor(appointment.DoctorID); err == nil && rating != nil {
		if err := s.Doctors.SetRating(appointment.DoctorID, rating.Average, rating.Count); err != nil {
			s.Logger.Warn("failed to update doctor rating",
				zap.String("doctorId", appointment.DoctorID), zap.Error(err))
		}
	} else if err != nil {
		s.Logger.Warn("failed to aggregate doctor rating",
			zap.String("doctorId", appointment.DoctorID), zap.Error(err))
	}

	return feedback, nil
}

func (s *DefaultFeedbackService) ListAll() ([]models.Feedback, error) {
	return s.Feedback.GetAll()
}

func (s *DefaultFeedbackService) DoctorRating(doctorID string) (*models.DoctorRating, error) {
	return s.Feedback.AggregateForDoctor(doctorID)
}
