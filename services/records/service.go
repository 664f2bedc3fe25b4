package records

import (
	"fmt"

	engagementRepo "unicare/database/repository/engagement"
	userRepo "unicare/database/repository/user"
	"unicare/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccessDeniedError means the patient has not been approved for record access.
type AccessDeniedError struct {
	PatientID string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("patient %s is not approved for medical record access", e.PatientID)
}

// RecordService manages confidential medical records. Patients read their own
// records only after an admin approves their account.
type RecordService interface {
	Create(record *models.MedicalRecord) (*models.MedicalRecord, error)
	// GetForPatient enforces the approval gate unless asAdmin is set.
	GetForPatient(patientID string, asAdmin bool) ([]models.MedicalRecord, error)
	Delete(id string) error
}

// DefaultRecordService is the production implementation.
type DefaultRecordService struct {
	Records engagementRepo.RecordRepository
	Users   userRepo.UserRepository
	Logger  *zap.Logger
}

func (s *DefaultRecordService) Create(record *models.MedicalRecord) (*models.MedicalRecord, error) {
	record.ID = uuid.New().String()
	if record.Attachments == nil {
		record.Attachments = []string{}
	}
	if err := s.Records.Create(record); err != nil {
		return nil, err
	}
	s.Logger.Info("medical record created",
		zap.String("recordId", record.ID), zap.String("patientId", record.PatientID))
	return record, nil
}

func (s *DefaultRecordService) GetForPatient(patientID string, asAdmin bool) ([]models.MedicalRecord, error) {
	if !asAdmin {
		u, err := s.Users.GetByID(patientID)
		if err != nil {
			return nil, err
		}
		if u == nil || !u.IsApproved {
			return nil, &AccessDeniedError{PatientID: patientID}
		}
	}
	return s.Records.GetByPatient(patientID)
}

func (s *DefaultRecordService) Delete(id string) error {
	return s.Records.Delete(id)
}
