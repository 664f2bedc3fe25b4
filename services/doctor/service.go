package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	doctorRepo "unicare/database/repository/doctor"
	"unicare/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// availabilityTTL bounds how stale a cached availability read can be.
const availabilityTTL = 30 * time.Second

// NotFoundError reports a missing doctor.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("doctor with id %s not found", e.ID)
}

// DoctorService manages doctor profiles and availability status.
type DoctorService interface {
	Create(doctor *models.Doctor) (*models.Doctor, error)
	GetByID(id string) (*models.Doctor, error)
	List() ([]models.Doctor, error)
	Update(doctor *models.Doctor) error
	Delete(id string) error
	UpdateStatus(id string, req models.DoctorStatusUpdate) error
	// Availability returns the generated slots for one doctor, optionally
	// narrowed to a single date.
	Availability(id, date string) (map[string][]string, error)
}

// DefaultDoctorService is the production implementation. Cache is optional;
// when nil every availability read goes to the store.
type DefaultDoctorService struct {
	Repo   doctorRepo.DoctorRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

func (s *DefaultDoctorService) Create(doctor *models.Doctor) (*models.Doctor, error) {
	doctor.ID = uuid.New().String()
	if doctor.Status == "" {
		doctor.Status = models.DoctorAvailable
		doctor.IsAvailable = true
	}
	if doctor.Schedule == nil {
		doctor.Schedule = map[string][]string{}
	}
	if err := s.Repo.Create(doctor); err != nil {
		return nil, err
	}
	s.Logger.Info("doctor created",
		zap.String("doctorId", doctor.ID), zap.String("specialty", doctor.Specialty))
	return doctor, nil
}

func (s *DefaultDoctorService) GetByID(id string) (*models.Doctor, error) {
	doctor, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, &NotFoundError{ID: id}
	}
	return doctor, nil
}

func (s *DefaultDoctorService) List() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

func (s *DefaultDoctorService) Update(doctor *models.Doctor) error {
	existing, err := s.Repo.GetByID(doctor.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{ID: doctor.ID}
	}
	// The schedule map is owned by the materializer.
	doctor.Schedule = existing.Schedule
	doctor.Rating = existing.Rating
	doctor.RatingCount = existing.RatingCount
	return s.Repo.Update(doctor)
}

func (s *DefaultDoctorService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultDoctorService) UpdateStatus(id string, req models.DoctorStatusUpdate) error {
	switch req.Status {
	case models.DoctorAvailable, models.DoctorBusy, models.DoctorOnLeave:
	default:
		return fmt.Errorf("unknown doctor status %q", req.Status)
	}
	available := req.Status == models.DoctorAvailable
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	return s.Repo.UpdateStatus(id, req.Status, available)
}

func (s *DefaultDoctorService) Availability(id, date string) (map[string][]string, error) {
	ctx := context.Background()
	cacheKey := "doctor:availability:" + id + ":" + date

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached map[string][]string
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	doctor, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	result := doctor.Schedule
	if date != "" {
		slots, ok := doctor.Schedule[date]
		if !ok {
			result = map[string][]string{}
		} else {
			result = map[string][]string{date: slots}
		}
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, raw, availabilityTTL).Err(); err != nil {
				s.Logger.Debug("availability cache write failed", zap.Error(err))
			}
		}
	}
	return result, nil
}
