package booking

import (
	"errors"
	"time"

	appointmentRepo "unicare/database/repository/appointment"
	doctorRepo "unicare/database/repository/doctor"
	"unicare/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler enqueues an appointment reminder to be delivered near the
// slot time. Best-effort: booking succeeds even when scheduling the reminder
// fails.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(appointment *models.Appointment, fireAt time.Time) error
}

// BookingService books appointments against generated schedules.
type BookingService interface {
	// Book validates the slot against the doctor's schedule and creates the
	// appointment. Fails with SlotNotAvailableError or SlotAlreadyBookedError.
	Book(patientID string, req models.BookAppointmentRequest) (*models.Appointment, error)
	// Cancel releases the slot by deactivating the appointment.
	Cancel(appointmentID, requesterID string, admin bool) error
	Complete(appointmentID string) error
	GetForPatient(patientID string) ([]models.Appointment, error)
	// DailyBookings lists all appointments on a date for the admin report.
	DailyBookings(date string) ([]models.Appointment, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Appointments appointmentRepo.AppointmentRepository
	Doctors      doctorRepo.DoctorRepository
	Reminders    ReminderScheduler
	Logger       *zap.Logger
}

// Book runs the conflict guard: the slot must appear in the doctor's current
// schedule (exact HH:MM match) and must not be held by another active
// appointment. The existence check is advisory; the unique partial index on
// (doctorId, appointmentDate, appointmentTime) over active appointments is
// what makes concurrent double-booking impossible, and a duplicate-key
// rejection from the store is reported as SlotAlreadyBookedError.
func (s *DefaultBookingService) Book(patientID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	doctor, err := s.Doctors.GetByID(req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, &NotFoundError{Resource: "doctor", ID: req.DoctorID}
	}

	slots, ok := doctor.Schedule[req.AppointmentDate]
	if !ok || !containsSlot(slots, req.AppointmentTime) {
		return nil, &SlotNotAvailableError{
			DoctorID: req.DoctorID,
			Date:     req.AppointmentDate,
			Time:     req.AppointmentTime,
		}
	}

	existing, err := s.Appointments.FindActive(req.DoctorID, req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &SlotAlreadyBookedError{
			DoctorID: req.DoctorID,
			Date:     req.AppointmentDate,
			Time:     req.AppointmentTime,
		}
	}

	consultationType := req.ConsultationType
	if consultationType == "" {
		consultationType = "regular"
	}

	appointment := &models.Appointment{
		ID:               uuid.New().String(),
		PatientID:        patientID,
		DoctorID:         req.DoctorID,
		AppointmentDate:  req.AppointmentDate,
		AppointmentTime:  req.AppointmentTime,
		Status:           models.AppointmentScheduled,
		Active:           true,
		ConsultationType: consultationType,
		Symptoms:         req.Symptoms,
	}

	if err := s.Appointments.Create(appointment); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			// Lost the race between the existence check and the insert.
			return nil, &SlotAlreadyBookedError{
				DoctorID: req.DoctorID,
				Date:     req.AppointmentDate,
				Time:     req.AppointmentTime,
			}
		}
		return nil, err
	}

	s.scheduleReminder(appointment)

	s.Logger.Info("appointment booked",
		zap.String("appointmentId", appointment.ID),
		zap.String("doctorId", appointment.DoctorID),
		zap.String("slot", appointment.AppointmentDate+" "+appointment.AppointmentTime))
	return appointment, nil
}

// scheduleReminder enqueues a push reminder an hour before the slot.
func (s *DefaultBookingService) scheduleReminder(appointment *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	at, err := time.ParseInLocation("2006-01-02 15:04",
		appointment.AppointmentDate+" "+appointment.AppointmentTime, time.Local)
	if err != nil {
		return
	}
	fireAt := at.Add(-time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}
	if err := s.Reminders.ScheduleAppointmentReminder(appointment, fireAt); err != nil {
		s.Logger.Warn("failed to schedule appointment reminder",
			zap.String("appointmentId", appointment.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) Cancel(appointmentID, requesterID string, admin bool) error {
	appointment, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return &NotFoundError{Resource: "appointment", ID: appointmentID}
	}
	if !admin && appointment.PatientID != requesterID {
		return &NotFoundError{Resource: "appointment", ID: appointmentID}
	}
	return s.Appointments.SetStatus(appointmentID, models.AppointmentCancelled)
}

func (s *DefaultBookingService) Complete(appointmentID string) error {
	appointment, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return &NotFoundError{Resource: "appointment", ID: appointmentID}
	}
	return s.Appointments.SetStatus(appointmentID, models.AppointmentCompleted)
}

func (s *DefaultBookingService) GetForPatient(patientID string) ([]models.Appointment, error) {
	return s.Appointments.GetByPatient(patientID)
}

func (s *DefaultBookingService) DailyBookings(date string) ([]models.Appointment, error) {
	return s.Appointments.GetByDate(date)
}

func containsSlot(slots []string, timeOfDay string) bool {
	for _, slot := range slots {
		if slot == timeOfDay {
			return true
		}
	}
	return false
}
