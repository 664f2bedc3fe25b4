package scheduling

import (
	"sort"
	"time"

	doctorRepo "unicare/database/repository/doctor"
	scheduleRepo "unicare/database/repository/schedule"
	"unicare/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateResult summarizes one materialization run.
type GenerateResult struct {
	DoctorID       string   `json:"doctor_id"`
	TemplateID     string   `json:"template_id"`
	GeneratedDates []string `json:"generated_dates"`
	TotalSlots     int      `json:"total_slots"`
}

// ScheduleService manages availability templates, exception sources and
// schedule materialization.
type ScheduleService interface {
	CreateTemplate(req models.CreateTemplateRequest) (*models.ScheduleTemplate, error)
	GetTemplatesByDoctor(doctorID string) ([]models.ScheduleTemplate, error)
	DeleteTemplate(id string) error

	// GenerateSchedule runs the slot generator over the requested range and
	// merges the output onto the doctor's persisted schedule.
	GenerateSchedule(req models.GenerateScheduleRequest) (*GenerateResult, error)

	UpsertHoliday(req models.HolidayRequest) (*models.Holiday, error)
	ListHolidays() ([]models.Holiday, error)
	DeleteHoliday(id string) error

	RequestLeave(req models.LeaveRequest) (*models.DoctorLeave, error)
	ListLeaves(doctorID string) ([]models.DoctorLeave, error)
	DecideLeave(id, status string) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Templates scheduleRepo.TemplateRepository
	Holidays  scheduleRepo.HolidayRepository
	Leaves    scheduleRepo.LeaveRepository
	Doctors   doctorRepo.DoctorRepository
	Logger    *zap.Logger
}

func (s *DefaultScheduleService) CreateTemplate(req models.CreateTemplateRequest) (*models.ScheduleTemplate, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	scheduleType := req.ScheduleType
	if scheduleType == "" {
		scheduleType = models.ScheduleWeekly
	}

	tmpl := &models.ScheduleTemplate{
		ID:           uuid.New().String(),
		DoctorID:     req.DoctorID,
		TemplateName: req.TemplateName,
		ScheduleType: scheduleType,
		DaysOfWeek:   req.DaysOfWeek,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		SlotDuration: req.SlotDuration,
		BreakTimes:   req.BreakTimes,
		IsActive:     active,
	}

	// Reject malformed templates at the boundary, before they can reach
	// the generator.
	if _, _, _, err := validateTemplate(tmpl); err != nil {
		return nil, err
	}

	doctor, err := s.Doctors.GetByID(req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, &NotFoundError{Resource: "doctor", ID: req.DoctorID}
	}

	if err := s.Templates.Create(tmpl); err != nil {
		return nil, err
	}
	s.Logger.Info("schedule template created",
		zap.String("templateId", tmpl.ID), zap.String("doctorId", tmpl.DoctorID))
	return tmpl, nil
}

func (s *DefaultScheduleService) GetTemplatesByDoctor(doctorID string) ([]models.ScheduleTemplate, error) {
	return s.Templates.GetByDoctor(doctorID)
}

func (s *DefaultScheduleService) DeleteTemplate(id string) error {
	return s.Templates.Delete(id)
}

// GenerateSchedule resolves the template, gathers the exception sources for
// the range, runs the pure generator and hands the result to the
// materializer. Dates skipped by the generator are absent from the merge, so
// any previously generated slots on those dates persist untouched.
func (s *DefaultScheduleService) GenerateSchedule(req models.GenerateScheduleRequest) (*GenerateResult, error) {
	tmpl, err := s.Templates.GetByID(req.TemplateID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, &NotFoundError{Resource: "template", ID: req.TemplateID}
	}
	if tmpl.DoctorID != req.DoctorID {
		return nil, newValidationError("template %s does not belong to doctor %s", req.TemplateID, req.DoctorID)
	}
	if !tmpl.IsActive {
		return nil, newValidationError("template %s is inactive", req.TemplateID)
	}

	doctor, err := s.Doctors.GetByID(req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, &NotFoundError{Resource: "doctor", ID: req.DoctorID}
	}

	holidayRecords, err := s.Holidays.GetRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	holidays := make(map[string]models.Holiday, len(holidayRecords))
	for _, h := range holidayRecords {
		holidays[h.Date] = h
	}

	leaves, err := s.Leaves.GetApprovedInRange(req.DoctorID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	generated, err := Generate(tmpl, holidays, leaves, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if err := s.Doctors.MergeSchedule(req.DoctorID, generated); err != nil {
		return nil, err
	}

	result := &GenerateResult{
		DoctorID:   req.DoctorID,
		TemplateID: req.TemplateID,
	}
	for date, slots := range generated {
		result.GeneratedDates = append(result.GeneratedDates, date)
		result.TotalSlots += len(slots)
	}
	sort.Strings(result.GeneratedDates)

	s.Logger.Info("doctor schedule generated",
		zap.String("doctorId", req.DoctorID),
		zap.String("range", req.StartDate+".."+req.EndDate),
		zap.Int("dates", len(result.GeneratedDates)),
		zap.Int("slots", result.TotalSlots))
	return result, nil
}

func (s *DefaultScheduleService) UpsertHoliday(req models.HolidayRequest) (*models.Holiday, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, newValidationError("date %q is not a valid YYYY-MM-DD date", req.Date)
	}
	holiday := &models.Holiday{
		ID:           uuid.New().String(),
		Date:         req.Date,
		Name:         req.Name,
		IsWorkingDay: req.IsWorkingDay,
	}
	if err := s.Holidays.Upsert(holiday); err != nil {
		return nil, err
	}
	return holiday, nil
}

func (s *DefaultScheduleService) ListHolidays() ([]models.Holiday, error) {
	return s.Holidays.GetAll()
}

func (s *DefaultScheduleService) DeleteHoliday(id string) error {
	return s.Holidays.Delete(id)
}

func (s *DefaultScheduleService) RequestLeave(req models.LeaveRequest) (*models.DoctorLeave, error) {
	if _, err := time.Parse(dateLayout, req.StartDate); err != nil {
		return nil, newValidationError("start_date %q is not a valid YYYY-MM-DD date", req.StartDate)
	}
	if _, err := time.Parse(dateLayout, req.EndDate); err != nil {
		return nil, newValidationError("end_date %q is not a valid YYYY-MM-DD date", req.EndDate)
	}
	if req.StartDate > req.EndDate {
		return nil, newValidationError("leave start_date %s is after end_date %s", req.StartDate, req.EndDate)
	}

	doctor, err := s.Doctors.GetByID(req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, &NotFoundError{Resource: "doctor", ID: req.DoctorID}
	}

	leave := &models.DoctorLeave{
		ID:        uuid.New().String(),
		DoctorID:  req.DoctorID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    models.LeavePending,
		Reason:    req.Reason,
	}
	if err := s.Leaves.Create(leave); err != nil {
		return nil, err
	}
	return leave, nil
}

func (s *DefaultScheduleService) ListLeaves(doctorID string) ([]models.DoctorLeave, error) {
	return s.Leaves.GetByDoctor(doctorID)
}

func (s *DefaultScheduleService) DecideLeave(id, status string) error {
	if status != models.LeaveApproved && status != models.LeaveRejected {
		return newValidationError("leave status must be approved or rejected, got %q", status)
	}
	leave, err := s.Leaves.GetByID(id)
	if err != nil {
		return err
	}
	if leave == nil {
		return &NotFoundError{Resource: "leave", ID: id}
	}
	return s.Leaves.SetStatus(id, status)
}
