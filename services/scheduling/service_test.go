package scheduling

import (
	"errors"
	"testing"

	"unicare/models"

	"go.uber.org/zap"
)

type fakeTemplateRepo struct {
	templates map[string]*models.ScheduleTemplate
}

func (r *fakeTemplateRepo) Create(tmpl *models.ScheduleTemplate) error {
	r.templates[tmpl.ID] = tmpl
	return nil
}

func (r *fakeTemplateRepo) GetByID(id string) (*models.ScheduleTemplate, error) {
	return r.templates[id], nil
}

func (r *fakeTemplateRepo) GetByDoctor(doctorID string) ([]models.ScheduleTemplate, error) {
	var out []models.ScheduleTemplate
	for _, t := range r.templates {
		if t.DoctorID == doctorID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTemplateRepo) Update(tmpl *models.ScheduleTemplate) error {
	r.templates[tmpl.ID] = tmpl
	return nil
}

func (r *fakeTemplateRepo) Delete(id string) error {
	delete(r.templates, id)
	return nil
}

type fakeHolidayRepo struct {
	holidays []models.Holiday
}

func (r *fakeHolidayRepo) Upsert(h *models.Holiday) error {
	r.holidays = append(r.holidays, *h)
	return nil
}

func (r *fakeHolidayRepo) GetByDate(date string) (*models.Holiday, error) {
	for i := range r.holidays {
		if r.holidays[i].Date == date {
			return &r.holidays[i], nil
		}
	}
	return nil, nil
}

func (r *fakeHolidayRepo) GetRange(start, end string) ([]models.Holiday, error) {
	var out []models.Holiday
	for _, h := range r.holidays {
		if start <= h.Date && h.Date <= end {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) GetAll() ([]models.Holiday, error) { return r.holidays, nil }
func (r *fakeHolidayRepo) Delete(id string) error            { return nil }

type fakeLeaveRepo struct {
	leaves []models.DoctorLeave
}

func (r *fakeLeaveRepo) Create(l *models.DoctorLeave) error {
	r.leaves = append(r.leaves, *l)
	return nil
}

func (r *fakeLeaveRepo) GetByID(id string) (*models.DoctorLeave, error) {
	for i := range r.leaves {
		if r.leaves[i].ID == id {
			return &r.leaves[i], nil
		}
	}
	return nil, nil
}

func (r *fakeLeaveRepo) GetByDoctor(doctorID string) ([]models.DoctorLeave, error) {
	var out []models.DoctorLeave
	for _, l := range r.leaves {
		if l.DoctorID == doctorID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) GetApprovedInRange(doctorID, start, end string) ([]models.DoctorLeave, error) {
	var out []models.DoctorLeave
	for _, l := range r.leaves {
		if l.DoctorID == doctorID && l.Status == models.LeaveApproved &&
			l.StartDate <= end && l.EndDate >= start {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) SetStatus(id, status string) error {
	for i := range r.leaves {
		if r.leaves[i].ID == id {
			r.leaves[i].Status = status
		}
	}
	return nil
}

func (r *fakeLeaveRepo) Delete(id string) error { return nil }

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
	merged  map[string][]string
}

func (r *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) { return r.doctors[id], nil }

func (r *fakeDoctorRepo) GetAll() ([]models.Doctor, error) { return nil, nil }

func (r *fakeDoctorRepo) Create(d *models.Doctor) error {
	r.doctors[d.ID] = d
	return nil
}

func (r *fakeDoctorRepo) Update(d *models.Doctor) error {
	r.doctors[d.ID] = d
	return nil
}

func (r *fakeDoctorRepo) Delete(id string) error { return nil }

func (r *fakeDoctorRepo) UpdateStatus(id, status string, isAvailable bool) error { return nil }

func (r *fakeDoctorRepo) MergeSchedule(id string, generated map[string][]string) error {
	doctor, ok := r.doctors[id]
	if !ok {
		return errors.New("doctor not found")
	}
	if doctor.Schedule == nil {
		doctor.Schedule = map[string][]string{}
	}
	for date, slots := range generated {
		doctor.Schedule[date] = slots
	}
	r.merged = generated
	return nil
}

func (r *fakeDoctorRepo) SetRating(id string, average float64, count int) error { return nil }

func newTestService() (*DefaultScheduleService, *fakeDoctorRepo, *fakeTemplateRepo, *fakeLeaveRepo, *fakeHolidayRepo) {
	doctors := &fakeDoctorRepo{doctors: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1", Name: "Dr. Menon", Schedule: map[string][]string{}},
	}}
	templates := &fakeTemplateRepo{templates: map[string]*models.ScheduleTemplate{}}
	leaves := &fakeLeaveRepo{}
	holidays := &fakeHolidayRepo{}
	svc := &DefaultScheduleService{
		Templates: templates,
		Holidays:  holidays,
		Leaves:    leaves,
		Doctors:   doctors,
		Logger:    zap.NewNop(),
	}
	return svc, doctors, templates, leaves, holidays
}

func TestGenerateScheduleMergesOntoDoctor(t *testing.T) {
	svc, doctors, templates, _, _ := newTestService()
	tmpl := weekdayTemplate()
	templates.templates[tmpl.ID] = tmpl

	// Pre-existing slots on a date outside the requested range.
	doctors.doctors["doc-1"].Schedule["2025-03-10"] = []string{"10:00"}

	result, err := svc.GenerateSchedule(models.GenerateScheduleRequest{
		DoctorID:   "doc-1",
		TemplateID: tmpl.ID,
		StartDate:  "2025-03-17",
		EndDate:    "2025-03-21",
	})
	if err != nil {
		t.Fatalf("GenerateSchedule returned error: %v", err)
	}

	if len(result.GeneratedDates) != 5 {
		t.Fatalf("expected 5 generated dates, got %v", result.GeneratedDates)
	}
	if result.TotalSlots != 5*14 {
		t.Errorf("expected %d total slots, got %d", 5*14, result.TotalSlots)
	}
	for i := 1; i < len(result.GeneratedDates); i++ {
		if result.GeneratedDates[i] <= result.GeneratedDates[i-1] {
			t.Errorf("generated dates not sorted: %v", result.GeneratedDates)
		}
	}

	t.Run("existing dates untouched", func(t *testing.T) {
		schedule := doctors.doctors["doc-1"].Schedule
		if got := schedule["2025-03-10"]; len(got) != 1 || got[0] != "10:00" {
			t.Errorf("merge must not clear dates outside the range, got %v", got)
		}
		if len(schedule["2025-03-17"]) != 14 {
			t.Errorf("expected 14 slots merged for 2025-03-17, got %v", schedule["2025-03-17"])
		}
	})

	t.Run("skipped dates not merged", func(t *testing.T) {
		if _, ok := doctors.merged["2025-03-22"]; ok {
			t.Error("weekend date must not appear in the merge set")
		}
	})
}

func TestGenerateScheduleTemplateChecks(t *testing.T) {
	svc, _, templates, _, _ := newTestService()
	tmpl := weekdayTemplate()
	templates.templates[tmpl.ID] = tmpl

	t.Run("unknown template", func(t *testing.T) {
		_, err := svc.GenerateSchedule(models.GenerateScheduleRequest{
			DoctorID: "doc-1", TemplateID: "missing",
			StartDate: "2025-03-17", EndDate: "2025-03-21",
		})
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("foreign template rejected", func(t *testing.T) {
		_, err := svc.GenerateSchedule(models.GenerateScheduleRequest{
			DoctorID: "doc-2", TemplateID: tmpl.ID,
			StartDate: "2025-03-17", EndDate: "2025-03-21",
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError for ownership mismatch, got %v", err)
		}
	})

	t.Run("inactive template rejected", func(t *testing.T) {
		inactive := weekdayTemplate()
		inactive.ID = "tmpl-2"
		inactive.IsActive = false
		templates.templates[inactive.ID] = inactive

		_, err := svc.GenerateSchedule(models.GenerateScheduleRequest{
			DoctorID: "doc-1", TemplateID: inactive.ID,
			StartDate: "2025-03-17", EndDate: "2025-03-21",
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError for inactive template, got %v", err)
		}
	})
}

func TestGenerateScheduleUsesExceptionSources(t *testing.T) {
	svc, doctors, templates, leaves, holidays := newTestService()
	tmpl := weekdayTemplate()
	templates.templates[tmpl.ID] = tmpl

	holidays.holidays = append(holidays.holidays, models.Holiday{
		ID: "hol-1", Date: "2025-03-18", IsWorkingDay: false,
	})
	leaves.leaves = append(leaves.leaves, models.DoctorLeave{
		ID: "leave-1", DoctorID: "doc-1",
		StartDate: "2025-03-20", EndDate: "2025-03-20",
		Status: models.LeaveApproved,
	})

	result, err := svc.GenerateSchedule(models.GenerateScheduleRequest{
		DoctorID:   "doc-1",
		TemplateID: tmpl.ID,
		StartDate:  "2025-03-17",
		EndDate:    "2025-03-21",
	})
	if err != nil {
		t.Fatalf("GenerateSchedule returned error: %v", err)
	}
	if len(result.GeneratedDates) != 3 {
		t.Fatalf("expected 3 dates after holiday and leave, got %v", result.GeneratedDates)
	}
	schedule := doctors.doctors["doc-1"].Schedule
	if _, ok := schedule["2025-03-18"]; ok {
		t.Error("holiday date must not be merged")
	}
	if _, ok := schedule["2025-03-20"]; ok {
		t.Error("approved leave date must not be merged")
	}
}

func TestCreateTemplateValidatesAtBoundary(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.CreateTemplate(models.CreateTemplateRequest{
		DoctorID:     "doc-1",
		TemplateName: "broken",
		DaysOfWeek:   []int{0},
		StartTime:    "17:00",
		EndTime:      "09:00",
		SlotDuration: 30,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDecideLeave(t *testing.T) {
	svc, _, _, leaves, _ := newTestService()
	leaves.leaves = append(leaves.leaves, models.DoctorLeave{
		ID: "leave-1", DoctorID: "doc-1",
		StartDate: "2025-04-01", EndDate: "2025-04-03",
		Status: models.LeavePending,
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		err := svc.DecideLeave("leave-1", "maybe")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("approve", func(t *testing.T) {
		if err := svc.DecideLeave("leave-1", models.LeaveApproved); err != nil {
			t.Fatalf("DecideLeave returned error: %v", err)
		}
		if leaves.leaves[0].Status != models.LeaveApproved {
			t.Errorf("status = %s, want approved", leaves.leaves[0].Status)
		}
	})

	t.Run("unknown leave", func(t *testing.T) {
		err := svc.DecideLeave("missing", models.LeaveApproved)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}
