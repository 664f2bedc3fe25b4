package booking

import (
	"errors"
	"sync"
	"testing"
	"time"

	appointmentRepo "unicare/database/repository/appointment"
	"unicare/models"

	"go.uber.org/zap"
)

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	failNextWith error
}

func slotKey(a *models.Appointment) string {
	return a.DoctorID + "|" + a.AppointmentDate + "|" + a.AppointmentTime
}

func (r *fakeAppointmentRepo) Create(a *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNextWith != nil {
		err := r.failNextWith
		r.failNextWith = nil
		return err
	}
	for _, existing := range r.appointments {
		if existing.Active && slotKey(existing) == slotKey(a) {
			return appointmentRepo.ErrDuplicateSlot
		}
	}
	copied := *a
	r.appointments[a.ID] = &copied
	return nil
}

func (r *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAppointmentRepo) FindActive(doctorID, date, timeOfDay string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.appointments {
		if a.Active && a.DoctorID == doctorID && a.AppointmentDate == date && a.AppointmentTime == timeOfDay {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) GetByPatient(patientID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetByDate(date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.AppointmentDate == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) SetStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appointments[id]
	if !ok {
		return errors.New("appointment not found")
	}
	a.Status = status
	a.Active = status != models.AppointmentCancelled
	return nil
}

type fakeDoctorStore struct {
	doctors map[string]*models.Doctor
}

func (r *fakeDoctorStore) GetByID(id string) (*models.Doctor, error) { return r.doctors[id], nil }
func (r *fakeDoctorStore) GetAll() ([]models.Doctor, error)          { return nil, nil }
func (r *fakeDoctorStore) Create(d *models.Doctor) error             { return nil }
func (r *fakeDoctorStore) Update(d *models.Doctor) error             { return nil }
func (r *fakeDoctorStore) Delete(id string) error                    { return nil }
func (r *fakeDoctorStore) UpdateStatus(id, status string, isAvailable bool) error {
	return nil
}
func (r *fakeDoctorStore) MergeSchedule(id string, generated map[string][]string) error {
	return nil
}
func (r *fakeDoctorStore) SetRating(id string, average float64, count int) error { return nil }

type recordingReminders struct {
	mu        sync.Mutex
	scheduled []string
}

func (r *recordingReminders) ScheduleAppointmentReminder(a *models.Appointment, fireAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, a.ID)
	return nil
}

func newBookingService() (*DefaultBookingService, *fakeAppointmentRepo, *recordingReminders) {
	appointments := &fakeAppointmentRepo{appointments: map[string]*models.Appointment{}}
	doctors := &fakeDoctorStore{doctors: map[string]*models.Doctor{
		"doc-1": {
			ID:   "doc-1",
			Name: "Dr. Menon",
			Schedule: map[string][]string{
				"2030-01-10": {"09:00", "09:30", "10:00"},
			},
		},
	}}
	reminders := &recordingReminders{}
	svc := &DefaultBookingService{
		Appointments: appointments,
		Doctors:      doctors,
		Reminders:    reminders,
		Logger:       zap.NewNop(),
	}
	return svc, appointments, reminders
}

func bookReq(timeOfDay string) models.BookAppointmentRequest {
	return models.BookAppointmentRequest{
		DoctorID:        "doc-1",
		AppointmentDate: "2030-01-10",
		AppointmentTime: timeOfDay,
	}
}

func TestBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _, reminders := newBookingService()
		appointment, err := svc.Book("patient-1", bookReq("09:00"))
		if err != nil {
			t.Fatalf("Book returned error: %v", err)
		}
		if appointment.Status != models.AppointmentScheduled || !appointment.Active {
			t.Errorf("appointment not scheduled/active: %+v", appointment)
		}
		if appointment.ConsultationType != "regular" {
			t.Errorf("default consultation type = %s, want regular", appointment.ConsultationType)
		}
		if len(reminders.scheduled) != 1 {
			t.Errorf("expected one reminder scheduled, got %d", len(reminders.scheduled))
		}
	})

	t.Run("slot not in schedule", func(t *testing.T) {
		svc, _, _ := newBookingService()
		_, err := svc.Book("patient-1", bookReq("11:00"))
		var unavailable *SlotNotAvailableError
		if !errors.As(err, &unavailable) {
			t.Fatalf("expected SlotNotAvailableError, got %v", err)
		}
	})

	t.Run("unknown doctor", func(t *testing.T) {
		svc, _, _ := newBookingService()
		req := bookReq("09:00")
		req.DoctorID = "missing"
		_, err := svc.Book("patient-1", req)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("slot already booked", func(t *testing.T) {
		svc, _, _ := newBookingService()
		if _, err := svc.Book("patient-1", bookReq("09:00")); err != nil {
			t.Fatalf("first booking failed: %v", err)
		}
		_, err := svc.Book("patient-2", bookReq("09:00"))
		var booked *SlotAlreadyBookedError
		if !errors.As(err, &booked) {
			t.Fatalf("expected SlotAlreadyBookedError, got %v", err)
		}
	})

	t.Run("lost insert race", func(t *testing.T) {
		// FindActive sees a free slot, but the insert hits the unique index.
		svc, appointments, _ := newBookingService()
		appointments.failNextWith = appointmentRepo.ErrDuplicateSlot
		_, err := svc.Book("patient-1", bookReq("09:00"))
		var booked *SlotAlreadyBookedError
		if !errors.As(err, &booked) {
			t.Fatalf("expected SlotAlreadyBookedError, got %v", err)
		}
	})
}

func TestConcurrentBookingSingleWinner(t *testing.T) {
	svc, _, _ := newBookingService()

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Book("patient-1", bookReq("09:30"))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		var booked *SlotAlreadyBookedError
		if !errors.As(err, &booked) {
			t.Fatalf("unexpected error kind: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
}

func TestCancelReopensSlot(t *testing.T) {
	svc, _, _ := newBookingService()

	first, err := svc.Book("patient-1", bookReq("10:00"))
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if err := svc.Cancel(first.ID, "patient-1", false); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}

	second, err := svc.Book("patient-2", bookReq("10:00"))
	if err != nil {
		t.Fatalf("rebooking a cancelled slot failed: %v", err)
	}
	if second.ID == first.ID {
		t.Error("rebooking must create a new appointment")
	}
}

func TestCompletedAppointmentStillBlocksSlot(t *testing.T) {
	svc, _, _ := newBookingService()

	first, err := svc.Book("patient-1", bookReq("10:00"))
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if err := svc.Complete(first.ID); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	_, err = svc.Book("patient-2", bookReq("10:00"))
	var booked *SlotAlreadyBookedError
	if !errors.As(err, &booked) {
		t.Fatalf("completed appointment must keep holding the slot, got %v", err)
	}
}

func TestCancelOwnership(t *testing.T) {
	svc, appointments, _ := newBookingService()

	appointment, err := svc.Book("patient-1", bookReq("09:00"))
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	t.Run("foreign patient denied", func(t *testing.T) {
		err := svc.Cancel(appointment.ID, "patient-2", false)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		stored, _ := appointments.GetByID(appointment.ID)
		if !stored.Active {
			t.Error("appointment must stay active after denied cancel")
		}
	})

	t.Run("admin may cancel any", func(t *testing.T) {
		if err := svc.Cancel(appointment.ID, "admin-1", true); err != nil {
			t.Fatalf("admin cancel failed: %v", err)
		}
		stored, _ := appointments.GetByID(appointment.ID)
		if stored.Status != models.AppointmentCancelled || stored.Active {
			t.Errorf("appointment not cancelled: %+v", stored)
		}
	})
}
