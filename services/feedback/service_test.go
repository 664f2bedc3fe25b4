package feedback

import (
	"errors"
	"testing"

	"unicare/models"

	"go.uber.org/zap"
)

type fakeFeedbackRepo struct {
	feedback []models.Feedback
}

func (r *fakeFeedbackRepo) Create(f *models.Feedback) error {
	r.feedback = append(r.feedback, *f)
	return nil
}

func (r *fakeFeedbackRepo) GetByAppointment(appointmentID string) (*models.Feedback, error) {
	for i := range r.feedback {
		if r.feedback[i].AppointmentID == appointmentID {
			return &r.feedback[i], nil
		}
	}
	return nil, nil
}

func (r *fakeFeedbackRepo) GetAll() ([]models.Feedback, error) { return r.feedback, nil }

func (r *fakeFeedbackRepo) AggregateForDoctor(doctorID string) (*models.DoctorRating, error) {
	sum, count := 0, 0
	for _, f := range r.feedback {
		if f.DoctorID == doctorID {
			sum += f.Rating
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	return &models.DoctorRating{
		DoctorID: doctorID,
		Count:    count,
		Average:  float64(sum) / float64(count),
	}, nil
}

type fakeAppointmentStore struct {
	appointments map[string]*models.Appointment
}

func (r *fakeAppointmentStore) Create(a *models.Appointment) error { return nil }

func (r *fakeAppointmentStore) GetByID(id string) (*models.Appointment, error) {
	return r.appointments[id], nil
}

func (r *fakeAppointmentStore) FindActive(doctorID, date, timeOfDay string) (*models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentStore) GetByPatient(patientID string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentStore) GetByDate(date string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentStore) SetStatus(id, status string) error { return nil }

type ratingRecordingDoctorRepo struct {
	average float64
	count   int
}

func (r *ratingRecordingDoctorRepo) GetByID(id string) (*models.Doctor, error) { return nil, nil }
func (r *ratingRecordingDoctorRepo) GetAll() ([]models.Doctor, error)          { return nil, nil }
func (r *ratingRecordingDoctorRepo) Create(d *models.Doctor) error             { return nil }
func (r *ratingRecordingDoctorRepo) Update(d *models.Doctor) error             { return nil }
func (r *ratingRecordingDoctorRepo) Delete(id string) error                    { return nil }
func (r *ratingRecordingDoctorRepo) UpdateStatus(id, status string, isAvailable bool) error {
	return nil
}
func (r *ratingRecordingDoctorRepo) MergeSchedule(id string, generated map[string][]string) error {
	return nil
}
func (r *ratingRecordingDoctorRepo) SetRating(id string, average float64, count int) error {
	r.average = average
	r.count = count
	return nil
}

func newFeedbackService() (*DefaultFeedbackService, *fakeFeedbackRepo, *ratingRecordingDoctorRepo) {
	feedbackStore := &fakeFeedbackRepo{}
	appointments := &fakeAppointmentStore{appointments: map[string]*models.Appointment{
		"apt-done": {
			ID: "apt-done", PatientID: "patient-1", DoctorID: "doc-1",
			Status: models.AppointmentCompleted,
		},
		"apt-open": {
			ID: "apt-open", PatientID: "patient-1", DoctorID: "doc-1",
			Status: models.AppointmentScheduled,
		},
	}}
	doctors := &ratingRecordingDoctorRepo{}
	svc := &DefaultFeedbackService{
		Feedback:     feedbackStore,
		Appointments: appointments,
		Doctors:      doctors,
		Logger:       zap.NewNop(),
	}
	return svc, feedbackStore, doctors
}

func TestSubmitFeedback(t *testing.T) {
	t.Run("updates doctor aggregate", func(t *testing.T) {
		svc, store, doctors := newFeedbackService()
		f, err := svc.Submit("patient-1", models.FeedbackRequest{
			AppointmentID: "apt-done", Rating: 4, Comment: "helpful",
		})
		if err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}
		if f.DoctorID != "doc-1" {
			t.Errorf("doctor id = %s, want doc-1", f.DoctorID)
		}
		if len(store.feedback) != 1 {
			t.Fatalf("expected one stored feedback, got %d", len(store.feedback))
		}
		if doctors.count != 1 || doctors.average != 4 {
			t.Errorf("aggregate = (%v, %d), want (4, 1)", doctors.average, doctors.count)
		}
	})

	t.Run("rejects incomplete appointment", func(t *testing.T) {
		svc, _, _ := newFeedbackService()
		_, err := svc.Submit("patient-1", models.FeedbackRequest{
			AppointmentID: "apt-open", Rating: 5,
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("rejects foreign appointment", func(t *testing.T) {
		svc, _, _ := newFeedbackService()
		_, err := svc.Submit("patient-2", models.FeedbackRequest{
			AppointmentID: "apt-done", Rating: 5,
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("rejects duplicate", func(t *testing.T) {
		svc, _, _ := newFeedbackService()
		if _, err := svc.Submit("patient-1", models.FeedbackRequest{
			AppointmentID: "apt-done", Rating: 3,
		}); err != nil {
			t.Fatalf("first submission failed: %v", err)
		}
		_, err := svc.Submit("patient-1", models.FeedbackRequest{
			AppointmentID: "apt-done", Rating: 5,
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("rejects out of range rating", func(t *testing.T) {
		svc, _, _ := newFeedbackService()
		for _, rating := range []int{0, 6, -1} {
			_, err := svc.Submit("patient-1", models.FeedbackRequest{
				AppointmentID: "apt-done", Rating: rating,
			})
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("rating %d: expected ValidationError, got %v", rating, err)
			}
		}
	})
}
