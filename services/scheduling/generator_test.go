package scheduling

import (
	"errors"
	"testing"

	"unicare/models"
)

// 2025-03-17 is a Monday.
func weekdayTemplate() *models.ScheduleTemplate {
	return &models.ScheduleTemplate{
		ID:           "tmpl-1",
		DoctorID:     "doc-1",
		TemplateName: "standard week",
		ScheduleType: models.ScheduleWeekly,
		DaysOfWeek:   []int{0, 1, 2, 3, 4},
		StartTime:    "09:00",
		EndTime:      "17:00",
		SlotDuration: 30,
		BreakTimes:   []models.BreakInterval{{Start: "13:00", End: "14:00"}},
		IsActive:     true,
	}
}

func TestGenerateStandardWeek(t *testing.T) {
	generated, err := Generate(weekdayTemplate(), nil, nil, "2025-03-17", "2025-03-23")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	t.Run("weekdays only", func(t *testing.T) {
		if len(generated) != 5 {
			t.Fatalf("expected 5 generated dates, got %d (%v)", len(generated), generated)
		}
		if _, ok := generated["2025-03-22"]; ok {
			t.Error("Saturday must not be generated")
		}
		if _, ok := generated["2025-03-23"]; ok {
			t.Error("Sunday must not be generated")
		}
	})

	t.Run("slot count and break gap", func(t *testing.T) {
		slots := generated["2025-03-17"]
		if len(slots) != 14 {
			t.Fatalf("expected 14 slots, got %d: %v", len(slots), slots)
		}
		if slots[0] != "09:00" {
			t.Errorf("first slot = %s, want 09:00", slots[0])
		}
		if slots[len(slots)-1] != "16:30" {
			t.Errorf("last slot = %s, want 16:30", slots[len(slots)-1])
		}
		for _, s := range slots {
			if s == "13:00" || s == "13:30" {
				t.Errorf("slot %s falls inside the break", s)
			}
		}
	})

	t.Run("slot at break end is kept", func(t *testing.T) {
		found := false
		for _, s := range generated["2025-03-17"] {
			if s == "14:00" {
				found = true
			}
		}
		if !found {
			t.Error("slot at 14:00 (break end) must be generated")
		}
	})

	t.Run("slots strictly increasing", func(t *testing.T) {
		for date, slots := range generated {
			for i := 1; i < len(slots); i++ {
				if slots[i] <= slots[i-1] {
					t.Errorf("%s: slots not strictly increasing: %v", date, slots)
				}
			}
		}
	})
}

func TestGenerateHolidays(t *testing.T) {
	holidays := map[string]models.Holiday{
		"2025-03-18": {Date: "2025-03-18", Name: "clinic closed", IsWorkingDay: false},
		"2025-03-19": {Date: "2025-03-19", Name: "open house", IsWorkingDay: true},
	}

	generated, err := Generate(weekdayTemplate(), holidays, nil, "2025-03-17", "2025-03-21")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, ok := generated["2025-03-18"]; ok {
		t.Error("non-working holiday must be skipped")
	}
	if slots, ok := generated["2025-03-19"]; !ok || len(slots) == 0 {
		t.Error("working-day holiday override must still generate slots")
	}
}

func TestGenerateLeaves(t *testing.T) {
	leaves := []models.DoctorLeave{
		{DoctorID: "doc-1", StartDate: "2025-03-18", EndDate: "2025-03-19", Status: models.LeaveApproved},
		{DoctorID: "doc-1", StartDate: "2025-03-20", EndDate: "2025-03-20", Status: models.LeavePending},
		{DoctorID: "doc-1", StartDate: "2025-03-21", EndDate: "2025-03-21", Status: models.LeaveRejected},
	}

	generated, err := Generate(weekdayTemplate(), nil, leaves, "2025-03-17", "2025-03-21")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	t.Run("approved leave blocks inclusive range", func(t *testing.T) {
		if _, ok := generated["2025-03-18"]; ok {
			t.Error("leave start date must be skipped")
		}
		if _, ok := generated["2025-03-19"]; ok {
			t.Error("leave end date must be skipped")
		}
	})

	t.Run("pending and rejected leaves do not block", func(t *testing.T) {
		if _, ok := generated["2025-03-20"]; !ok {
			t.Error("pending leave must not block generation")
		}
		if _, ok := generated["2025-03-21"]; !ok {
			t.Error("rejected leave must not block generation")
		}
	})
}

func TestGenerateEmptyDayEntry(t *testing.T) {
	tmpl := weekdayTemplate()
	tmpl.StartTime = "09:00"
	tmpl.EndTime = "10:00"
	tmpl.BreakTimes = []models.BreakInterval{{Start: "09:00", End: "10:00"}}

	generated, err := Generate(tmpl, nil, nil, "2025-03-17", "2025-03-17")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	slots, ok := generated["2025-03-17"]
	if !ok {
		t.Fatal("working date with zero free slots must still get an entry")
	}
	if slots == nil {
		t.Fatal("entry must be an empty slice, not nil")
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestGenerateSlotOverrunsEnd(t *testing.T) {
	// 45-minute slots in a 09:00-10:00 window: 09:00 fits, 09:45 starts
	// before the end and is kept even though it runs past it.
	tmpl := weekdayTemplate()
	tmpl.EndTime = "10:00"
	tmpl.SlotDuration = 45
	tmpl.BreakTimes = nil

	generated, err := Generate(tmpl, nil, nil, "2025-03-17", "2025-03-17")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	slots := generated["2025-03-17"]
	if len(slots) != 2 || slots[0] != "09:00" || slots[1] != "09:45" {
		t.Fatalf("expected [09:00 09:45], got %v", slots)
	}
}

func TestGenerateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.ScheduleTemplate)
		start  string
		end    string
	}{
		{"zero slot duration", func(m *models.ScheduleTemplate) { m.SlotDuration = 0 }, "2025-03-17", "2025-03-17"},
		{"negative slot duration", func(m *models.ScheduleTemplate) { m.SlotDuration = -15 }, "2025-03-17", "2025-03-17"},
		{"inverted working window", func(m *models.ScheduleTemplate) { m.StartTime = "17:00"; m.EndTime = "09:00" }, "2025-03-17", "2025-03-17"},
		{"day of week out of range", func(m *models.ScheduleTemplate) { m.DaysOfWeek = []int{7} }, "2025-03-17", "2025-03-17"},
		{"malformed start time", func(m *models.ScheduleTemplate) { m.StartTime = "9:00" }, "2025-03-17", "2025-03-17"},
		{"break outside working hours", func(m *models.ScheduleTemplate) {
			m.BreakTimes = []models.BreakInterval{{Start: "08:00", End: "09:30"}}
		}, "2025-03-17", "2025-03-17"},
		{"inverted break", func(m *models.ScheduleTemplate) {
			m.BreakTimes = []models.BreakInterval{{Start: "14:00", End: "13:00"}}
		}, "2025-03-17", "2025-03-17"},
		{"overlapping breaks", func(m *models.ScheduleTemplate) {
			m.BreakTimes = []models.BreakInterval{
				{Start: "12:00", End: "13:00"},
				{Start: "12:30", End: "14:00"},
			}
		}, "2025-03-17", "2025-03-17"},
		{"malformed start date", func(m *models.ScheduleTemplate) {}, "17-03-2025", "2025-03-17"},
		{"range inverted", func(m *models.ScheduleTemplate) {}, "2025-03-21", "2025-03-17"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tmpl := weekdayTemplate()
			tc.mutate(tmpl)
			_, err := Generate(tmpl, nil, nil, tc.start, tc.end)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestWeekdayIndexConvention(t *testing.T) {
	// Sunday-only template: only 2025-03-23 (Sunday) in the week generates.
	tmpl := weekdayTemplate()
	tmpl.DaysOfWeek = []int{6}

	generated, err := Generate(tmpl, nil, nil, "2025-03-17", "2025-03-23")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(generated) != 1 {
		t.Fatalf("expected exactly one date, got %v", generated)
	}
	if _, ok := generated["2025-03-23"]; !ok {
		t.Errorf("day index 6 must map to Sunday, got %v", generated)
	}
}
