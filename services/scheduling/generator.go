package scheduling

import (
	"fmt"
	"sort"
	"time"

	"unicare/models"
)

// dateLayout is the ISO calendar date format used throughout the schedule map.
const dateLayout = "2006-01-02"

// clockMinutes parses a strict 24-hour "HH:MM" string into minutes since
// midnight.
func clockMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("malformed time of day %q", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("malformed time of day %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// weekdayIndex maps a calendar date onto the template convention
// 0=Monday .. 6=Sunday. This is the only place the Go Sunday-based
// weekday is converted.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// breakSpan is a validated break interval in minutes since midnight,
// half-open: [start, end).
type breakSpan struct {
	start int
	end   int
}

// validateTemplate checks the template invariants and returns the parsed
// working window and break spans.
func validateTemplate(tmpl *models.ScheduleTemplate) (start, end int, breaks []breakSpan, err error) {
	if tmpl.SlotDuration <= 0 {
		return 0, 0, nil, newValidationError("slot duration must be positive, got %d", tmpl.SlotDuration)
	}
	start, err = clockMinutes(tmpl.StartTime)
	if err != nil {
		return 0, 0, nil, newValidationError("start_time: %v", err)
	}
	end, err = clockMinutes(tmpl.EndTime)
	if err != nil {
		return 0, 0, nil, newValidationError("end_time: %v", err)
	}
	if start >= end {
		return 0, 0, nil, newValidationError("start_time %s must be before end_time %s", tmpl.StartTime, tmpl.EndTime)
	}
	for _, d := range tmpl.DaysOfWeek {
		if d < 0 || d > 6 {
			return 0, 0, nil, newValidationError("day_of_week %d outside 0..6", d)
		}
	}

	for _, b := range tmpl.BreakTimes {
		bs, err := clockMinutes(b.Start)
		if err != nil {
			return 0, 0, nil, newValidationError("break start: %v", err)
		}
		be, err := clockMinutes(b.End)
		if err != nil {
			return 0, 0, nil, newValidationError("break end: %v", err)
		}
		if bs >= be {
			return 0, 0, nil, newValidationError("break %s-%s is empty or inverted", b.Start, b.End)
		}
		if bs < start || be > end {
			return 0, 0, nil, newValidationError("break %s-%s outside working hours %s-%s",
				b.Start, b.End, tmpl.StartTime, tmpl.EndTime)
		}
		breaks = append(breaks, breakSpan{start: bs, end: be})
	}

	sort.Slice(breaks, func(i, j int) bool { return breaks[i].start < breaks[j].start })
	for i := 1; i < len(breaks); i++ {
		if breaks[i].start < breaks[i-1].end {
			return 0, 0, nil, newValidationError("break intervals overlap")
		}
	}
	return start, end, breaks, nil
}

// inBreak reports whether the candidate minute falls inside any break span.
// Break ends are exclusive: a slot exactly at a break's end is valid.
func inBreak(minute int, breaks []breakSpan) bool {
	for _, b := range breaks {
		if minute >= b.start && minute < b.end {
			return true
		}
	}
	return false
}

// Generate materializes bookable slot start times for every date in
// [startDate, endDate] inclusive. Pure: it fetches nothing and is
// deterministic for identical inputs.
//
// A date is skipped entirely (no map key) when its weekday is not in the
// template, a holiday record marks it non-working, or an approved leave
// covers it. A date that passes those filters always gets an entry, even
// when every candidate slot is swallowed by breaks; the resulting empty
// list is distinguishable from an absent key.
func Generate(
	tmpl *models.ScheduleTemplate,
	holidays map[string]models.Holiday,
	leaves []models.DoctorLeave,
	startDate, endDate string,
) (map[string][]string, error) {
	dayStart, dayEnd, breaks, err := validateTemplate(tmpl)
	if err != nil {
		return nil, err
	}

	from, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, newValidationError("start_date %q is not a valid YYYY-MM-DD date", startDate)
	}
	to, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, newValidationError("end_date %q is not a valid YYYY-MM-DD date", endDate)
	}
	if from.After(to) {
		return nil, newValidationError("start_date %s is after end_date %s", startDate, endDate)
	}

	workdays := make(map[int]bool, len(tmpl.DaysOfWeek))
	for _, d := range tmpl.DaysOfWeek {
		workdays[d] = true
	}

	generated := make(map[string][]string)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateLayout)

		if !workdays[weekdayIndex(day)] {
			continue
		}
		if h, ok := holidays[date]; ok && !h.IsWorkingDay {
			continue
		}
		if onApprovedLeave(leaves, date) {
			continue
		}

		slots := []string{}
		for t := dayStart; t < dayEnd; t += tmpl.SlotDuration {
			if inBreak(t, breaks) {
				continue
			}
			slots = append(slots, formatClock(t))
		}
		generated[date] = slots
	}
	return generated, nil
}

// onApprovedLeave reports whether an approved leave covers the date.
// Inclusive on both ends; ISO date strings compare lexicographically.
func onApprovedLeave(leaves []models.DoctorLeave, date string) bool {
	for _, l := range leaves {
		if l.Status != models.LeaveApproved {
			continue
		}
		if l.StartDate <= date && date <= l.EndDate {
			return true
		}
	}
	return false
}
