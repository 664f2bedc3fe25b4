package booking

import "fmt"

// SlotNotAvailableError means the requested time is not part of the doctor's
// generated schedule. The client must pick a different slot; there is nothing
// to retry.
type SlotNotAvailableError struct {
	DoctorID string
	Date     string
	Time     string
}

func (e *SlotNotAvailableError) Error() string {
	return fmt.Sprintf("slot %s %s is not available for doctor %s", e.Date, e.Time, e.DoctorID)
}

// SlotAlreadyBookedError means another active appointment holds the slot.
type SlotAlreadyBookedError struct {
	DoctorID string
	Date     string
	Time     string
}

func (e *SlotAlreadyBookedError) Error() string {
	return fmt.Sprintf("slot %s %s for doctor %s is already booked", e.Date, e.Time, e.DoctorID)
}

// NotFoundError reports a missing doctor or appointment.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}
