package catalog

import "fmt"

// NotFoundError reports a missing catalog item or order.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// InsufficientStockError means a dispense would drive stock below zero.
type InsufficientStockError struct {
	MedicineID string
	Requested  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for medicine %s (requested %d)", e.MedicineID, e.Requested)
}

// ValidationError reports an order or adjustment that fails domain rules.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
