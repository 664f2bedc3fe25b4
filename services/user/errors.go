package user

import "fmt"

// InvalidCredentialsError is returned for unknown accounts and wrong
// passwords alike, without distinguishing the two.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "invalid credentials"
}

// DuplicateAccountError signals that the email or phone is already registered.
type DuplicateAccountError struct {
	Contact string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account with contact %s already exists", e.Contact)
}

// NotFoundError reports a missing user.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user with id %s not found", e.ID)
}
