package userRepo

import "unicare/models"

// UserRepository defines methods for user account data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email; nil when not found.
	GetByEmail(email string) (*models.User, error)
	// GetByPhone retrieves a user by phone; nil when not found.
	GetByPhone(phone string) (*models.User, error)
	// GetByRole retrieves all users carrying the given role.
	GetByRole(role string) ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// SetApproved toggles medical-record access for a patient.
	SetApproved(id string, approved bool) error
	// MarkVerifiedByContact flags the account matching an email or phone as verified.
	MarkVerifiedByContact(email, phone string) error
}
