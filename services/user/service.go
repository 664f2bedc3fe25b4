package user

import (
	"context"
	"fmt"

	userRepo "unicare/database/repository/user"
	"unicare/models"
	"unicare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages accounts, authentication and OTP verification.
type UserService interface {
	Register(req models.RegisterRequest) (*models.User, error)
	Authenticate(req models.LoginRequest) (*models.AuthResponse, error)
	RequestOTP(ctx context.Context, req models.OTPRequest) error
	VerifyOTP(ctx context.Context, req models.OTPVerifyRequest) error
	GetUserByID(id string) (*models.User, error)
	ListPatients() ([]models.User, error)
	ApprovePatient(id string) error
	// EnsureAdmin creates the bootstrap admin account when missing.
	EnsureAdmin(email, password string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

func (s *DefaultUserService) Register(req models.RegisterRequest) (*models.User, error) {
	if req.Email == "" && req.Phone == "" {
		return nil, fmt.Errorf("email or phone required")
	}

	if req.Email != "" {
		if existing, err := s.Repo.GetByEmail(req.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, &DuplicateAccountError{Contact: req.Email}
		}
	}
	if req.Phone != "" {
		if existing, err := s.Repo.GetByPhone(req.Phone); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, &DuplicateAccountError{Contact: req.Phone}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:               uuid.New().String(),
		Email:            req.Email,
		Phone:            req.Phone,
		FullName:         req.FullName,
		Role:             models.RolePatient,
		Address:          req.Address,
		DateOfBirth:      req.DateOfBirth,
		EmergencyContact: req.EmergencyContact,
		PasswordHash:     string(hash),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	s.Logger.Info("user registered", zap.String("userId", u.ID))
	return u, nil
}

func (s *DefaultUserService) Authenticate(req models.LoginRequest) (*models.AuthResponse, error) {
	var (
		u   *models.User
		err error
	)
	switch {
	case req.Email != "":
		u, err = s.Repo.GetByEmail(req.Email)
	case req.Phone != "":
		u, err = s.Repo.GetByPhone(req.Phone)
	default:
		return nil, fmt.Errorf("email or phone required")
	}
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &InvalidCredentialsError{}
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, &InvalidCredentialsError{}
	}

	token, err := utils.GenerateToken(u.ID, u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: models.UserSummary{
			ID:         u.ID,
			FullName:   u.FullName,
			Role:       u.Role,
			IsVerified: u.IsVerified,
			IsApproved: u.IsApproved,
		},
	}, nil
}

// RequestOTP stores a short-lived code in Redis keyed by the contact address.
// Delivery is logged; wiring a real email/SMS gateway replaces the callback.
func (s *DefaultUserService) RequestOTP(ctx context.Context, req models.OTPRequest) error {
	contact := req.Email
	if contact == "" {
		contact = req.Phone
	}
	if contact == "" {
		return fmt.Errorf("email or phone required")
	}
	return utils.InitiateOTP(ctx, contact, func(contact, otp string) error {
		s.Logger.Sugar().Infof("OTP for %s: %s", contact, otp)
		return nil
	})
}

func (s *DefaultUserService) VerifyOTP(ctx context.Context, req models.OTPVerifyRequest) error {
	contact := req.Email
	if contact == "" {
		contact = req.Phone
	}
	if contact == "" {
		return fmt.Errorf("email or phone required")
	}
	ok, err := utils.VerifyOTP(ctx, contact, req.OTP)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("invalid or expired OTP")
	}
	return s.Repo.MarkVerifiedByContact(req.Email, req.Phone)
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &NotFoundError{ID: id}
	}
	return u, nil
}

func (s *DefaultUserService) ListPatients() ([]models.User, error) {
	return s.Repo.GetByRole(models.RolePatient)
}

func (s *DefaultUserService) ApprovePatient(id string) error {
	return s.Repo.SetApproved(id, true)
}

// EnsureAdmin seeds the administrator account on first start.
func (s *DefaultUserService) EnsureAdmin(email, password string) error {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     "Administrator",
		Role:         models.RoleAdmin,
		IsVerified:   true,
		IsApproved:   true,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(admin); err != nil {
		return err
	}
	s.Logger.Sugar().Infof("admin user created with email: %s", email)
	return nil
}
