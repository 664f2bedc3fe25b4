package models

import "time"

// User roles.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

type User struct {
	ID               string    `bson:"id" json:"id"`
	Email            string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone            string    `bson:"phone,omitempty" json:"phone,omitempty"`
	FullName         string    `bson:"fullName" json:"full_name"`
	Role             string    `bson:"role" json:"role"`
	IsVerified       bool      `bson:"isVerified" json:"is_verified"`
	IsApproved       bool      `bson:"isApproved" json:"is_approved"` // gates medical record access
	Address          string    `bson:"address,omitempty" json:"address,omitempty"`
	DateOfBirth      string    `bson:"dateOfBirth,omitempty" json:"date_of_birth,omitempty"`
	EmergencyContact string    `bson:"emergencyContact,omitempty" json:"emergency_contact,omitempty"`
	PasswordHash     string    `bson:"passwordHash" json:"-"`
	FCMToken         string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt        time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updated_at"`
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	FullName         string `json:"full_name" binding:"required"`
	Password         string `json:"password" binding:"required,min=8"`
	Address          string `json:"address"`
	DateOfBirth      string `json:"date_of_birth"`
	EmergencyContact string `json:"emergency_contact"`
}

// LoginRequest authenticates by email or phone.
type LoginRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// OTPRequest asks for a one-time code to be sent.
type OTPRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OTPVerifyRequest submits the received code.
type OTPVerifyRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	OTP   string `json:"otp" binding:"required"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserSummary `json:"user"`
}

// UserSummary is the public slice of a user account.
type UserSummary struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	IsApproved bool   `json:"is_approved"`
}
