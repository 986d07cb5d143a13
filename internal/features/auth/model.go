package auth

import (
	"time"
)

// User is the stored identity. PasswordHash never leaves the service.
type User struct {
	ID              string    `bson:"_id" json:"id"`
	Email           string    `bson:"email" json:"email"`
	NormalizedEmail string    `bson:"normalizedEmail" json:"-"`
	Username        string    `bson:"username" json:"userName"`
	FirstName       string    `bson:"firstName" json:"firstName"`
	LastName        string    `bson:"lastName" json:"lastName"`
	PhoneNumber     string    `bson:"phoneNumber" json:"phoneNumber"`
	PasswordHash    string    `bson:"passwordHash" json:"-"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Profile is the read-only view of a user returned by the API
type Profile struct {
	ID          string    `json:"id" example:"3f1c2a9e-6d1b-4a8e-9a55-0c1d2e3f4a5b"`
	Email       string    `json:"email" example:"alice@example.com"`
	Username    string    `json:"userName" example:"alice"`
	FirstName   string    `json:"firstName" example:"Alice"`
	LastName    string    `json:"lastName" example:"Liddell"`
	PhoneNumber string    `json:"phoneNumber" example:"+15555550100"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToProfile strips credentials from the user
func (u *User) ToProfile() *Profile {
	return &Profile{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
	}
}

// SignUpRequest represents the payload for registering
type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email" example:"alice@example.com"`
	Username    string `json:"userName" binding:"omitempty,username" example:"alice"`
	Password    string `json:"password" binding:"required,strongpassword" example:"Abc123!@"`
	FirstName   string `json:"firstName" binding:"max=100" example:"Alice"`
	LastName    string `json:"lastName" binding:"max=100" example:"Liddell"`
	PhoneNumber string `json:"phoneNumber" binding:"phone" example:"+15555550100"`
}

// SignInRequest represents the login credentials
type SignInRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"Abc123!@"`
}

// UpdatePasswordRequest carries the current and the new password
type UpdatePasswordRequest struct {
	Password    string `json:"password" binding:"required" example:"Abc123!@"`
	NewPassword string `json:"newPassword" binding:"required" example:"Xyz789#$"`
}

// TokenResponse is returned after a successful sign in
type TokenResponse struct {
	Token      string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Expiration time.Time `json:"expiration" example:"2024-05-01T12:30:00Z"`
}

// RegisterInput is the service-level form of SignUpRequest.
type RegisterInput struct {
	Email       string
	Username    string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}
