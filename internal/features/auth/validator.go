package auth

import (
	"strings"

	"github.com/xyz-asif/filmdeck/internal/pkg/validator"
	apperrors "github.com/xyz-asif/filmdeck/pkg/errors"
)

// ValidateRegister checks a registration before anything is written.
func ValidateRegister(in *RegisterInput) error {
	if !validator.IsValidEmail(strings.TrimSpace(in.Email)) {
		return apperrors.New(apperrors.ErrValidation, "A valid email is required")
	}
	if in.Username != "" && !validator.IsValidUsername(in.Username) {
		return apperrors.New(apperrors.ErrValidation, "Username may only contain letters, digits and . _ @ + -")
	}
	if in.PhoneNumber != "" && !validator.IsValidPhone(in.PhoneNumber) {
		return apperrors.New(apperrors.ErrValidation, "Phone number is not valid")
	}
	return ValidatePassword(in.Password)
}

// ValidatePassword enforces the password strength rules.
func ValidatePassword(password string) error {
	if problems := validator.PasswordProblems(password); len(problems) > 0 {
		return apperrors.New(apperrors.ErrValidation, "Password must contain "+strings.Join(problems, ", "))
	}
	return nil
}
