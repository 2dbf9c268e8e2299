package user

import (
	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	"github.com/dexianlabs/pastelaria-api/internal/models"
	"github.com/dexianlabs/pastelaria-api/internal/validators"
)

const minPasswordLen = 8

type CreateInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	Type                 models.UserType
}

// UpdateInput fields are optional; nil means "leave unchanged".
type UpdateInput struct {
	Name                 *string
	Email                *string
	Password             *string
	PasswordConfirmation *string
}

func ValidateCreate(in CreateInput) error {
	if in.Name == "" {
		return apperr.Validation("The name field is required.")
	}
	if len(in.Name) > 255 {
		return apperr.Validation("The name field must not be greater than 255 characters.")
	}
	if in.Email == "" {
		return apperr.Validation("The email field is required.")
	}
	if !validators.IsEmailValid(in.Email) || len(in.Email) > 255 {
		return apperr.Validation("The email field must be a valid email address.")
	}
	if in.Password == "" {
		return apperr.Validation("The password field is required.")
	}
	if len(in.Password) < minPasswordLen {
		return apperr.Validation("The password field must be at least 8 characters.")
	}
	if in.Password != in.PasswordConfirmation {
		return apperr.Validation("The password confirmation does not match.")
	}
	if !in.Type.Valid() {
		return apperr.Validation("The selected type is invalid.")
	}
	return nil
}

func ValidateUpdate(in UpdateInput) error {
	if in.Name != nil && (*in.Name == "" || len(*in.Name) > 255) {
		return apperr.Validation("The name field must not be greater than 255 characters.")
	}
	if in.Email != nil && (!validators.IsEmailValid(*in.Email) || len(*in.Email) > 255) {
		return apperr.Validation("The email field must be a valid email address.")
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLen {
			return apperr.Validation("The password field must be at least 8 characters.")
		}
		if in.PasswordConfirmation == nil || *in.Password != *in.PasswordConfirmation {
			return apperr.Validation("The password confirmation does not match.")
		}
	}
	return nil
}
