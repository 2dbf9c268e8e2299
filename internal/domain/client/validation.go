package client

import (
	"time"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
)

const birthDateLayout = "2006-01-02"

// Input covers create and update alike; the original rule set is the
// same for both.
type Input struct {
	UserID     uint
	Phone      string
	BirthDate  string
	Address    string
	Complement string
	District   string
	Zipcode    string
}

func Validate(in Input) error {
	if in.UserID == 0 {
		return apperr.Validation("The user id field is required.")
	}
	if in.Phone == "" {
		return apperr.Validation("The phone field is required.")
	}
	if len(in.Phone) > 15 {
		return apperr.Validation("The phone field must not be greater than 15 characters.")
	}
	if in.BirthDate != "" {
		if _, err := time.Parse(birthDateLayout, in.BirthDate); err != nil {
			return apperr.Validation("The birth date field must be a valid date.")
		}
	}
	if in.Address == "" {
		return apperr.Validation("The address field is required.")
	}
	if in.District == "" {
		return apperr.Validation("The district field is required.")
	}
	if in.Zipcode == "" {
		return apperr.Validation("The zipcode field is required.")
	}
	return nil
}

// ParseBirthDate assumes Validate already accepted the value.
func ParseBirthDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
