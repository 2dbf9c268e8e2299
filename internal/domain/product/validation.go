package product

import (
	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	"github.com/dexianlabs/pastelaria-api/internal/images"
)

// Upload is the raw photo attachment as received from the request.
type Upload struct {
	Filename string
	Size     int64
	Data     []byte
}

type Input struct {
	Name  string
	Price *float64
	Photo *Upload
}

// Validate checks the field rules. The photo is mandatory on create
// only; an update without one keeps the stored reference.
func Validate(in Input, requirePhoto bool) error {
	if in.Name == "" {
		return apperr.Validation("The name field is required.")
	}
	if len(in.Name) > 255 {
		return apperr.Validation("The name field must not be greater than 255 characters.")
	}
	if in.Price == nil {
		return apperr.Validation("The price field is required.")
	}
	if *in.Price < 0 {
		return apperr.Validation("The price field must be at least 0.")
	}
	if in.Photo == nil {
		if requirePhoto {
			return apperr.Validation("The photo field is required.")
		}
		return nil
	}
	if in.Photo.Size > images.MaxBytes {
		return apperr.Validation("The photo field must not be greater than 2048 kilobytes.")
	}
	if !images.Allowed(in.Photo.Data) {
		return apperr.Validation("The photo field must be a file of type: jpeg, png, gif.")
	}
	return nil
}
