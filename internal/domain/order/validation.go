package order

import (
	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	"github.com/dexianlabs/pastelaria-api/internal/models"
)

type Input struct {
	ClientID  uint
	ProductID uint
	// Status zero means "not sent"; create defaults it to pending.
	Status models.OrderStatus
}

func Validate(in Input) error {
	if in.ClientID == 0 {
		return apperr.Validation("The client id field is required.")
	}
	if in.ProductID == 0 {
		return apperr.Validation("The product id field is required.")
	}
	if in.Status != 0 && !in.Status.Valid() {
		return apperr.Validation("The selected status is invalid.")
	}
	return nil
}
