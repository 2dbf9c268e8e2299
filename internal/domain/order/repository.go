package order

import (
	"context"

	"github.com/dexianlabs/pastelaria-api/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Order, error)

	GetByID(ctx context.Context, id uint) (*models.Order, error)

	// GetWithRelations loads the order plus its client, the client's
	// owning user and the product, for the notification mail.
	GetWithRelations(ctx context.Context, id uint) (*models.Order, error)

	Create(ctx context.Context, o *models.Order) error

	Update(ctx context.Context, o *models.Order) error

	Delete(ctx context.Context, o *models.Order) error
}
