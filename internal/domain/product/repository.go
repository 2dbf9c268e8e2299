package product

import (
	"context"

	"github.com/dexianlabs/pastelaria-api/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Product, error)

	GetByID(ctx context.Context, id uint) (*models.Product, error)

	Create(ctx context.Context, p *models.Product) error

	Update(ctx context.Context, p *models.Product) error

	// Delete removes the row for good; products have no soft delete.
	Delete(ctx context.Context, p *models.Product) error
}
