package client

import (
	"context"

	"github.com/dexianlabs/pastelaria-api/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Client, error)

	GetByID(ctx context.Context, id uint) (*models.Client, error)

	Create(ctx context.Context, c *models.Client) error

	Update(ctx context.Context, c *models.Client) error

	Delete(ctx context.Context, c *models.Client) error
}
