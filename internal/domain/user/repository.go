package user

import (
	"context"

	"github.com/dexianlabs/pastelaria-api/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.User, error)

	GetByID(ctx context.Context, id uint) (*models.User, error)

	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// EmailTaken looks past soft-deleted rows: the unique index on
	// users.email still covers them.
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)

	Create(ctx context.Context, u *models.User) error

	Update(ctx context.Context, u *models.User) error

	// Delete marks the row deleted; it stays in the table.
	Delete(ctx context.Context, u *models.User) error
}
