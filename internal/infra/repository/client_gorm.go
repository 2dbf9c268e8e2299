package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/dexianlabs/pastelaria-api/internal/domain/client"
	"github.com/dexianlabs/pastelaria-api/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientGormRepository) Update(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientGormRepository) Delete(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
