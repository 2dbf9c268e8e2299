package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/dexianlabs/pastelaria-api/internal/domain/user"
	"github.com/dexianlabs/pastelaria-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	// Unscoped: the unique index covers soft-deleted rows too.
	q := r.db.WithContext(ctx).
		Unscoped().
		Model(&models.User{}).
		Where("email = ?", email)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) Delete(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Delete(u).Error
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
