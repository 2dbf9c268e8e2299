package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	"github.com/dexianlabs/pastelaria-api/internal/audit"
	domain "github.com/dexianlabs/pastelaria-api/internal/domain/product"
	"github.com/dexianlabs/pastelaria-api/internal/images"
	"github.com/dexianlabs/pastelaria-api/internal/models"
	"github.com/dexianlabs/pastelaria-api/internal/storage"
)

type Service struct {
	repo   domain.Repository
	store  storage.PhotoStore
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewService(
	repo domain.Repository,
	store storage.PhotoStore,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:   repo,
		store:  store,
		audit:  audit,
		logger: logger,
	}
}

func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, in domain.Input) (*models.Product, error) {
	if err := domain.Validate(in, true); err != nil {
		return nil, err
	}

	key, err := s.storePhoto(ctx, in.Photo)
	if err != nil {
		return nil, err
	}

	p := &models.Product{
		Name:  in.Name,
		Price: *in.Price,
		Photo: key,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "product_created",
		Entity:   "product",
		EntityID: &p.ID,
	})

	return p, nil
}

func (s *Service) Update(ctx context.Context, id uint, in domain.Input) (*models.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, err
	}

	if err := domain.Validate(in, false); err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Price = *in.Price

	if in.Photo != nil {
		key, err := s.storePhoto(ctx, in.Photo)
		if err != nil {
			return nil, err
		}
		p.Photo = key
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "product_updated",
		Entity:   "product",
		EntityID: &p.ID,
	})

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Product not found")
		}
		return err
	}

	if err := s.repo.Delete(ctx, p); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "product_deleted",
		Entity:   "product",
		EntityID: &p.ID,
	})

	return nil
}

// storePhoto normalizes the upload to webp and persists it, returning
// the stored object key.
func (s *Service) storePhoto(ctx context.Context, up *domain.Upload) (string, error) {
	body, err := images.Normalize(up.Data)
	if err != nil {
		return "", apperr.Validation("The photo field must be a valid image.")
	}

	key := fmt.Sprintf("products/%s.webp", uuid.NewString())
	if err := s.store.Save(ctx, key, body, "image/webp"); err != nil {
		s.logger.Error("photo upload failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return "", err
	}

	return key, nil
}
