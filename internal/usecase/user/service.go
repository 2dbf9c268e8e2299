package user

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	"github.com/dexianlabs/pastelaria-api/internal/audit"
	domain "github.com/dexianlabs/pastelaria-api/internal/domain/user"
	"github.com/dexianlabs/pastelaria-api/internal/models"
)

type Service struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewService(repo domain.Repository, audit *audit.Dispatcher, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		audit:  audit,
		logger: logger,
	}
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Create(ctx context.Context, in domain.CreateInput) (*models.User, error) {
	if err := domain.ValidateCreate(in); err != nil {
		return nil, err
	}

	taken, err := s.repo.EmailTaken(ctx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Validation("The email has already been taken.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Type:         in.Type,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "user_created",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}

func (s *Service) Update(ctx context.Context, id uint, in domain.UpdateInput) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}

	if err := domain.ValidateUpdate(in); err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != u.Email {
		taken, err := s.repo.EmailTaken(ctx, *in.Email, u.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Validation("The email has already been taken.")
		}
		u.Email = *in.Email
	}

	if in.Name != nil {
		u.Name = *in.Name
	}

	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hashed)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}

	if err := s.repo.Delete(ctx, u); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return nil
}
