package client

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	"github.com/dexianlabs/pastelaria-api/internal/audit"
	domain "github.com/dexianlabs/pastelaria-api/internal/domain/client"
	userdomain "github.com/dexianlabs/pastelaria-api/internal/domain/user"
	"github.com/dexianlabs/pastelaria-api/internal/models"
)

type Service struct {
	repo   domain.Repository
	users  userdomain.Repository
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewService(
	repo domain.Repository,
	users userdomain.Repository,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		audit:  audit,
		logger: logger,
	}
}

func (s *Service) List(ctx context.Context) ([]models.Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Client not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, in domain.Input) (*models.Client, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	c := &models.Client{
		UserID:     in.UserID,
		Phone:      in.Phone,
		BirthDate:  domain.ParseBirthDate(in.BirthDate),
		Address:    in.Address,
		Complement: in.Complement,
		District:   in.District,
		Zipcode:    in.Zipcode,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &c.ID,
	})

	return c, nil
}

func (s *Service) Update(ctx context.Context, id uint, in domain.Input) (*models.Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Client not found")
		}
		return nil, err
	}

	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	c.UserID = in.UserID
	c.Phone = in.Phone
	c.BirthDate = domain.ParseBirthDate(in.BirthDate)
	c.Address = in.Address
	c.Complement = in.Complement
	c.District = in.District
	c.Zipcode = in.Zipcode

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &c.ID,
	})

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Client not found")
		}
		return err
	}

	if err := s.repo.Delete(ctx, c); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &c.ID,
	})

	return nil
}

// validate runs the field rules plus the referential check on user_id.
func (s *Service) validate(ctx context.Context, in domain.Input) error {
	if err := domain.Validate(in); err != nil {
		return err
	}

	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("The selected user id is invalid.")
		}
		return err
	}

	return nil
}
