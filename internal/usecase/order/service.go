package order

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	"github.com/dexianlabs/pastelaria-api/internal/audit"
	clientdomain "github.com/dexianlabs/pastelaria-api/internal/domain/client"
	domain "github.com/dexianlabs/pastelaria-api/internal/domain/order"
	productdomain "github.com/dexianlabs/pastelaria-api/internal/domain/product"
	"github.com/dexianlabs/pastelaria-api/internal/mailer"
	"github.com/dexianlabs/pastelaria-api/internal/models"
	"github.com/dexianlabs/pastelaria-api/internal/validators"
)

type Service struct {
	repo     domain.Repository
	clients  clientdomain.Repository
	products productdomain.Repository
	mail     mailer.Mailer
	audit    *audit.Dispatcher
	logger   *zap.Logger
}

func NewService(
	repo domain.Repository,
	clients clientdomain.Repository,
	products productdomain.Repository,
	mail mailer.Mailer,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:     repo,
		clients:  clients,
		products: products,
		mail:     mail,
		audit:    audit,
		logger:   logger,
	}
}

func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, err
	}
	return o, nil
}

// Create persists the order, then notifies the owning user by email.
// The two steps are not atomic: a failed notification leaves the order
// committed and surfaces the error to the caller.
func (s *Service) Create(ctx context.Context, in domain.Input) (*models.Order, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	status := in.Status
	if status == 0 {
		status = models.OrderStatusPending
	}

	o := &models.Order{
		ClientID:  in.ClientID,
		ProductID: in.ProductID,
		Status:    status,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "order_created",
		Entity:   "order",
		EntityID: &o.ID,
	})

	loaded, err := s.repo.GetWithRelations(ctx, o.ID)
	if err != nil {
		return nil, err
	}

	email := loaded.Client.User.Email
	if !validators.IsEmailValid(email) {
		return nil, apperr.Domain("The user does not have a valid email address.")
	}

	if err := s.mail.SendOrderCreated(ctx, email, mailer.OrderCreated{
		OrderID:     loaded.ID,
		ClientName:  loaded.Client.User.Name,
		ProductName: loaded.Product.Name,
		Price:       loaded.Product.Price,
	}); err != nil {
		return nil, err
	}

	return loaded, nil
}

func (s *Service) Update(ctx context.Context, id uint, in domain.Input) (*models.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, err
	}

	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	o.ClientID = in.ClientID
	o.ProductID = in.ProductID
	if in.Status != 0 {
		o.Status = in.Status
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "order_updated",
		Entity:   "order",
		EntityID: &o.ID,
	})

	return o, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Order not found")
		}
		return err
	}

	if err := s.repo.Delete(ctx, o); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "order_deleted",
		Entity:   "order",
		EntityID: &o.ID,
	})

	return nil
}

// validate runs the field rules plus referential checks on client_id
// and product_id.
func (s *Service) validate(ctx context.Context, in domain.Input) error {
	if err := domain.Validate(in); err != nil {
		return err
	}

	if _, err := s.clients.GetByID(ctx, in.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("The selected client id is invalid.")
		}
		return err
	}

	if _, err := s.products.GetByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("The selected product id is invalid.")
		}
		return err
	}

	return nil
}
