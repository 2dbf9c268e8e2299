package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	"github.com/dexianlabs/pastelaria-api/internal/audit"
	domain "github.com/dexianlabs/pastelaria-api/internal/domain/order"
	"github.com/dexianlabs/pastelaria-api/internal/infra/repository"
	"github.com/dexianlabs/pastelaria-api/internal/mailer"
	"github.com/dexianlabs/pastelaria-api/internal/models"
	"github.com/dexianlabs/pastelaria-api/internal/testutil"
	ucorder "github.com/dexianlabs/pastelaria-api/internal/usecase/order"
)

type sentMail struct {
	to   string
	data mailer.OrderCreated
}

type fakeMailer struct {
	sent    []sentMail
	failErr error
}

func (f *fakeMailer) SendOrderCreated(_ context.Context, to string, data mailer.OrderCreated) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.sent = append(f.sent, sentMail{to: to, data: data})
	return nil
}

func newService(t *testing.T) (*ucorder.Service, *fakeMailer, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t)
	logger := zap.NewNop()
	dispatcher := audit.NewDispatcher(audit.New(db), logger)
	mail := &fakeMailer{}

	svc := ucorder.NewService(
		repository.NewOrderGormRepository(db),
		repository.NewClientGormRepository(db),
		repository.NewProductGormRepository(db),
		mail,
		dispatcher,
		logger,
	)
	return svc, mail, db
}

func seedClientAndProduct(t *testing.T, db *gorm.DB, email string) (*models.Client, *models.Product) {
	t.Helper()

	u := &models.User{
		Name:         "Client User",
		Email:        email,
		PasswordHash: "hash",
		Type:         models.UserTypeClient,
	}
	require.NoError(t, db.Create(u).Error)

	c := &models.Client{
		UserID:   u.ID,
		Phone:    "1234567890",
		Address:  "123 Client St",
		District: "Central",
		Zipcode:  "12345-678",
	}
	require.NoError(t, db.Create(c).Error)

	p := &models.Product{
		Name:  "Pastel de Frango",
		Price: 6.00,
		Photo: "products/frango.webp",
	}
	require.NoError(t, db.Create(p).Error)

	return c, p
}

func TestOrderService_Create_SendsMail(t *testing.T) {
	svc, mail, db := newService(t)
	c, p := seedClientAndProduct(t, db, "client@client.com")

	o, err := svc.Create(context.Background(), domain.Input{ClientID: c.ID, ProductID: p.ID})
	require.NoError(t, err)
	require.NotZero(t, o.ID)

	assert.Equal(t, models.OrderStatusPending, o.Status)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "client@client.com", mail.sent[0].to)
	assert.Equal(t, o.ID, mail.sent[0].data.OrderID)
	assert.Equal(t, "Client User", mail.sent[0].data.ClientName)
	assert.Equal(t, 6.00, mail.sent[0].data.Price)
}

func TestOrderService_Create_NoValidEmail(t *testing.T) {
	svc, mail, db := newService(t)
	c, p := seedClientAndProduct(t, db, "")

	_, err := svc.Create(context.Background(), domain.Input{ClientID: c.ID, ProductID: p.ID})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindDomain))
	assert.Equal(t, "The user does not have a valid email address.", err.Error())
	assert.Empty(t, mail.sent)

	// The order row is committed before the notification step; it stays.
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestOrderService_Create_MailFailureKeepsOrder(t *testing.T) {
	svc, mail, db := newService(t)
	c, p := seedClientAndProduct(t, db, "client@client.com")
	mail.failErr = errors.New("smtp send: connection refused")

	_, err := svc.Create(context.Background(), domain.Input{ClientID: c.ID, ProductID: p.ID})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestOrderService_Create_ReferentialChecks(t *testing.T) {
	svc, _, db := newService(t)
	c, p := seedClientAndProduct(t, db, "client@client.com")
	ctx := context.Background()

	t.Run("missing client id", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.Input{ProductID: p.ID})
		require.Error(t, err)
		assert.Equal(t, "The client id field is required.", err.Error())
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.Input{ClientID: 999, ProductID: p.ID})
		require.Error(t, err)
		assert.Equal(t, "The selected client id is invalid.", err.Error())
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.Input{ClientID: c.ID, ProductID: 999})
		require.Error(t, err)
		assert.Equal(t, "The selected product id is invalid.", err.Error())
	})

	t.Run("bad status", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.Input{ClientID: c.ID, ProductID: p.ID, Status: 7})
		require.Error(t, err)
		assert.Equal(t, "The selected status is invalid.", err.Error())
	})
}

func TestOrderService_Get_NotFound(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Get(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Equal(t, "Order not found", err.Error())
}

func TestOrderService_Update(t *testing.T) {
	svc, _, db := newService(t)
	c, p := seedClientAndProduct(t, db, "client@client.com")
	ctx := context.Background()

	o, err := svc.Create(ctx, domain.Input{ClientID: c.ID, ProductID: p.ID})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, o.ID, domain.Input{
		ClientID:  c.ID,
		ProductID: p.ID,
		Status:    models.OrderStatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, updated.Status)
}

func TestOrderService_Delete_SoftDeletes(t *testing.T) {
	svc, _, db := newService(t)
	c, p := seedClientAndProduct(t, db, "client@client.com")
	ctx := context.Background()

	o, err := svc.Create(ctx, domain.Input{ClientID: c.ID, ProductID: p.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, o.ID))

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
