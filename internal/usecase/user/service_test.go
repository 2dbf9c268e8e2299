package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	"github.com/dexianlabs/pastelaria-api/internal/audit"
	domain "github.com/dexianlabs/pastelaria-api/internal/domain/user"
	"github.com/dexianlabs/pastelaria-api/internal/infra/repository"
	"github.com/dexianlabs/pastelaria-api/internal/models"
	"github.com/dexianlabs/pastelaria-api/internal/testutil"
	ucuser "github.com/dexianlabs/pastelaria-api/internal/usecase/user"
)

func newService(t *testing.T) (*ucuser.Service, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t)
	logger := zap.NewNop()
	dispatcher := audit.NewDispatcher(audit.New(db), logger)

	return ucuser.NewService(repository.NewUserGormRepository(db), dispatcher, logger), db
}

func validInput() domain.CreateInput {
	return domain.CreateInput{
		Name:                 "John Doe",
		Email:                "johndoe@example.com",
		Password:             "password",
		PasswordConfirmation: "password",
		Type:                 models.UserTypeClient,
	}
}

func TestUserService_Create(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	assert.Equal(t, "johndoe@example.com", u.Email)
	assert.Equal(t, models.UserTypeClient, u.Type)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password")))
	assert.NotEqual(t, "password", u.PasswordHash)
}

func TestUserService_Create_Validation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*domain.CreateInput)
		message string
	}{
		{
			name:    "missing email",
			mutate:  func(in *domain.CreateInput) { in.Email = "" },
			message: "The email field is required.",
		},
		{
			name:    "malformed email",
			mutate:  func(in *domain.CreateInput) { in.Email = "not-an-email" },
			message: "The email field must be a valid email address.",
		},
		{
			name:    "missing name",
			mutate:  func(in *domain.CreateInput) { in.Name = "" },
			message: "The name field is required.",
		},
		{
			name:    "short password",
			mutate:  func(in *domain.CreateInput) { in.Password = "short"; in.PasswordConfirmation = "short" },
			message: "The password field must be at least 8 characters.",
		},
		{
			name:    "confirmation mismatch",
			mutate:  func(in *domain.CreateInput) { in.PasswordConfirmation = "different" },
			message: "The password confirmation does not match.",
		},
		{
			name:    "bad type",
			mutate:  func(in *domain.CreateInput) { in.Type = 9 },
			message: "The selected type is invalid.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(ctx, in)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validInput())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, "The email has already been taken.", err.Error())
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Equal(t, "User not found", err.Error())
}

func TestUserService_Update(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	name := "Jane Doe"
	email := "janedoe@example.com"
	updated, err := svc.Update(ctx, u.ID, domain.UpdateInput{Name: &name, Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "janedoe@example.com", updated.Email)
}

func TestUserService_Update_DuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	other := validInput()
	other.Email = "other@example.com"
	second, err := svc.Create(ctx, other)
	require.NoError(t, err)

	email := first.Email
	_, err = svc.Update(ctx, second.ID, domain.UpdateInput{Email: &email})
	require.Error(t, err)
	assert.Equal(t, "The email has already been taken.", err.Error())
}

func TestUserService_Delete_SoftDeletes(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u.ID))

	// Gone from normal queries.
	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = svc.Get(ctx, u.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	// Still in the table, marked deleted.
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
