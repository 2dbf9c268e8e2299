package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(apperr.NotFound("Order not found")))
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(apperr.Validation("The name field is required.")))
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(apperr.Authentication("The provided credentials are incorrect.")))

	// Plain errors fall back to 400.
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(errors.New("boom")))
}

func TestStatusOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("create order: %w", apperr.NotFound("Order not found"))
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestIsKind(t *testing.T) {
	err := apperr.Domain("The user does not have a valid email address.")
	assert.True(t, apperr.IsKind(err, apperr.KindDomain))
	assert.False(t, apperr.IsKind(err, apperr.KindValidation))
	assert.False(t, apperr.IsKind(errors.New("boom"), apperr.KindDomain))
}
