package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dexianlabs/pastelaria-api/internal/config"
	"github.com/dexianlabs/pastelaria-api/internal/routes"
	"github.com/dexianlabs/pastelaria-api/internal/testutil"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := &config.Config{JWTSecret: "test-secret"}
	routes.RegisterRoutes(r, testutil.NewTestDB(t), nil, cfg, zap.NewNop())

	return r
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const registerBody = `{
	"name": "A",
	"email": "a@b.com",
	"password": "12345678",
	"password_confirmation": "12345678",
	"type": 2
}`

func TestRegister(t *testing.T) {
	r := newRouter(t)

	w := doJSON(r, http.MethodPost, "/register", registerBody, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, "User created successfully!", body["message"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", user["email"])
	assert.NotContains(t, user, "password")

	// Same email again is rejected.
	w = doJSON(r, http.MethodPost, "/register", registerBody, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "The email has already been taken.", decode(t, w)["message"])
}

func TestRegister_MissingEmail(t *testing.T) {
	r := newRouter(t)

	w := doJSON(r, http.MethodPost, "/register",
		`{"name":"A","password":"12345678","password_confirmation":"12345678","type":2}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "The email field is required.", decode(t, w)["message"])
}

func TestLogin(t *testing.T) {
	r := newRouter(t)

	w := doJSON(r, http.MethodPost, "/register", registerBody, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/login", `{"email":"a@b.com","password":"12345678"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	token, ok := decode(t, w)["token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	// The issued token opens the secured routes.
	w = doJSON(r, http.MethodGet, "/users", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newRouter(t)

	w := doJSON(r, http.MethodPost, "/register", registerBody, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/login", `{"email":"a@b.com","password":"wrong-password"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "The provided credentials are incorrect.", decode(t, w)["message"])
}

func TestLogin_UnknownEmailSameMessage(t *testing.T) {
	r := newRouter(t)

	w := doJSON(r, http.MethodPost, "/login", `{"email":"nobody@b.com","password":"12345678"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "The provided credentials are incorrect.", decode(t, w)["message"])
}

func TestSecuredRoutes_RequireToken(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/users", "/clients", "/products", "/orders"} {
		w := doJSON(r, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, "Unauthenticated.", decode(t, w)["message"])
	}

	w := doJSON(r, http.MethodGet, "/users", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	r := newRouter(t)

	w := doJSON(r, http.MethodPost, "/register", registerBody, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/login", `{"email":"a@b.com","password":"12345678"}`, "")
	token := decode(t, w)["token"].(string)

	w = doJSON(r, http.MethodGet, "/users/999", "", token)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w)["message"])
}
