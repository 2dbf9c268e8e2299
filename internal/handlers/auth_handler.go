package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	"github.com/dexianlabs/pastelaria-api/internal/config"
	userdomain "github.com/dexianlabs/pastelaria-api/internal/domain/user"
	"github.com/dexianlabs/pastelaria-api/internal/middleware"
	"github.com/dexianlabs/pastelaria-api/internal/models"
	ucuser "github.com/dexianlabs/pastelaria-api/internal/usecase/user"
	"github.com/dexianlabs/pastelaria-api/internal/validators"
)

type AuthHandler struct {
	users  *ucuser.Service
	repo   userdomain.Repository
	rdb    *redis.Client
	config *config.Config
}

func NewAuthHandler(
	users *ucuser.Service,
	repo userdomain.Repository,
	rdb *redis.Client,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		users:  users,
		repo:   repo,
		rdb:    rdb,
		config: cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Type                 int    `json:"type"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation("The request body is invalid."))
		return
	}

	u, err := h.users.Create(c.Request.Context(), userdomain.CreateInput{
		Name:                 req.Name,
		Email:                strings.ToLower(strings.TrimSpace(req.Email)),
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Type:                 models.UserType(req.Type),
	})
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    u,
		"message": "User created successfully!",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation("The request body is invalid."))
		return
	}

	if req.Email == "" {
		apperr.Write(c, apperr.Validation("The email field is required."))
		return
	}
	if !validators.IsEmailValid(req.Email) {
		apperr.Write(c, apperr.Validation("The email field must be a valid email address."))
		return
	}
	if req.Password == "" {
		apperr.Write(c, apperr.Validation("The password field is required."))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Same message whether the account is missing or the password is
	// wrong; no account enumeration.
	u, err := h.repo.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Write(c, apperr.Authentication("The provided credentials are incorrect."))
			return
		}
		apperr.Write(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		apperr.Write(c, apperr.Authentication("The provided credentials are incorrect."))
		return
	}

	token, err := h.generateToken(u)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout denylists the presented token until it would have expired
// anyway.
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString(middleware.ContextTokenID)
	exp := c.GetInt64(middleware.ContextTokenExp)

	if h.rdb != nil && jti != "" {
		ttl := time.Until(time.Unix(exp, 0))
		if ttl > 0 {
			if err := h.rdb.Set(c.Request.Context(), middleware.RevokedTokenKey(jti), "1", ttl).Err(); err != nil {
				apperr.Write(c, err)
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(u *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"type": int(u.Type),
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
