package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	userdomain "github.com/dexianlabs/pastelaria-api/internal/domain/user"
	"github.com/dexianlabs/pastelaria-api/internal/httpresp"
	"github.com/dexianlabs/pastelaria-api/internal/models"
	ucuser "github.com/dexianlabs/pastelaria-api/internal/usecase/user"
)

type UserHandler struct {
	svc *ucuser.Service
}

func NewUserHandler(svc *ucuser.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

type UpdateUserRequest struct {
	Name                 *string `json:"name"`
	Email                *string `json:"email"`
	Password             *string `json:"password"`
	PasswordConfirmation *string `json:"password_confirmation"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		apperr.Write(c, err)
		return
	}
	httpresp.OK(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		apperr.Write(c, apperr.NotFound("User not found"))
		return
	}

	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation("The request body is invalid."))
		return
	}

	u, err := h.svc.Create(c.Request.Context(), userdomain.CreateInput{
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
		"message": "User created successfully.",
		"user":    u,
	})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		apperr.Write(c, apperr.NotFound("User not found"))
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation("The request body is invalid."))
		return
	}

	u, err := h.svc.Update(c.Request.Context(), id, userdomain.UpdateInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully.",
		"user":    u,
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		apperr.Write(c, apperr.NotFound("User not found"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		apperr.Write(c, err)
		return
	}

	httpresp.Message(c, "User deleted successfully")
}
