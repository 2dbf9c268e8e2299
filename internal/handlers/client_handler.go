package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	clientdomain "github.com/dexianlabs/pastelaria-api/internal/domain/client"
	"github.com/dexianlabs/pastelaria-api/internal/httpresp"
	ucclient "github.com/dexianlabs/pastelaria-api/internal/usecase/client"
)

type ClientHandler struct {
	svc *ucclient.Service
}

func NewClientHandler(svc *ucclient.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

type ClientRequest struct {
	UserID     uint   `json:"user_id"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"`
	Address    string `json:"address"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	Zipcode    string `json:"zipcode"`
}

func (r ClientRequest) input() clientdomain.Input {
	return clientdomain.Input{
		UserID:     r.UserID,
		Phone:      r.Phone,
		BirthDate:  r.BirthDate,
		Address:    r.Address,
		Complement: r.Complement,
		District:   r.District,
		Zipcode:    r.Zipcode,
	}
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.svc.List(c.Request.Context())
	if err != nil {
		apperr.Write(c, err)
		return
	}
	httpresp.OK(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		apperr.Write(c, apperr.NotFound("Client not found"))
		return
	}

	client, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation("The request body is invalid."))
		return
	}

	client, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Client created successfully.",
		"client":  client,
	})
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		apperr.Write(c, apperr.NotFound("Client not found"))
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation("The request body is invalid."))
		return
	}

	client, err := h.svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Client updated successfully.",
		"client":  client,
	})
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		apperr.Write(c, apperr.NotFound("Client not found"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		apperr.Write(c, err)
		return
	}

	httpresp.Message(c, "Client deleted successfully")
}
