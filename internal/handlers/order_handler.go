package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	orderdomain "github.com/dexianlabs/pastelaria-api/internal/domain/order"
	"github.com/dexianlabs/pastelaria-api/internal/httpresp"
	"github.com/dexianlabs/pastelaria-api/internal/models"
	ucorder "github.com/dexianlabs/pastelaria-api/internal/usecase/order"
)

type OrderHandler struct {
	svc *ucorder.Service
}

func NewOrderHandler(svc *ucorder.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type OrderRequest struct {
	ClientID  uint `json:"client_id"`
	ProductID uint `json:"product_id"`
	Status    int  `json:"status"`
}

func (r OrderRequest) input() orderdomain.Input {
	return orderdomain.Input{
		ClientID:  r.ClientID,
		ProductID: r.ProductID,
		Status:    models.OrderStatus(r.Status),
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		apperr.Write(c, err)
		return
	}
	httpresp.OK(c, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		apperr.Write(c, apperr.NotFound("Order not found"))
		return
	}

	o, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	httpresp.OK(c, o)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation("The request body is invalid."))
		return
	}

	o, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully.",
		"order":   o,
	})
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		apperr.Write(c, apperr.NotFound("Order not found"))
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation("The request body is invalid."))
		return
	}

	o, err := h.svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully.",
		"order":   o,
	})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		apperr.Write(c, apperr.NotFound("Order not found"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		apperr.Write(c, err)
		return
	}

	httpresp.Message(c, "Order deleted successfully")
}
