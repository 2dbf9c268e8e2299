package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dexianlabs/pastelaria-api/internal/apperr"
	productdomain "github.com/dexianlabs/pastelaria-api/internal/domain/product"
	"github.com/dexianlabs/pastelaria-api/internal/httpresp"
	ucproduct "github.com/dexianlabs/pastelaria-api/internal/usecase/product"
)

type ProductHandler struct {
	svc *ucproduct.Service
}

func NewProductHandler(svc *ucproduct.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		apperr.Write(c, err)
		return
	}
	httpresp.OK(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		apperr.Write(c, apperr.NotFound("Product not found"))
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	in, err := h.bindForm(c)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully.",
		"product": p,
	})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		apperr.Write(c, apperr.NotFound("Product not found"))
		return
	}

	in, err := h.bindForm(c)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully.",
		"product": p,
	})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		apperr.Write(c, apperr.NotFound("Product not found"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		apperr.Write(c, err)
		return
	}

	httpresp.Message(c, "Product deleted successfully")
}

// bindForm reads the multipart fields. The photo part is optional here;
// the service decides whether its absence is acceptable.
func (h *ProductHandler) bindForm(c *gin.Context) (productdomain.Input, error) {
	var in productdomain.Input

	in.Name = c.PostForm("name")

	if priceStr := c.PostForm("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			return in, apperr.Validation("The price field must be a number.")
		}
		in.Price = &price
	}

	header, err := c.FormFile("photo")
	if err != nil {
		return in, nil
	}

	f, err := header.Open()
	if err != nil {
		return in, apperr.Validation("The photo field must be a valid image.")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return in, apperr.Validation("The photo field must be a valid image.")
	}

	in.Photo = &productdomain.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Data:     data,
	}
	return in, nil
}
