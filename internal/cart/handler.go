package cart

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartcart/internal/apperr"
	"smartcart/internal/profile"
	"smartcart/internal/qr"
)

type Handler struct {
	service  *Service
	profiles profile.Repository
}

func NewHandler(service *Service, profiles profile.Repository) *Handler {
	return &Handler{service: service, profiles: profiles}
}

// ProcessCart classifies a shopping list against the profile supplied in the
// request body.
func (h *Handler) ProcessCart(c *gin.Context) {
	var req struct {
		ShoppingList []any            `json:"shoppingList"`
		Profile      profile.Document `json:"profile"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entries := h.service.ProcessCart(NormalizeNames(req.ShoppingList), req.Profile)
	c.JSON(http.StatusOK, gin.H{"cart": entries})
}

// ScanSKU analyzes a single product, identified by SKU, against the stored
// profile.
func (h *Handler) ScanSKU(c *gin.Context) {
	var req struct {
		SKU string `json:"sku"`
	}
	if err := c.BindJSON(&req); err != nil || req.SKU == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing SKU"})
		return
	}

	doc, err := h.profiles.Load()
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": "No user profile found"})
		return
	}

	result, err := h.service.ScanSKU(req.SKU, doc)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ScanImage decodes a QR code out of an uploaded image and analyzes the
// encoded SKU. The payload may be the bare SKU or a JSON object carrying one.
func (h *Handler) ScanImage(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}

	payload, found, err := qr.Decode(data)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no QR code found in image"})
		return
	}

	sku := payload
	var embedded struct {
		SKU string `json:"sku"`
	}
	if json.Unmarshal([]byte(payload), &embedded) == nil && embedded.SKU != "" {
		sku = embedded.SKU
	}

	doc, err := h.profiles.Load()
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": "No user profile found"})
		return
	}

	result, err := h.service.ScanSKU(sku, doc)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
