package store

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartcart/internal/cart"
	"smartcart/internal/qr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) PickupSuggestion(c *gin.Context) {
	var req struct {
		Cart []any `json:"cart"`
	}
	if err := c.BindJSON(&req); err != nil || len(req.Cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No cart provided"})
		return
	}

	suggestion := h.service.Suggest(cart.NormalizeNames(req.Cart))

	if suggestion.Store != nil {
		log.Printf("pickup store=%s packed=%d missing=%d not_found=%d",
			suggestion.Store.Name,
			len(suggestion.PackedItems),
			len(suggestion.MissingItems),
			len(suggestion.NotFoundItems),
		)
	}

	c.JSON(http.StatusOK, suggestion)
}

// PickupCodeQR renders a pickup code as a QR image so it can be shown at the
// counter.
func (h *Handler) PickupCodeQR(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing pickup code"})
		return
	}

	png, err := qr.EncodePNG(code, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
