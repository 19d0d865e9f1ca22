package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartcart/internal/apperr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Place(c *gin.Context) {
	var req struct {
		Cart       []any          `json:"cart"`
		Quantities map[string]int `json:"quantities"`
		Store      map[string]any `json:"store"`
		PickupCode string         `json:"pickup_code"`
		Profile    map[string]any `json:"profile"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Cart) == 0 || len(req.Store) == 0 || req.PickupCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required order fields."})
		return
	}

	orderID, err := h.service.Place(c.Request.Context(), Order{
		Cart:       req.Cart,
		Quantities: req.Quantities,
		Store:      req.Store,
		PickupCode: req.PickupCode,
		Profile:    req.Profile,
	})
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": "Failed to save order."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order_id": orderID})
}

func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
