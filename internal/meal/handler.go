package meal

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

func (h *Handler) Generate(c *gin.Context) {
	var req Request
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Diet == "" || req.Servings <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "diet and servings are required"})
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
