package profile

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

// Create parses free text into a profile and stores it as the current slot.
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		UserInput string   `json:"userInput"`
		Profile   Document `json:"profile"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.UserInput == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing userInput"})
		return
	}

	doc, err := h.service.ParseAndSave(c.Request.Context(), req.UserInput, req.Profile)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": doc})
}

func (h *Handler) Get(c *gin.Context) {
	doc, err := h.service.Current()
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": doc})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Clear(); err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
