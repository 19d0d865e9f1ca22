package vision

import (
	"io"
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

func (h *Handler) Detect(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
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

	result, err := h.service.Detect(c.Request.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":                    "Image uploaded and processed successfully!",
		"allergens_and_alternatives": result,
	})
}

func (h *Handler) Latest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"allergens_and_alternatives": h.service.Latest()})
}
