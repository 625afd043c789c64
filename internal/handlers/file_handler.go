package handlers

import (
	"net/http"
	"strings"

	"carelink_backend/internal/services"
	"carelink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler resolves stored document keys into time-limited URLs.
// Reviewers open documents through here instead of holding direct
// bucket credentials.
type FileHandler struct {
	*BaseHandler
	supplierService services.SupplierService
}

func NewFileHandler(base *BaseHandler, supplierService services.SupplierService) *FileHandler {
	return &FileHandler{
		BaseHandler:     base,
		supplierService: supplierService,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Wildcard because keys contain the folder prefix, e.g.
	// idCards/2026-01-02T03-04-05Z-a1b2c3.png.
	r.GET("/suppliers/files/*fileKey", h.GetFile)
}

func (h *FileHandler) GetFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("fileKey"), "/")
	if key == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file key"))
		return
	}

	url, err := h.supplierService.FileURL(c.Request.Context(), key)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, url)
}
