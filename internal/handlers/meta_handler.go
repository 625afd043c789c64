package handlers

import (
	"net/http"

	"carelink_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves the static reference data the intake form renders
// its dropdowns from.
type MetaHandler struct {
	*BaseHandler
}

func NewMetaHandler(base *BaseHandler) *MetaHandler {
	return &MetaHandler{BaseHandler: base}
}

func (h *MetaHandler) RegisterRoutes(r *gin.RouterGroup) {
	meta := r.Group("/meta")
	{
		meta.GET("/banks", h.ListBanks)
		meta.GET("/districts", h.ListDistricts)
	}
}

func (h *MetaHandler) ListBanks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"banks": models.HongKongBanks})
}

func (h *MetaHandler) ListDistricts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"districts": models.HongKongDistricts})
}
