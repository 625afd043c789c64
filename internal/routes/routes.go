package routes

import (
	"net/http"

	"carelink_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route on the engine. The same
// handlers are mounted under /api/v1 and under the unversioned /api
// prefix the deployed intake form still calls.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	for _, prefix := range []string{"/api/v1", "/api"} {
		api := ginRouter.Group(prefix)
		{
			appHandlers.AuthHandler.RegisterRoutes(api)
			appHandlers.SupplierHandler.RegisterRoutes(api)
			appHandlers.FileHandler.RegisterRoutes(api)
			appHandlers.MetaHandler.RegisterRoutes(api)
		}
	}

	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
