package routes

import (
	"estatehub/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPropertyRoutes registers listing routes. Reads are public; per-owner
// listings and all writes go through requireAuth.
func SetupPropertyRoutes(r gin.IRouter, propertyHandler *handlers.PropertyHandler, requireAuth gin.HandlerFunc) {
	r.GET("/properties", propertyHandler.ListProperties)
	r.GET("/properties/:id", propertyHandler.GetProperty)

	protected := r.Group("")
	protected.Use(requireAuth)
	{
		protected.GET("/my-properties/:email", propertyHandler.ListOwnerProperties)
		protected.POST("/properties", propertyHandler.CreateProperty)
		protected.PUT("/properties/:id", propertyHandler.UpdateProperty)
		protected.DELETE("/properties/:id", propertyHandler.DeleteProperty)
	}
}
