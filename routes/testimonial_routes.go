package routes

import (
	"estatehub/internal/handlers"

	"github.com/gin-gonic/gin"
)

func SetupTestimonialRoutes(r gin.IRouter, testimonialHandler *handlers.TestimonialHandler, requireAuth gin.HandlerFunc) {
	r.GET("/testimonials", testimonialHandler.ListTestimonials)

	protected := r.Group("")
	protected.Use(requireAuth)
	{
		protected.GET("/testimonials/user/:email", testimonialHandler.GetUserTestimonial)
		protected.POST("/testimonials", testimonialHandler.CreateTestimonial)
		protected.PUT("/testimonials/:id", testimonialHandler.UpdateTestimonial)
		protected.DELETE("/testimonials/:id", testimonialHandler.DeleteTestimonial)
	}
}
