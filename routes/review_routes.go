package routes

import (
	"estatehub/internal/handlers"

	"github.com/gin-gonic/gin"
)

func SetupReviewRoutes(r gin.IRouter, reviewHandler *handlers.ReviewHandler, requireAuth gin.HandlerFunc) {
	r.GET("/properties/:id/reviews", reviewHandler.ListPropertyReviews)

	protected := r.Group("")
	protected.Use(requireAuth)
	{
		protected.GET("/my-property-ratings/:email", reviewHandler.ListOwnerReviews)
		protected.GET("/my-ratings/:email", reviewHandler.ListReviewerReviews)
		protected.POST("/properties/:id/reviews", reviewHandler.CreateReview)
		protected.PUT("/reviews/:id", reviewHandler.UpdateReview)
		protected.DELETE("/reviews/:id", reviewHandler.DeleteReview)
	}
}
