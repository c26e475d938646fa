package routes

import (
	"reelhub/controllers"

	"github.com/gin-gonic/gin"
)

// SetupReviewRoutes registers the review endpoints. Reading a movie's
// reviews is public; every mutation and the per-user listing go through
// the authenticated group.
func SetupReviewRoutes(router *gin.Engine, auth *gin.RouterGroup, reviews *controllers.ReviewController) {
	router.GET("/reviews/:movieId", reviews.List)

	auth.POST("/reviews", reviews.Create)
	auth.PUT("/reviews/:id", reviews.Update)
	auth.DELETE("/reviews/:id", reviews.Delete)
	auth.GET("/user/reviews", reviews.ListForUser)
}
