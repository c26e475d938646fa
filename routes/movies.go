package routes

import (
	"reelhub/controllers"

	"github.com/gin-gonic/gin"
)

func SetupMovieRoutes(router *gin.Engine, movies *controllers.MovieController) {
	// Specific routes must come before the parameterized :id route
	router.GET("/movies/popular", movies.Popular)
	router.GET("/movies/search", movies.Search)
	router.GET("/movies/:id", movies.MovieByID)
}
