package controllers

import (
	"log"
	"net/http"
	"strings"

	"reelhub/services"

	"github.com/gin-gonic/gin"
)

// MovieController proxies read-only catalog queries to TMDB. Upstream
// bodies are relayed verbatim; upstream error detail is logged, never
// included in the client-visible message.
type MovieController struct {
	tmdb *services.TMDBService
}

func NewMovieController(tmdb *services.TMDBService) *MovieController {
	return &MovieController{tmdb: tmdb}
}

func (mc *MovieController) Popular(c *gin.Context) {
	body, err := mc.tmdb.Popular(c.Request.Context())
	if err != nil {
		log.Printf("TMDB popular error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "TMDB failed"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

func (mc *MovieController) Search(c *gin.Context) {
	query := c.Query("query")
	if strings.TrimSpace(query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query required"})
		return
	}

	body, err := mc.tmdb.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("TMDB search error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

func (mc *MovieController) MovieByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Movie ID required"})
		return
	}

	body, err := mc.tmdb.MovieByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("TMDB movie error: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
