package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"reelhub/db"
	"reelhub/middlewares"
	"reelhub/models"
	"reelhub/services"
	"reelhub/structs"

	"github.com/gin-gonic/gin"
)

const storeTimeout = 10 * time.Second

// ReviewController implements review CRUD over the store. Ownership is
// enforced on every mutation: the acting principal must match the
// document's userId. A missing document and an ownership mismatch are
// both answered with 403 so the two cases are indistinguishable.
type ReviewController struct {
	store db.ReviewStore
}

func NewReviewController(store db.ReviewStore) *ReviewController {
	return &ReviewController{store: store}
}

// List returns all reviews for a movie, always as an array.
func (rc *ReviewController) List(c *gin.Context) {
	movieID := c.Param("movieId")
	if movieID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "movieId required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	reviews, err := rc.store.FindByMovie(ctx, movieID)
	if err != nil {
		log.Printf("Get reviews error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Create stores a new review for the authenticated principal. The userId
// is taken from the verified token; anything the client sends for it is
// ignored.
func (rc *ReviewController) Create(c *gin.Context) {
	principal := middlewares.PrincipalFromContext(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
		return
	}

	var req structs.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	reviewText := strings.TrimSpace(req.ReviewText)
	if reviewText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	review := models.Review{
		MovieID:    req.MovieID,
		UserID:     principal.SubjectID,
		Rating:     *req.Rating,
		ReviewText: reviewText,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := rc.store.Insert(ctx, review)
	if err != nil {
		log.Printf("Post review error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Submit failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Update overwrites rating and reviewText on a review the principal owns.
func (rc *ReviewController) Update(c *gin.Context) {
	principal := middlewares.PrincipalFromContext(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
		return
	}

	var req structs.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	reviewText := strings.TrimSpace(req.ReviewText)
	if reviewText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	id := c.Param("id")
	if _, ok := rc.fetchOwned(ctx, c, principal, id, "Update failed"); !ok {
		return
	}

	if err := rc.store.UpdateByID(ctx, id, *req.Rating, reviewText); err != nil {
		// Deleted between fetch and update: the document is gone, so
		// answer the same way as any other missing document.
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		log.Printf("Update review error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete permanently removes a review the principal owns.
func (rc *ReviewController) Delete(c *gin.Context) {
	principal := middlewares.PrincipalFromContext(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	id := c.Param("id")
	if _, ok := rc.fetchOwned(ctx, c, principal, id, "Delete failed"); !ok {
		return
	}

	if err := rc.store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		log.Printf("Delete review error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListForUser returns all reviews created by the authenticated principal,
// always as an array.
func (rc *ReviewController) ListForUser(c *gin.Context) {
	principal := middlewares.PrincipalFromContext(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	reviews, err := rc.store.FindByUser(ctx, principal.SubjectID)
	if err != nil {
		log.Printf("User reviews error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// fetchOwned loads a review and runs the ownership check, writing the
// response itself when the check fails. ok is true only when the review
// exists, the store call succeeded and the principal owns the document.
func (rc *ReviewController) fetchOwned(ctx context.Context, c *gin.Context, principal *services.Principal, id, failMsg string) (*models.Review, bool) {
	review, err := rc.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return nil, false
		}
		log.Printf("Fetch review error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
		return nil, false
	}
	if !isOwner(principal, review) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return nil, false
	}
	return review, true
}

// isOwner reports whether the principal created the review.
func isOwner(principal *services.Principal, review *models.Review) bool {
	return principal != nil && review != nil && review.UserID == principal.SubjectID
}
