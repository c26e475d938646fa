package structs

// Rating is an integer between 1 and 10. The pointer keeps "rating": 0
// distinguishable from a missing field so both fail validation the same way.
type CreateReviewRequest struct {
	MovieID    string `json:"movieId" binding:"required"`
	Rating     *int   `json:"rating" binding:"required,gte=1,lte=10"`
	ReviewText string `json:"reviewText" binding:"required"`
}

type UpdateReviewRequest struct {
	Rating     *int   `json:"rating" binding:"required,gte=1,lte=10"`
	ReviewText string `json:"reviewText" binding:"required"`
}
