package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a single user review of a movie. The userId is always the
// subject id of the principal that created the document and never changes
// afterwards. updatedAt stays absent until the first update.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MovieID    string             `bson:"movieId" json:"movieId"`
	UserID     string             `bson:"userId" json:"userId"`
	Rating     int                `bson:"rating" json:"rating"`
	ReviewText string             `bson:"reviewText" json:"reviewText"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
