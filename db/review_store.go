package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reelhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no review exists for the given id. A
// malformed id is reported the same way since no document can have it.
var ErrNotFound = errors.New("review not found")

// ReviewStore is the persistence boundary for reviews. Implementations
// return typed Review values only; the raw storage representation never
// leaves this package. Query results carry no ordering guarantee.
type ReviewStore interface {
	Insert(ctx context.Context, review models.Review) (string, error)
	FindByMovie(ctx context.Context, movieID string) ([]models.Review, error)
	FindByUser(ctx context.Context, userID string) ([]models.Review, error)
	GetByID(ctx context.Context, id string) (*models.Review, error)
	UpdateByID(ctx context.Context, id string, rating int, reviewText string) error
	DeleteByID(ctx context.Context, id string) error
}

// MongoReviewStore keeps reviews in a single MongoDB collection.
type MongoReviewStore struct {
	coll *mongo.Collection
}

func NewMongoReviewStore(database *mongo.Database, collection string) *MongoReviewStore {
	return &MongoReviewStore{coll: database.Collection(collection)}
}

func (s *MongoReviewStore) Insert(ctx context.Context, review models.Review) (string, error) {
	review.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, review); err != nil {
		return "", fmt.Errorf("failed to insert review: %w", err)
	}
	return review.ID.Hex(), nil
}

func (s *MongoReviewStore) FindByMovie(ctx context.Context, movieID string) ([]models.Review, error) {
	return s.findByField(ctx, "movieId", movieID)
}

func (s *MongoReviewStore) FindByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return s.findByField(ctx, "userId", userID)
}

func (s *MongoReviewStore) findByField(ctx context.Context, field, value string) ([]models.Review, error) {
	cursor, err := s.coll.Find(ctx, bson.M{field: value})
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

func (s *MongoReviewStore) GetByID(ctx context.Context, id string) (*models.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var review models.Review
	err = s.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch review: %w", err)
	}
	return &review, nil
}

func (s *MongoReviewStore) UpdateByID(ctx context.Context, id string, rating int, reviewText string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": objectID}, updatePatch(rating, reviewText, time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoReviewStore) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// updatePatch overwrites rating and reviewText and stamps updatedAt.
// userId, movieId and createdAt are deliberately untouched.
func updatePatch(rating int, reviewText string, now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"rating":     rating,
		"reviewText": reviewText,
		"updatedAt":  now,
	}}
}
