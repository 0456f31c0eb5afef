package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forkful/backend/internal/database"
	"github.com/forkful/backend/internal/models"
)

// ReviewService handles review CRUD and keeps the recipe's rating aggregate
// in sync with the stored review set.
type ReviewService struct {
	reviews *mongo.Collection
	recipes *mongo.Collection
}

// NewReviewService creates a new ReviewService instance
func NewReviewService(db *database.DB) *ReviewService {
	return &ReviewService{
		reviews: db.Collection(database.ReviewsCollection),
		recipes: db.Collection(database.RecipesCollection),
	}
}

// ListReviews returns the reviews for a recipe, newest first.
func (s *ReviewService) ListReviews(ctx context.Context, recipeID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submission_date", Value: -1}})
	cursor, err := s.reviews.Find(ctx, bson.M{"recipeId": recipeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %w", err)
	}
	return reviews, nil
}

// AddReview inserts a review and recomputes the recipe's aggregate. The
// recipe must exist. userEmail keys ownership; username is the display name.
func (s *ReviewService) AddReview(ctx context.Context, recipeID, userEmail, username string, rating int, comment string) (*models.Review, error) {
	if err := s.recipeExists(ctx, recipeID); err != nil {
		return nil, err
	}

	review := models.Review{
		ID:             uuid.NewString(),
		RecipeID:       recipeID,
		UserEmail:      userEmail,
		Username:       username,
		Rating:         rating,
		Comment:        comment,
		SubmissionDate: time.Now(),
	}
	if _, err := s.reviews.InsertOne(ctx, review); err != nil {
		return nil, fmt.Errorf("error inserting review: %w", err)
	}

	if err := s.recomputeAggregate(ctx, recipeID); err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview edits a review. Only the submitting user may edit it.
func (s *ReviewService) UpdateReview(ctx context.Context, recipeID, reviewID, userEmail string, rating int, comment string) error {
	filter := bson.M{"_id": reviewID, "recipeId": recipeID, "userEmail": userEmail}
	update := bson.M{"$set": bson.M{
		"rating":  rating,
		"comment": comment,
	}}
	result, err := s.reviews.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating review: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return s.recomputeAggregate(ctx, recipeID)
}

// DeleteReview removes a review. Only the submitting user may delete it.
func (s *ReviewService) DeleteReview(ctx context.Context, recipeID, reviewID, userEmail string) error {
	result, err := s.reviews.DeleteOne(ctx, bson.M{"_id": reviewID, "recipeId": recipeID, "userEmail": userEmail})
	if err != nil {
		return fmt.Errorf("error deleting review: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return s.recomputeAggregate(ctx, recipeID)
}

func (s *ReviewService) recipeExists(ctx context.Context, recipeID string) error {
	objID, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		return ErrNotFound
	}
	count, err := s.recipes.CountDocuments(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("error checking recipe: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// recomputeAggregate derives averageRating and reviewCount from the full
// review set in one $group and persists them with one $set, so concurrent
// submissions settle as last-write-wins over a complete recompute rather
// than a stale increment.
func (s *ReviewService) recomputeAggregate(ctx context.Context, recipeID string) error {
	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "recipeId", Value: recipeID}}}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "average", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}

	cursor, err := s.reviews.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage})
	if err != nil {
		return fmt.Errorf("error aggregating reviews: %w", err)
	}

	var rows []struct {
		Average float64 `bson:"average"`
		Count   int     `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return fmt.Errorf("error decoding review aggregate: %w", err)
	}

	average, count := 0.0, 0
	if len(rows) > 0 {
		average, count = rows[0].Average, rows[0].Count
	}

	objID, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		return ErrNotFound
	}
	update := bson.M{"$set": bson.M{
		"averageRating": average,
		"reviewCount":   count,
	}}
	if _, err := s.recipes.UpdateOne(ctx, bson.M{"_id": objID}, update); err != nil {
		return fmt.Errorf("error updating rating aggregate: %w", err)
	}
	return nil
}
