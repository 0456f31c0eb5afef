package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forkful/backend/internal/database"
	"github.com/forkful/backend/internal/models"
)

// FavouriteService handles a user's saved recipes. Favourites are keyed by
// the email claim of the session token.
type FavouriteService struct {
	favourites *mongo.Collection
}

// NewFavouriteService creates a new FavouriteService instance
func NewFavouriteService(db *database.DB) *FavouriteService {
	return &FavouriteService{
		favourites: db.Collection(database.FavouritesCollection),
	}
}

// AddFavourite saves a recipe for the user. Adding an existing pair is not
// an error; the return value reports whether a record was created.
func (s *FavouriteService) AddFavourite(ctx context.Context, userEmail, recipeID string) (bool, error) {
	filter := bson.M{"userEmail": userEmail, "recipeId": recipeID}
	count, err := s.favourites.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("error checking favourite: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	fav := models.Favourite{
		UserEmail: userEmail,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	if _, err := s.favourites.InsertOne(ctx, fav); err != nil {
		// The unique index backstops a concurrent add of the same pair.
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("error adding favourite: %w", err)
	}
	return true, nil
}

// RemoveFavourite deletes the (user, recipe) pair.
func (s *FavouriteService) RemoveFavourite(ctx context.Context, userEmail, recipeID string) error {
	result, err := s.favourites.DeleteOne(ctx, bson.M{"userEmail": userEmail, "recipeId": recipeID})
	if err != nil {
		return fmt.Errorf("error removing favourite: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFavourites returns the user's favourites, newest first.
func (s *FavouriteService) ListFavourites(ctx context.Context, userEmail string) ([]models.Favourite, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.favourites.Find(ctx, bson.M{"userEmail": userEmail}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing favourites: %w", err)
	}

	favourites := []models.Favourite{}
	if err := cursor.All(ctx, &favourites); err != nil {
		return nil, fmt.Errorf("error decoding favourites: %w", err)
	}
	return favourites, nil
}

// CountFavourites returns how many recipes the user has saved.
func (s *FavouriteService) CountFavourites(ctx context.Context, userEmail string) (int64, error) {
	count, err := s.favourites.CountDocuments(ctx, bson.M{"userEmail": userEmail})
	if err != nil {
		return 0, fmt.Errorf("error counting favourites: %w", err)
	}
	return count, nil
}
