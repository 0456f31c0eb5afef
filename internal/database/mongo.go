package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forkful/backend/config"
)

// Collection names in the catalog database.
const (
	RecipesCollection       = "recipes"
	ReviewsCollection       = "reviews"
	FavouritesCollection    = "favourites"
	ShoppingListsCollection = "shopping_lists"
	UsersCollection         = "users"
)

// DB wraps the Mongo client and the application database handle.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// New connects to MongoDB and verifies the connection with a ping.
func New(cfg *config.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging MongoDB: %w", err)
	}

	log.Printf("Successfully connected to MongoDB database %q", cfg.MongoDatabase)
	return &DB{
		Client:   client,
		Database: client.Database(cfg.MongoDatabase),
	}, nil
}

// Collection returns a handle for the named collection.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}

// HealthCheck checks if the database is accessible
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.Client.Ping(ctx, nil)
}

// EnsureIndexes creates the indexes the query paths rely on: the text index
// behind /search, the unique favourites pair, and the lookup indexes for
// per-user and per-recipe collections.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	recipeIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
			},
		},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}
	if _, err := db.Collection(RecipesCollection).Indexes().CreateMany(ctx, recipeIndexes); err != nil {
		return fmt.Errorf("error creating recipe indexes: %w", err)
	}

	favouriteIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userEmail", Value: 1},
			{Key: "recipeId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(FavouritesCollection).Indexes().CreateOne(ctx, favouriteIndex); err != nil {
		return fmt.Errorf("error creating favourites index: %w", err)
	}

	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, userIndex); err != nil {
		return fmt.Errorf("error creating user index: %w", err)
	}

	listIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(ShoppingListsCollection).Indexes().CreateOne(ctx, listIndex); err != nil {
		return fmt.Errorf("error creating shopping list index: %w", err)
	}

	reviewIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "recipeId", Value: 1},
			{Key: "submission_date", Value: -1},
		},
	}
	if _, err := db.Collection(ReviewsCollection).Indexes().CreateOne(ctx, reviewIndex); err != nil {
		return fmt.Errorf("error creating review index: %w", err)
	}

	return nil
}
