package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forkful/backend/internal/database"
	"github.com/forkful/backend/internal/models"
)

// RecipeService handles catalog queries against the recipes collection.
type RecipeService struct {
	recipes      *mongo.Collection
	queryTimeout time.Duration
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *database.DB, queryTimeout time.Duration) *RecipeService {
	return &RecipeService{
		recipes:      db.Collection(database.RecipesCollection),
		queryTimeout: queryTimeout,
	}
}

// ListRecipes executes the listing pipeline. Large intermediate result sets
// may spill to disk; execution is bounded by the configured query timeout so
// a slow filter surfaces as an error instead of a hung request.
func (s *RecipeService) ListRecipes(ctx context.Context, params ListParams) ([]models.Recipe, error) {
	pipeline := BuildListPipeline(params)

	opts := options.Aggregate().
		SetAllowDiskUse(true).
		SetMaxTime(s.queryTimeout)

	cursor, err := s.recipes.Aggregate(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}
	defer cursor.Close(ctx)

	recipes := []models.Recipe{}
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, fmt.Errorf("error decoding recipes: %w", err)
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by its hex id
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var recipe models.Recipe
	if err := s.recipes.FindOne(ctx, bson.M{"_id": objID}).Decode(&recipe); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// SearchRecipes runs a ranked full-text match and, only when that yields
// nothing, falls back to a case-insensitive title substring match. Results
// are deduplicated by id.
func (s *RecipeService) SearchRecipes(ctx context.Context, term string) ([]models.Recipe, error) {
	textOpts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetMaxTime(s.queryTimeout)

	cursor, err := s.recipes.Find(ctx, bson.M{"$text": bson.M{"$search": term}}, textOpts)
	if err != nil {
		return nil, fmt.Errorf("error running text search: %w", err)
	}
	var results []models.Recipe
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding text search results: %w", err)
	}

	if len(results) == 0 {
		filter := bson.M{"title": primitive.Regex{
			Pattern: regexp.QuoteMeta(term),
			Options: "i",
		}}
		cursor, err := s.recipes.Find(ctx, filter, options.Find().SetMaxTime(s.queryTimeout))
		if err != nil {
			return nil, fmt.Errorf("error running fallback search: %w", err)
		}
		if err := cursor.All(ctx, &results); err != nil {
			return nil, fmt.Errorf("error decoding fallback results: %w", err)
		}
	}

	return dedupeByID(results), nil
}

// ListTags returns the distinct tag values across the catalog.
func (s *RecipeService) ListTags(ctx context.Context) ([]string, error) {
	values, err := s.recipes.Distinct(ctx, "tags", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing tags: %w", err)
	}

	tags := make([]string, 0, len(values))
	for _, v := range values {
		if tag, ok := v.(string); ok && tag != "" {
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// ListIngredients returns the distinct ingredient names across the catalog.
// Ingredients are stored as a name->quantity map, so the keys are unpacked
// with $objectToArray before grouping.
func (s *RecipeService) ListIngredients(ctx context.Context) ([]string, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "entries", Value: bson.D{{Key: "$objectToArray", Value: "$ingredients"}}},
		}}},
		bson.D{{Key: "$unwind", Value: "$entries"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$entries.k"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := s.recipes.Aggregate(ctx, pipeline, options.Aggregate().SetMaxTime(s.queryTimeout))
	if err != nil {
		return nil, fmt.Errorf("error listing ingredients: %w", err)
	}

	var rows []struct {
		Name string `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding ingredients: %w", err)
	}

	ingredients := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Name != "" {
			ingredients = append(ingredients, row.Name)
		}
	}
	return ingredients, nil
}

func dedupeByID(recipes []models.Recipe) []models.Recipe {
	seen := make(map[primitive.ObjectID]bool, len(recipes))
	out := recipes[:0]
	for _, r := range recipes {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out
}
