package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forkful/backend/internal/database"
	"github.com/forkful/backend/internal/models"
	"github.com/forkful/backend/internal/types"
)

// ShoppingListService manages the single shopping list each user owns.
type ShoppingListService struct {
	lists *mongo.Collection
}

// NewShoppingListService creates a new ShoppingListService instance
func NewShoppingListService(db *database.DB) *ShoppingListService {
	return &ShoppingListService{
		lists: db.Collection(database.ShoppingListsCollection),
	}
}

// NormalizeItems trims and lowercases item names, defaults quantity to 1,
// and drops entries whose name normalizes to empty.
func NormalizeItems(items []types.ShoppingListItemRequest) []models.ShoppingListItem {
	normalized := make([]models.ShoppingListItem, 0, len(items))
	for _, item := range items {
		name := strings.ToLower(strings.TrimSpace(item.Name))
		if name == "" {
			continue
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		normalized = append(normalized, models.ShoppingListItem{
			Name:      name,
			Quantity:  quantity,
			Purchased: item.Purchased,
		})
	}
	return normalized
}

// CreateList creates the user's shopping list. A user has at most one list;
// creating a second one fails with ErrAlreadyExists.
func (s *ShoppingListService) CreateList(ctx context.Context, userID string, items []models.ShoppingListItem) (*models.ShoppingList, error) {
	count, err := s.lists.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("error checking shopping list: %w", err)
	}
	if count > 0 {
		return nil, ErrAlreadyExists
	}

	now := time.Now()
	list := models.ShoppingList{
		UserID:    userID,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.lists.InsertOne(ctx, list); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating shopping list: %w", err)
	}
	return &list, nil
}

// GetList returns the user's shopping list.
func (s *ShoppingListService) GetList(ctx context.Context, userID string) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := s.lists.FindOne(ctx, bson.M{"userId": userID}).Decode(&list); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching shopping list: %w", err)
	}
	return &list, nil
}

// ReplaceItems swaps the list contents wholesale.
func (s *ShoppingListService) ReplaceItems(ctx context.Context, userID string, items []models.ShoppingListItem) (*models.ShoppingList, error) {
	return s.setItems(ctx, userID, items)
}

// AppendItems adds items whose normalized name is not already on the list.
// Existing entries win over incoming duplicates.
func (s *ShoppingListService) AppendItems(ctx context.Context, userID string, items []models.ShoppingListItem) (*models.ShoppingList, error) {
	list, err := s.GetList(ctx, userID)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(list.Items))
	for _, item := range list.Items {
		present[item.Name] = true
	}

	merged := list.Items
	for _, item := range items {
		if present[item.Name] {
			continue
		}
		present[item.Name] = true
		merged = append(merged, item)
	}

	return s.setItems(ctx, userID, merged)
}

// DeleteList removes the user's entire shopping list.
func (s *ShoppingListService) DeleteList(ctx context.Context, userID string) error {
	result, err := s.lists.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return fmt.Errorf("error deleting shopping list: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ShoppingListService) setItems(ctx context.Context, userID string, items []models.ShoppingListItem) (*models.ShoppingList, error) {
	update := bson.M{"$set": bson.M{
		"items":     items,
		"updatedAt": time.Now(),
	}}
	result, err := s.lists.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return nil, fmt.Errorf("error updating shopping list: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetList(ctx, userID)
}
