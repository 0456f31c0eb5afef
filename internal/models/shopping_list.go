package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShoppingListItem names are normalized (trimmed, lowercased) before storage
// so append-with-dedup compares consistently.
type ShoppingListItem struct {
	Name      string `bson:"name" json:"name"`
	Quantity  int    `bson:"quantity" json:"quantity"`
	Purchased bool   `bson:"purchased" json:"purchased"`
}

// ShoppingList holds at most one list per user.
type ShoppingList struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Items     []ShoppingListItem `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
