package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favourite records that a user saved a recipe. At most one document exists
// per (userEmail, recipeId) pair.
type Favourite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	RecipeID  string             `bson:"recipeId" json:"recipeId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
