package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe is a document in the recipes collection. Ingredients map an
// ingredient name to a quantity string ("2 cups", "500 g").
type Recipe struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Category      string             `bson:"category" json:"category"`
	Tags          []string           `bson:"tags" json:"tags"`
	Instructions  []string           `bson:"instructions" json:"instructions"`
	Ingredients   map[string]string  `bson:"ingredients" json:"ingredients"`
	Prep          int                `bson:"prep" json:"prep"`
	Cook          int                `bson:"cook" json:"cook"`
	Servings      int                `bson:"servings" json:"servings"`
	Images        []string           `bson:"images" json:"images"`
	AverageRating float64            `bson:"averageRating" json:"averageRating"`
	ReviewCount   int                `bson:"reviewCount" json:"reviewCount"`
	PublishedAt   time.Time          `bson:"publishedAt,omitempty" json:"publishedAt"`
}
