package models

import "time"

// Review references a recipe by id; it is not embedded in the recipe
// document. The recipe's averageRating/reviewCount are recomputed from the
// full review set after every mutation.
type Review struct {
	ID             string    `bson:"_id" json:"id"`
	RecipeID       string    `bson:"recipeId" json:"recipeId"`
	UserEmail      string    `bson:"userEmail" json:"-"`
	Username       string    `bson:"username" json:"username"`
	Rating         int       `bson:"rating" json:"rating"`
	Comment        string    `bson:"comment" json:"comment"`
	SubmissionDate time.Time `bson:"submission_date" json:"submissionDate"`
}
