package types

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddFavouriteRequest represents the request body for saving a recipe
type AddFavouriteRequest struct {
	RecipeID string `json:"recipeId"`
}

// RemoveFavouriteRequest represents the request body for removing a saved recipe
type RemoveFavouriteRequest struct {
	RecipeID string `json:"recipeId"`
}

// ShoppingListItemRequest is one entry in a shopping list payload. Quantity
// defaults to 1 and purchased to false when omitted.
type ShoppingListItemRequest struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Purchased bool   `json:"purchased"`
}

// ShoppingListRequest represents the request body for creating or updating a
// shopping list
type ShoppingListRequest struct {
	Items []ShoppingListItemRequest `json:"items"`
}

// CreateReviewRequest represents the request body for submitting a review
type CreateReviewRequest struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// UpdateReviewRequest represents the request body for editing a review
type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
