package service

import (
	"context"

	"github.com/forkful/backend/internal/models"
	"github.com/forkful/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GenerateToken(userID, email string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for catalog queries
type IRecipeService interface {
	ListRecipes(ctx context.Context, params ListParams) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)
	SearchRecipes(ctx context.Context, term string) ([]models.Recipe, error)
	ListTags(ctx context.Context) ([]string, error)
	ListIngredients(ctx context.Context) ([]string, error)
}

// IFavouriteService defines the interface for favourite operations
type IFavouriteService interface {
	AddFavourite(ctx context.Context, userEmail, recipeID string) (bool, error)
	RemoveFavourite(ctx context.Context, userEmail, recipeID string) error
	ListFavourites(ctx context.Context, userEmail string) ([]models.Favourite, error)
	CountFavourites(ctx context.Context, userEmail string) (int64, error)
}

// IShoppingListService defines the interface for shopping list operations
type IShoppingListService interface {
	CreateList(ctx context.Context, userID string, items []models.ShoppingListItem) (*models.ShoppingList, error)
	GetList(ctx context.Context, userID string) (*models.ShoppingList, error)
	ReplaceItems(ctx context.Context, userID string, items []models.ShoppingListItem) (*models.ShoppingList, error)
	AppendItems(ctx context.Context, userID string, items []models.ShoppingListItem) (*models.ShoppingList, error)
	DeleteList(ctx context.Context, userID string) error
}

// IReviewService defines the interface for review operations
type IReviewService interface {
	ListReviews(ctx context.Context, recipeID string) ([]models.Review, error)
	AddReview(ctx context.Context, recipeID, userEmail, username string, rating int, comment string) (*models.Review, error)
	UpdateReview(ctx context.Context, recipeID, reviewID, userEmail string, rating int, comment string) error
	DeleteReview(ctx context.Context, recipeID, reviewID, userEmail string) error
}
