package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forkful/backend/internal/models"
	"github.com/forkful/backend/internal/service"
	"github.com/forkful/backend/internal/types"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *mockAuthService) GenerateToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if claims := args.Get(0); claims != nil {
		return claims.(*types.TokenClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRecipeService struct {
	mock.Mock
}

func (m *mockRecipeService) ListRecipes(ctx context.Context, params service.ListParams) ([]models.Recipe, error) {
	args := m.Called(ctx, params)
	if recipes := args.Get(0); recipes != nil {
		return recipes.([]models.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecipeService) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if recipe := args.Get(0); recipe != nil {
		return recipe.(*models.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecipeService) SearchRecipes(ctx context.Context, term string) ([]models.Recipe, error) {
	args := m.Called(ctx, term)
	if recipes := args.Get(0); recipes != nil {
		return recipes.([]models.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecipeService) ListTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if tags := args.Get(0); tags != nil {
		return tags.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecipeService) ListIngredients(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if ingredients := args.Get(0); ingredients != nil {
		return ingredients.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockFavouriteService struct {
	mock.Mock
}

func (m *mockFavouriteService) AddFavourite(ctx context.Context, userEmail, recipeID string) (bool, error) {
	args := m.Called(ctx, userEmail, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavouriteService) RemoveFavourite(ctx context.Context, userEmail, recipeID string) error {
	args := m.Called(ctx, userEmail, recipeID)
	return args.Error(0)
}

func (m *mockFavouriteService) ListFavourites(ctx context.Context, userEmail string) ([]models.Favourite, error) {
	args := m.Called(ctx, userEmail)
	if favourites := args.Get(0); favourites != nil {
		return favourites.([]models.Favourite), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFavouriteService) CountFavourites(ctx context.Context, userEmail string) (int64, error) {
	args := m.Called(ctx, userEmail)
	return args.Get(0).(int64), args.Error(1)
}

type mockShoppingListService struct {
	mock.Mock
}

func (m *mockShoppingListService) CreateList(ctx context.Context, userID string, items []models.ShoppingListItem) (*models.ShoppingList, error) {
	args := m.Called(ctx, userID, items)
	if list := args.Get(0); list != nil {
		return list.(*models.ShoppingList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShoppingListService) GetList(ctx context.Context, userID string) (*models.ShoppingList, error) {
	args := m.Called(ctx, userID)
	if list := args.Get(0); list != nil {
		return list.(*models.ShoppingList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShoppingListService) ReplaceItems(ctx context.Context, userID string, items []models.ShoppingListItem) (*models.ShoppingList, error) {
	args := m.Called(ctx, userID, items)
	if list := args.Get(0); list != nil {
		return list.(*models.ShoppingList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShoppingListService) AppendItems(ctx context.Context, userID string, items []models.ShoppingListItem) (*models.ShoppingList, error) {
	args := m.Called(ctx, userID, items)
	if list := args.Get(0); list != nil {
		return list.(*models.ShoppingList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShoppingListService) DeleteList(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockReviewService struct {
	mock.Mock
}

func (m *mockReviewService) ListReviews(ctx context.Context, recipeID string) ([]models.Review, error) {
	args := m.Called(ctx, recipeID)
	if reviews := args.Get(0); reviews != nil {
		return reviews.([]models.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewService) AddReview(ctx context.Context, recipeID, userEmail, username string, rating int, comment string) (*models.Review, error) {
	args := m.Called(ctx, recipeID, userEmail, username, rating, comment)
	if review := args.Get(0); review != nil {
		return review.(*models.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, recipeID, reviewID, userEmail string, rating int, comment string) error {
	args := m.Called(ctx, recipeID, reviewID, userEmail, rating, comment)
	return args.Error(0)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, recipeID, reviewID, userEmail string) error {
	args := m.Called(ctx, recipeID, reviewID, userEmail)
	return args.Error(0)
}
