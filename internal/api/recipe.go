package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/backend/internal/service"
)

// RecipeHandler serves the recipe catalog: listing, detail, search, and the
// tag/ingredient indexes.
type RecipeHandler struct {
	recipeService service.IRecipeService
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes registers the public catalog routes.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes", h.ListRecipes)
	router.GET("/recipes/:id", h.GetRecipe)
	router.GET("/search", h.Search)
	router.GET("/tags", h.ListTags)
	router.GET("/ingredients", h.ListIngredients)
}

// ListRecipes translates the query string into the listing pipeline and
// returns one page of recipes. An empty page is a normal response, not an
// error.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	params := service.ParseListParams(c.Request.URL.Query())

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), params)
	if err != nil {
		serverError(c, "Failed to fetch recipes", err)
		return
	}

	if len(recipes) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No recipes found matching your criteria"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		serverError(c, "Failed to fetch recipe", err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Search(c *gin.Context) {
	term := c.Query("searchTerm")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Search term is required"})
		return
	}

	results, err := h.recipeService.SearchRecipes(c.Request.Context(), term)
	if err != nil {
		serverError(c, "Failed to perform search", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"total":   len(results),
	})
}

func (h *RecipeHandler) ListTags(c *gin.Context) {
	tags, err := h.recipeService.ListTags(c.Request.Context())
	if err != nil {
		serverError(c, "Failed to fetch tags", err)
		return
	}
	if len(tags) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No tags found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tags": tags})
}

func (h *RecipeHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.recipeService.ListIngredients(c.Request.Context())
	if err != nil {
		serverError(c, "Failed to fetch ingredients", err)
		return
	}
	if len(ingredients) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No ingredients found in the database"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "ingredients": ingredients})
}
