package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/backend/internal/middleware"
	"github.com/forkful/backend/internal/service"
	"github.com/forkful/backend/internal/types"
)

// FavouriteHandler serves the authenticated user's saved recipes. Every
// route degrades to an empty state for anonymous callers instead of
// returning 401, so the UI can render a zero badge without a session.
type FavouriteHandler struct {
	favouriteService service.IFavouriteService
}

// NewFavouriteHandler creates a new FavouriteHandler instance
func NewFavouriteHandler(favouriteService service.IFavouriteService) *FavouriteHandler {
	return &FavouriteHandler{favouriteService: favouriteService}
}

// RegisterRoutes registers the favourites routes behind optional auth.
func (h *FavouriteHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	favourites := router.Group("/favourites")
	favourites.Use(middleware.OptionalAuthMiddleware(validator))
	{
		favourites.GET("", h.List)
		favourites.POST("", h.Add)
		favourites.DELETE("", h.Remove)
	}
}

func (h *FavouriteHandler) List(c *gin.Context) {
	email := userEmail(c)
	if email == "" {
		h.emptyState(c)
		return
	}

	if c.Query("action") == "count" {
		count, err := h.favouriteService.CountFavourites(c.Request.Context(), email)
		if err != nil {
			serverError(c, "Error fetching favourites", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
		return
	}

	favourites, err := h.favouriteService.ListFavourites(c.Request.Context(), email)
	if err != nil {
		serverError(c, "Error fetching favourites", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favourites": favourites})
}

func (h *FavouriteHandler) Add(c *gin.Context) {
	email := userEmail(c)
	if email == "" {
		h.emptyState(c)
		return
	}

	var req types.AddFavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RecipeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe ID is required"})
		return
	}

	created, err := h.favouriteService.AddFavourite(c.Request.Context(), email, req.RecipeID)
	if err != nil {
		serverError(c, "Error adding to favourites", err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Recipe already in favourites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe added to favourites"})
}

func (h *FavouriteHandler) Remove(c *gin.Context) {
	email := userEmail(c)
	if email == "" {
		h.emptyState(c)
		return
	}

	var req types.RemoveFavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RecipeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe ID is required"})
		return
	}

	if err := h.favouriteService.RemoveFavourite(c.Request.Context(), email, req.RecipeID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favourite not found"})
			return
		}
		serverError(c, "Error removing from favourites", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe removed from favourites"})
}

func (h *FavouriteHandler) emptyState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": 0})
}
