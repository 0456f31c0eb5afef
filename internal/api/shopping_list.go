package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/backend/internal/middleware"
	"github.com/forkful/backend/internal/models"
	"github.com/forkful/backend/internal/service"
	"github.com/forkful/backend/internal/types"
)

// ShoppingListHandler serves the single shopping list each user owns.
type ShoppingListHandler struct {
	listService service.IShoppingListService
}

// NewShoppingListHandler creates a new ShoppingListHandler instance
func NewShoppingListHandler(listService service.IShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{listService: listService}
}

// RegisterRoutes registers the shopping list routes behind required auth.
func (h *ShoppingListHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	list := router.Group("/shoppingList")
	list.Use(middleware.AuthMiddleware(validator))
	{
		list.POST("", h.Create)
		list.GET("", h.Get)
		list.PUT("", h.Update)
		list.DELETE("", h.Delete)
	}
}

func (h *ShoppingListHandler) Create(c *gin.Context) {
	items, ok := h.bindItems(c)
	if !ok {
		return
	}

	list, err := h.listService.CreateList(c.Request.Context(), userID(c), items)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Shopping list already exists"})
			return
		}
		serverError(c, "Failed to save shopping list", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Shopping list saved successfully",
		"shoppingList": list,
	})
}

func (h *ShoppingListHandler) Get(c *gin.Context) {
	list, err := h.listService.GetList(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shopping list not found"})
			return
		}
		serverError(c, "Failed to fetch shopping list", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shoppingList": list})
}

// Update replaces the list contents, or appends with dedup-by-name when
// mode=append.
func (h *ShoppingListHandler) Update(c *gin.Context) {
	items, ok := h.bindItems(c)
	if !ok {
		return
	}

	var err error
	var list *models.ShoppingList
	if c.DefaultQuery("mode", "replace") == "append" {
		list, err = h.listService.AppendItems(c.Request.Context(), userID(c), items)
	} else {
		list, err = h.listService.ReplaceItems(c.Request.Context(), userID(c), items)
	}
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shopping list not found"})
			return
		}
		serverError(c, "Failed to update shopping list", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Shopping list updated successfully",
		"shoppingList": list,
	})
}

func (h *ShoppingListHandler) Delete(c *gin.Context) {
	if err := h.listService.DeleteList(c.Request.Context(), userID(c)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shopping list not found"})
			return
		}
		serverError(c, "Failed to delete shopping list", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shopping list deleted successfully"})
}

// bindItems parses and normalizes the items payload. Lists with no valid
// items are rejected at the boundary.
func (h *ShoppingListHandler) bindItems(c *gin.Context) ([]models.ShoppingListItem, bool) {
	var req types.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return nil, false
	}

	items := service.NormalizeItems(req.Items)
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ensure 'items' is a non-empty array"})
		return nil, false
	}
	return items, true
}
