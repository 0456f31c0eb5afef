package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/backend/internal/middleware"
	"github.com/forkful/backend/internal/service"
	"github.com/forkful/backend/internal/types"
)

// ReviewHandler serves per-recipe reviews. Submitting, editing, or removing
// a review triggers the recipe's rating aggregate recompute.
type ReviewHandler struct {
	reviewService service.IReviewService
}

// NewReviewHandler creates a new ReviewHandler instance
func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers the review routes. Reading is public; mutations
// require a session, and submissions go through the review limiter when one
// is configured.
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator, reviewLimiter *middleware.RateLimiter) {
	reviews := router.Group("/reviews")
	{
		reviews.GET("/:recipeId", h.List)
		reviews.POST("/:recipeId",
			middleware.AuthMiddleware(validator),
			reviewLimiter.Middleware(middleware.ByUserID),
			h.Add)
		reviews.PUT("/:recipeId/:reviewId", middleware.AuthMiddleware(validator), h.Update)
		reviews.DELETE("/:recipeId/:reviewId", middleware.AuthMiddleware(validator), h.Delete)
	}
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.ListReviews(c.Request.Context(), c.Param("recipeId"))
	if err != nil {
		serverError(c, "Failed to fetch reviews", err)
		return
	}
	if len(reviews) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No reviews found for this recipe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": reviews})
}

func (h *ReviewHandler) Add(c *gin.Context) {
	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	email := userEmail(c)
	username := req.Username
	if username == "" {
		username = email
	}

	review, err := h.reviewService.AddReview(c.Request.Context(), c.Param("recipeId"), email, username, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		serverError(c, "Failed to submit review", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": review})
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var req types.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	err := h.reviewService.UpdateReview(c.Request.Context(), c.Param("recipeId"), c.Param("reviewId"), userEmail(c), req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		serverError(c, "Failed to update review", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review updated"})
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	err := h.reviewService.DeleteReview(c.Request.Context(), c.Param("recipeId"), c.Param("reviewId"), userEmail(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		serverError(c, "Failed to delete review", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review deleted"})
}
