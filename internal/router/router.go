package router

import (
	"github.com/gin-gonic/gin"

	"github.com/forkful/backend/internal/api"
	"github.com/forkful/backend/internal/middleware"
	"github.com/forkful/backend/internal/service"
)

// Handlers bundles the API handlers the router wires up.
type Handlers struct {
	Health       *api.HealthHandler
	Auth         *api.AuthHandler
	Recipe       *api.RecipeHandler
	Favourite    *api.FavouriteHandler
	ShoppingList *api.ShoppingListHandler
	Review       *api.ReviewHandler
}

// Limiters bundles the rate limiters. Nil limiters are valid and enforce
// nothing.
type Limiters struct {
	Login  *middleware.RateLimiter
	Review *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, authService service.IAuthService, limiters Limiters, corsOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(corsOrigins))

	// Health check endpoint (no auth required)
	h.Health.RegisterRoutes(router)

	// API v1 routes
	v1 := router.Group("/api/v1")

	h.Auth.RegisterRoutes(v1, limiters.Login)
	h.Recipe.RegisterRoutes(v1)
	h.Favourite.RegisterRoutes(v1, authService)
	h.ShoppingList.RegisterRoutes(v1, authService)
	h.Review.RegisterRoutes(v1, authService, limiters.Review)

	return router
}
