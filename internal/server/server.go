package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/backend/config"
	"github.com/forkful/backend/internal/api"
	"github.com/forkful/backend/internal/database"
	"github.com/forkful/backend/internal/middleware"
	"github.com/forkful/backend/internal/router"
	"github.com/forkful/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
	db     *database.DB
}

// New wires the services, handlers, and routes into a runnable server.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.QueryTimeout)
	defer cancel()
	if err := db.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	recipeService := service.NewRecipeService(db, cfg.QueryTimeout)
	favouriteService := service.NewFavouriteService(db)
	shoppingListService := service.NewShoppingListService(db)
	reviewService := service.NewReviewService(db)

	// Rate limiting needs Redis; without it the limiters are no-ops.
	limiters := router.Limiters{}
	if cfg.RedisAddr != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Redis unavailable, rate limiting disabled: %v", err)
		} else {
			limiters.Login = middleware.NewLoginRateLimiter(redisClient)
			limiters.Review = middleware.NewReviewRateLimiter(redisClient)
		}
	}

	handlers := router.Handlers{
		Health:       api.NewHealthHandler(db),
		Auth:         api.NewAuthHandler(authService, cfg.TokenTTL),
		Recipe:       api.NewRecipeHandler(recipeService),
		Favourite:    api.NewFavouriteHandler(favouriteService),
		ShoppingList: api.NewShoppingListHandler(shoppingListService),
		Review:       api.NewReviewHandler(reviewService),
	}

	engine := router.SetupRouter(handlers, authService, limiters, cfg.CORSOrigins)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
		db: db,
	}, nil
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and disconnects the store.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}
	return s.db.Close(ctx)
}
