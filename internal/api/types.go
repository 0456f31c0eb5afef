package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/backend/config"
	"github.com/forkful/backend/internal/middleware"
)

// serverError logs the underlying error and responds with a generic 500.
// The detail is exposed to the client only in development.
func serverError(c *gin.Context, message string, err error) {
	log.Printf("%s: %v", message, err)
	if config.IsDevelopment() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

// userEmail returns the email claim set by the auth middlewares, or "" for
// anonymous callers.
func userEmail(c *gin.Context) string {
	if email, exists := c.Get(middleware.ContextEmail); exists {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return ""
}

// userID returns the user id claim set by the auth middlewares, or "" for
// anonymous callers.
func userID(c *gin.Context) string {
	if id, exists := c.Get(middleware.ContextUserID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
