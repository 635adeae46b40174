package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// SerializeMiddleware runs API requests one at a time. The in-memory rental
// engine is built for a single logical thread of control and does no
// internal locking, so concurrency is excluded at the edge instead. Must
// not wrap long-lived connections such as the WebSocket endpoint.
func SerializeMiddleware() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}
