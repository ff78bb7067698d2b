package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/questio/questio-backend/internal/service"
)

// CountExecutions records one execution on the global usage counter
// before passing the request on. The counter write is fire-and-forget:
// it can never fail or delay the execution request it is attached to.
func CountExecutions(counterService *service.CounterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		counterService.NoteExecution(c.Request.Context())
		c.Next()
	}
}
