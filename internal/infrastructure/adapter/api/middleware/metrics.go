package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
)

// HTTPObserver records served requests
type HTTPObserver interface {
	ObserveHTTP(route, method, status string, elapsed coreport.Duration)
}

// Metrics reports every request labelled by its route template
func Metrics(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveHTTP(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), coreport.Duration(time.Since(start)))
	}
}
