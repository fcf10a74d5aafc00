package middleware

import (
	"expvar"
	"strconv"

	"github.com/gin-gonic/gin"
)

// requestCounts is published under "http_requests" and keyed by
// "<METHOD> <route> <status>".
var requestCounts = expvar.NewMap("http_requests")

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestCounts.Add(c.Request.Method+" "+route+" "+strconv.Itoa(c.Writer.Status()), 1)
	}
}
