// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"staffdir/src/app/http/response"
	"staffdir/src/app/middleware"
)

// pathID parses a positive int64 path parameter. On failure it writes a
// 400 response and reports ok=false; the caller should just return.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+name, middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}
