package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id route segment. A non-numeric id behaves like a
// missing row, so callers map the error to their own not-found message.
func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
