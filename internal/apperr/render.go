package apperr

import "github.com/gin-gonic/gin"

// Write renders any service error as {message} with its status hint.
func Write(c *gin.Context, err error) {
	c.JSON(StatusOf(err), gin.H{"message": err.Error()})
}
