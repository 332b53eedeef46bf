package server

import "github.com/gin-gonic/gin"

// fail sends the error envelope the UI expects.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
