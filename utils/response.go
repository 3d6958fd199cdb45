package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}

// JSONFieldErrors sends a structured error response listing the offending fields
func JSONFieldErrors(c *gin.Context, status int, err error, message string, fields map[string]string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
		"fields":  fields,
	})
}

// AbortJSONError sends a structured error response and stops the handler chain
func AbortJSONError(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
