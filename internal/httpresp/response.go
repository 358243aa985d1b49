package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, gin.H{"message": message})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Updated returns the confirmation message together with the updated record
// under its resource key, e.g. {"message": ..., "client": {...}}.
func Updated(c *gin.Context, message, key string, record any) {
	c.JSON(http.StatusOK, gin.H{"message": message, key: record})
}
