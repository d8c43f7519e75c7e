package controllers

import (
	"net/http"

	"github.com/pokecollect/pokedex-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  http.StatusBadRequest,
		"message": message,
	})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":  http.StatusNotFound,
		"message": message,
	})
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"status":  http.StatusForbidden,
		"message": "Access denied",
	})
}

// internalError logs the cause and passes its message through to the body.
func internalError(c *gin.Context, message string, err error) {
	logger.Errorf("%s: %v", message, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  http.StatusInternalServerError,
		"message": message,
		"error":   err.Error(),
	})
}
