package handlers

import (
	"github.com/FutureQuant/Random-walk/internal/api/models"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
