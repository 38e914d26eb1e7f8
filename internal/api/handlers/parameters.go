package handlers

import (
	"net/http"

	"github.com/FutureQuant/Random-walk/internal/api/models"
	"github.com/FutureQuant/Random-walk/internal/model"

	"github.com/gin-gonic/gin"
)

// ParametersHandler describes the simulation parameters
type ParametersHandler struct{}

// NewParametersHandler creates a new parameters handler
func NewParametersHandler() *ParametersHandler {
	return &ParametersHandler{}
}

// ListParameters handles GET /api/v1/parameters
func (h *ParametersHandler) ListParameters(c *gin.Context) {
	params := []models.ParameterInfo{
		{
			Name:        "count",
			Type:        "int",
			Description: "Number of daily returns to simulate",
			Default:     model.DefaultCount,
		},
		{
			Name:        "start_price",
			Type:        "float",
			Description: "Price before the first return is applied (must be > 0)",
			Default:     model.DefaultStartPrice,
		},
		{
			Name:        "mean_return",
			Type:        "float",
			Description: "Mean of the daily returns",
			Default:     model.DefaultMeanReturn,
		},
		{
			Name:        "std_return",
			Type:        "float",
			Description: "Standard deviation of the daily returns (must be >= 0)",
			Default:     model.DefaultStdReturn,
		},
		{
			Name:        "window",
			Type:        "int",
			Description: "Moving average window size (1 <= window <= count)",
			Default:     model.DefaultWindow,
		},
		{
			Name:        "seed",
			Type:        "int",
			Description: "Random seed; the same seed and parameters reproduce the same series",
			Default:     model.DefaultSeed,
		},
	}

	c.JSON(http.StatusOK, gin.H{"parameters": params})
}
