package models

import (
	"time"

	"github.com/FutureQuant/Random-walk/internal/analysis"
	"github.com/FutureQuant/Random-walk/internal/model"
)

// SimulationResponse represents the response from a simulation run
type SimulationResponse struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	Params        ParamsView          `json:"params"`
	Summary       analysis.RunSummary `json:"summary"`
	Preview       analysis.Preview    `json:"preview"`
	Prices        []float64           `json:"prices,omitempty"`
	MovingAverage []float64           `json:"moving_average,omitempty"`
	Links         map[string]string   `json:"links"`
	ExpiresAt     time.Time           `json:"expires_at"`
}

// ParamsView is the JSON shape of model.Params
type ParamsView struct {
	Count      int     `json:"count"`
	StartPrice float64 `json:"start_price"`
	MeanReturn float64 `json:"mean_return"`
	StdReturn  float64 `json:"std_return"`
	Window     int     `json:"window"`
	Seed       int64   `json:"seed"`
}

func NewParamsView(p model.Params) ParamsView {
	return ParamsView{
		Count:      p.Count,
		StartPrice: p.StartPrice,
		MeanReturn: p.MeanReturn,
		StdReturn:  p.StdReturn,
		Window:     p.Window,
		Seed:       p.Seed,
	}
}

// ParameterInfo describes a simulation parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int"
	Description string      `json:"description"`
	Default     interface{} `json:"default"`
}

// PresetInfo represents information about a parameter preset
type PresetInfo struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Params      ParamsView `json:"params"`
}

// RunInfo represents one recorded run
type RunInfo struct {
	ID                 string     `json:"id"`
	CreatedAt          time.Time  `json:"created_at"`
	Source             string     `json:"source"`
	Params             ParamsView `json:"params"`
	FinalPrice         float64    `json:"final_price"`
	PriceMean          float64    `json:"price_mean"`
	MovingAverageLen   int        `json:"moving_average_len"`
	PricesFile         string     `json:"prices_file,omitempty"`
	PricesError        string     `json:"prices_error,omitempty"`
	MovingAverageFile  string     `json:"moving_avg_file,omitempty"`
	MovingAverageError string     `json:"moving_avg_error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidParameters = "INVALID_PARAMETERS"
	CodeNotFound          = "NOT_FOUND"
	CodeInternal          = "INTERNAL_ERROR"
)
