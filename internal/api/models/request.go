package models

import "github.com/FutureQuant/Random-walk/internal/config"

// SimulationRequest represents the request body for running a simulation.
// Every field is optional; unset parameters fall back to the preset, then to defaults.
type SimulationRequest struct {
	Preset  string                  `json:"preset,omitempty"`
	Params  config.SimulationConfig `json:"params,omitempty"`
	Options SimulationOptions       `json:"options,omitempty"`
}

// SimulationOptions contains optional response shaping
type SimulationOptions struct {
	Preview       *int `json:"preview,omitempty"`        // default: 10
	IncludeSeries bool `json:"include_series,omitempty"` // default: false
}

// RunsQuery represents query parameters for listing recorded runs
type RunsQuery struct {
	Limit int `form:"limit,omitempty"` // default: 20
}
