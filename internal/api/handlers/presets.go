package handlers

import (
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/FutureQuant/Random-walk/internal/api/models"
	"github.com/FutureQuant/Random-walk/internal/config"

	"github.com/gin-gonic/gin"
)

// PresetsHandler lists the parameter presets found in a directory
type PresetsHandler struct {
	presetsDir string
}

// NewPresetsHandler creates a new presets handler
func NewPresetsHandler(presetsDir string) *PresetsHandler {
	return &PresetsHandler{presetsDir: presetsDir}
}

// ListPresets handles GET /api/v1/presets
func (h *PresetsHandler) ListPresets(c *gin.Context) {
	out := []models.PresetInfo{}

	presets, skipped, err := config.ListPresets(h.presetsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("dir", h.presetsDir).Warn("read presets directory")
		}
		c.JSON(http.StatusOK, gin.H{"presets": out})
		return
	}
	for name, err := range skipped {
		log.WithError(err).WithField("file", name).Warn("skipping invalid preset")
	}

	for _, id := range config.SortedPresetIDs(presets) {
		p := presets[id]
		out = append(out, models.PresetInfo{
			ID:          id,
			Name:        p.Name,
			Description: p.Description,
			Params:      models.NewParamsView(p.Simulation.ToParams()),
		})
	}

	c.JSON(http.StatusOK, gin.H{"presets": out})
}
