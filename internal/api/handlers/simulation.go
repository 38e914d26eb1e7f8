package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/FutureQuant/Random-walk/internal/analysis"
	"github.com/FutureQuant/Random-walk/internal/api/models"
	"github.com/FutureQuant/Random-walk/internal/config"
	"github.com/FutureQuant/Random-walk/internal/model"
	"github.com/FutureQuant/Random-walk/internal/recorder"
	"github.com/FutureQuant/Random-walk/internal/simulation"
	"github.com/FutureQuant/Random-walk/internal/store"

	"github.com/gin-gonic/gin"
)

// SimulationHandler runs simulations and serves their cached results
type SimulationHandler struct {
	engine     *simulation.Engine
	cache      *store.ResultCache
	recorder   recorder.Recorder
	presetsDir string
	maxCount   int
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(cache *store.ResultCache, rec recorder.Recorder, presetsDir string, maxCount int) *SimulationHandler {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &SimulationHandler{
		engine:     simulation.New(),
		cache:      cache,
		recorder:   rec,
		presetsDir: presetsDir,
		maxCount:   maxCount,
	}
}

// RunSimulation handles POST /api/v1/simulations
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}

	sim := req.Params
	if req.Preset != "" {
		preset, err := h.loadPreset(req.Preset)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(),
				map[string]interface{}{"preset": req.Preset})
			return
		}
		sim = config.MergeSimulation(preset.Simulation, req.Params)
	}

	params := sim.ToParams()
	if err := params.Validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, models.CodeInvalidParameters, err.Error(), nil)
		return
	}
	if h.maxCount > 0 && params.Count > h.maxCount {
		abortWithError(c, http.StatusBadRequest, models.CodeInvalidParameters,
			fmt.Sprintf("count %d exceeds the server limit of %d", params.Count, h.maxCount),
			map[string]interface{}{"max_count": h.maxCount})
		return
	}

	res, err := h.engine.Run(params)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, models.CodeInternal, err.Error(), nil)
		return
	}
	summary, err := analysis.SummarizeResult(res)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, models.CodeInternal, err.Error(), nil)
		return
	}
	if !res.Finite() || !summary.Finite() {
		log.WithFields(log.Fields{
			"count":      params.Count,
			"std_return": params.StdReturn,
			"seed":       params.Seed,
		}).Warn("simulation overflowed")
		abortWithError(c, http.StatusUnprocessableEntity, models.CodeInvalidParameters,
			"parameters produce prices outside the float64 range", nil)
		return
	}

	entry := h.cache.Put(res, summary)
	rec := recorder.NewRunRecord(entry.ID, "api", res, summary.Prices.Mean, simulation.PersistReport{})
	if err := h.recorder.RecordRun(rec); err != nil {
		log.WithError(err).WithField("id", entry.ID).Warn("record run failed")
	}

	preview := analysis.DefaultPreviewRows
	if req.Options.Preview != nil {
		preview = *req.Options.Preview
	}
	resp := h.buildResponse(entry, preview)
	if req.Options.IncludeSeries {
		resp.Prices = res.Prices
		resp.MovingAverage = res.MovingAverage
	}

	log.WithFields(log.Fields{
		"id":     entry.ID,
		"count":  params.Count,
		"window": params.Window,
		"seed":   params.Seed,
	}).Info("simulation completed")

	c.JSON(http.StatusOK, resp)
}

// GetSimulation handles GET /api/v1/simulations/:id
func (h *SimulationHandler) GetSimulation(c *gin.Context) {
	entry, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.buildResponse(entry, analysis.DefaultPreviewRows))
}

// DownloadPrices handles GET /api/v1/simulations/:id/prices
func (h *SimulationHandler) DownloadPrices(c *gin.Context) {
	h.download(c, model.SeriesPrices)
}

// DownloadMovingAverage handles GET /api/v1/simulations/:id/moving-average
func (h *SimulationHandler) DownloadMovingAverage(c *gin.Context) {
	h.download(c, model.SeriesMovingAverage)
}

// ListRuns handles GET /api/v1/runs
func (h *SimulationHandler) ListRuns(c *gin.Context) {
	var q models.RunsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}

	runs, err := h.recorder.RecentRuns(q.Limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, models.CodeInternal, err.Error(), nil)
		return
	}

	out := make([]models.RunInfo, 0, len(runs))
	for _, r := range runs {
		out = append(out, models.RunInfo{
			ID:                 r.ID,
			CreatedAt:          r.CreatedAt,
			Source:             r.Source,
			Params:             models.NewParamsView(r.Params),
			FinalPrice:         r.FinalPrice,
			PriceMean:          r.PriceMean,
			MovingAverageLen:   r.MovingAverageLen,
			PricesFile:         r.PricesFile,
			PricesError:        r.PricesError,
			MovingAverageFile:  r.MovingAverageFile,
			MovingAverageError: r.MovingAverageError,
		})
	}
	c.JSON(http.StatusOK, gin.H{"runs": out})
}

// Helper methods

func (h *SimulationHandler) lookup(c *gin.Context) (*store.Entry, bool) {
	id := c.Param("id")
	entry, ok := h.cache.Get(id)
	if !ok {
		abortWithError(c, http.StatusNotFound, models.CodeNotFound,
			fmt.Sprintf("simulation %q not found or expired", id), nil)
		return nil, false
	}
	return entry, true
}

func (h *SimulationHandler) download(c *gin.Context, kind model.SeriesKind) {
	entry, ok := h.lookup(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(kind)+".csv"))
	c.Status(http.StatusOK)
	if err := simulation.WriteSeries(c.Writer, entry.Result.Series(kind)); err != nil {
		// Headers are already sent; all we can do is log.
		log.WithError(err).WithFields(log.Fields{"id": entry.ID, "series": kind}).Error("stream series")
	}
}

func (h *SimulationHandler) loadPreset(id string) (*config.Preset, error) {
	if strings.ContainsAny(id, `/\`) || strings.HasPrefix(id, ".") {
		return nil, fmt.Errorf("invalid preset id %q", id)
	}
	for _, ext := range []string{".yaml", ".yml"} {
		p, err := config.LoadPreset(filepath.Join(h.presetsDir, id+ext))
		if err == nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("preset %q not found", id)
}

func (h *SimulationHandler) buildResponse(entry *store.Entry, preview int) models.SimulationResponse {
	base := "/api/v1/simulations/" + entry.ID
	return models.SimulationResponse{
		ID:      entry.ID,
		Status:  "completed",
		Params:  models.NewParamsView(entry.Result.Params),
		Summary: entry.Summary,
		Preview: analysis.BuildPreview(entry.Result, preview),
		Links: map[string]string{
			"self":           base,
			"prices":         base + "/prices",
			"moving_average": base + "/moving-average",
		},
		ExpiresAt: entry.ExpiresAt,
	}
}
