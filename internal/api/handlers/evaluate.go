package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"baas-lcos/internal/analysis"
	"baas-lcos/internal/api/models"
	"baas-lcos/internal/data"
	"baas-lcos/internal/lcos"
	"baas-lcos/internal/logger"
	"baas-lcos/internal/metrics"
	"baas-lcos/internal/model"
	"baas-lcos/internal/report"
)

// EvaluateHandler handles LCOS evaluation requests
type EvaluateHandler struct {
	engine  *lcos.Engine
	cache   *data.ResultCache
	metrics *metrics.Recorder
	log     logger.Logger
}

// NewEvaluateHandler creates a new evaluate handler. cache and rec may be nil.
func NewEvaluateHandler(engine *lcos.Engine, cache *data.ResultCache, rec *metrics.Recorder, log logger.Logger) *EvaluateHandler {
	if engine == nil {
		engine = lcos.New()
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &EvaluateHandler{engine: engine, cache: cache, metrics: rec, log: log}
}

// Evaluate handles POST /api/v1/evaluate
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	start := time.Now()
	res, loads, err := h.evaluate(req)
	if err != nil {
		h.metrics.Observe(time.Since(start), 0, err)
		h.log.Warnf("evaluation rejected: %v", err)
		writeModelError(c, err)
		return
	}

	id := uuid.NewString()
	resp := models.EvaluateResponse{
		ID:      id,
		Status:  "completed",
		Summary: buildSummary(res),
		Display: report.Display(res.Summary),
		Profile: analysis.ProfileLoad(loads),
	}
	if req.Options.IncludeDegradation {
		resp.Degradation = convertDegradation(res.Degradation)
	}
	h.metrics.Observe(time.Since(start), res.Summary.LCOS, nil)
	h.cache.Set(id, res)
	h.log.Infof("evaluation %s: lcos=%.4f net_savings=%.2f", id, res.Summary.LCOS, res.Summary.NetSavings)

	c.JSON(http.StatusOK, resp)
}

// GetDegradation handles GET /api/v1/evaluations/:id/degradation.
// ?format=csv returns the table as CSV.
func (h *EvaluateHandler) GetDegradation(c *gin.Context) {
	id := c.Param("id")
	res, ok := h.cache.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "evaluation not found or expired",
				Details: map[string]interface{}{"id": id},
			},
		})
		return
	}

	if c.Query("format") == "csv" {
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="degradation.csv"`)
		c.Status(http.StatusOK)
		if err := report.WriteDegradationCSV(c.Writer, res.Degradation); err != nil {
			h.log.Errorf("write degradation csv %s: %v", id, err)
		}
		return
	}
	c.JSON(http.StatusOK, models.DegradationResponse{
		ID:          id,
		Degradation: convertDegradation(res.Degradation),
	})
}

func (h *EvaluateHandler) evaluate(req models.EvaluateRequest) (*lcos.Result, []model.LoadRecord, error) {
	set, err := data.ToAssumptionSet(req.Assumptions)
	if err != nil {
		return nil, nil, err
	}
	loads, err := toLoadRecords(req.Load)
	if err != nil {
		return nil, nil, err
	}
	res, err := h.engine.Evaluate(set, loads)
	return res, loads, err
}

func toLoadRecords(rows []models.LoadRow) ([]model.LoadRecord, error) {
	out := make([]model.LoadRecord, 0, len(rows))
	for i, r := range rows {
		if r.LoadKWh == nil {
			return nil, &model.MalformedInputError{Field: "load_kwh", Row: i + 1, Reason: "missing"}
		}
		if r.GridPrice == nil {
			return nil, &model.MalformedInputError{Field: "grid_price", Row: i + 1, Reason: "missing"}
		}
		rec := model.LoadRecord{LoadKWh: *r.LoadKWh, GridPrice: *r.GridPrice}
		if err := rec.Validate(i + 1); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func buildSummary(res *lcos.Result) models.Summary {
	s := res.Summary
	return models.Summary{
		TargetIRR:                s.TargetIRR,
		LCOS:                     s.LCOS,
		TotalCapex:               s.TotalCapex,
		TotalDiscountedEnergyKWh: s.TotalDiscountedEnergyKWh,
		BaselineGridCost:         s.BaselineGridCost,
		CustomerBaaSCost:         s.CustomerBaaSCost,
		NetSavings:               s.NetSavings,
		EnergyBilledKWh:          res.Savings.EnergyBilledKWh,
	}
}

func convertDegradation(records []model.YearlyRecord) []models.YearlyRow {
	out := make([]models.YearlyRow, len(records))
	for i, r := range records {
		out[i] = models.YearlyRow{
			Year:                    r.Year,
			DegradationFactor:       r.DegradationFactor,
			CapacityKWh:             r.CapacityKWh,
			UsableEnergyKWh:         r.UsableEnergyKWh,
			AnnualThroughputKWh:     r.AnnualThroughputKWh,
			CumulativeThroughputKWh: r.CumulativeThroughputKWh,
			DiscountFactor:          r.DiscountFactor,
			DiscountedEnergyKWh:     r.DiscountedEnergyKWh,
		}
	}
	return out
}
