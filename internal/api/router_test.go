package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baas-lcos/internal/api/handlers"
	"baas-lcos/internal/api/models"
	"baas-lcos/internal/data"
	"baas-lcos/internal/lcos"
	"baas-lcos/internal/logger"
	"baas-lcos/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	h := handlers.NewEvaluateHandler(lcos.New(), data.NewResultCache(time.Hour, 0), rec, nil)
	return NewRouter(Options{
		Evaluate:    h,
		CORSOrigins: []string{"https://app.example"},
		Gatherer:    reg,
	})
}

func referenceBody(extra map[string]any) map[string]any {
	body := map[string]any{
		"assumptions": map[string]any{
			"Battery Capacity (kWh)":   1000,
			"Power (kW)":               500,
			"CAPEX (€/kWh)":            300,
			"Project Lifetime (years)": 10,
			"Target IRR":               0.08,
			"DoD (%)":                  90,
			"Cycles":                   5000,
			"EOL Capacity (%)":         80,
		},
		"load": []map[string]any{
			{"load_kwh": 100, "grid_price": 0.25},
			{"load_kwh": 50, "grid_price": 0.30},
		},
	}
	for k, v := range extra {
		body[k] = v
	}
	return body
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorDetail {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestEvaluate(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/evaluate", referenceBody(map[string]any{
		"options": map[string]any{"include_degradation": true},
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 300000.0, resp.Summary.TotalCapex)
	assert.InDelta(t, 40.0, resp.Summary.BaselineGridCost, 1e-9)
	assert.InDelta(t, resp.Summary.TotalCapex, resp.Summary.LCOS*resp.Summary.TotalDiscountedEnergyKWh, 1e-6)
	assert.Equal(t, "8.0%", resp.Display.TargetIRR)
	assert.Equal(t, "40", resp.Display.CustomerGridCost.String())
	assert.Equal(t, 2, resp.Profile.Hours)
	require.Len(t, resp.Degradation, 10)
	assert.Equal(t, 1, resp.Degradation[0].Year)
	assert.InDelta(t, 450000, resp.Degradation[0].AnnualThroughputKWh, 1e-6)

	w = do(t, r, http.MethodGet, "/api/v1/evaluations/"+resp.ID+"/degradation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var table models.DegradationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &table))
	assert.Equal(t, resp.ID, table.ID)
	assert.Equal(t, resp.Degradation, table.Degradation)

	w = do(t, r, http.MethodGet, "/api/v1/evaluations/"+resp.ID+"/degradation?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	rows, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 11)
	assert.Equal(t, "720.00", rows[10][2])
}

func TestEvaluateOmitsDegradationByDefault(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/evaluate", referenceBody(nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"degradation"`)
}

func TestEvaluateErrors(t *testing.T) {
	r := newTestRouter(t)

	t.Run("invalid json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluate", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
	})

	t.Run("missing parameter", func(t *testing.T) {
		body := referenceBody(nil)
		delete(body["assumptions"].(map[string]any), "Cycles")
		w := do(t, r, http.MethodPost, "/api/v1/evaluate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		e := decodeError(t, w)
		assert.Equal(t, "MISSING_PARAMETER", e.Code)
		assert.Equal(t, "Cycles", e.Details["key"])
	})

	t.Run("non numeric assumption", func(t *testing.T) {
		body := referenceBody(nil)
		body["assumptions"].(map[string]any)["Target IRR"] = "high"
		w := do(t, r, http.MethodPost, "/api/v1/evaluate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		e := decodeError(t, w)
		assert.Equal(t, "MALFORMED_INPUT", e.Code)
		assert.Equal(t, "Target IRR", e.Details["field"])
	})

	t.Run("load row missing price", func(t *testing.T) {
		body := referenceBody(map[string]any{
			"load": []map[string]any{{"load_kwh": 1, "grid_price": 0.1}, {"load_kwh": 2}},
		})
		w := do(t, r, http.MethodPost, "/api/v1/evaluate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		e := decodeError(t, w)
		assert.Equal(t, "MALFORMED_INPUT", e.Code)
		assert.Equal(t, "grid_price", e.Details["field"])
		assert.EqualValues(t, 2, e.Details["row"])
	})

	t.Run("one year lifetime", func(t *testing.T) {
		body := referenceBody(nil)
		body["assumptions"].(map[string]any)["Project Lifetime (years)"] = 1
		w := do(t, r, http.MethodPost, "/api/v1/evaluate", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "INVALID_MODEL", decodeError(t, w).Code)
	})

	t.Run("overflowing load", func(t *testing.T) {
		body := referenceBody(map[string]any{
			"load": []map[string]any{{"load_kwh": 1e200, "grid_price": 1e200}},
		})
		w := do(t, r, http.MethodPost, "/api/v1/evaluate", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		assert.Equal(t, "INVALID_MODEL", decodeError(t, w).Code)
	})

	t.Run("unknown evaluation", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/api/v1/evaluations/nope/degradation", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, w).Code)
	})
}

func TestParametersHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/parameters", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var params struct {
		Parameters []models.ParameterInfo `json:"parameters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &params))
	require.Len(t, params.Parameters, 8)
	assert.Equal(t, "Battery Capacity (kWh)", params.Parameters[0].Name)

	w = do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	do(t, r, http.MethodPost, "/api/v1/evaluate", referenceBody(nil))
	w = do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `baas_evaluations_total{outcome="ok"} 1`)

	w = do(t, r, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOverflowingLoadCountsAsInvalidModel(t *testing.T) {
	r := newTestRouter(t)
	body := referenceBody(map[string]any{
		"load": []map[string]any{{"load_kwh": 1e200, "grid_price": 1e200}},
	})
	w := do(t, r, http.MethodPost, "/api/v1/evaluate", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `baas_evaluations_total{outcome="invalid_model"} 1`)
	assert.NotContains(t, w.Body.String(), `baas_evaluations_total{outcome="ok"}`)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/evaluate", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPanicRecovery(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := do(t, r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	e := decodeError(t, w)
	assert.Equal(t, "INTERNAL_ERROR", e.Code)
	assert.Equal(t, "kaboom", e.Message)
}

func TestServerErrorLogLineKeepsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	r := NewRouter(Options{
		Evaluate: handlers.NewEvaluateHandler(nil, nil, nil, nil),
		Log:      logger.NewWithWriter("http", &buf),
	})
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := do(t, r, http.MethodGet, "/boom", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var entry map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, "request failed") {
			require.NoError(t, json.Unmarshal([]byte(line), &entry))
		}
	}
	require.NotNil(t, entry, buf.String())
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "/boom", entry["path"])
	assert.EqualValues(t, 500, entry["status"])
	assert.Contains(t, entry, "latency_ms")
}
