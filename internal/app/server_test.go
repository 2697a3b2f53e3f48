package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/daphos/shift-service/internal/auth"
	"github.com/daphos/shift-service/internal/config"
	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/observability"
	"github.com/daphos/shift-service/internal/persistence"
	"github.com/daphos/shift-service/internal/repository/memory"
)

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Name: "shift-service", Version: "test", Timezone: "UTC", RequestTimeoutSeconds: 5},
		Storage: config.StorageConfig{Driver: config.StorageMemory},
		Auth:    config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5, OperatorUsername: "admin"},
		Metrics: config.MetricsConfig{FullTimeHours: 40},
		Worker:  config.WorkerConfig{Count: 2, QueueSize: 4},
	}
}

func newTestServer(t *testing.T, cfg *config.Config, seed domain.Dataset) *fiber.App {
	t.Helper()
	storage := NewMemoryStorage(memory.Open(context.Background(), nil, seed))
	services := NewServices(cfg, storage, zap.NewNop())
	t.Cleanup(services.Close)
	return NewServer(cfg, storage, services, zap.NewNop(), observability.NewMetrics())
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp, env
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestServer(t, testConfig(), domain.Dataset{})

	resp, _ := do(t, app, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := do(t, app, http.MethodGet, "/health/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), "/health/live")
}

func TestEmployeeAndShiftFlow(t *testing.T) {
	app := newTestServer(t, testConfig(), domain.Dataset{})

	resp, env := do(t, app, http.MethodPost, "/api/v1/employees", map[string]string{"name": "Anna", "role": "Pflege"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var employee struct {
		ID       string `json:"id"`
		IsActive bool   `json:"is_active"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &employee))
	assert.True(t, employee.IsActive)

	base := "/api/v1/employees/" + employee.ID
	for _, s := range []map[string]string{
		{"start": "2025-11-10T06:00", "end": "2025-11-10T14:00", "note": "Früh"},
		{"start": "2025-11-10T14:00", "end": "2025-11-10T22:00"},
		{"start": "2025-11-11T22:00", "end": "2025-11-12T06:00"},
	} {
		resp, _ := do(t, app, http.MethodPost, base+"/shifts", s)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env = do(t, app, http.MethodPost, base+"/shifts", map[string]string{"start": "2025-11-10T14:00", "end": "2025-11-10T06:00"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	resp, env = do(t, app, http.MethodPost, base+"/shifts", map[string]string{"start": "yesterday", "end": "2025-11-10T06:00"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Error.Details, "start")

	resp, env = do(t, app, http.MethodGet, base+"/dashboard?ref=2025-11-12", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dash struct {
		Metrics struct {
			TotalHours  float64 `json:"total_hours"`
			ShiftCount  int     `json:"shift_count"`
			Utilization float64 `json:"utilization_percentage"`
		} `json:"metrics"`
		Daily []struct {
			Date  string  `json:"date"`
			Label string  `json:"label"`
			Hours float64 `json:"hours"`
		} `json:"daily"`
		Distribution struct {
			Night int `json:"night"`
		} `json:"distribution"`
		Week []struct {
			Date    string `json:"date"`
			IsToday bool   `json:"is_today"`
			Shifts  []any  `json:"shifts"`
		} `json:"week"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.Equal(t, 24.0, dash.Metrics.TotalHours)
	assert.Equal(t, 3, dash.Metrics.ShiftCount)
	assert.Equal(t, 60.0, dash.Metrics.Utilization)
	require.Len(t, dash.Daily, 2)
	assert.Equal(t, "Mo., 10.11.", dash.Daily[0].Label)
	assert.Equal(t, 16.0, dash.Daily[0].Hours)
	assert.Equal(t, 1, dash.Distribution.Night)
	require.Len(t, dash.Week, 7)
	assert.Equal(t, "2025-11-10", dash.Week[0].Date)
	assert.True(t, dash.Week[2].IsToday)
	assert.Len(t, dash.Week[0].Shifts, 2)
	assert.Len(t, dash.Week[1].Shifts, 1)
	assert.NotNil(t, dash.Week[6].Shifts)

	resp, env = do(t, app, http.MethodGet, base+"/dashboard?full_time_hours=20&ref=2025-11-12", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.Equal(t, 100.0, dash.Metrics.Utilization)

	resp, _ = do(t, app, http.MethodGet, base+"/dashboard?full_time_hours=-1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = do(t, app, http.MethodPost, base+"/toggle-status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &employee))
	assert.False(t, employee.IsActive)

	resp, env = do(t, app, http.MethodPut, base, map[string]string{"name": "Anna B.", "role": "Pflege"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMPLOYEE_INACTIVE", env.Error.Code)

	resp, _ = do(t, app, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, env = do(t, app, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestShiftRoutes(t *testing.T) {
	app := newTestServer(t, testConfig(), persistence.DefaultDataset())

	resp, env := do(t, app, http.MethodGet, "/api/v1/employees/1/shifts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var shifts []struct {
		ID    string `json:"id"`
		Start string `json:"start"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &shifts))
	require.NotEmpty(t, shifts)
	id := shifts[0].ID

	resp, env = do(t, app, http.MethodPut, "/api/v1/shifts/"+id, map[string]string{"start": "2025-11-10T07:00", "end": "2025-11-10T15:30", "note": "verschoben"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated struct {
		Start         string  `json:"start"`
		DurationHours float64 `json:"duration_hours"`
		Type          string  `json:"type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "2025-11-10T07:00:00", updated.Start)
	assert.Equal(t, 8.5, updated.DurationHours)
	assert.Equal(t, "morning", updated.Type)

	resp, _ = do(t, app, http.MethodDelete, "/api/v1/shifts/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = do(t, app, http.MethodGet, "/api/v1/shifts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEmployeeListing(t *testing.T) {
	app := newTestServer(t, testConfig(), persistence.DefaultDataset())

	resp, env := do(t, app, http.MethodGet, "/api/v1/employees?status=inactive&sort=name-desc", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []struct {
		Name     string `json:"name"`
		IsActive bool   `json:"is_active"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, "Jonas Fischer", list[0].Name)
	for _, e := range list {
		assert.False(t, e.IsActive)
	}

	resp, env = do(t, app, http.MethodGet, "/api/v1/employees?grouped=true&q=pfleg", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var grouped struct {
		Active   []any `json:"active"`
		Inactive []any `json:"inactive"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &grouped))
	assert.NotEmpty(t, grouped.Active)
	assert.NotNil(t, grouped.Inactive)

	resp, env = do(t, app, http.MethodGet, "/api/v1/employees?status=retired", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestUnknownTimestampsAreOmitted(t *testing.T) {
	app := newTestServer(t, testConfig(), persistence.DefaultDataset())

	resp, env := do(t, app, http.MethodGet, "/api/v1/employees", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var seeded []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &seeded))
	require.NotEmpty(t, seeded)
	assert.NotContains(t, seeded[0], "created_at")
	assert.NotContains(t, seeded[0], "updated_at")

	resp, env = do(t, app, http.MethodPost, "/api/v1/employees", map[string]string{"name": "Anna", "role": "Pflege"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Contains(t, created, "created_at")
	assert.Contains(t, created, "updated_at")
}

func TestOverviewAndExport(t *testing.T) {
	app := newTestServer(t, testConfig(), persistence.DefaultDataset())

	resp, env := do(t, app, http.MethodGet, "/api/v1/overview?ref=2025-11-12T10:00", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entries []struct {
		ShiftCount int     `json:"shift_count"`
		WeekHours  float64 `json:"week_hours"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	assert.Len(t, entries, 10)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/1/shifts/export.xlsx", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = file.Close() }()
	rows, err := file.GetRows("Shifts")
	require.NoError(t, err)
	assert.Equal(t, "Start", rows[0][0])
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	app := newTestServer(t, testConfig(), domain.Dataset{})
	resp, env := do(t, app, http.MethodGet, "/api/v1/nothing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestMutationsRequireOperatorWhenAuthEnabled(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	cfg := testConfig()
	cfg.Auth.Enabled = true
	cfg.Auth.OperatorPasswordHash = hash
	app := newTestServer(t, cfg, persistence.DefaultDataset())

	resp, _ := do(t, app, http.MethodGet, "/api/v1/employees", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	payload := map[string]string{"name": "Neu", "role": "Pflege"}
	resp, env := do(t, app, http.MethodPost, "/api/v1/employees", payload)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	resp, env = do(t, app, http.MethodPost, "/auth/login", map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, env = do(t, app, http.MethodPost, "/auth/login", map[string]string{"username": "admin", "password": "s3cret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var token struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &token))
	require.NotEmpty(t, token.Token)

	resp, _ = do(t, app, http.MethodPost, "/api/v1/employees", payload, fiber.HeaderAuthorization, "Bearer "+token.Token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
