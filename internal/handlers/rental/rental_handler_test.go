package rental

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetrent-service/internal/middleware"
	"fleetrent-service/internal/pkg/jwt"
	"fleetrent-service/internal/pkg/response"
	"fleetrent-service/internal/repository/memory"
	authUsecase "fleetrent-service/internal/service/auth"
	rentalUsecase "fleetrent-service/internal/service/rental"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	router   *gin.Engine
	registry *memory.Registry
	ledger   *memory.Ledger
	tokens   *jwt.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	directory := memory.NewDirectory()
	registry := memory.NewRegistry()
	ledger := memory.NewLedger(registry)
	tokens := jwt.NewManager(jwt.Config{
		Secret:   "test-secret",
		Issuer:   "fleetrent",
		Audience: "fleetrent-users",
		TTL:      time.Hour,
	})

	logger := zap.NewNop()
	authService := authUsecase.NewAuthService(directory, tokens, logger)
	rentalService := rentalUsecase.NewRentalService(ledger, registry, logger)

	h := NewRentalHandler(rentalService, logger)
	authMW := middleware.NewAuthMiddleware(authService)

	r := gin.New()
	rentals := r.Group("/api/v1/rentals")
	rentals.Use(authMW.Auth())
	{
		rentals.POST("", h.Rent)
		rentals.GET("", h.List)
		rentals.GET("/quote", h.Quote)
		rentals.GET("/active", h.ListActive)
		rentals.GET("/:id", h.Get)
		rentals.PUT("/:id/return", h.Return)
		rentals.PUT("/:id/lost", h.ReportLost)
	}

	return &testEnv{router: r, registry: registry, ledger: ledger, tokens: tokens}
}

func (e *testEnv) tokenFor(t *testing.T, username, role string) string {
	t.Helper()
	token, err := e.tokens.Generate(username, role)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func rentBody(vehicleID string, hours int) gin.H {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return gin.H{
		"vehicle_id":         vehicleID,
		"start_at":           start.Format(time.RFC3339),
		"expected_return_at": start.Add(time.Duration(hours) * time.Hour).Format(time.RFC3339),
	}
}

func TestRent_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(t, http.MethodPost, "/api/v1/rentals", "", rentBody("V001", 24))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRent_Success(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "user", "Customer")

	w, resp := env.do(t, http.MethodPost, "/api/v1/rentals", token, rentBody("V001", 24))
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "R1001", data["rental_id"])
	assert.Equal(t, "V001", data["vehicle_id"])
	assert.Equal(t, "Toyota Camry", data["vehicle_name"])
	assert.Equal(t, "user", data["customer_username"])
	// 24 whole hours of a Toyota Camry at 50/day.
	assert.InDelta(t, 50.0, data["total_cost"], 1e-9)

	v, ok := env.registry.GetByID("V001")
	require.True(t, ok)
	assert.Equal(t, "Rented", string(v.Status))
}

func TestRent_Rejections(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "user", "Customer")

	cases := []struct {
		name       string
		body       gin.H
		wantStatus int
	}{
		{"unknown vehicle", rentBody("V999", 24), http.StatusNotFound},
		{"already rented vehicle", rentBody("V005", 24), http.StatusConflict},
		{"under maintenance vehicle", rentBody("V010", 24), http.StatusConflict},
		{"zero duration", rentBody("V001", 0), http.StatusBadRequest},
		{"over the 720-hour cap", rentBody("V001", 721), http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := env.do(t, http.MethodPost, "/api/v1/rentals", token, tc.body)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.False(t, resp.Success)
		})
	}

	// None of the rejections should have opened a rental.
	assert.Empty(t, env.ledger.ListAll())
}

func TestRent_ActiveLimit(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "user", "Customer")

	for i, id := range []string{"V001", "V002", "V003"} {
		w, _ := env.do(t, http.MethodPost, "/api/v1/rentals", token, rentBody(id, 24))
		require.Equalf(t, http.StatusCreated, w.Code, "rental %d", i+1)
	}

	w, _ := env.do(t, http.MethodPost, "/api/v1/rentals", token, rentBody("V004", 24))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestQuote_MatchesCommittedCost(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "user", "Customer")

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Hour)
	path := fmt.Sprintf("/api/v1/rentals/quote?vehicle_id=V002&start_at=%s&expected_return_at=%s",
		start.Format(time.RFC3339), end.Format(time.RFC3339))

	w, resp := env.do(t, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Honda Civic", data["vehicle_name"])
	assert.EqualValues(t, 30, data["duration_hours"])
	assert.Equal(t, "30h 0m", data["formatted_duration"])
	// 45/day over 30 whole hours.
	assert.InDelta(t, 45.0/24.0*30.0, data["total_cost"], 1e-9)
}

func TestReturn_Flow(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "user", "Customer")

	w, _ := env.do(t, http.MethodPost, "/api/v1/rentals", token, rentBody("V001", 24))
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = env.do(t, http.MethodPut, "/api/v1/rentals/R1001/return", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	v, ok := env.registry.GetByID("V001")
	require.True(t, ok)
	assert.Equal(t, "Available", string(v.Status))

	// Returning twice is rejected.
	w, _ = env.do(t, http.MethodPut, "/api/v1/rentals/R1001/return", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReturn_OtherCustomersRental(t *testing.T) {
	env := newTestEnv(t)
	owner := env.tokenFor(t, "user", "Customer")
	intruder := env.tokenFor(t, "mallory", "Customer")

	w, _ := env.do(t, http.MethodPost, "/api/v1/rentals", owner, rentBody("V001", 24))
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = env.do(t, http.MethodPut, "/api/v1/rentals/R1001/return", intruder, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// An admin may close any rental.
	admin := env.tokenFor(t, "admin", "Admin")
	w, _ = env.do(t, http.MethodPut, "/api/v1/rentals/R1001/return", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportLost(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "user", "Customer")

	w, _ := env.do(t, http.MethodPost, "/api/v1/rentals", token, rentBody("V001", 24))
	require.Equal(t, http.StatusCreated, w.Code)

	giveBack := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	w, _ = env.do(t, http.MethodPut, "/api/v1/rentals/R1001/lost", token, gin.H{
		"give_back_at": giveBack.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, w.Code)

	v, ok := env.registry.GetByID("V001")
	require.True(t, ok)
	assert.Equal(t, "Lost", string(v.Status))
}

func TestListActive_OnlyOwnRentals(t *testing.T) {
	env := newTestEnv(t)
	alice := env.tokenFor(t, "alice", "Customer")
	bob := env.tokenFor(t, "bob", "Customer")

	w, _ := env.do(t, http.MethodPost, "/api/v1/rentals", alice, rentBody("V001", 24))
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = env.do(t, http.MethodPost, "/api/v1/rentals", bob, rentBody("V002", 24))
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := env.do(t, http.MethodGet, "/api/v1/rentals/active", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 1, data["count"])
}
