package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetrent-service/internal/pkg/jwt"
	"fleetrent-service/internal/pkg/response"
	"fleetrent-service/internal/repository/memory"
	authUsecase "fleetrent-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	directory := memory.NewDirectory()
	tokens := jwt.NewManager(jwt.Config{
		Secret:   "test-secret",
		Issuer:   "fleetrent",
		Audience: "fleetrent-users",
		TTL:      time.Hour,
	})
	svc := authUsecase.NewAuthService(directory, tokens, zap.NewNop())
	h := NewAuthHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/api/v1/auth/login", h.Login)
	r.POST("/api/v1/auth/register", h.Register)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestLogin_SeedAccounts(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
		"password": "admin",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "admin", data["username"])
	assert.Equal(t, "Admin", data["role"])
	assert.NotEmpty(t, data["token"])
}

func TestLogin_BadCredentials(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"unknown user", "nobody", "whatever"},
		{"case sensitive username", "Admin", "admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
				"username": tc.username,
				"password": tc.password,
			})
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, resp.Success)
		})
	}
}

func TestLogin_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestRegister_ThenLogin(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "alice",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)

	w, resp = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "alice",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Customer", data["role"])
}

func TestRegister_DuplicateUsername(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "user",
		"password": "anything",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_InvalidInput(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"username too short", "ab", "good-pass"},
		{"username with spaces", "bad name", "good-pass"},
		{"password too short", "newuser", "abc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
				"username": tc.username,
				"password": tc.password,
			})
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, resp.Success)
		})
	}
}
