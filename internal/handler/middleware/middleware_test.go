//go:build unit

package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autoflow/internal/domain/actor"
	"autoflow/internal/handler/middleware"
	"autoflow/internal/pkg/clock"
	"autoflow/internal/pkg/config"
	"autoflow/internal/pkg/cookie"
	"autoflow/internal/pkg/jwt"
	"autoflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const testSecret = "middleware-test-secret"

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(testSecret)))
	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		a, ok := middleware.GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": a.ID().String(), "role": a.Role().String()})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()
	valid, err := jwt.NewService(testSecret).GenerateToken(userID, actor.RoleSalesStaff, time.Hour)
	require.NoError(t, err)
	expired, err := jwt.NewService(testSecret).GenerateToken(userID, actor.RoleClient, -time.Minute)
	require.NoError(t, err)
	foreign, err := jwt.NewService("another-secret").GenerateToken(userID, actor.RoleAdmin, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantStatus int
	}{
		{
			name:       "bearer token",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "cookie token",
			setup:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: valid}) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "no token",
			setup:      func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+expired) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token signed with another key",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+foreign) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non bearer scheme",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Basic "+valid) },
			wantStatus: http.StatusUnauthorized,
		},
	}

	router := newAuthRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), userID.String())
				assert.Contains(t, rec.Body.String(), "SALES_STAFF")
			}
		})
	}
}

func TestGetActor_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := middleware.GetActor(c)
	assert.False(t, ok)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := middleware.NewIPRateLimiter(rate.Every(time.Hour), 2, time.Hour, clock.NewRealClock())

	r := gin.New()
	r.GET("/showroom", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/showroom", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))

	// buckets are per IP
	assert.Equal(t, http.StatusOK, call("10.0.0.2"))
}

func TestRateLimit_Sweep(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	limiter := middleware.NewIPRateLimiter(rate.Every(time.Hour), 1, 10*time.Minute, clk)

	r := gin.New()
	r.GET("/showroom", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/showroom", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := range 50 {
		call(fmt.Sprintf("10.0.1.%d", i))
	}
	assert.Equal(t, 50, limiter.Size())

	clk.Add(5 * time.Minute)
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.1.0"), "recent clients keep their bucket")
	assert.Zero(t, limiter.Sweep(), "nobody is idle yet")

	clk.Add(6 * time.Minute)
	assert.Equal(t, 49, limiter.Sweep())
	assert.Equal(t, 1, limiter.Size())

	// an evicted client starts with a fresh bucket
	assert.Equal(t, http.StatusOK, call("10.0.1.7"))
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantOrigin string
		wantCreds  string
	}{
		{
			name:       "listed origin keeps credentials",
			origins:    []string{"http://dealer.example"},
			origin:     "http://dealer.example",
			wantOrigin: "http://dealer.example",
			wantCreds:  "true",
		},
		{
			name:       "wildcard opens every origin",
			origins:    []string{"*"},
			origin:     "http://anywhere.example",
			wantOrigin: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.CORSConfig{
				AllowOrigins:     tt.origins,
				AllowMethods:     []string{http.MethodGet},
				AllowCredentials: true,
			}

			r := gin.New()
			r.Use(middleware.NewCORSMiddleware(cfg))
			r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}
