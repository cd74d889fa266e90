package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmp-tools/tokenpanel/internal/api/constants"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/v1/token"
	"github.com/dmp-tools/tokenpanel/internal/logging"
	"github.com/dmp-tools/tokenpanel/internal/repository"
	"github.com/dmp-tools/tokenpanel/internal/service"
	"github.com/dmp-tools/tokenpanel/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) common.APIResponse {
	t.Helper()
	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func newAuthService() *service.AuthService {
	tokens := service.NewTokenService(repository.NewTokenRepository())
	return service.NewAuthService(repository.NewSessionRepository(), tokens, "admin", "secret")
}

func protectedRouter(authService *service.AuthService) *gin.Engine {
	r := gin.New()
	r.POST("/v3/tools/token",
		NewAuthMiddleware(authService).RequireToken(),
		NewAdminMiddleware().RequireAdmin(),
		func(c *gin.Context) {
			utils.HandleSuccess(c, "ok", c.GetString(constants.ContextKeyUsername))
		})
	return r
}

func TestRequireToken(t *testing.T) {
	authService := newAuthService()
	adminSession, err := authService.CreateSession(context.Background(), "admin", constants.RoleAdmin, "", "")
	require.NoError(t, err)
	userSession, err := authService.CreateSession(context.Background(), "viewer", constants.RoleUser, "", "")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		value    string
		wantCode int
		wantMsg  string
	}{
		{"no header", "", "", common.CodeTokenFail, "Token Verification Failed"},
		{"unknown token", "X-DMP-TOKEN", "nope", common.CodeTokenFail, "Token Verification Failed"},
		{"dmp header", "X-DMP-TOKEN", adminSession, common.CodeOK, "ok"},
		{"authorization header", "Authorization", adminSession, common.CodeOK, "ok"},
		{"bearer prefix", "Authorization", "Bearer " + adminSession, common.CodeOK, "ok"},
		{"not admin", "X-DMP-TOKEN", userSession, common.CodeSoftFail, "Permission Needed"},
	}

	r := protectedRouter(authService)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v3/tools/token", nil)
			req.Header.Set("X-I18n-Lang", "en")
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			resp := decode(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestRequireAdminWithoutUser(t *testing.T) {
	r := gin.New()
	r.GET("/", NewAdminMiddleware().RequireAdmin(), func(c *gin.Context) {
		utils.HandleSuccess(c, "ok", nil)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, common.CodeTokenFail, decode(t, w).Code)
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(RateLimitConfig{RPS: 0.001, Burst: 2}))
	r.GET("/", func(c *gin.Context) { utils.HandleSuccess(c, "ok", nil) })

	call := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, common.CodeOK, decode(t, call("1.1.1.1")).Code)
	assert.Equal(t, common.CodeOK, decode(t, call("1.1.1.1")).Code)

	w := call("1.1.1.1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, common.CodeRateLimited, decode(t, w).Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "1000", w.Header().Get("Retry-After"))

	// other clients have their own budget
	assert.Equal(t, common.CodeOK, decode(t, call("2.2.2.2")).Code)
}

func TestIPLimitersEvictIdleClients(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	l := newIPLimiters(RateLimitConfig{RPS: 10, Burst: 20})
	l.now = func() time.Time { return now }
	l.lastSweep = now
	require.Equal(t, minLimiterIdle, l.idle)

	first := l.get("1.1.1.1")
	l.get("2.2.2.2")
	assert.Equal(t, 2, l.size())

	now = now.Add(5 * time.Minute)
	assert.Same(t, first, l.get("1.1.1.1"))

	// 2.2.2.2 has been idle for a full period, 1.1.1.1 only for half of one
	now = now.Add(5 * time.Minute)
	l.get("3.3.3.3")
	assert.Equal(t, 2, l.size())
	assert.Same(t, first, l.get("1.1.1.1"))
}

func TestIPLimitersKeepSlowRefillingClients(t *testing.T) {
	l := newIPLimiters(RateLimitConfig{RPS: 0.001, Burst: 2})
	assert.Equal(t, 2000*time.Second, l.idle)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		development bool
		origin      string
		method      string
		wantStatus  int
		wantOrigin  string
	}{
		{"dev echoes origin", nil, true, "http://evil.test", http.MethodGet, http.StatusOK, "http://evil.test"},
		{"listed origin", []string{"http://console.test"}, false, "http://console.test", http.MethodGet, http.StatusOK, "http://console.test"},
		{"unlisted origin", []string{"http://console.test"}, false, "http://evil.test", http.MethodGet, http.StatusForbidden, ""},
		{"wildcard", []string{"*"}, false, "http://any.test", http.MethodGet, http.StatusOK, "http://any.test"},
		{"no origin", nil, false, "", http.MethodGet, http.StatusOK, ""},
		{"preflight", []string{"http://console.test"}, false, "http://console.test", http.MethodOptions, http.StatusNoContent, "http://console.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(tt.origins, tt.development))
			r.Any("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantStatus != http.StatusForbidden {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-DMP-TOKEN")
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLogger(&logging.Config{Level: "info", LogRequests: true, Console: &buf})
	require.NoError(t, err)

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/fail", func(c *gin.Context) { utils.HandleFailure(c, common.CodeTokenFail, "nope") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Contains(t, buf.String(), "/fail")
	assert.Contains(t, buf.String(), "code 420")
}

func TestValidateCreateTokenRequest(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantHours int
	}{
		{"expiration", `{"expiration":720}`, common.CodeOK, 720},
		{"expiredTime", `{"expiredTime":1752000}`, common.CodeOK, 1752000},
		{"permanent", `{"expiration":0}`, common.CodeOK, 0},
		{"absent", `{}`, common.CodeOK, 0},
		{"negative", `{"expiration":-5}`, common.CodeBadRequest, 0},
		{"wrong type", `{"expiration":"month"}`, common.CodeBadRequest, 0},
		{"not json", `month`, common.CodeBadRequest, 0},
	}

	r := gin.New()
	r.POST("/", NewValidationMiddleware().ValidateCreateTokenRequest(), func(c *gin.Context) {
		req := c.MustGet(constants.ContextKeyCreateToken).(token.CreateRequest)
		utils.HandleSuccess(c, "ok", req.Hours())
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			resp := decode(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			if tt.wantCode == common.CodeOK {
				assert.Equal(t, float64(tt.wantHours), resp.Data)
			}
		})
	}
}

func TestValidateLoginRequest(t *testing.T) {
	r := gin.New()
	r.POST("/", NewValidationMiddleware().ValidateLoginRequest(), func(c *gin.Context) {
		utils.HandleSuccess(c, "ok", nil)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, common.CodeBadRequest, decode(t, w).Code)
}
