package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(headers map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/v3/tools/token", nil)
	c.Request.RemoteAddr = "10.0.0.9:5555"
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c, w
}

func TestGetRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"x-real-ip", map[string]string{"X-Real-IP": "1.2.3.4", "X-Forwarded-For": "5.6.7.8"}, "1.2.3.4"},
		{"forwarded list", map[string]string{"X-Forwarded-For": "5.6.7.8, 10.0.0.1"}, "5.6.7.8"},
		{"remote addr", nil, "10.0.0.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(tt.headers)
			if got := GetRealIP(c); got != tt.want {
				t.Errorf("GetRealIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandleAPIErrorLocalized(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", "Bad Request"},
		{"zh", "请求错误"},
		{"", "请求错误"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			c, w := newContext(map[string]string{"X-I18n-Lang": tt.lang})
			HandleAPIError(c, errors.New("boom"), common.CodeBadRequest, "bad request")

			assert.Equal(t, http.StatusOK, w.Code)
			var resp common.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, common.CodeBadRequest, resp.Code)
			assert.Equal(t, tt.want, resp.Message)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestHandleSuccess(t *testing.T) {
	c, w := newContext(nil)
	HandleSuccess(c, "ok", "abc123")

	assert.JSONEq(t, `{"code":200,"message":"ok","data":"abc123"}`, w.Body.String())
}
