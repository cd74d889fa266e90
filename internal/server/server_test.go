package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
	"github.com/dmp-tools/tokenpanel/internal/client"
	"github.com/dmp-tools/tokenpanel/internal/config"
	"github.com/dmp-tools/tokenpanel/internal/expiry"
	"github.com/dmp-tools/tokenpanel/internal/i18n"
	"github.com/dmp-tools/tokenpanel/internal/logging"
	"github.com/dmp-tools/tokenpanel/internal/panel"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:    "test",
		Host:           "127.0.0.1",
		Port:           "0",
		LogLevel:       "error",
		AdminUser:      "admin",
		AdminPassword:  "secret",
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		ServiceName:    "tokenpanel-test",
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := NewServer(testConfig(), logging.NewNopLogger())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func newClient(t *testing.T, baseURL string, variant expiry.Variant, lang i18n.Lang) *client.Client {
	t.Helper()
	c, err := client.New(baseURL, client.Options{Variant: variant, Lang: lang})
	require.NoError(t, err)
	return c
}

func decode(t *testing.T, resp *http.Response) common.RawResponse {
	t.Helper()
	defer resp.Body.Close()
	var out common.RawResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestLoginAndCreateToken(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	for _, variant := range expiry.Variants() {
		t.Run(variant.Name, func(t *testing.T) {
			c := newClient(t, ts.URL, variant, i18n.EN)

			session, err := c.Login(ctx, "admin", "secret")
			require.NoError(t, err)
			require.NotEmpty(t, session)
			c.SetSessionToken(session)

			token, message, err := c.CreateToken(ctx, variant.Options[0].Hours)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, "Create Success", message)
		})
	}
}

func TestCreateTokenWithoutSession(t *testing.T) {
	ts := newTestServer(t)
	c := newClient(t, ts.URL, expiry.DMP, i18n.ZH)

	_, _, err := c.CreateToken(context.Background(), 24)
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "Token校验失败", err.Error())
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	c := newClient(t, ts.URL, expiry.DMP, i18n.EN)

	_, err := c.Login(context.Background(), "admin", "nope")
	require.Error(t, err)
	assert.Equal(t, "Wrong Password", err.Error())
}

func TestCreateTokenNegativeHours(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	c := newClient(t, ts.URL, expiry.DMP, i18n.EN)
	session, err := c.Login(ctx, "admin", "secret")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/v3/tools/token", strings.NewReader(`{"expiration":-1}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(expiry.HeaderDMP, session)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, common.CodeBadRequest, body.Code)
}

func TestIssuedTokenAuthenticates(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	c := newClient(t, ts.URL, expiry.DMP, i18n.EN)
	session, err := c.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	c.SetSessionToken(session)

	token, _, err := c.CreateToken(ctx, 0)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/v3/tools/token", nil)
	require.NoError(t, err)
	req.Header.Set(expiry.HeaderAuthorization, "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	body := decode(t, resp)
	assert.Equal(t, common.CodeOK, body.Code)

	var list []struct {
		Owner string `json:"owner"`
		Hours int    `json:"hours"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "admin", list[0].Owner)
	assert.Equal(t, expiry.PermanentHours, list[0].Hours)
}

func TestPanelAgainstServer(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	c := newClient(t, ts.URL, expiry.Legacy, i18n.EN)
	session, err := c.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	c.SetSessionToken(session)

	n := &recordingNotifier{}
	p, err := panel.New(panel.Context{Lang: i18n.EN, Variant: expiry.Legacy}, client.Requester(c), n)
	require.NoError(t, err)

	require.NoError(t, p.SelectExpiryByName("forever"))
	require.NoError(t, p.Submit(ctx))

	assert.Equal(t, panel.StateIssued, p.State())
	assert.NotEmpty(t, p.Token())
	assert.Equal(t, []string{"Create Success"}, n.successes)
}

func TestHealthAndVersion(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, common.CodeOK, decode(t, resp).Code)

	c := newClient(t, ts.URL, expiry.DMP, i18n.EN)
	info, err := c.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, info.Version)
}

func TestRequestIDEchoed(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}

type recordingNotifier struct {
	warnings  []string
	successes []string
	errors    []error
}

func (n *recordingNotifier) Warn(message string)    { n.warnings = append(n.warnings, message) }
func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(err error)        { n.errors = append(n.errors, err) }

func TestLogoutEndsSession(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	c := newClient(t, ts.URL, expiry.DMP, i18n.EN)
	session, err := c.Login(ctx, "admin", "secret")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/v3/user/logout", nil)
	require.NoError(t, err)
	req.Header.Set(expiry.HeaderDMP, session)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, common.CodeOK, decode(t, resp).Code)

	c.SetSessionToken(session)
	_, _, err = c.CreateToken(ctx, 24)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestRevokedTokenStopsAuthenticating(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	c := newClient(t, ts.URL, expiry.DMP, i18n.EN)
	session, err := c.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	c.SetSessionToken(session)

	token, _, err := c.CreateToken(ctx, 24)
	require.NoError(t, err)

	call := func(method, path, presented string) common.RawResponse {
		req, err := http.NewRequest(method, ts.URL+path, nil)
		require.NoError(t, err)
		req.Header.Set(expiry.HeaderDMP, presented)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return decode(t, resp)
	}

	list := call(http.MethodGet, "/v3/tools/token", session)
	require.Equal(t, common.CodeOK, list.Code)
	var tokens []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(list.Data, &tokens))
	require.Len(t, tokens, 1)

	assert.Equal(t, common.CodeOK, call(http.MethodDelete, "/v3/tools/token/"+tokens[0].ID, session).Code)
	assert.Equal(t, common.CodeTokenFail, call(http.MethodGet, "/v3/tools/token", token).Code)
	assert.Equal(t, common.CodeBadRequest, call(http.MethodDelete, "/v3/tools/token/not-a-uuid", session).Code)
}

func TestShutdownBeforeStart(t *testing.T) {
	srv := NewServer(testConfig(), logging.NewNopLogger())

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, srv.Start())
	assert.ErrorIs(t, srv.tasksCtx.Err(), context.Canceled)
}

func TestShutdownWhileStarting(t *testing.T) {
	cfg := testConfig()
	cfg.SessionIdleTimeout = time.Hour
	cfg.SessionCleanupInterval = time.Hour
	srv := NewServer(cfg, logging.NewNopLogger())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
