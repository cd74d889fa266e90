// Package client talks to the management platform's HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/v1/auth"
	"github.com/dmp-tools/tokenpanel/internal/expiry"
	"github.com/dmp-tools/tokenpanel/internal/i18n"
	"github.com/dmp-tools/tokenpanel/internal/logging"
	"github.com/dmp-tools/tokenpanel/internal/panel"
	"github.com/dmp-tools/tokenpanel/internal/version"
)

// APIVersion prefixes every route.
const APIVersion = "v3"

const (
	tokenPath   = "/" + APIVersion + "/tools/token"
	loginPath   = "/" + APIVersion + "/user/login"
	versionPath = "/" + APIVersion + "/version"

	defaultTimeout = 15 * time.Second
	maxBodySize    = 1 << 20
)

type Options struct {
	HTTPClient   *http.Client
	Timeout      time.Duration
	Variant      expiry.Variant
	SessionToken string
	Lang         i18n.Lang
	Logger       *logging.Logger
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	variant    expiry.Variant
	session    string
	lang       i18n.Lang
	logger     *logging.Logger
}

var _ panel.Requester = (*Client)(nil)

func New(baseURL string, opts Options) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", baseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	variant := opts.Variant
	if variant.Name == "" {
		variant = expiry.Default()
	}

	lang := opts.Lang
	if lang == "" {
		lang = i18n.ZH
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	return &Client{
		baseURL:    u,
		httpClient: httpClient,
		variant:    variant,
		session:    opts.SessionToken,
		lang:       lang,
		logger:     logger,
	}, nil
}

// Requester exposes the client as the panel's create-token backend.
func Requester(c *Client) panel.Requester {
	return c
}

// SetSessionToken replaces the token sent with authenticated calls.
func (c *Client) SetSessionToken(token string) {
	c.session = token
}

// CreateToken asks the platform for a new access token valid for the given
// number of hours. It returns the token and the server's message.
func (c *Client) CreateToken(ctx context.Context, hours int) (string, string, error) {
	const op = "create token"

	resp, err := c.do(ctx, op, http.MethodPost, tokenPath, c.variant.Payload(hours), true)
	if err != nil {
		return "", "", err
	}

	var token string
	if err := json.Unmarshal(resp.Data, &token); err != nil {
		return "", "", &Error{Op: op, Status: http.StatusOK, Code: resp.Code, Err: fmt.Errorf("decode token: %w", err)}
	}
	return token, resp.Message, nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	const op = "login"

	body := auth.LoginRequest{Username: username, Password: password}
	resp, err := c.do(ctx, op, http.MethodPost, loginPath, body, false)
	if err != nil {
		return "", err
	}

	var token string
	if err := json.Unmarshal(resp.Data, &token); err != nil {
		return "", &Error{Op: op, Status: http.StatusOK, Code: resp.Code, Err: fmt.Errorf("decode session token: %w", err)}
	}
	if token == "" {
		return "", &Error{Op: op, Status: http.StatusOK, Code: resp.Code, Err: errors.New("empty session token")}
	}
	return token, nil
}

// ServerVersion fetches the build information of the server.
func (c *Client) ServerVersion(ctx context.Context) (*version.BuildInfo, error) {
	const op = "server version"

	resp, err := c.do(ctx, op, http.MethodGet, versionPath, nil, false)
	if err != nil {
		return nil, err
	}

	var info version.BuildInfo
	if err := json.Unmarshal(resp.Data, &info); err != nil {
		return nil, &Error{Op: op, Status: http.StatusOK, Code: resp.Code, Err: fmt.Errorf("decode version: %w", err)}
	}
	return &info, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body interface{}, authenticated bool) (*common.RawResponse, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL.String() + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(i18n.Header, string(c.lang))
	req.Header.Set("User-Agent", "tokenpanel/"+version.Version)
	if authenticated {
		req.Header.Set(c.variant.HeaderName, c.session)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("%s %s failed: %v", method, path, err)
		return nil, &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()
	c.logger.Debug("%s %s -> %d in %s", method, path, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		e := &Error{Op: op, Status: resp.StatusCode}
		var envelope common.RawResponse
		if json.Unmarshal(data, &envelope) == nil {
			e.Code, e.Message = envelope.Code, envelope.Message
		}
		return nil, e
	}

	var envelope common.RawResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if envelope.Code != common.CodeOK {
		return nil, &Error{Op: op, Status: resp.StatusCode, Code: envelope.Code, Message: envelope.Message}
	}
	return &envelope, nil
}
