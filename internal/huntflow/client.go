package huntflow

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
)

// refreshExpiredDetail is the detail string the server puts into the 403
// response body when the refresh token can no longer be used.
const refreshExpiredDetail = "Refresh token is expired"

// Credentials identify the service account used to log into the management
// server.
type Credentials struct {
	Email    string
	Password string
}

// Client talks to the huntflow-reloaded management server. Management
// requests carry the current access token as the `access` query parameter and
// are transparently replayed at most once after a token refresh or re-login.
type Client struct {
	baseURL string
	creds   Credentials
	tokens  *TokenStore
	http    *http.Client
}

func New(baseURL string, creds Credentials, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		tokens:  NewTokenStore(),
		http:    &http.Client{Timeout: timeout},
	}
}

// apiRequest describes one call so that it can be replayed after a token
// refresh with the fresh access token injected.
type apiRequest struct {
	method string
	path   string
	query  url.Values
	body   any
}

// AcquireTokens performs a credential login and stores the returned pair.
func (c *Client) AcquireTokens(ctx context.Context) error {
	body := map[string]any{
		"user": map[string]string{
			"email":    c.creds.Email,
			"password": c.creds.Password,
		},
	}

	var pair TokenPair
	if err := c.send(ctx, apiRequest{method: http.MethodPost, path: "/token", body: body}, &pair); err != nil {
		return &AuthError{Op: "login", Err: err}
	}

	c.tokens.SetPair(pair)
	return nil
}

// RefreshAccess mints a new access token from the stored refresh token,
// leaving the refresh token unchanged. Returns ErrRefreshExpired when the
// server reports the refresh token itself has expired.
func (c *Client) RefreshAccess(ctx context.Context) error {
	query := url.Values{"refresh": {c.tokens.Refresh()}}

	var out struct {
		Access string `json:"access"`
	}
	if err := c.send(ctx, apiRequest{method: http.MethodPost, path: "/token/refresh", query: query}, &out); err != nil {
		var backendErr *BackendError
		if errors.As(err, &backendErr) && backendErr.Detail == refreshExpiredDetail {
			return ErrRefreshExpired
		}
		return &AuthError{Op: "refresh", Err: err}
	}

	c.tokens.SetAccess(out.Access)
	return nil
}

// do runs a management request through the retry pipeline.
func (c *Client) do(ctx context.Context, req apiRequest, out any) error {
	return c.attempt(ctx, req, out, false)
}

// attempt performs one round trip. On 403 it refreshes the access token
// (falling back to a full re-login when the refresh token has expired), on
// 401 it re-logs in directly; either way the original request is replayed
// exactly once. A request that has already been replayed is never replayed
// again.
func (c *Client) attempt(ctx context.Context, req apiRequest, out any, retried bool) error {
	err := c.send(ctx, req, out)
	if err == nil || retried {
		return err
	}

	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		return err
	}

	switch backendErr.Status {
	case http.StatusForbidden:
		if refreshErr := c.RefreshAccess(ctx); refreshErr != nil {
			if !errors.Is(refreshErr, ErrRefreshExpired) {
				return refreshErr
			}
			if loginErr := c.AcquireTokens(ctx); loginErr != nil {
				return loginErr
			}
		}
		return c.attempt(ctx, req, out, true)
	case http.StatusUnauthorized:
		if loginErr := c.AcquireTokens(ctx); loginErr != nil {
			return loginErr
		}
		return c.attempt(ctx, req, out, true)
	}

	return err
}

// send performs a single HTTP round trip. The token endpoints are exempt from
// access-token injection; every other request gets the current token as the
// `access` query parameter.
func (c *Client) send(ctx context.Context, req apiRequest, out any) error {
	u, err := url.Parse(c.baseURL + req.path)
	if err != nil {
		return fmt.Errorf("failed to build request URL: %w", err)
	}

	query := url.Values{}
	for key, values := range req.query {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	if !strings.HasPrefix(req.path, "/token") {
		query.Set("access", c.tokens.Access())
	}
	u.RawQuery = query.Encode()

	var reqBody io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		backendErr := &BackendError{Status: resp.StatusCode}
		var body struct {
			Detail string `json:"detail"`
			Code   string `json:"code"`
		}
		if jsonErr := json.Unmarshal(data, &body); jsonErr == nil {
			backendErr.Code = body.Code
			backendErr.Detail = body.Detail
		}
		return backendErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
