// Package upstream is the gateway's HTTP client for the remote ponto backend.
// It owns the authentication call and the reverse proxy that forwards console
// resource requests with the session's bearer token attached.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/pontocloud/ponto-console/internal/core/domain"
	"github.com/pontocloud/ponto-console/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

const loginEndpoint = "/api/auth/login"

// Client talks to the upstream ponto backend.
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient builds a Client for the backend at rawURL. A default timeout is
// applied when none is provided.
func NewClient(rawURL string, timeout time.Duration) (*Client, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream url: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base: base,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &BearerTransport{Base: http.DefaultTransport},
		},
	}, nil
}

// Authenticate posts the credentials to the backend's login endpoint. The
// request is bound to ctx: when the browser abandons the login, the in-flight
// upstream call is cancelled rather than left to complete and be discarded.
func (c *Client) Authenticate(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base.JoinPath(loginEndpoint).String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrInvalidCredentials
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var result ports.AuthResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode login response: %v", domain.ErrUpstreamUnavailable, err)
	}
	if result.Token == "" {
		return nil, fmt.Errorf("%w: login response missing token", domain.ErrUpstreamUnavailable)
	}
	return &result, nil
}

// Proxy returns a reverse proxy that forwards console resource requests to
// the backend. The session cookie and any client-supplied Authorization header
// are stripped; the bearer token travels via the request context and is
// attached by BearerTransport.
func (c *Client) Proxy() *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(c.base)
			pr.SetXForwarded()
			pr.Out.Header.Del("Cookie")
			pr.Out.Header.Del("Authorization")
		},
		Transport: &BearerTransport{Base: http.DefaultTransport},
	}
}
