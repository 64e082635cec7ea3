// Package authtoken manages OAuth credentials against the Twitch
// identity service: app access tokens via the client-credentials grant,
// token validation, and token revocation.
package authtoken

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrTokenRequestFailed = errors.New("authtoken: token request failed")
	ErrNoAccessToken      = errors.New("authtoken: no access token in response")
	ErrInvalidToken       = errors.New("authtoken: token is not valid")
)

const (
	DefaultBaseURL = "https://id.twitch.tv"
	DefaultTimeout = 10 * time.Second

	tokenExpiryBuffer    = 30 * time.Second
	grantTypeCredentials = "client_credentials"
)

//nolint:tagliatelle
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

//nolint:tagliatelle
type oauthError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Validation is the introspection result for a bearer token.
//
//nolint:tagliatelle
type Validation struct {
	ClientID  string   `json:"client_id"`
	Login     string   `json:"login"`
	UserID    string   `json:"user_id"`
	Scopes    []string `json:"scopes"`
	ExpiresIn int      `json:"expires_in"`
}

type Client struct {
	clientID     string
	clientSecret string
	restyClient  *resty.Client

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

func New(clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		restyClient: resty.New().
			SetBaseURL(DefaultBaseURL).
			SetTimeout(DefaultTimeout).
			SetHeader("Accept", "application/json"),
		mu:          sync.RWMutex{},
		accessToken: "",
		expiresAt:   time.Time{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Token returns a valid app access token, fetching a fresh one when the
// cached token is missing or about to expire. It satisfies the token
// source contract of the helix client.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.accessToken != "" && time.Now().Before(c.expiresAt) {
		token := c.accessToken
		c.mu.RUnlock()

		return token, nil
	}
	c.mu.RUnlock()

	return c.refreshToken(ctx)
}

func (c *Client) refreshToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock (another goroutine might have refreshed)
	if c.accessToken != "" && time.Now().Before(c.expiresAt) {
		return c.accessToken, nil
	}

	token, expiresIn, err := c.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	c.accessToken = token
	// Refresh before actual expiry to avoid edge cases
	c.expiresAt = time.Now().Add(time.Duration(expiresIn)*time.Second - tokenExpiryBuffer)

	return c.accessToken, nil
}

func (c *Client) fetchToken(ctx context.Context) (string, int, error) {
	var (
		tokenResp tokenResponse
		tokenErr  oauthError
	)

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    grantTypeCredentials,
			"client_id":     c.clientID,
			"client_secret": c.clientSecret,
		}).
		SetResult(&tokenResp).
		SetError(&tokenErr).
		Post("/oauth2/token")
	if err != nil {
		return "", 0, fmt.Errorf("failed to fetch token: %w", err)
	}

	if !resp.IsSuccess() {
		return "", 0, fmt.Errorf("%w: status %d: %s",
			ErrTokenRequestFailed, resp.StatusCode(), tokenErr.Message)
	}

	if tokenResp.AccessToken == "" {
		return "", 0, ErrNoAccessToken
	}

	return tokenResp.AccessToken, tokenResp.ExpiresIn, nil
}

// ValidateToken introspects an arbitrary bearer token. Twitch requires
// clients to run this hourly for long-lived tokens.
func (c *Client) ValidateToken(ctx context.Context, token string) (*Validation, error) {
	var (
		validation Validation
		tokenErr   oauthError
	)

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "OAuth "+token).
		SetResult(&validation).
		SetError(&tokenErr).
		Get("/oauth2/validate")
	if err != nil {
		return nil, fmt.Errorf("failed to validate token: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d: %s",
			ErrInvalidToken, resp.StatusCode(), tokenErr.Message)
	}

	return &validation, nil
}

// RevokeToken invalidates a token upstream. The local cache is cleared
// when the revoked token is the cached one.
func (c *Client) RevokeToken(ctx context.Context, token string) error {
	var tokenErr oauthError

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"client_id": c.clientID,
			"token":     token,
		}).
		SetError(&tokenErr).
		Post("/oauth2/revoke")
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: status %d: %s",
			ErrTokenRequestFailed, resp.StatusCode(), tokenErr.Message)
	}

	c.mu.Lock()
	if c.accessToken == token {
		c.accessToken = ""
		c.expiresAt = time.Time{}
	}
	c.mu.Unlock()

	return nil
}

func (c *Client) InvalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.accessToken = ""
	c.expiresAt = time.Time{}
}
