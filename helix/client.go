// Package helix is a typed client for the Twitch Helix API. Every
// endpoint method follows the same shape: validate parameters, build an
// ordered query and optional JSON body, acquire a rate-limit permit,
// send, and decode the data envelope.
package helix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/andyle182810/twitchkit/ratelimit"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Doer = (*http.Client)(nil)

// TokenSource supplies the bearer token attached to each call. It may
// be updated concurrently by a refresh collaborator.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

func (s StaticToken) Token(context.Context) (string, error) {
	return string(s), nil
}

type Client struct {
	baseURL         string
	clientID        string
	httpClient      Doer
	tokens          TokenSource
	limiter         ratelimit.Limiter
	log             zerolog.Logger
	maxResponseSize int64
}

func New(clientID string, opts ...Option) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		clientID: clientID,
		httpClient: &http.Client{ //nolint:exhaustruct
			Timeout: DefaultTimeout,
		},
		tokens:          nil,
		limiter:         ratelimit.New(),
		log:             zerolog.Nop(),
		maxResponseSize: DefaultMaxResponseSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do runs one call through the pipeline and returns the raw status and
// body. Status-code semantics are left to the decoding layer.
func (c *Client) Do(ctx context.Context, req Request) (*RawResponse, error) {
	bucket := req.Bucket
	if bucket == "" {
		bucket = BucketHelix
	}

	if err := c.limiter.Wait(ctx, bucket); err != nil {
		return nil, err
	}

	token, err := c.resolveToken(ctx, req)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()

	httpReq, err := c.buildRequest(ctx, req, token)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("request", req.Method+" "+req.Path).
			Msg("The call has failed at the transport layer")

		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := c.readBody(resp.Body)
	if err != nil {
		return nil, err
	}

	raw := &RawResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
		RequestID:  requestID,
	}

	c.logCall(req, raw, time.Since(start))

	return raw, nil
}

func (c *Client) resolveToken(ctx context.Context, req Request) (string, error) {
	if req.AccessToken != "" {
		return req.AccessToken, nil
	}

	if c.tokens == nil {
		return "", ErrNoToken
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	if token == "" {
		return "", ErrNoToken
	}

	return token, nil
}

func (c *Client) buildRequest(ctx context.Context, req Request, token string) (*http.Request, error) {
	var bodyReader io.Reader

	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.buildURL(req), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	httpReq.Header.Set(HeaderAuthorization, "Bearer "+token)
	httpReq.Header.Set(HeaderClientID, c.clientID)

	if req.Body != nil {
		httpReq.Header.Set(HeaderContentType, ContentTypeJSON)
	}

	return httpReq, nil
}

func (c *Client) buildURL(req Request) string {
	path := req.Path
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	fullURL := c.baseURL + path

	query := req.Query.Encode()
	if query == "" {
		return fullURL
	}

	return fullURL + "?" + query
}

func (c *Client) readBody(body io.Reader) ([]byte, error) {
	if c.maxResponseSize > 0 {
		body = io.LimitReader(body, c.maxResponseSize+1)
	}

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if c.maxResponseSize > 0 && int64(len(bodyBytes)) > c.maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	return bodyBytes, nil
}

func (c *Client) logCall(req Request, raw *RawResponse, latency time.Duration) {
	logger := c.log.With().
		Str("request_id", raw.RequestID).
		Str("request", req.Method+" "+req.Path).
		Int("status", raw.StatusCode).
		Dur("latency", latency).
		Logger()

	switch {
	case raw.StatusCode >= http.StatusInternalServerError:
		logger.Error().Msg("The call has resulted in a server error")
	case raw.StatusCode >= http.StatusBadRequest:
		logger.Error().Msg("The call has resulted in a client error")
	default:
		logger.Debug().Msg("The call has completed successfully")
	}
}
