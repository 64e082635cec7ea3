package helix

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/andyle182810/twitchkit/ratelimit"
)

const (
	DefaultBaseURL         = "https://api.twitch.tv/helix"
	DefaultTimeout         = 30 * time.Second
	DefaultMaxResponseSize = 2 << 20

	BucketHelix = "helix"

	HeaderAuthorization = "Authorization"
	HeaderClientID      = "Client-Id"
	HeaderContentType   = "Content-Type"
	ContentTypeJSON     = "application/json"
)

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithHTTPClient(httpClient Doer) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if httpClient, ok := c.httpClient.(*http.Client); ok {
			httpClient.Timeout = timeout
		}
	}
}

func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

func WithStaticToken(token string) Option {
	return func(c *Client) {
		c.tokens = StaticToken(token)
	}
}

func WithLimiter(limiter ratelimit.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

func WithMaxResponseSize(size int64) Option {
	return func(c *Client) {
		c.maxResponseSize = size
	}
}
