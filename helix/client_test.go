package helix_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyle182810/twitchkit/helix"
)

type recordingLimiter struct {
	mu      sync.Mutex
	buckets []string
	err     error
}

func (l *recordingLimiter) Wait(_ context.Context, bucket string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buckets = append(l.buckets, bucket)

	return l.err
}

func newTestClient(serverURL string, opts ...helix.Option) *helix.Client {
	base := []helix.Option{
		helix.WithBaseURL(serverURL),
		helix.WithStaticToken("test-token"),
	}

	return helix.New("test-client-id", append(base, opts...)...)
}

func TestClient_Do_AttachesAuthAndClientHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "test-client-id", r.Header.Get("Client-Id"))
		assert.Empty(t, r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Do(context.Background(), helix.Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/users",
	})

	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_Do_EncodesOrderedQuery(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/streams", r.URL.Path)
		assert.Equal(t, "user_login=alice&user_login=bob&first=5", r.URL.RawQuery)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	var query helix.Params

	query.AddAll("user_login", []string{"alice", "bob"})
	query.AddInt("first", 5)

	_, err := client.Do(context.Background(), helix.Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/streams",
		Query:  query,
	})

	require.NoError(t, err)
}

func TestClient_Do_SetsContentTypeForBodies(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Do(context.Background(), helix.Request{ //nolint:exhaustruct
		Method: http.MethodPost,
		Path:   "/eventsub/conduits",
		Body:   map[string]int{"shard_count": 5},
	})

	require.NoError(t, err)
}

func TestClient_Do_PerRequestTokenOverride(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer override-token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Do(context.Background(), helix.Request{ //nolint:exhaustruct
		Method:      http.MethodGet,
		Path:        "/users",
		AccessToken: "override-token",
	})

	require.NoError(t, err)
}

func TestClient_Do_FailsWithoutAnyToken(t *testing.T) {
	t.Parallel()

	called := false

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := helix.New("test-client-id", helix.WithBaseURL(server.URL))

	_, err := client.Do(context.Background(), helix.Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/users",
	})

	require.ErrorIs(t, err, helix.ErrNoToken)
	require.False(t, called)
}

func TestClient_Do_AcquiresRateLimitPermitBeforeSending(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	limiter := &recordingLimiter{} //nolint:exhaustruct

	client := newTestClient(server.URL, helix.WithLimiter(limiter))

	_, err := client.Do(context.Background(), helix.Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/users",
	})

	require.NoError(t, err)
	require.Equal(t, []string{helix.BucketHelix}, limiter.buckets)
}

func TestClient_Do_RejectedPermitShortCircuits(t *testing.T) {
	t.Parallel()

	called := false

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	permitErr := errors.New("permit rejected")
	limiter := &recordingLimiter{err: permitErr} //nolint:exhaustruct

	client := newTestClient(server.URL, helix.WithLimiter(limiter))

	_, err := client.Do(context.Background(), helix.Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/users",
	})

	require.ErrorIs(t, err, permitErr)
	require.False(t, called)
}

func TestClient_Do_ReturnsStatusAndBodyVerbatim(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not Found","status":404,"message":"no such user"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Do(context.Background(), helix.Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/users",
	})

	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"error":"Not Found","status":404,"message":"no such user"}`, string(resp.Body))
}

func TestClient_Do_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close()

	client := newTestClient(server.URL)

	_, err := client.Do(context.Background(), helix.Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/users",
	})

	require.ErrorIs(t, err, helix.ErrTransport)
}

func TestClient_Do_BoundedTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL, helix.WithTimeout(50*time.Millisecond))

	_, err := client.Do(context.Background(), helix.Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/users",
	})

	require.ErrorIs(t, err, helix.ErrTransport)
}

func TestClient_Do_ResponseTooLarge(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(make([]byte, 64))
	}))
	defer server.Close()

	client := newTestClient(server.URL, helix.WithMaxResponseSize(16))

	_, err := client.Do(context.Background(), helix.Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/users",
	})

	require.ErrorIs(t, err, helix.ErrResponseTooLarge)
}

func TestClient_Do_TokenSourceFailurePropagates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := helix.New(
		"test-client-id",
		helix.WithBaseURL(server.URL),
		helix.WithTokenSource(failingTokenSource{}),
	)

	_, err := client.Do(context.Background(), helix.Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/users",
	})

	require.ErrorIs(t, err, helix.ErrAuthFailed)
}

type failingTokenSource struct{}

func (failingTokenSource) Token(context.Context) (string, error) {
	return "", errors.New("token store unavailable")
}
