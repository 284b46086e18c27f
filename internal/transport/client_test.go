package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolness/nycdb-fun/pkg/errors"
)

func TestClientFetch(t *testing.T) {
	var gotToken, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-App-Token")
		gotAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"name":"ok"}`))
		case "/limited":
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := New(WithAuth(SocrataAppToken("token")), WithTimeout(5*time.Second))

	t.Run("success", func(t *testing.T) {
		body, err := client.Fetch(context.Background(), "test", server.URL+"/ok")
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"ok"}`, string(body))
		assert.Equal(t, "token", gotToken)
		assert.Equal(t, DefaultUserAgent, gotAgent)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := client.Fetch(context.Background(), "test", server.URL+"/missing")
		require.Error(t, err)

		var httpErr *errors.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
		assert.Equal(t, "test", httpErr.Source)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("rate limited", func(t *testing.T) {
		_, err := client.Fetch(context.Background(), "test", server.URL+"/limited")
		assert.True(t, errors.IsRateLimited(err))
	})

	t.Run("connection failure", func(t *testing.T) {
		_, err := New().Fetch(context.Background(), "test", "http://127.0.0.1:1/unreachable")
		var httpErr *errors.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, 0, httpErr.StatusCode)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.Fetch(ctx, "test", server.URL+"/ok")
		assert.True(t, errors.IsCanceled(err))
	})
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, DecodeJSON([]byte(`{"name":"pluto"}`), &out, "pluto.json"))
	assert.Equal(t, "pluto", out.Name)

	err := DecodeJSON([]byte(`{`), &out, "broken.json")
	var pe *errors.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "broken.json", pe.Document)
}
