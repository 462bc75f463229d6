package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successBody = `{"success": true, "errors": [], "messages": [], "result": {"id": "abc"}}`

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(Config{
		Key:     validKey,
		Email:   "admin@example.com",
		BaseURL: baseURL,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(Config{Email: "admin@example.com"})
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewClient_RequiresEmail(t *testing.T) {
	_, err := NewClient(Config{Key: validKey})
	require.ErrorIs(t, err, ErrMissingEmail)
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{Key: validKey, Email: "admin@example.com"})
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	require.NotNil(t, client.httpClient)
	assert.Equal(t, DefaultRequestTimeout, client.httpClient.Timeout)
}

func TestNewClient_NormalizesBaseURL(t *testing.T) {
	client, err := NewClient(Config{
		Key:     validKey,
		Email:   "admin@example.com",
		BaseURL: "https://example.com/v4",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/v4/", client.baseURL)
}

func TestDo_SetsAuthHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, validKey, r.Header.Get(HeaderAuthKey))
		assert.Equal(t, "admin@example.com", r.Header.Get(HeaderAuthEmail))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		io.WriteString(w, successBody)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Do(context.Background(), http.MethodGet, "zones", nil)
	require.NoError(t, err)
}

func TestDo_GetParamsInQueryString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zones", r.URL.Path)
		assert.Equal(t, "example.com", r.URL.Query().Get("name"))
		assert.Equal(t, "50", r.URL.Query().Get("per_page"))
		assert.Empty(t, readAll(t, r.Body))
		io.WriteString(w, successBody)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Do(context.Background(), http.MethodGet, "/zones", map[string]any{
		"name":     "example.com",
		"per_page": 50,
	})
	require.NoError(t, err)
}

func TestDo_PostParamsAsFormBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Empty(t, r.URL.RawQuery)

		form, err := url.ParseQuery(readAll(t, r.Body))
		require.NoError(t, err)
		assert.Equal(t, "example.com", form.Get("name"))
		assert.Equal(t, "true", form.Get("jump_start"))

		io.WriteString(w, successBody)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Do(context.Background(), http.MethodPost, "zones", map[string]any{
		"name":       "example.com",
		"jump_start": true,
	})
	require.NoError(t, err)
}

func TestDo_PutPatchDeleteParamsAsJSONBody(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, method, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Empty(t, r.URL.RawQuery)

				var body map[string]any
				require.NoError(t, json.Unmarshal([]byte(readAll(t, r.Body)), &body))
				assert.Equal(t, "example.com", body["name"])
				assert.Equal(t, false, body["paused"])

				io.WriteString(w, successBody)
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			_, err := client.Do(context.Background(), method, "zones/abc", map[string]any{
				"name":   "example.com",
				"paused": false,
			})
			require.NoError(t, err)
		})
	}
}

func TestDo_RejectsUnsupportedMethod(t *testing.T) {
	client := newTestClient(t, "http://localhost:0")
	_, err := client.Do(context.Background(), "TRACE", "zones", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported method")
}

func TestDo_InvalidKeyMakesNoNetworkAttempt(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		io.WriteString(w, successBody)
	}))
	defer server.Close()

	badKeys := []string{
		"short",
		validKey[:18] + "_" + validKey[19:],
		"ABCDEF" + validKey[6:],
	}

	for _, key := range badKeys {
		client, err := NewClient(Config{Key: key, Email: "admin@example.com", BaseURL: server.URL})
		require.NoError(t, err)

		_, err = client.Do(context.Background(), http.MethodGet, "zones", nil)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	assert.Zero(t, hits.Load(), "pre-flight rejection must not reach the network")
}

func TestDo_HonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
		io.WriteString(w, successBody)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Do(ctx, http.MethodGet, "zones", nil)
	require.ErrorIs(t, err, ErrTransport)
}

func TestSetHTTPClient(t *testing.T) {
	client := newTestClient(t, "http://example.invalid")
	custom := &http.Client{Timeout: time.Minute}
	client.SetHTTPClient(custom)
	assert.Same(t, custom, client.httpClient)
}

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}
