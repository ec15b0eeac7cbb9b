package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken struct {
	token string
	err   error
}

func (s staticToken) Token() (string, error) {
	return s.token, s.err
}

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	raw, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return raw
}

func TestClientSendsHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		assert.Equal(t, "/api/projects", r.URL.Path)
		_, _ = w.Write([]byte(`[{"_id":"a1"}]`))
	}))
	defer srv.Close()

	raw := signed(t, time.Now().Add(time.Hour))
	client := NewClient(srv.URL+"/api/", staticToken{token: raw})

	var out []map[string]string
	require.NoError(t, client.Get(context.Background(), "/projects", &out))

	assert.Equal(t, "Bearer "+raw, got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.NotEmpty(t, got.Get(RequestIDHeader))
	assert.Equal(t, "a1", out[0]["_id"])
}

func TestClientReadsTokenBeforeEveryRequest(t *testing.T) {
	var auth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = append(auth, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tokens := &mutableToken{}
	client := NewClient(srv.URL, tokens)

	require.NoError(t, client.Delete(context.Background(), "/projects/1", nil))
	tokens.value = "opaque"
	require.NoError(t, client.Delete(context.Background(), "/projects/1", nil))

	assert.Equal(t, []string{"", "Bearer opaque"}, auth)
}

type mutableToken struct{ value string }

func (m *mutableToken) Token() (string, error) { return m.value, nil }

func TestClientSkipsExpiredToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken{token: signed(t, time.Now().Add(-time.Hour))})
	require.NoError(t, client.Get(context.Background(), "/skills", nil))
	assert.Equal(t, "", auth)
}

func TestClientStorageErrorDoesNotBlockRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken{err: errors.New("disk gone")})
	require.NoError(t, client.Get(context.Background(), "/skills", nil))
	assert.True(t, called)
}

func TestClientPostsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"_id": "new", "title": body["title"]})
	}))
	defer srv.Close()

	var out map[string]string
	client := NewClient(srv.URL, nil)
	require.NoError(t, client.Post(context.Background(), "/projects", map[string]string{"title": "Site"}, &out))
	assert.Equal(t, "Site", out["title"])
}

func TestClientNormalizesHTTPErrors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
		is      error
	}{
		{"message field", http.StatusBadRequest, `{"message":"Title is required"}`, "Title is required", errs.ErrBadRequest},
		{"error field", http.StatusUnauthorized, `{"error":"token expired"}`, "token expired", errs.ErrUnauthorized},
		{"no body", http.StatusNotFound, ``, "", errs.ErrNotFound},
		{"html body", http.StatusBadGateway, `<html>bad</html>`, "", errs.ErrInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			err := NewClient(srv.URL, nil).Get(context.Background(), "/x", nil)
			require.Error(t, err)

			var apiErr *errs.ApiErr
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.message, apiErr.Details)
			assert.ErrorIs(t, err, tc.is)
		})
	}
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(url, nil).Get(context.Background(), "/projects", nil)
	assert.True(t, errs.IsTransport(err))
}

func TestClientCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewClient(srv.URL, nil).Get(ctx, "/projects", nil)
	assert.True(t, errs.IsTransport(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	}))
	defer srv.Close()

	var out []string
	err := NewClient(srv.URL, nil).Get(context.Background(), "/projects", &out)
	assert.True(t, errs.IsDecode(err))
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	assert.True(t, TokenExpiry(signed(t, exp)).Equal(exp))
	assert.True(t, TokenExpiry("not-a-jwt").IsZero())
}

func TestWithTimeoutIgnoresOptionOrder(t *testing.T) {
	shared := &http.Client{}

	c := NewClient("http://example.com", nil, WithTimeout(5*time.Second), WithHTTPClient(shared))
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
	assert.NotSame(t, shared, c.httpClient)

	c = NewClient("http://example.com", nil, WithHTTPClient(shared), WithTimeout(time.Second))
	assert.Equal(t, time.Second, c.httpClient.Timeout)
	assert.Equal(t, time.Duration(0), shared.Timeout)

	c = NewClient("http://example.com", nil, WithHTTPClient(shared))
	assert.Same(t, shared, c.httpClient)
}
