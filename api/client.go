package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const RequestIDHeader = "X-Request-ID"

// TokenReader returns the persisted bearer token, "" when signed out.
// database.SessionRepo satisfies it.
type TokenReader interface {
	Token() (string, error)
}

// Client talks to the portfolio REST API. It reads the bearer token before
// every request and never writes session state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	tokens     oauth2.TokenSource
	logger     zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds each request. Zero keeps the transport default (none).
// The timeout is set on a copy of the HTTP client, after all options ran.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func NewClient(baseURL string, tokens TokenReader, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     sessionTokenSource{reader: tokens},
		logger:     log.With().Str("serviceName", "apiClient").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.timeout > 0 {
		owned := *c.httpClient
		owned.Timeout = c.timeout
		c.httpClient = &owned
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, dst any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", dst)
}

func (c *Client) Post(ctx context.Context, path string, body any, dst any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, dst)
}

func (c *Client) Put(ctx context.Context, path string, body any, dst any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, dst)
}

func (c *Client) Delete(ctx context.Context, path string, dst any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", dst)
}

func (c *Client) PostMultipart(ctx context.Context, path string, form *Form, dst any) error {
	return c.doForm(ctx, http.MethodPost, path, form, dst)
}

func (c *Client) PutMultipart(ctx context.Context, path string, form *Form, dst any) error {
	return c.doForm(ctx, http.MethodPut, path, form, dst)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, dst any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.NewEncodeError(err)
		}
		reader = bytes.NewReader(payload)
	}
	return c.do(ctx, method, path, reader, "application/json", dst)
}

func (c *Client) doForm(ctx context.Context, method, path string, form *Form, dst any) error {
	contentType, body, err := form.Encode()
	if err != nil {
		return errs.NewEncodeError(err)
	}
	return c.do(ctx, method, path, body, contentType, dst)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, dst any) error {
	requestID := uuid.NewString()
	logger := c.logger.With().
		Str("method", method).
		Str("path", path).
		Str("requestID", requestID).
		Logger()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.NewTransportError(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.authorize(req, logger)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("request failed")
		return errs.NewTransportError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error().Err(err).Int("status", resp.StatusCode).Msg("failed to read response body")
		return errs.NewTransportError(err)
	}

	logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.NewHTTPError(resp.StatusCode, serverMessage(payload))
	}

	if dst == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		logger.Error().Err(err).Int("status", resp.StatusCode).Msg("failed to decode response body")
		return errs.NewDecodeError(resp.StatusCode, err)
	}
	return nil
}

// authorize attaches the bearer header when a usable token is stored.
func (c *Client) authorize(req *http.Request, logger zerolog.Logger) {
	tok, err := c.tokens.Token()
	if err != nil {
		if !errs.IsMissingTokenError(err) {
			logger.Warn().Err(err).Msg("session token unavailable")
		}
		return
	}
	if !tok.Valid() {
		logger.Debug().Msg("stored token expired, sending request without it")
		return
	}
	tok.SetAuthHeader(req)
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// serverMessage extracts the human-readable message of an error reply.
func serverMessage(payload []byte) string {
	var body errorBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
