// Package telegraph is a client for the Telegraph publishing API
// (https://telegra.ph). It manages the access-token lifecycle — creating an
// account on first use when no token is supplied — and exposes the page and
// account operations, with Markdown convenience variants built on
// pkg/convert.
package telegraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alterxyz/gotelegraph/internal/logging"
	"github.com/alterxyz/gotelegraph/pkg/convert"
)

// DefaultBaseURL is the public Telegraph API endpoint.
const DefaultBaseURL = "https://api.telegra.ph"

// Defaults used when creating a new account lazily.
const (
	DefaultShortName  = "Your Name"
	DefaultAuthorName = "Anonymous"
)

// Default retry behavior for GetPage.
const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = time.Second
)

// Client talks to the Telegraph API. All configuration is carried by the
// Client itself — there is no process-wide account state. A Client is safe
// for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
	converter  *convert.Converter

	store      *TokenStore
	shortName  string
	authorName string
	authorURL  string

	retryAttempts int
	retryDelay    time.Duration

	mu    sync.Mutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint. Trailing
// slashes are trimmed.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger replaces the client's logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithToken supplies an access token directly, bypassing the token store.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTokenStore replaces the default token store.
func WithTokenStore(store *TokenStore) Option {
	return func(c *Client) { c.store = store }
}

// WithShortName sets the short name used when an account is created lazily.
func WithShortName(name string) Option {
	return func(c *Client) { c.shortName = name }
}

// WithAuthorName sets the default author name for new pages and accounts.
func WithAuthorName(name string) Option {
	return func(c *Client) { c.authorName = name }
}

// WithAuthorURL sets the default author URL for new pages and accounts.
func WithAuthorURL(u string) Option {
	return func(c *Client) { c.authorURL = u }
}

// WithRetry sets the attempt count and delay for GetPage retries.
// Attempts below 1 are treated as 1.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		if attempts < 1 {
			attempts = 1
		}
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:       DefaultBaseURL,
		httpClient:    http.DefaultClient,
		logger:        logging.Default(),
		converter:     convert.New(),
		shortName:     DefaultShortName,
		authorName:    DefaultAuthorName,
		retryAttempts: defaultRetryAttempts,
		retryDelay:    defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = NewTokenStore("")
	}
	return c
}

// AccessToken returns the token the client authenticates with, resolving it
// on first use: an explicitly supplied token, then the token store, then a
// freshly created account whose token is persisted to the store.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	stored, err := c.store.Load()
	if err != nil {
		return "", err
	}
	if stored != "" {
		c.token = stored
		return c.token, nil
	}

	// No token anywhere: create an account and persist its token.
	account, err := c.createAccount(ctx, c.shortName, c.authorName, c.authorURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoToken, err)
	}

	c.logger.Info("created telegraph account",
		logging.FieldShortName, account.ShortName,
		logging.FieldTokenPath, c.store.Path(),
	)

	if err := c.store.Save(ctx, account.AccessToken); err != nil {
		return "", err
	}

	c.token = account.AccessToken
	return c.token, nil
}

// apiResponse is the envelope every Telegraph API call returns.
type apiResponse struct {
	OK     bool            `json:"ok"`
	Error  string          `json:"error"`
	Result json.RawMessage `json:"result"`
}

// invoke performs one API call. GET sends params as the query string; other
// methods send a form-encoded body, matching what the API documents. The
// decoded result field is unmarshaled into out when out is non-nil.
func (c *Client) invoke(ctx context.Context, method, endpoint string, params url.Values, out any) error {
	reqURL := c.baseURL + "/" + endpoint

	var body io.Reader
	if method == http.MethodGet {
		if len(params) > 0 {
			reqURL += "?" + params.Encode()
		}
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	c.logger.Debug("telegraph api call",
		logging.FieldEndpoint, endpoint,
		logging.FieldMethod, method,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", endpoint, err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("%s: decode response (status %d): %w", endpoint, resp.StatusCode, err)
	}

	if !envelope.OK {
		msg := envelope.Error
		if msg == "" {
			msg = fmt.Sprintf("unknown error (status %d)", resp.StatusCode)
		}
		return &APIError{Endpoint: endpoint, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("%s: decode result: %w", endpoint, err)
		}
	}

	return nil
}

// authorizedParams builds the base parameter set for authenticated calls.
func (c *Client) authorizedParams(ctx context.Context) (url.Values, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("access_token", token)
	return params, nil
}

// sleep waits for the retry delay or until the context is done.
func (c *Client) sleep(ctx context.Context) error {
	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
