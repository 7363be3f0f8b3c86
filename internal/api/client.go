// Package api implements the HTTP gateway to the book recommendation
// backend. The gateway normalizes transport and payload failures into typed
// errors and never substitutes data on its own: fallback policy belongs to
// the caller.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/estantelabs/estante/internal/model"
)

// DefaultBaseURL matches the backend's development address.
const DefaultBaseURL = "http://localhost:5000"

const defaultTimeout = 15 * time.Second

// Client talks to the backend API. Read paths (books, statistics, health)
// share a circuit breaker so a dead backend stops being hammered; the
// recommendation path bypasses it because a query failure must always reach
// the user verbatim.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a gateway for the backend at baseURL. An empty baseURL
// uses DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "estante-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return c
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type booksResponse struct {
	Success bool         `json:"success"`
	Books   []model.Book `json:"livros"`
	Total   int          `json:"total"`
	Error   string       `json:"error"`
}

// FetchBooks retrieves the full catalog.
func (c *Client) FetchBooks(ctx context.Context) ([]model.Book, error) {
	const op = "fetch books"

	body, err := c.get(ctx, op, "/api/livros")
	if err != nil {
		return nil, err
	}

	var resp booksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ProtocolError{Op: op, Reason: fmt.Sprintf("undecodable body: %v", err)}
	}
	if !resp.Success {
		return nil, &ProtocolError{Op: op, Reason: serverReason(resp.Error)}
	}
	if resp.Books == nil {
		return nil, &ProtocolError{Op: op, Reason: "missing livros field"}
	}

	return resp.Books, nil
}

type statisticsResponse struct {
	Success    bool              `json:"success"`
	Statistics *model.Statistics `json:"estatisticas"`
	Error      string            `json:"error"`
}

// FetchStatistics retrieves the aggregate catalog snapshot.
func (c *Client) FetchStatistics(ctx context.Context) (*model.Statistics, error) {
	const op = "fetch statistics"

	body, err := c.get(ctx, op, "/api/estatisticas")
	if err != nil {
		return nil, err
	}

	var resp statisticsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ProtocolError{Op: op, Reason: fmt.Sprintf("undecodable body: %v", err)}
	}
	if !resp.Success || resp.Statistics == nil {
		return nil, &ProtocolError{Op: op, Reason: serverReason(resp.Error)}
	}

	return resp.Statistics, nil
}

type recommendationsResponse struct {
	Success         bool                   `json:"success"`
	Recommendations []model.Recommendation `json:"recomendacoes"`
	Total           int                    `json:"total"`
	Error           string                 `json:"error"`
}

// FetchRecommendations requests a ranked recommendation list for the query.
func (c *Client) FetchRecommendations(ctx context.Context, query model.RecommendationQuery) ([]model.Recommendation, error) {
	const op = "fetch recommendations"

	payload, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("%s: encode query: %w", op, err)
	}

	body, err := c.post(ctx, op, "/api/recomendacoes/perfil", payload)
	if err != nil {
		return nil, err
	}

	var resp recommendationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ProtocolError{Op: op, Reason: fmt.Sprintf("undecodable body: %v", err)}
	}
	if !resp.Success {
		return nil, &ProtocolError{Op: op, Reason: serverReason(resp.Error)}
	}
	if resp.Recommendations == nil {
		return nil, &ProtocolError{Op: op, Reason: "missing recomendacoes field"}
	}

	return resp.Recommendations, nil
}

// RegisterProfile records a submitted profile server-side.
func (c *Client) RegisterProfile(ctx context.Context, profile model.UserProfile) error {
	const op = "register profile"

	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("%s: encode profile: %w", op, err)
	}

	_, err = c.post(ctx, op, "/api/usuarios", payload)
	return err
}

// CheckHealth probes the service root. Any 2xx means online. The probe never
// blocks other operations; callers run it on its own goroutine or tea.Cmd.
func (c *Client) CheckHealth(ctx context.Context) error {
	const op = "health check"

	_, err := c.get(ctx, op, "/api/")
	return err
}

// get performs a read through the circuit breaker and returns the raw body.
func (c *Client) get(ctx context.Context, op, path string) ([]byte, error) {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.do(ctx, op, http.MethodGet, path, nil)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, &NetworkError{Op: op, Err: err}
		}
		return nil, err
	}
	return body, nil
}

// post performs a write without breaker protection.
func (c *Client) post(ctx context.Context, op, path string, payload []byte) ([]byte, error) {
	return c.do(ctx, op, http.MethodPost, path, payload)
}

func (c *Client) do(ctx context.Context, op, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Op: op, Status: resp.StatusCode, Message: errorMessage(body)}
	}

	return body, nil
}

// errorMessage extracts the backend's error field from a failure body.
func errorMessage(body []byte) string {
	var eb struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return eb.Error
}

func serverReason(msg string) string {
	if msg == "" {
		return "success flag not set"
	}
	return msg
}
