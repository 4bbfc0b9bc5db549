package gymapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Backend is the REST surface the tracker depends on.
// It is implemented by *Client and can be replaced in tests.
type Backend interface {
	ListMembers(ctx context.Context) ([]Member, error)
	ListWorkouts(ctx context.Context, memberID ID) ([]Workout, error)
	CreateWorkout(ctx context.Context, draft WorkoutDraft) (Workout, error)
	UpdateWorkout(ctx context.Context, id ID, draft WorkoutDraft) (Workout, error)
	DeleteWorkout(ctx context.Context, id ID) error
}

// Ensure Client implements Backend at compile time.
var _ Backend = (*Client)(nil)

// Endpoints names the resource paths below the base URL. The list path is
// singular and the mutation path plural on the reference backend.
type Endpoints struct {
	Members      string
	ListWorkouts string
	Workouts     string
}

// DefaultEndpoints returns the paths the reference backend serves.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Members:      "/members",
		ListWorkouts: "/workout",
		Workouts:     "/workouts",
	}
}

// Client talks to the workout REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	endpoints Endpoints
	userAgent string
	log       *zap.SugaredLogger
}

const (
	defaultBaseURL   = "http://127.0.0.1:8080/api"
	defaultUserAgent = "gymtrack/0.1"
	requestTimeout   = 5 * time.Second

	requestIDHeader = "X-Request-ID"
)

// Option customises a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithEndpoints overrides the resource paths. Empty fields keep defaults.
func WithEndpoints(e Endpoints) Option {
	return func(c *Client) {
		if p := strings.TrimSpace(e.Members); p != "" {
			c.endpoints.Members = p
		}
		if p := strings.TrimSpace(e.ListWorkouts); p != "" {
			c.endpoints.ListWorkouts = p
		}
		if p := strings.TrimSpace(e.Workouts); p != "" {
			c.endpoints.Workouts = p
		}
	}
}

// WithLogger routes request diagnostics to log.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient builds a Client rooted at baseURL (for example
// "http://localhost:8080/api"). A bare host:port gets an http scheme.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		endpoints: DefaultEndpoints(),
		userAgent: defaultUserAgent,
		log:       zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised API root.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL.String()
}

// ListMembers retrieves all members in server order.
func (c *Client) ListMembers(ctx context.Context) ([]Member, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var members []Member
	if err := c.do(ctx, http.MethodGet, c.endpoints.Members, nil, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// ListWorkouts retrieves the workouts recorded for memberID.
func (c *Client) ListWorkouts(ctx context.Context, memberID ID) ([]Workout, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if memberID.IsZero() {
		return nil, fmt.Errorf("member id required")
	}
	query := url.Values{}
	query.Set("memberId", memberID.String())
	var workouts []Workout
	if err := c.do(ctx, http.MethodGet, c.endpoints.ListWorkouts, query, nil, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// CreateWorkout posts a new workout and returns what the server stored.
func (c *Client) CreateWorkout(ctx context.Context, draft WorkoutDraft) (Workout, error) {
	if c == nil {
		return Workout{}, fmt.Errorf("client is nil")
	}
	var created Workout
	if err := c.do(ctx, http.MethodPost, c.endpoints.Workouts, nil, draft, &created); err != nil {
		return Workout{}, err
	}
	return created, nil
}

// UpdateWorkout replaces the workout identified by id.
func (c *Client) UpdateWorkout(ctx context.Context, id ID, draft WorkoutDraft) (Workout, error) {
	if c == nil {
		return Workout{}, fmt.Errorf("client is nil")
	}
	if id.IsZero() {
		return Workout{}, fmt.Errorf("workout id required")
	}
	var updated Workout
	if err := c.do(ctx, http.MethodPut, c.workoutPath(id), nil, draft, &updated); err != nil {
		return Workout{}, err
	}
	return updated, nil
}

// DeleteWorkout removes the workout identified by id.
func (c *Client) DeleteWorkout(ctx context.Context, id ID) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if id.IsZero() {
		return fmt.Errorf("workout id required")
	}
	return c.do(ctx, http.MethodDelete, c.workoutPath(id), nil, nil, nil)
}

func (c *Client) workoutPath(id ID) string {
	return strings.TrimSuffix(c.endpoints.Workouts, "/") + "/" + url.PathEscape(id.String())
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	reqURL := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		reqURL.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.With("request_id", requestID, "method", method, "path", reqURL.Path)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warnw("request failed", "error", err)
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debugw("request done", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			Method: method,
			Path:   reqURL.Path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty body on a successful write.
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
