// Package api is the client side of the catalog REST API. Every server
// operation has one method returning typed data, a validation list, or an
// error whose kind is one of the sentinels in errors.go.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"catalog/config"
	"catalog/internal/errors"

	"github.com/google/uuid"
)

// Client talks to the catalog REST API. It holds no session state:
// authenticated calls take their credentials as a parameter.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// New builds a client for the API rooted at baseURL, e.g. http://localhost:5000/api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewFromConfig builds a client from the terminal client's configuration.
func NewFromConfig(cfg *config.ClientConfig, logger *slog.Logger) *Client {
	return New(cfg.API.BaseURL, WithLogger(logger), WithTimeout(cfg.API.Timeout))
}

// Courses fetches every course with its owner.
func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	status, body, _, err := c.do(ctx, "courses", http.MethodGet, "/courses", nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusError(status, decodeMessage(body))
	}

	var out struct {
		Courses []Course `json:"courses"`
	}
	if err := decode("courses", body, &out); err != nil {
		return nil, err
	}

	return out.Courses, nil
}

// Course fetches one course. A missing course is ErrNotFound.
func (c *Client) Course(ctx context.Context, id uuid.UUID) (*Course, error) {
	status, body, _, err := c.do(ctx, "course", http.MethodGet, "/courses/"+id.String(), nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusError(status, decodeMessage(body))
	}

	var out struct {
		Course *Course `json:"course"`
	}
	if err := decode("course", body, &out); err != nil {
		return nil, err
	}
	if out.Course == nil {
		return nil, &TransportError{Op: "course", Err: errors.New("response has no course")}
	}

	return out.Course, nil
}

// CreateCourse creates a course owned by the credential holder. On success
// it returns the new id taken from the Location header. A non-empty slice
// means the server rejected the input.
func (c *Client) CreateCourse(ctx context.Context, input CourseInput, creds Credentials) (uuid.UUID, []string, error) {
	status, body, header, err := c.do(ctx, "create course", http.MethodPost, "/courses", input, &creds)
	if err != nil {
		return uuid.Nil, nil, err
	}

	switch status {
	case http.StatusCreated:
		id, err := uuid.Parse(path.Base(header.Get("Location")))
		if err != nil {
			return uuid.Nil, nil, &TransportError{Op: "create course", Err: errors.Wrap(err, "location header")}
		}

		return id, nil, nil
	case http.StatusBadRequest:
		errs, err := decodeValidation("create course", body)

		return uuid.Nil, errs, err
	default:
		return uuid.Nil, nil, statusError(status, decodeMessage(body))
	}
}

// UpdateCourse replaces the editable fields of a course.
func (c *Client) UpdateCourse(ctx context.Context, id uuid.UUID, input CourseInput, creds Credentials) ([]string, error) {
	status, body, _, err := c.do(ctx, "update course", http.MethodPut, "/courses/"+id.String(), input, &creds)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusNoContent:
		return nil, nil
	case http.StatusBadRequest:
		return decodeValidation("update course", body)
	default:
		return nil, statusError(status, decodeMessage(body))
	}
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id uuid.UUID, creds Credentials) error {
	status, body, _, err := c.do(ctx, "delete course", http.MethodDelete, "/courses/"+id.String(), nil, &creds)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return statusError(status, decodeMessage(body))
	}

	return nil
}

// Authenticate checks the credentials against GET /users. Rejected
// credentials yield (nil, nil).
func (c *Client) Authenticate(ctx context.Context, creds Credentials) (*User, error) {
	status, body, _, err := c.do(ctx, "authenticate", http.MethodGet, "/users", nil, &creds)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK:
		var out struct {
			User *User `json:"user"`
		}
		if err := decode("authenticate", body, &out); err != nil {
			return nil, err
		}
		if out.User == nil {
			return nil, &TransportError{Op: "authenticate", Err: errors.New("response has no user")}
		}

		return out.User, nil
	case http.StatusUnauthorized:
		return nil, nil
	default:
		return nil, statusError(status, decodeMessage(body))
	}
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, user NewUser) ([]string, error) {
	status, body, _, err := c.do(ctx, "register", http.MethodPost, "/users", user, nil)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusCreated:
		return nil, nil
	case http.StatusBadRequest:
		return decodeValidation("register", body)
	default:
		return nil, statusError(status, decodeMessage(body))
	}
}

func (c *Client) do(ctx context.Context, op, method, route string, payload any, creds *Credentials) (int, []byte, http.Header, error) {
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, nil, errors.Wrapf(err, "%s: encode body", op)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+route, reader)
	if err != nil {
		return 0, nil, nil, errors.Wrapf(err, "%s: build request", op)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	if creds != nil {
		req.SetBasicAuth(creds.EmailAddress, creds.Password)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "API request failed",
			slog.String("method", method),
			slog.String("path", route),
			slog.Any("error", err),
		)

		return 0, nil, nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, &TransportError{Op: op, Err: errors.Wrap(err, "read body")}
	}

	c.logger.DebugContext(ctx, "API request",
		slog.String("method", method),
		slog.String("path", route),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	return resp.StatusCode, body, resp.Header, nil
}

func decode(op string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &TransportError{Op: op, Err: errors.Wrap(err, "decode body")}
	}

	return nil
}

// decodeValidation reads the error list of a 400. An empty list still
// signals rejection, so the server message stands in for it.
func decodeValidation(op string, body []byte) ([]string, error) {
	var out errorBody
	if err := decode(op, body, &out); err != nil {
		return nil, err
	}
	if len(out.Errors) == 0 {
		message := out.Message
		if message == "" {
			message = http.StatusText(http.StatusBadRequest)
		}

		return []string{message}, nil
	}

	return out.Errors, nil
}

func decodeMessage(body []byte) string {
	var out errorBody
	if err := json.Unmarshal(body, &out); err != nil {
		return ""
	}

	return out.Message
}
