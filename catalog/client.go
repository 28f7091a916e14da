package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/networkteam/coursefront/collector"
)

const coursesPath = "/api/v1/courses"

// OperationTag is the request tag carrying the name of the client operation.
const OperationTag = "catalog.operation"

// Doer sends HTTP requests. *http.Client satisfies this interface.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// BaseURLProvider supplies the base URL of the catalog API, e.g.
// "https://shop.example.com".
type BaseURLProvider interface {
	BaseURL() string
}

// StaticBaseURL is a BaseURLProvider for a fixed URL.
type StaticBaseURL string

func (u StaticBaseURL) BaseURL() string {
	return string(u)
}

type clientOptions struct {
	logger  *slog.Logger
	headers http.Header
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

// WithLogger sets the logger for request logging.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithHeader adds a header that is sent with every request.
func WithHeader(key, value string) ClientOption {
	return func(o *clientOptions) {
		o.headers.Add(key, value)
	}
}

// Client reads courses from the catalog API.
//
// Every call issues exactly one GET request. Errors from the transport and
// from decoding the response are returned as they are; a response with a
// non-2xx status is returned as *StatusError. There is no retry and no caching.
type Client struct {
	doer    Doer
	config  BaseURLProvider
	logger  *slog.Logger
	headers http.Header
}

// NewClient creates a client sending requests with doer to the base URL
// provided by config.
func NewClient(doer Doer, config BaseURLProvider, opts ...ClientOption) *Client {
	options := clientOptions{
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	options.headers.Set("Accept", "application/json")

	return &Client{
		doer:    doer,
		config:  config,
		logger:  options.logger,
		headers: options.headers,
	}
}

// ListFiltered queries courses matching params. Without any parameter the
// request is the same as ListAll, but the response is decoded as CourseFilter.
func (c *Client) ListFiltered(ctx context.Context, params FilterParams) (CourseFilter, error) {
	var result CourseFilter
	err := c.get(ctx, "listFiltered", coursesPath, params.Values().Encode(), &result)
	return result, err
}

// ListAll returns all courses.
func (c *Client) ListAll(ctx context.Context) ([]Course, error) {
	var result []Course
	err := c.get(ctx, "listAll", coursesPath, "", &result)
	return result, err
}

// GetByID returns the course with the given id.
func (c *Client) GetByID(ctx context.Context, id int64) (Course, error) {
	var result Course
	err := c.get(ctx, "getById", coursesPath+"/"+strconv.FormatInt(id, 10), "", &result)
	return result, err
}

func (c *Client) get(ctx context.Context, operation, path, rawQuery string, out any) error {
	u := c.endpoint(path)
	if rawQuery != "" {
		u += "?" + rawQuery
	}

	ctx = collector.WithTags(ctx, map[string]string{OperationTag: operation})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	for key, values := range c.headers {
		req.Header[key] = append([]string(nil), values...)
	}

	logger := c.logger.With(slog.String("operation", operation), slog.String("url", u))

	start := time.Now()
	resp, err := c.doer.Do(req)
	if err != nil {
		logger.DebugContext(ctx, "Catalog request failed", slog.Any("err", err))
		return err
	}
	defer resp.Body.Close()

	logger.DebugContext(ctx, "Catalog request done",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodySize))
		return &StatusError{
			Method:     req.Method,
			URL:        u,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err
	}
	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s%s", strings.TrimRight(c.config.BaseURL(), "/"), path)
}
