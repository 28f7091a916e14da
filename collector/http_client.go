package collector

import (
	"maps"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid"
)

// HTTPClientOptions configures the HTTP client collector
type HTTPClientOptions struct {
	// MaxBodySize is the maximum size in bytes of a single captured body
	// Default: 1MB
	MaxBodySize uint64

	// CaptureRequestBody indicates whether to capture request bodies
	CaptureRequestBody bool

	// CaptureResponseBody indicates whether to capture response bodies
	CaptureResponseBody bool
}

// DefaultHTTPClientOptions returns default options for the HTTP client collector
func DefaultHTTPClientOptions() HTTPClientOptions {
	return HTTPClientOptions{
		MaxBodySize:         defaultMaxBodySize,
		CaptureRequestBody:  true,
		CaptureResponseBody: true,
	}
}

// HTTPClientRequest is a captured outgoing request and its response
type HTTPClientRequest struct {
	ID              uuid.UUID
	Method          string
	URL             string
	RequestTime     time.Time
	ResponseTime    time.Time
	StatusCode      int
	RequestHeaders  http.Header
	ResponseHeaders http.Header
	RequestBody     *Body
	ResponseBody    *Body
	// Tags are taken from the request context, see WithTags
	Tags  map[string]string
	Error error
}

func (r HTTPClientRequest) Identity() uuid.UUID {
	return r.ID
}

// Duration returns the duration of the request
func (r HTTPClientRequest) Duration() time.Duration {
	return r.ResponseTime.Sub(r.RequestTime)
}

// HTTPClientCollector records outgoing HTTP requests in a bounded buffer.
// It only observes: requests and responses are passed on unchanged.
type HTTPClientCollector struct {
	buffer  *LookupRingBuffer[HTTPClientRequest, uuid.UUID]
	options HTTPClientOptions
	closed  atomic.Bool
}

// NewHTTPClientCollector creates a new collector for outgoing HTTP requests
func NewHTTPClientCollector(capacity uint64) *HTTPClientCollector {
	return NewHTTPClientCollectorWithOptions(capacity, DefaultHTTPClientOptions())
}

// NewHTTPClientCollectorWithOptions creates a new collector with specified options
func NewHTTPClientCollectorWithOptions(capacity uint64, options HTTPClientOptions) *HTTPClientCollector {
	if options.MaxBodySize == 0 {
		options.MaxBodySize = defaultMaxBodySize
	}
	return &HTTPClientCollector{
		buffer:  NewLookupRingBuffer[HTTPClientRequest, uuid.UUID](capacity),
		options: options,
	}
}

// Transport returns an http.RoundTripper that records requests sent through next.
// A nil next uses http.DefaultTransport.
func (c *HTTPClientCollector) Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return &httpClientTransport{
		next:      next,
		collector: c,
	}
}

// GetRequests returns the most recent n requests, newest last
func (c *HTTPClientCollector) GetRequests(n uint64) []HTTPClientRequest {
	return c.buffer.GetRecords(n)
}

// GetRequest returns a recorded request by id
func (c *HTTPClientCollector) GetRequest(id uuid.UUID) (HTTPClientRequest, bool) {
	return c.buffer.Lookup(id)
}

// Size returns the number of recorded requests
func (c *HTTPClientCollector) Size() uint64 {
	return c.buffer.Size()
}

// Capacity returns the maximum number of recorded requests
func (c *HTTPClientCollector) Capacity() uint64 {
	return c.buffer.Capacity()
}

// Add adds a request record to the collector
func (c *HTTPClientCollector) Add(req HTTPClientRequest) {
	if c.closed.Load() {
		return
	}
	c.buffer.Add(req)
}

// Reset drops all recorded requests
func (c *HTTPClientCollector) Reset() {
	c.buffer.Reset()
}

// Close stops recording and releases recorded requests.
// Transports of a closed collector keep passing requests through.
func (c *HTTPClientCollector) Close() {
	c.closed.Store(true)
	c.buffer.Reset()
}

type httpClientTransport struct {
	next      http.RoundTripper
	collector *HTTPClientCollector
}

func (t *httpClientTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.collector.closed.Load() {
		return t.next.RoundTrip(req)
	}

	record := HTTPClientRequest{
		ID:             uuid.Must(uuid.NewV7()),
		Method:         req.Method,
		URL:            req.URL.String(),
		RequestTime:    time.Now(),
		RequestHeaders: req.Header.Clone(),
	}
	if tags, ok := TagsFromContext(req.Context()); ok {
		record.Tags = maps.Clone(tags)
	}

	if req.Body != nil && req.Body != http.NoBody && t.collector.options.CaptureRequestBody {
		// RoundTrippers must not modify the request, so the body is swapped on a clone
		body := NewBody(req.Body, t.collector.options.MaxBodySize)
		record.RequestBody = body
		req = req.Clone(req.Context())
		req.Body = body
	}

	resp, err := t.next.RoundTrip(req)

	record.ResponseTime = time.Now()
	record.Error = err

	if resp != nil {
		record.StatusCode = resp.StatusCode
		record.ResponseHeaders = resp.Header.Clone()

		if resp.Body != nil && resp.Body != http.NoBody && t.collector.options.CaptureResponseBody {
			body := NewBody(resp.Body, t.collector.options.MaxBodySize)
			record.ResponseBody = body
			resp.Body = body
		}
	}

	t.collector.Add(record)

	return resp, err
}
