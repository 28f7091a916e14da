package coursefront

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/networkteam/coursefront/catalog"
	"github.com/networkteam/coursefront/collector"
	"github.com/networkteam/coursefront/frontend"
	"github.com/networkteam/coursefront/metrics"
)

// DefaultBaseURL is the catalog API location used when Options.BaseURL is nil.
const DefaultBaseURL = "http://localhost:8080"

type Instance struct {
	journal    *collector.HTTPClientCollector
	httpClient *http.Client
	catalog    *catalog.Client
	logger     *slog.Logger
}

// Close stops recording requests. The catalog client stays usable.
func (i *Instance) Close() {
	i.journal.Close()
	i.httpClient.CloseIdleConnections()
}

type Options struct {
	// BaseURL provides the catalog API base URL, e.g. a config.Config.
	// Default: nil, will use DefaultBaseURL
	BaseURL catalog.BaseURLProvider

	// JournalCapacity is the maximum number of catalog requests to keep.
	// Default: 0, will use 100
	JournalCapacity uint64
	// HTTPClientOptions are the options for the request journal.
	// Default: nil, will use collector.DefaultHTTPClientOptions()
	HTTPClientOptions *collector.HTTPClientOptions

	// Transport sends the catalog requests, the journal is installed around it.
	// Default: nil, will use http.DefaultTransport
	Transport http.RoundTripper
	// Metrics counts and times catalog requests.
	// Default: nil, no metrics
	Metrics *metrics.CatalogMetrics
	// Timeout of a single catalog request.
	// Default: 0, no timeout
	Timeout time.Duration

	// Logger is used by the catalog client and the handler.
	// Default: nil, will use slog.Default()
	Logger *slog.Logger
}

// New creates a new instance with default options.
func New() *Instance {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a new instance with the specified options.
// Default options are the zero value of Options.
func NewWithOptions(options Options) *Instance {
	baseURL := options.BaseURL
	if baseURL == nil {
		baseURL = catalog.StaticBaseURL(DefaultBaseURL)
	}

	capacity := options.JournalCapacity
	if capacity == 0 {
		capacity = 100
	}

	httpClientOptions := collector.DefaultHTTPClientOptions()
	if options.HTTPClientOptions != nil {
		httpClientOptions = *options.HTTPClientOptions
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	transport := options.Transport
	if options.Metrics != nil {
		transport = options.Metrics.Transport(transport)
	}

	journal := collector.NewHTTPClientCollectorWithOptions(capacity, httpClientOptions)
	httpClient := &http.Client{
		Transport: journal.Transport(transport),
		Timeout:   options.Timeout,
	}

	return &Instance{
		journal:    journal,
		httpClient: httpClient,
		catalog:    catalog.NewClient(httpClient, baseURL, catalog.WithLogger(logger)),
		logger:     logger,
	}
}

// Catalog returns the catalog client. Its requests are recorded in the journal.
func (i *Instance) Catalog() *catalog.Client {
	return i.catalog
}

// Journal returns the collector recording catalog requests.
func (i *Instance) Journal() *collector.HTTPClientCollector {
	return i.journal
}

// Handler returns the HTML frontend, mounted at pathPrefix (e.g. "/shop", empty for "/").
func (i *Instance) Handler(pathPrefix string, opts ...frontend.HandlerOption) http.Handler {
	opts = append([]frontend.HandlerOption{
		frontend.WithPathPrefix(pathPrefix),
		frontend.WithTruncateAfter(i.journal.Capacity()),
		frontend.WithLogger(i.logger),
	}, opts...)
	return frontend.NewHandler(i.catalog, i.journal, opts...)
}
