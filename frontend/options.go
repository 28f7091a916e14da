package frontend

import "log/slog"

// handlerOptions holds configuration for a frontend Handler.
// This is unexported; use HandlerOption functions to configure.
type handlerOptions struct {
	// PathPrefix is where the handler is mounted (e.g. "/shop").
	PathPrefix string
	// TruncateAfter limits the number of requests shown in the journal.
	TruncateAfter uint64
	Logger        *slog.Logger
}

// HandlerOption configures a frontend Handler.
type HandlerOption func(*handlerOptions)

// WithPathPrefix sets the path prefix where the handler is mounted.
// This is used for generating correct URLs in the pages.
func WithPathPrefix(prefix string) HandlerOption {
	return func(o *handlerOptions) {
		o.PathPrefix = prefix
	}
}

// WithTruncateAfter limits the number of requests shown in the journal.
// Default is 100 if not specified.
func WithTruncateAfter(limit uint64) HandlerOption {
	return func(o *handlerOptions) {
		o.TruncateAfter = limit
	}
}

// WithLogger sets the logger for failed catalog calls.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		o.Logger = logger
	}
}
