package views

import (
	"context"
	"strings"
)

// HandlerOptions are the handler settings views read from the request context.
type HandlerOptions struct {
	// PathPrefix where the handler is mounted, empty for "/"
	PathPrefix string
	// TruncateAfter limits the number of journal entries shown
	TruncateAfter uint64
}

type handlerOptionsKey struct{}

// WithHandlerOptions returns a copy of ctx carrying opts.
func WithHandlerOptions(ctx context.Context, opts HandlerOptions) context.Context {
	return context.WithValue(ctx, handlerOptionsKey{}, opts)
}

// HandlerOptionsFromContext returns the options set by WithHandlerOptions, or zero options.
func HandlerOptionsFromContext(ctx context.Context) HandlerOptions {
	opts, _ := ctx.Value(handlerOptionsKey{}).(HandlerOptions)
	return opts
}

// pathTo prefixes p with the mount path of the handler.
func pathTo(ctx context.Context, p string) string {
	return strings.TrimSuffix(HandlerOptionsFromContext(ctx).PathPrefix, "/") + p
}
