package main

import (
	"context"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"

	"github.com/networkteam/coursefront/collector"
)

// collectorTagsMiddleware adds the collector tags of the context (page, catalog operation) to log records.
func collectorTagsMiddleware() slogmulti.Middleware {
	return slogmulti.NewHandleInlineMiddleware(func(ctx context.Context, record slog.Record, next func(context.Context, slog.Record) error) error {
		if tags, ok := collector.TagsFromContext(ctx); ok {
			attrs := make([]any, 0, len(tags))
			for key, value := range tags {
				attrs = append(attrs, slog.String(key, value))
			}
			record.AddAttrs(slog.Group("tags", attrs...))
		}
		return next(ctx, record)
	})
}
