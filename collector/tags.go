package collector

import (
	"context"
	"maps"
)

type tagsKeyType struct{}

var tagsKey = tagsKeyType{}

// WithTags returns a new context carrying the given tags in addition to tags
// already present. Requests sent with this context are recorded with them.
func WithTags(ctx context.Context, tags map[string]string) context.Context {
	merged := make(map[string]string, len(tags))
	if existing, ok := TagsFromContext(ctx); ok {
		maps.Copy(merged, existing)
	}
	maps.Copy(merged, tags)
	return context.WithValue(ctx, tagsKey, merged)
}

// TagsFromContext retrieves the tags from the context.
// Returns the tags and true if found, or nil and false if not set.
func TagsFromContext(ctx context.Context) (map[string]string, bool) {
	if tags, ok := ctx.Value(tagsKey).(map[string]string); ok {
		return tags, true
	}
	return nil, false
}
