package views

import (
	"github.com/networkteam/coursefront/collector"
)

// RequestListProps holds the recorded requests, newest first.
type RequestListProps struct {
	// Requests are ordered newest first
	Requests      []collector.HTTPClientRequest
	TruncateAfter uint64
}

func (p RequestListProps) isTruncated() bool {
	return p.TruncateAfter > 0 && uint64(len(p.Requests)) >= p.TruncateAfter
}

func hasResponseBody(req collector.HTTPClientRequest) bool {
	return req.ResponseBody != nil && req.ResponseBody.Size() > 0
}

func requestDuration(req collector.HTTPClientRequest) string {
	if req.ResponseTime.IsZero() {
		return ""
	}
	return req.Duration().String()
}
