package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/coursefront/catalog"
	"github.com/networkteam/coursefront/collector"
)

// recordingServer is a fake catalog API remembering the requests it served.
type recordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

func newRecordingServer(t *testing.T, handler http.HandlerFunc) *recordingServer {
	t.Helper()

	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.mu.Lock()
		rs.requests = append(rs.requests, r.Clone(context.Background()))
		rs.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(rs.Close)

	return rs
}

func (rs *recordingServer) Requests() []*http.Request {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return append([]*http.Request(nil), rs.requests...)
}

func jsonResponse(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func TestClient_ListAll(t *testing.T) {
	server := newRecordingServer(t, jsonResponse(`[
		{"id":1,"title":"Go Basics","price":19.99,"courseState":"READY_TO_ACCEPT"},
		{"id":2,"title":"Advanced Go","price":49,"categories":["Programming"]}
	]`))

	client := catalog.NewClient(server.Client(), catalog.StaticBaseURL(server.URL))

	courses, err := client.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, int64(1), courses[0].ID)
	assert.Equal(t, "Go Basics", courses[0].Title)
	assert.Equal(t, "19.99", courses[0].Price.String())
	assert.Equal(t, catalog.CourseStateReadyToAccept, courses[0].CourseState)
	assert.Equal(t, []string{"Programming"}, courses[1].Categories)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodGet, requests[0].Method)
	assert.Equal(t, "/api/v1/courses", requests[0].URL.Path)
	assert.Empty(t, requests[0].URL.RawQuery)
	assert.Equal(t, "application/json", requests[0].Header.Get("Accept"))
}

func TestClient_ListFiltered(t *testing.T) {
	server := newRecordingServer(t, jsonResponse(`{"count":42,"courses":[{"id":3,"title":"Go Concurrency"}]}`))

	client := catalog.NewClient(server.Client(), catalog.StaticBaseURL(server.URL))

	minPrice := 10.5
	page, limit := 0, 10
	result, err := client.ListFiltered(context.Background(), catalog.FilterParams{
		Keyword:    "go",
		Categories: []string{"Programming", "Backend"},
		MinPrice:   &minPrice,
		Page:       &page,
		Limit:      &limit,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.Count)
	require.Len(t, result.Courses, 1)
	assert.Equal(t, "Go Concurrency", result.Courses[0].Title)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "/api/v1/courses", requests[0].URL.Path)
	assert.Equal(t, url.Values{
		"keyword":  {"go"},
		"category": {"Programming", "Backend"},
		"minPrice": {"10.5"},
		"page":     {"0"},
		"limit":    {"10"},
	}, requests[0].URL.Query())
}

func TestClient_ListFilteredWithoutParamsMatchesListAll(t *testing.T) {
	server := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":0,"courses":[]}`))
	})

	client := catalog.NewClient(server.Client(), catalog.StaticBaseURL(server.URL))

	_, err := client.ListFiltered(context.Background(), catalog.FilterParams{})
	require.NoError(t, err)

	// Decoding the filter payload as a list fails, the request is what matters here
	_, _ = client.ListAll(context.Background())

	requests := server.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, requests[1].URL.String(), requests[0].URL.String())
	assert.Equal(t, "/api/v1/courses", requests[0].URL.String())
}

func TestClient_GetByID(t *testing.T) {
	server := newRecordingServer(t, jsonResponse(`{"id":7,"title":"Testing in Go","totalDuration":"PT2H","lessons":[{"id":1,"title":"Intro","lessonNumber":1,"duration":600.0}]}`))

	client := catalog.NewClient(server.Client(), catalog.StaticBaseURL(server.URL+"/"))

	course, err := client.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), course.ID)
	assert.Equal(t, catalog.Duration("PT2H"), course.TotalDuration)
	require.Len(t, course.Lessons, 1)
	assert.Equal(t, catalog.Duration("600.0"), course.Lessons[0].Duration)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "/api/v1/courses/7", requests[0].URL.Path)
}

func TestClient_StatusError(t *testing.T) {
	server := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Course not found with id [99]"}`, http.StatusNotFound)
	})

	client := catalog.NewClient(server.Client(), catalog.StaticBaseURL(server.URL))

	_, err := client.GetByID(context.Background(), 99)
	require.Error(t, err)

	var statusErr *catalog.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, http.MethodGet, statusErr.Method)
	assert.Equal(t, server.URL+"/api/v1/courses/99", statusErr.URL)
	assert.Contains(t, string(statusErr.Body), "Course not found")
	assert.True(t, catalog.IsNotFound(err))
}

func TestClient_StatusErrorBodyIsLimited(t *testing.T) {
	server := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(strings.Repeat("x", catalog.MaxErrorBodySize*2)))
	})

	client := catalog.NewClient(server.Client(), catalog.StaticBaseURL(server.URL))

	_, err := client.ListAll(context.Background())

	var statusErr *catalog.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Len(t, statusErr.Body, catalog.MaxErrorBodySize)
	assert.Less(t, len(err.Error()), 400)
}

func TestClient_ServerErrorIsNotRetried(t *testing.T) {
	server := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	client := catalog.NewClient(server.Client(), catalog.StaticBaseURL(server.URL))

	_, err := client.ListAll(context.Background())

	var statusErr *catalog.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.False(t, catalog.IsNotFound(err))
	assert.Len(t, server.Requests(), 1)
}

func TestClient_MalformedPayload(t *testing.T) {
	server := newRecordingServer(t, jsonResponse(`<html>oops</html>`))

	client := catalog.NewClient(server.Client(), catalog.StaticBaseURL(server.URL))

	_, err := client.GetByID(context.Background(), 1)
	require.Error(t, err)

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestClient_TransportErrorIsReturnedUnchanged(t *testing.T) {
	transportErr := errors.New("dial tcp: connection refused")

	var calls int
	client := catalog.NewClient(doerFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return nil, transportErr
	}), catalog.StaticBaseURL("http://catalog.invalid"))

	_, err := client.ListAll(context.Background())
	assert.Same(t, transportErr, err)
	assert.Equal(t, 1, calls)
}

func TestClient_HeadersAndTags(t *testing.T) {
	var captured *http.Request
	client := catalog.NewClient(doerFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": {"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"id":5}`)),
		}, nil
	}), catalog.StaticBaseURL("https://shop.example.com"), catalog.WithHeader("X-Client", "coursefront"))

	_, err := client.GetByID(context.Background(), 5)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "https://shop.example.com/api/v1/courses/5", captured.URL.String())
	assert.Equal(t, "coursefront", captured.Header.Get("X-Client"))

	tags, ok := collector.TagsFromContext(captured.Context())
	require.True(t, ok)
	assert.Equal(t, "getById", tags[catalog.OperationTag])
}

func TestClient_ContextCancellation(t *testing.T) {
	server := newRecordingServer(t, jsonResponse(`[]`))

	client := catalog.NewClient(server.Client(), catalog.StaticBaseURL(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_ConcurrentCalls(t *testing.T) {
	server := newRecordingServer(t, jsonResponse(`{"id":1}`))

	client := catalog.NewClient(server.Client(), catalog.StaticBaseURL(server.URL))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := client.GetByID(context.Background(), id)
			assert.NoError(t, err)
		}(int64(i))
	}
	wg.Wait()

	assert.Len(t, server.Requests(), 8)
}
