package frontend_test

import (
	"context"
	"errors"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/coursefront/catalog"
	"github.com/networkteam/coursefront/collector"
	"github.com/networkteam/coursefront/frontend"
)

// fakeCatalog serves a fixed set of courses and records the calls it received.
type fakeCatalog struct {
	courses []catalog.Course
	err     error

	calls        []string
	lastFilter   catalog.FilterParams
	lastCourseID int64
}

func (f *fakeCatalog) ListFiltered(ctx context.Context, params catalog.FilterParams) (catalog.CourseFilter, error) {
	f.calls = append(f.calls, "listFiltered")
	f.lastFilter = params
	if f.err != nil {
		return catalog.CourseFilter{}, f.err
	}
	return catalog.CourseFilter{Count: int64(len(f.courses)), Courses: f.courses}, nil
}

func (f *fakeCatalog) ListAll(ctx context.Context) ([]catalog.Course, error) {
	f.calls = append(f.calls, "listAll")
	if f.err != nil {
		return nil, f.err
	}
	return f.courses, nil
}

func (f *fakeCatalog) GetByID(ctx context.Context, id int64) (catalog.Course, error) {
	f.calls = append(f.calls, "getById")
	f.lastCourseID = id
	if f.err != nil {
		return catalog.Course{}, f.err
	}
	for _, c := range f.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return catalog.Course{}, &catalog.StatusError{Method: http.MethodGet, StatusCode: http.StatusNotFound}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, handler http.Handler, target string) (*http.Response, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	resp := rec.Result()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHandler_ListAll(t *testing.T) {
	fake := &fakeCatalog{courses: []catalog.Course{
		{ID: 1, Title: "Go Basics", Price: "19.99"},
		{ID: 2, Title: "Advanced Go", Price: "49"},
	}}
	handler := frontend.NewHandler(fake, nil, frontend.WithLogger(discardLogger()))

	resp, body := serve(t, handler, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"listAll"}, fake.calls)
	assert.Contains(t, body, "Go Basics")
	assert.Contains(t, body, "Advanced Go")
	assert.Equal(t, 2, strings.Count(body, `class="buy-button"`))
	assert.Contains(t, body, `class="log-in-button"`)
	assert.Contains(t, body, `class="sign-up-button"`)
	assert.Contains(t, body, `<button type="submit" class="default-button">Filter</button>`)
}

func TestHandler_ListFiltered(t *testing.T) {
	fake := &fakeCatalog{courses: []catalog.Course{{ID: 3, Title: "Go Concurrency"}}}
	handler := frontend.NewHandler(fake, nil, frontend.WithLogger(discardLogger()))

	resp, body := serve(t, handler, "/?keyword=go&category=Programming&minPrice=10")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"listFiltered"}, fake.calls)
	assert.Equal(t, url.Values{
		"keyword":  {"go"},
		"category": {"Programming"},
		"minPrice": {"10"},
	}, fake.lastFilter.Values())
	assert.Contains(t, body, "1 matching courses")
	assert.Contains(t, body, "Go Concurrency")
}

var (
	inputPattern = regexp.MustCompile(`<input [^>]*>`)
	namePattern  = regexp.MustCompile(`name="([^"]*)"`)
	valuePattern = regexp.MustCompile(`value="([^"]*)"`)
)

// formQuery collects the inputs of a rendered page like a browser submitting the form.
func formQuery(body string) url.Values {
	query := url.Values{}
	for _, input := range inputPattern.FindAllString(body, -1) {
		name := namePattern.FindStringSubmatch(input)
		value := valuePattern.FindStringSubmatch(input)
		if name == nil || value == nil {
			continue
		}
		query.Add(html.UnescapeString(name[1]), html.UnescapeString(value[1]))
	}
	return query
}

func TestHandler_FilterFormKeepsMultipleValues(t *testing.T) {
	fake := &fakeCatalog{courses: []catalog.Course{{ID: 3, Title: "Go on the Web"}}}
	handler := frontend.NewHandler(fake, nil, frontend.WithLogger(discardLogger()))

	resp, body := serve(t, handler, "/?category=Go&category=Web&language=English&language=German&targetAudience=Beginners")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	want := fake.lastFilter
	assert.Equal(t, []string{"Go", "Web"}, want.Categories)
	assert.Equal(t, 2, strings.Count(body, `name="category"`))
	assert.NotContains(t, body, "Go,Web")

	resp, _ = serve(t, handler, "/?"+formQuery(body).Encode())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, []string{"listFiltered", "listFiltered"}, fake.calls)
	assert.Equal(t, want.Categories, fake.lastFilter.Categories)
	assert.Equal(t, []string{"English", "German"}, fake.lastFilter.Languages)
	assert.Equal(t, []string{"Beginners"}, fake.lastFilter.TargetAudience)
	assert.Equal(t, want.Values(), fake.lastFilter.Values())
}

func TestHandler_BlankFilterListsAll(t *testing.T) {
	fake := &fakeCatalog{}
	handler := frontend.NewHandler(fake, nil, frontend.WithLogger(discardLogger()))

	resp, _ := serve(t, handler, "/?keyword=&category=")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"listAll"}, fake.calls)
}

func TestHandler_GetCourse(t *testing.T) {
	fake := &fakeCatalog{courses: []catalog.Course{{ID: 7, Title: "Testing in Go"}}}
	handler := frontend.NewHandler(fake, nil, frontend.WithLogger(discardLogger()))

	resp, body := serve(t, handler, "/courses/7")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(7), fake.lastCourseID)
	assert.Contains(t, body, "<title>Testing in Go</title>")
	assert.Contains(t, body, `class="buy-button"`)
}

func TestHandler_GetCourseErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		catalogErr error
		wantStatus int
		wantCalls  int
	}{
		{name: "invalid id", target: "/courses/abc", wantStatus: http.StatusBadRequest},
		{name: "not found", target: "/courses/99", wantStatus: http.StatusNotFound, wantCalls: 1},
		{
			name:       "server error",
			target:     "/courses/1",
			catalogErr: &catalog.StatusError{Method: http.MethodGet, StatusCode: http.StatusInternalServerError},
			wantStatus: http.StatusBadGateway,
			wantCalls:  1,
		},
		{
			name:       "transport error",
			target:     "/courses/1",
			catalogErr: errors.New("connection refused"),
			wantStatus: http.StatusBadGateway,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCatalog{courses: []catalog.Course{{ID: 1}}, err: tt.catalogErr}
			handler := frontend.NewHandler(fake, nil, frontend.WithLogger(discardLogger()))

			resp, _ := serve(t, handler, tt.target)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Len(t, fake.calls, tt.wantCalls)
		})
	}
}

func TestHandler_ListError(t *testing.T) {
	fake := &fakeCatalog{err: errors.New("connection refused")}
	handler := frontend.NewHandler(fake, nil, frontend.WithLogger(discardLogger()))

	resp, body := serve(t, handler, "/")

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "The course catalog is currently unavailable.")
}

func TestHandler_RequestsWithoutJournal(t *testing.T) {
	handler := frontend.NewHandler(&fakeCatalog{}, nil, frontend.WithLogger(discardLogger()))

	resp, _ := serve(t, handler, "/requests")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_WithCatalogClientAndJournal(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/courses":
			w.Write([]byte(`[{"id":1,"title":"Go Basics","courseState":"READY_TO_ACCEPT"}]`))
		case "/api/v1/courses/1":
			w.Write([]byte(`{"id":1,"title":"Go Basics","lessons":[]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer api.Close()

	journal := collector.NewHTTPClientCollector(10)
	httpClient := &http.Client{Transport: journal.Transport(nil)}
	client := catalog.NewClient(httpClient, catalog.StaticBaseURL(api.URL), catalog.WithLogger(discardLogger()))

	handler := frontend.NewHandler(client, journal,
		frontend.WithPathPrefix("/shop/"),
		frontend.WithLogger(discardLogger()),
	)

	resp, body := serve(t, handler, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<a href="/shop/courses/1">Go Basics</a>`)

	resp, _ = serve(t, handler, "/courses/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = serve(t, handler, "/courses/2")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	requests := journal.GetRequests(10)
	require.Len(t, requests, 3)
	assert.Equal(t, "listAll", requests[0].Tags[catalog.OperationTag])
	assert.Equal(t, "courses", requests[0].Tags[frontend.PageTag])
	assert.Equal(t, "getById", requests[1].Tags[catalog.OperationTag])
	assert.Equal(t, "course", requests[1].Tags[frontend.PageTag])
	assert.Equal(t, http.StatusNotFound, requests[2].StatusCode)

	resp, body = serve(t, handler, "/requests")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, api.URL+"/api/v1/courses/2")
	// Newest first
	assert.Less(t, strings.Index(body, "/api/v1/courses/2"), strings.Index(body, "/api/v1/courses/1"))
}
