package frontend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/networkteam/coursefront/catalog"
	"github.com/networkteam/coursefront/collector"
	"github.com/networkteam/coursefront/frontend/views"
)

const defaultTruncateAfter = 100

// PageTag is the context tag naming the page a catalog request was made for.
const PageTag = "frontend.page"

// Catalog is the read API of the course catalog, implemented by *catalog.Client.
type Catalog interface {
	ListFiltered(ctx context.Context, params catalog.FilterParams) (catalog.CourseFilter, error)
	ListAll(ctx context.Context) ([]catalog.Course, error)
	GetByID(ctx context.Context, id int64) (catalog.Course, error)
}

// Journal gives access to recorded catalog requests, implemented by *collector.HTTPClientCollector.
type Journal interface {
	GetRequests(n uint64) []collector.HTTPClientRequest
}

type Handler struct {
	catalog Catalog
	journal Journal

	options handlerOptions

	mux http.Handler
}

// NewHandler creates a handler rendering the course pages. A nil journal disables the request page.
func NewHandler(client Catalog, journal Journal, opts ...HandlerOption) *Handler {
	options := handlerOptions{
		TruncateAfter: defaultTruncateAfter,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	options.PathPrefix = strings.TrimSuffix(options.PathPrefix, "/")

	mux := http.NewServeMux()
	handler := &Handler{
		catalog: client,
		journal: journal,

		options: options,

		mux: setHandlerOptions(options, mux),
	}

	mux.HandleFunc("GET /{$}", handler.listCourses)
	mux.HandleFunc("GET /courses/{courseId}", handler.getCourse)
	if journal != nil {
		mux.HandleFunc("GET /requests", handler.listRequests)
	}

	return handler
}

func setHandlerOptions(options handlerOptions, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = views.WithHandlerOptions(ctx, views.HandlerOptions{
			PathPrefix:    options.PathPrefix,
			TruncateAfter: options.TruncateAfter,
		})
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	ctx := collector.WithTags(r.Context(), map[string]string{PageTag: "courses"})

	filter := catalog.ParseFilterParams(r.URL.Query())
	props := views.CourseListProps{
		Filter: filter,
	}

	if filter.IsEmpty() {
		courses, err := h.catalog.ListAll(ctx)
		if err != nil {
			h.renderCatalogError(w, r, "Courses", err)
			return
		}
		props.Courses = courses
	} else {
		result, err := h.catalog.ListFiltered(ctx, filter)
		if err != nil {
			h.renderCatalogError(w, r, "Courses", err)
			return
		}
		props.Courses = result.Courses
		props.Count = result.Count
		props.Filtered = true
	}

	templ.Handler(views.Page("Courses", views.CourseList(props))).ServeHTTP(w, r)
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("courseId")
	courseID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	ctx := collector.WithTags(r.Context(), map[string]string{PageTag: "course"})

	course, err := h.catalog.GetByID(ctx, courseID)
	if err != nil {
		h.renderCatalogError(w, r, "Course", err)
		return
	}

	title := course.Title
	if title == "" {
		title = "Course " + idStr
	}

	templ.Handler(views.Page(title, views.CourseDetail(course))).ServeHTTP(w, r)
}

func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request) {
	requests := h.journal.GetRequests(h.options.TruncateAfter)
	slices.Reverse(requests)

	templ.Handler(views.Page("Requests", views.RequestList(views.RequestListProps{
		Requests:      requests,
		TruncateAfter: h.options.TruncateAfter,
	}))).ServeHTTP(w, r)
}

// renderCatalogError responds with 404 if the catalog did not find the resource and 502 for any other failure.
func (h *Handler) renderCatalogError(w http.ResponseWriter, r *http.Request, title string, err error) {
	status := http.StatusBadGateway
	message := "The course catalog is currently unavailable."

	switch {
	case catalog.IsNotFound(err):
		status = http.StatusNotFound
		message = "Not found."
	case errors.Is(err, context.Canceled):
		// Client went away, nothing to render
		return
	}

	h.options.Logger.ErrorContext(r.Context(), "Catalog request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	)

	templ.Handler(
		views.Page(title, views.ErrorMessage(message)),
		templ.WithStatus(status),
	).ServeHTTP(w, r)
}
