//go:build acceptance
// +build acceptance

package acceptance

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/networkteam/coursefront"
	"github.com/networkteam/coursefront/catalog"
)

// coursesJSON is served by the fake catalog API.
const coursesJSON = `[
	{"id":1,"title":"Go Basics","price":19.99,"discountPrice":9.99,"courseState":"READY_TO_ACCEPT","categories":["Programming"]},
	{"id":2,"title":"Kubernetes in Practice","price":49,"courseState":"CREATING","categories":["Cloud"]},
	{"id":3,"title":"Testing in Go","price":0,"courseState":"HIDDEN","categories":["Programming"]}
]`

// TestApp runs a fake catalog API and the frontend talking to it.
type TestApp struct {
	API      *httptest.Server
	Server   *httptest.Server
	ShopURL  string
	Instance *coursefront.Instance
}

func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET /api/v1/courses", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		keyword := r.URL.Query().Get("keyword")
		if keyword == "" {
			w.Write([]byte(coursesJSON))
			return
		}
		// Only the keyword is evaluated, enough to tell filtered from unfiltered pages
		if strings.Contains(strings.ToLower("Kubernetes in Practice"), strings.ToLower(keyword)) {
			w.Write([]byte(`{"count":1,"courses":[{"id":2,"title":"Kubernetes in Practice","price":49}]}`))
			return
		}
		w.Write([]byte(`{"count":0,"courses":[]}`))
	})
	apiMux.HandleFunc("GET /api/v1/courses/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case "1":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"id":1,"title":"Go Basics","description":"Types, functions and packages","totalDuration":5400,
				"lessons":[{"id":10,"title":"Hello, World","lessonNumber":1,"duration":"PT5M"}]}`)
		default:
			http.Error(w, `{"message":"Course not found"}`, http.StatusNotFound)
		}
	})
	api := httptest.NewServer(apiMux)

	instance := coursefront.NewWithOptions(coursefront.Options{
		BaseURL:         catalog.StaticBaseURL(api.URL),
		JournalCapacity: 50,
		Timeout:         5 * time.Second,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	mux := http.NewServeMux()
	mux.Handle("/shop/", http.StripPrefix("/shop", instance.Handler("/shop")))
	server := httptest.NewServer(mux)

	return &TestApp{
		API:      api,
		Server:   server,
		ShopURL:  server.URL + "/shop/",
		Instance: instance,
	}
}

// Close shuts down the test application and releases resources.
func (ta *TestApp) Close() {
	ta.Instance.Close()
	ta.Server.Close()
	ta.API.Close()
}
