package views_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/coursefront/catalog"
	"github.com/networkteam/coursefront/frontend/views"
)

func decodeCourse(t *testing.T, payload string) catalog.Course {
	t.Helper()

	var course catalog.Course
	require.NoError(t, json.Unmarshal([]byte(payload), &course))
	return course
}

func TestCourseList(t *testing.T) {
	ctx := views.WithHandlerOptions(context.Background(), views.HandlerOptions{PathPrefix: "/shop"})

	got := renderString(t, ctx, views.CourseList(views.CourseListProps{
		Courses: []catalog.Course{
			decodeCourse(t, `{"id":1,"title":"Go <Basics>","price":19.99,"discountPrice":9.99,"courseState":"READY_TO_ACCEPT"}`),
			decodeCourse(t, `{"id":2,"price":0}`),
		},
	}))

	assert.Contains(t, got, `<form class="filter-form" method="get" action="/shop/">`)
	assert.Contains(t, got, `<button type="submit" class="default-button">Filter</button>`)
	assert.Contains(t, got, `<a href="/shop/courses/1">Go &lt;Basics&gt;</a>`)
	assert.Contains(t, got, `<a href="/shop/courses/2">Course 2</a>`)
	assert.Contains(t, got, `<del>19.99</del> 9.99`)
	assert.Contains(t, got, `free`)
	assert.Contains(t, got, `class="badge badge-ready"`)
	assert.Equal(t, 2, strings.Count(got, `class="buy-button"`))
	assert.NotContains(t, got, "matching courses")
}

func TestCourseList_Filtered(t *testing.T) {
	keyword := "go"
	minRating := 4.5

	got := renderString(t, context.Background(), views.CourseList(views.CourseListProps{
		Filtered: true,
		Count:    0,
		Filter:   catalog.FilterParams{Keyword: keyword, MinRating: &minRating},
	}))

	assert.Contains(t, got, `0 matching courses`)
	assert.Contains(t, got, `No courses found.`)
	assert.Contains(t, got, `name="keyword" type="text" placeholder="Keyword" value="go"`)
	assert.Contains(t, got, `name="minRating" type="number" step="any" placeholder="Min rating" value="4.5"`)
}

func TestCourseList_FilterInputPerValue(t *testing.T) {
	got := renderString(t, context.Background(), views.CourseList(views.CourseListProps{
		Filtered: true,
		Filter: catalog.FilterParams{
			Categories:     []string{"Go", "Web"},
			TargetAudience: []string{"Beginners"},
		},
	}))

	assert.Contains(t, got, `<input name="category" type="text" placeholder="Category" value="Go">`)
	assert.Contains(t, got, `<input name="category" type="text" placeholder="Category" value="Web">`)
	assert.Contains(t, got, `<input type="hidden" name="targetAudience" value="Beginners">`)
	// Unset lists still get an empty input
	assert.Contains(t, got, `<input name="language" type="text" placeholder="Language" value="">`)
	assert.NotContains(t, got, "Go,Web")
}

func TestCourseDetail(t *testing.T) {
	course := decodeCourse(t, `{
		"id": 7,
		"title": "Testing in Go",
		"description": "Table tests & friends",
		"totalDuration": 5400,
		"price": 1234.5,
		"enrollmentCount": 12345,
		"courseState": "HIDDEN",
		"lessons": [{"id": 1, "title": "Intro", "lessonNumber": 1, "duration": "PT10M"}],
		"instructor": "Ada"
	}`)

	got := renderString(t, context.Background(), views.CourseDetail(course))

	assert.Contains(t, got, `data-course-id="7"`)
	assert.Contains(t, got, `Table tests &amp; friends`)
	assert.Contains(t, got, `<dd>1h30m0s</dd>`)
	assert.Contains(t, got, `<dd>12,345</dd>`)
	assert.Contains(t, got, `<p class="price">1,234.50</p>`)
	assert.Contains(t, got, `<td>Intro</td><td>10m0s</td>`)
	assert.Contains(t, got, `class="badge badge-hidden"`)
	assert.Contains(t, got, `class="buy-button"`)
	// Highlighted payload keeps unknown fields
	assert.Contains(t, got, `class="chroma"`)
	assert.Contains(t, got, `instructor`)
}

func TestPage(t *testing.T) {
	content := views.ErrorMessage("Catalog unavailable")

	got := renderString(t, context.Background(), views.Page("Courses", content))

	assert.True(t, strings.HasPrefix(got, "<!doctype html>"))
	assert.Contains(t, got, `<title>Courses</title>`)
	assert.Contains(t, got, `<button type="button" class="log-in-button">Log in</button>`)
	assert.Contains(t, got, `<button type="button" class="sign-up-button">Sign up</button>`)
	assert.Contains(t, got, `<a href="/requests">Requests</a>`)
	assert.Contains(t, got, `<p class="error">Catalog unavailable</p>`)
}
