package views

import (
	"context"
	"strconv"
	"strings"

	"github.com/networkteam/coursefront/catalog"
)

// CourseListProps is the data of the course list page.
type CourseListProps struct {
	Courses []catalog.Course
	// Count is the total number of matches of a filtered query
	Count    int64
	Filtered bool
	Filter   catalog.FilterParams
}

// valuesOrBlank yields a single empty value for an unset list, so the form
// still renders one input for it.
func valuesOrBlank(values []string) []string {
	if len(values) == 0 {
		return []string{""}
	}
	return values
}

func formatOptionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func coursePath(ctx context.Context, id int64) string {
	return pathTo(ctx, "/courses/"+strconv.FormatInt(id, 10))
}

func courseTitle(course catalog.Course) string {
	if course.Title != "" {
		return course.Title
	}
	return "Course " + strconv.FormatInt(course.ID, 10)
}

func joinList(values []string) string {
	return strings.Join(values, ", ")
}

type priceLabel struct {
	Price string
	// Discount is only set if it differs from Price and is not free
	Discount string
}

func newPriceLabel(course catalog.Course) priceLabel {
	label := priceLabel{Price: formatPrice(course.Price)}
	if discount := formatPrice(course.DiscountPrice); discount != "" && discount != "free" && discount != label.Price {
		label.Discount = discount
	}
	return label
}

type definition struct {
	Term  string
	Value string
}

// courseDefinitions lists the course facts that have a value.
func courseDefinitions(course catalog.Course) []definition {
	defs := []definition{
		{Term: "Language", Value: course.Language},
		{Term: "Duration", Value: formatCourseDuration(course.TotalDuration)},
		{Term: "Audience", Value: joinList(course.TargetAudience)},
	}
	if course.Rating > 0 {
		defs = append(defs, definition{Term: "Rating", Value: strconv.FormatFloat(course.Rating, 'f', 1, 64)})
	}
	if course.EnrollmentCount > 0 {
		defs = append(defs, definition{Term: "Enrollments", Value: formatCount(course.EnrollmentCount)})
	}

	result := defs[:0]
	for _, def := range defs {
		if def.Value != "" {
			result = append(result, def)
		}
	}
	return result
}
