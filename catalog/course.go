package catalog

import (
	"encoding/json"
	"strconv"
)

type CourseState string

const (
	CourseStateCreating      CourseState = "CREATING"
	CourseStateReadyToAccept CourseState = "READY_TO_ACCEPT"
	CourseStateHidden        CourseState = "HIDDEN"
)

// Course is a course record as returned by the catalog API.
//
// Only the fields needed for rendering are decoded. The complete JSON object
// is kept in Raw, so fields unknown to this package survive a round trip
// through MarshalJSON.
type Course struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Price           json.Number `json:"price"`
	DiscountPrice   json.Number `json:"discountPrice"`
	Categories      []string    `json:"categories"`
	Language        string      `json:"language"`
	TotalDuration   Duration    `json:"totalDuration"`
	Rating          float64     `json:"rating"`
	ImageURL        string      `json:"imageURL"`
	TargetAudience  []string    `json:"targetAudience"`
	EnrollmentCount int         `json:"enrollmentCount"`
	CourseState     CourseState `json:"courseState"`
	Lessons         []Lesson    `json:"lessons"`

	Raw json.RawMessage `json:"-"`
}

type Lesson struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	LessonNumber int      `json:"lessonNumber"`
	VideoURL     string   `json:"videoUrl"`
	Duration     Duration `json:"duration"`
}

// Duration holds a duration as sent by the API, either a number of seconds
// (e.g. 5400.0) or an ISO-8601 string (e.g. "PT1H30M").
type Duration string

func (d *Duration) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*d = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Duration(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(string(d), 64); err == nil {
		return []byte(d), nil
	}
	return json.Marshal(string(d))
}

// courseFields breaks the UnmarshalJSON recursion.
type courseFields Course

func (c *Course) UnmarshalJSON(data []byte) error {
	var fields courseFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*c = Course(fields)
	c.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the payload the course was decoded from. Courses built
// in code (without Raw) are encoded from their fields.
func (c Course) MarshalJSON() ([]byte, error) {
	if len(c.Raw) > 0 {
		return c.Raw, nil
	}
	return json.Marshal(courseFields(c))
}

// CourseFilter is the result of a filtered course query: the total number of
// matches and the courses of the requested page.
type CourseFilter struct {
	Count   int64    `json:"count"`
	Courses []Course `json:"courses"`

	Raw json.RawMessage `json:"-"`
}

type courseFilterFields CourseFilter

func (f *CourseFilter) UnmarshalJSON(data []byte) error {
	var fields courseFilterFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*f = CourseFilter(fields)
	f.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (f CourseFilter) MarshalJSON() ([]byte, error) {
	if len(f.Raw) > 0 {
		return f.Raw, nil
	}
	return json.Marshal(courseFilterFields(f))
}
