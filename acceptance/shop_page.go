//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// ShopPage wraps the course pages of the frontend.
type ShopPage struct {
	Page    playwright.Page
	ShopURL string
	t       *testing.T
}

// NewShopPage opens the course list.
func NewShopPage(t *testing.T, page playwright.Page, shopURL string) *ShopPage {
	t.Helper()

	_, err := page.Goto(shopURL)
	require.NoError(t, err)

	return &ShopPage{
		Page:    page,
		ShopURL: shopURL,
		t:       t,
	}
}

// CourseCount returns the number of course cards on the page.
func (sp *ShopPage) CourseCount() int {
	sp.t.Helper()

	count, err := sp.Page.Locator("article.course-card").Count()
	require.NoError(sp.t, err)
	return count
}

// ButtonClass returns the class attribute of the first button with the given label.
func (sp *ShopPage) ButtonClass(label string) string {
	sp.t.Helper()

	class, err := sp.Page.Locator("button", playwright.PageLocatorOptions{
		HasText: label,
	}).First().GetAttribute("class")
	require.NoError(sp.t, err)
	return class
}

// FilterByKeyword submits the filter form with a keyword.
func (sp *ShopPage) FilterByKeyword(keyword string) {
	sp.t.Helper()

	err := sp.Page.Locator("input[name='keyword']").Fill(keyword)
	require.NoError(sp.t, err)

	err = sp.Page.Locator("form.filter-form button[type='submit']").Click()
	require.NoError(sp.t, err)

	err = sp.Page.WaitForURL("**/shop/?*keyword=*")
	require.NoError(sp.t, err, "filter was not submitted")
}

// OpenCourse follows the link of a course card.
func (sp *ShopPage) OpenCourse(title string) {
	sp.t.Helper()

	err := sp.Page.Locator("article.course-card a", playwright.PageLocatorOptions{
		HasText: title,
	}).Click()
	require.NoError(sp.t, err)

	err = sp.Page.Locator("section.course-detail").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	})
	require.NoError(sp.t, err, "course detail did not load")
}

// Text returns the inner text of the first element matching selector.
func (sp *ShopPage) Text(selector string) string {
	sp.t.Helper()

	text, err := sp.Page.Locator(selector).First().InnerText()
	require.NoError(sp.t, err)
	return text
}
