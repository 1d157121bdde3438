package insights

import (
	"math"
	"strings"
)

// PageSize is the fixed number of articles per page.
const PageSize = 12

// View is the query state over a snapshot of the merged catalog: search
// text, category selection and page number. Changing the search text or
// the category resets the page to 1; the page number is always clamped
// to the filtered result.
type View struct {
	articles []Article
	search   string
	category string
	page     int
}

func NewView(articles []Article) *View {
	return &View{articles: articles, category: CategoryAll, page: 1}
}

// SetSearch updates the search text and resets to the first page.
func (v *View) SetSearch(text string) {
	v.search = text
	v.page = 1
}

// SetCategory updates the category selection and resets to the first page.
func (v *View) SetCategory(label string) {
	if label == "" {
		label = CategoryAll
	}
	v.category = label
	v.page = 1
}

// SetPage clamps the requested page into [1, TotalPages]. Out-of-range
// requests never fault; internal controls should not produce them but a
// hand-edited URL can.
func (v *View) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if max := v.TotalPages(); n > max {
		n = max
	}
	v.page = n
}

func (v *View) Page() int { return v.page }

// Filtered returns the articles matching the current search text and
// category, preserving catalog order.
func (v *View) Filtered() []Article {
	var out []Article
	for _, a := range v.articles {
		if v.matches(a) {
			out = append(out, a)
		}
	}
	return out
}

func (v *View) matches(a Article) bool {
	if v.category != CategoryAll && a.Category != v.category {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(v.search))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Excerpt), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// TotalPages is ceil(len(Filtered)/PageSize), never below 1.
func (v *View) TotalPages() int {
	n := int(math.Ceil(float64(len(v.Filtered())) / float64(PageSize)))
	if n < 1 {
		n = 1
	}
	return n
}

// PageSlice returns the current page's contiguous slice of the filtered
// view.
func (v *View) PageSlice() []Article {
	filtered := v.Filtered()
	start := (v.page - 1) * PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}
