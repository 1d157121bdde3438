package insights

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manyArticles(n int) []Article {
	out := make([]Article, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Article{
			ID:       fmt.Sprintf("a-%d", i),
			Title:    fmt.Sprintf("Article %d", i),
			Excerpt:  "excerpt",
			Category: "Farming",
			Tags:     []string{"farming"},
			Source:   SourceStatic,
		})
	}
	return out
}

func TestSearchMatchesTitleExcerptAndTags(t *testing.T) {
	v := NewView([]Article{
		{ID: "1", Title: "Moringa Harvest", Excerpt: "x", Category: "Farming"},
		{ID: "2", Title: "y", Excerpt: "drip irrigation data", Category: "Sustainability"},
		{ID: "3", Title: "z", Excerpt: "x", Tags: []string{"Moringa", "organic"}, Category: "Farming"},
		{ID: "4", Title: "unrelated", Excerpt: "x", Category: "Investment"},
	})

	v.SetSearch("MORINGA")
	filtered := v.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "3", filtered[1].ID)

	v.SetSearch("irrigation")
	filtered = v.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)
}

func TestCategoryFilterAndSentinel(t *testing.T) {
	articles := []Article{
		{ID: "1", Category: "Farming"},
		{ID: "2", Category: "Investment"},
		{ID: "3", Category: "Farming"},
	}
	v := NewView(articles)

	assert.Len(t, v.Filtered(), 3)

	v.SetCategory("Farming")
	assert.Len(t, v.Filtered(), 2)

	v.SetCategory(CategoryAll)
	assert.Len(t, v.Filtered(), 3)

	// Empty label falls back to the sentinel.
	v.SetCategory("")
	assert.Len(t, v.Filtered(), 3)
}

func TestSearchAndCategoryResetPage(t *testing.T) {
	v := NewView(manyArticles(30))
	v.SetPage(3)
	require.Equal(t, 3, v.Page())

	v.SetSearch("article")
	assert.Equal(t, 1, v.Page())

	v.SetPage(2)
	v.SetCategory("Farming")
	assert.Equal(t, 1, v.Page())
}

func TestPagination(t *testing.T) {
	v := NewView(manyArticles(30))

	assert.Equal(t, 3, v.TotalPages())
	assert.Len(t, v.PageSlice(), PageSize)

	v.SetPage(3)
	slice := v.PageSlice()
	require.Len(t, slice, 6)
	assert.Equal(t, "a-24", slice[0].ID)
	assert.Equal(t, "a-29", slice[5].ID)
}

func TestSetPageClamps(t *testing.T) {
	v := NewView(manyArticles(30))

	v.SetPage(99)
	assert.Equal(t, 3, v.Page())

	v.SetPage(-5)
	assert.Equal(t, 1, v.Page())
}

func TestEmptyFilteredViewHasOnePage(t *testing.T) {
	v := NewView(manyArticles(5))
	v.SetSearch("no such phrase")

	assert.Empty(t, v.Filtered())
	assert.Equal(t, 1, v.TotalPages())
	assert.Empty(t, v.PageSlice())

	v.SetPage(7)
	assert.Equal(t, 1, v.Page())
}
