package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentKind(t *testing.T) {
	tests := []struct {
		in   string
		want ContentKind
	}{
		{"post", KindPost},
		{"Blog", KindPost},
		{" posts ", KindPost},
		{"works", KindWork},
		{"our-work", KindWork},
		{"practices", KindPractice},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseContentKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseContentKind_Unknown(t *testing.T) {
	_, err := ParseContentKind("podcast")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedKind))
}

func TestContentKind_Plural(t *testing.T) {
	assert.Equal(t, "posts", KindPost.Plural())
	assert.Equal(t, "works", KindWork.Plural())
	assert.Equal(t, "practices", KindPractice.Plural())
	assert.False(t, ContentKind("x").IsValid())
}

func TestContentItem_SearchableText(t *testing.T) {
	item := ContentItem{
		Title:       "Headless Commerce",
		Description: "Replatforming a Shop",
		Tags:        []string{"React"},
		TechTags:    []string{"Next.js"},
	}

	assert.Equal(t, "headless commerce replatforming a shop react next.js", item.SearchableText())
}

func TestContentItem_SearchableText_MissingFields(t *testing.T) {
	item := ContentItem{Title: "Only Title"}

	assert.Equal(t, "only title ", item.SearchableText())
}

func TestContentItem_PrimaryCategory(t *testing.T) {
	item := ContentItem{}
	assert.Nil(t, item.PrimaryCategory())

	item.Categories = []CategoryRef{{ID: "c1", Label: "Web"}, {ID: "c2", Label: "AI"}}
	require.NotNil(t, item.PrimaryCategory())
	assert.Equal(t, "Web", item.PrimaryCategory().Label)
}

func TestContentItem_AllTags(t *testing.T) {
	item := ContentItem{Tags: []string{"a"}}
	assert.Equal(t, []string{"a"}, item.AllTags())

	item.TechTags = []string{"b"}
	assert.Equal(t, []string{"a", "b"}, item.AllTags())
}

func TestContentItem_SortTimeAndPath(t *testing.T) {
	published := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	post := ContentItem{Kind: KindPost, Slug: "hello", PublishedAt: published, CreatedAt: created}
	work := ContentItem{Kind: KindWork, Slug: "shop", CreatedAt: created}

	assert.Equal(t, published, post.SortTime())
	assert.Equal(t, created, work.SortTime())
	assert.Equal(t, "/blog/hello", post.Path())
	assert.Equal(t, "/our-work/shop", work.Path())
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "March 4, 2025", DisplayDate(time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)))
	assert.Empty(t, DisplayDate(time.Time{}))
}
