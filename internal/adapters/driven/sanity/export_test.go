package sanity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

const exportNDJSON = `{"_id":"cat-ai","_type":"category","title":"AI"}
{"_id":"cat-web","_type":"category","title":"Web"}
{"_id":"auth-1","_type":"author","name":"Ada"}
{"_id":"post-1","_type":"post","title":"Agents","slug":{"current":"agents"},"author":{"_ref":"auth-1"},"categories":[{"_ref":"cat-ai"},{"_ref":"missing"}],"publishedAt":"2025-01-01T00:00:00Z","seo":{"metaDescription":"About agents"},"body":[{"_type":"block","style":"normal","children":[{"_type":"span","text":"Hi"}]}]}
{"_id":"drafts.post-1","_type":"post","title":"Agents (draft)","slug":{"current":"agents"}}

{"_id":"work-1","_type":"work","name":"Shop","slug":{"current":"shop"},"shortDescription":"A store","category":{"_ref":"cat-web"},"order":1,"longDescription":[{"_type":"block","style":"h2","children":[{"_type":"span","text":"Scope"}]}]}
{"_id":"prac-1","_type":"practice","name":"Lab","slug":{"current":"lab"},"progress":40,"seo":{"noIndex":true}}
{"_id":"img-1","_type":"sanity.imageAsset"}
`

func TestParseExport(t *testing.T) {
	got, err := ParseExport(strings.NewReader(exportNDJSON))
	require.NoError(t, err)

	require.Len(t, got[domain.KindPost], 1)
	post := got[domain.KindPost][0]
	assert.Equal(t, "Agents", post.Title)
	assert.Equal(t, "agents", post.Slug)
	assert.Equal(t, "Ada", post.Author)
	assert.Equal(t, "About agents", post.Description)
	assert.Equal(t, []domain.CategoryRef{{ID: "AI", Label: "AI"}}, post.Categories)
	assert.Len(t, post.Body.Blocks, 1)

	require.Len(t, got[domain.KindWork], 1)
	work := got[domain.KindWork][0]
	assert.Equal(t, "Shop", work.Title)
	assert.Equal(t, "A store", work.Description)
	assert.Equal(t, []domain.CategoryRef{{ID: "cat-web", Label: "Web"}}, work.Categories)
	require.NotNil(t, work.Order)
	assert.Equal(t, 1, *work.Order)
	assert.Equal(t, domain.BlockHeading, work.Body.Blocks[0].Type)

	require.Len(t, got[domain.KindPractice], 1)
	assert.True(t, got[domain.KindPractice][0].NoIndex)
	assert.Equal(t, 40, got[domain.KindPractice][0].Progress)
}

func TestParseExport_MalformedLine(t *testing.T) {
	_, err := ParseExport(strings.NewReader("{\"_id\":\"a\"}\n{oops\n"))

	assert.ErrorContains(t, err, "line 2")
}

func TestParseExport_Empty(t *testing.T) {
	got, err := ParseExport(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, got)
}
