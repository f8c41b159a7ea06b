package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

func TestShow_Markdown(t *testing.T) {
	out := requireRun(t, demoServices(t), "show", "posts", "shipping-ai-agents", "--markdown")

	assert.Contains(t, out, "Shipping AI agents to production")
	assert.Contains(t, out, "Start with evaluation")
	assert.Contains(t, out, "const score = await evaluate(agent, cases);")
}

func TestShow_JSON(t *testing.T) {
	out := requireRun(t, demoServices(t), "show", "blog", "shipping-ai-agents", "--json")

	var a domain.Article
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "shipping-ai-agents", a.Item.Slug)
	assert.Len(t, a.TOC, 2)
	assert.Equal(t, "start-with-evaluation", a.TOC[0].ID)
}

func TestShow_WorkFallsBackToPractice(t *testing.T) {
	out := requireRun(t, demoServices(t), "show", "works", "llm-evals-kit", "--markdown")

	assert.Contains(t, out, "LLM evals kit")
}

func TestShow_NotFound(t *testing.T) {
	_, err := run(t, demoServices(t), "show", "posts", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCopy(t *testing.T) {
	s := demoServices(t)
	cp := &fakeCopy{}
	s.Copy = cp

	out := requireRun(t, s, "copy", "posts", "shipping-ai-agents")

	assert.Contains(t, out, "Copied eval.ts to the clipboard")
	assert.Equal(t, []string{"const score = await evaluate(agent, cases);"}, cp.copied)
}

func TestCopy_Errors(t *testing.T) {
	s := demoServices(t)

	_, err := run(t, s, "copy", "posts", "shipping-ai-agents", "2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = run(t, s, "copy", "posts", "shipping-ai-agents", "zero")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	s.Copy = &fakeCopy{fail: true}
	_, err = run(t, s, "copy", "posts", "shipping-ai-agents")
	assert.ErrorContains(t, err, "could not copy")
}
