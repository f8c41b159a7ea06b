package memory

import (
	"time"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// DemoContent returns a small fixed collection for the memory source, so
// the listings can be explored without a Sanity project.
func DemoContent() []domain.ContentItem {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
	}
	order := func(n int) *int { return &n }
	para := func(text string) domain.Block {
		return domain.Block{Type: domain.BlockParagraph, Spans: []domain.Span{{Text: text}}}
	}
	heading := func(text string) domain.Block {
		return domain.Block{Type: domain.BlockHeading, Level: 2, Spans: []domain.Span{{Text: text}}}
	}

	return []domain.ContentItem{
		{
			ID:          "post-agents",
			Kind:        domain.KindPost,
			Slug:        "shipping-ai-agents",
			Title:       "Shipping AI agents to production",
			Categories:  []domain.CategoryRef{{ID: "AI", Label: "AI"}},
			Tags:        []string{"agents", "llm"},
			Featured:    true,
			PublishedAt: day(2025, 3, 4),
			Author:      "Vabank.dev",
			Body: domain.RichDocument{Blocks: []domain.Block{
				para("Agents are easy to demo and hard to operate."),
				heading("Start with evaluation"),
				para("Write the eval harness before the prompt."),
				{Type: domain.BlockCode, Code: &domain.CodeBlock{
					Language: "typescript",
					Filename: "eval.ts",
					Source:   "const score = await evaluate(agent, cases);",
				}},
				heading("Watch the costs"),
				{Type: domain.BlockBulletList, Items: []domain.ListItem{
					{Spans: []domain.Span{{Text: "Cache tool results"}}},
					{Spans: []domain.Span{{Text: "Cap "}, {Text: "iterations", Marks: []domain.Mark{{Type: domain.MarkBold}}}}},
				}},
			}},
		},
		{
			ID:          "post-nextjs",
			Kind:        domain.KindPost,
			Slug:        "nextjs-app-router-lessons",
			Title:       "Lessons from a year on the App Router",
			Categories:  []domain.CategoryRef{{ID: "Web", Label: "Web"}},
			Tags:        []string{"nextjs", "react"},
			PublishedAt: day(2025, 1, 20),
			Body: domain.RichDocument{Blocks: []domain.Block{
				para("Server components changed how we structure data fetching."),
				{Type: domain.BlockBlockquote, Spans: []domain.Span{{Text: "Fetch where you render."}}},
			}},
		},
		{
			ID:          "post-sanity",
			Kind:        domain.KindPost,
			Slug:        "modelling-content-in-sanity",
			Title:       "Modelling content in Sanity",
			Categories:  []domain.CategoryRef{{ID: "Web", Label: "Web"}, {ID: "CMS", Label: "CMS"}},
			Tags:        []string{"sanity", "groq"},
			PublishedAt: day(2024, 11, 2),
			Body: domain.RichDocument{Blocks: []domain.Block{
				para("References beat duplicated strings once a taxonomy grows."),
			}},
		},
		{
			ID:          "post-rag",
			Kind:        domain.KindPost,
			Slug:        "rag-without-the-hype",
			Title:       "RAG without the hype",
			Categories:  []domain.CategoryRef{{ID: "AI", Label: "AI"}},
			Tags:        []string{"rag", "search"},
			PublishedAt: day(2024, 9, 15),
			Body: domain.RichDocument{Blocks: []domain.Block{
				para("Most retrieval problems are search problems."),
			}},
		},
		{
			ID:          "work-shop",
			Kind:        domain.KindWork,
			Slug:        "headless-shop",
			Title:       "Headless shop",
			Description: "A Shopify storefront rebuilt on Next.js.",
			ClientName:  "Northwind",
			Categories:  []domain.CategoryRef{{ID: "cat-ecommerce", Label: "E-commerce"}},
			TechTags:    []string{"Next.js", "Shopify", "Tailwind"},
			Order:       order(1),
			CreatedAt:   day(2024, 6, 1),
		},
		{
			ID:          "work-assistant",
			Kind:        domain.KindWork,
			Slug:        "support-assistant",
			Title:       "Support assistant",
			Description: "An LLM assistant answering from the help centre.",
			ClientName:  "Contoso",
			Categories:  []domain.CategoryRef{{ID: "cat-ai", Label: "AI"}},
			TechTags:    []string{"OpenAI", "pgvector"},
			CreatedAt:   day(2025, 2, 10),
		},
		{
			ID:          "work-portal",
			Kind:        domain.KindWork,
			Slug:        "partner-portal",
			Title:       "Partner portal",
			Description: "Self-service onboarding for resellers.",
			Categories:  []domain.CategoryRef{{ID: "cat-web", Label: "Web App"}},
			TechTags:    []string{"React", "Go"},
			Order:       order(2),
			CreatedAt:   day(2023, 10, 5),
		},
		{
			ID:            "practice-evals",
			Kind:          domain.KindPractice,
			Slug:          "llm-evals-kit",
			Title:         "LLM evals kit",
			Description:   "Regression tests for prompts.",
			Categories:    []domain.CategoryRef{{ID: "cat-ai", Label: "AI"}},
			TechTags:      []string{"Python", "pytest"},
			Progress:      70,
			RepositoryURL: "https://github.com/vabank-dev/evals-kit",
			CreatedAt:     day(2025, 1, 5),
			LastUpdated:   day(2025, 3, 1),
		},
		{
			ID:          "practice-starter",
			Kind:        domain.KindPractice,
			Slug:        "sanity-next-starter",
			Title:       "Sanity + Next starter",
			Description: "Our baseline for content sites.",
			Categories:  []domain.CategoryRef{{ID: "cat-web", Label: "Web App"}},
			TechTags:    []string{"Next.js", "Sanity"},
			Progress:    100,
			CreatedAt:   day(2024, 4, 12),
		},
	}
}
