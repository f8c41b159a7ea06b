package present

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

// Markdown renders instructions as CommonMark, one block per instruction
// separated by blank lines.
func Markdown(instrs []domain.Instruction) string {
	blocks := make([]string, 0, len(instrs))
	for _, in := range instrs {
		if md := block(in); md != "" {
			blocks = append(blocks, md)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func block(in domain.Instruction) string {
	switch in.Kind {
	case domain.InstrHeading:
		level := in.Level
		if level < 1 || level > 6 {
			level = 2
		}
		return strings.Repeat("#", level) + " " + runs(in.Runs, in.Text)
	case domain.InstrParagraph:
		return runs(in.Runs, in.Text)
	case domain.InstrBlockquote:
		return "> " + strings.ReplaceAll(runs(in.Runs, in.Text), "\n", "\n> ")
	case domain.InstrBulletList, domain.InstrNumberList:
		lines := make([]string, 0, len(in.Children))
		for i, child := range in.Children {
			marker := "- "
			if in.Kind == domain.InstrNumberList {
				marker = strconv.Itoa(i+1) + ". "
			}
			lines = append(lines, marker+runs(child.Runs, child.Text))
		}
		return strings.Join(lines, "\n")
	case domain.InstrImage:
		if in.Image == nil {
			return ""
		}
		return fmt.Sprintf("![%s](%s)", mdEscaper.Replace(in.Image.Alt), in.Image.URL)
	case domain.InstrCode:
		if in.Code == nil {
			return ""
		}
		fence := "```"
		for strings.Contains(in.Code.Source, fence) {
			fence += "`"
		}
		var sb strings.Builder
		if in.Code.ShowHeader {
			sb.WriteString("`" + in.Code.Filename + "`\n\n")
		}
		sb.WriteString(fence + in.Code.Language + "\n")
		sb.WriteString(strings.TrimRight(in.Code.Source, "\n"))
		sb.WriteString("\n" + fence)
		return sb.String()
	default:
		return mdEscaper.Replace(in.Text)
	}
}

func runs(rs []domain.TextRun, fallback string) string {
	if len(rs) == 0 {
		return mdEscaper.Replace(fallback)
	}

	var sb strings.Builder
	for _, r := range rs {
		sb.WriteString(run(r))
	}
	return sb.String()
}

func run(r domain.TextRun) string {
	if r.Text == "" {
		return ""
	}

	var text string
	if r.Code {
		text = "`" + r.Text + "`"
	} else {
		text = mdEscaper.Replace(r.Text)
	}

	// Markers must hug the text, so surrounding spaces stay outside.
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}
	lead := text[:strings.Index(text, trimmed)]
	trail := text[len(lead)+len(trimmed):]

	if r.Italic {
		trimmed = "_" + trimmed + "_"
	}
	if r.Bold {
		trimmed = "**" + trimmed + "**"
	}
	if r.Href != "" {
		trimmed = "[" + trimmed + "](" + r.Href + ")"
	}
	return lead + trimmed + trail
}

// ArticleMarkdown renders an article with its title, byline and body.
func ArticleMarkdown(a *domain.Article) string {
	var sb strings.Builder
	sb.WriteString("# " + mdEscaper.Replace(a.Item.Title) + "\n\n")

	if line := Byline(a); line != "" {
		sb.WriteString("_" + line + "_\n\n")
	}
	if a.Item.Kind != domain.KindPost && a.Item.Description != "" {
		sb.WriteString("> " + mdEscaper.Replace(a.Item.Description) + "\n\n")
	}
	if len(a.Item.TechTags) > 0 {
		sb.WriteString("**Stack:** " + mdEscaper.Replace(strings.Join(a.Item.TechTags, ", ")) + "\n\n")
	}
	if len(a.TOC) > 1 {
		sb.WriteString("**Contents**\n\n")
		for _, e := range a.TOC {
			sb.WriteString(fmt.Sprintf("- [%s](#%s)\n", mdEscaper.Replace(e.Text), e.ID))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(Markdown(a.Instructions))
	sb.WriteString("\n")
	return sb.String()
}

// Byline joins the date, reading time, author and client of an article.
func Byline(a *domain.Article) string {
	var parts []string
	if d := domain.DisplayDate(a.Item.SortTime()); d != "" {
		parts = append(parts, d)
	}
	if a.Item.Kind == domain.KindPost && a.ReadingTime > 0 {
		parts = append(parts, fmt.Sprintf("%d min read", a.ReadingTime))
	}
	if a.Item.Author != "" {
		parts = append(parts, "by "+a.Item.Author)
	}
	if a.Item.ClientName != "" {
		parts = append(parts, "for "+a.Item.ClientName)
	}
	return strings.Join(parts, " · ")
}

// Terminal renders Markdown for a terminal of the given width.
func Terminal(md string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
