package web

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

func instructionNodes(instrs []domain.Instruction) g.Node {
	return g.Map(instrs, instructionNode)
}

func instructionNode(in domain.Instruction) g.Node {
	switch in.Kind {
	case domain.InstrParagraph:
		return h.P(runNodes(in))
	case domain.InstrHeading:
		level := min(max(in.Level, 1), 6)
		return g.El("h"+strconv.Itoa(level), g.If(in.AnchorID != "", h.ID(in.AnchorID)), runNodes(in))
	case domain.InstrBlockquote:
		return g.El("blockquote", runNodes(in))
	case domain.InstrBulletList:
		return h.Ul(g.Map(in.Children, listItem))
	case domain.InstrNumberList:
		return h.Ol(g.Map(in.Children, listItem))
	case domain.InstrImage:
		return imageNode(in.Image)
	case domain.InstrCode:
		return codeNode(in.Code)
	default:
		return h.Div(
			h.Class("fallback"),
			g.Attr("data-block-type", in.SourceType),
			h.P(g.Text(in.Text)),
		)
	}
}

func listItem(in domain.Instruction) g.Node {
	return h.Li(runNodes(in))
}

func runNodes(in domain.Instruction) g.Node {
	if len(in.Runs) == 0 {
		return g.Text(in.Text)
	}
	return g.Map(in.Runs, runNode)
}

func runNode(r domain.TextRun) g.Node {
	n := g.Text(r.Text)
	if r.Code {
		n = h.Code(n)
	}
	if r.Italic {
		n = h.Em(n)
	}
	if r.Bold {
		n = h.Strong(n)
	}
	if r.Href != "" {
		n = h.A(h.Href(r.Href), h.Rel("noopener"), n)
	}
	return n
}

func imageNode(img *domain.ImageInstruction) g.Node {
	if img == nil {
		return nil
	}
	return g.El("figure",
		h.Img(h.Src(img.URL), h.Alt(img.Alt), g.Attr("loading", "lazy")),
		g.If(img.Alt != "", g.El("figcaption", g.Text(img.Alt))),
	)
}

// codeNode renders a code block. Highlighted output comes from the
// highlighter as a complete <pre> element.
func codeNode(c *domain.CodeInstruction) g.Node {
	if c == nil {
		return nil
	}

	body := g.Node(h.Pre(h.Code(h.Class("language-"+c.Language), g.Text(c.Source))))
	if c.Highlighted != "" {
		body = g.Raw(c.Highlighted)
	}

	return h.Div(
		h.Class("code-block"),
		g.Attr("data-language", c.Language),
		g.If(c.ShowHeader, h.Div(
			h.Class("code-header"),
			h.Span(g.Text(c.Filename)),
			h.Button(h.Type("button"), h.Class("copy"), g.Attr("data-copy", c.Source), g.Text("Copy")),
		)),
		body,
	)
}
