package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vabank-dev/vabank/internal/adapters/driving/present"
	"github.com/vabank-dev/vabank/internal/core/domain"
)

var (
	showJSON     bool
	showMarkdown bool
)

var showCmd = &cobra.Command{
	Use:   "show <kind> <slug>",
	Short: "Render an article or project page",
	Long: `Renders a post, work or practice. In a terminal the article is
formatted with glamour; when piped, or with --markdown, plain Markdown is
written instead.

Works and practices share the /our-work/<slug> namespace, so
"vabank show works <slug>" also finds practices.`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

var copyCmd = &cobra.Command{
	Use:   "copy <kind> <slug> [block]",
	Short: "Copy a code block of an article to the clipboard",
	Long:  `Copies the n-th code block (1-based, default 1) of an article.`,
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runCopy,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the rendered article as JSON")
	showCmd.Flags().BoolVar(&showMarkdown, "markdown", false, "output Markdown even on a terminal")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(copyCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	article, err := loadArticle(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	if showJSON {
		return outputJSON(cmd, article)
	}

	md := present.ArticleMarkdown(article)
	width, isTTY := terminalWidth()
	if showMarkdown || !isTTY {
		cmd.Print(md)
		return nil
	}

	out, err := present.Terminal(md, width)
	if err != nil {
		return err
	}
	cmd.Print(out)
	return nil
}

func runCopy(cmd *cobra.Command, args []string) error {
	if copyService == nil {
		return errors.New("copy service not configured")
	}

	n := 1
	if len(args) == 3 {
		v, err := strconv.Atoi(args[2])
		if err != nil || v < 1 {
			return fmt.Errorf("%w: block must be a positive number", domain.ErrInvalidInput)
		}
		n = v
	}

	article, err := loadArticle(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	code := codeBlocks(article.Instructions)
	if n > len(code) {
		return fmt.Errorf("%w: %q has %d code blocks", domain.ErrNotFound, article.Item.Slug, len(code))
	}

	block := code[n-1]
	copyService.Copy(block.Source)
	if !copyService.Copied() {
		return errors.New("could not copy to the clipboard (run with --verbose for details)")
	}

	name := block.Filename
	if name == "" {
		name = block.Language + " block"
	}
	cmd.Printf("Copied %s to the clipboard\n", name)
	return nil
}

func loadArticle(ctx context.Context, kindArg, slug string) (*domain.Article, error) {
	if contentService == nil || renderService == nil {
		return nil, errors.New("content services not configured")
	}

	kind, err := domain.ParseContentKind(kindArg)
	if err != nil {
		return nil, err
	}

	item, err := contentService.Get(ctx, kind, slug)
	if errors.Is(err, domain.ErrNotFound) && kind == domain.KindWork {
		item, err = contentService.Get(ctx, domain.KindPractice, slug)
	}
	if err != nil {
		return nil, err
	}

	return renderService.Article(*item)
}

func codeBlocks(instrs []domain.Instruction) []*domain.CodeInstruction {
	var out []*domain.CodeInstruction
	for _, in := range instrs {
		if in.Kind == domain.InstrCode && in.Code != nil {
			out = append(out, in.Code)
		}
	}
	return out
}

func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 80, true
	}
	return w, true
}
