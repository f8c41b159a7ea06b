package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vabank-dev/vabank/internal/adapters/driving/tui"
	"github.com/vabank-dev/vabank/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the site in the terminal",
	Long: `Opens an interactive browser for the blog, our work and tech practices.

In a listing, / searches, ←/→ change category, m loads more and r
clears the filters. In an article, tab cycles the code blocks and c
copies the selected one. Esc goes back and q quits.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui needs a terminal; use `vabank list` instead")
	}

	app, err := tui.NewApp(&tui.Ports{
		Listing: listingService,
		Content: contentService,
		Render:  renderService,
		Copy:    copyService,
	})
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("tui panic: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("tui crashed: %v", r)
		}
	}()

	program := tea.NewProgram(app.WithContext(cmd.Context()), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
