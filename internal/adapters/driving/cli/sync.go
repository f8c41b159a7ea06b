package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

var syncCmd = &cobra.Command{
	Use:   "sync [kind...]",
	Short: "Synchronise the local mirror from Sanity",
	Long: `Fetches collections from Sanity, validates them, and replaces the
local mirror used by the "mirror" content source. Without arguments all
collections are synchronised.

A collection that fails to fetch keeps its previous mirror contents.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	if mirrorService == nil {
		return errors.New("sync needs a Sanity project: run 'vabank config set sanity.project_id <id>'")
	}

	kinds := make([]domain.ContentKind, 0, len(args))
	for _, arg := range args {
		kind, err := domain.ParseContentKind(arg)
		if err != nil {
			return err
		}
		kinds = append(kinds, kind)
	}

	if len(kinds) == 0 {
		cmd.Println("Synchronising all collections...")
	}

	results, err := mirrorService.Sync(cmd.Context(), kinds...)
	for _, res := range results {
		if res.OK() {
			cmd.Printf("  ok    %-10s %d stored, %d rejected (%s)\n",
				res.Kind.Plural(), res.Stored, res.Rejected, res.Duration.Round(time.Millisecond))
		} else {
			cmd.Printf("  fail  %-10s %v\n", res.Kind.Plural(), res.Err)
		}
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	cmd.Println("Mirror up to date.")
	return nil
}
