package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
	"github.com/vabank-dev/vabank/internal/core/services"
)

var (
	listCategory string
	listQuery    string
	listMore     int
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List posts, works or practices",
	Long: `Lists one collection the way the site shows it: filtered by category,
narrowed by a free-text search, and windowed to the first page.

Kinds: posts (blog), works (our-work), practices.

Examples:
  vabank list posts
  vabank list works --category cat-ai
  vabank list posts --query agents --more 2`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories <kind>",
	Short: "List the categories of a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategories,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", domain.CategoryAll, "category id")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "free-text search")
	listCmd.Flags().IntVarP(&listMore, "more", "m", 0, "number of load-more steps")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output the listing view as JSON")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listingService == nil {
		return errors.New("listing service not configured")
	}

	kind, err := domain.ParseContentKind(args[0])
	if err != nil {
		return err
	}
	if listMore < 0 {
		return fmt.Errorf("%w: --more must not be negative", domain.ErrInvalidInput)
	}

	view, err := listingService.Evaluate(cmd.Context(), kind, domain.ListingQuery{
		Category: listCategory,
		Search:   listQuery,
		LoadMore: listMore,
	})
	if err != nil {
		return fmt.Errorf("list %s: %w", kind.Plural(), err)
	}

	if listJSON {
		return outputJSON(cmd, view)
	}
	outputListing(cmd, kind, view)
	return nil
}

func outputListing(cmd *cobra.Command, kind domain.ContentKind, view driving.ItemView) {
	cmd.Printf("%s: %d of %d", kind.Description(), len(view.VisibleItems), view.TotalMatching)
	var filters []string
	if view.ActiveCategory != domain.CategoryAll {
		filters = append(filters, "category "+categoryLabel(view.Categories, view.ActiveCategory))
	}
	if view.SearchQuery != "" {
		filters = append(filters, fmt.Sprintf("search %q", view.SearchQuery))
	}
	if len(filters) > 0 {
		cmd.Printf(" (%s)", strings.Join(filters, ", "))
	}
	cmd.Println()
	cmd.Println()

	if view.IsEmpty {
		cmd.Printf("No %s match. Clear --category and --query to reset filters.\n", kind.Plural())
		return
	}

	if len(view.Featured) > 0 {
		cmd.Println("Featured:")
		for i := range view.Featured {
			cmd.Printf("  * %s\n", view.Featured[i].Title)
		}
		cmd.Println()
	}

	for i := range view.VisibleItems {
		item := &view.VisibleItems[i]
		cmd.Printf("  [%d] %s\n", i+1, item.Title)
		if meta := itemMeta(item); meta != "" {
			cmd.Printf("      %s\n", meta)
		}
		cmd.Printf("      %s\n", item.Path())
	}

	if view.HasMore {
		cmd.Println()
		cmd.Printf("  %d more. Run again with --more %d\n", view.TotalMatching-len(view.VisibleItems), listMore+1)
	}
}

func itemMeta(item *domain.ContentItem) string {
	var parts []string
	if cat := item.PrimaryCategory(); cat != nil && cat.Label != "" {
		parts = append(parts, services.TitleCase(cat.Label))
	}
	if d := domain.DisplayDate(item.SortTime()); d != "" {
		parts = append(parts, d)
	}
	if tags := item.AllTags(); len(tags) > 0 {
		parts = append(parts, strings.Join(tags, ", "))
	}
	return strings.Join(parts, " · ")
}

func categoryLabel(categories []domain.Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return services.TitleCase(c.Label)
		}
	}
	return id
}

func runCategories(cmd *cobra.Command, args []string) error {
	if listingService == nil {
		return errors.New("listing service not configured")
	}

	kind, err := domain.ParseContentKind(args[0])
	if err != nil {
		return err
	}

	view, err := listingService.Evaluate(cmd.Context(), kind, domain.ListingQuery{})
	if err != nil {
		return fmt.Errorf("list %s: %w", kind.Plural(), err)
	}

	for _, c := range view.Categories {
		cmd.Printf("  %-24s %s\n", c.ID, services.TitleCase(c.Label))
	}
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
