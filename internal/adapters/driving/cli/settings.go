package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:         "settings",
	Short:       "Manage application settings",
	Long:        `View and configure the content source, Sanity project, site and server options.`,
	Annotations: map[string]string{settingsOnly: "true"},
	RunE:        runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show current settings",
	Annotations: map[string]string{settingsOnly: "true"},
	RunE:        runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single setting",
	Long: `Set a single setting by its dot-notation key.

Examples:
  vabank settings set sanity.project_id abc123
  vabank settings set content.source export
  vabank settings set listing.posts.page_size 9
  vabank settings set server.cors_origins https://vabank.dev,http://localhost:3000

Flags go before the key; everything after it is taken as is, so values
may start with a dash.

Run 'vabank settings keys' for the full list.`,
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{settingsOnly: "true"},
	RunE:        runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:         "keys",
	Short:       "List the settable keys",
	Annotations: map[string]string{skipBootstrap: "true"},
	Run: func(cmd *cobra.Command, _ []string) {
		keys := services.SettableKeys()
		slices.Sort(keys)
		for _, k := range keys {
			cmd.Println(k)
		}
	},
}

var settingsWizardCmd = &cobra.Command{
	Use:         "wizard",
	Short:       "Interactive setup wizard",
	Long:        `Run an interactive wizard to choose a content source and configure it.`,
	Annotations: map[string]string{settingsOnly: "true"},
	RunE:        runSettingsWizard,
}

var settingsTokenCmd = &cobra.Command{
	Use:         "token",
	Short:       "Set the Sanity API token",
	Long:        `Prompt for the Sanity read token without echoing it.`,
	Annotations: map[string]string{settingsOnly: "true"},
	RunE:        runSettingsToken,
}

func init() {
	settingsSetCmd.Flags().SetInterspersed(false)

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsTokenCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Content]")
	cmd.Printf("  Source: %s\n", settings.Content.Source.Description())
	if settings.Content.ExportPath != "" {
		cmd.Printf("  Export: %s\n", settings.Content.ExportPath)
	}
	cmd.Printf("  Timeout: %s\n", settings.Content.Timeout)
	cmd.Println()

	cmd.Println("[Sanity]")
	if settings.Sanity.IsConfigured() {
		cmd.Printf("  Project: %s\n", settings.Sanity.ProjectID)
	} else {
		cmd.Printf("  Project: (not set)\n")
	}
	cmd.Printf("  Dataset: %s\n", settings.Sanity.Dataset)
	cmd.Printf("  API Version: %s\n", settings.Sanity.APIVersion)
	cmd.Printf("  CDN: %s\n", yesNo(settings.Sanity.UseCDN))
	if settings.Sanity.Token != "" {
		cmd.Printf("  Token: %s\n", maskAPIKey(settings.Sanity.Token))
	} else {
		cmd.Printf("  Token: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Site]")
	cmd.Printf("  Name: %s\n", settings.Site.Name)
	cmd.Printf("  Base URL: %s\n", settings.Site.BaseURL)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	if len(settings.Server.CORSOrigins) > 0 {
		cmd.Printf("  CORS Origins: %s\n", strings.Join(settings.Server.CORSOrigins, ", "))
	}
	cmd.Println()

	cmd.Println("[Render]")
	cmd.Printf("  Strict: %s\n", yesNo(settings.Render.Strict))
	cmd.Printf("  Code Style: %s\n", settings.Render.CodeStyle)
	cmd.Println()

	cmd.Println("[Listings]")
	for _, kind := range domain.AllContentKinds() {
		cfg := settings.Listing(kind)
		cmd.Printf("  %s: %d per page, +%d per load\n", kind.Description(), cfg.PageSize, cfg.Step)
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'vabank settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runSettingsToken(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	cmd.Print("Sanity token: ")
	token := readPassword()
	cmd.Println()
	if token == "" {
		return fmt.Errorf("%w: empty token", domain.ErrInvalidInput)
	}
	if err := settingsService.Set("sanity.token", token); err != nil {
		return err
	}
	cmd.Printf("Saved token %s\n", maskAPIKey(token))
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Vabank Settings Wizard")
	cmd.Println("======================")
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Step 1: Select Content Source")
	cmd.Println("-----------------------------")
	sources := domain.AllContentSources()
	current := 1
	for i, src := range sources {
		cmd.Printf("  %d. %s\n", i+1, src.Description())
		if src == settings.Content.Source {
			current = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	choice := parseChoice(readLine(reader), len(sources), current)
	settings.Content.Source = sources[choice-1]
	cmd.Printf("Content source: %s\n\n", settings.Content.Source.Description())

	switch settings.Content.Source {
	case domain.SourceSanity, domain.SourceMirror:
		cmd.Println("Step 2: Sanity Project")
		cmd.Println("----------------------")
		settings.Sanity.ProjectID = prompt(cmd, reader, "Project ID", settings.Sanity.ProjectID)
		settings.Sanity.Dataset = prompt(cmd, reader, "Dataset", settings.Sanity.Dataset)
		settings.Sanity.APIVersion = prompt(cmd, reader, "API version", settings.Sanity.APIVersion)
		cmd.Print("Token (leave empty for public datasets): ")
		settings.Sanity.Token = readPassword()
		cmd.Println()
	case domain.SourceExport:
		cmd.Println("Step 2: Dataset Export")
		cmd.Println("----------------------")
		settings.Content.ExportPath = prompt(cmd, reader, "Path to .ndjson export", settings.Content.ExportPath)
	default:
		cmd.Println("Step 2: (skipped)")
		cmd.Println("Demo content needs no configuration.")
	}
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}
	if settings.Content.Source == domain.SourceMirror {
		cmd.Println("Run 'vabank sync' to fill the local mirror.")
	}

	return nil
}

func prompt(cmd *cobra.Command, reader *bufio.Reader, label, current string) string {
	if current != "" {
		cmd.Printf("%s [%s]: ", label, current)
	} else {
		cmd.Printf("%s: ", label)
	}
	if input := readLine(reader); input != "" {
		return input
	}
	return current
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
