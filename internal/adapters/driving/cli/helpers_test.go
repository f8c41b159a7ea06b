package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vabank-dev/vabank/internal/adapters/driven/storage/memory"
	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/services"
)

type fakeCopy struct {
	copied []string
	fail   bool
}

func (f *fakeCopy) Copy(text string) {
	if !f.fail {
		f.copied = append(f.copied, text)
	}
}

func (f *fakeCopy) Copied() bool { return !f.fail && len(f.copied) > 0 }

// demoServices wires real services over the demo collection.
func demoServices(t *testing.T) *Services {
	t.Helper()
	store := memory.NewContentStore(memory.DemoContent()...)
	content := services.NewContentService(store, nil, 0)
	return &Services{
		Listing:  services.NewListingService(content, nil),
		Content:  content,
		Render:   services.NewRenderer(nil, nil, false),
		Copy:     &fakeCopy{},
		Settings: services.NewSettingsService(memory.NewConfigStore()).WithEnv(noEnv),
	}
}

func noEnv(string) (string, bool) { return "", false }

// run executes the root command with args and returns its output.
func run(t *testing.T, s *Services, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	SetServices(s)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		SetServices(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	listCategory, listQuery, listMore, listJSON = domain.CategoryAll, "", 0, false
	showJSON, showMarkdown = false, false
	serveAddr, serveWatch = "", false
	sourceFlag, configDir = "", ""
}

func requireRun(t *testing.T, s *Services, args ...string) string {
	t.Helper()
	out, err := run(t, s, args...)
	require.NoError(t, err, out)
	return out
}
