package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vabank-dev/vabank/internal/adapters/driven/storage/memory"
	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
	"github.com/vabank-dev/vabank/internal/core/services"
)

// newTestServer builds a server over the demo content.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	content := services.NewContentService(memory.NewContentStore(memory.DemoContent()...), nil, 0)
	server, err := NewServer(&Ports{
		Listing: services.NewListingService(content, nil),
		Content: content,
		Render:  services.NewRenderer(nil, nil, false),
	})
	require.NoError(t, err)
	return server
}

// mockListingService is a mock implementation of driving.ListingService.
type mockListingService struct {
	view   driving.ItemView
	err    error
	closed []string
}

func (m *mockListingService) Open(_ context.Context, _ domain.ContentKind) (string, driving.ItemView, error) {
	return "session-1", m.view, m.err
}

func (m *mockListingService) Apply(_ string, _ domain.ListingAction) (driving.ItemView, error) {
	return m.view, m.err
}

func (m *mockListingService) View(_ string) (driving.ItemView, error) {
	return m.view, m.err
}

func (m *mockListingService) Close(id string) error {
	m.closed = append(m.closed, id)
	return m.err
}

func (m *mockListingService) Evaluate(_ context.Context, _ domain.ContentKind, _ domain.ListingQuery) (driving.ItemView, error) {
	return m.view, m.err
}

// mockContentService is a mock implementation of driving.ContentService.
type mockContentService struct {
	items []domain.ContentItem
	item  *domain.ContentItem
	err   error
}

func (m *mockContentService) List(_ context.Context, _ domain.ContentKind) ([]domain.ContentItem, error) {
	return m.items, m.err
}

func (m *mockContentService) Get(_ context.Context, _ domain.ContentKind, _ string) (*domain.ContentItem, error) {
	return m.item, m.err
}
