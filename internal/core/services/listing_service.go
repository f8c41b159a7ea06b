package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
	"github.com/vabank-dev/vabank/internal/logger"
)

// Ensure ListingService implements the interface.
var _ driving.ListingService = (*ListingService)(nil)

// maxSessions bounds the session registry. The oldest session is evicted first.
const maxSessions = 256

type session struct {
	kind       domain.ContentKind
	controller *Controller[domain.ContentItem]
}

// ListingService keeps listing controllers for adapters that browse across
// several requests.
type ListingService struct {
	content driving.ContentService
	configs map[domain.ContentKind]domain.ListingConfig

	mu       sync.Mutex
	sessions map[string]*session
	order    []string
}

// NewListingService creates a listing service.
// Kinds missing from configs use domain.DefaultListingConfig.
func NewListingService(
	content driving.ContentService,
	configs map[domain.ContentKind]domain.ListingConfig,
) *ListingService {
	return &ListingService{
		content:  content,
		configs:  configs,
		sessions: make(map[string]*session),
	}
}

// Controller loads a collection and returns a fresh controller over it.
func (s *ListingService) Controller(ctx context.Context, kind domain.ContentKind) (*Controller[domain.ContentItem], error) {
	items, err := s.content.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	return NewController(items, ContentSchema(kind), s.config(kind)), nil
}

// Open starts a session.
func (s *ListingService) Open(ctx context.Context, kind domain.ContentKind) (string, driving.ItemView, error) {
	ctrl, err := s.Controller(ctx, kind)
	if err != nil {
		return "", driving.ItemView{}, err
	}

	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{kind: kind, controller: ctrl}
	s.order = append(s.order, id)
	s.evict()

	logger.Debug("opened %s listing session %s", kind.Plural(), id)
	return id, ctrl.View(), nil
}

// Apply performs one transition on a session.
func (s *ListingService) Apply(sessionID string, action domain.ListingAction) (driving.ItemView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return driving.ItemView{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	if err := sess.controller.Apply(action); err != nil {
		return driving.ItemView{}, err
	}
	return sess.controller.View(), nil
}

// View returns the current read model of a session.
func (s *ListingService) View(sessionID string) (driving.ItemView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return driving.ItemView{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return sess.controller.View(), nil
}

// Close discards a session.
func (s *ListingService) Close(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	s.remove(sessionID)
	return nil
}

// Evaluate replays a query on a fresh controller.
func (s *ListingService) Evaluate(ctx context.Context, kind domain.ContentKind, q domain.ListingQuery) (driving.ItemView, error) {
	ctrl, err := s.Controller(ctx, kind)
	if err != nil {
		return driving.ItemView{}, err
	}
	ctrl.Replay(q)
	return ctrl.View(), nil
}

// Len returns the number of open sessions.
func (s *ListingService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *ListingService) config(kind domain.ContentKind) domain.ListingConfig {
	if cfg, ok := s.configs[kind]; ok {
		if cfg.AllLabel == "" {
			cfg.AllLabel = domain.DefaultListingConfig(kind).AllLabel
		}
		return cfg.Normalized()
	}
	return domain.DefaultListingConfig(kind)
}

// evict drops the oldest sessions over the limit (caller must hold lock).
func (s *ListingService) evict() {
	for len(s.order) > maxSessions {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.sessions, oldest)
		logger.Debug("evicted listing session %s", oldest)
	}
}

// remove deletes a session (caller must hold lock).
func (s *ListingService) remove(id string) {
	delete(s.sessions, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
