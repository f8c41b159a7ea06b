package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ContentMirror = (*Store)(nil)

// Store is the SQLite-backed content mirror.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the mirror database in dataDir.
// If dataDir is empty, defaults to ~/.vabank/data/content.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".vabank", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "content.db")

	// WAL lets `vabank serve` keep reading while `vabank sync` writes.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(schemaFS()); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SchemaVersion returns the highest applied migration.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}

// Fetch returns the mirrored items of a kind in upstream order.
func (s *Store) Fetch(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT payload FROM content_items
		WHERE kind = ?
		ORDER BY position
	`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", kind.Plural(), err)
	}
	defer rows.Close()

	var items []domain.ContentItem //nolint:prealloc // size unknown from query
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", kind.Plural(), err)
	}

	return items, nil
}

// FetchBySlug returns one mirrored item.
func (s *Store) FetchBySlug(ctx context.Context, kind domain.ContentKind, slug string) (*domain.ContentItem, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT payload FROM content_items
		WHERE kind = ? AND slug = ?
		ORDER BY position
		LIMIT 1
	`, string(kind), slug)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %q: %w", kind, slug, domain.ErrNotFound)
	}
	return item, err
}

// Replace swaps the items of a kind in one transaction.
func (s *Store) Replace(ctx context.Context, kind domain.ContentKind, items []domain.ContentItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM content_items WHERE kind = ?", string(kind)); err != nil {
		return fmt.Errorf("clearing %s: %w", kind.Plural(), err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO content_items (kind, id, slug, title, position, payload)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshalling %s %q: %w", kind, item.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, string(kind), item.ID, item.Slug, item.Title, i, string(payload)); err != nil {
			return fmt.Errorf("saving %s %q: %w", kind, item.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sync_state (kind, synced_at, item_count)
		VALUES (?, ?, ?)
		ON CONFLICT(kind) DO UPDATE SET
			synced_at = excluded.synced_at,
			item_count = excluded.item_count
	`, string(kind), time.Now().UTC().Format(time.RFC3339Nano), len(items))
	if err != nil {
		return fmt.Errorf("recording sync state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// LastSynced returns when a kind was last replaced, zero if never.
func (s *Store) LastSynced(ctx context.Context, kind domain.ContentKind) (time.Time, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT synced_at FROM sync_state WHERE kind = ?", string(kind)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("reading sync state: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing sync time %q: %w", raw, err)
	}
	return t, nil
}

// Count returns the number of mirrored items of a kind.
func (s *Store) Count(ctx context.Context, kind domain.ContentKind) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM content_items WHERE kind = ?", string(kind)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", kind.Plural(), err)
	}
	return n, nil
}

// scanner abstracts sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*domain.ContentItem, error) {
	var payload string
	if err := row.Scan(&payload); err != nil {
		return nil, err
	}
	var item domain.ContentItem
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return &item, nil
}
