// Package sqlite is the local content mirror. `vabank sync` fills it and
// the mirror source reads from it, so the site can run without network
// access to Sanity.
//
// Items are stored whole as JSON in content_items, keyed by kind and id
// and ordered by the position the upstream returned them in. The schema
// lives in schema/ as numbered migrations; applied versions are recorded
// in schema_migrations. The database defaults to ~/.vabank/data/content.db
// and is opened in WAL mode through modernc.org/sqlite.
package sqlite
