// Package export serves content from a Sanity dataset export file
// (NDJSON), reloading it when the file changes on disk.
package export
