// Package present turns render instructions and articles into Markdown
// and plain text for the terminal adapters (CLI, TUI, MCP).
package present
