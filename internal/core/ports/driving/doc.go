// Package driving declares what the web, CLI, TUI and MCP adapters may
// ask of the core. internal/core/services implements every interface.
package driving
