// Package file stores vabank settings in ~/.vabank/config.toml.
package file
