// Package ui centralizes terminal color themes for the CLI and the
// TUI explorer, including NO_COLOR handling.
package ui
