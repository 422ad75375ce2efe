// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tui implements the interactive dual-pane certificate inspector.
// It provides capabilities to:
//   - Navigate the flattened certificate hierarchy with arrow and page keys.
//   - Toggle focus between the list pane and a scrollable detail pane.
//   - Adapt the list's expiry column to the terminal width.
//   - Hand off to the plain text renderer with the 't' key.
//
// Interaction state lives in [NavState], a pure state machine that applies
// one keyboard intent at a time; the [Bubble Tea] model around it only maps
// key presses to intents and draws the four panes with [Lip Gloss].
//
// [Bubble Tea]: https://github.com/charmbracelet/bubbletea
// [Lip Gloss]: https://github.com/charmbracelet/lipgloss
package tui
