// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	x509tree "github.com/tdslot/cert-tree/src/internal/x509/tree"
)

// keyMap binds raw key presses to navigation intents. Anything outside these
// bindings is ignored.
type keyMap struct {
	SwitchPane key.Binding
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	TextMode   key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		SwitchPane: key.NewBinding(key.WithKeys("tab")),
		Up:         key.NewBinding(key.WithKeys("up", "k")),
		Down:       key.NewBinding(key.WithKeys("down", "j")),
		PageUp:     key.NewBinding(key.WithKeys("pgup")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown")),
		TextMode:   key.NewBinding(key.WithKeys("t")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// Model adapts the navigation state machine to the Bubble Tea event loop.
// All interaction state lives in the NavState; the model only carries the
// terminal geometry, the detail viewport, and the text-mode exit flag.
type Model struct {
	nav     *NavState
	detail  viewport.Model
	keys    keyMap
	version string
	width   int
	height  int

	// textOnExit records that the user pressed 't': leave the alternate
	// screen and print the plain text tree instead.
	textOnExit bool
}

func newModel(rows []x509tree.Row, version string, pageSize int) Model {
	nav := NewNav(rows, pageSize, func(row x509tree.Row) int {
		return len(detailLines(row, 0))
	})
	return Model{
		nav:     nav,
		detail:  viewport.New(0, 0),
		keys:    defaultKeyMap(),
		version: version,
	}
}

// Init implements tea.Model. The inspector waits for input; there is no
// initial command.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. Window resizes re-wrap the detail content;
// key presses map to exactly one navigation intent each.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		width := contentWidth(msg.Width)
		m.nav.SetLineCountFunc(func(row x509tree.Row) int {
			return len(detailLines(row, width))
		})
		m.syncPanes()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.TextMode) {
			m.textOnExit = true
			return m, tea.Quit
		}
		if m.nav.Apply(m.intent(msg)) {
			return m, tea.Quit
		}
		m.syncPanes()
	}
	return m, nil
}

// intent translates a key press into a navigation intent. Unbound keys map
// to IntentNone, which the state machine ignores.
func (m Model) intent(msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return IntentQuit
	case key.Matches(msg, m.keys.SwitchPane):
		return IntentSwitchPane
	case key.Matches(msg, m.keys.Up):
		return IntentUp
	case key.Matches(msg, m.keys.Down):
		return IntentDown
	case key.Matches(msg, m.keys.PageUp):
		return IntentPageUp
	case key.Matches(msg, m.keys.PageDown):
		return IntentPageDown
	}
	return IntentNone
}

// syncPanes reconciles the rendering state with the navigation state: it
// keeps the selection visible, resizes the detail viewport, and re-renders
// the selected row's detail content.
func (m *Model) syncPanes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	listHeight, detailHeight := m.paneHeights()
	m.nav.EnsureVisible(listHeight - 2)

	m.detail.Width = contentWidth(m.width)
	m.detail.Height = detailHeight - 2
	if row, ok := m.nav.Current(); ok {
		m.detail.SetContent(strings.Join(detailLines(row, m.detail.Width), "\n"))
	} else {
		m.detail.SetContent("No certificate selected")
	}
	// Assign the offset directly: the viewport's own setter clamps to a full
	// last screen, while the navigation bound is the last content line.
	m.detail.YOffset = m.nav.DetailScroll()
}

// paneHeights splits the rows between the title (3), list, details, and
// footer (3) panes, giving the list the smaller half on odd splits.
func (m Model) paneHeights() (list, detail int) {
	content := m.height - 6
	if content < 6 {
		content = 6
	}
	list = content / 2
	detail = content - list
	return list, detail
}

// contentWidth is the inner width of a full-width bordered pane.
func contentWidth(width int) int {
	if width <= 2 {
		return 1
	}
	return width - 2
}

// Run starts the interactive inspector over the flattened rows and blocks
// until the user quits. It reports whether the user asked to fall back to
// the plain text tree on exit.
//
// Parameters:
//   - rows: The flattened certificate rows to inspect.
//   - version: Version string shown in the title bar.
//   - pageSize: Rows jumped by PageUp/PageDown. Values below 1 fall back to 10.
//
// Returns:
//   - true when the session ended with the text-mode key.
//   - An error when the terminal could not be set up or restored.
func Run(rows []x509tree.Row, version string, pageSize int) (bool, error) {
	program := tea.NewProgram(newModel(rows, version, pageSize), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("failed to run interactive inspector: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return model.textOnExit, nil
}
