// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tui

import (
	x509tree "github.com/tdslot/cert-tree/src/internal/x509/tree"
)

// defaultPageSize is how many rows PageUp/PageDown jump when the caller
// does not supply a page size.
const defaultPageSize = 10

// Pane identifies which of the two panes receives arrow keys.
type Pane int

const (
	// PaneList routes arrow keys to the certificate list.
	PaneList Pane = iota
	// PaneDetail routes arrow keys to the detail view of the selected certificate.
	PaneDetail
)

// Intent is one abstract keyboard action. The key-to-intent mapping lives in
// the event loop; the state machine only sees intents.
type Intent int

const (
	// IntentNone is an unrecognized key press. It never changes state.
	IntentNone Intent = iota
	// IntentSwitchPane toggles focus between the list and detail panes.
	IntentSwitchPane
	// IntentUp moves the list selection or the detail scroll up by one.
	IntentUp
	// IntentDown moves the list selection or the detail scroll down by one.
	IntentDown
	// IntentPageUp jumps the list selection up by one page.
	IntentPageUp
	// IntentPageDown jumps the list selection down by one page.
	IntentPageDown
	// IntentQuit ends the session.
	IntentQuit
)

// NavState is the navigation state machine for the dual-pane inspector. It
// owns pane focus, the selected row, and both scroll offsets, and mutates
// them one intent at a time. It knows nothing about rendering beyond the
// line count of the selected row's detail content, which it needs to bound
// the detail scroll.
//
// Thread Safety: not safe for concurrent use. The event loop applies one
// intent, renders, then reads the next intent, so nothing else mutates the
// state mid-transition.
type NavState struct {
	rows         []x509tree.Row
	pane         Pane
	selected     int
	listOffset   int
	detailOffset int
	detailLines  int
	pageSize     int
	lineCount    func(x509tree.Row) int
}

// NewNav creates the navigation state for a flattened certificate forest.
// The selection starts on the first row with the list pane focused.
//
// Parameters:
//   - rows: The flattened rows to navigate. The slice is shared, never mutated.
//   - pageSize: Rows jumped by PageUp/PageDown. Values below 1 fall back to 10.
//   - lineCount: Reports how many lines the detail pane renders for a row,
//     used to bound the detail scroll. A nil func means no detail content.
//
// Returns:
//   - The initialized state machine.
func NewNav(rows []x509tree.Row, pageSize int, lineCount func(x509tree.Row) int) *NavState {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if lineCount == nil {
		lineCount = func(x509tree.Row) int { return 0 }
	}
	s := &NavState{rows: rows, pageSize: pageSize, lineCount: lineCount}
	if len(rows) > 0 {
		s.detailLines = lineCount(rows[0])
	}
	return s
}

// Apply runs one state transition and reports whether the session should end.
//
// Every transition is total: out-of-range moves clamp instead of erroring.
// When rows is empty, every intent except IntentQuit is a no-op. Changing the
// selection always resets the detail scroll to the top, and PageUp/PageDown
// only act while the list pane is focused.
func (s *NavState) Apply(intent Intent) bool {
	if intent == IntentQuit {
		return true
	}
	if len(s.rows) == 0 {
		return false
	}

	switch intent {
	case IntentSwitchPane:
		if s.pane == PaneList {
			s.pane = PaneDetail
		} else {
			s.pane = PaneList
		}
	case IntentUp:
		if s.pane == PaneDetail {
			if s.detailOffset > 0 {
				s.detailOffset--
			}
		} else {
			s.moveSelection(-1)
		}
	case IntentDown:
		if s.pane == PaneDetail {
			if s.detailOffset < s.maxDetailOffset() {
				s.detailOffset++
			}
		} else {
			s.moveSelection(1)
		}
	case IntentPageUp:
		if s.pane == PaneList {
			s.moveSelection(-s.pageSize)
		}
	case IntentPageDown:
		if s.pane == PaneList {
			s.moveSelection(s.pageSize)
		}
	}
	return false
}

// EnsureVisible adjusts the list scroll offset so the selected row stays
// inside a window of visible rows. The rendering layer calls it after each
// transition with the current list height.
func (s *NavState) EnsureVisible(visible int) {
	if visible < 1 {
		visible = 1
	}
	if s.selected < s.listOffset {
		s.listOffset = s.selected
	} else if s.selected >= s.listOffset+visible {
		s.listOffset = s.selected - visible + 1
	}
	if s.listOffset < 0 {
		s.listOffset = 0
	}
}

// SetLineCountFunc swaps the detail line counter, recounts the selected
// row's content, and re-clamps the detail scroll. The rendering layer calls
// it when the terminal is resized, since wrapping changes the line count.
func (s *NavState) SetLineCountFunc(lineCount func(x509tree.Row) int) {
	if lineCount == nil {
		return
	}
	s.lineCount = lineCount
	if len(s.rows) == 0 {
		return
	}
	s.detailLines = lineCount(s.rows[s.selected])
	if s.detailOffset > s.maxDetailOffset() {
		s.detailOffset = s.maxDetailOffset()
	}
}

// ActivePane returns the pane currently receiving arrow keys.
func (s *NavState) ActivePane() Pane { return s.pane }

// Selected returns the index of the selected row.
func (s *NavState) Selected() int { return s.selected }

// ListOffset returns the index of the first visible list row.
func (s *NavState) ListOffset() int { return s.listOffset }

// DetailScroll returns how many detail lines are scrolled off the top.
func (s *NavState) DetailScroll() int { return s.detailOffset }

// Rows returns the rows being navigated.
func (s *NavState) Rows() []x509tree.Row { return s.rows }

// Current returns the selected row, or false when there are no rows.
func (s *NavState) Current() (x509tree.Row, bool) {
	if len(s.rows) == 0 {
		return x509tree.Row{}, false
	}
	return s.rows[s.selected], true
}

// moveSelection clamps the selection into range, restarts the detail view at
// the top, and recounts the new row's detail content.
func (s *NavState) moveSelection(delta int) {
	next := s.selected + delta
	if next < 0 {
		next = 0
	}
	if last := len(s.rows) - 1; next > last {
		next = last
	}
	s.selected = next
	s.detailOffset = 0
	s.detailLines = s.lineCount(s.rows[s.selected])
}

// maxDetailOffset is the furthest the detail pane may scroll: the last line
// of the rendered content, never past it.
func (s *NavState) maxDetailOffset() int {
	if s.detailLines <= 0 {
		return 0
	}
	return s.detailLines - 1
}
