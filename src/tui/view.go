// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	x509inspect "github.com/tdslot/cert-tree/src/internal/x509/inspect"
	x509tree "github.com/tdslot/cert-tree/src/internal/x509/tree"
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	highlightStyle = lipgloss.NewStyle().Bold(true)

	activeBorderColor   = lipgloss.Color("3")
	inactiveBorderColor = lipgloss.Color("7")
)

// View implements tea.Model, composing the four panes top to bottom. The
// focused pane gets a yellow border and an activity hint in its title.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	listHeight, detailHeight := m.paneHeights()

	listTitle := "Certificates (Press Tab to activate)"
	detailTitle := "Certificate Details (Press Tab to activate)"
	if m.nav.ActivePane() == PaneList {
		listTitle = "Certificates (Active - Use ↑/↓/PgUp/PgDn to navigate)"
	} else {
		detailTitle = "Certificate Details (Active - Use ↑/↓ to scroll)"
	}

	sections := []string{
		pane("cert-tree", m.titleLine(), m.width, 3, false),
		pane(listTitle, m.listView(contentWidth(m.width), listHeight-2), m.width, listHeight, m.nav.ActivePane() == PaneList),
		pane(detailTitle, m.detail.View(), m.width, detailHeight, m.nav.ActivePane() == PaneDetail),
		pane("", footerStyle.Render(m.footerText()), m.width, 3, false),
	}
	return strings.Join(sections, "\n")
}

// titleLine renders the application name with the version right-aligned
// toward the pane's right edge.
func (m Model) titleLine() string {
	pad := m.width - 35
	if pad < len(m.version) {
		pad = len(m.version)
	}
	return titleStyle.Render(fmt.Sprintf("🔐 Certificate Chain Inspector%*s", pad, m.version))
}

func (m Model) footerText() string {
	if m.nav.ActivePane() == PaneDetail {
		return "Tab: Deactivate Details | ↑/↓: Scroll Details | PgUp/PgDn: Navigate List | 'q' Quit | 't' Text Mode"
	}
	return "↑/↓/PgUp/PgDn: Navigate List | Tab: Activate Details | 'q' Quit | 't' Text Mode"
}

// listView renders the visible window of certificate rows: a highlighted
// selection marker, the sequence-numbered name column, and a right-aligned
// expiry date colored by validity.
func (m Model) listView(innerWidth, visibleRows int) string {
	rows := m.nav.Rows()
	if len(rows) == 0 {
		return "No certificates loaded"
	}

	layout, dateWidth := adaptiveDateLayout(m.width)
	nameWidth := innerWidth - (dateWidth + 2 + 3 + 4)
	if nameWidth < 8 {
		nameWidth = 8
	}

	start := m.nav.ListOffset()
	end := start + visibleRows
	if end > len(rows) {
		end = len(rows)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, listItem(rows[i], i == m.nav.Selected(), nameWidth, layout, dateWidth))
	}
	return strings.Join(lines, "\n")
}

// listItem renders one list row. The name column is the bracketed sequence
// number plus the depth-indented common name, truncated to fit; the date
// column is right-aligned and colored by the row's validity status.
func listItem(row x509tree.Row, selected bool, nameWidth int, layout string, dateWidth int) string {
	name := fmt.Sprintf("[%d] %s%s", row.Seq, strings.Repeat("  ", row.Depth), row.Node.Record.SubjectCN)
	name = truncateListName(name, nameWidth)

	date := row.Node.Record.NotAfter.Format(layout)
	if len(date) > dateWidth {
		dateWidth = len(date)
	}

	prefix := "   "
	nameStyle, dateStyle := valueStyle, statusStyle(row.Node.Status)
	if selected {
		prefix = highlightStyle.Render(">> ")
		nameStyle = nameStyle.Bold(true)
		dateStyle = dateStyle.Bold(true)
	}

	return prefix +
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)) +
		dateStyle.Render(fmt.Sprintf("%*s", dateWidth, date)) +
		"   "
}

// adaptiveDateLayout picks the expiry timestamp layout for the list column:
// narrower terminals drop the year, then the seconds.
func adaptiveDateLayout(width int) (layout string, dateWidth int) {
	switch {
	case width < 80:
		return "01-02 15:04", 11
	case width < 100:
		return "2006-01-02 15:04", 16
	default:
		return x509inspect.TimeLayout, 19
	}
}

// truncateListName fits a list name into width display cells. The byte-length
// check errs toward truncating multibyte names early rather than overflowing
// the column, and very narrow columns drop the ellipsis to keep at least some
// of the name visible.
func truncateListName(name string, width int) string {
	if len(name) <= width {
		return name
	}
	runes := []rune(name)
	keep := width
	suffix := ""
	if width > 3 {
		keep = width - 3
		suffix = "..."
	}
	if keep > len(runes) {
		keep = len(runes)
	}
	return string(runes[:keep]) + suffix
}

// pane draws a bordered box with the title embedded in the top border, the
// way classic terminal UIs label their frames.
func pane(title, content string, width, height int, active bool) string {
	inner := contentWidth(width)
	rows := height - 2
	if rows < 1 {
		rows = 1
	}

	color := inactiveBorderColor
	if active {
		color = activeBorderColor
	}
	border := lipgloss.NormalBorder()
	edge := lipgloss.NewStyle().Foreground(color)

	if lipgloss.Width(title) > inner {
		title = string([]rune(title)[:inner])
	}
	fill := inner - lipgloss.Width(title)
	if fill < 0 {
		fill = 0
	}
	top := edge.Render(border.TopLeft) + title + edge.Render(strings.Repeat(border.Top, fill)) + edge.Render(border.TopRight)

	body := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(color).
		Width(inner).
		Height(rows).
		Render(content)

	return top + "\n" + body
}
