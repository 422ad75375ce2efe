// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	x509inspect "github.com/tdslot/cert-tree/src/internal/x509/inspect"
	x509tree "github.com/tdslot/cert-tree/src/internal/x509/tree"
)

// Detail field styles on the basic ANSI palette, so the inspector follows
// the user's terminal theme.
var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	magentaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// statusStyle colors a validity status: green valid, yellow expiring, red expired.
func statusStyle(status x509inspect.Status) lipgloss.Style {
	switch status {
	case x509inspect.StatusExpired:
		return redStyle
	case x509inspect.StatusExpiringSoon:
		return yellowStyle
	default:
		return greenStyle
	}
}

// chainStyle colors a chain status: green complete, red incomplete.
func chainStyle(status x509tree.ChainStatus) lipgloss.Style {
	if status == x509tree.ChainIncomplete {
		return redStyle
	}
	return greenStyle
}

// detailLines renders the detail pane content for one row, one styled string
// per line, soft-wrapped to the given width. The same function feeds both the
// viewport content and the navigation scroll bound, so the two never disagree
// on how many lines the pane holds. A width of zero skips wrapping.
func detailLines(row x509tree.Row, width int) []string {
	rec := row.Node.Record

	lines := []string{
		labelStyle.Render("Subject: ") + valueStyle.Render(rec.Subject),
		labelStyle.Render("Issuer: ") + valueStyle.Render(rec.Issuer),
		labelStyle.Render("Serial Number: ") + valueStyle.Render(rec.SerialText()),
		labelStyle.Render("Validity Period: ") + valueStyle.Render(rec.NotBefore.Format(x509inspect.TimeLayout)) +
			" → " + valueStyle.Render(rec.NotAfter.Format(x509inspect.TimeLayout)),
		labelStyle.Render("Status: ") + statusStyle(row.Node.Status).Render(row.Node.Status.Label()),
		labelStyle.Render("Chain Validation: ") + chainStyle(row.Node.ChainStatus).Render(row.Node.ChainStatus.Label()),
		labelStyle.Render("Version: ") + valueStyle.Render(strconv.Itoa(rec.Version)),
		labelStyle.Render("Public Key Algorithm: ") + greenStyle.Render(rec.PublicKeyAlgorithm),
		labelStyle.Render("Signature Algorithm: ") + greenStyle.Render(x509inspect.ExplainSignatureAlgorithm(rec.SignatureAlgorithm)),
		labelStyle.Render("Is CA: ") + caStyle(rec.IsCA).Render(strconv.FormatBool(rec.IsCA)),
	}

	if rec.KeyUsage != "" {
		lines = append(lines, labelStyle.Render("Key Usage: ")+magentaStyle.Render(rec.KeyUsage))
	}
	if len(rec.SubjectAltNames) > 0 {
		lines = append(lines, labelStyle.Render("Subject Alternative Names: ")+
			cyanStyle.Render(strings.Join(rec.SubjectAltNames, ", ")))
	}
	if len(rec.Extensions) > 0 {
		lines = append(lines, labelStyle.Render("Extensions:"))
		for _, ext := range rec.Extensions {
			criticality, style := "non-critical", greenStyle
			if ext.Critical {
				criticality, style = "critical", redStyle
			}
			lines = append(lines, "  "+cyanStyle.Render(ext.Name)+" ("+style.Render(criticality)+")")
		}
	}

	if width > 0 {
		return wrapLines(lines, width)
	}
	return lines
}

// caStyle highlights CA certificates in yellow.
func caStyle(isCA bool) lipgloss.Style {
	if isCA {
		return yellowStyle
	}
	return valueStyle
}

// wrapLines soft-wraps each styled line at width, splitting the result back
// into individual rendered lines.
func wrapLines(lines []string, width int) []string {
	wrap := lipgloss.NewStyle().Width(width)
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped = append(wrapped, strings.Split(wrap.Render(line), "\n")...)
	}
	return wrapped
}
