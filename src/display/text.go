// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package display

import (
	"fmt"
	"strings"

	"github.com/tdslot/cert-tree/src/internal/helper/gc"
	x509inspect "github.com/tdslot/cert-tree/src/internal/x509/inspect"
	x509tree "github.com/tdslot/cert-tree/src/internal/x509/tree"
)

// dateColumnStart is the fixed column where the status and expiry date begin,
// keeping dates aligned regardless of tree depth.
const dateColumnStart = 78

// Text renders the hierarchy as a colored text tree, one line per display row.
//
// Each line carries the bracketed sequence number, a cascading tree prefix
// (roots get "━ ", children an indented "└ "), the subject common name
// truncated to preserve the date column, and the ANSI-colored validity status
// with the expiry timestamp.
//
// Parameters:
//   - rows: Flattened display rows in pre-order
//
// Returns:
//   - string: The rendered tree, empty for no rows
func Text(rows []x509tree.Row) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, row := range rows {
		writeTextLine(buf, row)
	}

	return buf.String()
}

// writeTextLine renders a single tree row into buf.
func writeTextLine(buf gc.Buffer, row x509tree.Row) {
	prefix := "━ "
	if row.Depth > 0 {
		// 5 spaces base + 4 per depth level
		prefix = strings.Repeat(" ", 5+(row.Depth-1)*4) + "└ "
	}

	available := dateColumnStart - len(prefix) - 5
	name := truncateName(row.Node.Record.SubjectCN, available)

	padding := dateColumnStart - (len(prefix) + len(name))
	if padding < 1 {
		padding = 1 // minimum space
	}

	status, color := statusText(row.Node.Status)

	// White for certificate names, color only the status/date part
	fmt.Fprintf(buf, "\x1b[37m[%d] %s%s%s\x1b[0m%s[%s] [until: %s]\x1b[0m\n",
		row.Seq, prefix, name, strings.Repeat(" ", padding),
		color, status, row.Node.Record.NotAfter.Format(x509inspect.TimeLayout))
}

// truncateName shortens cn so the rendered name fits before the date column.
func truncateName(cn string, available int) string {
	if available < 0 {
		available = 0
	}
	if len(cn) <= available {
		return cn
	}

	truncateLen := available
	if available > 3 {
		truncateLen = available - 3
	}

	runes := []rune(cn)
	if truncateLen > len(runes) {
		truncateLen = len(runes)
	}

	return string(runes[:truncateLen]) + "..."
}

// statusText maps a validity status onto its text-tree label and ANSI color.
func statusText(status x509inspect.Status) (text, color string) {
	switch status {
	case x509inspect.StatusExpired:
		return "EXPIRED", "\x1b[31m" // Red
	case x509inspect.StatusExpiringSoon:
		return "EXPIRES SOON", "\x1b[33m" // Yellow
	default:
		return "VALID", "\x1b[32m" // Green
	}
}
