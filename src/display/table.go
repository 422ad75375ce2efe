// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package display

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	x509tree "github.com/tdslot/cert-tree/src/internal/x509/tree"
)

// Table renders the hierarchy as a formatted markdown table.
//
// It lists every display row with its sequence number, indented subject,
// issuer, expiry date, validity status, and chain completeness, suitable for
// pasting into issue trackers or documentation.
//
// Parameters:
//   - rows: Flattened display rows in pre-order
//
// Returns:
//   - string: Markdown table representation of the hierarchy
func Table(rows []x509tree.Row) string {
	if len(rows) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	// Headers with emojis
	headers := []string{"🔢 #", "📛 Subject", "🏢 Issuer", "📅 Valid Until", "✅ Status", "🔗 Chain"}
	table.Header(headers)

	// Prepare rows
	var cells [][]string
	for _, row := range rows {
		rec := row.Node.Record
		cells = append(cells, []string{
			fmt.Sprintf("%d", row.Seq),
			strings.Repeat("  ", row.Depth) + rec.SubjectCN,
			rec.IssuerCN,
			rec.NotAfter.Format("2006-01-02"),
			row.Node.Status.String(),
			row.Node.ChainStatus.String(),
		})
	}

	table.Bulk(cells)
	table.Render()
	return buf.String()
}
