// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

// Row is one line of the flattened forest: a node together with its depth and
// its 1-based sequence number in visit order.
type Row struct {
	Node  *Node
	Depth int
	Seq   int
}

// Flatten serializes the forest into depth-first pre-order rows: each root in
// input order, immediately followed by its subtree. Sequence numbers start at
// 1 and are contiguous, so the same forest always flattens to the same rows.
func Flatten(f *Forest) []Row {
	rows := make([]Row, 0, f.Len())
	f.Walk(func(n *Node, depth int) {
		rows = append(rows, Row{Node: n, Depth: depth, Seq: len(rows) + 1})
	})
	return rows
}
