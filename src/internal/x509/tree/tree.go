// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import (
	"time"

	x509inspect "github.com/tdslot/cert-tree/src/internal/x509/inspect"
)

// ChainStatus records whether a node's issuer link was resolved during
// tree construction.
type ChainStatus int

const (
	// ChainComplete is the zero value: the node is a self-signed root or a
	// child whose issuer key matched its parent's subject key.
	ChainComplete ChainStatus = iota
	// ChainIncomplete marks a root whose issuer was not found among the
	// input records.
	ChainIncomplete
)

// String returns the plain name of the chain status.
func (c ChainStatus) String() string {
	if c == ChainIncomplete {
		return "Invalid Chain"
	}
	return "Valid Chain"
}

// Label returns the chain status prefixed with its marker glyph, as shown
// in detail views.
func (c ChainStatus) Label() string {
	if c == ChainIncomplete {
		return "✗ Invalid Chain"
	}
	return "✓ Valid Chain"
}

// Node is one certificate in the display hierarchy. Status and ChainStatus
// are assigned once at build time and never recomputed.
type Node struct {
	Record      x509inspect.Record
	Children    []*Node
	Status      x509inspect.Status
	ChainStatus ChainStatus
}

// Forest is the set of root nodes produced by Build, in input order.
type Forest struct {
	Roots []*Node
}

// Walk visits every node in depth-first pre-order, passing each node's depth.
// Depth 0 is a root.
func (f *Forest) Walk(fn func(n *Node, depth int)) {
	for _, root := range f.Roots {
		walkNode(root, 0, fn)
	}
}

// Len returns the total number of nodes in the forest.
func (f *Forest) Len() int {
	total := 0
	f.Walk(func(*Node, int) { total++ })
	return total
}

func walkNode(n *Node, depth int, fn func(*Node, int)) {
	fn(n, depth)
	for _, child := range n.Children {
		walkNode(child, depth+1, fn)
	}
}

// Option configures Build.
type Option func(*builder)

// WithNow fixes the evaluation time used for validity classification.
// The default is time.Now at the moment Build runs.
func WithNow(now time.Time) Option {
	return func(b *builder) { b.now = now }
}

// WithWarnWindow overrides the remaining-validity window reported as
// expiring soon. The default is [x509inspect.DefaultWarnWindow].
func WithWarnWindow(d time.Duration) Option {
	return func(b *builder) { b.warnWindow = d }
}

type builder struct {
	now        time.Time
	warnWindow time.Duration
}

// Build arranges records into a forest of certificate hierarchies.
//
// Matching works in two passes. The first indexes records by subject key;
// when several records share a key, the last one wins the index slot and
// becomes the parent candidate for that name. The second resolves each
// record's issuer key against the index, excluding the record itself.
// Self-signed records never get a parent. Records with no resolved parent
// become roots in input order, and issuer loops are broken by promoting
// their first record to a root, so every input record appears in the
// forest exactly once.
//
// Each node is classified independently against the evaluation time; a
// parent's validity says nothing about its children.
//
// Parameters:
//   - records: The certificate records to arrange, in display order.
//   - opts: Optional evaluation time and warning window overrides.
//
// Returns:
//   - A Forest holding every input record. Never nil.
func Build(records []x509inspect.Record, opts ...Option) *Forest {
	b := &builder{
		now:        time.Now(),
		warnWindow: x509inspect.DefaultWarnWindow,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b.build(records)
}

func (b *builder) build(records []x509inspect.Record) *Forest {
	// Pass one: index by subject key, last record wins. Records without a
	// subject key cannot be matched as parents.
	bySubject := make(map[string]int, len(records))
	for i, rec := range records {
		if rec.SubjectCN == "" {
			continue
		}
		bySubject[rec.SubjectCN] = i
	}

	nodes := make([]*Node, len(records))
	for i, rec := range records {
		nodes[i] = &Node{
			Record: rec,
			Status: x509inspect.Classify(rec.NotAfter, b.now, b.warnWindow),
		}
	}

	// Pass two: resolve each record's parent position. A record never
	// parents itself, and self-signed records are always roots.
	parent := make([]int, len(records))
	for i, rec := range records {
		parent[i] = -1
		if rec.IsSelfSigned() {
			continue
		}
		if j, ok := bySubject[rec.IssuerCN]; ok && j != i {
			parent[i] = j
		}
	}

	placed := make([]bool, len(records))

	// attach claims a node and collects its children in input order. The
	// placed guard stops issuer loops from recursing forever.
	var attach func(idx int) *Node
	attach = func(idx int) *Node {
		placed[idx] = true
		node := nodes[idx]
		for i, p := range parent {
			if p == idx && !placed[i] {
				node.Children = append(node.Children, attach(i))
			}
		}
		return node
	}

	forest := &Forest{}

	for i := range nodes {
		if parent[i] == -1 {
			forest.Roots = append(forest.Roots, attach(i))
		}
	}

	// Anything still unplaced sits on an issuer loop. Promote the earliest
	// record of each loop so the whole input stays visible.
	for i := range nodes {
		if !placed[i] {
			forest.Roots = append(forest.Roots, attach(i))
		}
	}

	// Roots close their chain only when self-signed; promoted orphans and
	// loop members keep an incomplete status. Children matched their parent
	// by construction and keep the complete zero value.
	for _, root := range forest.Roots {
		if !root.Record.IsSelfSigned() {
			root.ChainStatus = ChainIncomplete
		}
	}

	return forest
}
