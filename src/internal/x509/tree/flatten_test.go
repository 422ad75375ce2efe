// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree_test

import (
	"testing"

	x509inspect "github.com/tdslot/cert-tree/src/internal/x509/inspect"
	x509tree "github.com/tdslot/cert-tree/src/internal/x509/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_PreOrder(t *testing.T) {
	forest := x509tree.Build([]x509inspect.Record{
		record("Alpha Root", "Alpha Root"),
		record("alpha-child-one", "Alpha Root"),
		record("alpha-grandchild", "alpha-child-one"),
		record("alpha-child-two", "Alpha Root"),
		record("Beta Root", "Beta Root"),
		record("beta-child", "Beta Root"),
	}, x509tree.WithNow(testNow))

	rows := x509tree.Flatten(forest)
	require.Len(t, rows, 6)

	want := []struct {
		subject string
		depth   int
		seq     int
	}{
		{"Alpha Root", 0, 1},
		{"alpha-child-one", 1, 2},
		{"alpha-grandchild", 2, 3},
		{"alpha-child-two", 1, 4},
		{"Beta Root", 0, 5},
		{"beta-child", 1, 6},
	}

	for i, w := range want {
		assert.Equal(t, w.subject, rows[i].Node.Record.SubjectCN, "row %d subject", i)
		assert.Equal(t, w.depth, rows[i].Depth, "row %d depth", i)
		assert.Equal(t, w.seq, rows[i].Seq, "row %d seq", i)
	}
}

func TestFlatten_Idempotent(t *testing.T) {
	forest := x509tree.Build([]x509inspect.Record{
		record("Root CA", "Root CA"),
		record("Intermediate CA", "Root CA"),
		record("leaf.example.com", "Intermediate CA"),
	}, x509tree.WithNow(testNow))

	first := x509tree.Flatten(forest)
	second := x509tree.Flatten(forest)

	assert.Equal(t, first, second, "flattening the same forest twice must give identical rows")
}

func TestFlatten_SequenceContiguous(t *testing.T) {
	// Duplicates, an orphan, and a loop together still yield one row per
	// input record, numbered 1..n without gaps.
	forest := x509tree.Build([]x509inspect.Record{
		record("Shared CA", "Shared CA"),
		record("Shared CA", "Shared CA"),
		record("orphan.example.com", "Missing CA"),
		record("Loop A", "Loop B"),
		record("Loop B", "Loop A"),
	}, x509tree.WithNow(testNow))

	rows := x509tree.Flatten(forest)
	require.Len(t, rows, 5, "row count must match input record count")

	for i, row := range rows {
		assert.Equal(t, i+1, row.Seq, "sequence numbers must be contiguous from 1")
		assert.NotNil(t, row.Node)
	}
}

func TestFlatten_Empty(t *testing.T) {
	rows := x509tree.Flatten(&x509tree.Forest{})
	assert.Empty(t, rows)
}

func TestForestLen_MatchesFlatten(t *testing.T) {
	forest := x509tree.Build([]x509inspect.Record{
		record("Root CA", "Root CA"),
		record("a", "Root CA"),
		record("b", "Root CA"),
		record("c", "b"),
	}, x509tree.WithNow(testNow))

	assert.Equal(t, forest.Len(), len(x509tree.Flatten(forest)))
	assert.Equal(t, 4, forest.Len())
}
