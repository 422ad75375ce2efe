// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package display_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdslot/cert-tree/src/display"
)

func TestTable_RendersRows(t *testing.T) {
	rows := buildRows(
		record("Root CA", "Root CA", farFuture),
		record("Intermediate", "Root CA", farFuture),
	)

	out := display.Table(rows)

	assert.Contains(t, out, "📛 Subject", "missing subject header")
	assert.Contains(t, out, "✅ Status", "missing status header")
	assert.Contains(t, out, "🔗 Chain", "missing chain header")
	assert.Contains(t, out, "Root CA", "missing root row")
	assert.Contains(t, out, "  Intermediate", "child subject should be indented")
	assert.Contains(t, out, "2046-01-02", "missing expiry date")
	assert.Contains(t, out, "Valid Chain", "missing chain status")
	assert.Contains(t, out, "|", "expected markdown table output")
}

func TestTable_Empty(t *testing.T) {
	assert.Equal(t, "No certificates to display", display.Table(nil), "unexpected empty-table text")
}

type decodedTree struct {
	Timestamp    string `json:"timestamp"`
	Total        int    `json:"total"`
	Certificates []struct {
		Seq             int    `json:"seq"`
		Depth           int    `json:"depth"`
		Subject         string `json:"subject"`
		Issuer          string `json:"issuer"`
		SerialNumber    string `json:"serialNumber"`
		DaysUntilExpiry int    `json:"daysUntilExpiry"`
		Status          string `json:"status"`
		ChainStatus     string `json:"chainStatus"`
	} `json:"certificates"`
	Relationships []struct {
		FromSeq int    `json:"fromSeq"`
		ToSeq   int    `json:"toSeq"`
		Type    string `json:"type"`
	} `json:"relationships"`
}

func TestJSON_Shape(t *testing.T) {
	rows := buildRows(
		record("Root CA", "Root CA", farFuture),
		record("Intermediate", "Root CA", farFuture),
		record("Leaf", "Intermediate", farFuture),
	)

	out, err := display.JSON(rows)
	require.NoError(t, err, "JSON() error")

	var decoded decodedTree
	require.NoError(t, json.Unmarshal(out, &decoded), "output should be valid JSON")

	_, err = time.Parse(time.RFC3339, decoded.Timestamp)
	assert.NoError(t, err, "timestamp should be RFC3339")

	require.Equal(t, 3, decoded.Total, "unexpected total")
	require.Len(t, decoded.Certificates, 3, "unexpected certificate count")

	assert.Equal(t, 1, decoded.Certificates[0].Seq, "unexpected seq for root")
	assert.Equal(t, 0, decoded.Certificates[0].Depth, "unexpected depth for root")
	assert.Equal(t, "Root CA", decoded.Certificates[0].Subject, "unexpected subject for root")
	assert.Equal(t, "Valid", decoded.Certificates[0].Status, "unexpected status for root")
	assert.Equal(t, "Valid Chain", decoded.Certificates[0].ChainStatus, "unexpected chain status for root")
	assert.Positive(t, decoded.Certificates[0].DaysUntilExpiry, "expiry should be in the future")

	assert.Equal(t, 2, decoded.Certificates[1].Seq, "unexpected seq for intermediate")
	assert.Equal(t, 1, decoded.Certificates[1].Depth, "unexpected depth for intermediate")
	assert.Equal(t, 3, decoded.Certificates[2].Seq, "unexpected seq for leaf")
	assert.Equal(t, 2, decoded.Certificates[2].Depth, "unexpected depth for leaf")

	require.Len(t, decoded.Relationships, 2, "unexpected relationship count")
	assert.Equal(t, 2, decoded.Relationships[0].FromSeq, "unexpected first relationship source")
	assert.Equal(t, 1, decoded.Relationships[0].ToSeq, "unexpected first relationship target")
	assert.Equal(t, "signed_by", decoded.Relationships[0].Type, "unexpected relationship type")
	assert.Equal(t, 3, decoded.Relationships[1].FromSeq, "unexpected second relationship source")
	assert.Equal(t, 2, decoded.Relationships[1].ToSeq, "unexpected second relationship target")
}

func TestJSON_SiblingRoots(t *testing.T) {
	rows := buildRows(
		record("Root A", "Root A", farFuture),
		record("Leaf A", "Root A", farFuture),
		record("Root B", "Root B", farFuture),
		record("Leaf B", "Root B", farFuture),
	)

	out, err := display.JSON(rows)
	require.NoError(t, err, "JSON() error")

	var decoded decodedTree
	require.NoError(t, json.Unmarshal(out, &decoded), "output should be valid JSON")

	require.Len(t, decoded.Relationships, 2, "unexpected relationship count")
	assert.Equal(t, 2, decoded.Relationships[0].FromSeq, "leaf A should hang under root A")
	assert.Equal(t, 1, decoded.Relationships[0].ToSeq, "leaf A should hang under root A")
	assert.Equal(t, 4, decoded.Relationships[1].FromSeq, "leaf B should hang under root B")
	assert.Equal(t, 3, decoded.Relationships[1].ToSeq, "leaf B should hang under root B")
}

func TestJSON_Empty(t *testing.T) {
	out, err := display.JSON(nil)
	require.NoError(t, err, "JSON() error")

	var decoded decodedTree
	require.NoError(t, json.Unmarshal(out, &decoded), "output should be valid JSON")

	assert.Zero(t, decoded.Total, "unexpected total")
	assert.Empty(t, decoded.Certificates, "expected no certificates")
	assert.Empty(t, decoded.Relationships, "expected no relationships")
}
