// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package display

import (
	"encoding/json"
	"time"

	x509tree "github.com/tdslot/cert-tree/src/internal/x509/tree"
)

// JSON converts the hierarchy to structured JSON for external tools.
//
// It creates a data structure covering certificate details, pre-order
// positions, and issuer relationships suitable for visualization tools or
// programmatic processing. Relationships point from each certificate to the
// display row it hangs under.
//
// Parameters:
//   - rows: Flattened display rows in pre-order
//
// Returns:
//   - []byte: JSON representation of the hierarchy
//   - error: Error if JSON marshaling fails
func JSON(rows []x509tree.Row) ([]byte, error) {
	type CertificateData struct {
		Seq                int       `json:"seq"`
		Depth              int       `json:"depth"`
		Subject            string    `json:"subject"`
		Issuer             string    `json:"issuer"`
		SerialNumber       string    `json:"serialNumber"`
		SignatureAlgorithm string    `json:"signatureAlgorithm"`
		PublicKeyAlgorithm string    `json:"publicKeyAlgorithm"`
		NotBefore          time.Time `json:"notBefore"`
		NotAfter           time.Time `json:"notAfter"`
		DaysUntilExpiry    int       `json:"daysUntilExpiry"`
		IsCA               bool      `json:"isCA"`
		Status             string    `json:"status"`
		ChainStatus        string    `json:"chainStatus"`
	}

	type RelationshipData struct {
		FromSeq int    `json:"fromSeq"`
		ToSeq   int    `json:"toSeq"`
		Type    string `json:"type"`
	}

	type TreeData struct {
		Timestamp     string             `json:"timestamp"`
		Total         int                `json:"total"`
		Certificates  []CertificateData  `json:"certificates"`
		Relationships []RelationshipData `json:"relationships"`
	}

	now := time.Now().UTC()

	data := TreeData{
		Timestamp:     now.Format(time.RFC3339),
		Total:         len(rows),
		Certificates:  make([]CertificateData, len(rows)),
		Relationships: make([]RelationshipData, 0, len(rows)),
	}

	// Seq of the most recent row at each depth, for parent lookup
	parents := make([]int, 0, 8)

	for i, row := range rows {
		rec := row.Node.Record
		data.Certificates[i] = CertificateData{
			Seq:                row.Seq,
			Depth:              row.Depth,
			Subject:            rec.SubjectCN,
			Issuer:             rec.IssuerCN,
			SerialNumber:       rec.SerialText(),
			SignatureAlgorithm: rec.SignatureAlgorithm,
			PublicKeyAlgorithm: rec.PublicKeyAlgorithm,
			NotBefore:          rec.NotBefore,
			NotAfter:           rec.NotAfter,
			DaysUntilExpiry:    rec.DaysUntilExpiry(now),
			IsCA:               rec.IsCA,
			Status:             row.Node.Status.String(),
			ChainStatus:        row.Node.ChainStatus.String(),
		}

		if row.Depth < len(parents) {
			parents = parents[:row.Depth]
		}
		if row.Depth > 0 && len(parents) >= row.Depth {
			data.Relationships = append(data.Relationships, RelationshipData{
				FromSeq: row.Seq,
				ToSeq:   parents[row.Depth-1],
				Type:    "signed_by",
			})
		}
		parents = append(parents, row.Seq)
	}

	return json.MarshalIndent(data, "", "  ")
}
