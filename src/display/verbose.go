// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package display

import (
	"fmt"

	"github.com/tdslot/cert-tree/src/internal/helper/gc"
	x509inspect "github.com/tdslot/cert-tree/src/internal/x509/inspect"
)

// Verbose renders a field-per-line report for a single certificate.
//
// Key usage and subject alternative names only appear when the certificate
// carries them; the extension listing includes criticality and a value
// preview.
//
// Parameters:
//   - rec: The certificate record to report
//
// Returns:
//   - string: The rendered report, terminated by a newline
func Verbose(rec x509inspect.Record) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString("Certificate Information:\n")
	buf.WriteString("======================\n")
	fmt.Fprintf(buf, "CN: %s\n", rec.SubjectCN)
	fmt.Fprintf(buf, "Issuer: %s\n", rec.Issuer)
	fmt.Fprintf(buf, "Serial Number: %s\n", rec.SerialText())
	buf.WriteString("Validity:\n")
	fmt.Fprintf(buf, "  Not Before: %s\n", rec.NotBefore.Format(x509inspect.TimeLayout))
	fmt.Fprintf(buf, "  Not After: %s\n", rec.NotAfter.Format(x509inspect.TimeLayout))
	fmt.Fprintf(buf, "Public Key Algorithm: %s\n", rec.PublicKeyAlgorithm)
	fmt.Fprintf(buf, "Signature Algorithm: %s\n", rec.SignatureAlgorithm)
	fmt.Fprintf(buf, "Version: %d\n", rec.Version)
	fmt.Fprintf(buf, "Is CA: %t\n", rec.IsCA)

	if rec.KeyUsage != "" {
		fmt.Fprintf(buf, "Key Usage: %s\n", rec.KeyUsage)
	}

	if len(rec.SubjectAltNames) > 0 {
		buf.WriteString("Subject Alternative Names:\n")
		for _, san := range rec.SubjectAltNames {
			fmt.Fprintf(buf, "  %s\n", san)
		}
	}

	buf.WriteString("Extensions:\n")
	for _, ext := range rec.Extensions {
		criticality := "non-critical"
		if ext.Critical {
			criticality = "critical"
		}
		fmt.Fprintf(buf, "  %s (%s) - %s\n", ext.Name, criticality, ext.Value)
	}

	return buf.String()
}
