// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inspect

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// TimeLayout is the timestamp layout shared by the text, table, and detail renderers.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultWarnWindow is the remaining validity below which a certificate is
// reported as expiring soon.
const DefaultWarnWindow = 30 * 24 * time.Hour

// Status classifies the validity of a certificate at a point in time.
type Status int

const (
	// StatusValid means the certificate expires after the warning window.
	StatusValid Status = iota
	// StatusExpiringSoon means the certificate expires within the warning window.
	StatusExpiringSoon
	// StatusExpired means the certificate's NotAfter is in the past.
	StatusExpired
)

// String returns the plain name of the status.
func (s Status) String() string {
	switch s {
	case StatusExpired:
		return "Expired"
	case StatusExpiringSoon:
		return "Expiring Soon"
	default:
		return "Valid"
	}
}

// Label returns the status prefixed with its marker glyph, as shown in detail views.
func (s Status) Label() string {
	switch s {
	case StatusExpired:
		return "✗ Expired"
	case StatusExpiringSoon:
		return "⚠ Expiring Soon"
	default:
		return "✓ Valid"
	}
}

// Classify reports the validity status of a certificate expiring at notAfter,
// evaluated at now.
//
// A certificate is expired once now is past notAfter. It is expiring soon when
// the remaining validity is within warnWindow, including the exact moment of
// expiry. Everything else is valid.
//
// Parameters:
//   - notAfter: The certificate's expiry timestamp.
//   - now: The evaluation time.
//   - warnWindow: The remaining-validity window reported as expiring soon.
//
// Returns:
//   - Exactly one of StatusValid, StatusExpiringSoon, or StatusExpired.
func Classify(notAfter, now time.Time, warnWindow time.Duration) Status {
	remaining := notAfter.Sub(now)
	switch {
	case remaining < 0:
		return StatusExpired
	case remaining <= warnWindow:
		return StatusExpiringSoon
	default:
		return StatusValid
	}
}

// Extension describes a single X.509 extension in display form.
type Extension struct {
	// OID is the dotted object identifier, e.g. "2.5.29.15".
	OID string
	// Name is the human-readable extension name, or the dotted OID when unknown.
	Name string
	// Critical mirrors the extension's critical flag.
	Critical bool
	// Value is a truncated hex preview of the raw DER value.
	Value string
}

// Record is a display-oriented summary of one certificate. All fields are plain
// values, so a Record stays usable after the parsed certificate is gone.
//
// SubjectCN and IssuerCN are the hierarchy matching keys: the common name when
// the distinguished name carries one, otherwise the full distinguished name.
type Record struct {
	Subject            string
	Issuer             string
	SubjectCN          string
	IssuerCN           string
	Serial             []byte
	NotBefore          time.Time
	NotAfter           time.Time
	PublicKeyAlgorithm string
	SignatureAlgorithm string
	Version            int
	IsCA               bool
	KeyUsage           string
	SubjectAltNames    []string
	Extensions         []Extension
}

// Summarize extracts a Record from a parsed certificate.
//
// Parameters:
//   - cert: The parsed certificate to summarize.
//
// Returns:
//   - A Record holding normalized display fields for the certificate.
func Summarize(cert *x509.Certificate) Record {
	rec := Record{
		Subject:            cert.Subject.String(),
		Issuer:             cert.Issuer.String(),
		SubjectCN:          commonName(cert.Subject),
		IssuerCN:           commonName(cert.Issuer),
		Serial:             cert.SerialNumber.Bytes(),
		NotBefore:          cert.NotBefore,
		NotAfter:           cert.NotAfter,
		PublicKeyAlgorithm: publicKeyAlgorithm(cert),
		SignatureAlgorithm: signatureAlgorithmName(cert.SignatureAlgorithm),
		Version:            cert.Version,
		IsCA:               cert.IsCA,
		KeyUsage:           keyUsageText(cert.KeyUsage),
		SubjectAltNames:    subjectAltNames(cert),
	}

	rec.Extensions = make([]Extension, 0, len(cert.Extensions))
	for _, ext := range cert.Extensions {
		oid := ext.Id.String()
		rec.Extensions = append(rec.Extensions, Extension{
			OID:      oid,
			Name:     ExtensionName(oid),
			Critical: ext.Critical,
			Value:    extensionPreview(ext.Value),
		})
	}

	return rec
}

// IsSelfSigned reports whether the record's subject and issuer matching keys are
// equal. This is a plain string comparison; no signature verification is involved.
func (r Record) IsSelfSigned() bool {
	return r.SubjectCN == r.IssuerCN
}

// SerialText renders the serial number as lowercase hex pairs separated by
// spaces, e.g. "0a 1b 2c". An odd-length hex string leaves a single trailing
// digit, matching the %x rendering of the underlying integer.
func (r Record) SerialText() string {
	hexStr := fmt.Sprintf("%x", new(big.Int).SetBytes(r.Serial))

	var b strings.Builder
	for i := 0; i < len(hexStr); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 2
		if end > len(hexStr) {
			end = len(hexStr)
		}
		b.WriteString(hexStr[i:end])
	}
	return b.String()
}

// DaysUntilExpiry returns the number of whole days from now until NotAfter.
// The count is negative once the certificate has expired.
func (r Record) DaysUntilExpiry(now time.Time) int {
	return int(r.NotAfter.Sub(now).Hours() / 24)
}

// commonName returns the matching key for a distinguished name: the common
// name when present, otherwise the full DN string.
func commonName(name pkix.Name) string {
	if name.CommonName != "" {
		return name.CommonName
	}
	return name.String()
}

// subjectAltNames flattens every SAN variant into one string list.
func subjectAltNames(cert *x509.Certificate) []string {
	var sans []string
	sans = append(sans, cert.DNSNames...)
	sans = append(sans, cert.EmailAddresses...)
	for _, ip := range cert.IPAddresses {
		sans = append(sans, ip.String())
	}
	for _, uri := range cert.URIs {
		sans = append(sans, uri.String())
	}
	return sans
}

var keyUsageNames = []struct {
	bit  x509.KeyUsage
	name string
}{
	{x509.KeyUsageDigitalSignature, "Digital Signature"},
	{x509.KeyUsageContentCommitment, "Content Commitment"},
	{x509.KeyUsageKeyEncipherment, "Key Encipherment"},
	{x509.KeyUsageDataEncipherment, "Data Encipherment"},
	{x509.KeyUsageKeyAgreement, "Key Agreement"},
	{x509.KeyUsageCertSign, "Certificate Signing"},
	{x509.KeyUsageCRLSign, "CRL Signing"},
	{x509.KeyUsageEncipherOnly, "Encipher Only"},
	{x509.KeyUsageDecipherOnly, "Decipher Only"},
}

// keyUsageText joins the set key usage bits into a comma-separated list.
// It returns an empty string when the certificate carries no key usage.
func keyUsageText(ku x509.KeyUsage) string {
	if ku == 0 {
		return ""
	}

	names := make([]string, 0, len(keyUsageNames))
	for _, entry := range keyUsageNames {
		if ku&entry.bit != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, ", ")
}

// extValuePreview caps how many raw DER bytes of an extension value are shown.
const extValuePreview = 24

func extensionPreview(der []byte) string {
	if len(der) <= extValuePreview {
		return hex.EncodeToString(der)
	}
	return hex.EncodeToString(der[:extValuePreview]) + "..."
}
