// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
	pkcs12 "software.sslmate.com/src/go-pkcs12"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrPKCS12Password indicates the PKCS12 data could not be decrypted with the given password.
	ErrPKCS12Password = errors.New("x509certs: incorrect PKCS12 password")

	// ErrNoCertificates indicates that the input held no certificates at all.
	ErrNoCertificates = errors.New("x509certs: no certificates found")

	// ErrUnknownFormat indicates the input matched none of the supported formats.
	ErrUnknownFormat = errors.New("x509certs: data is not PEM, DER, PKCS7, or PKCS12")
)

// Certificate provides methods to decode [X.509] certificates from the
// formats the inspector accepts. It maintains internal configuration such
// as the certificate block type.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes a PEM block and checks its type.
func (c *Certificate) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != c.certBlockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// DecodeMultiple decodes one or more certificates from PEM or concatenated DER data.
func (c *Certificate) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	if c.IsPEM(data) {
		var certs []*x509.Certificate

		for len(data) > 0 {
			block, rest := pem.Decode(data)
			if block == nil {
				break
			}
			if block.Type != c.certBlockType {
				return nil, ErrInvalidBlockType
			}

			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, ErrParseCertificate
			}

			certs = append(certs, cert)
			data = rest
		}

		return certs, nil
	}

	certs, err := x509.ParseCertificates(data)
	if err != nil {
		return nil, ErrParseCertificate
	}

	return certs, nil
}

// Decode decodes a single certificate from data.
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		block, err := c.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}

		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// DecodeBundle decodes every certificate in data, accepting PEM bundles,
// concatenated DER, PKCS7 blobs, and PKCS12 archives. Formats are probed in
// that order; the password is only consulted for PKCS12 input.
//
// Parameters:
//   - data: The raw input bytes, typically a whole file.
//   - password: The PKCS12 import password. Pass an empty string for the
//     other formats, or for PKCS12 archives protected by an empty password.
//
// Returns:
//   - Every certificate found, in input order. PKCS12 archives yield the
//     leaf certificate first, followed by its CA certificates.
//   - An error when no format matches or the input holds no certificates.
func (c *Certificate) DecodeBundle(data []byte, password string) ([]*x509.Certificate, error) {
	if c.IsPEM(data) {
		certs, err := c.DecodeMultiple(data)
		if err != nil {
			return nil, err
		}
		if len(certs) == 0 {
			return nil, ErrNoCertificates
		}
		return certs, nil
	}

	if certs, err := x509.ParseCertificates(data); err == nil && len(certs) > 0 {
		return certs, nil
	}

	if p, err := pkcs7.ParsePKCS7(data); err == nil {
		if len(p.Content.SignedData.Certificates) == 0 {
			return nil, ErrNoCertificatesInPKCS
		}
		return p.Content.SignedData.Certificates, nil
	}

	return c.decodePKCS12(data, password)
}

// decodePKCS12 extracts the certificate chain from a PKCS12 archive, trying
// the keyed chain layout first and falling back to a cert-only trust store.
func (c *Certificate) decodePKCS12(data []byte, password string) ([]*x509.Certificate, error) {
	_, leaf, caCerts, err := pkcs12.DecodeChain(data, password)
	if err == nil {
		return append([]*x509.Certificate{leaf}, caCerts...), nil
	}
	if errors.Is(err, pkcs12.ErrIncorrectPassword) {
		return nil, ErrPKCS12Password
	}

	certs, err := pkcs12.DecodeTrustStore(data, password)
	if err != nil {
		if errors.Is(err, pkcs12.ErrIncorrectPassword) {
			return nil, ErrPKCS12Password
		}
		return nil, ErrUnknownFormat
	}
	if len(certs) == 0 {
		return nil, ErrNoCertificates
	}
	return certs, nil
}
