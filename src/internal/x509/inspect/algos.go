// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inspect

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"strings"
)

// publicKeyAlgorithm renders the public key algorithm with its key parameter:
// modulus size for RSA, curve name for ECDSA.
func publicKeyAlgorithm(cert *x509.Certificate) string {
	switch pub := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return fmt.Sprintf("RSA (%d bits)", pub.Size()*8)
	case *ecdsa.PublicKey:
		if name := pub.Curve.Params().Name; name != "" {
			return fmt.Sprintf("ECDSA (%s)", name)
		}
		return "ECDSA"
	case ed25519.PublicKey:
		return "Ed25519"
	}

	switch cert.PublicKeyAlgorithm {
	case x509.DSA:
		return "DSA"
	case x509.UnknownPublicKeyAlgorithm:
		return "Unknown"
	}
	return cert.PublicKeyAlgorithm.String()
}

var signatureAlgorithmNames = map[x509.SignatureAlgorithm]string{
	x509.MD5WithRSA:       "RSA with MD5",
	x509.SHA1WithRSA:      "SHA1 with RSA",
	x509.SHA256WithRSA:    "SHA256 with RSA",
	x509.SHA384WithRSA:    "SHA384 with RSA",
	x509.SHA512WithRSA:    "SHA512 with RSA",
	x509.SHA256WithRSAPSS: "SHA256 with RSA-PSS",
	x509.SHA384WithRSAPSS: "SHA384 with RSA-PSS",
	x509.SHA512WithRSAPSS: "SHA512 with RSA-PSS",
	x509.ECDSAWithSHA1:    "SHA1 with ECDSA",
	x509.ECDSAWithSHA256:  "SHA256 with ECDSA",
	x509.ECDSAWithSHA384:  "SHA384 with ECDSA",
	x509.ECDSAWithSHA512:  "SHA512 with ECDSA",
	x509.DSAWithSHA1:      "SHA1 with DSA",
	x509.DSAWithSHA256:    "SHA256 with DSA",
	x509.PureEd25519:      "Ed25519",
}

// signatureAlgorithmName maps a signature algorithm to its human-readable
// "hash with scheme" form, falling back to the standard library name.
func signatureAlgorithmName(alg x509.SignatureAlgorithm) string {
	if name, ok := signatureAlgorithmNames[alg]; ok {
		return name
	}
	return alg.String()
}

// ExplainSignatureAlgorithm returns a plain-language explanation of the given
// signature algorithm name for the detail and verbose views.
//
// The RSA check runs before the DSA check on purpose: "SHA256 with ECDSA"
// contains "DSA" but not "RSA", so the ECDSA match must also come first.
func ExplainSignatureAlgorithm(alg string) string {
	switch {
	case strings.Contains(alg, "RSA"):
		return "This certificate uses RSA encryption with hashing. RSA is like a digital lock that only the certificate issuer has the key to open. The hashing creates a unique fingerprint of the certificate data. Together, they create a digital signature that proves the certificate is genuine and hasn't been tampered with. This is essential for secure websites and encrypted communications."
	case strings.Contains(alg, "ECDSA"):
		return "This certificate uses Elliptic Curve Digital Signature Algorithm (ECDSA). It's a modern, efficient way to create digital signatures using advanced mathematics with elliptic curves. Like RSA, it creates a unique signature that proves the certificate's authenticity, but it's faster and uses smaller keys. This helps keep internet communications secure and private."
	case strings.Contains(alg, "DSA"):
		return "This certificate uses Digital Signature Algorithm (DSA). It's a method for creating digital signatures that verify the authenticity of the certificate. Using mathematical techniques, it creates a unique code that only the legitimate issuer can produce. This prevents fake certificates and ensures trust in online communications."
	default:
		return "This is a cryptographic signature method that verifies the certificate's authenticity. It uses mathematical algorithms to create a unique digital signature that proves the certificate is legitimate and hasn't been altered. This is crucial for establishing secure and trustworthy connections on the internet."
	}
}

var extensionNames = map[string]string{
	// Standard X.509 extensions
	"2.5.29.14": "Subject Key Identifier",
	"2.5.29.15": "Key Usage",
	"2.5.29.16": "Private Key Usage Period",
	"2.5.29.17": "Subject Alternative Name",
	"2.5.29.18": "Issuer Alternative Name",
	"2.5.29.19": "Basic Constraints",
	"2.5.29.30": "Name Constraints",
	"2.5.29.31": "CRL Distribution Points",
	"2.5.29.32": "Certificate Policies",
	"2.5.29.33": "Policy Mappings",
	"2.5.29.35": "Authority Key Identifier",
	"2.5.29.36": "Policy Constraints",
	"2.5.29.37": "Extended Key Usage",
	"2.5.29.46": "Freshest CRL",

	// Microsoft extensions
	"1.3.6.1.4.1.311.20.2": "Microsoft Smart Card Login",
	"1.3.6.1.4.1.311.21.1": "Microsoft Individual Code Signing",

	// Entrust extensions
	"1.2.840.113533.7.65.0": "Entrust Version Information",

	// Netscape extensions
	"2.16.840.1.113730.1.1": "Netscape Certificate Type",

	// VeriSign extensions
	"2.23.42.7.0": "VeriSign Individual SHA1 Hash",

	// Other common extensions
	"1.3.6.1.5.5.7.1.1":       "Authority Information Access",
	"1.3.6.1.4.1.11129.2.4.2": "Signed Certificate Timestamp",
}

// ExtensionName maps a dotted OID to its human-readable extension name.
// Unknown OIDs are returned unchanged so they stay visible in output.
func ExtensionName(oid string) string {
	if name, ok := extensionNames[oid]; ok {
		return name
	}
	return oid
}
