// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509inspect extracts display-oriented summaries from parsed [X.509] certificates.
// It normalizes subjects, serial numbers, key and signature algorithms, and extension
// names into plain strings, and classifies certificate validity against a configurable
// expiry warning window. The package is the single source of certificate facts for the
// tree builder, the terminal renderers, and the interactive UI.
//
// Hierarchy matching in this tool is intentionally lightweight: certificates are
// related by comparing common name strings, not by verifying signatures.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509inspect
