// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509fetch retrieves [X.509] certificates from remote endpoints.
// It provides capabilities to:
//   - Download certificate bundles over HTTPS (PEM bundle URLs such as cacert.pem).
//   - Capture the chain a server presents during a [TLS] handshake.
//
// Retrieval is context-aware and reuses pooled buffers for response reads.
//
// [X.509]: https://grokipedia.com/page/X.509
// [TLS]: https://grokipedia.com/page/Transport_Layer_Security
package x509fetch
