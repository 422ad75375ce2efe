// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// cert-tree is a command-line tool for inspecting X.509 certificates and
// visualizing their trust hierarchy.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/tdslot/cert-tree/cmd/cert-tree@latest
//
// # Usage
//
//	cert-tree [FLAGS]
//
// # Flags
//
//	-f, --file         Certificate file (PEM, DER, PKCS7, or PKCS12)
//	-U, --url          Retrieve the certificate chain from a remote host or bundle URL
//	-p, --password     Password for PKCS12 input
//	-o, --output       Output mode: text, table, or json (default: text)
//	-i, --interactive  Browse the hierarchy in an interactive terminal UI
//	    --config       Configuration file (JSON or YAML)
//
// # Examples
//
// Inspect a local certificate bundle as a text tree:
//
//	cert-tree -f chain.pem
//
// Inspect the chain a server presents during its TLS handshake:
//
//	cert-tree -U example.com
//
// Browse a bundle interactively (Tab switches panes, arrows navigate,
// 'q' quits, 't' drops to text mode):
//
//	cert-tree -f chain.pem -i
//
// Produce a markdown table or JSON for external tooling:
//
//	cert-tree -f chain.pem -o table
//	cert-tree -f chain.pem -o json > chain.json
package main
