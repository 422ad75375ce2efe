// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the certificate chain inspector.
// It implements a Cobra-based CLI that loads certificates from files or remote hosts,
// builds their trust hierarchy, and renders it as colorized text, a markdown table,
// JSON, or an interactive dual-pane terminal UI. The package handles file I/O,
// context cancellation, and integrates with the logger package for output.
package cli
