// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package display renders certificate hierarchies for terminal consumption.
// It provides capabilities to:
//   - Render the colored text tree with an aligned expiry column.
//   - Print a verbose report for a single certificate.
//   - Emit a markdown summary table and visualization JSON.
//
// All renderers are pure string builders over flattened display rows, so the
// same hierarchy can be printed, piped, or fed to external tools unchanged.
package display
