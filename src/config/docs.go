// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads inspector settings from JSON or YAML files.
//
// Configuration is optional. Hardcoded defaults apply when no file is given
// via the --config flag or the CERT_TREE_CONFIG_FILE environment variable,
// and invalid values fall back to those defaults after load.
package config
