// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509tree arranges certificate records into display hierarchies.
//
// Relationships are resolved by comparing common name strings: a record whose
// issuer key equals another record's subject key becomes that record's child.
// This is intentionally not signature verification; two certificates that
// happen to share names will be related. When several records share a subject
// key, the one appearing last in the input is the parent candidate, though
// every record still gets its own node.
//
// Records whose issuer is absent from the input stay visible as roots, flagged
// with an incomplete chain status. The flattener serializes the forest into
// stable pre-order rows for the text renderer and the interactive UI.
package x509tree
