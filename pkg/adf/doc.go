// Package adf decodes and encodes Atlassian Document Format (ADF) documents.
//
// An ADF document is a JSON tree of typed nodes. Every node and every mark is a
// JSON object whose "type" key selects one of a closed set of variants, and each
// variant has a fixed contract for its "content", "attrs" and "marks" keys.
// This package models that set as the sealed [Node] and [Mark] interfaces and
// converts between them and generic JSON values:
//
//	node, err := adf.DecodeText(`{"type":"doc","version":1,"content":[]}`)
//	if err != nil {
//		// err is a *adf.DecodeError locating the failure inside the tree
//	}
//	fmt.Println(adf.EncodeText(node))
//
// Decoding is strict. Unknown discriminators, missing required fields, values of
// the wrong shape and keys a variant does not declare are all rejected, so that
// anything which decodes can be re-encoded without losing data. Optional fields
// are pointers: nil means the key was absent (or null), never an empty value.
//
// Decoding and encoding are pure functions. Decoded trees are plain values owned
// by the caller and may be read from several goroutines at once; concurrent
// mutation needs external synchronization.
//
// The package does not check which node kinds may nest inside which, nor which
// marks are legal on which nodes.
package adf
