// Package keytree turns flat dotted translation keys into the dual-shaped
// document served by the read endpoints: every key is stored once under its
// full dotted string and, best effort, nested segment by segment. The flat
// form is authoritative; the nested form exists so clients can walk either
// shape.
package keytree

import (
	"strings"

	"github.com/yungbote/langbridge-backend/internal/types"
)

// Insert adds one key/value pair to doc in both shapes.
//
// The nested walk creates intermediate maps per path segment. When a segment
// already holds a string leaf (e.g. "a" exists and "a.b" arrives, or the
// reverse), nesting is abandoned for this pair only; which of the two wins
// the nested slot depends on insertion order and stays that way. The flat
// entry is written unconditionally, so no value is ever lost.
func Insert(doc types.Document, key, value string) {
	if doc == nil {
		return
	}
	doc[key] = value

	parts := strings.Split(key, ".")
	if len(parts) < 2 {
		return
	}

	current := doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			child := types.Document{}
			current[part] = child
			current = child
			continue
		}
		child, ok := next.(types.Document)
		if !ok {
			// Leaf collision on an intermediate segment.
			return
		}
		current = child
	}
	current[parts[len(parts)-1]] = value
}

// Build produces the document for one namespace from its ordered rows.
func Build(rows []*types.Translation) types.Document {
	doc := types.Document{}
	for _, row := range rows {
		if row == nil {
			continue
		}
		Insert(doc, row.Key, row.Value)
	}
	return doc
}
