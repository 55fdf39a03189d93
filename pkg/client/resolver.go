package client

import (
	"strings"

	"github.com/yungbote/langbridge-backend/internal/types"
)

// Resolve finds the string value for a key inside a namespace document. The
// lookup order mirrors how documents arrive from the server, where both the
// flat dotted form and the nested form coexist:
//
//  1. exact flat entry (`doc["a.b"]`); this also covers the defensive
//     re-check of the dotted literal, which is the same map access
//  2. a document nested under its own namespace name
//  3. a walk of the nested form segment by segment
func Resolve(doc types.Document, namespace, key string) (string, bool) {
	value, ok, _, _ := lookup(doc, namespace, key)
	return value, ok
}

// lookup runs the ordered fallbacks and additionally reports the last string
// value a nested walk passed through before stopping short. T interpolates
// that partial value when the caller supplied params.
func lookup(doc types.Document, namespace, key string) (value string, ok bool, partial string, hasPartial bool) {
	if doc == nil {
		return "", false, "", false
	}

	if value, ok := doc[key].(string); ok {
		return value, true, "", false
	}

	if inner, isDoc := doc[namespace].(types.Document); isDoc {
		value, ok, p, hasP := walk(inner, key)
		if ok {
			return value, true, "", false
		}
		if hasP && !hasPartial {
			partial, hasPartial = p, true
		}
	}

	value, ok, p, hasP := walk(doc, key)
	if ok {
		return value, true, "", false
	}
	if hasP && !hasPartial {
		partial, hasPartial = p, true
	}

	return "", false, partial, hasPartial
}

// walk descends doc segment by segment. A full match returns the leaf string
// with ok set. When the walk stops short, the last string it reached on the
// way down is reported separately so callers can still use it.
func walk(doc types.Document, key string) (value string, ok bool, partial string, hasPartial bool) {
	var current any = doc
	for _, segment := range strings.Split(key, ".") {
		node, isDoc := current.(types.Document)
		if !isDoc {
			return "", false, partial, hasPartial
		}
		next, exists := node[segment]
		if !exists {
			return "", false, partial, hasPartial
		}
		if s, isString := next.(string); isString {
			partial, hasPartial = s, true
		}
		current = next
	}
	value, ok = current.(string)
	return value, ok, partial, hasPartial
}

// Interpolate substitutes every `{name}` placeholder with its parameter value.
// Placeholders without a matching parameter stay as-is.
func Interpolate(value string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(value, "{") {
		return value
	}
	for name, replacement := range params {
		value = strings.ReplaceAll(value, "{"+name+"}", replacement)
	}
	return value
}
