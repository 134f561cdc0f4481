package template

import (
	"strconv"
	"strings"
)

// Document is a free-form response template parsed from JSON. Renderers
// read it through tolerant accessors: a missing or mistyped field yields a
// zero value, never a panic.
type Document map[string]any

// lookup walks a dotted path like "script_content.segments.0" through
// nested maps and lists.
func (d Document) lookup(path string) (any, bool) {
	var cur any = map[string]any(d)
	if path == "" {
		return cur, true
	}
	for _, part := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[part]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Str returns the string at path, or "" when absent or not a string.
func (d Document) Str(path string) string {
	v, ok := d.lookup(path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Num returns the number at path and whether one was present.
func (d Document) Num(path string) (float64, bool) {
	v, ok := d.lookup(path)
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	return n, ok
}

// List returns the list at path, or nil.
func (d Document) List(path string) []any {
	v, ok := d.lookup(path)
	if !ok {
		return nil
	}
	l, _ := v.([]any)
	return l
}

// Strings returns the list at path with every string element kept.
func (d Document) Strings(path string) []string {
	raw := d.List(path)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Map returns the object at path, or nil.
func (d Document) Map(path string) Document {
	v, ok := d.lookup(path)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return Document(m)
}

// Has reports whether path resolves to a non-empty value.
func (d Document) Has(path string) bool {
	v, ok := d.lookup(path)
	if !ok || v == nil {
		return false
	}
	switch node := v.(type) {
	case string:
		return node != ""
	case []any:
		return len(node) > 0
	case map[string]any:
		return len(node) > 0
	}
	return true
}

// Set writes value at a dotted path, creating intermediate maps. Used only
// for per-request personalization tweaks before rendering.
func (d Document) Set(path string, value any) {
	parts := strings.Split(path, ".")
	cur := map[string]any(d)
	for i, part := range parts {
		if i == len(parts)-1 {
			cur[part] = value
			return
		}
		next, ok := cur[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[part] = next
		}
		cur = next
	}
}
