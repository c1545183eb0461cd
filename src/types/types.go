// Package types holds the data model shared by the loader, the renderer and the CLI.
package types

import (
	"sort"
	"strconv"
	"strings"
)

// Core record fields present in every estimation result.
const (
	FieldPhysicalQubits = "physical_qubits"
	FieldRuntimeSeconds = "runtime_seconds"
)

// TagValue is a categorical value kept as its source JSON text (numbers are not reformatted).
type TagValue string

// Float parses the tag as a number.
func (v TagValue) Float() (float64, bool) {
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Tag is one named categorical value of a record.
type Tag struct {
	Name  string   `json:"name" yaml:"name"`
	Value TagValue `json:"value" yaml:"value"`
}

// Record is one resource-estimation outcome. Index is its position in the source collection.
type Record struct {
	Index          int     `json:"index"`
	PhysicalQubits uint64  `json:"physical_qubits"`
	RuntimeSeconds float64 `json:"runtime_seconds"`
	Tags           []Tag   `json:"tags,omitempty"`
}

// Tag returns the value of the named tag.
func (r Record) Tag(name string) (TagValue, bool) {
	for _, t := range r.Tags {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

// Field returns a numeric value for an axis field: one of the core fields or a numeric tag.
func (r Record) Field(name string) (float64, bool) {
	switch name {
	case FieldPhysicalQubits:
		return float64(r.PhysicalQubits), true
	case FieldRuntimeSeconds:
		return r.RuntimeSeconds, true
	}
	v, ok := r.Tag(name)
	if !ok {
		return 0, false
	}
	return v.Float()
}

// Lookup renders any field or tag as text for labels.
func (r Record) Lookup(name string) (string, bool) {
	switch name {
	case FieldPhysicalQubits:
		return strconv.FormatUint(r.PhysicalQubits, 10), true
	case FieldRuntimeSeconds:
		return strconv.FormatFloat(r.RuntimeSeconds, 'g', -1, 64), true
	}
	v, ok := r.Tag(name)
	return string(v), ok
}

// ResultSet is the ordered sequence of records read from one document.
type ResultSet struct {
	Source  string   `json:"source"`
	Key     string   `json:"key,omitempty"`
	Records []Record `json:"records"`
}

// Group is a partition of a result set sharing the same ordered key tuple.
type Group struct {
	Key     []Tag    `json:"key"`
	Records []Record `json:"records"`
}

// Value returns the key value for the named grouping field.
func (g Group) Value(name string) (TagValue, bool) {
	for _, t := range g.Key {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

// Label is the default human readable form of the key, e.g. "method=pauli_decomp, K=7".
func (g Group) Label() string {
	parts := make([]string, 0, len(g.Key))
	for _, t := range g.Key {
		parts = append(parts, t.Name+"="+string(t.Value))
	}
	return strings.Join(parts, ", ")
}

// Expand substitutes {name} placeholders with values from lookup. Unknown names expand to "".
func Expand(tpl string, lookup func(string) (string, bool)) string {
	if !strings.Contains(tpl, "{") {
		return tpl
	}
	var b strings.Builder
	for {
		open := strings.IndexByte(tpl, '{')
		if open < 0 {
			b.WriteString(tpl)
			break
		}
		end := strings.IndexByte(tpl[open:], '}')
		if end < 0 {
			b.WriteString(tpl)
			break
		}
		b.WriteString(tpl[:open])
		name := tpl[open+1 : open+end]
		if v, ok := lookup(name); ok {
			b.WriteString(v)
		}
		tpl = tpl[open+end+1:]
	}
	return b.String()
}

// SortedTags orders tags by name so records decoded from unordered JSON objects compare stably.
func SortedTags(tags []Tag) []Tag {
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags
}
