package domain

import (
	"slices"
	"strings"
)

// ValueKind identifies which variant an attribute Value holds.
type ValueKind uint8

const (
	// KindString is a scalar text value.
	KindString ValueKind = iota
	// KindList is a sequence of scalar text values.
	KindList
	// KindBool is a boolean flag.
	KindBool
)

// String returns the descriptor-facing name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a single attribute value of a descriptor entry.
type Value struct {
	kind    ValueKind
	text    string
	items   []string
	boolean bool
}

// StringValue creates a scalar text value.
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// ListValue creates a list value. The items are copied.
func ListValue(items ...string) Value {
	return Value{kind: KindList, items: slices.Clone(items)}
}

// BoolValue creates a boolean value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Kind reports which variant the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the scalar text and whether the value is a string.
func (v Value) Text() (string, bool) { return v.text, v.kind == KindString }

// Items returns a copy of the list items and whether the value is a list.
func (v Value) Items() ([]string, bool) { return slices.Clone(v.items), v.kind == KindList }

// Bool returns the boolean and whether the value is a bool.
func (v Value) Bool() (bool, bool) { return v.boolean, v.kind == KindBool }

// String renders the value for reports.
func (v Value) String() string {
	switch v.kind {
	case KindList:
		return "[" + strings.Join(v.items, ", ") + "]"
	case KindBool:
		if v.boolean {
			return "true"
		}
		return "false"
	default:
		return v.text
	}
}

// Attributes maps attribute names of one entry to their values.
type Attributes map[string]Value

// Entry is one named element of a Document.
type Entry struct {
	Name       string
	Attributes Attributes
}

// Document is an ordered, immutable set of uniquely named entries parsed from a descriptor.
type Document struct {
	source   string
	checksum string
	entries  []Entry
	index    map[string]int
}

// NewDocument builds a Document from entries, preserving their order.
// It fails with ErrDuplicateEntry when two entries share a name.
func NewDocument(source, checksum string, entries []Entry) (*Document, error) {
	doc := &Document{
		source:   source,
		checksum: checksum,
		entries:  make([]Entry, 0, len(entries)),
		index:    make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		if _, exists := doc.index[e.Name]; exists {
			return nil, Annotate(ErrDuplicateEntry, "entry", e.Name)
		}
		attrs := make(Attributes, len(e.Attributes))
		for k, v := range e.Attributes {
			attrs[k] = v
		}
		doc.index[e.Name] = len(doc.entries)
		doc.entries = append(doc.entries, Entry{Name: e.Name, Attributes: attrs})
	}

	return doc, nil
}

// Source describes where the document was loaded from.
func (d *Document) Source() string { return d.source }

// Checksum returns the digest of the raw descriptor text.
func (d *Document) Checksum() string { return d.checksum }

// Len returns the number of entries.
func (d *Document) Len() int { return len(d.entries) }

// Names returns the entry names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.entries))
	for i, e := range d.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the attributes of the named entry.
// The returned map is a copy and may be modified by the caller.
func (d *Document) Lookup(name string) (Attributes, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	attrs := make(Attributes, len(d.entries[i].Attributes))
	for k, v := range d.entries[i].Attributes {
		attrs[k] = v
	}
	return attrs, true
}
