package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RecordKind names a family of records that can be built from a descriptor entry.
type RecordKind string

const (
	// KindPerson builds Person records.
	KindPerson RecordKind = "person"
	// KindOperatingSystem builds OperatingSystem records.
	KindOperatingSystem RecordKind = "operating-system"
)

// Field is a named, rendered record attribute used by reports.
type Field struct {
	Name  string
	Value string
}

// Record is a validated configuration object resolved from one descriptor entry.
type Record interface {
	// Kind reports which family the record belongs to.
	Kind() RecordKind
	// Fields lists the record's attributes in a stable order.
	Fields() []Field
	// Summary returns the human-readable lines printed when the record is reported.
	Summary() []string
}

// requireString returns the named string attribute or fails with ErrMissingField.
func requireString(attrs Attributes, key string) (string, error) {
	v, ok := attrs[key]
	if !ok {
		return "", Annotate(ErrMissingField, "field", key)
	}
	s, ok := v.Text()
	if !ok {
		return "", fieldTypeError(key, KindString, v)
	}
	if strings.TrimSpace(s) == "" {
		return "", Annotate(ErrMissingField, "field", key)
	}
	return s, nil
}

// optionalString returns the named string attribute or def when absent.
func optionalString(attrs Attributes, key, def string) (string, error) {
	v, ok := attrs[key]
	if !ok {
		return def, nil
	}
	s, ok := v.Text()
	if !ok {
		return "", fieldTypeError(key, KindString, v)
	}
	return s, nil
}

// optionalList returns the named list attribute. A scalar is split on whitespace.
func optionalList(attrs Attributes, key string) ([]string, error) {
	v, ok := attrs[key]
	if !ok {
		return nil, nil
	}
	switch v.Kind() {
	case KindList:
		items, _ := v.Items()
		return items, nil
	case KindString:
		s, _ := v.Text()
		return strings.Fields(s), nil
	default:
		return nil, fieldTypeError(key, KindList, v)
	}
}

func fieldTypeError(key string, want ValueKind, got Value) error {
	err := Annotate(ErrFieldType, "field", key)
	err = zerr.With(err, "expected", want.String())
	return zerr.With(err, "actual", got.Kind().String())
}
