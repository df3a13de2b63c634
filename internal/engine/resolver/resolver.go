// Package resolver turns a named descriptor entry into a validated record.
package resolver

import (
	"slices"

	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/zerr"
)

// Constructor builds a record from the attributes of one entry.
type Constructor func(domain.Attributes) (domain.Record, error)

// Resolver looks up entries by name and constructs records through an
// explicit table of known record kinds.
type Resolver struct {
	constructors map[domain.RecordKind]Constructor
}

// New creates a Resolver that knows the person and operating-system kinds.
func New() *Resolver {
	return NewWithConstructors(map[domain.RecordKind]Constructor{
		domain.KindPerson: func(attrs domain.Attributes) (domain.Record, error) {
			p, err := domain.NewPerson(attrs)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		domain.KindOperatingSystem: func(attrs domain.Attributes) (domain.Record, error) {
			o, err := domain.NewOperatingSystem(attrs)
			if err != nil {
				return nil, err
			}
			return o, nil
		},
	})
}

// NewWithConstructors creates a Resolver from a custom constructor table.
func NewWithConstructors(table map[domain.RecordKind]Constructor) *Resolver {
	constructors := make(map[domain.RecordKind]Constructor, len(table))
	for kind, ctor := range table {
		constructors[kind] = ctor
	}
	return &Resolver{constructors: constructors}
}

// Kinds returns the registered record kinds in sorted order.
func (r *Resolver) Kinds() []domain.RecordKind {
	kinds := make([]domain.RecordKind, 0, len(r.constructors))
	for kind := range r.constructors {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// Resolve selects the entry called name from doc and builds a record of the given kind.
// A name absent from the document always yields domain.ErrUnknownEntry.
func (r *Resolver) Resolve(doc *domain.Document, kind domain.RecordKind, name string) (domain.Record, error) {
	attrs, ok := doc.Lookup(name)
	if !ok {
		err := domain.Annotate(domain.ErrUnknownEntry, "entry", name)
		err = zerr.With(err, "source", doc.Source())
		return nil, zerr.With(err, "available", doc.Names())
	}

	ctor, ok := r.constructors[kind]
	if !ok {
		err := domain.Annotate(domain.ErrUnknownRecordKind, "kind", string(kind))
		return nil, zerr.With(err, "known", r.Kinds())
	}

	record, err := ctor(attrs)
	if err != nil {
		return nil, zerr.With(err, "entry", name)
	}
	return record, nil
}
