package domain

import "strings"

// SourceKind tells the descriptor loader how to obtain a document.
type SourceKind uint8

const (
	// SourceFile reads the descriptor from a local path.
	SourceFile SourceKind = iota
	// SourceURL fetches the descriptor with a single HTTP GET.
	SourceURL
	// SourceBuiltin uses a descriptor literal embedded in the binary.
	SourceBuiltin
)

const builtinPrefix = "builtin:"

// Source identifies where a descriptor document comes from.
type Source struct {
	Kind     SourceKind
	Location string
}

// ParseSource classifies a user supplied descriptor location.
// "builtin:<name>" selects an embedded literal, http and https URLs are fetched,
// anything else is treated as a file path.
func ParseSource(s string) Source {
	switch {
	case strings.HasPrefix(s, builtinPrefix):
		return Source{Kind: SourceBuiltin, Location: strings.TrimPrefix(s, builtinPrefix)}
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return Source{Kind: SourceURL, Location: s}
	default:
		return Source{Kind: SourceFile, Location: s}
	}
}

// BuiltinSource returns the Source of an embedded descriptor.
func BuiltinSource(name string) Source {
	return Source{Kind: SourceBuiltin, Location: name}
}

// String renders the source the way ParseSource accepts it.
func (s Source) String() string {
	if s.Kind == SourceBuiltin {
		return builtinPrefix + s.Location
	}
	return s.Location
}
