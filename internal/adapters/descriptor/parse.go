package descriptor

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Core schema tags accepted in a descriptor. Anything else, including
// language-specific object tags, is rejected before values are read.
var allowedTags = map[string]bool{
	"!!map":       true,
	"!!seq":       true,
	"!!str":       true,
	"!!bool":      true,
	"!!int":       true,
	"!!float":     true,
	"!!null":      true,
	"!!timestamp": true,
}

// Parse decodes descriptor text into a Document.
// The text must be a mapping of entry names to flat attribute mappings whose
// values are scalars or sequences of scalars.
func Parse(source string, data []byte) (*domain.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.Annotate(domain.ErrEmptyDescriptor, "source", source)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.Annotate(domain.ErrEmptyDescriptor, "source", source)
		}
		return nil, malformed(source, 0, err.Error())
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, malformed(source, 0, "descriptor must contain a single document")
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, domain.Annotate(domain.ErrEmptyDescriptor, "source", source)
	}

	if err := checkTags(source, &root); err != nil {
		return nil, err
	}

	top := root.Content[0]
	if top.ShortTag() == "!!null" {
		return nil, domain.Annotate(domain.ErrEmptyDescriptor, "source", source)
	}
	if top.Kind != yaml.MappingNode {
		return nil, malformed(source, top.Line, "descriptor must be a mapping of entries")
	}

	entries := make([]domain.Entry, 0, len(top.Content)/2)
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, malformed(source, key.Line, "entry name must be a non-empty scalar")
		}

		attrs, err := parseAttributes(source, key.Value, value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.Entry{Name: key.Value, Attributes: attrs})
	}

	doc, err := domain.NewDocument(source, checksum(data), entries)
	if err != nil {
		return nil, zerr.With(err, "source", source)
	}
	return doc, nil
}

func parseAttributes(source, entry string, node *yaml.Node) (domain.Attributes, error) {
	if node.Kind != yaml.MappingNode {
		err := malformed(source, node.Line, "entry must be a mapping of attributes")
		return nil, zerr.With(err, "entry", entry)
	}

	attrs := make(domain.Attributes, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			err := malformed(source, key.Line, "attribute name must be a scalar")
			return nil, zerr.With(err, "entry", entry)
		}
		if seen[key.Value] {
			err := malformed(source, key.Line, "duplicate attribute")
			err = zerr.With(err, "entry", entry)
			return nil, zerr.With(err, "attribute", key.Value)
		}
		seen[key.Value] = true

		v, present, err := parseValue(value)
		if err != nil {
			err = zerr.With(malformed(source, value.Line, err.Error()), "entry", entry)
			return nil, zerr.With(err, "attribute", key.Value)
		}
		if present {
			attrs[key.Value] = v
		}
	}
	return attrs, nil
}

// parseValue converts an attribute node. A null scalar reports present=false.
func parseValue(node *yaml.Node) (domain.Value, bool, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return domain.Value{}, false, nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return domain.Value{}, false, err
			}
			return domain.BoolValue(b), true, nil
		default:
			return domain.StringValue(node.Value), true, nil
		}
	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.ShortTag() == "!!null" {
				return domain.Value{}, false, fmt.Errorf("list items must be scalars")
			}
			items = append(items, item.Value)
		}
		return domain.ListValue(items...), true, nil
	case yaml.MappingNode:
		return domain.Value{}, false, fmt.Errorf("nested mappings are not supported")
	default:
		return domain.Value{}, false, fmt.Errorf("unsupported value")
	}
}

// checkTags rejects aliases and any tag outside the core schema.
func checkTags(source string, node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		return malformed(source, node.Line, "aliases are not supported")
	}
	if node.Kind != yaml.DocumentNode {
		if tag := node.ShortTag(); !allowedTags[tag] {
			err := domain.Annotate(domain.ErrUnsupportedTag, "tag", tag)
			err = zerr.With(err, "source", source)
			return zerr.With(err, "line", node.Line)
		}
	}
	for _, child := range node.Content {
		if err := checkTags(source, child); err != nil {
			return err
		}
	}
	return nil
}

func malformed(source string, line int, reason string) error {
	err := domain.Annotate(domain.ErrMalformedDescriptor, "source", source)
	if line > 0 {
		err = zerr.With(err, "line", line)
	}
	return zerr.With(err, "reason", reason)
}

func checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
