package config

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Document is an ordered mapping of configuration keys to scalar values
// (strings, numbers, booleans, nil) or nested maps. It represents either the
// global tool configuration or a per-project configuration.
//
// Key order is preserved across YAML round-trips so that migrations do not
// reshuffle a user's config file.
type Document struct {
	keys   []string
	values map[string]any
}

// NewDocument returns an empty configuration document.
func NewDocument() *Document {
	return &Document{values: make(map[string]any)}
}

// Get returns the value stored under key and whether the key exists.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// GetString returns the value under key as a string.
// Missing keys, nil values, and non-string values yield "".
func (d *Document) GetString(key string) string {
	if v, ok := d.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Set stores value under key. An existing key keeps its position;
// a new key is appended.
func (d *Document) Set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Delete removes key from the document. Unknown keys are a no-op.
func (d *Document) Delete(key string) {
	if _, exists := d.values[key]; !exists {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Has reports whether key exists in the document, regardless of its value.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Keys returns the document's keys in order. The returned slice is a copy.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of keys in the document.
func (d *Document) Len() int {
	return len(d.keys)
}

// Version returns the document's migration_version value, or "" if unset.
func (d *Document) Version() string {
	return d.GetString(KeyMigrationVersion)
}

// Clone returns a deep copy of the document. Mutating the clone never
// affects the original.
func (d *Document) Clone() *Document {
	out := NewDocument()
	for _, k := range d.keys {
		out.Set(k, cloneValue(d.values[k]))
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(val))
		for i, e := range val {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return val
	}
}

// MarshalYAML implements yaml.Marshaler, emitting keys in document order.
func (d *Document) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range d.keys {
		keyNode := &yaml.Node{}
		keyNode.SetString(k)

		valNode := &yaml.Node{}
		v := d.values[k]
		if v == nil {
			valNode.Kind = yaml.ScalarNode
			valNode.Tag = "!!null"
			valNode.Value = "null"
		} else if err := valNode.Encode(v); err != nil {
			return nil, errors.Wrapf(err, "encoding value for key %q", k)
		}

		root.Content = append(root.Content, keyNode, valNode)
	}
	return root, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, preserving key order.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	d.keys = nil
	d.values = make(map[string]any)

	// A file containing only "null" (or comments) decodes as an empty document.
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errors.Newf("config document must be a mapping, got %v", node.Kind)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return errors.Wrap(err, "decoding config key")
		}

		var value any
		if err := valNode.Decode(&value); err != nil {
			return errors.Wrapf(err, "decoding value for key %q", key)
		}

		d.Set(key, value)
	}

	return nil
}
