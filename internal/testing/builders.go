package testing

import (
	"maps"

	"gopkg.in/yaml.v3"
)

// DocBuilder provides a fluent interface for constructing topology documents.
// Each method returns a new builder (immutable) for chaining.
type DocBuilder struct {
	doc map[string]any
}

// NewDocBuilder creates a DocBuilder holding the same blocks as [ScenarioDoc].
func NewDocBuilder() *DocBuilder {
	return &DocBuilder{
		doc: map[string]any{
			"manager": map[string]any{"hostname": "mgr", "cpus": 2, "memory": 1024},
			"replica": map[string]any{"hostname": "node", "cpus": 1, "memory": 512, "count": 2},
			"client":  map[string]any{"hostname": "cli", "cpus": 1, "memory": 256, "count": 1},
		},
	}
}

// WithBlock replaces a role block.
func (b *DocBuilder) WithBlock(role, hostname string, cpus, memory int) *DocBuilder {
	newBuilder := b.clone()
	newBuilder.doc[role] = map[string]any{"hostname": hostname, "cpus": cpus, "memory": memory}
	return newBuilder
}

// WithCount sets the count of a role block.
func (b *DocBuilder) WithCount(role string, count any) *DocBuilder {
	return b.WithField(role, "count", count)
}

// WithField sets a key of a role block, creating the block if needed.
func (b *DocBuilder) WithField(role, key string, value any) *DocBuilder {
	newBuilder := b.clone()
	block, ok := newBuilder.doc[role].(map[string]any)
	if !ok {
		block = map[string]any{}
		newBuilder.doc[role] = block
	}
	block[key] = value
	return newBuilder
}

// WithoutField removes a key from a role block.
func (b *DocBuilder) WithoutField(role, key string) *DocBuilder {
	newBuilder := b.clone()
	if block, ok := newBuilder.doc[role].(map[string]any); ok {
		delete(block, key)
	}
	return newBuilder
}

// WithRole sets a top-level key to an arbitrary value, e.g. nil or a scalar.
func (b *DocBuilder) WithRole(role string, value any) *DocBuilder {
	newBuilder := b.clone()
	newBuilder.doc[role] = value
	return newBuilder
}

// WithoutRole removes a top-level key.
func (b *DocBuilder) WithoutRole(role string) *DocBuilder {
	newBuilder := b.clone()
	delete(newBuilder.doc, role)
	return newBuilder
}

// Bytes returns the document as YAML.
func (b *DocBuilder) Bytes() []byte {
	data, err := yaml.Marshal(b.doc)
	if err != nil {
		panic(err)
	}
	return data
}

// String returns the document as YAML text.
func (b *DocBuilder) String() string {
	return string(b.Bytes())
}

// clone creates a deep copy of the builder's role blocks.
func (b *DocBuilder) clone() *DocBuilder {
	doc := make(map[string]any, len(b.doc))
	for role, v := range b.doc {
		if block, ok := v.(map[string]any); ok {
			v = maps.Clone(block)
		}
		doc[role] = v
	}
	return &DocBuilder{doc: doc}
}
