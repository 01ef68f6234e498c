// config.go — loading debug rendering options from YAML.
//
// Services usually want one rendering policy for every logged error, kept
// with the rest of their configuration. A document holds the options at its
// root:
//
//	id: true
//	stackFormat: split
//	originalErrorDebugs:
//	  stack: false
//	originalErrorStack: true
//
// To nest it under a key of a larger file, embed a DebugConfig field in the
// service's own config struct.
//
// originalErrorDebugs takes either a bool or a nested mapping; a mapping
// means "recurse into the original error, rendered with these options".
// Omitted fields keep their defaults. Unknown keys are rejected at every
// level.
package bettererror

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDebugConfig is returned for a config that parses but cannot be
// applied.
var ErrInvalidDebugConfig = errors.New("invalid debug config")

// DebugConfig is the YAML form of DebugOptions. Nil fields keep defaults.
type DebugConfig struct {
	ID                  *bool                `yaml:"id,omitempty"`
	Stack               *bool                `yaml:"stack,omitempty"`
	StackFormat         StackFormat          `yaml:"stackFormat,omitempty"`
	OriginalErrorDebugs *OriginalDebugConfig `yaml:"originalErrorDebugs,omitempty"`
	OriginalErrorStack  *bool                `yaml:"originalErrorStack,omitempty"`
}

var debugConfigKeys = map[string]bool{
	"id":                  true,
	"stack":               true,
	"stackFormat":         true,
	"originalErrorDebugs": true,
	"originalErrorStack":  true,
}

// UnmarshalYAML decodes a mapping, failing on keys DebugConfig does not
// define.
func (c *DebugConfig) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if !debugConfigKeys[k.Value] {
				return fmt.Errorf("%w: unknown field %q (line %d)", ErrInvalidDebugConfig, k.Value, k.Line)
			}
		}
	}
	type plain DebugConfig
	return n.Decode((*plain)(c))
}

// OriginalDebugConfig is the bool-or-mapping value of originalErrorDebugs.
type OriginalDebugConfig struct {
	Enabled bool
	Nested  *DebugConfig
}

// UnmarshalYAML accepts a boolean scalar or a nested DebugConfig mapping.
func (c *OriginalDebugConfig) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := n.Decode(&enabled); err != nil {
			return fmt.Errorf("originalErrorDebugs: %w", err)
		}
		c.Enabled, c.Nested = enabled, nil
		return nil
	case yaml.MappingNode:
		var nested DebugConfig
		if err := n.Decode(&nested); err != nil {
			return fmt.Errorf("originalErrorDebugs: %w", err)
		}
		c.Enabled, c.Nested = true, &nested
		return nil
	default:
		return fmt.Errorf("%w: originalErrorDebugs must be a bool or a mapping (line %d)", ErrInvalidDebugConfig, n.Line)
	}
}

// MarshalYAML writes the bool form, or the mapping when nested options exist.
func (c OriginalDebugConfig) MarshalYAML() (any, error) {
	if c.Nested != nil {
		return c.Nested, nil
	}
	return c.Enabled, nil
}

// ParseDebugConfig decodes and validates a DebugConfig document. Empty input
// yields the zero config, which renders with the defaults.
func ParseDebugConfig(data []byte) (DebugConfig, error) {
	var c DebugConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return DebugConfig{}, fmt.Errorf("parse debug config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return DebugConfig{}, err
	}
	return c, nil
}

// Validate checks the stack format at every nesting level.
func (c DebugConfig) Validate() error {
	if c.StackFormat != "" && !c.StackFormat.Valid() {
		return fmt.Errorf("%w: unknown stackFormat %q", ErrInvalidDebugConfig, c.StackFormat)
	}
	if c.OriginalErrorDebugs != nil && c.OriginalErrorDebugs.Nested != nil {
		if err := c.OriginalErrorDebugs.Nested.Validate(); err != nil {
			return fmt.Errorf("originalErrorDebugs: %w", err)
		}
	}
	return nil
}

// Options converts the config into DebugOption values for DebugsObject.
func (c DebugConfig) Options() []DebugOption {
	var opts []DebugOption
	if c.ID != nil && !*c.ID {
		opts = append(opts, WithoutID())
	}
	if c.Stack != nil && !*c.Stack {
		opts = append(opts, WithoutStack())
	}
	if c.StackFormat != "" {
		opts = append(opts, WithStackFormat(c.StackFormat))
	}
	if c.OriginalErrorDebugs != nil {
		switch {
		case c.OriginalErrorDebugs.Nested != nil:
			opts = append(opts, WithOriginalErrorOptions(c.OriginalErrorDebugs.Nested.Options()...))
		case !c.OriginalErrorDebugs.Enabled:
			opts = append(opts, WithoutOriginalErrorDebugs())
		}
	}
	if c.OriginalErrorStack != nil && !*c.OriginalErrorStack {
		opts = append(opts, WithoutOriginalErrorStack())
	}
	return opts
}

// Resolve returns the DebugOptions the config describes.
func (c DebugConfig) Resolve() DebugOptions {
	return ResolveDebugOptions(c.Options()...)
}
