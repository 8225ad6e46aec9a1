package config

import (
	"gopkg.in/yaml.v3"
)

// ValidateBytes parses a topology document and validates every role block.
//
// source names the document in error messages, typically the file path.
// The first invalid role block aborts validation; no partial result is returned.
func ValidateBytes(source string, data []byte) (RawConfig, error) {
	cfg, err := parse(source, data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(source); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks all role blocks in order and returns a [*ConfigError]
// for the first one that is missing or invalid.
func (c RawConfig) Validate(source string) error {
	return c.validateWith(source, Positive)
}

// validateWith runs the block check for every role using countOK for the
// optional count field.
func (c RawConfig) validateWith(source string, countOK Predicate) error {
	for _, role := range Roles() {
		block, ok := c.Block(role)
		if !ok || !blockCheck(block, countOK) {
			return &ConfigError{Path: source, Role: role}
		}
	}
	return nil
}

// parse decodes YAML data into a RawConfig.
func parse(source string, data []byte) (RawConfig, error) {
	var cfg RawConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Path: source, Err: err}
	}
	if cfg == nil {
		cfg = RawConfig{}
	}
	return cfg, nil
}
