/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for prism.
package config

import (
	"bennypowers.dev/prism/generate"
	"bennypowers.dev/prism/kind"
)

// DefaultOutput is the directory generated sources are written to.
const DefaultOutput = "."

// Config represents the prism configuration.
type Config struct {
	// Files specifies token documents to load. Globs are expanded.
	Files []string `yaml:"files" json:"files" mapstructure:"files"`

	// Output is the directory the Swift package sources are written to.
	Output string `yaml:"output" json:"output" mapstructure:"output"`

	// IncludeInheritedTokens gives every theme the full default token set.
	IncludeInheritedTokens bool `yaml:"includeInheritedTokens" json:"includeInheritedTokens" mapstructure:"includeInheritedTokens"`

	// Kinds limits generation to these kinds. Empty means all.
	Kinds []string `yaml:"kinds" json:"kinds" mapstructure:"kinds"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
	}
}

// GenerateOptions converts the config to generator options.
func (c *Config) GenerateOptions() (generate.Options, error) {
	kinds, err := kind.ParseAll(c.Kinds)
	if err != nil {
		return generate.Options{}, err
	}
	return generate.Options{
		Kinds:            kinds,
		IncludeInherited: c.IncludeInheritedTokens,
	}, nil
}
