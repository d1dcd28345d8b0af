// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder collects partial configs from several sources. Sources are
// kept by priority: defaults, file, env, flags. withFile may run last
// because it needs the path found by the other sources.
type configBuilder struct {
	defaults *StructuredConfig
	file     *StructuredConfig
	configs  []*StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 2),
	}
}

func (b *configBuilder) build(validate func(*StructuredConfig) error) (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	ordered := make([]*StructuredConfig, 0, len(b.configs)+2)
	if b.defaults != nil {
		ordered = append(ordered, b.defaults)
	}
	if b.file != nil {
		ordered = append(ordered, b.file)
	}
	ordered = append(ordered, b.configs...)

	config := new(StructuredConfig)
	for _, cfg := range ordered {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if validate == nil {
		return config, nil
	}
	if err := validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaults()
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv(os.Environ())
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.ConfigFilePath != "" {
			path = cfg.ConfigFilePath
		}
	}
	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.file = fileCfg
	return b
}
