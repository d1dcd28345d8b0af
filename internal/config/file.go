// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of a JSON or YAML config file.
type StructuredFileConfig struct {
	App struct {
		PasswordPepper string   `json:"password_pepper" yaml:"password_pepper"`
		TokenSignKey   string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration  Duration `json:"token_duration" yaml:"token_duration"`
		Version        string   `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver          string   `json:"driver" yaml:"driver"`
			DSN             string   `json:"dsn" yaml:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns" yaml:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns" yaml:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
			SkipMigrations  bool     `json:"skip_migrations" yaml:"skip_migrations"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		CORSOrigins     []string `json:"cors_origins" yaml:"cors_origins"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Audit struct {
		RetentionDays   int    `json:"retention_days" yaml:"retention_days"`
		PruneSchedule   string `json:"prune_schedule" yaml:"prune_schedule"`
		RefreshSchedule string `json:"refresh_schedule" yaml:"refresh_schedule"`
	} `json:"audit,omitempty" yaml:"audit,omitempty"`

	Metrics struct {
		Disabled  bool   `json:"disabled" yaml:"disabled"`
		Namespace string `json:"namespace" yaml:"namespace"`
	} `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// parseFile reads a config file, decoding it as YAML for .yaml/.yml and as
// JSON for .json.
func parseFile(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordPepper: f.App.PasswordPepper,
			TokenSignKey:   f.App.TokenSignKey,
			TokenIssuer:    f.App.TokenIssuer,
			TokenDuration:  time.Duration(f.App.TokenDuration),
			Version:        f.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver:          f.Storage.DB.Driver,
				DSN:             f.Storage.DB.DSN,
				MaxOpenConns:    f.Storage.DB.MaxOpenConns,
				MaxIdleConns:    f.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: time.Duration(f.Storage.DB.ConnMaxLifetime),
				SkipMigrations:  f.Storage.DB.SkipMigrations,
			},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
			CORSOrigins:     f.Server.CORSOrigins,
		},
		Audit: Audit{
			RetentionDays:   f.Audit.RetentionDays,
			PruneSchedule:   f.Audit.PruneSchedule,
			RefreshSchedule: f.Audit.RefreshSchedule,
		},
		Metrics: Metrics{
			Disabled:  f.Metrics.Disabled,
			Namespace: f.Metrics.Namespace,
		},
	}
}

// Duration is a wrapper around time.Duration that unmarshals from strings
// like "1h" or "30s" in both JSON and YAML, and from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
