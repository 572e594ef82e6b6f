// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

// Package config loads fitchproof configuration from defaults, an
// optional YAML config file, and command-line flags, in that order of
// increasing precedence.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/fitchproof/fitchproof/internal/check"
)

// Config is the resolved fitchproof configuration.
type Config struct {
	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
	} `koanf:"log"`

	// Rulesets named here are installed before checking.
	Rulesets []string `koanf:"rulesets"`

	Serve struct {
		Addr string `koanf:"addr"`
	} `koanf:"serve"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	cfg.Rulesets = []string{"TFL_BASIC"}
	cfg.Serve.Addr = "127.0.0.1:8386"
	return cfg
}

// Load resolves configuration. path may be empty, in which case no
// file is read; a named file must exist. flags may be nil. Flag names
// map onto config keys with dashes as dots ("log-level" → "log.level").
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("BAD_CONFIG").With("path", path).Wrapf(err, "loading config file")
		}
	}

	if flags != nil {
		p := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			// Only explicitly set flags override file and defaults.
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "."), posflag.FlagVal(flags, f)
		})
		if err := k.Load(p, nil); err != nil {
			return nil, oops.Code("BAD_CONFIG").Wrapf(err, "loading flags")
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, oops.Code("BAD_CONFIG").Wrapf(err, "unmarshaling config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional behaves like Load but quietly skips a default-path
// config file that does not exist.
func LoadOptional(path string, flags *pflag.FlagSet) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	return Load(path, flags)
}

// Validate checks that the configuration is valid.
func (cfg *Config) Validate() error {
	if cfg.Log.Format != "json" && cfg.Log.Format != "text" {
		return oops.Code("BAD_CONFIG").
			With("format", cfg.Log.Format).
			Errorf("log.format must be 'json' or 'text', got %q", cfg.Log.Format)
	}
	for _, name := range cfg.Rulesets {
		if _, ok := check.RulesetByName(name); !ok {
			return oops.Code("UNKNOWN_RULESET").
				With("ruleset", name).
				With("known", check.RulesetNames()).
				Errorf("unknown ruleset %q", name)
		}
	}
	return nil
}

// Checker builds a checker with the configured rulesets installed.
func (cfg *Config) Checker() *check.Checker {
	c := check.NewChecker()
	for _, name := range cfg.Rulesets {
		if rs, ok := check.RulesetByName(name); ok {
			c.AddRuleset(rs)
		}
	}
	return c
}
