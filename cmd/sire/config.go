/*
 * config.go, part of gosire.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * gosire is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gosire"
	"github.com/rmera/gosire/molgraph"
	"gopkg.in/yaml.v3"
)

//Config holds the settings of the sire command. They are read from a YAML file, and
//can be overridden by SIRE_* environment variables and by command line flags.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	Cutting     string `yaml:"cutting"`     //none, molecule, residue or fragment
	Compression string `yaml:"compression"` //fastest, default, better or best
}

//DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() Config {
	return Config{LogLevel: "warn", Cutting: "residue", Compression: "default"}
}

//defaultConfigPath is $XDG_CONFIG_HOME/sire/sire.yaml or its equivalent.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sire", "sire.yaml")
}

//LoadConfig reads the configuration at path, on top of the defaults. A missing
//file is not an error unless the path was given explicitly.
func LoadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, nil
}

//ApplyEnv overrides the settings with the SIRE_LOG_LEVEL, SIRE_CUTTING and SIRE_COMPRESSION
//variables, as returned by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	for _, v := range []struct {
		name string
		dst  *string
	}{
		{"SIRE_LOG_LEVEL", &c.LogLevel},
		{"SIRE_CUTTING", &c.Cutting},
		{"SIRE_COMPRESSION", &c.Compression},
	} {
		if s, ok := lookup(v.name); ok && s != "" {
			*v.dst = s
		}
	}
}

//Validate checks that every setting has a known value.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.CuttingFunction(); err != nil {
		return err
	}
	_, err := c.CompressionLevel()
	return err
}

//Level returns the slog level for LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("bad log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

//CuttingFunction returns the CuttingFunction named by Cutting, or nil for "none".
func (c Config) CuttingFunction() (mol.CuttingFunction, error) {
	switch strings.ToLower(c.Cutting) {
	case "", "none":
		return nil, nil
	case "molecule":
		return mol.MoleculeCutting{}, nil
	case "residue":
		return mol.ResidueCutting{}, nil
	case "fragment":
		return molgraph.FragmentCutting{}, nil
	}
	return nil, fmt.Errorf("unknown cutting %q (use none, molecule, residue or fragment)", c.Cutting)
}

//CompressionLevel returns the zstd level named by Compression.
func (c Config) CompressionLevel() (zstd.EncoderLevel, error) {
	ok, l := zstd.EncoderLevelFromString(c.Compression)
	if !ok {
		return l, fmt.Errorf("unknown compression %q (use fastest, default, better or best)", c.Compression)
	}
	return l, nil
}
