/*
 * config_test.go, part of gosire.
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
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gosire"
	"github.com/rmera/gosire/molgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(Te *testing.T) {
	cfg, err := LoadConfig("", false)
	require.NoError(Te, err)
	assert.Equal(Te, DefaultConfig(), cfg)

	missing := filepath.Join(Te.TempDir(), "nothere.yaml")
	_, err = LoadConfig(missing, false)
	assert.NoError(Te, err)
	_, err = LoadConfig(missing, true)
	assert.Error(Te, err)

	name := filepath.Join(Te.TempDir(), "sire.yaml")
	require.NoError(Te, os.WriteFile(name, []byte("log_level: debug\ncutting: fragment\n"), 0o644))
	cfg, err = LoadConfig(name, true)
	require.NoError(Te, err)
	assert.Equal(Te, "debug", cfg.LogLevel)
	assert.Equal(Te, "fragment", cfg.Cutting)
	assert.Equal(Te, "default", cfg.Compression)

	require.NoError(Te, os.WriteFile(name, []byte("log_level: [\n"), 0o644))
	_, err = LoadConfig(name, true)
	assert.Error(Te, err)
}

func TestApplyEnv(Te *testing.T) {
	env := map[string]string{"SIRE_CUTTING": "molecule", "SIRE_COMPRESSION": "best", "SIRE_LOG_LEVEL": ""}
	cfg := DefaultConfig()
	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.Equal(Te, "molecule", cfg.Cutting)
	assert.Equal(Te, "best", cfg.Compression)
	assert.Equal(Te, "warn", cfg.LogLevel)
}

func TestConfigValues(Te *testing.T) {
	cfg := DefaultConfig()
	require.NoError(Te, cfg.Validate())
	l, err := cfg.Level()
	require.NoError(Te, err)
	assert.Equal(Te, slog.LevelWarn, l)

	for name, want := range map[string]mol.CuttingFunction{
		"none":     nil,
		"molecule": mol.MoleculeCutting{},
		"Residue":  mol.ResidueCutting{},
		"fragment": molgraph.FragmentCutting{},
	} {
		cfg.Cutting = name
		got, err := cfg.CuttingFunction()
		require.NoError(Te, err)
		assert.Equal(Te, want, got, name)
	}
	cfg.Cutting = "atom"
	assert.Error(Te, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Compression = "fastest"
	z, err := cfg.CompressionLevel()
	require.NoError(Te, err)
	assert.Equal(Te, zstd.SpeedFastest, z)
	cfg.Compression = "ultra"
	assert.Error(Te, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LogLevel = "chatty"
	assert.Error(Te, cfg.Validate())
}
