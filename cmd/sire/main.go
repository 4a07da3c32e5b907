/*
 * main.go, part of gosire.
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

//Command sire reads PDB files into the gosire molecular data model, prints their
//hierarchy, converts them to and from the binary stream format, and plots
//per-residue properties.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/rmera/gosire"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cuttingArg string
	logLevel   string

	config Config
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	rootCmd = &cobra.Command{
		Use:               "sire",
		Short:             "Inspect and convert molecular structures",
		Long:              "sire rebuilds the molecular hierarchy (atoms, residues, chains, segments\nand CutGroups) from PDB files, and stores it in a compact binary format.",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&configPath, "config", "", "config file (default "+defaultConfigPath()+")")
	f.StringVar(&cuttingArg, "cutting", "", "CutGroup scheme: none, molecule, residue or fragment")
	f.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.AddCommand(infoCmd, convertCmd, dumpCmd, plotCmd)
}

//setup loads the configuration (file, then environment, then flags) and sets the logger up.
func setup(cmd *cobra.Command, args []string) error {
	path, explicit := configPath, configPath != ""
	if !explicit {
		path = defaultConfigPath()
	}
	c, err := LoadConfig(path, explicit)
	if err != nil {
		return err
	}
	c.ApplyEnv(os.LookupEnv)
	if cuttingArg != "" {
		c.Cutting = cuttingArg
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if err := c.Validate(); err != nil {
		return err
	}
	level, _ := c.Level()
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	mol.StreamLevel, _ = c.CompressionLevel()
	config = c
	logger.Debug("configuration loaded", "path", path, "cutting", c.Cutting, "compression", c.Compression)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
