/*
 * commands.go, part of gosire.
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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rmera/gosire"
	"github.com/rmera/gosire/molplot"
	"github.com/rmera/gosire/pdb"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	plotProperty string
	plotRMSF     bool
	plotTitle    string
	plotMolecule int

	infoCmd = &cobra.Command{
		Use:   "info FILE...",
		Short: "Print the hierarchy of the molecules in PDB or .sire files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runInfo,
	}
	convertCmd = &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert between PDB and .sire files (the format is taken from the extension)",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert,
	}
	dumpCmd = &cobra.Command{
		Use:   "dump FILE.sire",
		Short: "Print the header and contents of a .sire file",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	plotCmd = &cobra.Command{
		Use:   "plot IN OUT",
		Short: "Plot a per-residue profile of an atomic property (the format is taken from OUT's extension)",
		Args:  cobra.ExactArgs(2),
		RunE:  runPlot,
	}
)

func init() {
	f := plotCmd.Flags()
	f.StringVar(&plotProperty, "property", mol.BFactorKey, "per-atom property to plot")
	f.BoolVar(&plotRMSF, "rmsf", false, "plot the fluctuation over the MODELs of the file instead of a property")
	f.StringVar(&plotTitle, "title", "", "plot title (default: the molecule name)")
	f.IntVar(&plotMolecule, "molecule", 0, "index of the molecule to plot, negative values count from the end")
}

func isStream(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".sire")
}

//load reads the molecules in a PDB file (compressed or not) or in a .sire file.
func load(name string) ([]*mol.MoleculeData, error) {
	if !isStream(name) {
		cut, err := config.CuttingFunction()
		if err != nil {
			return nil, err
		}
		return pdb.ReadFile(name, pdb.Options{Cutting: cut, Logger: logger.With("file", name)})
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := mol.ReadMoleculeGroup(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return groupData(g)
}

func groupData(g *mol.MoleculeGroup) ([]*mol.MoleculeData, error) {
	ret := make([]*mol.MoleculeData, 0, g.NMolecules())
	for i := 0; i < g.NMolecules(); i++ {
		v, err := g.MoleculeAt(i)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v.Data())
	}
	return ret, nil
}

//describe writes the hierarchy summary of mols.
func describe(w io.Writer, name string, mols []*mol.MoleculeData) {
	fmt.Fprintf(w, "%s: %d molecule(s)\n", name, len(mols))
	for _, d := range mols {
		info := d.Info()
		fmt.Fprintf(w, "  %s\n", d)
		fmt.Fprintf(w, "    %d segment(s), %d CutGroup(s)\n", info.NSegments(), info.NCutGroups())
		for c := 0; c < info.NChains(); c++ {
			ci := mol.ChainIdx(c)
			fmt.Fprintf(w, "    chain %q: %d residue(s), %d atom(s)\n", info.ChainName(ci), info.NResiduesInChain(ci), len(info.AtomsInChain(ci)))
		}
		loose := 0
		for r := 0; r < info.NResidues(); r++ {
			if !info.IsWithinChain(mol.ResIdx(r)) {
				loose++
			}
		}
		if loose > 0 {
			fmt.Fprintf(w, "    %d residue(s) in no chain\n", loose)
		}
		fmt.Fprintf(w, "    properties: %s\n", strings.Join(d.Properties().Keys(), ", "))
	}
}

//runInfo reads all the files concurrently, and prints them in the order given.
func runInfo(cmd *cobra.Command, args []string) error {
	results := make([][]*mol.MoleculeData, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range args {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mols, err := load(name)
			if err != nil {
				return err
			}
			results[i] = mols
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, name := range args {
		describe(out, name, results[i])
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	mols, err := load(in)
	if err != nil {
		return err
	}
	if !isStream(out) {
		return pdb.WriteFile(out, nil, mols...)
	}
	g := mol.NewMoleculeGroup(strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)))
	for _, d := range mols {
		if err := g.Add(d.Molecule()); err != nil {
			return err
		}
	}
	var b bytes.Buffer
	if err := mol.WriteMoleculeGroup(&b, g); err != nil {
		return err
	}
	if err := os.WriteFile(out, b.Bytes(), 0o644); err != nil {
		return err
	}
	logger.Info("converted", "in", in, "out", out, "molecules", len(mols), "bytes", b.Len())
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s, %d bytes\n", args[0], mol.Summary(data), len(data))
	g, err := mol.ReadMoleculeGroup(bytes.NewReader(data))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, g)
	mols, err := groupData(g)
	if err != nil {
		return err
	}
	describe(out, g.Name(), mols)
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	mols, err := load(args[0])
	if err != nil {
		return err
	}
	i := plotMolecule
	if i < 0 {
		i += len(mols)
	}
	if i < 0 || i >= len(mols) {
		return fmt.Errorf("molecule %d requested, %s has %d", plotMolecule, args[0], len(mols))
	}
	d := mols[i]
	var p *molplot.Profile
	if plotRMSF {
		p, err = molplot.FluctuationProfile(d, nil)
	} else {
		p, err = molplot.ResidueProfile(d, plotProperty)
	}
	if err != nil {
		return err
	}
	title := plotTitle
	if title == "" {
		title = string(d.Name())
	}
	if err := p.Save(args[1], title); err != nil {
		return err
	}
	r, v := p.Max()
	logger.Info("plotted", "out", args[1], "residues", len(p.Values), "mean", p.Mean(), "max", v, "at", r)
	return nil
}
