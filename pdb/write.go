/*
 * write.go, part of gosire.
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

package pdb

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rmera/gosire"
	"github.com/rmera/gosire/v3"
)

//atomLine holds what is needed to write one ATOM/HETATM line.
type atomLine struct {
	het     bool
	serial  int
	name    string
	altloc  string
	resname string
	chain   string
	resseq  int
	icode   string
	occ     float64
	bfac    float64
	segid   string
	element string
	charge  int
}

//pdbName puts names shorter than 4 characters in columns 14-16.
func pdbName(name string) string {
	if len(name) >= 4 {
		return name[:4]
	}
	return " " + name
}

func pdbCharge(q int) string {
	switch {
	case q > 0:
		return fmt.Sprintf("%d+", q)
	case q < 0:
		return fmt.Sprintf("%d-", -q)
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func (a atomLine) format(c [3]float64) string {
	rec := "ATOM"
	if a.het {
		rec = "HETATM"
	}
	return fmt.Sprintf("%-6s%5d %-4s%1s%3s %1s%4d%1s   %8.3f%8.3f%8.3f%6.2f%6.2f      %-4s%2s%2s\n",
		rec, a.serial%100000, pdbName(a.name), truncate(a.altloc, 1), truncate(a.resname, 3), truncate(a.chain, 1), a.resseq%10000, truncate(a.icode, 1),
		c[0], c[1], c[2], a.occ, a.bfac, truncate(a.segid, 4), truncate(a.element, 2), pdbCharge(a.charge))
}

//optional returns the per-atom property key of d, or a slice of n default values
//if d doesn't have it.
func optional[T any](d *mol.MoleculeData, key string, n int, def T) []T {
	p, err := mol.AtomPropertyOf[T](d, key)
	if err == nil {
		return p.Values()
	}
	ret := make([]T, n)
	for i := range ret {
		ret[i] = def
	}
	return ret
}

//lines collects the non-coordinate data of every atom in d.
func lines(d *mol.MoleculeData) []atomLine {
	info := d.Info()
	n := info.NAtoms()
	occ := optional(d, mol.OccupancyKey, n, 1.0)
	bfac := optional(d, mol.BFactorKey, n, 0.0)
	elem := optional(d, mol.ElementKey, n, "")
	charge := optional(d, mol.ChargeKey, n, 0)
	alt := optional(d, mol.AlternateKey, n, "")
	icode := optional(d, mol.ICodeKey, n, "")
	het := optional(d, mol.HetAtmKey, n, false)
	ret := make([]atomLine, n)
	for i := range ret {
		idx := mol.AtomIdx(i)
		l := atomLine{
			het:     het[i],
			serial:  int(info.AtomNum(idx)),
			name:    string(info.AtomName(idx)),
			altloc:  alt[i],
			icode:   icode[i],
			occ:     occ[i],
			bfac:    bfac[i],
			element: elem[i],
			charge:  charge[i],
		}
		if r, err := info.ParentResidue(idx); err == nil {
			l.resname = string(info.ResName(r))
			l.resseq = int(info.ResNum(r))
		}
		if c, err := info.AtomParentChain(idx); err == nil {
			l.chain = string(info.ChainName(c))
		}
		if s, err := info.ParentSegment(idx); err == nil {
			l.segid = string(info.SegName(s))
		}
		ret[i] = l
	}
	return ret
}

//frames returns the coordinates of d followed by the frames of its trajectory, if any.
func frames(d *mol.MoleculeData, pm mol.ParameterMap) ([]*v3.Matrix, error) {
	c, err := d.Coordinates(pm)
	if err != nil {
		return nil, errDecorate(err, "frames")
	}
	ret := []*v3.Matrix{c}
	p, err := d.Property(pm.Source(mol.TrajectoryKey))
	if err != nil {
		return ret, nil
	}
	traj, ok := p.(mol.Trajectory)
	if !ok {
		return ret, nil
	}
	for i := 0; i < traj.Len(); i++ {
		f, err := traj.Frame(i)
		if err != nil {
			return nil, errDecorate(err, "frames")
		}
		ret = append(ret, f)
	}
	return ret, nil
}

//Write writes the molecules to w in PDB format, with a TER record after each molecule.
//If every molecule has a trajectory with the same number of frames, one MODEL is written
//per frame, the first one with the current coordinates. pm selects the properties
//the coordinates and trajectory are read from.
func Write(w io.Writer, pm mol.ParameterMap, mols ...*mol.MoleculeData) error {
	all := make([][]*v3.Matrix, len(mols))
	nframes := -1
	for i, d := range mols {
		f, err := frames(d, pm)
		if err != nil {
			return errDecorate(err, "Write")
		}
		all[i] = f
		if nframes < 0 || len(f) < nframes {
			nframes = len(f)
		}
	}
	if nframes < 1 {
		nframes = 1
	}
	multi := nframes > 1
	for _, f := range all {
		if len(f) != nframes {
			multi = false
			nframes = 1
			break
		}
	}
	out := bufio.NewWriter(w)
	atoms := make([][]atomLine, len(mols))
	for i, d := range mols {
		atoms[i] = lines(d)
	}
	for k := 0; k < nframes; k++ {
		if multi {
			fmt.Fprintf(out, "MODEL     %4d\n", k+1)
		}
		for i := range mols {
			for j, a := range atoms[i] {
				if _, err := out.WriteString(a.format(all[i][k].Vec(j))); err != nil {
					return fmt.Errorf("pdb: writing: %w", err)
				}
			}
			out.WriteString("TER\n")
		}
		if multi {
			out.WriteString("ENDMDL\n")
		}
	}
	out.WriteString("END\n")
	if err := out.Flush(); err != nil {
		return fmt.Errorf("pdb: writing: %w", err)
	}
	return nil
}

//WriteFile writes the molecules to the PDB file filename.
func WriteFile(filename string, pm mol.ParameterMap, mols ...*mol.MoleculeData) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(f, pm, mols...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
