/*
 * helpers_test.go, part of gosire.
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

package mol

import (
	"testing"

	v3 "github.com/rmera/gosire/v3"
	"github.com/stretchr/testify/require"
)

//testMolecule builds a small molecule: ALA 1 (N CA CB) and GLY 2 (N CA), both in chain A
//and segment S1, plus a ZN atom in no residue, chain or segment. Atom i sits at (i,0,0).
//The CutGroups are "ALA:1", "GLY:2" and "noresidue".
func testMolecule(Te *testing.T) *MoleculeData {
	Te.Helper()
	ed := NewMolStructureEditor("dipeptide")
	chain := ed.AddChain()
	require.NoError(Te, chain.Rename("A"))
	seg := ed.AddSegment()
	require.NoError(Te, seg.Rename("S1"))
	residues := []struct {
		name  ResName
		num   ResNum
		atoms []AtomName
	}{
		{"ALA", 1, []AtomName{"N", "CA", "CB"}},
		{"GLY", 2, []AtomName{"N", "CA"}},
	}
	serial := AtomNum(1)
	for _, r := range residues {
		res, err := chain.AddResidue()
		require.NoError(Te, err)
		require.NoError(Te, res.Rename(r.name))
		require.NoError(Te, res.Renumber(r.num))
		for _, name := range r.atoms {
			a, err := res.AddAtom()
			require.NoError(Te, err)
			require.NoError(Te, a.Rename(name))
			require.NoError(Te, a.Renumber(serial))
			require.NoError(Te, seg.Add(a.UID()))
			serial++
		}
	}
	zn := ed.AddAtom()
	require.NoError(Te, zn.Rename("ZN"))
	require.NoError(Te, zn.Renumber(serial))

	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0, 4, 0, 0, 5, 0, 0})
	require.NoError(Te, err)
	require.NoError(Te, ed.SetProperty(CoordinatesKey, NewAtomCoords(coords)))
	require.NoError(Te, ed.SetProperty(ElementKey, NewAtomValues([]string{"N", "C", "C", "N", "C", "Zn"})))
	require.NoError(Te, ResidueCutting{}.Cut(ed))
	m, err := ed.Commit()
	require.NoError(Te, err)
	return m.Data()
}

//waterMolecule builds a one-residue molecule, in a single CutGroup.
func waterMolecule(Te *testing.T) *MoleculeData {
	Te.Helper()
	ed := NewMolStructureEditor("water")
	res := ed.AddResidue()
	require.NoError(Te, res.Rename("HOH"))
	for i, name := range []AtomName{"O", "H1", "H2"} {
		a, err := res.AddAtom()
		require.NoError(Te, err)
		require.NoError(Te, a.Rename(name))
		require.NoError(Te, a.Renumber(AtomNum(i+1)))
	}
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 0.96, 0, 0, -0.24, 0.93, 0})
	require.NoError(Te, err)
	require.NoError(Te, ed.SetProperty(CoordinatesKey, NewAtomCoords(coords)))
	require.NoError(Te, MoleculeCutting{}.Cut(ed))
	m, err := ed.Commit()
	require.NoError(Te, err)
	return m.Data()
}

func requireKind(Te *testing.T, err error, kind ErrorKind) {
	Te.Helper()
	require.Error(Te, err)
	require.Equal(Te, kind, KindOf(err), "error: %v", err)
}
