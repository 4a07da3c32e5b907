/*
 * info_test.go, part of gosire.
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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(Te *testing.T) {
	d := testMolecule(Te)
	info := d.Info()
	assert.Equal(Te, 6, info.NAtoms())
	assert.Equal(Te, 3, info.NCutGroups())
	assert.Equal(Te, 2, info.NResidues())
	assert.Equal(Te, 1, info.NChains())
	assert.Equal(Te, 1, info.NSegments())

	assert.Equal(Te, CGName("ALA:1"), info.CGName(0))
	assert.Equal(Te, CGName("GLY:2"), info.CGName(1))
	assert.Equal(Te, CGName("noresidue"), info.CGName(2))
	assert.Equal(Te, []AtomIdx{5}, info.AtomsInCutGroup(2))
	assert.Equal(Te, []AtomIdx{3, 4}, info.AtomsInResidue(1))
	assert.Equal(Te, []AtomIdx{0, 1, 2, 3, 4}, info.AtomsInChain(0))
	assert.Equal(Te, []AtomIdx{0, 1, 2, 3, 4}, info.AtomsInSegment(0))
	assert.Equal(Te, 2, info.NResiduesInChain(0))

	r, err := info.ParentResidue(4)
	require.NoError(Te, err)
	assert.Equal(Te, ResIdx(1), r)
	c, err := info.AtomParentChain(4)
	require.NoError(Te, err)
	assert.Equal(Te, ChainIdx(0), c)
	assert.True(Te, info.IsWithinChain(0))
	assert.True(Te, info.IsWithinSegment(0))
	assert.False(Te, info.IsWithinResidue(5))

	_, err = info.ParentResidue(5)
	requireKind(Te, err, KindMissing)
	_, err = info.AtomParentChain(5)
	requireKind(Te, err, KindMissing)
	_, err = info.ParentSegment(5)
	requireKind(Te, err, KindMissing)
	assert.True(Te, errors.Is(err, ErrMissing))
}

func TestIDs(Te *testing.T) {
	d := testMolecule(Te)
	info := d.Info()

	idxs, err := AtomName("CA").Map(info)
	require.NoError(Te, err)
	assert.Equal(Te, []AtomIdx{1, 4}, idxs)
	idxs, err = AtomIdx(-1).Map(info)
	require.NoError(Te, err)
	assert.Equal(Te, []AtomIdx{5}, idxs)
	_, err = AtomIdx(6).Map(info)
	requireKind(Te, err, KindInvalidIndex)
	_, err = AtomName("XX").Map(info)
	requireKind(Te, err, KindMissing)

	i, err := info.AtomIdx(AtomNum(6))
	require.NoError(Te, err)
	assert.Equal(Te, AtomIdx(5), i)
	_, err = info.AtomIdx(AtomName("CA"))
	requireKind(Te, err, KindDuplicate)
	assert.True(Te, errors.Is(err, ErrDuplicate))
	_, err = info.ResIdx(ResName("TRP"))
	requireKind(Te, err, KindMissing)

	i, err = info.AtomIdx(ResAtom{Res: ResNum(2), Atom: AtomName("CA")})
	require.NoError(Te, err)
	assert.Equal(Te, AtomIdx(4), i)
	_, err = info.AtomIdx(ResAtom{Res: ResNum(2), Atom: AtomName("CB")})
	requireKind(Te, err, KindMissing)

	r, err := info.ResIdx(ChainRes{Chain: ChainName("A"), Res: ResName("GLY")})
	require.NoError(Te, err)
	assert.Equal(Te, ResIdx(1), r)
	_, err = info.ResIdx(ChainRes{Chain: ChainName("B"), Res: ResName("GLY")})
	requireKind(Te, err, KindMissing)

	cg, err := info.CGIdx(CGName("noresidue"))
	require.NoError(Te, err)
	assert.Equal(Te, CGIdx(2), cg)
	s, err := info.SegIdx(SegName("S1"))
	require.NoError(Te, err)
	assert.Equal(Te, SegIdx(0), s)

	assert.Equal(Te, "AtomName('CA')", AtomName("CA").String())
	assert.Equal(Te, "ResNum(2) + AtomName('CA')", ResAtom{ResNum(2), AtomName("CA")}.String())
}

func TestFingerprint(Te *testing.T) {
	d := testMolecule(Te)
	d2, err := d.SetProperty("note", "renamed")
	require.NoError(Te, err)
	assert.Same(Te, d.Info(), d2.Info())
	assert.True(Te, d.Info().IsCompatibleWith(d2.Info()))

	//Same atoms, different CutGroups.
	ed := d.Molecule().Edit()
	require.NoError(Te, MoleculeCutting{}.Cut(ed))
	m, err := ed.Commit()
	require.NoError(Te, err)
	assert.Equal(Te, d.Info().NAtoms(), m.NAtoms())
	assert.NotEqual(Te, d.Info().Fingerprint(), m.Data().Info().Fingerprint())
	assert.False(Te, d.Info().IsCompatibleWith(m.Data().Info()))

	//A new commit with the same layout is compatible.
	m2, err := d.Molecule().Edit().Commit()
	require.NoError(Te, err)
	assert.True(Te, d.Info().IsCompatibleWith(m2.Data().Info()))
}

func TestElements(Te *testing.T) {
	for name, want := range map[AtomName]string{"CA": "C", "H1": "H", "N": "N", "OXT": "O", "ZN": "Zn", "1HB2": "H"} {
		got, err := GuessElement(name)
		require.NoError(Te, err, name)
		assert.Equal(Te, want, got, name)
	}
	_, err := GuessElement("XX")
	requireKind(Te, err, KindMissing)

	assert.Equal(Te, "Fe", NormalizeSymbol(" FE"))
	m, ok := Mass("c")
	assert.True(Te, ok)
	assert.InDelta(Te, 12.01, m, 1e-9)
	r, ok := CovalentRadius("O")
	assert.True(Te, ok)
	assert.InDelta(Te, 0.66, r, 1e-9)
	assert.Equal(Te, 1, MaxBonds("H"))
	assert.Equal(Te, 4, MaxBonds("C"))
}
