/*
 * cutting_test.go, part of gosire.
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

func TestCutting(Te *testing.T) {
	d := testMolecule(Te)
	ed := d.Molecule().Edit()
	require.NoError(Te, MoleculeCutting{}.Cut(ed))
	m, err := ed.Commit()
	require.NoError(Te, err)
	require.Equal(Te, 1, m.NCutGroups())
	cg, err := m.CutGroup(CGIdx(0))
	require.NoError(Te, err)
	assert.Equal(Te, CGName("dipeptide"), cg.Name())
	assert.Equal(Te, 6, cg.NAtoms())

	require.NoError(Te, ResidueCutting{}.Cut(ed))
	m, err = ed.Commit()
	require.NoError(Te, err)
	assert.Equal(Te, d.Info().Fingerprint(), m.Data().Info().Fingerprint())

	//One CutGroup per atom.
	perAtom := CuttingFunc(func(e *MolStructureEditor) error {
		for _, u := range append([]UID(nil), e.d.cgsByIndex...) {
			if err := e.RemoveCutGroup(u); err != nil {
				return err
			}
		}
		for i := 0; i < e.NAtoms(); i++ {
			a, err := e.Atom(AtomIdx(i))
			if err != nil {
				return err
			}
			name, err := a.Name()
			if err != nil {
				return err
			}
			cg := e.AddCutGroup()
			if err := cg.Rename(CGName(name)); err != nil {
				return err
			}
			if err := cg.Add(a.UID()); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(Te, perAtom.Cut(ed))
	m, err = ed.Commit()
	require.NoError(Te, err)
	assert.Equal(Te, 6, m.NCutGroups())
	assert.Equal(Te, 2, m.NResidues())

	failing := CuttingFunc(func(e *MolStructureEditor) error { return errors.New("no") })
	require.Error(Te, failing.Cut(ed))
}
