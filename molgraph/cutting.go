/*
 * cutting.go, part of gosire.
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

package molgraph

import (
	"fmt"

	"github.com/rmera/gosire"
)

//FragmentCutting is a mol.CuttingFunction that puts each covalently connected fragment
//in its own CutGroup, named "FRAG:n" with n starting from 1. Bonds are assigned from
//the coordinates and elements of the molecule being edited.
type FragmentCutting struct {
	PM mol.ParameterMap
}

func (f FragmentCutting) Cut(e *mol.MolStructureEditor) error {
	p, err := e.Property(f.PM.Source(mol.CoordinatesKey))
	if err != nil {
		return fmt.Errorf("FragmentCutting: %w", err)
	}
	coords, ok := p.(mol.AtomCoords)
	if !ok {
		return fmt.Errorf("FragmentCutting: property %q holds a %T, not coordinates: %w", f.PM.Source(mol.CoordinatesKey), p, mol.ErrIncompatible)
	}
	atoms := make([]mol.UID, e.NAtoms())
	names := make([]mol.AtomName, len(atoms))
	for i := range atoms {
		u, err := e.AtomUID(mol.AtomIdx(i))
		if err != nil {
			return fmt.Errorf("FragmentCutting: %w", err)
		}
		atoms[i] = u
		if names[i], err = e.AtomName(u); err != nil {
			return fmt.Errorf("FragmentCutting: %w", err)
		}
	}
	var prop []string
	if p, err := e.Property(f.PM.Source(mol.ElementKey)); err == nil {
		if v, ok := p.(mol.AtomStrings); ok {
			prop = v.Values()
		}
	}
	elems, err := elements(names, prop)
	if err != nil {
		return err
	}
	g, err := bondGraph(coords.Matrix, elems)
	if err != nil {
		return err
	}
	for e.NCutGroups() > 0 {
		u, err := e.CGUID(mol.CGIdx(0))
		if err != nil {
			return fmt.Errorf("FragmentCutting: %w", err)
		}
		if err := e.RemoveCutGroup(u); err != nil {
			return fmt.Errorf("FragmentCutting: %w", err)
		}
	}
	for k, frag := range fragments(g) {
		cg := e.AddCutGroup()
		if err := cg.Rename(mol.CGName(fmt.Sprintf("FRAG:%d", k+1))); err != nil {
			return fmt.Errorf("FragmentCutting: %w", err)
		}
		for _, a := range frag {
			if err := cg.Add(atoms[a]); err != nil {
				return fmt.Errorf("FragmentCutting: %w", err)
			}
		}
	}
	return nil
}
