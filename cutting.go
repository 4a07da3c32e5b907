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

package mol

import (
	"fmt"
)

//CuttingFunction partitions the atoms of a molecule being edited into CutGroups.
//It is called once the rest of the structure has been assembled.
type CuttingFunction interface {
	Cut(e *MolStructureEditor) error
}

//CuttingFunc adapts an ordinary function to CuttingFunction.
type CuttingFunc func(e *MolStructureEditor) error

func (f CuttingFunc) Cut(e *MolStructureEditor) error { return f(e) }

//removeAllCutGroups leaves every atom without a CutGroup.
func removeAllCutGroups(e *MolStructureEditor) error {
	for _, u := range append([]UID(nil), e.d.cgsByIndex...) {
		if err := e.RemoveCutGroup(u); err != nil {
			return err
		}
	}
	return nil
}

//MoleculeCutting puts the whole molecule in a single CutGroup.
type MoleculeCutting struct{}

func (MoleculeCutting) Cut(e *MolStructureEditor) error {
	if err := removeAllCutGroups(e); err != nil {
		return errDecorate(err, "MoleculeCutting.Cut")
	}
	cg := e.AddCutGroup()
	if err := cg.Rename(CGName(e.Name())); err != nil {
		return errDecorate(err, "MoleculeCutting.Cut")
	}
	for _, u := range e.d.atomsByIndex {
		if err := cg.Add(u); err != nil {
			return errDecorate(err, "MoleculeCutting.Cut")
		}
	}
	return nil
}

//ResidueCutting puts each residue in its own CutGroup, named after the residue.
//Atoms that are not in any residue go together into one extra CutGroup.
type ResidueCutting struct{}

func (ResidueCutting) Cut(e *MolStructureEditor) error {
	if err := removeAllCutGroups(e); err != nil {
		return errDecorate(err, "ResidueCutting.Cut")
	}
	byRes := make(map[UID][]UID, len(e.d.resByIndex))
	var loose []UID
	for _, u := range e.d.atomsByIndex {
		r := e.d.atoms[u].res
		if _, ok := e.d.res[r]; ok {
			byRes[r] = append(byRes[r], u)
		} else {
			loose = append(loose, u)
		}
	}
	fill := func(name CGName, atoms []UID) error {
		cg := e.AddCutGroup()
		if err := cg.Rename(name); err != nil {
			return err
		}
		for _, u := range atoms {
			if err := cg.Add(u); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range e.d.resByIndex {
		atoms := byRes[r]
		if len(atoms) == 0 {
			continue
		}
		res := e.d.res[r]
		if err := fill(CGName(fmt.Sprintf("%s:%d", res.name, res.num)), atoms); err != nil {
			return errDecorate(err, "ResidueCutting.Cut")
		}
	}
	if len(loose) > 0 {
		if err := fill("noresidue", loose); err != nil {
			return errDecorate(err, "ResidueCutting.Cut")
		}
	}
	return nil
}
