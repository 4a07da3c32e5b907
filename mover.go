/*
 * mover.go, part of gosire.
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
	v3 "github.com/rmera/gosire/v3"
)

//Mover changes the coordinates of the selected atoms of a molecule. The changes
//are kept in the Mover until Commit, which returns a new version of the molecule.
type Mover struct {
	d      *MoleculeData
	sel    AtomSelection
	pm     ParameterMap
	coords *v3.Matrix //all the atoms of the molecule
	idxs   []int      //the selected ones
}

func newMover(d *MoleculeData, sel AtomSelection, pm ParameterMap) (*Mover, error) {
	c, err := d.Coordinates(pm)
	if err != nil {
		return nil, errDecorate(err, "Move")
	}
	idxs := make([]int, 0, sel.NSelected())
	for _, v := range sel.Indexes() {
		idxs = append(idxs, int(v))
	}
	return &Mover{d: d, sel: sel, pm: pm, coords: c, idxs: idxs}, nil
}

//Coordinates returns a copy of the current coordinates of the selected atoms, in index order.
func (m *Mover) Coordinates() *v3.Matrix {
	return m.coords.SomeVecs(m.idxs)
}

//Translate moves the selected atoms by delta.
func (m *Mover) Translate(delta [3]float64) {
	sub := m.Coordinates()
	sub.AddVec(sub, delta)
	m.coords.SetVecs(sub, m.idxs)
}

//Rotate rotates the selected atoms by angle radians around the axis that goes through center.
func (m *Mover) Rotate(axis [3]float64, angle float64, center [3]float64) error {
	R, err := v3.RotatorAroundAxis(axis, angle)
	if err != nil {
		return errDecorate(err, "Mover.Rotate")
	}
	sub := m.Coordinates()
	sub.SubVec(sub, center)
	sub.Rotate(sub, R)
	sub.AddVec(sub, center)
	m.coords.SetVecs(sub, m.idxs)
	return nil
}

//SetCoordinates replaces the coordinates of the selected atoms with the vectors of c,
//in index order.
func (m *Mover) SetCoordinates(c *v3.Matrix) error {
	if c.NVecs() != len(m.idxs) {
		return incompatibleErr("Mover.SetCoordinates", "%d vectors given for %d selected atoms", c.NVecs(), len(m.idxs))
	}
	m.coords.SetVecs(c, m.idxs)
	return nil
}

//Commit returns a new version of the molecule with the moved coordinates, with a new minor version.
func (m *Mover) Commit() (*MoleculeData, error) {
	d, err := m.d.SetCoordinates(m.coords, m.pm)
	return d, errDecorate(err, "Mover.Commit")
}
