/*
 * evaluator.go, part of gosire.
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
	"math"

	"gonum.org/v1/gonum/floats"
)

//Evaluator computes properties of the selected atoms of a molecule.
type Evaluator struct {
	d   *MoleculeData
	sel AtomSelection
	pm  ParameterMap
}

func newEvaluator(d *MoleculeData, sel AtomSelection, pm ParameterMap) Evaluator {
	return Evaluator{d: d, sel: sel, pm: pm}
}

func (e Evaluator) selected(caller string) ([]AtomIdx, error) {
	idxs := e.sel.Indexes()
	if len(idxs) == 0 {
		return nil, missingErr("atom", caller, "no atoms are selected")
	}
	return idxs, nil
}

//Masses returns the mass of each selected atom, in index order. Masses are taken from the element
//property if the molecule has one, or else guessed from the atom names.
func (e Evaluator) Masses() ([]float64, error) {
	idxs, err := e.selected("Evaluator.Masses")
	if err != nil {
		return nil, err
	}
	elements, elerr := AtomPropertyOf[string](e.d, e.pm.Source(ElementKey))
	ret := make([]float64, len(idxs))
	for k, i := range idxs {
		symbol := ""
		if elerr == nil {
			symbol = elements.Get(i)
		}
		if symbol == "" {
			symbol, err = GuessElement(e.d.info.AtomName(i))
			if err != nil {
				return nil, errDecorate(err, "Evaluator.Masses")
			}
		}
		m, ok := Mass(symbol)
		if !ok {
			return nil, missingErr("element", "Evaluator.Masses", "no mass for element %q of atom %d", symbol, i)
		}
		ret[k] = m
	}
	return ret, nil
}

//Mass returns the total mass of the selected atoms.
func (e Evaluator) Mass() (float64, error) {
	m, err := e.Masses()
	if err != nil {
		return 0, errDecorate(err, "Evaluator.Mass")
	}
	return floats.Sum(m), nil
}

//weightedCenter returns the average position of the selected atoms, weighted by w. A nil w means equal weights.
func (e Evaluator) weightedCenter(w []float64, caller string) ([3]float64, error) {
	var ret [3]float64
	idxs, err := e.selected(caller)
	if err != nil {
		return ret, err
	}
	c, err := e.d.coords(e.pm)
	if err != nil {
		return ret, errDecorate(err, caller)
	}
	if w == nil {
		w = make([]float64, len(idxs))
		floats.AddConst(1, w)
	}
	col := make([]float64, len(idxs))
	total := floats.Sum(w)
	for dim := 0; dim < 3; dim++ {
		for k, i := range idxs {
			col[k] = c.At(int(i), dim)
		}
		ret[dim] = floats.Dot(col, w) / total
	}
	return ret, nil
}

//CenterOfGeometry returns the average position of the selected atoms.
func (e Evaluator) CenterOfGeometry() ([3]float64, error) {
	return e.weightedCenter(nil, "Evaluator.CenterOfGeometry")
}

//CenterOfMass returns the mass-weighted average position of the selected atoms.
func (e Evaluator) CenterOfMass() ([3]float64, error) {
	m, err := e.Masses()
	if err != nil {
		return [3]float64{}, errDecorate(err, "Evaluator.CenterOfMass")
	}
	return e.weightedCenter(m, "Evaluator.CenterOfMass")
}

//AABox returns the corners of the smallest axis-aligned box that contains all the selected atoms.
func (e Evaluator) AABox() (min, max [3]float64, err error) {
	idxs, err := e.selected("Evaluator.AABox")
	if err != nil {
		return min, max, err
	}
	c, err := e.d.coords(e.pm)
	if err != nil {
		return min, max, errDecorate(err, "Evaluator.AABox")
	}
	for dim := 0; dim < 3; dim++ {
		min[dim] = math.Inf(1)
		max[dim] = math.Inf(-1)
	}
	for _, i := range idxs {
		v := c.Vec(int(i))
		for dim := 0; dim < 3; dim++ {
			min[dim] = math.Min(min[dim], v[dim])
			max[dim] = math.Max(max[dim], v[dim])
		}
	}
	return min, max, nil
}
