/*
 * moldata.go, part of gosire.
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

	v3 "github.com/rmera/gosire/v3"
)

//MoleculeData is one immutable, versioned snapshot of a molecule: its layout (MoleculeInfo)
//and its properties, coordinates included. It is never modified after construction, so it can be
//shared by any number of views and goroutines. Every change produces a new MoleculeData.
type MoleculeData struct {
	number  MolNum
	name    MolName
	version Version
	info    *MoleculeInfo
	props   Properties
}

//newMoleculeData assembles a MoleculeData. A per-atom property with the wrong number of
//atoms is a program bug.
func newMoleculeData(number MolNum, name MolName, version Version, info *MoleculeInfo, props Properties) *MoleculeData {
	if info == nil {
		bug("newMoleculeData", "nil MoleculeInfo for molecule %d", number)
	}
	for _, k := range props.atomKeys() {
		p := props.m[k].(AtomProperty)
		if p.NAtoms() != info.NAtoms() {
			bug("newMoleculeData", "property %q has %d values but molecule %d has %d atoms", k, p.NAtoms(), number, info.NAtoms())
		}
	}
	return &MoleculeData{number: number, name: name, version: version, info: info, props: props}
}

func (d *MoleculeData) Number() MolNum         { return d.number }
func (d *MoleculeData) Name() MolName          { return d.name }
func (d *MoleculeData) Version() Version       { return d.version }
func (d *MoleculeData) Info() *MoleculeInfo    { return d.info }
func (d *MoleculeData) Properties() Properties { return d.props }

//Property returns the property with the given key.
func (d *MoleculeData) Property(key string) (any, error) {
	p, err := d.props.Property(key)
	return p, errDecorate(err, "MoleculeData.Property")
}

//HasProperty is the non-failing counterpart of Property.
func (d *MoleculeData) HasProperty(key string) bool { return d.props.HasProperty(key) }

//SetProperty returns a new version of the molecule with the property key set to v.
//A per-atom property must have one value per atom.
func (d *MoleculeData) SetProperty(key string, v any) (*MoleculeData, error) {
	if p, ok := v.(AtomProperty); ok && p.NAtoms() != d.info.NAtoms() {
		return nil, incompatibleErr("MoleculeData.SetProperty", "property %q has %d values, the molecule has %d atoms", key, p.NAtoms(), d.info.NAtoms())
	}
	return d.derive(d.name, d.props.With(key, v)), nil
}

//RemoveProperty returns a new version of the molecule without the property key.
func (d *MoleculeData) RemoveProperty(key string) (*MoleculeData, error) {
	if !d.props.HasProperty(key) {
		return nil, propertyErr("MoleculeData.RemoveProperty", key)
	}
	return d.derive(d.name, d.props.Without(key)), nil
}

//SetName returns a new version of the molecule with the given name.
func (d *MoleculeData) SetName(name MolName) *MoleculeData {
	return d.derive(name, d.props)
}

//derive returns a copy of d with a new minor version. The layout is shared.
func (d *MoleculeData) derive(name MolName, props Properties) *MoleculeData {
	return newMoleculeData(d.number, name, nextMinor(d.number, d.version), d.info, props)
}

//Coordinates returns a copy of the coordinates of all the atoms, read from the property
//pm says holds the coordinates.
func (d *MoleculeData) Coordinates(pm ParameterMap) (*v3.Matrix, error) {
	c, err := d.coords(pm)
	if err != nil {
		return nil, errDecorate(err, "MoleculeData.Coordinates")
	}
	return c.Clone(), nil
}

//coords returns the coordinates without copying them.
func (d *MoleculeData) coords(pm ParameterMap) (*v3.Matrix, error) {
	key := pm.Source(CoordinatesKey)
	p, err := d.props.Property(key)
	if err != nil {
		return nil, errDecorate(err, "coords")
	}
	c, ok := p.(AtomCoords)
	if !ok {
		return nil, incompatibleErr("coords", "property %q holds a %T, not coordinates", key, p)
	}
	return c.Matrix, nil
}

//SetCoordinates returns a new version of the molecule with the given coordinates.
func (d *MoleculeData) SetCoordinates(c *v3.Matrix, pm ParameterMap) (*MoleculeData, error) {
	nd, err := d.SetProperty(pm.Source(CoordinatesKey), NewAtomCoords(c))
	return nd, errDecorate(err, "MoleculeData.SetCoordinates")
}

//AtomPropertyOf returns the per-atom property key of d, which must hold values of type T.
func AtomPropertyOf[T any](d *MoleculeData, key string) (AtomValues[T], error) {
	p, err := d.props.Property(key)
	if err != nil {
		return AtomValues[T]{}, errDecorate(err, "AtomPropertyOf")
	}
	v, ok := p.(AtomValues[T])
	if !ok {
		var z T
		return AtomValues[T]{}, incompatibleErr("AtomPropertyOf", "property %q holds a %T, not per-atom %T values", key, p, z)
	}
	return v, nil
}

//Molecule returns a view of the whole molecule.
func (d *MoleculeData) Molecule() Molecule { return Molecule{molRef{d}} }

func (d *MoleculeData) String() string {
	return fmt.Sprintf("Molecule(%d '%s' v%s, %d atoms, %d residues, %d chains)", d.number, d.name, d.version, d.info.NAtoms(), d.info.NResidues(), d.info.NChains())
}
