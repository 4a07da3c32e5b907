/*
 * properties.go, part of gosire.
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
	"sort"

	v3 "github.com/rmera/gosire/v3"
)

//Keys of the properties set by the readers in this library.
const (
	CoordinatesKey = "coordinates"
	ElementKey     = "element"
	OccupancyKey   = "occupancy"
	BFactorKey     = "bfactor"
	ChargeKey      = "charge"
	AlternateKey   = "alternate"
	HetAtmKey      = "hetatm"
	ICodeKey       = "icode"
	TrajectoryKey  = "trajectory"
)

//AtomProperty is a property with one value per atom. The number of values
//always equals the number of atoms of the molecule that holds it.
type AtomProperty interface {
	NAtoms() int
	//AtomValue returns the value for the ith atom.
	AtomValue(i int) any
	//rebuild returns a property of the same kind with the given values. A nil
	//value means the zero value.
	rebuild(vals []any) (AtomProperty, error)
}

//AtomValues is a per-atom property holding values of type T.
type AtomValues[T any] struct {
	vals []T
}

type (
	AtomFloats  = AtomValues[float64]
	AtomStrings = AtomValues[string]
	AtomInts    = AtomValues[int]
	AtomBools   = AtomValues[bool]
)

//NewAtomValues returns a per-atom property with a copy of vals.
func NewAtomValues[T any](vals []T) AtomValues[T] {
	return AtomValues[T]{vals: append([]T(nil), vals...)}
}

func (p AtomValues[T]) NAtoms() int         { return len(p.vals) }
func (p AtomValues[T]) AtomValue(i int) any { return p.vals[i] }

//Get returns the value for atom i.
func (p AtomValues[T]) Get(i AtomIdx) T { return p.vals[i] }

//Values returns a copy of all the values, in atom order.
func (p AtomValues[T]) Values() []T { return append([]T(nil), p.vals...) }

//With returns a copy of p with the value for atom i replaced by v.
func (p AtomValues[T]) With(i AtomIdx, v T) (AtomValues[T], error) {
	j, ok := wrapIndex(int(i), len(p.vals))
	if !ok {
		return p, indexErr("atom", "AtomValues.With", int(i), len(p.vals))
	}
	r := p.Values()
	r[j] = v
	return AtomValues[T]{vals: r}, nil
}

func (p AtomValues[T]) rebuild(vals []any) (AtomProperty, error) {
	r := make([]T, len(vals))
	for i, v := range vals {
		if v == nil {
			continue
		}
		t, ok := v.(T)
		if !ok {
			return nil, incompatibleErr("AtomValues.rebuild", "value %v for atom %d has type %T, expected %T", v, i, v, r[i])
		}
		r[i] = t
	}
	return AtomValues[T]{vals: r}, nil
}

//AtomCoords is the per-atom cartesian coordinates property.
type AtomCoords struct {
	*v3.Matrix
}

//NewAtomCoords returns a coordinates property with a copy of c.
func NewAtomCoords(c *v3.Matrix) AtomCoords {
	return AtomCoords{c.Clone()}
}

func (p AtomCoords) NAtoms() int         { return p.Matrix.NVecs() }
func (p AtomCoords) AtomValue(i int) any { return p.Matrix.Vec(i) }

func (p AtomCoords) rebuild(vals []any) (AtomProperty, error) {
	c := v3.Zeros(len(vals))
	for i, v := range vals {
		if v == nil {
			continue
		}
		vec, ok := v.([3]float64)
		if !ok {
			return nil, incompatibleErr("AtomCoords.rebuild", "value %v for atom %d has type %T, expected [3]float64", v, i, v)
		}
		c.SetVec(i, vec)
	}
	return AtomCoords{c}, nil
}

//Trajectory holds extra frames of coordinates for a molecule, such as the models
//after the first one in a multi-model PDB file. Each frame has one vector per atom.
type Trajectory struct {
	natoms int
	frames []*v3.Matrix
}

//NewTrajectory returns a trajectory with copies of the given frames, which all must
//have natoms vectors.
func NewTrajectory(natoms int, frames ...*v3.Matrix) (Trajectory, error) {
	t := Trajectory{natoms: natoms}
	for i, f := range frames {
		if f.NVecs() != natoms {
			return t, incompatibleErr("NewTrajectory", "frame %d has %d atoms, expected %d", i, f.NVecs(), natoms)
		}
		t.frames = append(t.frames, f.Clone())
	}
	return t, nil
}

func (t Trajectory) NAtoms() int { return t.natoms }
func (t Trajectory) Len() int    { return len(t.frames) }

//Frame returns a copy of the ith frame.
func (t Trajectory) Frame(i int) (*v3.Matrix, error) {
	j, ok := wrapIndex(i, len(t.frames))
	if !ok {
		return nil, indexErr("frame", "Trajectory.Frame", i, len(t.frames))
	}
	return t.frames[j].Clone(), nil
}

//AtomValue returns the positions of atom i in every frame.
func (t Trajectory) AtomValue(i int) any {
	ret := make([][3]float64, len(t.frames))
	for k, f := range t.frames {
		ret[k] = f.Vec(i)
	}
	return ret
}

func (t Trajectory) rebuild(vals []any) (AtomProperty, error) {
	r := Trajectory{natoms: len(vals), frames: make([]*v3.Matrix, len(t.frames))}
	for k := range r.frames {
		r.frames[k] = v3.Zeros(len(vals))
	}
	for i, v := range vals {
		if v == nil {
			continue
		}
		pos, ok := v.([][3]float64)
		if !ok || len(pos) != len(t.frames) {
			return nil, incompatibleErr("Trajectory.rebuild", "value for atom %d is not a set of %d positions", i, len(t.frames))
		}
		for k, p := range pos {
			r.frames[k].SetVec(i, p)
		}
	}
	return r, nil
}

//Properties is an immutable collection of named properties. Values that implement
//AtomProperty are per-atom properties. The zero value is an empty collection.
type Properties struct {
	m map[string]any
}

//Property returns the property with the given key, or a MissingProperty error.
func (p Properties) Property(key string) (any, error) {
	v, ok := p.m[key]
	if !ok {
		return nil, propertyErr("Properties.Property", key)
	}
	return v, nil
}

//HasProperty is the non failing counterpart of Property.
func (p Properties) HasProperty(key string) bool {
	_, ok := p.m[key]
	return ok
}

func (p Properties) Len() int { return len(p.m) }

//Keys returns the property keys, sorted.
func (p Properties) Keys() []string {
	ret := make([]string, 0, len(p.m))
	for k := range p.m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//With returns a copy of p with key set to v.
func (p Properties) With(key string, v any) Properties {
	r := make(map[string]any, len(p.m)+1)
	for k, val := range p.m {
		r[k] = val
	}
	r[key] = v
	return Properties{m: r}
}

//Without returns a copy of p without key. Removing a key that is not there is fine.
func (p Properties) Without(key string) Properties {
	r := make(map[string]any, len(p.m))
	for k, val := range p.m {
		if k != key {
			r[k] = val
		}
	}
	return Properties{m: r}
}

//atomKeys returns the keys of the per-atom properties, sorted.
func (p Properties) atomKeys() []string {
	ret := make([]string, 0, len(p.m))
	for _, k := range p.Keys() {
		if _, ok := p.m[k].(AtomProperty); ok {
			ret = append(ret, k)
		}
	}
	return ret
}

//ParameterMap overrides the property a parameter is read from. An empty
//ParameterMap reads every parameter from the property with the same name.
type ParameterMap map[string]string

//Source returns the name of the property that holds param.
func (pm ParameterMap) Source(param string) string {
	if s, ok := pm[param]; ok && s != "" {
		return s
	}
	return param
}

//With returns a copy of pm where param is read from source.
func (pm ParameterMap) With(param, source string) ParameterMap {
	r := make(ParameterMap, len(pm)+1)
	for k, v := range pm {
		r[k] = v
	}
	r[param] = source
	return r
}

func (pm ParameterMap) String() string {
	keys := make([]string, 0, len(pm))
	for k := range pm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s := "ParameterMap{"
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=>%s", k, pm[k])
	}
	return s + "}"
}
