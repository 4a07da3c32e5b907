/*
 * editdata.go, part of gosire.
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
	"slices"

	"github.com/google/uuid"

	v3 "github.com/rmera/gosire/v3"
)

//UID is the identity of an entity while it is being edited. It is assigned when the entity
//is added to an editing session and never changes or gets reused, whatever happens to the
//position of the entity. The zero UID means "nothing", it is used for missing parents.
type UID uuid.UUID

func newUID() UID { return UID(uuid.New()) }

//IsZero returns true for the zero UID.
func (u UID) IsZero() bool { return u == UID{} }

func (u UID) String() string { return uuid.UUID(u).String() }

type editAtom struct {
	name  AtomName
	num   AtomNum
	cg    UID
	res   UID
	seg   UID
	props map[string]any
}

type editCG struct {
	name CGName
}

type editRes struct {
	name  ResName
	num   ResNum
	chain UID
}

type editChain struct {
	name ChainName
}

type editSeg struct {
	name SegName
}

//editMolData is the mutable working copy of a molecule, shared by all the editors of one
//editing session. Entities live in maps keyed by UID and the *ByIndex slices hold the UIDs
//in position order. Each slice is always a permutation of the keys of its map.
//It is not safe for concurrent use.
type editMolData struct {
	number  MolNum
	name    MolName
	version Version //of the data the session started from

	atoms  map[UID]*editAtom
	cgs    map[UID]*editCG
	res    map[UID]*editRes
	chains map[UID]*editChain
	segs   map[UID]*editSeg

	atomsByIndex  []UID
	cgsByIndex    []UID
	resByIndex    []UID
	chainsByIndex []UID
	segsByIndex   []UID

	props     Properties              //molecule-wide properties
	atomProps map[string]AtomProperty //templates for the per-atom properties, whose values live in the atoms

	layout *MoleculeInfo //cache, nil when stale
}

func newEditMolData(number MolNum, name MolName) *editMolData {
	return &editMolData{
		number:    number,
		name:      name,
		atoms:     make(map[UID]*editAtom),
		cgs:       make(map[UID]*editCG),
		res:       make(map[UID]*editRes),
		chains:    make(map[UID]*editChain),
		segs:      make(map[UID]*editSeg),
		atomProps: make(map[string]AtomProperty),
	}
}

//editDataFrom builds a working copy of d.
func editDataFrom(d *MoleculeData) *editMolData {
	e := newEditMolData(d.number, d.name)
	e.version = d.version
	info := d.info
	e.cgsByIndex = make([]UID, info.NCutGroups())
	for i, cg := range info.cgs {
		u := newUID()
		e.cgsByIndex[i] = u
		e.cgs[u] = &editCG{name: cg.name}
	}
	e.chainsByIndex = make([]UID, info.NChains())
	for i, c := range info.chains {
		u := newUID()
		e.chainsByIndex[i] = u
		e.chains[u] = &editChain{name: c.name}
	}
	e.segsByIndex = make([]UID, info.NSegments())
	for i, s := range info.segs {
		u := newUID()
		e.segsByIndex[i] = u
		e.segs[u] = &editSeg{name: s.name}
	}
	e.resByIndex = make([]UID, info.NResidues())
	for i, r := range info.residues {
		u := newUID()
		e.resByIndex[i] = u
		e.res[u] = &editRes{name: r.name, num: r.num, chain: uidAt(e.chainsByIndex, int(r.chain))}
	}
	atomKeys := d.props.atomKeys()
	for _, k := range atomKeys {
		e.atomProps[k] = d.props.m[k].(AtomProperty)
	}
	e.props = d.props
	for _, k := range atomKeys {
		e.props = e.props.Without(k)
	}
	e.atomsByIndex = make([]UID, info.NAtoms())
	for i, a := range info.atoms {
		u := newUID()
		e.atomsByIndex[i] = u
		ea := &editAtom{
			name:  a.name,
			num:   a.num,
			cg:    uidAt(e.cgsByIndex, int(a.cg)),
			res:   uidAt(e.resByIndex, int(a.res)),
			seg:   uidAt(e.segsByIndex, int(a.seg)),
			props: make(map[string]any, len(atomKeys)),
		}
		for _, k := range atomKeys {
			ea.props[k] = e.atomProps[k].AtomValue(i)
		}
		e.atoms[u] = ea
	}
	return e
}

//uidAt returns the UID at position i, or the zero UID for a negative i.
func uidAt(byIndex []UID, i int) UID {
	if i < 0 {
		return UID{}
	}
	return byIndex[i]
}

func (e *editMolData) touch() { e.layout = nil }

//positions returns the position of each UID in byIndex.
func positions(byIndex []UID) map[UID]int {
	ret := make(map[UID]int, len(byIndex))
	for i, u := range byIndex {
		ret[u] = i
	}
	return ret
}

//posOf returns the position of u, or -1 if u is zero or is not there (anymore).
func posOf(pos map[UID]int, u UID) int {
	if u.IsZero() {
		return -1
	}
	i, ok := pos[u]
	if !ok {
		return -1
	}
	return i
}

//buildInfo assigns the final indexes and builds the MoleculeInfo for the current state.
//Parents that don't exist anymore are simply absent.
func (e *editMolData) buildInfo(strict bool) (*MoleculeInfo, error) {
	cgPos := positions(e.cgsByIndex)
	resPos := positions(e.resByIndex)
	chainPos := positions(e.chainsByIndex)
	segPos := positions(e.segsByIndex)

	atoms := make([]atomInfo, len(e.atomsByIndex))
	for i, u := range e.atomsByIndex {
		a := e.atoms[u]
		atoms[i] = atomInfo{
			name: a.name,
			num:  a.num,
			cg:   CGIdx(posOf(cgPos, a.cg)),
			res:  ResIdx(posOf(resPos, a.res)),
			seg:  SegIdx(posOf(segPos, a.seg)),
		}
	}
	cgs := make([]CGName, len(e.cgsByIndex))
	for i, u := range e.cgsByIndex {
		cgs[i] = e.cgs[u].name
	}
	residues := make([]resInfo, len(e.resByIndex))
	for i, u := range e.resByIndex {
		r := e.res[u]
		residues[i] = resInfo{name: r.name, num: r.num, chain: ChainIdx(posOf(chainPos, r.chain))}
	}
	chains := make([]ChainName, len(e.chainsByIndex))
	for i, u := range e.chainsByIndex {
		chains[i] = e.chains[u].name
	}
	segs := make([]SegName, len(e.segsByIndex))
	for i, u := range e.segsByIndex {
		segs[i] = e.segs[u].name
	}
	return newMoleculeInfo(atoms, cgs, residues, chains, segs, strict)
}

//info returns the current layout, without requiring CutGroups. Used to resolve IDs.
func (e *editMolData) info() *MoleculeInfo {
	if e.layout == nil {
		info, err := e.buildInfo(false)
		if err != nil {
			bug("editMolData.info", "a non-strict layout can't fail: %v", err)
		}
		e.layout = info
	}
	return e.layout
}

//reindex moves u to position i of byIndex. A negative i counts from the end and is clamped to 0,
//an i past the end appends.
func reindex(byIndex []UID, u UID, i int) []UID {
	pos := slices.Index(byIndex, u)
	if pos < 0 {
		bug("reindex", "UID %s is not in the index list", u)
	}
	byIndex = slices.Delete(byIndex, pos, pos+1)
	n := len(byIndex) + 1
	if i < 0 {
		i = n + i
		if i < 0 {
			i = 0
		}
	}
	if i >= len(byIndex) {
		return append(byIndex, u)
	}
	return slices.Insert(byIndex, i, u)
}

//removeUID returns byIndex without u.
func removeUID(byIndex []UID, u UID) []UID {
	pos := slices.Index(byIndex, u)
	if pos < 0 {
		return byIndex
	}
	return slices.Delete(byIndex, pos, pos+1)
}

//commit builds an immutable molecule from the current state, with a new major version.
func (e *editMolData) commit() (*MoleculeData, error) {
	info, err := e.buildInfo(true)
	if err != nil {
		return nil, errDecorate(err, "commit")
	}
	props := e.props
	for k, tmpl := range e.atomProps {
		vals := make([]any, len(e.atomsByIndex))
		for i, u := range e.atomsByIndex {
			vals[i] = e.atoms[u].props[k]
		}
		p, err := tmpl.rebuild(vals)
		if err != nil {
			return nil, errDecorate(err, "commit")
		}
		props = props.With(k, p)
	}
	return newMoleculeData(e.number, e.name, nextMajor(e.number), info, props), nil
}

//templateFor returns an empty per-atom property able to hold values like v.
func templateFor(key string, v any) (AtomProperty, error) {
	switch t := v.(type) {
	case float64:
		return AtomFloats{}, nil
	case string:
		return AtomStrings{}, nil
	case int:
		return AtomInts{}, nil
	case bool:
		return AtomBools{}, nil
	case [3]float64:
		return AtomCoords{}, nil
	case [][3]float64:
		return Trajectory{frames: make([]*v3.Matrix, len(t))}, nil
	}
	return nil, incompatibleErr("templateFor", "can't store values of type %T in the per-atom property %q", v, key)
}
