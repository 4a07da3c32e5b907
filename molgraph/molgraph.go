/*
 * molgraph.go, part of gosire.
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

//Package molgraph builds the covalent connectivity of a molecule as a gonum graph,
//and derives from it residue and chain adjacency, fragments and paths between atoms.
package molgraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/rmera/gosire"
	"github.com/rmera/gosire/v3"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

const (
	//TooClose is the distance (A) below which two atoms are never considered bonded.
	TooClose = 0.63
	//BondTolerance is added to the sum of the covalent radii of two atoms to get the longest
	//distance (A) at which they are considered bonded.
	BondTolerance = 0.45
)

//Topology is the set of covalent bonds of one molecule. Node IDs are atom indexes and edge
//weights are bond lengths.
type Topology struct {
	d *mol.MoleculeData
	g *simple.WeightedUndirectedGraph
}

//elements returns the element symbol of each atom, from the element property if present,
//otherwise guessed from the atom names.
func elements(names []mol.AtomName, prop []string) ([]string, error) {
	ret := make([]string, len(names))
	for i, n := range names {
		if prop != nil && prop[i] != "" {
			ret[i] = prop[i]
			continue
		}
		s, err := mol.GuessElement(n)
		if err != nil {
			return nil, fmt.Errorf("molgraph: atom %d: %w", i, err)
		}
		ret[i] = s
	}
	return ret, nil
}

//bondGraph assigns bonds based on a simple distance criterium, similar to that described
//in DOI:10.1186/1758-2946-3-33. Atoms with more bonds than their element allows lose the longest ones.
func bondGraph(coords *v3.Matrix, elems []string) (*simple.WeightedUndirectedGraph, error) {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	n := coords.NVecs()
	if n != len(elems) {
		return nil, fmt.Errorf("molgraph: %d coordinates for %d atoms: %w", n, len(elems), mol.ErrIncompatible)
	}
	radii := make([]float64, n)
	maxrad := 0.0
	for i, e := range elems {
		r, ok := mol.CovalentRadius(e)
		if !ok {
			return nil, fmt.Errorf("molgraph: couldn't find the covalent radius for %s %d: %w", e, i, mol.ErrMissing)
		}
		radii[i] = r
		maxrad = math.Max(maxrad, r)
		g.AddNode(simple.Node(i))
	}
	maxdist := 2*maxrad + BondTolerance
	for i := 0; i < n; i++ {
		a := coords.Vec(i)
		for j := i + 1; j < n; j++ {
			b := coords.Vec(j)
			dx, dy, dz := b[0]-a[0], b[1]-a[1], b[2]-a[2]
			if math.Abs(dx) > maxdist || math.Abs(dy) > maxdist || math.Abs(dz) > maxdist {
				continue
			}
			d := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if d < radii[i]+radii[j]+BondTolerance && d > TooClose {
				g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(j), W: d})
			}
		}
	}
	//Now we check that no atom has too many bonds.
	for i, e := range elems {
		max := mol.MaxBonds(e)
		if max == 0 {
			continue
		}
		nb := graph.NodesOf(g.From(int64(i)))
		if len(nb) <= max {
			continue
		}
		sort.Slice(nb, func(x, y int) bool {
			wx, _ := g.Weight(int64(i), nb[x].ID())
			wy, _ := g.Weight(int64(i), nb[y].ID())
			return wx < wy
		})
		for _, v := range nb[max:] {
			g.RemoveEdge(int64(i), v.ID())
		}
	}
	return g, nil
}

//New assigns the bonds of the molecule d from its coordinates and elements. pm can
//redirect the coordinates and element properties.
func New(d *mol.MoleculeData, pm mol.ParameterMap) (*Topology, error) {
	coords, err := d.Coordinates(pm)
	if err != nil {
		return nil, err
	}
	info := d.Info()
	names := make([]mol.AtomName, info.NAtoms())
	for i := range names {
		names[i] = info.AtomName(mol.AtomIdx(i))
	}
	var prop []string
	if p, err := mol.AtomPropertyOf[string](d, pm.Source(mol.ElementKey)); err == nil {
		prop = p.Values()
	}
	elems, err := elements(names, prop)
	if err != nil {
		return nil, err
	}
	g, err := bondGraph(coords, elems)
	if err != nil {
		return nil, err
	}
	return &Topology{d: d, g: g}, nil
}

//Data returns the molecule the topology was built for.
func (t *Topology) Data() *mol.MoleculeData { return t.d }

//Graph returns the underlying graph.
func (t *Topology) Graph() graph.WeightedUndirected { return t.g }

//NBonds returns the number of bonds.
func (t *Topology) NBonds() int { return t.g.WeightedEdges().Len() }

//Bonded returns true if atoms i and j are bonded.
func (t *Topology) Bonded(i, j mol.AtomIdx) bool {
	return i != j && t.g.HasEdgeBetween(int64(i), int64(j))
}

//Length returns the length of the bond between i and j, and false if they are not bonded.
func (t *Topology) Length(i, j mol.AtomIdx) (float64, bool) {
	if !t.Bonded(i, j) {
		return 0, false
	}
	return t.g.Weight(int64(i), int64(j))
}

//BondsOf returns the atoms bonded to i, in increasing order.
func (t *Topology) BondsOf(i mol.AtomIdx) []mol.AtomIdx {
	return sortedIdx(graph.NodesOf(t.g.From(int64(i))))
}

func sortedIdx(nodes []graph.Node) []mol.AtomIdx {
	ret := make([]mol.AtomIdx, len(nodes))
	for k, v := range nodes {
		ret[k] = mol.AtomIdx(v.ID())
	}
	sort.Slice(ret, func(x, y int) bool { return ret[x] < ret[y] })
	return ret
}

//bondedSets returns true if an atom of a is bonded to an atom of b.
func (t *Topology) bondedSets(a, b []mol.AtomIdx) bool {
	inb := make(map[int64]bool, len(b))
	for _, v := range b {
		inb[int64(v)] = true
	}
	for _, v := range a {
		to := t.g.From(int64(v))
		for to.Next() {
			if inb[to.Node().ID()] {
				return true
			}
		}
	}
	return false
}

//ResiduesBonded returns true if the two residues are different and covalently bonded.
func (t *Topology) ResiduesBonded(r1, r2 mol.ResIdx) bool {
	if r1 == r2 {
		return false
	}
	info := t.d.Info()
	return t.bondedSets(info.AtomsInResidue(r1), info.AtomsInResidue(r2))
}

//ConnectedResidues returns the residues bonded to r, in increasing order.
func (t *Topology) ConnectedResidues(r mol.ResIdx) []mol.ResIdx {
	info := t.d.Info()
	seen := make(map[mol.ResIdx]bool)
	for _, a := range info.AtomsInResidue(r) {
		for _, b := range t.BondsOf(a) {
			other, err := info.ParentResidue(b)
			if err != nil || other == r {
				continue
			}
			seen[other] = true
		}
	}
	ret := make([]mol.ResIdx, 0, len(seen))
	for k := range seen {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(x, y int) bool { return ret[x] < ret[y] })
	return ret
}

//ChainsBonded returns true if the two chains are different and covalently bonded
//(for instance, by a disulfide bridge).
func (t *Topology) ChainsBonded(c1, c2 mol.ChainIdx) bool {
	if c1 == c2 {
		return false
	}
	info := t.d.Info()
	return t.bondedSets(info.AtomsInChain(c1), info.AtomsInChain(c2))
}

//Fragments returns the sets of atoms that are covalently connected, each in increasing
//order, sorted by their first atom.
func (t *Topology) Fragments() [][]mol.AtomIdx {
	return fragments(t.g)
}

func fragments(g graph.Undirected) [][]mol.AtomIdx {
	cc := topo.ConnectedComponents(g)
	ret := make([][]mol.AtomIdx, len(cc))
	for i, c := range cc {
		ret[i] = sortedIdx(c)
	}
	sort.Slice(ret, func(x, y int) bool { return ret[x][0] < ret[y][0] })
	return ret
}

//ShortestPath returns the atoms in the shortest bonded path between from and to, both
//included, or nil if they are not connected. Paths are weighted by bond length.
func (t *Topology) ShortestPath(from, to mol.AtomIdx) []mol.AtomIdx {
	sp := path.DijkstraFrom(simple.Node(from), t.g)
	p, _ := sp.To(int64(to))
	if len(p) == 0 {
		return nil
	}
	ret := make([]mol.AtomIdx, len(p))
	for i, v := range p {
		ret[i] = mol.AtomIdx(v.ID())
	}
	return ret
}
