/*
 * stream.go, part of gosire.
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
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/gosire/v3"
)

//Streams start with a magic string that tells which type they hold, followed by the
//schema version of that type, as a big-endian uint32. The rest is a zstd-compressed
//gob record.
const (
	magicMoleculeData  = "SIRE:MoleculeData"
	magicMolecules     = "SIRE:Molecules"
	magicMoleculeGroup = "SIRE:MoleculeGroup"
)

//Current schema versions, one per type.
const (
	moleculeDataSchema  uint32 = 1
	moleculesSchema     uint32 = 1
	moleculeGroupSchema uint32 = 1
)

//StreamLevel is the compression level used when writing. It can be changed
//before writing anything.
var StreamLevel = zstd.SpeedDefault

type atomRec struct {
	Name string
	Num  int
	CG   int
	Res  int
	Seg  int
}

type resRec struct {
	Name  string
	Num   int
	Chain int
}

type propRec struct {
	Key     string
	Kind    string
	Floats  []float64
	Strings []string
	Ints    []int
	Bools   []bool
	NFrames int
	Params  map[string]string
}

type molDataRec struct {
	Number   int64
	Name     string
	Major    uint64
	Minor    uint64
	Atoms    []atomRec
	CGs      []string
	Residues []resRec
	Chains   []string
	Segs     []string
	Props    []propRec
}

type viewsRec struct {
	Data  molDataRec
	Views [][]int
}

type molsRec struct {
	Mols []viewsRec
}

type viewRefRec struct {
	Num int64
	K   int
}

type groupRec struct {
	Name      string
	Number    uint64
	Major     uint64
	Minor     uint64
	Mols      []viewsRec //in the order they were added
	ViewOrder []viewRefRec
}

func writeHeader(w io.Writer, magic string, version uint32) error {
	if _, err := io.WriteString(w, magic); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, version)
}

//readHeader checks the magic string and returns the schema version.
func readHeader(r io.Reader, magic string) (uint32, error) {
	buf := make([]byte, len(magic))
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, newError(KindParse, "", "readHeader", "can't read the %s header: %v", magic, err)
	}
	if string(buf) != magic {
		return 0, newError(KindParse, "", "readHeader", "expected a %s stream, got %q", magic, buf)
	}
	var version uint32
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return 0, newError(KindParse, "", "readHeader", "can't read the %s schema version: %v", magic, err)
	}
	return version, nil
}

func versionErr(caller, magic string, got, max uint32) error {
	return newError(KindVersion, "", caller, "%s schema version %d is not supported (up to %d)", magic, got, max)
}

func writeRecord(w io.Writer, magic string, version uint32, rec any) error {
	if err := writeHeader(w, magic, version); err != nil {
		return err
	}
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(StreamLevel))
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(zw).Encode(rec); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func readRecord(r io.Reader, rec any) error {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return err
	}
	defer zr.Close()
	if err := gob.NewDecoder(zr).Decode(rec); err != nil {
		return newError(KindParse, "", "readRecord", "corrupt record: %v", err)
	}
	return nil
}

func encodeProp(key string, v any) (propRec, error) {
	p := propRec{Key: key}
	switch t := v.(type) {
	case AtomFloats:
		p.Kind, p.Floats = "floats", t.Values()
	case AtomStrings:
		p.Kind, p.Strings = "strings", t.Values()
	case AtomInts:
		p.Kind, p.Ints = "ints", t.Values()
	case AtomBools:
		p.Kind, p.Bools = "bools", t.Values()
	case AtomCoords:
		p.Kind = "coords"
		p.Floats = make([]float64, 0, 3*t.NAtoms())
		for i := 0; i < t.NAtoms(); i++ {
			c := t.Vec(i)
			p.Floats = append(p.Floats, c[:]...)
		}
	case Trajectory:
		p.Kind, p.NFrames, p.Ints = "trajectory", t.Len(), []int{t.natoms}
		for _, f := range t.frames {
			for i := 0; i < f.NVecs(); i++ {
				c := f.Vec(i)
				p.Floats = append(p.Floats, c[:]...)
			}
		}
	case float64:
		p.Kind, p.Floats = "float", []float64{t}
	case string:
		p.Kind, p.Strings = "string", []string{t}
	case int:
		p.Kind, p.Ints = "int", []int{t}
	case bool:
		p.Kind, p.Bools = "bool", []bool{t}
	case ParameterMap:
		p.Kind, p.Params = "params", map[string]string(t)
	default:
		return p, incompatibleErr("encodeProp", "can't write property %q of type %T", key, v)
	}
	return p, nil
}

func decodeProp(p propRec) (any, error) {
	switch p.Kind {
	case "floats":
		return NewAtomValues(p.Floats), nil
	case "strings":
		return NewAtomValues(p.Strings), nil
	case "ints":
		return NewAtomValues(p.Ints), nil
	case "bools":
		return NewAtomValues(p.Bools), nil
	case "coords":
		c, err := v3.NewMatrix(append([]float64(nil), p.Floats...))
		if err != nil {
			return nil, err
		}
		return AtomCoords{c}, nil
	case "trajectory":
		if len(p.Ints) != 1 || len(p.Floats) != 3*p.Ints[0]*p.NFrames {
			return nil, newError(KindParse, "", "decodeProp", "bad trajectory record for %q", p.Key)
		}
		natoms := p.Ints[0]
		frames := make([]*v3.Matrix, p.NFrames)
		for k := range frames {
			f, err := v3.NewMatrix(append([]float64(nil), p.Floats[3*natoms*k:3*natoms*(k+1)]...))
			if err != nil {
				return nil, err
			}
			frames[k] = f
		}
		return Trajectory{natoms: natoms, frames: frames}, nil
	case "float":
		if len(p.Floats) == 0 {
			break
		}
		return p.Floats[0], nil
	case "string":
		if len(p.Strings) == 0 {
			break
		}
		return p.Strings[0], nil
	case "int":
		if len(p.Ints) == 0 {
			break
		}
		return p.Ints[0], nil
	case "bool":
		if len(p.Bools) == 0 {
			break
		}
		return p.Bools[0], nil
	case "params":
		return ParameterMap(p.Params), nil
	}
	return nil, newError(KindParse, "", "decodeProp", "bad or unknown property kind %q for %q", p.Kind, p.Key)
}

func encodeData(d *MoleculeData) (molDataRec, error) {
	info := d.info
	rec := molDataRec{
		Number: int64(d.number),
		Name:   string(d.name),
		Major:  d.version.Major,
		Minor:  d.version.Minor,
	}
	for _, a := range info.atoms {
		rec.Atoms = append(rec.Atoms, atomRec{string(a.name), int(a.num), int(a.cg), int(a.res), int(a.seg)})
	}
	for _, c := range info.cgs {
		rec.CGs = append(rec.CGs, string(c.name))
	}
	for _, r := range info.residues {
		rec.Residues = append(rec.Residues, resRec{string(r.name), int(r.num), int(r.chain)})
	}
	for _, c := range info.chains {
		rec.Chains = append(rec.Chains, string(c.name))
	}
	for _, s := range info.segs {
		rec.Segs = append(rec.Segs, string(s.name))
	}
	for _, k := range d.props.Keys() {
		p, err := encodeProp(k, d.props.m[k])
		if err != nil {
			return rec, errDecorate(err, "encodeData")
		}
		rec.Props = append(rec.Props, p)
	}
	return rec, nil
}

func decodeData(rec molDataRec) (*MoleculeData, error) {
	atoms := make([]atomInfo, len(rec.Atoms))
	for i, a := range rec.Atoms {
		atoms[i] = atomInfo{name: AtomName(a.Name), num: AtomNum(a.Num), cg: CGIdx(a.CG), res: ResIdx(a.Res), seg: SegIdx(a.Seg)}
	}
	cgs := make([]CGName, len(rec.CGs))
	for i, c := range rec.CGs {
		cgs[i] = CGName(c)
	}
	residues := make([]resInfo, len(rec.Residues))
	for i, r := range rec.Residues {
		residues[i] = resInfo{name: ResName(r.Name), num: ResNum(r.Num), chain: ChainIdx(r.Chain)}
	}
	chains := make([]ChainName, len(rec.Chains))
	for i, c := range rec.Chains {
		chains[i] = ChainName(c)
	}
	segs := make([]SegName, len(rec.Segs))
	for i, s := range rec.Segs {
		segs[i] = SegName(s)
	}
	if err := checkParents(atoms, len(cgs), residues, len(chains), len(segs)); err != nil {
		return nil, err
	}
	info, err := newMoleculeInfo(atoms, cgs, residues, chains, segs, true)
	if err != nil {
		return nil, errDecorate(err, "decodeData")
	}
	var props Properties
	for _, p := range rec.Props {
		v, err := decodeProp(p)
		if err != nil {
			return nil, errDecorate(err, "decodeData")
		}
		if ap, ok := v.(AtomProperty); ok && ap.NAtoms() != info.NAtoms() {
			return nil, newError(KindParse, "", "decodeData", "property %q has %d values for %d atoms", p.Key, ap.NAtoms(), info.NAtoms())
		}
		props = props.With(p.Key, v)
	}
	number := MolNum(rec.Number)
	version := Version{Major: rec.Major, Minor: rec.Minor}
	observeVersion(number, version)
	return newMoleculeData(number, MolName(rec.Name), version, info, props), nil
}

//checkParents makes sure that a record read from outside has no out of range parents,
//which would otherwise be program bugs.
func checkParents(atoms []atomInfo, ncgs int, residues []resInfo, nchains, nsegs int) error {
	for i, a := range atoms {
		if int(a.cg) >= ncgs || int(a.res) >= len(residues) || int(a.seg) >= nsegs {
			return newError(KindParse, "", "checkParents", "atom %d has parents out of range", i)
		}
	}
	for i, r := range residues {
		if int(r.chain) >= nchains {
			return newError(KindParse, "", "checkParents", "residue %d has a chain out of range", i)
		}
	}
	return nil
}

func encodeViews(v *ViewsOfMol) (viewsRec, error) {
	d, err := encodeData(v.d)
	if err != nil {
		return viewsRec{}, err
	}
	rec := viewsRec{Data: d}
	for _, s := range v.selections() {
		idxs := make([]int, 0, s.NSelected())
		for _, a := range s.Indexes() {
			idxs = append(idxs, int(a))
		}
		rec.Views = append(rec.Views, idxs)
	}
	return rec, nil
}

func decodeViews(rec viewsRec) (*ViewsOfMol, error) {
	d, err := decodeData(rec.Data)
	if err != nil {
		return nil, err
	}
	v := NewViewsOfMol(d)
	for _, idxs := range rec.Views {
		atoms := make([]AtomIdx, len(idxs))
		for i, a := range idxs {
			if a < 0 {
				return nil, newError(KindParse, "", "decodeViews", "negative atom index %d", a)
			}
			atoms[i] = AtomIdx(a)
		}
		s, err := SelectAtoms(d.info, atoms)
		if err != nil {
			return nil, newError(KindParse, "", "decodeViews", "bad view of molecule %d: %v", d.number, err)
		}
		v.add(s)
	}
	return v, nil
}

//WriteMoleculeData writes d to w.
func WriteMoleculeData(w io.Writer, d *MoleculeData) error {
	rec, err := encodeData(d)
	if err != nil {
		return errDecorate(err, "WriteMoleculeData")
	}
	return errDecorate(writeRecord(w, magicMoleculeData, moleculeDataSchema, rec), "WriteMoleculeData")
}

//ReadMoleculeData reads a molecule written by WriteMoleculeData. Fails with a Version error
//if the stream was written with a schema this version of the library doesn't know.
func ReadMoleculeData(r io.Reader) (*MoleculeData, error) {
	version, err := readHeader(r, magicMoleculeData)
	if err != nil {
		return nil, errDecorate(err, "ReadMoleculeData")
	}
	switch version {
	case 1:
		var rec molDataRec
		if err := readRecord(r, &rec); err != nil {
			return nil, errDecorate(err, "ReadMoleculeData")
		}
		d, err := decodeData(rec)
		return d, errDecorate(err, "ReadMoleculeData")
	}
	return nil, versionErr("ReadMoleculeData", magicMoleculeData, version, moleculeDataSchema)
}

//WriteMolecules writes all the molecules in m, with their views, to w.
func WriteMolecules(w io.Writer, m *Molecules) error {
	var rec molsRec
	for _, n := range m.MolNums() {
		v, err := encodeViews(m.mols[n])
		if err != nil {
			return errDecorate(err, "WriteMolecules")
		}
		rec.Mols = append(rec.Mols, v)
	}
	return errDecorate(writeRecord(w, magicMolecules, moleculesSchema, rec), "WriteMolecules")
}

//ReadMolecules reads molecules written by WriteMolecules.
func ReadMolecules(r io.Reader) (*Molecules, error) {
	version, err := readHeader(r, magicMolecules)
	if err != nil {
		return nil, errDecorate(err, "ReadMolecules")
	}
	if version != 1 {
		return nil, versionErr("ReadMolecules", magicMolecules, version, moleculesSchema)
	}
	var rec molsRec
	if err := readRecord(r, &rec); err != nil {
		return nil, errDecorate(err, "ReadMolecules")
	}
	m := &Molecules{}
	m.init()
	for _, vr := range rec.Mols {
		v, err := decodeViews(vr)
		if err != nil {
			return nil, errDecorate(err, "ReadMolecules")
		}
		if !v.IsEmpty() {
			m.mols[v.d.number] = v
		}
	}
	return m, nil
}

//WriteMoleculeGroup writes g to w, keeping its name, number, versions and order.
func WriteMoleculeGroup(w io.Writer, g *MoleculeGroup) error {
	g.mu.RLock()
	rec := groupRec{Name: g.name, Number: uint64(g.number), Major: g.major, Minor: g.minor}
	var err error
	for _, n := range g.molOrder {
		var v viewsRec
		v, err = encodeViews(g.mols.mols[n])
		if err != nil {
			break
		}
		rec.Mols = append(rec.Mols, v)
	}
	for _, r := range g.viewOrder {
		rec.ViewOrder = append(rec.ViewOrder, viewRefRec{Num: int64(r.num), K: r.k})
	}
	g.mu.RUnlock()
	if err != nil {
		return errDecorate(err, "WriteMoleculeGroup")
	}
	return errDecorate(writeRecord(w, magicMoleculeGroup, moleculeGroupSchema, rec), "WriteMoleculeGroup")
}

//ReadMoleculeGroup reads a group written by WriteMoleculeGroup.
func ReadMoleculeGroup(r io.Reader) (*MoleculeGroup, error) {
	version, err := readHeader(r, magicMoleculeGroup)
	if err != nil {
		return nil, errDecorate(err, "ReadMoleculeGroup")
	}
	if version != 1 {
		return nil, versionErr("ReadMoleculeGroup", magicMoleculeGroup, version, moleculeGroupSchema)
	}
	var rec groupRec
	if err := readRecord(r, &rec); err != nil {
		return nil, errDecorate(err, "ReadMoleculeGroup")
	}
	g := &MoleculeGroup{name: rec.Name, number: MGNum(rec.Number), major: rec.Major, minor: rec.Minor}
	g.mols.init()
	for {
		cur := lastMGNum.Load()
		if rec.Number <= cur || lastMGNum.CompareAndSwap(cur, rec.Number) {
			break
		}
	}
	for _, vr := range rec.Mols {
		v, err := decodeViews(vr)
		if err != nil {
			return nil, errDecorate(err, "ReadMoleculeGroup")
		}
		g.mols.mols[v.d.number] = v
		g.molOrder = append(g.molOrder, v.d.number)
	}
	for _, r := range rec.ViewOrder {
		v, ok := g.mols.mols[MolNum(r.Num)]
		if !ok || r.K < 0 || r.K >= v.NViews() {
			return nil, newError(KindParse, "", "ReadMoleculeGroup", "view order refers to view %d of molecule %d, which is not there", r.K, r.Num)
		}
		g.viewOrder = append(g.viewOrder, viewRef{num: MolNum(r.Num), k: r.K})
	}
	if len(g.viewOrder) != countViews(g) {
		return nil, newError(KindParse, "", "ReadMoleculeGroup", "view order has %d entries for %d views", len(g.viewOrder), countViews(g))
	}
	return g, nil
}

func countViews(g *MoleculeGroup) int {
	n := 0
	for _, v := range g.mols.mols {
		n += v.NViews()
	}
	return n
}

//Summary returns a short description of the stream type and schema version in the header of data.
func Summary(data []byte) string {
	for _, m := range []string{magicMoleculeGroup, magicMoleculeData, magicMolecules} {
		if len(data) >= len(m)+4 && string(data[:len(m)]) == m {
			return fmt.Sprintf("%s v%d", m, binary.BigEndian.Uint32(data[len(m):len(m)+4]))
		}
	}
	return "unknown"
}
