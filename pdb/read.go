/*
 * read.go, part of gosire.
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

//Package pdb reads and writes PDB files. The PDB format is flat: every ATOM/HETATM line
//carries its residue, chain and segment labels. The reader rebuilds the molecular
//hierarchy (atoms, residues, chains, segments and CutGroups) from those labels.
package pdb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rmera/gosire"
	"github.com/rmera/gosire/v3"
	"github.com/rmera/gosire/zwrap"
)

//minLineLen is the shortest ATOM/HETATM line that still carries the coordinates.
const minLineLen = 54

//maxLineLen is the longest line the reader accepts.
const maxLineLen = 1024 * 1024

//Options control how PDB files are turned into molecules.
type Options struct {
	//Name is the name given to the molecules read. If more than one molecule is found
	//(because of TER records) they are named Name_1, Name_2, and so on. Defaults to "PDB".
	Name string
	//Cutting is applied to every molecule before it is committed. If nil, all the atoms
	//of a molecule are placed in a single CutGroup.
	Cutting mol.CuttingFunction
	//Logger gets debug information about the reconstruction. Nothing is logged if nil.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

//record contains the information from one ATOM/HETATM line.
type record struct {
	line      int
	het       bool
	serial    int
	name      string
	altloc    string
	resname   string
	chain     string
	resseq    int
	icode     string
	coords    [3]float64
	occupancy float64
	bfactor   float64
	segid     string
	element   string
	charge    int
}

//idstring identifies an atom regardless of its alternate location.
func (r *record) idstring() string {
	return fmt.Sprintf("%s:%s:%d:%s:%s:%s", r.name, r.resname, r.resseq, r.icode, r.chain, r.segid)
}

//field returns the columns [i,j) of line, cut at the end of the line, without spaces.
func field(line string, i, j int) string {
	if i >= len(line) {
		return ""
	}
	if j > len(line) {
		j = len(line)
	}
	return strings.TrimSpace(line[i:j])
}

//parseCharge parses charges in the PDB "2+"/"1-" format. Anything else is 0.
func parseCharge(s string) int {
	if len(s) != 2 {
		return 0
	}
	q, err := strconv.Atoi(s[:1])
	if err != nil {
		return 0
	}
	switch s[1] {
	case '+':
		return q
	case '-':
		return -q
	}
	return 0
}

//parseRecord reads an ATOM or HETATM line. The serial number, residue number and coordinates
//are required. Occupancy, B-factor, segment, element and charge are optional.
func parseRecord(line string, lineno int) (*record, error) {
	if len(line) < minLineLen {
		return nil, newParseError(lineno, line, "line too short (%d characters, at least %d needed)", len(line), minLineLen)
	}
	r := &record{line: lineno, het: strings.HasPrefix(line, "HETATM")}
	var err error
	r.serial, err = strconv.Atoi(field(line, 6, 11))
	if err != nil {
		return nil, newParseError(lineno, line, "bad atom serial number %q", field(line, 6, 11))
	}
	r.name = field(line, 12, 16)
	r.altloc = field(line, 16, 17)
	r.resname = field(line, 17, 20)
	r.chain = field(line, 21, 22)
	r.resseq, err = strconv.Atoi(field(line, 22, 26))
	if err != nil {
		return nil, newParseError(lineno, line, "bad residue number %q", field(line, 22, 26))
	}
	r.icode = field(line, 26, 27)
	for k, start := range []int{30, 38, 46} {
		r.coords[k], err = strconv.ParseFloat(field(line, start, start+8), 64)
		if err != nil {
			return nil, newParseError(lineno, line, "bad coordinate %q", field(line, start, start+8))
		}
	}
	r.occupancy = 1
	if occ, err := strconv.ParseFloat(field(line, 54, 60), 64); err == nil {
		r.occupancy = occ
	}
	if b, err := strconv.ParseFloat(field(line, 60, 66), 64); err == nil {
		r.bfactor = b
	}
	r.segid = field(line, 72, 76)
	r.element = field(line, 76, 78)
	r.charge = parseCharge(field(line, 78, 80))
	return r, nil
}

//model is the set of molecules (each a slice of records, split by TER) from one MODEL.
type model struct {
	line int
	mols [][]*record
}

func (m *model) add(r *record) {
	if len(m.mols) == 0 {
		m.mols = append(m.mols, nil)
	}
	last := len(m.mols) - 1
	m.mols[last] = append(m.mols[last], r)
}

//ter closes the current molecule, if it has any atom.
func (m *model) ter() {
	if len(m.mols) > 0 && len(m.mols[len(m.mols)-1]) > 0 {
		m.mols = append(m.mols, nil)
	}
}

func (m *model) molecules() [][]*record {
	out := make([][]*record, 0, len(m.mols))
	for _, v := range m.mols {
		if len(v) > 0 {
			out = append(out, v)
		}
	}
	return out
}

//scan reads all the models in the input. Reading stops at an END record.
func scan(r io.Reader) ([]*model, error) {
	var models []*model
	var current *model
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	lineno := 0
	for s.Scan() {
		lineno++
		line := strings.TrimRight(s.Text(), "\r\n")
		switch {
		case strings.HasPrefix(line, "ATOM  "), strings.HasPrefix(line, "HETATM"):
			rec, err := parseRecord(line, lineno)
			if err != nil {
				return nil, err
			}
			if current == nil {
				current = &model{line: lineno}
				models = append(models, current)
			}
			current.add(rec)
		case strings.HasPrefix(line, "MODEL"):
			current = &model{line: lineno}
			models = append(models, current)
		case strings.HasPrefix(line, "ENDMDL"):
			current = nil
		case strings.HasPrefix(line, "TER"):
			if current != nil {
				current.ter()
			}
		case line == "END" || strings.HasPrefix(line, "END "):
			return models, nil
		}
	}
	if err := s.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, newParseError(lineno+1, "", "line longer than %d bytes", maxLineLen)
		}
		return nil, fmt.Errorf("pdb: reading input: %w", err)
	}
	return models, nil
}

//resolveAltlocs keeps only one record per idstring: the one with the highest occupancy, or
//the first one seen if the occupancies are equal. The kept record takes the position of the
//first record seen with the same idstring.
func resolveAltlocs(recs []*record, log *slog.Logger) []*record {
	pos := make(map[string]int, len(recs))
	kept := make([]*record, 0, len(recs))
	for _, r := range recs {
		id := r.idstring()
		i, ok := pos[id]
		if !ok {
			pos[id] = len(kept)
			kept = append(kept, r)
			continue
		}
		if r.occupancy > kept[i].occupancy {
			log.Debug("alternate location replaced", "atom", id, "line", r.line, "altloc", r.altloc, "occupancy", r.occupancy)
			kept[i] = r
			continue
		}
		log.Debug("alternate location discarded", "atom", id, "line", r.line, "altloc", r.altloc, "occupancy", r.occupancy)
	}
	return kept
}

type resKey struct {
	name  string
	num   int
	icode string
	chain string
}

func (r *record) resKey() resKey {
	return resKey{name: r.resname, num: r.resseq, icode: r.icode, chain: r.chain}
}

//build turns the records of one molecule into a MoleculeData. Residues are contiguous runs of
//atoms with the same residue name, number, insertion code and chain. Atoms with an empty
//chain ID are in chainless residues, atoms with an empty segment ID are in no segment.
func build(name mol.MolName, recs []*record, frames []*v3.Matrix, opts Options) (*mol.MoleculeData, error) {
	log := opts.logger()
	ed := mol.NewMolStructureEditor(name)
	cg := ed.AddCutGroup()
	if err := cg.Rename(mol.CGName(name)); err != nil {
		return nil, errDecorate(err, "build")
	}
	chains := make(map[string]*mol.ChainStructureEditor)
	segs := make(map[string]*mol.SegStructureEditor)
	var res *mol.ResStructureEditor
	var prev resKey
	n := len(recs)
	coords := v3.Zeros(n)
	occ := make([]float64, n)
	bfac := make([]float64, n)
	elem := make([]string, n)
	charge := make([]int, n)
	alt := make([]string, n)
	icode := make([]string, n)
	het := make([]bool, n)
	for i, r := range recs {
		if res == nil || r.resKey() != prev {
			prev = r.resKey()
			res = ed.AddResidue()
			if err := res.Rename(mol.ResName(r.resname)); err != nil {
				return nil, errDecorate(err, "build")
			}
			if err := res.Renumber(mol.ResNum(r.resseq)); err != nil {
				return nil, errDecorate(err, "build")
			}
			if r.chain != "" {
				c, ok := chains[r.chain]
				if !ok {
					c = ed.AddChain()
					if err := c.Rename(mol.ChainName(r.chain)); err != nil {
						return nil, errDecorate(err, "build")
					}
					chains[r.chain] = c
				}
				if err := c.Add(res.UID()); err != nil {
					return nil, errDecorate(err, "build")
				}
			}
		}
		a := ed.AddAtom()
		if err := a.Rename(mol.AtomName(r.name)); err != nil {
			return nil, errDecorate(err, "build")
		}
		if err := a.Renumber(mol.AtomNum(r.serial)); err != nil {
			return nil, errDecorate(err, "build")
		}
		if err := res.Add(a.UID()); err != nil {
			return nil, errDecorate(err, "build")
		}
		if err := cg.Add(a.UID()); err != nil {
			return nil, errDecorate(err, "build")
		}
		if r.segid != "" {
			s, ok := segs[r.segid]
			if !ok {
				s = ed.AddSegment()
				if err := s.Rename(mol.SegName(r.segid)); err != nil {
					return nil, errDecorate(err, "build")
				}
				segs[r.segid] = s
			}
			if err := s.Add(a.UID()); err != nil {
				return nil, errDecorate(err, "build")
			}
		}
		coords.SetVec(i, r.coords)
		occ[i] = r.occupancy
		bfac[i] = r.bfactor
		elem[i] = element(r, log)
		charge[i] = r.charge
		alt[i] = r.altloc
		icode[i] = r.icode
		het[i] = r.het
	}
	props := []struct {
		key string
		p   mol.AtomProperty
	}{
		{mol.CoordinatesKey, mol.NewAtomCoords(coords)},
		{mol.OccupancyKey, mol.NewAtomValues(occ)},
		{mol.BFactorKey, mol.NewAtomValues(bfac)},
		{mol.ElementKey, mol.NewAtomValues(elem)},
		{mol.ChargeKey, mol.NewAtomValues(charge)},
		{mol.AlternateKey, mol.NewAtomValues(alt)},
		{mol.ICodeKey, mol.NewAtomValues(icode)},
		{mol.HetAtmKey, mol.NewAtomValues(het)},
	}
	for _, v := range props {
		if err := ed.SetProperty(v.key, v.p); err != nil {
			return nil, errDecorate(err, "build")
		}
	}
	if len(frames) > 0 {
		traj, err := mol.NewTrajectory(n, frames...)
		if err != nil {
			return nil, errDecorate(err, "build")
		}
		if err := ed.SetProperty(mol.TrajectoryKey, traj); err != nil {
			return nil, errDecorate(err, "build")
		}
	}
	if opts.Cutting != nil {
		if err := opts.Cutting.Cut(ed); err != nil {
			return nil, errDecorate(err, "build")
		}
	}
	m, err := ed.Commit()
	if err != nil {
		return nil, errDecorate(err, "build")
	}
	log.Debug("molecule built", "name", name, "atoms", m.NAtoms(), "residues", m.NResidues(), "chains", m.NChains(), "segments", m.NSegments(), "frames", len(frames))
	return m.Data(), nil
}

//element returns the element symbol of the record, guessing it from the atom
//name when the element columns are empty. An unknown element is an empty string.
func element(r *record, log *slog.Logger) string {
	if r.element != "" {
		return mol.NormalizeSymbol(r.element)
	}
	sym, err := mol.GuessElement(mol.AtomName(r.name))
	if err != nil {
		log.Debug("element not guessed", "atom", r.name, "line", r.line)
		return ""
	}
	return sym
}

//extraFrames checks that every model after the first has the same atoms as the first, and
//returns, for each molecule, the coordinates of the later models.
func extraFrames(first [][]*record, models []*model, log *slog.Logger) ([][]*v3.Matrix, error) {
	frames := make([][]*v3.Matrix, len(first))
	for _, m := range models {
		var kept []*record
		for _, recs := range m.molecules() {
			kept = append(kept, recs...)
		}
		kept = resolveAltlocs(kept, log)
		k := 0
		for i, ref := range first {
			if k+len(ref) > len(kept) {
				return nil, newParseError(m.line, "", "model has %d atoms, the first model has more", len(kept))
			}
			f := v3.Zeros(len(ref))
			for j, r := range ref {
				other := kept[k]
				if other.idstring() != r.idstring() {
					return nil, newParseError(other.line, "", "atom %s does not match atom %s of the first model", other.idstring(), r.idstring())
				}
				f.SetVec(j, other.coords)
				k++
			}
			frames[i] = append(frames[i], f)
		}
		if k != len(kept) {
			return nil, newParseError(m.line, "", "model has %d atoms, the first model has %d", len(kept), k)
		}
	}
	return frames, nil
}

//Read reads PDB data from r and returns one MoleculeData per molecule found.
//TER records separate molecules. With several MODELs, the first one defines the molecules,
//and the coordinates of the others are stored as the trajectory property.
//Malformed ATOM/HETATM records give an *Error that matches mol.ErrParse.
func Read(r io.Reader, opts Options) ([]*mol.MoleculeData, error) {
	log := opts.logger()
	models, err := scan(r)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	var first [][]*record
	for _, recs := range models[0].molecules() {
		first = append(first, resolveAltlocs(recs, log))
	}
	frames, err := extraFrames(first, models[1:], log)
	if err != nil {
		return nil, err
	}
	name := opts.Name
	if name == "" {
		name = "PDB"
	}
	ret := make([]*mol.MoleculeData, 0, len(first))
	for i, recs := range first {
		n := name
		if len(first) > 1 {
			n = fmt.Sprintf("%s_%d", name, i+1)
		}
		d, err := build(mol.MolName(n), recs, frames[i], opts)
		if err != nil {
			return nil, errDecorate(err, "Read")
		}
		ret = append(ret, d)
	}
	log.Info("PDB read", "molecules", len(ret), "models", len(models))
	return ret, nil
}

//ReadFile reads a PDB file, which can be gzip or zstd compressed. If opts.Name is empty
//the molecules are named after the file.
func ReadFile(filename string, opts Options) ([]*mol.MoleculeData, error) {
	f, err := zwrap.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if opts.Name == "" {
		base := filepath.Base(filename)
		for ext := filepath.Ext(base); ext != ""; ext = filepath.Ext(base) {
			base = strings.TrimSuffix(base, ext)
		}
		opts.Name = base
	}
	mols, err := Read(f, opts)
	if err != nil {
		if perr, ok := err.(*Error); ok {
			perr.filename = filename
		}
		return nil, err
	}
	return mols, nil
}
