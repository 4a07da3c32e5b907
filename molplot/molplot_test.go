/*
 * molplot_test.go, part of gosire.
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

package molplot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/gosire"
	"github.com/rmera/gosire/pdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(serial int, name, res string, resseq int, x, bfac float64) string {
	return fmt.Sprintf("ATOM  %5d %-4s %3s A%4d    %8.3f%8.3f%8.3f  1.00%6.2f", serial, " "+name, res, resseq, x, 0.0, 0.0, bfac)
}

func peptide(Te *testing.T, extra ...string) *mol.MoleculeData {
	lines := []string{
		line(1, "N", "ALA", 1, 0, 10),
		line(2, "CA", "ALA", 1, 1, 20),
		line(3, "N", "GLY", 2, 2, 40),
		line(4, "N", "SER", 3, 3, 5),
		line(5, "CA", "SER", 3, 4, 15),
	}
	mols, err := pdb.Read(strings.NewReader(strings.Join(append(lines, extra...), "\n")), pdb.Options{})
	require.NoError(Te, err)
	require.Len(Te, mols, 1)
	return mols[0]
}

func TestResidueProfile(Te *testing.T) {
	p, err := ResidueProfile(peptide(Te), mol.BFactorKey)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"ALA:1", "GLY:2", "SER:3"}, p.Labels)
	assert.InDeltaSlice(Te, []float64{15, 40, 10}, p.Values, 1e-9)
	assert.InDelta(Te, 65.0/3, p.Mean(), 1e-9)
	r, v := p.Max()
	assert.Equal(Te, mol.ResIdx(1), r)
	assert.InDelta(Te, 40, v, 1e-9)

	_, err = ResidueProfile(peptide(Te), "nothere")
	assert.Equal(Te, mol.KindMissingProperty, mol.KindOf(err))
}

func TestFluctuationProfile(Te *testing.T) {
	d := peptide(Te)
	_, err := FluctuationProfile(d, nil)
	assert.Error(Te, err)

	text := strings.Join([]string{
		"MODEL        1",
		line(1, "N", "ALA", 1, 0, 0),
		line(2, "CA", "ALA", 1, 1, 0),
		"ENDMDL",
		"MODEL        2",
		line(1, "N", "ALA", 1, 2, 0),
		line(2, "CA", "ALA", 1, 1, 0),
		"ENDMDL",
	}, "\n")
	mols, err := pdb.Read(strings.NewReader(text), pdb.Options{})
	require.NoError(Te, err)
	p, err := FluctuationProfile(mols[0], nil)
	require.NoError(Te, err)
	require.Len(Te, p.Values, 1)
	//N moves by 2 A (RMSF 1), CA stays put.
	assert.InDelta(Te, 0.5, p.Values[0], 1e-9)
}

func TestPlot(Te *testing.T) {
	p, err := ResidueProfile(peptide(Te), mol.BFactorKey)
	require.NoError(Te, err)
	var b bytes.Buffer
	require.NoError(Te, p.WriteTo(&b, "B-factors", "png"))
	assert.True(Te, bytes.HasPrefix(b.Bytes(), []byte("\x89PNG")))
	b.Reset()
	require.NoError(Te, p.WriteTo(&b, "B-factors", "svg"))
	assert.Contains(Te, b.String(), "<svg")

	name := filepath.Join(Te.TempDir(), "bfac.png")
	require.NoError(Te, p.Save(name, "B-factors"))
	st, err := os.Stat(name)
	require.NoError(Te, err)
	assert.NotZero(Te, st.Size())

	empty := &Profile{Name: "none"}
	_, err = empty.Plot("")
	assert.Error(Te, err)
}
