/*
 * commands_test.go, part of gosire.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPDB = `REMARK   dipeptide and water
ATOM      1  N   ALA A   1       0.000   0.000   0.000  1.00 10.00           N
ATOM      2  CA  ALA A   1       1.450   0.000   0.000  1.00 20.00           C
ATOM      3  C   ALA A   1       2.000   1.400   0.000  1.00 30.00           C
ATOM      4  N   GLY A   2       3.300   1.500   0.000  1.00 40.00           N
ATOM      5  CA  GLY A   2       4.000   2.700   0.000  1.00 50.00           C
TER
HETATM    6  O   HOH     1      10.000  10.000  10.000  1.00  5.00           O
END
`

func run(Te *testing.T, args ...string) string {
	Te.Setenv("XDG_CONFIG_HOME", Te.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(Te, rootCmd.Execute(), out.String())
	return out.String()
}

func TestCommands(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "pep.pdb")
	require.NoError(Te, os.WriteFile(in, []byte(testPDB), 0o644))

	out := run(Te, "info", in, in)
	assert.Contains(Te, out, "pep.pdb: 2 molecule(s)")
	assert.Contains(Te, out, `chain "A": 2 residue(s), 5 atom(s)`)
	assert.Contains(Te, out, "1 residue(s) in no chain")

	stream := filepath.Join(dir, "pep.sire")
	run(Te, "convert", "--cutting", "fragment", in, stream)
	out = run(Te, "dump", stream)
	assert.Contains(Te, out, "SIRE:MoleculeGroup v1")
	assert.Contains(Te, out, "pep: 2 molecule(s)")

	back := filepath.Join(dir, "back.pdb")
	run(Te, "convert", stream, back)
	out = run(Te, "info", back)
	assert.Contains(Te, out, `chain "A": 2 residue(s), 5 atom(s)`)

	png := filepath.Join(dir, "bfac.png")
	run(Te, "plot", "--property", "bfactor", in, png)
	st, err := os.Stat(png)
	require.NoError(Te, err)
	assert.NotZero(Te, st.Size())
}

func TestBadInput(Te *testing.T) {
	Te.Setenv("XDG_CONFIG_HOME", Te.TempDir())
	name := filepath.Join(Te.TempDir(), "bad.pdb")
	require.NoError(Te, os.WriteFile(name, []byte("ATOM      1  N   ALA A   1\n"), 0o644))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"info", name})
	assert.Error(Te, rootCmd.Execute())
}
