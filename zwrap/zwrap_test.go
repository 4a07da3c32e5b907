/*
 * zwrap_test.go, part of gosire.
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

package zwrap

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = "ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N\n"

func gzipped(Te *testing.T) []byte {
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	_, err := w.Write([]byte(payload))
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	return b.Bytes()
}

func zstded(Te *testing.T) []byte {
	var b bytes.Buffer
	w, err := zstd.NewWriter(&b)
	require.NoError(Te, err)
	_, err = w.Write([]byte(payload))
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	return b.Bytes()
}

func TestWrap(Te *testing.T) {
	cases := []struct {
		name   string
		data   []byte
		format Format
	}{
		{"plain", []byte(payload), Plain},
		{"gzip", gzipped(Te), Gzip},
		{"zstd", zstded(Te), Zstd},
	}
	for _, c := range cases {
		Te.Run(c.name, func(Te *testing.T) {
			assert.Equal(Te, c.format, Sniff(c.data))
			z, err := Wrap(io.NopCloser(bytes.NewReader(c.data)))
			require.NoError(Te, err)
			assert.Equal(Te, c.format, z.Format())
			got, err := io.ReadAll(z)
			require.NoError(Te, err)
			assert.Equal(Te, payload, string(got))
			assert.NoError(Te, z.Close())
		})
	}
}

func TestShortInput(Te *testing.T) {
	z, err := Wrap(io.NopCloser(bytes.NewReader([]byte("x"))))
	require.NoError(Te, err)
	got, err := io.ReadAll(z)
	require.NoError(Te, err)
	assert.Equal(Te, "x", string(got))
}

func TestOpen(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "test.pdb.gz")
	require.NoError(Te, os.WriteFile(name, gzipped(Te), 0o644))
	z, err := Open(name)
	require.NoError(Te, err)
	defer z.Close()
	got, err := io.ReadAll(z)
	require.NoError(Te, err)
	assert.Equal(Te, payload, string(got))

	_, err = Open(filepath.Join(Te.TempDir(), "nothere.pdb"))
	assert.Error(Te, err)
}
