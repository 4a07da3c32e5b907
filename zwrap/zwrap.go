/*
 * zwrap.go, part of gosire.
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

//Package zwrap takes a file or stream and, if it is compressed with gzip or zstd,
//wraps it so reads return the decompressed data. Upon Close, the decompressor is closed,
//followed by the underlying stream.
package zwrap

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Format is the compression detected on a stream.
type Format int

const (
	Plain Format = iota
	Gzip
	Zstd
)

func (f Format) String() string {
	switch f {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	}
	return "plain"
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

//Reader is what we return. It reads decompressed data, if the source was compressed.
type Reader struct {
	src    io.ReadCloser
	r      io.Reader
	format Format
	closez func() error
}

//Read makes sure we read from the decompressed stream and
//not the underlying one.
func (z *Reader) Read(p []byte) (int, error) { return z.r.Read(p) }

//Format returns the compression detected.
func (z *Reader) Format() Format { return z.format }

//Close closes the decompressor, then the underlying stream.
func (z *Reader) Close() error {
	var err error
	if z.closez != nil {
		err = z.closez()
	}
	return errors.Join(err, z.src.Close())
}

//Sniff returns the compression format data starts with.
func Sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return Gzip
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	}
	return Plain
}

//Wrap decides if src is compressed and wraps it if needed. src can be
//a file or an http stream, it doesn't need to seek.
func Wrap(src io.ReadCloser) (*Reader, error) {
	br := bufio.NewReader(src)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}
	z := &Reader{src: src, r: br, format: Sniff(head)}
	switch z.format {
	case Gzip:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		z.r, z.closez = gz, gz.Close
	case Zstd:
		zs, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		z.r = zs
		z.closez = func() error {
			zs.Close()
			return nil
		}
	}
	return z, nil
}

//Open opens the named file, decompressing it if needed.
func Open(name string) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	z, err := Wrap(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return z, nil
}
