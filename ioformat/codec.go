// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ioformat implements the grid/IC file readers and the snapshot
// matrix serializer spec §6 treats as external collaborators: a
// deserialize interface producing a vector (1D) or column-major matrix
// (2D), and a serializer writing the output M x nSnapshots column-major
// matrix.
//
// Byte layout: an 8-byte little-endian (rows int32, cols int32) header
// followed by rows*cols float64 values in column-major order. This
// repository invents the concrete layout (the original's cl::Serialize*
// family is itself external to PdeFiniteDifferenceSolver, see
// original_source/PdeFiniteDifferenceSolver/main.cpp's cl::SerializeMatrix
// call, and its byte format is not part of the retrieved source); a vector
// is serialized as the cols==1 case of the same layout so ReadVector and
// ReadMatrixColMajor share one decoder.
package ioformat

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/pdefd/pdeerr"
)

// ReadVector deserializes a 1D grid or initial-condition file into a
// []float64, per spec §6's "deserialize interface ... produce a vector
// (1D)".
func ReadVector(path string) ([]float64, error) {
	rows, cols, data, err := readHeader(path)
	if err != nil {
		return nil, err
	}
	if cols != 1 {
		return nil, pdeerr.NewIOError(path, errShape("expected a vector (cols=1), got cols=%d", cols))
	}
	return data[:rows], nil
}

// ReadMatrixColMajor deserializes a 2D grid or initial-condition file into
// a column-major []float64 of length rows*cols, alongside its shape, per
// spec §6's "produce a ... column-major matrix (2D)".
func ReadMatrixColMajor(path string) (data []float64, rows, cols int, err error) {
	rows, cols, data, err = readHeader(path)
	if err != nil {
		return nil, 0, 0, err
	}
	return data, rows, cols, nil
}

// WriteMatrixColMajor serializes the snapshot matrix (spec §6: "the output
// is a column-major matrix of size M x nSnapshots, each column being one
// recorded solution") to path using this package's byte layout.
func WriteMatrixColMajor(path string, data []float64, rows, cols int) error {
	if len(data) != rows*cols {
		return pdeerr.NewIOError(path, errShape("data length %d does not match rows*cols=%d", len(data), rows*cols))
	}
	f, err := os.Create(path)
	if err != nil {
		return pdeerr.NewIOError(path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(rows))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(cols))
	if _, err := w.Write(hdr[:]); err != nil {
		return pdeerr.NewIOError(path, err)
	}
	var buf [8]byte
	for _, v := range data {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		if _, err := w.Write(buf[:]); err != nil {
			return pdeerr.NewIOError(path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return pdeerr.NewIOError(path, err)
	}
	return nil
}

// Exists reports whether path names a readable file, mirroring the
// original's `ifstream.is_open()` probe before falling back to a built-in
// default (main.cpp: "if (!gridFile.is_open()) { ... linspace(-4,4,128) }
// else { ... DeserializeVector }").
func Exists(path string) bool {
	if path == "" {
		return false
	}
	return io.FileExists(path)
}

func readHeader(path string) (rows, cols int, data []float64, err error) {
	f, oerr := os.Open(path)
	if oerr != nil {
		return 0, 0, nil, pdeerr.NewIOError(path, oerr)
	}
	defer f.Close()
	r := bufio.NewReader(f)
	var hdr [8]byte
	if _, err := readFull(r, hdr[:]); err != nil {
		return 0, 0, nil, pdeerr.NewIOError(path, err)
	}
	rows = int(binary.LittleEndian.Uint32(hdr[0:4]))
	cols = int(binary.LittleEndian.Uint32(hdr[4:8]))
	data = make([]float64, rows*cols)
	var buf [8]byte
	for i := range data {
		if _, err := readFull(r, buf[:]); err != nil {
			return 0, 0, nil, pdeerr.NewIOError(path, err)
		}
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))
	}
	return rows, cols, data, nil
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func errShape(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
