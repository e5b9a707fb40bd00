// SPDX-License-Identifier: MIT

// Package dem: sparse boolean matrices and the model→(H, L, priors) builder.

package dem

import (
	"sort"
)

// BinMatrix is a compressed-sparse-column boolean matrix over GF(2).
// Entries are implicitly 1 where stored and 0 elsewhere. Immutable once
// built; all methods are safe for concurrent readers.
type BinMatrix struct {
	rows, cols int
	colptr     []int // len cols+1; column c spans rowidx[colptr[c]:colptr[c+1]]
	rowidx     []int // row indices, ascending within each column
}

// triplet is a (row, col) incidence accumulated during building.
type triplet struct{ row, col int }

// newBinMatrix materializes a CSC matrix from incidence triplets.
// Duplicate incidences within a column are collapsed (entries are boolean).
// Complexity: O(T log T) for T triplets.
func newBinMatrix(rows, cols int, trips []triplet) *BinMatrix {
	sort.Slice(trips, func(i, j int) bool {
		if trips[i].col != trips[j].col {
			return trips[i].col < trips[j].col
		}
		return trips[i].row < trips[j].row
	})
	m := &BinMatrix{
		rows:   rows,
		cols:   cols,
		colptr: make([]int, cols+1),
		rowidx: make([]int, 0, len(trips)),
	}
	prev := triplet{-1, -1}
	for _, t := range trips {
		if t == prev {
			continue // boolean matrix: duplicate incidence collapses
		}
		m.rowidx = append(m.rowidx, t.row)
		m.colptr[t.col+1]++
		prev = t
	}
	for c := 0; c < cols; c++ {
		m.colptr[c+1] += m.colptr[c]
	}
	return m
}

// Rows returns the number of rows. Complexity: O(1).
func (m *BinMatrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *BinMatrix) Cols() int { return m.cols }

// NNZ returns the number of stored (1-valued) entries. Complexity: O(1).
func (m *BinMatrix) NNZ() int { return len(m.rowidx) }

// At reports whether entry (i, j) is 1. Returns ErrOutOfRange for invalid
// indices. Complexity: O(log nnz(col j)).
func (m *BinMatrix) At(i, j int) (bool, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return false, ErrOutOfRange
	}
	col := m.rowidx[m.colptr[j]:m.colptr[j+1]]
	k := sort.SearchInts(col, i)
	return k < len(col) && col[k] == i, nil
}

// ColNonZeros returns the ascending row indices of the 1-entries in column j.
// The returned slice aliases internal storage and must be treated as
// read-only. Returns ErrOutOfRange for an invalid column.
// Complexity: O(1).
func (m *BinMatrix) ColNonZeros(j int) ([]int, error) {
	if j < 0 || j >= m.cols {
		return nil, ErrOutOfRange
	}
	return m.rowidx[m.colptr[j]:m.colptr[j+1]], nil
}

// MulVecMod2 computes (M · x) mod 2 for a 0/1 vector x of length Cols().
// Any nonzero entry of x counts as 1. Returns ErrDimensionMismatch when
// lengths disagree. Complexity: O(nnz over selected columns).
func (m *BinMatrix) MulVecMod2(x []uint8) ([]uint8, error) {
	if len(x) != m.cols {
		return nil, ErrDimensionMismatch
	}
	out := make([]uint8, m.rows)
	for c, v := range x {
		if v == 0 {
			continue
		}
		for _, r := range m.rowidx[m.colptr[c]:m.colptr[c+1]] {
			out[r] ^= 1
		}
	}
	return out, nil
}

// Build converts an error model into decoding matrices and priors:
//
//	H — (num_detectors × num_errors) parity-check matrix
//	L — (num_observables × num_errors) logical matrix
//	priors — per-mechanism probabilities, column-aligned
//
// Column c corresponds to the c-th mechanism in encounter order; this
// assignment is deterministic, which reproducible decoder behavior depends
// on. A zero-mechanism model yields valid zero-column matrices.
// Complexity: O(T log T) for T total incidences.
func Build(model *ErrorModel) (h, l *BinMatrix, priors []float64, err error) {
	if model == nil {
		return nil, nil, nil, ErrNilModel
	}
	n := len(model.mechs)
	priors = make([]float64, n)
	var hTrips, lTrips []triplet
	for c, mech := range model.mechs {
		priors[c] = mech.P
		for _, d := range mech.Detectors {
			hTrips = append(hTrips, triplet{row: d, col: c})
		}
		for _, o := range mech.Observables {
			lTrips = append(lTrips, triplet{row: o, col: c})
		}
	}
	h = newBinMatrix(model.numDet, n, hTrips)
	l = newBinMatrix(model.numObs, n, lTrips)
	return h, l, priors, nil
}
