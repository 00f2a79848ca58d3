// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: Square, non-negative traffic demand matrix over node pairs.
// Determinism:
//   - Total() sums row-major; identical inputs give identical totals.
// AI-HINT (file):
//   - The diagonal is always zero; Set(i, i, v) validates v and then drops it.

package demand

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for demand matrices.
var (
	// ErrOutOfRange indicates an index outside [0, n).
	ErrOutOfRange = errors.New("demand: index out of range")

	// ErrNegativeDemand indicates a volume below zero.
	ErrNegativeDemand = errors.New("demand: volume must be non-negative")

	// ErrNaNInf indicates a NaN or infinite volume.
	ErrNaNInf = errors.New("demand: volume must be finite")

	// ErrNotSquare indicates ragged or non-square input rows.
	ErrNotSquare = errors.New("demand: matrix must be square")

	// ErrBadSize indicates a negative dimension.
	ErrBadSize = errors.New("demand: size must be non-negative")
)

// Matrix holds demand[i][j], the volume node i wants to send to node j.
// It is not safe for concurrent mutation; readers may share a fully built Matrix.
type Matrix struct {
	n    int
	data *mat.Dense // nil when n == 0
}

// New returns an all-zero n×n matrix.
func New(n int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	m := &Matrix{n: n}
	if n > 0 {
		m.data = mat.NewDense(n, n, nil)
	}

	return m, nil
}

// FromRows builds a matrix from dense rows, validating every entry.
// Diagonal values are dropped.
func FromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(row), n)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Uniform returns an n×n matrix with volume v on every off-diagonal entry.
func Uniform(n int, v float64) (*Matrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// Set stores volume v for the ordered pair (i, j). A node never sends to
// itself, so for i == j a valid v is accepted and discarded.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf, ErrNegativeDemand.
func (m *Matrix) Set(i, j int, v float64) error {
	if !m.inRange(i) || !m.inRange(j) {
		return fmt.Errorf("%w: (%d, %d) with n=%d", ErrOutOfRange, i, j, m.n)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: (%d, %d)=%g", ErrNaNInf, i, j, v)
	}
	if v < 0 {
		return fmt.Errorf("%w: (%d, %d)=%g", ErrNegativeDemand, i, j, v)
	}
	if i == j {
		return nil
	}
	m.data.Set(i, j, v)

	return nil
}

// Add increases the volume of (i, j) by v under the same validation as Set.
func (m *Matrix) Add(i, j int, v float64) error {
	cur, err := m.Value(i, j)
	if err != nil {
		return err
	}

	return m.Set(i, j, cur+v)
}

// At returns demand[i][j]; out-of-range indices read as zero.
func (m *Matrix) At(i, j int) float64 {
	if !m.inRange(i) || !m.inRange(j) {
		return 0
	}

	return m.data.At(i, j)
}

// Value returns demand[i][j] or ErrOutOfRange.
func (m *Matrix) Value(i, j int) (float64, error) {
	if !m.inRange(i) || !m.inRange(j) {
		return 0, fmt.Errorf("%w: (%d, %d) with n=%d", ErrOutOfRange, i, j, m.n)
	}

	return m.data.At(i, j), nil
}

// Total returns Σ demand[i][j].
func (m *Matrix) Total() float64 {
	if m.n == 0 {
		return 0
	}

	return mat.Sum(m.data)
}

// Positive returns the number of entries with a strictly positive volume.
func (m *Matrix) Positive() int {
	cnt := 0
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.data.At(i, j) > 0 {
				cnt++
			}
		}
	}

	return cnt
}

// Scale multiplies every entry by f (f must be finite and non-negative).
func (m *Matrix) Scale(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: factor %g", ErrNaNInf, f)
	}
	if f < 0 {
		return fmt.Errorf("%w: factor %g", ErrNegativeDemand, f)
	}
	if m.n > 0 {
		m.data.Scale(f, m.data)
	}

	return nil
}

// Rows returns a dense copy of the matrix.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = make([]float64, m.n)
		if m.n > 0 {
			mat.Row(out[i], i, m.data)
		}
	}

	return out
}

func (m *Matrix) inRange(i int) bool { return i >= 0 && i < m.n }
