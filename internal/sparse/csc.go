// Package sparse implements a minimal compressed sparse column (CSC) matrix.
//
// It exists to back the alternate-matrix-class solver strategy: the same
// normal-equation operations as the dense path, but over column-compressed
// storage. Only the operations that strategy needs are provided.
package sparse

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/olsbench/errs"
)

// CSC is a compressed sparse column matrix of float64 values.
//
// Entries within a column are stored in ascending row order. The zero value
// is not usable; construct instances with FromDense.
type CSC struct {
	rows, cols int
	colPtr     []int // column j occupies values[colPtr[j]:colPtr[j+1]]
	rowIdx     []int
	values     []float64
}

// FromDense converts a dense matrix to CSC form, dropping exact zeros.
func FromDense(m *mat.Dense) *CSC {
	rows, cols := m.Dims()

	c := &CSC{
		rows:   rows,
		cols:   cols,
		colPtr: make([]int, cols+1),
	}

	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			v := m.At(i, j)
			if v == 0 {
				continue
			}
			c.rowIdx = append(c.rowIdx, i)
			c.values = append(c.values, v)
		}
		c.colPtr[j+1] = len(c.values)
	}

	return c
}

// Dims returns the matrix dimensions.
func (c *CSC) Dims() (rows, cols int) {
	return c.rows, c.cols
}

// NNZ returns the number of stored (non-zero) entries.
func (c *CSC) NNZ() int {
	return len(c.values)
}

// At returns the value at (i, j). Entries outside the stored set are zero.
func (c *CSC) At(i, j int) float64 {
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		panic("sparse: index out of range")
	}

	start, end := c.colPtr[j], c.colPtr[j+1]
	col := c.rowIdx[start:end]
	k := sort.SearchInts(col, i)
	if k < len(col) && col[k] == i {
		return c.values[start+k]
	}

	return 0
}

// MulVec computes the matrix-vector product A*x.
func (c *CSC) MulVec(x []float64) ([]float64, error) {
	if len(x) != c.cols {
		return nil, fmt.Errorf("%w: matrix has %d columns, vector has %d values",
			errs.ErrDimensionMismatch, c.cols, len(x))
	}

	y := make([]float64, c.rows)
	for j := 0; j < c.cols; j++ {
		xj := x[j]
		if xj == 0 {
			continue
		}
		for k := c.colPtr[j]; k < c.colPtr[j+1]; k++ {
			y[c.rowIdx[k]] += c.values[k] * xj
		}
	}

	return y, nil
}

// TransMulVec computes the transpose product Aᵀ*y, one dot product per
// stored column.
func (c *CSC) TransMulVec(y []float64) ([]float64, error) {
	if len(y) != c.rows {
		return nil, fmt.Errorf("%w: matrix has %d rows, vector has %d values",
			errs.ErrDimensionMismatch, c.rows, len(y))
	}

	out := make([]float64, c.cols)
	for j := 0; j < c.cols; j++ {
		var sum float64
		for k := c.colPtr[j]; k < c.colPtr[j+1]; k++ {
			sum += c.values[k] * y[c.rowIdx[k]]
		}
		out[j] = sum
	}

	return out, nil
}

// CrossProd computes the symmetric cross-product AᵀA without materializing
// the transpose. Column pairs are combined with a merge walk over their
// sorted row indices.
func (c *CSC) CrossProd() *mat.SymDense {
	out := mat.NewSymDense(c.cols, nil)

	for i := 0; i < c.cols; i++ {
		for j := i; j < c.cols; j++ {
			out.SetSym(i, j, c.colDot(i, j))
		}
	}

	return out
}

// colDot computes the dot product of columns a and b.
func (c *CSC) colDot(a, b int) float64 {
	ka, endA := c.colPtr[a], c.colPtr[a+1]
	kb, endB := c.colPtr[b], c.colPtr[b+1]

	var sum float64
	for ka < endA && kb < endB {
		ra, rb := c.rowIdx[ka], c.rowIdx[kb]
		switch {
		case ra == rb:
			sum += c.values[ka] * c.values[kb]
			ka++
			kb++
		case ra < rb:
			ka++
		default:
			kb++
		}
	}

	return sum
}
