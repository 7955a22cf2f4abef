// Package matrix implements dense matrix and vector algebra over F16, the
// inner loop of MAYO key expansion, signing, and verification.
package matrix

import (
	"errors"
	"fmt"

	"mayo-go/gf16"
)

// ErrDimensionMismatch reports a shape incompatibility between operands.
// This is a programmer-visible invariant violation: callers are expected
// to size their matrices correctly from mayo.Params, so a mismatch here
// indicates a bug, not a runtime condition to recover from.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// Matrix is a dense row-major matrix over F16.
type Matrix struct {
	Rows, Cols int
	Data       []gf16.Elem // length Rows*Cols
}

// New allocates a zeroed Rows x Cols matrix.
func New(rows, cols int) Matrix {
	return Matrix{Rows: rows, Cols: cols, Data: make([]gf16.Elem, rows*cols)}
}

// At returns the element at (r, c).
func (m Matrix) At(r, c int) gf16.Elem { return m.Data[r*m.Cols+c] }

// Set assigns the element at (r, c).
func (m Matrix) Set(r, c int, v gf16.Elem) { m.Data[r*m.Cols+c] = v }

// Row returns a view of row r.
func (m Matrix) Row(r int) []gf16.Elem { return m.Data[r*m.Cols : (r+1)*m.Cols] }

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := New(m.Rows, m.Cols)
	copy(out.Data, m.Data)
	return out
}

// Zeroize overwrites the matrix's backing storage in place. Callers
// holding secret-derived matrices should call this once the matrix is
// no longer needed.
func (m Matrix) Zeroize() {
	for i := range m.Data {
		m.Data[i] = 0
	}
}

func sameShape(a, b Matrix) bool { return a.Rows == b.Rows && a.Cols == b.Cols }

// Add returns A+B element-wise (XOR in F16).
func Add(a, b Matrix) (Matrix, error) {
	if !sameShape(a, b) {
		return Matrix{}, fmt.Errorf("%w: add %dx%d + %dx%d", ErrDimensionMismatch, a.Rows, a.Cols, b.Rows, b.Cols)
	}
	out := New(a.Rows, a.Cols)
	for i := range out.Data {
		out.Data[i] = gf16.Add(a.Data[i], b.Data[i])
	}
	return out, nil
}

// Sub returns A-B element-wise (XOR in F16, same as Add).
func Sub(a, b Matrix) (Matrix, error) { return Add(a, b) }

// ScalarMul returns k*A, multiplying every entry by k.
func ScalarMul(k gf16.Elem, a Matrix) Matrix {
	out := New(a.Rows, a.Cols)
	for i, v := range a.Data {
		out.Data[i] = gf16.Mul(k, v)
	}
	return out
}

// Mul returns A*B, the standard matrix product.
func Mul(a, b Matrix) (Matrix, error) {
	if a.Cols != b.Rows {
		return Matrix{}, fmt.Errorf("%w: mul %dx%d * %dx%d", ErrDimensionMismatch, a.Rows, a.Cols, b.Rows, b.Cols)
	}
	out := New(a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		ai := a.Row(i)
		oi := out.Row(i)
		for k := 0; k < a.Cols; k++ {
			aik := ai[k]
			if aik == 0 {
				continue
			}
			bk := b.Row(k)
			for j := 0; j < b.Cols; j++ {
				oi[j] = gf16.Add(oi[j], gf16.Mul(aik, bk[j]))
			}
		}
	}
	return out, nil
}

// Transpose returns A^T.
func Transpose(a Matrix) Matrix {
	out := New(a.Cols, a.Rows)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			out.Set(j, i, a.At(i, j))
		}
	}
	return out
}

// Symmetrize returns A+A^T. A must be square.
func Symmetrize(a Matrix) (Matrix, error) {
	if a.Rows != a.Cols {
		return Matrix{}, fmt.Errorf("%w: symmetrize %dx%d", ErrDimensionMismatch, a.Rows, a.Cols)
	}
	return Add(a, Transpose(a))
}

// MatVec returns A*v, v treated as a column vector.
func MatVec(a Matrix, v []gf16.Elem) ([]gf16.Elem, error) {
	if a.Cols != len(v) {
		return nil, fmt.Errorf("%w: mat_vec %dx%d * %d", ErrDimensionMismatch, a.Rows, a.Cols, len(v))
	}
	out := make([]gf16.Elem, a.Rows)
	for i := 0; i < a.Rows; i++ {
		row := a.Row(i)
		var acc gf16.Elem
		for j, vj := range v {
			acc = gf16.Add(acc, gf16.Mul(row[j], vj))
		}
		out[i] = acc
	}
	return out, nil
}

// VecMat returns v^T*A, a row vector.
func VecMat(v []gf16.Elem, a Matrix) ([]gf16.Elem, error) {
	if a.Rows != len(v) {
		return nil, fmt.Errorf("%w: vec_mat %d * %dx%d", ErrDimensionMismatch, len(v), a.Rows, a.Cols)
	}
	out := make([]gf16.Elem, a.Cols)
	for i, vi := range v {
		if vi == 0 {
			continue
		}
		row := a.Row(i)
		for j, aij := range row {
			out[j] = gf16.Add(out[j], gf16.Mul(vi, aij))
		}
	}
	return out, nil
}

// Dot returns the dot product of u and v. Empty vectors dot to 0.
func Dot(u, v []gf16.Elem) (gf16.Elem, error) {
	if len(u) != len(v) {
		return 0, fmt.Errorf("%w: dot %d vs %d", ErrDimensionMismatch, len(u), len(v))
	}
	var acc gf16.Elem
	for i := range u {
		acc = gf16.Add(acc, gf16.Mul(u[i], v[i]))
	}
	return acc, nil
}

// VecSub returns u-v element-wise (XOR).
func VecSub(u, v []gf16.Elem) ([]gf16.Elem, error) {
	if len(u) != len(v) {
		return nil, fmt.Errorf("%w: vec_sub %d vs %d", ErrDimensionMismatch, len(u), len(v))
	}
	out := make([]gf16.Elem, len(u))
	for i := range u {
		out[i] = gf16.Sub(u[i], v[i])
	}
	return out, nil
}

// QuadraticForm returns v^T * A * v for square A, computed without
// materializing the intermediate vector A*v separately per caller; used
// by the signer/verifier to evaluate s_V^T P1 s_V and, in the verifier,
// the oil-by-oil term s_O^T P3 s_O.
func QuadraticForm(v []gf16.Elem, a Matrix) (gf16.Elem, error) {
	av, err := MatVec(a, v)
	if err != nil {
		return 0, err
	}
	return Dot(v, av)
}
