package matrix

import (
	"fmt"

	"mayo-go/gf16"
)

// SolveStatus is the three-way outcome of Solve: a unique solution exists
// and was found, multiple solutions exist (the system is under-determined),
// or no solution exists (the system is inconsistent). This sum type keeps
// "no unique answer" distinct from "invalid system" and from an exception.
type SolveStatus int

const (
	Unique SolveStatus = iota
	NotUnique
	NoSolution
)

// Solve finds the unique x such that A*x = y over F16 via Gauss-Jordan
// elimination with column pivoting, per the MAYO linearized-system solver.
// A is m x o, y has length m; a returned x has length o.
func Solve(a Matrix, y []gf16.Elem) ([]gf16.Elem, SolveStatus, error) {
	m, o := a.Rows, a.Cols
	if len(y) != m {
		return nil, NoSolution, fmt.Errorf("%w: solve A is %dx%d, y has length %d", ErrDimensionMismatch, m, o, len(y))
	}

	if m == 0 {
		if o == 0 {
			return []gf16.Elem{}, Unique, nil
		}
		return nil, NotUnique, nil
	}
	if o == 0 {
		for _, yi := range y {
			if yi != 0 {
				return nil, NoSolution, nil
			}
		}
		return []gf16.Elem{}, Unique, nil
	}

	// Augmented matrix M = [A | y].
	aug := New(m, o+1)
	for r := 0; r < m; r++ {
		copy(aug.Row(r), a.Row(r))
		aug.Set(r, o, y[r])
	}

	pr, pc := 0, 0
	pivotCol := make([]int, 0, o) // pivotCol[k] = column of the k-th pivot row
	for pr < m && pc < o {
		sel := -1
		for r := pr; r < m; r++ {
			if aug.At(r, pc) != 0 {
				sel = r
				break
			}
		}
		if sel < 0 {
			pc++
			continue
		}

		if sel != pr {
			swapRows(aug, sel, pr)
		}

		pivot := aug.At(pr, pc)
		inv, err := gf16.Inv(pivot)
		if err != nil {
			// Unreachable: sel was chosen because aug.At(sel,pc) != 0.
			return nil, NoSolution, fmt.Errorf("matrix: internal solver invariant violated: %w", err)
		}
		scaleRow(aug, pr, inv)

		for q := 0; q < m; q++ {
			if q == pr {
				continue
			}
			f := aug.At(q, pc)
			if f != 0 {
				addScaledRow(aug, q, pr, f)
			}
		}

		pivotCol = append(pivotCol, pc)
		pr++
		pc++
	}

	rank := pr
	for r := rank; r < m; r++ {
		if aug.At(r, o) != 0 {
			return nil, NoSolution, nil
		}
	}
	if rank < o {
		return nil, NotUnique, nil
	}

	x := make([]gf16.Elem, o)
	for k := rank - 1; k >= 0; k-- {
		col := pivotCol[k]
		x[col] = aug.At(k, o)
	}
	return x, Unique, nil
}

func swapRows(m Matrix, r1, r2 int) {
	row1, row2 := m.Row(r1), m.Row(r2)
	for i := range row1 {
		row1[i], row2[i] = row2[i], row1[i]
	}
}

func scaleRow(m Matrix, r int, k gf16.Elem) {
	row := m.Row(r)
	for i := range row {
		row[i] = gf16.Mul(k, row[i])
	}
}

// addScaledRow sets row dst += f*row src.
func addScaledRow(m Matrix, dst, src int, f gf16.Elem) {
	d, s := m.Row(dst), m.Row(src)
	for i := range d {
		d[i] = gf16.Add(d[i], gf16.Mul(f, s[i]))
	}
}
