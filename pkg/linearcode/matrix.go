// matrix.go implements the GF(2) dense-matrix operations behind code
// construction: matrix-vector products mod 2, rank computation, and
// null-space derivation via Gaussian elimination.
package linearcode

import (
	"github.com/sara-star-quant/qkd-go/pkg/bits"

	qerrors "github.com/sara-star-quant/qkd-go/internal/errors"
)

// Matrix is a dense GF(2) matrix stored as rows of equal length.
type Matrix []bits.Bits

// NewMatrix builds a Matrix from row literals, validating shape and bit
// values.
func NewMatrix(rows [][]uint8) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, qerrors.NewCodeError("linearcode.NewMatrix", qerrors.ErrMatrixShape)
	}
	cols := len(rows[0])
	m := make(Matrix, len(rows))
	for i, r := range rows {
		if len(r) != cols {
			return nil, qerrors.NewCodeError("linearcode.NewMatrix", qerrors.ErrMatrixShape)
		}
		row := make(bits.Bits, cols)
		copy(row, r)
		if err := row.Validate(); err != nil {
			return nil, qerrors.NewCodeError("linearcode.NewMatrix", err)
		}
		m[i] = row
	}
	return m, nil
}

// Rows returns the number of rows of m.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns of m.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for i, r := range m {
		c[i] = r.Clone()
	}
	return c
}

// MulVec computes m·v mod 2, treating v as a column vector.
// The result has one bit per row of m.
func (m Matrix) MulVec(v bits.Bits) bits.Bits {
	out := make(bits.Bits, len(m))
	for i, row := range m {
		var acc uint8
		for j, bit := range row {
			acc ^= bit & v[j]
		}
		out[i] = acc
	}
	return out
}

// VecMul computes v·m mod 2, treating v as a row vector with one bit per row
// of m. This is the codeword map of a generator matrix.
func (m Matrix) VecMul(v bits.Bits) bits.Bits {
	out := make(bits.Bits, m.Cols())
	for i, row := range m {
		if v[i] == 0 {
			continue
		}
		for j, bit := range row {
			out[j] ^= bit
		}
	}
	return out
}

// orthogonal reports whether h·gᵀ ≡ 0 (mod 2), i.e. every row of g lies in
// the null space of h.
func orthogonal(h, g Matrix) bool {
	for _, grow := range g {
		if !h.MulVec(grow).IsZero() {
			return false
		}
	}
	return true
}

// NullSpace returns a basis of the right null space of m as a matrix with
// one basis vector per row. For a full-rank k×n generator this yields the
// (n−k)×n parity-check matrix.
func NullSpace(m Matrix) Matrix {
	n := m.Cols()
	rref := m.Clone()

	// Reduce to reduced row echelon form over GF(2), tracking pivot columns.
	pivotCols := make([]int, 0, len(rref))
	row := 0
	for col := 0; col < n && row < len(rref); col++ {
		// Find a pivot at or below row.
		pivot := -1
		for r := row; r < len(rref); r++ {
			if rref[r][col] != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rref[row], rref[pivot] = rref[pivot], rref[row]

		// Clear the pivot column in every other row.
		for r := 0; r < len(rref); r++ {
			if r != row && rref[r][col] != 0 {
				for j := col; j < n; j++ {
					rref[r][j] ^= rref[row][j]
				}
			}
		}
		pivotCols = append(pivotCols, col)
		row++
	}

	isPivot := make([]bool, n)
	for _, c := range pivotCols {
		isPivot[c] = true
	}

	// Each free column contributes one basis vector: set the free position,
	// then back-substitute the pivot positions from the RREF.
	basis := make(Matrix, 0, n-len(pivotCols))
	for free := 0; free < n; free++ {
		if isPivot[free] {
			continue
		}
		v := make(bits.Bits, n)
		v[free] = 1
		for r, c := range pivotCols {
			v[c] = rref[r][free]
		}
		basis = append(basis, v)
	}
	return basis
}

// Rank returns the GF(2) rank of m.
func Rank(m Matrix) int {
	return m.Cols() - len(NullSpace(m))
}
