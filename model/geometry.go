package model

// Matrix is a PDF 2D affine transform [a b c d e f], applied to a point
// (x, y) as:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns a pure translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Multiply computes m composed with other as "other applied first, then
// m" - i.e. the matrix for the combined transform other*m in PDF's
// row-vector convention, matching how Td/TD compose line matrices.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: other.A*m.A + other.B*m.C,
		B: other.A*m.B + other.B*m.D,
		C: other.C*m.A + other.D*m.C,
		D: other.C*m.B + other.D*m.D,
		E: other.E*m.A + other.F*m.C + m.E,
		F: other.E*m.B + other.F*m.D + m.F,
	}
}
