// seehuhn.de/go/colorimetry - colour spaces and chromatic adaptation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package colorimetry

import (
	"fmt"
	"math"
	"strings"
)

// Matrix3 is a 3x3 matrix in row-major order.
//
// Matrices map column vectors: the result of [Matrix3.Apply] is M·v.
type Matrix3 [3][3]float64

// Identity is the 3x3 identity matrix.
var Identity = Matrix3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Diagonal returns the diagonal matrix with the given entries.
func Diagonal(a, b, c float64) Matrix3 {
	return Matrix3{
		{a, 0, 0},
		{0, b, 0},
		{0, 0, c},
	}
}

// Columns returns the matrix with the given column vectors.
func Columns(c0, c1, c2 [3]float64) Matrix3 {
	return Matrix3{
		{c0[0], c1[0], c2[0]},
		{c0[1], c1[1], c2[1]},
		{c0[2], c1[2], c2[2]},
	}
}

// Mul returns the matrix product m·n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var res Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return res
}

// Apply returns the product m·v.
func (m Matrix3) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Scale returns the matrix with every entry multiplied by f.
func (m Matrix3) Scale(f float64) Matrix3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= f
		}
	}
	return m
}

// Transpose returns the transposed matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Determinant returns the determinant of m.
func (m Matrix3) Determinant() float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Inverse returns the inverse of m.
// If m is singular, [ErrSingularMatrix] is returned.
func (m Matrix3) Inverse() (Matrix3, error) {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix3{}, ErrSingularMatrix
	}

	invDet := 1.0 / det

	return Matrix3{
		{(e*i - f*h) * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet},
		{(f*g - d*i) * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet},
		{(d*h - e*g) * invDet, (b*g - a*h) * invDet, (a*e - b*d) * invDet},
	}, nil
}

// ApproxEqual reports whether all entries of m and n differ by at most tol.
func (m Matrix3) ApproxEqual(n Matrix3, tol float64) bool {
	for i := range m {
		for j := range m[i] {
			if !(math.Abs(m[i][j]-n[i][j]) <= tol) {
				return false
			}
		}
	}
	return true
}

func (m Matrix3) String() string {
	return m.Text(DefaultPrecision)
}

// Text formats the matrix with the given number of fractional digits.
func (m Matrix3) Text(prec int) string {
	b := &strings.Builder{}
	b.WriteByte('[')
	for i, row := range m {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j, x := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(Scalar(x).Text(prec))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

// Format implements [fmt.Formatter], honouring an explicit precision.
func (m Matrix3) Format(f fmt.State, verb rune) {
	prec, ok := f.Precision()
	if !ok {
		prec = DefaultPrecision
	}
	fmt.Fprint(f, m.Text(prec))
}

func mustInverse(m Matrix3) Matrix3 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}
