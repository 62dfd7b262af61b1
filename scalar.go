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
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is the set of numeric types accepted wherever a colour component
// is expected.
type Number interface {
	constraints.Integer | constraints.Float
}

// Scalar is a single colour component.
//
// Whatever numeric type a component was given as, it is stored in double
// precision.  Go's arithmetic and comparison operators work on Scalar
// values directly; use [Of] to bring values of other numeric types into a
// Scalar expression.
type Scalar float64

// DefaultPrecision is the number of fractional digits used by
// [Scalar.String].
const DefaultPrecision = 4

// Of converts a value of any supported numeric type to a Scalar.
func Of[T Number](v T) Scalar {
	return Scalar(v)
}

// Const returns the Scalar for a float64 value.  This is used for building
// constant tables.
func Const(v float64) Scalar {
	return Scalar(v)
}

// Float64 returns the value as a float64.
func (s Scalar) Float64() float64 {
	return float64(s)
}

// Add returns s+v.
func Add[T Number](s Scalar, v T) Scalar {
	return s + Of(v)
}

// Sub returns s-v.
func Sub[T Number](s Scalar, v T) Scalar {
	return s - Of(v)
}

// Mul returns s*v.
func Mul[T Number](s Scalar, v T) Scalar {
	return s * Of(v)
}

// Div returns s/v.
func Div[T Number](s Scalar, v T) Scalar {
	return s / Of(v)
}

// Equal reports whether s and v represent the same value.
// NaN is not equal to anything, including itself.
func Equal[T Number](s Scalar, v T) bool {
	return s == Of(v)
}

// Less reports whether s < v.  Comparisons involving NaN are false.
func Less[T Number](s Scalar, v T) bool {
	return s < Of(v)
}

// Compare compares s and o.  The second return value is false if the
// values are unordered, which happens when either of them is NaN.
func (s Scalar) Compare(o Scalar) (int, bool) {
	switch {
	case s < o:
		return -1, true
	case s > o:
		return 1, true
	case s == o:
		return 0, true
	default:
		return 0, false
	}
}

// IsNaN reports whether s is a not-a-number value.
func (s Scalar) IsNaN() bool {
	return math.IsNaN(float64(s))
}

// Clamp limits s to the interval [lo, hi].
func (s Scalar) Clamp(lo, hi Scalar) Scalar {
	return Scalar(clamp(float64(s), float64(lo), float64(hi)))
}

// Text formats s with the given number of fractional digits.
func (s Scalar) Text(prec int) string {
	return strconv.FormatFloat(float64(s), 'f', prec, 64)
}

func (s Scalar) String() string {
	return s.Text(DefaultPrecision)
}

// Format implements [fmt.Formatter].  The verbs v, f, e and g are
// supported; v and f use [DefaultPrecision] fractional digits unless a
// precision is given explicitly.
func (s Scalar) Format(f fmt.State, verb rune) {
	prec, ok := f.Precision()
	switch verb {
	case 'v', 'f', 'F', 's':
		if !ok {
			prec = DefaultPrecision
		}
		fmt.Fprint(f, s.Text(prec))
	case 'e', 'E', 'g', 'G':
		if !ok {
			prec = -1
		}
		fmt.Fprint(f, strconv.FormatFloat(float64(s), byte(verb), prec, 64))
	default:
		fmt.Fprintf(f, "%%!%c(Scalar=%s)", verb, s.String())
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
