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
	"slices"

	"golang.org/x/exp/maps"
)

// Observer identifies a CIE standard colorimetric observer.
type Observer int

// The CIE standard observers.
const (
	CIE1931 Observer = iota // 2° standard observer
	CIE1964                 // 10° supplementary standard observer
)

func (o Observer) String() string {
	switch o {
	case CIE1931:
		return "CIE 1931 2°"
	case CIE1964:
		return "CIE 1964 10°"
	default:
		return fmt.Sprintf("Observer(%d)", int(o))
	}
}

// WhiteSource supplies the reference white of a light source.
//
// Implementations typically integrate a spectral power distribution
// against the colour matching functions of the observer.  The white point
// is returned as XYZ tristimulus values, normalised to Y = 1.
type WhiteSource interface {
	Name() string
	WhitePoint(obs Observer) [3]float64
}

// Chromaticity is a point in the CIE 1931 xy chromaticity diagram.
type Chromaticity struct {
	X, Y float64
}

// XYZ returns the tristimulus values of the colour with chromaticity c and
// luminance lum.  For Y == 0 the result is black.
func (c Chromaticity) XYZ(lum float64) [3]float64 {
	if c.Y == 0 {
		return [3]float64{}
	}
	return [3]float64{
		c.X * lum / c.Y,
		lum,
		(1 - c.X - c.Y) * lum / c.Y,
	}
}

// Illuminant is a light source with tabulated white points.
// Illuminants are immutable and can be shared freely.
type Illuminant struct {
	name  string
	white [2][3]float64 // indexed by Observer
}

// NewIlluminant returns a light source with the given white points for the
// 2° and 10° observers.
func NewIlluminant(name string, white2, white10 [3]float64) (*Illuminant, error) {
	for _, w := range [][3]float64{white2, white10} {
		if !validWhite(w) {
			return nil, fmt.Errorf("colorimetry: %s: %w", name, ErrInvalidWhitePoint)
		}
	}
	return &Illuminant{name: name, white: [2][3]float64{white2, white10}}, nil
}

// IlluminantFromChromaticity returns a light source whose white point has
// chromaticity xy for both observers.
func IlluminantFromChromaticity(name string, xy Chromaticity) (*Illuminant, error) {
	w := xy.XYZ(1)
	return NewIlluminant(name, w, w)
}

// Name returns the name of the illuminant, e.g. "D65".
func (l *Illuminant) Name() string {
	return l.name
}

// WhitePoint returns the XYZ coordinates of the illuminant's white,
// normalised to Y = 1.  Observers other than [CIE1964] use the 2° data.
func (l *Illuminant) WhitePoint(obs Observer) [3]float64 {
	if obs == CIE1964 {
		return l.white[1]
	}
	return l.white[0]
}

func (l *Illuminant) String() string {
	return l.name
}

func validWhite(w [3]float64) bool {
	for _, x := range w {
		if !isFinite(x) {
			return false
		}
	}
	return w[1] != 0
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func mustIlluminant(name string, white2, white10 [3]float64) *Illuminant {
	l, err := NewIlluminant(name, white2, white10)
	if err != nil {
		panic(err)
	}
	return l
}

// The CIE standard illuminants.
var (
	IlluminantA = mustIlluminant("A",
		[3]float64{1.09850, 1.0, 0.35585},
		[3]float64{1.11144, 1.0, 0.35200})
	IlluminantB = mustIlluminant("B",
		[3]float64{0.99072, 1.0, 0.85223},
		[3]float64{0.99178, 1.0, 0.84349})
	IlluminantC = mustIlluminant("C",
		[3]float64{0.98074, 1.0, 1.18232},
		[3]float64{0.97285, 1.0, 1.16145})
	D50 = mustIlluminant("D50",
		[3]float64{0.96422, 1.0, 0.82521},
		[3]float64{0.96720, 1.0, 0.81427})
	D55 = mustIlluminant("D55",
		[3]float64{0.95682, 1.0, 0.92149},
		[3]float64{0.95799, 1.0, 0.90926})
	D65 = mustIlluminant("D65",
		[3]float64{0.95047, 1.0, 1.08883},
		[3]float64{0.94811, 1.0, 1.07304})
	D75 = mustIlluminant("D75",
		[3]float64{0.94972, 1.0, 1.22638},
		[3]float64{0.94416, 1.0, 1.20641})
	IlluminantE = mustIlluminant("E",
		[3]float64{1.0, 1.0, 1.0},
		[3]float64{1.0, 1.0, 1.0})
	F2 = mustIlluminant("F2",
		[3]float64{0.99186, 1.0, 0.67393},
		[3]float64{1.03279, 1.0, 0.69027})
	F7 = mustIlluminant("F7",
		[3]float64{0.95041, 1.0, 1.08747},
		[3]float64{0.95792, 1.0, 1.07686})
	F11 = mustIlluminant("F11",
		[3]float64{1.00962, 1.0, 0.64350},
		[3]float64{1.03863, 1.0, 0.65607})
)

var illuminants = map[string]*Illuminant{
	"A":   IlluminantA,
	"B":   IlluminantB,
	"C":   IlluminantC,
	"D50": D50,
	"D55": D55,
	"D65": D65,
	"D75": D75,
	"E":   IlluminantE,
	"F2":  F2,
	"F7":  F7,
	"F11": F11,
}

// Illuminants returns the names of the standard illuminants in
// alphabetical order.
func Illuminants() []string {
	names := maps.Keys(illuminants)
	slices.Sort(names)
	return names
}

// IlluminantByName returns the standard illuminant with the given name.
func IlluminantByName(name string) (*Illuminant, error) {
	l, ok := illuminants[name]
	if !ok {
		return nil, fmt.Errorf("%w: illuminant %q", ErrUnknownName, name)
	}
	return l, nil
}
