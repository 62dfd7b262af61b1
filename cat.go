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
	"sync"
)

// CAT is a chromatic adaptation transform.
//
// The transform matrix maps XYZ tristimulus values into a cone-response
// like space, in which adapting from one reference white to another is a
// per-channel scaling.  A CAT is immutable and safe for concurrent use.
type CAT struct {
	name string
	m    Matrix3
	inv  Matrix3
}

// NewCAT returns a chromatic adaptation transform with the given matrix.
// The inverse is derived automatically; if m is singular, an error
// wrapping [ErrSingularMatrix] is returned.
func NewCAT(name string, m Matrix3) (*CAT, error) {
	inv, err := m.Inverse()
	if err != nil {
		return nil, fmt.Errorf("colorimetry: CAT %s: %w", name, err)
	}
	return &CAT{name: name, m: m, inv: inv}, nil
}

func mustCAT(name string, m Matrix3) *CAT {
	c, err := NewCAT(name, m)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the name of the transform, e.g. "Bradford".
func (c *CAT) Name() string {
	return c.name
}

// Matrix returns the matrix mapping XYZ to the cone-response space.
func (c *CAT) Matrix() Matrix3 {
	return c.m
}

// Inverse returns the matrix mapping the cone-response space back to XYZ.
func (c *CAT) Inverse() Matrix3 {
	return c.inv
}

func (c *CAT) String() string {
	return c.name + " " + c.m.String()
}

// AdaptationMatrix returns the matrix which adapts XYZ values from the
// reference white src to the reference white dst.
func (c *CAT) AdaptationMatrix(src, dst [3]float64) Matrix3 {
	ws := c.m.Apply(src)
	wd := c.m.Apply(dst)
	scale := Diagonal(wd[0]/ws[0], wd[1]/ws[1], wd[2]/ws[2])
	return c.inv.Mul(scale).Mul(c.m)
}

// Adapt converts color, seen under the reference white src, to the
// corresponding colour under the reference white dst.
//
// The result carries the context of dst, with c as its adaptation
// transform.  Adapting to the reference white the colour already has
// returns the colour unchanged.
func (c *CAT) Adapt(color, src, dst XYZ) XYZ {
	ctx := dst.ctx.WithCAT(c)
	ws, wd := src.vector(), dst.vector()
	if ws == wd {
		color.ctx = ctx
		return color
	}

	lms := c.m.Apply(color.vector())
	ls := c.m.Apply(ws)
	ld := c.m.Apply(wd)
	for i := range lms {
		lms[i] *= ld[i] / ls[i]
	}
	res := xyzFromVector(c.inv.Apply(lms), ctx)
	res.alpha = color.alpha
	return res
}

// The standard chromatic adaptation transforms.
var (
	// XYZScaling scales the XYZ values directly.  It is always available
	// as the fallback transform.
	XYZScaling = mustCAT("XYZ Scaling", Identity)

	// Bradford is the transform of Lam (1985), used by ICC profiles.
	Bradford = mustCAT("Bradford", Matrix3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	})

	// CAT02 is the transform of the CIECAM02 colour appearance model.
	CAT02 = mustCAT("CAT02", Matrix3{
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	})

	// CAT16 is the transform of the CAM16 colour appearance model.
	CAT16 = mustCAT("CAT16", Matrix3{
		{0.401288, 0.650173, -0.051461},
		{-0.250268, 1.204414, 0.045854},
		{-0.002079, 0.048952, 0.953127},
	})

	// CMCCAT2000 is the simplified CMCCAT2000 transform.
	CMCCAT2000 = mustCAT("CMC CAT2000", Matrix3{
		{0.7982, 0.3389, -0.1371},
		{-0.5918, 1.5512, 0.0406},
		{0.0008, 0.0239, 0.9753},
	})

	// CMCCAT97 uses the Bradford matrix with linear adaptation.
	CMCCAT97 = mustCAT("CMC CAT97", Matrix3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	})

	// VonKries uses the Hunt-Pointer-Estevez cone fundamentals,
	// normalised to D65.
	VonKries = mustCAT("Von Kries", Matrix3{
		{0.4002400, 0.7076000, -0.0808100},
		{-0.2263000, 1.1653200, 0.0457000},
		{0.0000000, 0.0000000, 0.9182200},
	})

	// HuntPointerEstevez uses the Hunt-Pointer-Estevez cone
	// fundamentals, normalised to illuminant E.
	HuntPointerEstevez = mustCAT("Hunt-Pointer-Estevez", Matrix3{
		{0.38971, 0.68898, -0.07868},
		{-0.22981, 1.18340, 0.04641},
		{0.00000, 0.00000, 1.00000},
	})

	// Sharp is the spectrally sharpened transform of Süsstrunk et al.
	Sharp = mustCAT("Sharp", Matrix3{
		{1.2694, -0.0988, -0.1706},
		{-0.8364, 1.8006, 0.0357},
		{0.0297, -0.0315, 1.0018},
	})

	// Fairchild is the transform from Fairchild's "Color Appearance
	// Models".
	Fairchild = mustCAT("Fairchild", Matrix3{
		{0.8562, 0.3372, -0.1934},
		{-0.8360, 1.8327, 0.0033},
		{0.0357, -0.0469, 1.0112},
	})
)

// defaultPriority lists the transforms in the order in which they are
// considered for the default.
var defaultPriority = []string{
	"Bradford",
	"CAT16",
	"CAT02",
	"CMC CAT2000",
	"Von Kries",
	"Hunt-Pointer-Estevez",
	"Sharp",
	"Fairchild",
	"CMC CAT97",
	"XYZ Scaling",
}

// standardCATs are the transforms available in this build.
var standardCATs = []*CAT{
	XYZScaling,
	Bradford,
	CAT02,
	CAT16,
	CMCCAT2000,
	CMCCAT97,
	VonKries,
	HuntPointerEstevez,
	Sharp,
	Fairchild,
}

// SelectDefault returns the default transform among the available ones:
// the first in the fixed order Bradford, CAT16, CAT02, CMC CAT2000,
// Von Kries, Hunt-Pointer-Estevez, Sharp, Fairchild, CMC CAT97,
// XYZ Scaling.  Transforms with other names are only chosen if no
// standard one is available; for an empty list the result is [XYZScaling].
func SelectDefault(available []*CAT) *CAT {
	for _, name := range defaultPriority {
		for _, c := range available {
			if c != nil && c.name == name {
				return c
			}
		}
	}
	for _, c := range available {
		if c != nil {
			return c
		}
	}
	return XYZScaling
}

var defaultCAT = sync.OnceValue(func() *CAT {
	return SelectDefault(standardCATs)
})

// DefaultCAT returns the process-wide default chromatic adaptation
// transform.
func DefaultCAT() *CAT {
	return defaultCAT()
}

// CATs returns the names of the standard transforms, in order of
// preference.
func CATs() []string {
	var names []string
	for _, name := range defaultPriority {
		if _, err := CATByName(name); err == nil {
			names = append(names, name)
		}
	}
	return names
}

// CATByName returns the standard transform with the given name.
func CATByName(name string) (*CAT, error) {
	for _, c := range standardCATs {
		if c.name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: CAT %q", ErrUnknownName, name)
}
