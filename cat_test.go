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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWhites = []*Illuminant{D65, D50, IlluminantA, IlluminantC, F11}

var testColors = []XYZ{
	NewXYZ(0.0, 0.0, 0.0),
	NewXYZ(0.2, 0.3, 0.4),
	NewXYZ(0.95047, 1, 1.08883),
	NewXYZ(0.4124, 0.2126, 0.0193),
	NewXYZ(-0.1, 0.05, 1.2),
}

func assertXYZ(t *testing.T, want, got XYZ, tol float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, float64(want.X), float64(got.X), tol, msgAndArgs...)
	assert.InDelta(t, float64(want.Y), float64(got.Y), tol, msgAndArgs...)
	assert.InDelta(t, float64(want.Z), float64(got.Z), tol, msgAndArgs...)
}

func TestAdaptSameWhite(t *testing.T) {
	for _, cat := range standardCATs {
		for _, w := range testWhites {
			white := Context{Illuminant: w}.ReferenceWhite()
			for _, c := range testColors {
				got := cat.Adapt(c, white, white)
				assertXYZ(t, c, got, 1e-12, "%s, %s", cat.Name(), w.Name())
			}
			m := cat.AdaptationMatrix(white.vector(), white.vector())
			assert.True(t, m.ApproxEqual(Identity, 1e-12), "%s: %v", cat.Name(), m)
		}
	}
}

func TestAdaptRoundTrip(t *testing.T) {
	for _, cat := range standardCATs {
		for _, src := range testWhites {
			for _, dst := range testWhites {
				ws := Context{Illuminant: src}.ReferenceWhite()
				wd := Context{Illuminant: dst}.ReferenceWhite()
				for _, c := range testColors {
					there := cat.Adapt(c, ws, wd)
					back := cat.Adapt(there, wd, ws)
					assertXYZ(t, c, back, 1e-9, "%s: %s -> %s", cat.Name(), src.Name(), dst.Name())
				}
			}
		}
	}
}

func TestAdaptMapsWhiteToWhite(t *testing.T) {
	for _, cat := range standardCATs {
		ws := Context{Illuminant: IlluminantA}.ReferenceWhite()
		wd := Context{Illuminant: D65}.ReferenceWhite()
		got := cat.Adapt(ws, ws, wd)
		assertXYZ(t, wd, got, 1e-9, cat.Name())
	}
}

func TestAdaptKeepsAlpha(t *testing.T) {
	c := NewXYZ(0.2, 0.3, 0.4).WithAlpha(0.25)
	got := c.AdaptTo(Context{Illuminant: D50})
	assert.Equal(t, 0.25, got.Alpha())
	assert.Equal(t, D50, got.Context().Illuminant)
}

func TestD65SelfAdaptation(t *testing.T) {
	white := NewXYZ(0.95047, 1.0, 1.08883)
	got := white.AdaptTo(DefaultContext())
	assertXYZ(t, white, got, 1e-6)

	got = DefaultCAT().Adapt(white, white, white)
	assertXYZ(t, white, got, 1e-6)
}

func TestBradfordD65ToD50(t *testing.T) {
	// reference values from Bruce Lindbloom's tables
	want := Matrix3{
		{1.0478112, 0.0228866, -0.0501270},
		{0.0295424, 0.9904844, -0.0170491},
		{-0.0092345, 0.0150436, 0.7521316},
	}
	got := Bradford.AdaptationMatrix(D65.WhitePoint(CIE1931), D50.WhitePoint(CIE1931))
	assert.True(t, got.ApproxEqual(want, 1e-6), "got %.7v", got)
}

func TestNewCAT(t *testing.T) {
	m := Matrix3{{2, 0, 0}, {0, 1, 0}, {0, 0, 0.5}}
	cat, err := NewCAT("custom", m)
	require.NoError(t, err)
	assert.Equal(t, "custom", cat.Name())
	assert.True(t, cat.Matrix().Mul(cat.Inverse()).ApproxEqual(Identity, 1e-15))

	_, err = NewCAT("broken", Matrix3{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}})
	require.ErrorIs(t, err, ErrSingularMatrix)
	assert.Contains(t, err.Error(), "broken")
}

func TestSelectDefault(t *testing.T) {
	custom, err := NewCAT("custom", Diagonal(1, 2, 3))
	require.NoError(t, err)

	tests := []struct {
		name      string
		available []*CAT
		want      *CAT
	}{
		{"all", standardCATs, Bradford},
		{"no Bradford", []*CAT{XYZScaling, CAT02, CAT16}, CAT16},
		{"appearance models", []*CAT{CAT02, CMCCAT2000}, CAT02},
		{"research", []*CAT{Fairchild, Sharp, HuntPointerEstevez, VonKries}, VonKries},
		{"CMC", []*CAT{XYZScaling, CMCCAT97}, CMCCAT97},
		{"fallback", []*CAT{XYZScaling}, XYZScaling},
		{"custom only", []*CAT{custom}, custom},
		{"custom and standard", []*CAT{custom, Sharp}, Sharp},
		{"empty", nil, XYZScaling},
	}
	for _, tt := range tests {
		assert.Same(t, tt.want, SelectDefault(tt.available), tt.name)
	}

	assert.Same(t, Bradford, DefaultCAT())
	assert.Same(t, DefaultCAT(), DefaultContext().CAT)
}

func TestCATByName(t *testing.T) {
	names := CATs()
	require.Len(t, names, len(standardCATs))
	assert.Equal(t, "Bradford", names[0])
	assert.Equal(t, "XYZ Scaling", names[len(names)-1])

	for _, name := range names {
		cat, err := CATByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, cat.Name())
	}

	_, err := CATByName("no such transform")
	assert.ErrorIs(t, err, ErrUnknownName)
}
