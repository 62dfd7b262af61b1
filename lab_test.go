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
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestLabToXYZ(t *testing.T) {
	white := D50.WhitePoint(CIE1931)

	tests := []struct {
		L, a, b             float64
		wantX, wantY, wantZ float64
	}{
		// white: L=100, a=0, b=0 should give white point
		{100, 0, 0, 0.96422, 1.0, 0.82521},
		// black: L=0 should give near zero
		{0, 0, 0, 0, 0, 0},
		// mid gray: L=50
		{50, 0, 0, 0.1776, 0.1842, 0.1520},
	}

	for _, tt := range tests {
		v := labToXYZ(tt.L, tt.a, tt.b, white)
		x, y, z := v[0], v[1], v[2]
		if math.Abs(x-tt.wantX) > 0.001 || math.Abs(y-tt.wantY) > 0.001 || math.Abs(z-tt.wantZ) > 0.001 {
			t.Errorf("labToXYZ(%v, %v, %v) = (%v, %v, %v), want (%v, %v, %v)",
				tt.L, tt.a, tt.b, x, y, z, tt.wantX, tt.wantY, tt.wantZ)
		}
	}
}

func TestXYZToLab(t *testing.T) {
	white := D50.WhitePoint(CIE1931)

	tests := []struct {
		X, Y, Z             float64
		wantL, wantA, wantB float64
	}{
		// white point should give L=100, a=0, b=0
		{0.96422, 1.0, 0.82521, 100, 0, 0},
		// black should give L=0
		{0, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		L, a, b := xyzToLab([3]float64{tt.X, tt.Y, tt.Z}, white)
		if math.Abs(L-tt.wantL) > 1e-9 || math.Abs(a-tt.wantA) > 1e-9 || math.Abs(b-tt.wantB) > 1e-9 {
			t.Errorf("xyzToLab(%v, %v, %v) = (%v, %v, %v), want (%v, %v, %v)",
				tt.X, tt.Y, tt.Z, L, a, b, tt.wantL, tt.wantA, tt.wantB)
		}
	}
}

func TestLabXYZRoundTrip(t *testing.T) {
	ctx := Context{Illuminant: D50}

	tests := [][3]float64{
		{0, 0, 0},
		{5, 2, -3},
		{50, 0, 0},
		{100, 0, 0},
		{50, 50, 0},
		{50, 0, 50},
		{50, -50, -50},
		{75, 25, -30},
	}

	for _, lab := range tests {
		c := NewLab(lab[0], lab[1], lab[2]).WithContext(ctx)
		x := c.XYZ()
		back := Lab{}.FromXYZ(x)
		if math.Abs(float64(back.L)-lab[0]) > 1e-9 ||
			math.Abs(float64(back.A)-lab[1]) > 1e-9 ||
			math.Abs(float64(back.B)-lab[2]) > 1e-9 {
			t.Errorf("Lab round-trip failed: %v -> %v -> %v", lab, x, back)
		}
		if !back.Context().Equal(ctx) {
			t.Errorf("context changed to %s", back.Context())
		}
	}
}

var oracleColors = []colorful.Color{
	{R: 0, G: 0, B: 0},
	{R: 1, G: 1, B: 1},
	{R: 0.5, G: 0.5, B: 0.5},
	{R: 1, G: 0, B: 0},
	{R: 0, G: 1, B: 0},
	{R: 0, G: 0, B: 1},
	{R: 0.2, G: 0.4, B: 0.6},
	{R: 0.9, G: 0.7, B: 0.1},
	{R: 0.03, G: 0.02, B: 0.01},
}

func TestLabAgainstColorful(t *testing.T) {
	for _, ref := range oracleColors {
		l, a, b := ref.Lab()
		got := Convert[Lab](NewRGB[SRGB](ref.R, ref.G, ref.B))
		if math.Abs(float64(got.L)/100-l) > 1e-3 ||
			math.Abs(float64(got.A)/100-a) > 1e-3 ||
			math.Abs(float64(got.B)/100-b) > 1e-3 {
			t.Errorf("%s: got %v, want Lab(%.2f, %.2f, %.2f)",
				ref.Hex(), got, 100*l, 100*a, 100*b)
		}
	}
}

func TestLuvAgainstColorful(t *testing.T) {
	for _, ref := range oracleColors {
		l, u, v := ref.Luv()
		got := Convert[Luv](NewRGB[SRGB](ref.R, ref.G, ref.B))
		if math.Abs(float64(got.L)/100-l) > 1e-3 ||
			math.Abs(float64(got.U)/100-u) > 1e-3 ||
			math.Abs(float64(got.V)/100-v) > 1e-3 {
			t.Errorf("%s: got %v, want Luv(%.2f, %.2f, %.2f)",
				ref.Hex(), got, 100*l, 100*u, 100*v)
		}
	}
}

func TestLabAdaptTo(t *testing.T) {
	c := NewLab(60, 20, -30).WithAlpha(0.5)

	same := c.AdaptTo(DefaultContext().WithCAT(CAT16))
	if same.L != c.L || same.A != c.A || same.B != c.B {
		t.Errorf("adapting to the same white changed the colour: %v -> %v", c, same)
	}
	if same.Context().CAT != CAT16 {
		t.Error("context was not relabelled")
	}

	d50 := c.AdaptTo(Context{Illuminant: D50})
	if d50.L == c.L && d50.A == c.A && d50.B == c.B {
		t.Error("adapting to D50 did not change the values")
	}
	if d50.Alpha() != 0.5 {
		t.Errorf("alpha = %v, want 0.5", d50.Alpha())
	}
	back := d50.AdaptTo(Context{})
	if math.Abs(float64(back.L-c.L)) > 1e-9 ||
		math.Abs(float64(back.A-c.A)) > 1e-9 ||
		math.Abs(float64(back.B-c.B)) > 1e-9 {
		t.Errorf("D65 -> D50 -> D65: %v -> %v", c, back)
	}

	// relabelling keeps the values, adapting keeps the appearance
	relabelled := c.WithContext(Context{Illuminant: D50})
	if relabelled.L != c.L || relabelled.A != c.A {
		t.Errorf("WithContext changed the values: %v", relabelled)
	}
}

func TestLCh(t *testing.T) {
	lab := NewLab(50, 0, 30)
	lch := Convert[LCh](lab)
	if math.Abs(float64(lch.C)-30) > 1e-12 || math.Abs(float64(lch.H)-90) > 1e-12 {
		t.Errorf("LCh = %v, want LCh(50, 30, 90°)", lch)
	}
	if h := lch.Hue(); math.Abs(h-90) > 1e-12 {
		t.Errorf("Hue() = %v, want 90", h)
	}

	back := Convert[Lab](lch)
	if math.Abs(float64(back.A)) > 1e-12 || math.Abs(float64(back.B)-30) > 1e-12 {
		t.Errorf("back to Lab: %v", back)
	}

	gray := Convert[LCh](NewLab(50, 0, 0))
	if h := gray.Hue(); h != AchromaticHue {
		t.Errorf("hue of gray = %v, want %v", h, AchromaticHue)
	}

	neg := NewLCh(50, 10, -90)
	if h := neg.Hue(); h != 270 {
		t.Errorf("hue of -90° = %v, want 270", h)
	}
}

func TestLuvRoundTrip(t *testing.T) {
	for _, ref := range oracleColors {
		x := NewRGB[SRGB](ref.R, ref.G, ref.B).XYZ()
		luv := Luv{}.FromXYZ(x)
		back := luv.XYZ()
		for i, v := range back.vector() {
			if math.Abs(v-x.vector()[i]) > 1e-12 {
				t.Errorf("%s: %v -> %v -> %v", ref.Hex(), x, luv, back)
				break
			}
		}

		lch := Convert[LChuv](luv)
		if got := Convert[Luv](lch); math.Abs(float64(got.U-luv.U)) > 1e-9 ||
			math.Abs(float64(got.V-luv.V)) > 1e-9 {
			t.Errorf("%s: LChuv round trip %v -> %v", ref.Hex(), luv, got)
		}
	}
}

func TestLuvContext(t *testing.T) {
	d50 := Context{Illuminant: D50}

	luv := NewLuv(60, -20, 10).WithAlpha(0.5)
	relabelled := luv.WithContext(d50)
	if relabelled.L != luv.L || relabelled.U != luv.U || relabelled.V != luv.V {
		t.Errorf("WithContext changed the values: %v -> %v", luv, relabelled)
	}
	if !relabelled.Context().Equal(d50) {
		t.Errorf("context = %v, want %v", relabelled.Context(), d50)
	}

	lch := NewLChuv(60, 25, 90).WithAlpha(0.5)
	if got := lch.WithContext(d50); got.C != lch.C || !got.Context().Equal(d50) {
		t.Errorf("LChuv WithContext: %v", got)
	}

	adapted := lch.AdaptTo(d50)
	if adapted.C == lch.C && adapted.H == lch.H {
		t.Error("adapting to D50 did not change the values")
	}
	if !adapted.Context().Equal(d50) || adapted.Alpha() != 0.5 {
		t.Errorf("adapted = %v in %v, alpha %v", adapted, adapted.Context(), adapted.Alpha())
	}
	back := adapted.AdaptTo(Context{})
	if math.Abs(float64(back.L-lch.L)) > 1e-9 ||
		math.Abs(float64(back.C-lch.C)) > 1e-9 ||
		hueDist(float64(back.H), float64(lch.H)) > 1e-9 {
		t.Errorf("D65 -> D50 -> D65: %v -> %v", lch, back)
	}

	// the generic operation uses the native method
	if got := AdaptedTo(lch, d50); got.L != adapted.L || got.C != adapted.C || got.H != adapted.H {
		t.Errorf("AdaptedTo = %v, want %v", got, adapted)
	}

	lms := NewLMS(0.3, 0.4, 0.5)
	vk := Context{CAT: VonKries}
	if got := lms.WithContext(vk); got.L != lms.L || got.Context().CAT != VonKries {
		t.Errorf("LMS WithContext: %v in %v", got, got.Context())
	}
}
