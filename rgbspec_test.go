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
	"errors"
	"math"
	"slices"
	"sync"
	"testing"
)

func TestSpecMatrices(t *testing.T) {
	for _, spec := range Spaces() {
		t.Run(spec.Name(), func(t *testing.T) {
			m, inv := spec.Matrix(), spec.InverseMatrix()
			if p := m.Mul(inv); !p.ApproxEqual(Identity, 1e-9) {
				t.Errorf("M*M^-1 = %v", p)
			}

			white := spec.Context().WhitePoint()
			got := m.Apply([3]float64{1, 1, 1})
			for i := range got {
				if math.Abs(got[i]-white[i]) > 1e-9 {
					t.Errorf("RGB(1,1,1) -> %v, want %v", got, white)
					break
				}
			}
		})
	}
}

func TestSRGBWhite(t *testing.T) {
	got := NewLinearRGB[SRGB](1, 1, 1).XYZ()
	want := [3]float64{0.95047, 1.0, 1.08883}
	for i, x := range got.vector() {
		if math.Abs(x-want[i]) > 1e-6 {
			t.Errorf("linear (1,1,1) -> %v, want %v", got, want)
			break
		}
	}
}

func TestSRGBMatrix(t *testing.T) {
	// IEC 61966-2-1
	want := Matrix3{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
	if got := SRGBSpec.Matrix(); !got.ApproxEqual(want, 1e-4) {
		t.Errorf("sRGB matrix = %v, want %v", got, want)
	}
}

// TestSRGBPrimariesD50 checks the sRGB primaries after Bradford adaptation
// to D50, as used in ICC profiles.
func TestSRGBPrimariesD50(t *testing.T) {
	type xyz struct{ X, Y, Z float64 }
	primaries := []struct {
		name  string
		input RGB[SRGB]
		want  xyz
	}{
		{"red", NewRGB[SRGB](1, 0, 0), xyz{0.4361, 0.2225, 0.0139}},
		{"green", NewRGB[SRGB](0, 1, 0), xyz{0.3851, 0.7169, 0.0971}},
		{"blue", NewRGB[SRGB](0, 0, 1), xyz{0.1431, 0.0606, 0.7141}},
	}

	ctx := Context{Illuminant: D50, CAT: Bradford}
	for _, pp := range primaries {
		t.Run(pp.name, func(t *testing.T) {
			c := pp.input.XYZ().AdaptTo(ctx)
			const eps = 1e-4
			if math.Abs(float64(c.X)-pp.want.X) > eps ||
				math.Abs(float64(c.Y)-pp.want.Y) > eps ||
				math.Abs(float64(c.Z)-pp.want.Z) > eps {
				t.Errorf("XYZ = (%.4f, %.4f, %.4f), want (%.4f, %.4f, %.4f)",
					c.X, c.Y, c.Z, pp.want.X, pp.want.Y, pp.want.Z)
			}
		})
	}
}

func TestSpecConcurrentInit(t *testing.T) {
	spec, err := NewRGBSpec("test", srgbPrimaries, SRGBCurve, Context{})
	if err != nil {
		t.Fatal(err)
	}

	const n = 64
	results := make([]Matrix3, n)
	inverses := make([]Matrix3, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = spec.Matrix()
			inverses[i] = spec.InverseMatrix()
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if results[i] != results[0] || inverses[i] != inverses[0] {
			t.Fatalf("goroutine %d saw a different matrix", i)
		}
	}
	if results[0] != SRGBSpec.Matrix() {
		t.Errorf("matrix = %v, want %v", results[0], SRGBSpec.Matrix())
	}
}

type testWhite [3]float64

func (w testWhite) Name() string { return "test" }

func (w testWhite) WhitePoint(Observer) [3]float64 { return [3]float64(w) }

func TestNewRGBSpecErrors(t *testing.T) {
	tests := []struct {
		name string
		p    Primaries
		ctx  Context
		want error
	}{
		{
			name: "colinear",
			p: Primaries{
				Red:   Chromaticity{0.6, 0.3},
				Green: Chromaticity{0.4, 0.4},
				Blue:  Chromaticity{0.2, 0.5},
			},
			want: ErrDegeneratePrimaries,
		},
		{
			name: "coincident",
			p: Primaries{
				Red:   Chromaticity{0.3, 0.3},
				Green: Chromaticity{0.3, 0.3},
				Blue:  Chromaticity{0.15, 0.06},
			},
			want: ErrDegeneratePrimaries,
		},
		{
			name: "zero y",
			p: Primaries{
				Red:   Chromaticity{0.64, 0.33},
				Green: Chromaticity{0.3, 0.6},
				Blue:  Chromaticity{0.15, 0},
			},
			want: ErrDegeneratePrimaries,
		},
		{
			name: "white on the red-green edge",
			p: Primaries{
				Red:   Chromaticity{0.6, 1.0 / 3},
				Green: Chromaticity{0.1, 1.0 / 3},
				Blue:  Chromaticity{0.3, 0.1},
			},
			ctx:  Context{Illuminant: IlluminantE},
			want: ErrDegeneratePrimaries,
		},
		{
			name: "white at the blue primary",
			p: Primaries{
				Red:   Chromaticity{0.64, 0.33},
				Green: Chromaticity{0.3, 0.6},
				Blue:  Chromaticity{1.0 / 3, 1.0 / 3},
			},
			ctx:  Context{Illuminant: IlluminantE},
			want: ErrDegeneratePrimaries,
		},
		{
			name: "black white point",
			p:    srgbPrimaries,
			ctx:  Context{Illuminant: testWhite{0.5, 0, 0.5}},
			want: ErrInvalidWhitePoint,
		},
		{
			name: "NaN white point",
			p:    srgbPrimaries,
			ctx:  Context{Illuminant: testWhite{math.NaN(), 1, 1}},
			want: ErrInvalidWhitePoint,
		},
	}
	for _, tt := range tests {
		_, err := NewRGBSpec(tt.name, tt.p, Linear, tt.ctx)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}

	// a white just inside the triangle is fine
	spec, err := NewRGBSpec("near edge", Primaries{
		Red:   Chromaticity{0.6, 0.34},
		Green: Chromaticity{0.1, 0.34},
		Blue:  Chromaticity{0.3, 0.1},
	}, Linear, Context{Illuminant: IlluminantE})
	if err != nil {
		t.Fatal(err)
	}
	if p := spec.Matrix().Mul(spec.InverseMatrix()); !p.ApproxEqual(Identity, 1e-9) {
		t.Errorf("M*M^-1 = %v", p)
	}
}

func TestSpaces(t *testing.T) {
	specs := Spaces()
	if len(specs) != 36 {
		t.Errorf("got %d spaces, want 36", len(specs))
	}
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name()
	}
	if !slices.IsSorted(names) {
		t.Errorf("spaces not sorted: %v", names)
	}
	for _, s := range specs {
		if p := s.Matrix().Mul(s.InverseMatrix()); !p.ApproxEqual(Identity, 1e-9) {
			t.Errorf("%s: M*M^-1 = %v", s.Name(), p)
		}
		white := s.Matrix().Apply([3]float64{1, 1, 1})
		want := s.Context().WhitePoint()
		for i := 0; i < 3; i++ {
			if math.Abs(white[i]-want[i]) > 1e-9 {
				t.Errorf("%s: RGB white maps to %v, want %v", s.Name(), white, want)
				break
			}
		}
	}

	s, err := SpaceByName("Display P3")
	if err != nil || s != DisplayP3Spec {
		t.Errorf("SpaceByName(Display P3) = %v, %v", s, err)
	}
	s, err = SpaceByName("Sony S-Gamut3.Cine")
	if err != nil || s != SGamut3CineSpec {
		t.Errorf("SpaceByName(Sony S-Gamut3.Cine) = %v, %v", s, err)
	}
	if _, err := SpaceByName("sRGB 2"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("SpaceByName(sRGB 2): got %v", err)
	}
}

func TestPrimariesArea(t *testing.T) {
	if a := srgbPrimaries.Area(); math.Abs(a-0.1121) > 1e-4 {
		t.Errorf("sRGB area = %f", a)
	}
	if a := rec2020Primaries.Area(); a <= srgbPrimaries.Area() {
		t.Errorf("Rec. 2020 area %f <= sRGB area", a)
	}
}
