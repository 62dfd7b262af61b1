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
	"testing"
)

func TestIlluminantWhites(t *testing.T) {
	for _, name := range Illuminants() {
		l, err := IlluminantByName(name)
		if err != nil {
			t.Fatal(err)
		}
		if l.Name() != name {
			t.Errorf("%s: got name %q", name, l.Name())
		}
		for _, obs := range []Observer{CIE1931, CIE1964} {
			w := l.WhitePoint(obs)
			if w[1] != 1 {
				t.Errorf("%s/%s: Y = %g", name, obs, w[1])
			}
		}
	}

	// D65 has chromaticity (0.3127, 0.3290)
	w := D65.WhitePoint(CIE1931)
	sum := w[0] + w[1] + w[2]
	if math.Abs(w[0]/sum-0.3127) > 1e-4 || math.Abs(w[1]/sum-0.3290) > 1e-4 {
		t.Errorf("unexpected D65 white %v", w)
	}
}

func TestIlluminants(t *testing.T) {
	names := Illuminants()
	if !slices.IsSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	for _, want := range []string{"A", "C", "D50", "D65", "E", "F11"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing illuminant %s", want)
		}
	}

	_, err := IlluminantByName("D66")
	if !errors.Is(err, ErrUnknownName) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestNewIlluminant(t *testing.T) {
	good := [3]float64{0.9, 1, 1.1}
	cases := []struct {
		name    string
		w2, w10 [3]float64
		ok      bool
	}{
		{"valid", good, good, true},
		{"black", [3]float64{}, good, false},
		{"black 10°", good, [3]float64{0.5, 0, 0.5}, false},
		{"NaN", [3]float64{math.NaN(), 1, 1}, good, false},
		{"Inf", good, [3]float64{1, math.Inf(1), 1}, false},
	}
	for _, tc := range cases {
		l, err := NewIlluminant(tc.name, tc.w2, tc.w10)
		if tc.ok {
			if err != nil {
				t.Errorf("%s: %v", tc.name, err)
			} else if l.WhitePoint(CIE1964) != tc.w10 {
				t.Errorf("%s: wrong 10° white", tc.name)
			}
		} else if !errors.Is(err, ErrInvalidWhitePoint) {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
	}

	l, err := IlluminantFromChromaticity("x", Chromaticity{X: 1.0 / 3, Y: 1.0 / 3})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range l.WhitePoint(CIE1931) {
		if math.Abs(v-1) > 1e-12 {
			t.Errorf("component %d: %g", i, v)
		}
	}

	_, err = IlluminantFromChromaticity("y", Chromaticity{X: 0.3, Y: 0})
	if !errors.Is(err, ErrInvalidWhitePoint) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestChromaticityXYZ(t *testing.T) {
	xyz := Chromaticity{X: 0.25, Y: 0.5}.XYZ(2)
	want := [3]float64{1, 2, 1}
	for i := range xyz {
		if math.Abs(xyz[i]-want[i]) > 1e-12 {
			t.Errorf("got %v, want %v", xyz, want)
			break
		}
	}
}

func TestContextDefaults(t *testing.T) {
	var zero Context
	if !zero.Equal(DefaultContext()) {
		t.Errorf("zero context %v differs from default", zero)
	}
	if zero.Adaptation() != DefaultCAT() {
		t.Errorf("wrong default CAT %v", zero.Adaptation())
	}
	if zero.WhitePoint() != D65.WhitePoint(CIE1931) {
		t.Errorf("wrong default white %v", zero.WhitePoint())
	}
	if s := zero.String(); s != "D65/CIE 1931 2°/"+DefaultCAT().Name() {
		t.Errorf("unexpected string %q", s)
	}
}

func TestContextEqual(t *testing.T) {
	d65 := Context{Illuminant: D65}
	cases := []struct {
		a, b Context
		want bool
	}{
		{d65, DefaultContext(), true},
		{d65, d65.WithIlluminant(D50), false},
		{d65, d65.WithObserver(CIE1964), false},
		{d65, d65.WithCAT(CAT16), DefaultCAT() == CAT16},
		{d65.WithCAT(CAT02), d65.WithCAT(CAT02), true},

		// illuminants compare by their white point
		{d65.WithIlluminant(testWhite(D65.WhitePoint(CIE1931))), d65, true},
	}
	for i, tc := range cases {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Errorf("%d: %v == %v is %t", i, tc.a, tc.b, got)
		}
	}
}

func TestReferenceWhite(t *testing.T) {
	ctx := Context{Illuminant: IlluminantA, Observer: CIE1964}
	w := ctx.ReferenceWhite()
	if w.vector() != IlluminantA.WhitePoint(CIE1964) {
		t.Errorf("wrong white %v", w)
	}
	if !w.Context().Equal(ctx) {
		t.Errorf("wrong context %v", w.Context())
	}
	if w.Luminance() != 1 {
		t.Errorf("luminance %g", w.Luminance())
	}
}
