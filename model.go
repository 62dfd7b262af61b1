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

// Color is any colour value.  Every representation can be converted to
// XYZ tristimulus values, which serve as the hub for all conversions.
type Color interface {
	XYZ() XYZ
}

// Model is the contract implemented by every colour representation T.
//
// FromXYZ converts from the hub, ignoring the receiver's value.
// Components and WithComponents give access to the raw component vector,
// in the order documented for the type.  Alpha is the opacity in [0, 1];
// it defaults to 1 and is carried through all conversions.
//
// Every representation also has a pointer method SetComponents which
// changes the value in place.
//
// Beyond this contract, a representation may implement any of the
// following methods.  The functions of this package use them in place of
// the generic derivation through the hub:
//
//	Luminance() float64
//	Chromaticity() Chromaticity
//	Hue() float64
//	Chroma() float64
//	Lightness() float64
//	WithLuminance(float64) T
//	WithLuminanceScaledBy(float64) T
//	WithHueRotatedBy(float64) T
//	AdaptTo(Context) T
//	MixedWith(Color, float64) T
type Model[T any] interface {
	Color
	FromXYZ(XYZ) T
	Components() []float64
	WithComponents(...float64) T
	Alpha() float64
	WithAlpha(float64) T
}

// Optional methods.  See [Model].
type (
	luminancer     interface{ Luminance() float64 }
	chromaticitier interface{ Chromaticity() Chromaticity }
	huer           interface{ Hue() float64 }
	chromaer       interface{ Chroma() float64 }
	lightnesser    interface{ Lightness() float64 }

	luminanceSetter[T any] interface{ WithLuminance(float64) T }
	luminanceScaler[T any] interface{ WithLuminanceScaledBy(float64) T }
	hueRotator[T any]      interface{ WithHueRotatedBy(float64) T }
	adapter[T any]         interface{ AdaptTo(Context) T }
	mixer[T any]           interface{ MixedWith(Color, float64) T }
)

// directConverter is implemented by representations which know a shorter
// path to some other representations than the one through XYZ.
// convertTo stores the converted value in *dst, which is a pointer to
// the target type, and reports whether this was possible.
type directConverter interface {
	convertTo(dst any) bool
}

// inker is implemented by the subtractive representations.
type inker interface {
	inks() [4]float64
}

// rgbSource is implemented by representations tied to an RGB space.
// It returns the space and the encoded RGB values.
type rgbSource interface {
	rgb() (*RGBSpec, [3]float64)
}

// opacity stores the alpha value of a colour.  The zero value is fully
// opaque.
type opacity struct {
	a   float64
	set bool
}

func alpha(a float64) opacity {
	return opacity{a: a, set: true}
}

func (o opacity) value() float64 {
	if !o.set {
		return 1
	}
	return o.a
}

// checkComponents checks the length of a component vector passed to
// WithComponents.
func checkComponents(name string, n int, v []float64) {
	if len(v) != n {
		panic("colorimetry: " + name + ": wrong number of components")
	}
}
