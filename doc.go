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

// Package colorimetry represents colours in many colour models, converts
// between them, and adapts colours to different viewing conditions.
//
// All conversions pass through CIE XYZ tristimulus values ([XYZ]), relative
// to the reference white of a viewing [Context].  The context combines an
// illuminant, a standard observer and a chromatic adaptation transform
// ([CAT]); the default is D65, CIE 1931 and [Bradford].
//
// # Colour Representations
//
// Every representation implements [Model].  RGB based representations
// take the RGB space as a type parameter, so that colours from different
// spaces cannot be mixed by accident:
//
//	c := colorimetry.NewRGB[colorimetry.SRGB](1, 0.5, 0)
//	lab := colorimetry.Convert[colorimetry.Lab](c)
//	p3 := colorimetry.Convert[colorimetry.RGB[colorimetry.DisplayP3]](c)
//
// Chromaticities are available in CIE 1931 xy ([Chromaticity]), CIE 1976
// u'v' ([UVPrime]), CIE 1960 uv ([UV]) and relative to the primaries of an
// RGB space ([RG]).
//
// New RGB spaces are defined with [NewRGBSpec] and a type implementing
// [Space].  New chromatic adaptation transforms are created from a matrix
// with [NewCAT].
//
// # Properties and Operations
//
// Functions like [Hue], [Luminance] and [Red] work for every
// representation.  If a representation has its own notion of a property,
// for example the stored hue of [HSL], this is used; otherwise the value
// is computed through the representation which defines it.
//
// Operations come in pairs.  The With form returns a new value, the
// other form changes a value in place:
//
//	darker := colorimetry.WithLuminanceScaledBy(c, 0.5)
//	colorimetry.ScaleLuminance(&c, 0.5) // now c == darker
//
// Values outside the gamut of an RGB space are preserved by all
// conversions.  Use [Clamped] or [ClampedTo] to limit them explicitly.
package colorimetry
