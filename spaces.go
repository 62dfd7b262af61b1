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
	"slices"

	"golang.org/x/exp/maps"
)

// Space identifies an RGB space at the type level.
//
// Colour types like [RGB] take a Space as a type parameter, so that values
// from different RGB spaces cannot be mixed without an explicit conversion.
// Spaces are usually empty struct types.  A new RGB space is added by
// declaring such a type and returning its specification from Spec.
type Space interface {
	Spec() *RGBSpec
}

var (
	d65Context = Context{Illuminant: D65}
	d50Context = Context{Illuminant: D50}
	eContext   = Context{Illuminant: IlluminantE}

	srgbPrimaries = Primaries{
		Red:   Chromaticity{0.64, 0.33},
		Green: Chromaticity{0.30, 0.60},
		Blue:  Chromaticity{0.15, 0.06},
	}
	p3Primaries = Primaries{
		Red:   Chromaticity{0.680, 0.320},
		Green: Chromaticity{0.265, 0.690},
		Blue:  Chromaticity{0.150, 0.060},
	}
	rec2020Primaries = Primaries{
		Red:   Chromaticity{0.708, 0.292},
		Green: Chromaticity{0.170, 0.797},
		Blue:  Chromaticity{0.131, 0.046},
	}
	ap1Primaries = Primaries{
		Red:   Chromaticity{0.713, 0.293},
		Green: Chromaticity{0.165, 0.830},
		Blue:  Chromaticity{0.128, 0.044},
	}
)

// The built-in RGB space specifications.
var (
	SRGBSpec = mustRGBSpec("sRGB", srgbPrimaries, SRGBCurve, d65Context)

	LinearSRGBSpec = mustRGBSpec("Linear sRGB", srgbPrimaries, Linear, d65Context)

	DisplayP3Spec = mustRGBSpec("Display P3", p3Primaries, SRGBCurve, d65Context)

	// DCIP3Spec uses the P3 primaries with a D65 white.
	DCIP3Spec = mustRGBSpec("DCI-P3", p3Primaries, Gamma(2.6), d65Context)

	AdobeRGBSpec = mustRGBSpec("Adobe RGB (1998)", Primaries{
		Red:   Chromaticity{0.64, 0.33},
		Green: Chromaticity{0.21, 0.71},
		Blue:  Chromaticity{0.15, 0.06},
	}, Gamma(563.0/256.0), d65Context)

	ProPhotoRGBSpec = mustRGBSpec("ProPhoto RGB", Primaries{
		Red:   Chromaticity{0.7347, 0.2653},
		Green: Chromaticity{0.1596, 0.8404},
		Blue:  Chromaticity{0.0366, 0.0001},
	}, ProPhotoCurve, d50Context)

	Rec601Spec = mustRGBSpec("Rec. 601", Primaries{
		Red:   Chromaticity{0.630, 0.340},
		Green: Chromaticity{0.310, 0.595},
		Blue:  Chromaticity{0.155, 0.070},
	}, BT601Curve, d65Context)

	Rec709Spec = mustRGBSpec("Rec. 709", srgbPrimaries, BT709Curve, d65Context)

	Rec2020Spec = mustRGBSpec("Rec. 2020", rec2020Primaries, BT709Curve, d65Context)

	Rec2100PQSpec = mustRGBSpec("Rec. 2100 PQ", rec2020Primaries, PQ, d65Context)

	Rec2100HLGSpec = mustRGBSpec("Rec. 2100 HLG", rec2020Primaries, HLG, d65Context)

	ACEScgSpec = mustRGBSpec("ACEScg", ap1Primaries, Linear, d65Context)

	// ACEScctSpec shares the AP1 primaries with ACEScg.  The values are
	// linear; the logarithmic ACEScct encoding is not applied.
	ACEScctSpec = mustRGBSpec("ACEScct", ap1Primaries, Linear, d65Context)

	ACES2065Spec = mustRGBSpec("ACES 2065-1", Primaries{
		Red:   Chromaticity{0.7347, 0.2653},
		Green: Chromaticity{0.0000, 1.0000},
		Blue:  Chromaticity{0.0001, -0.0770},
	}, Linear, d65Context)

	AppleRGBSpec = mustRGBSpec("Apple RGB", Primaries{
		Red:   Chromaticity{0.625, 0.340},
		Green: Chromaticity{0.280, 0.595},
		Blue:  Chromaticity{0.155, 0.070},
	}, Gamma(1.8), d65Context)

	WideGamutRGBSpec = mustRGBSpec("Wide Gamut RGB", Primaries{
		Red:   Chromaticity{0.7347, 0.2653},
		Green: Chromaticity{0.1152, 0.8264},
		Blue:  Chromaticity{0.1566, 0.0177},
	}, Gamma(2.2), d50Context)

	PALSECAMSpec = mustRGBSpec("PAL/SECAM", Primaries{
		Red:   Chromaticity{0.64, 0.33},
		Green: Chromaticity{0.29, 0.60},
		Blue:  Chromaticity{0.15, 0.06},
	}, BT709Curve, d65Context)

	NTSCSpec = mustRGBSpec("NTSC (1953)", Primaries{
		Red:   Chromaticity{0.67, 0.33},
		Green: Chromaticity{0.21, 0.71},
		Blue:  Chromaticity{0.14, 0.08},
	}, BT709Curve, Context{Illuminant: IlluminantC})
)

// Wide gamut editing spaces.
var (
	BetaRGBSpec = mustRGBSpec("Beta RGB", Primaries{
		Red:   Chromaticity{0.6888, 0.3112},
		Green: Chromaticity{0.1986, 0.7551},
		Blue:  Chromaticity{0.1265, 0.0352},
	}, Gamma(2.2), d50Context)

	BestRGBSpec = mustRGBSpec("Best RGB", Primaries{
		Red:   Chromaticity{0.7347, 0.2653},
		Green: Chromaticity{0.2150, 0.7750},
		Blue:  Chromaticity{0.1300, 0.0350},
	}, Gamma(2.2), d50Context)

	BruceRGBSpec = mustRGBSpec("Bruce RGB", Primaries{
		Red:   Chromaticity{0.6400, 0.3300},
		Green: Chromaticity{0.2800, 0.6500},
		Blue:  Chromaticity{0.1500, 0.0600},
	}, Gamma(2.2), d65Context)

	// CIERGBSpec uses the monochromatic primaries at 700, 546.1 and
	// 435.8 nm with an equal-energy white.
	CIERGBSpec = mustRGBSpec("CIE RGB", Primaries{
		Red:   Chromaticity{0.7347, 0.2653},
		Green: Chromaticity{0.2738, 0.7174},
		Blue:  Chromaticity{0.1666, 0.0089},
	}, Linear, eContext)

	ColorMatchRGBSpec = mustRGBSpec("ColorMatch RGB", Primaries{
		Red:   Chromaticity{0.630, 0.340},
		Green: Chromaticity{0.295, 0.605},
		Blue:  Chromaticity{0.150, 0.075},
	}, Gamma(1.8), d50Context)

	DonRGB4Spec = mustRGBSpec("Don RGB 4", Primaries{
		Red:   Chromaticity{0.6960, 0.3000},
		Green: Chromaticity{0.2150, 0.7650},
		Blue:  Chromaticity{0.1300, 0.0350},
	}, Gamma(2.2), d50Context)

	// ECIRGBSpec is stored with linear values.
	ECIRGBSpec = mustRGBSpec("ECI RGB v2", Primaries{
		Red:   Chromaticity{0.6700, 0.3300},
		Green: Chromaticity{0.2100, 0.7100},
		Blue:  Chromaticity{0.1400, 0.0800},
	}, Linear, d50Context)

	EktaSpacePS5Spec = mustRGBSpec("EktaSpace PS5", Primaries{
		Red:   Chromaticity{0.6950, 0.3050},
		Green: Chromaticity{0.2600, 0.7000},
		Blue:  Chromaticity{0.1100, 0.0050},
	}, Gamma(2.2), d50Context)
)

// Camera and grading gamuts.  These spaces have primaries outside the
// spectral locus, some with negative y.  Values are linear; the vendor
// log encodings are not applied.
var (
	ARRIWideGamut3Spec = mustRGBSpec("ARRI Wide Gamut 3", Primaries{
		Red:   Chromaticity{0.6840, 0.3130},
		Green: Chromaticity{0.2210, 0.8480},
		Blue:  Chromaticity{0.0861, -0.1020},
	}, Linear, d65Context)

	ARRIWideGamut4Spec = mustRGBSpec("ARRI Wide Gamut 4", Primaries{
		Red:   Chromaticity{0.7347, 0.2653},
		Green: Chromaticity{0.1424, 0.8576},
		Blue:  Chromaticity{0.0991, -0.0308},
	}, Linear, d65Context)

	BlackmagicWideGamutSpec = mustRGBSpec("Blackmagic Wide Gamut", Primaries{
		Red:   Chromaticity{0.7177, 0.3171},
		Green: Chromaticity{0.2280, 0.8616},
		Blue:  Chromaticity{0.1006, -0.0820},
	}, Linear, d65Context)

	CanonCinemaGamutSpec = mustRGBSpec("Canon Cinema Gamut", Primaries{
		Red:   Chromaticity{0.740, 0.270},
		Green: Chromaticity{0.170, 1.140},
		Blue:  Chromaticity{0.080, -0.100},
	}, Linear, d65Context)

	DaVinciWideGamutSpec = mustRGBSpec("DaVinci Wide Gamut", Primaries{
		Red:   Chromaticity{0.8000, 0.3130},
		Green: Chromaticity{0.1682, 0.9877},
		Blue:  Chromaticity{0.0790, -0.1155},
	}, Linear, d65Context)

	FilmLightEGamutSpec = mustRGBSpec("Filmlight E-Gamut", Primaries{
		Red:   Chromaticity{0.8000, 0.3177},
		Green: Chromaticity{0.1800, 0.9000},
		Blue:  Chromaticity{0.0650, -0.0805},
	}, Linear, d65Context)

	VGamutSpec = mustRGBSpec("Panasonic V-Gamut", Primaries{
		Red:   Chromaticity{0.730, 0.280},
		Green: Chromaticity{0.165, 0.840},
		Blue:  Chromaticity{0.100, -0.030},
	}, Linear, d65Context)

	REDWideGamutSpec = mustRGBSpec("RED Wide Gamut RGB", Primaries{
		Red:   Chromaticity{0.780308, 0.304253},
		Green: Chromaticity{0.121595, 1.493994},
		Blue:  Chromaticity{0.095612, -0.084589},
	}, Linear, d65Context)

	SGamut3Spec = mustRGBSpec("Sony S-Gamut3", Primaries{
		Red:   Chromaticity{0.730, 0.280},
		Green: Chromaticity{0.140, 0.855},
		Blue:  Chromaticity{0.100, -0.050},
	}, Linear, d65Context)

	SGamut3CineSpec = mustRGBSpec("Sony S-Gamut3.Cine", Primaries{
		Red:   Chromaticity{0.766, 0.275},
		Green: Chromaticity{0.225, 0.800},
		Blue:  Chromaticity{0.089, -0.087},
	}, Linear, d65Context)
)

// Tag types for the built-in RGB spaces.
type (
	SRGB         struct{}
	LinearSRGB   struct{}
	DisplayP3    struct{}
	DCIP3        struct{}
	AdobeRGB     struct{}
	ProPhotoRGB  struct{}
	Rec601       struct{}
	Rec709       struct{}
	Rec2020      struct{}
	Rec2100PQ    struct{}
	Rec2100HLG   struct{}
	ACEScg       struct{}
	ACES2065     struct{}
	AppleRGB     struct{}
	WideGamutRGB struct{}
	PALSECAM     struct{}
	NTSC         struct{}

	ACEScct             struct{}
	BetaRGB             struct{}
	BestRGB             struct{}
	BruceRGB            struct{}
	CIERGB              struct{}
	ColorMatchRGB       struct{}
	DonRGB4             struct{}
	ECIRGB              struct{}
	EktaSpacePS5        struct{}
	ARRIWideGamut3      struct{}
	ARRIWideGamut4      struct{}
	BlackmagicWideGamut struct{}
	CanonCinemaGamut    struct{}
	DaVinciWideGamut    struct{}
	FilmLightEGamut     struct{}
	VGamut              struct{}
	REDWideGamut        struct{}
	SGamut3             struct{}
	SGamut3Cine         struct{}
)

func (SRGB) Spec() *RGBSpec         { return SRGBSpec }
func (LinearSRGB) Spec() *RGBSpec   { return LinearSRGBSpec }
func (DisplayP3) Spec() *RGBSpec    { return DisplayP3Spec }
func (DCIP3) Spec() *RGBSpec        { return DCIP3Spec }
func (AdobeRGB) Spec() *RGBSpec     { return AdobeRGBSpec }
func (ProPhotoRGB) Spec() *RGBSpec  { return ProPhotoRGBSpec }
func (Rec601) Spec() *RGBSpec       { return Rec601Spec }
func (Rec709) Spec() *RGBSpec       { return Rec709Spec }
func (Rec2020) Spec() *RGBSpec      { return Rec2020Spec }
func (Rec2100PQ) Spec() *RGBSpec    { return Rec2100PQSpec }
func (Rec2100HLG) Spec() *RGBSpec   { return Rec2100HLGSpec }
func (ACEScg) Spec() *RGBSpec       { return ACEScgSpec }
func (ACES2065) Spec() *RGBSpec     { return ACES2065Spec }
func (AppleRGB) Spec() *RGBSpec     { return AppleRGBSpec }
func (WideGamutRGB) Spec() *RGBSpec { return WideGamutRGBSpec }
func (PALSECAM) Spec() *RGBSpec     { return PALSECAMSpec }
func (NTSC) Spec() *RGBSpec         { return NTSCSpec }

func (ACEScct) Spec() *RGBSpec             { return ACEScctSpec }
func (BetaRGB) Spec() *RGBSpec             { return BetaRGBSpec }
func (BestRGB) Spec() *RGBSpec             { return BestRGBSpec }
func (BruceRGB) Spec() *RGBSpec            { return BruceRGBSpec }
func (CIERGB) Spec() *RGBSpec              { return CIERGBSpec }
func (ColorMatchRGB) Spec() *RGBSpec       { return ColorMatchRGBSpec }
func (DonRGB4) Spec() *RGBSpec             { return DonRGB4Spec }
func (ECIRGB) Spec() *RGBSpec              { return ECIRGBSpec }
func (EktaSpacePS5) Spec() *RGBSpec        { return EktaSpacePS5Spec }
func (ARRIWideGamut3) Spec() *RGBSpec      { return ARRIWideGamut3Spec }
func (ARRIWideGamut4) Spec() *RGBSpec      { return ARRIWideGamut4Spec }
func (BlackmagicWideGamut) Spec() *RGBSpec { return BlackmagicWideGamutSpec }
func (CanonCinemaGamut) Spec() *RGBSpec    { return CanonCinemaGamutSpec }
func (DaVinciWideGamut) Spec() *RGBSpec    { return DaVinciWideGamutSpec }
func (FilmLightEGamut) Spec() *RGBSpec     { return FilmLightEGamutSpec }
func (VGamut) Spec() *RGBSpec              { return VGamutSpec }
func (REDWideGamut) Spec() *RGBSpec        { return REDWideGamutSpec }
func (SGamut3) Spec() *RGBSpec             { return SGamut3Spec }
func (SGamut3Cine) Spec() *RGBSpec         { return SGamut3CineSpec }

var spaces = map[string]*RGBSpec{}

func init() {
	for _, s := range []*RGBSpec{
		SRGBSpec, LinearSRGBSpec, DisplayP3Spec, DCIP3Spec, AdobeRGBSpec,
		ProPhotoRGBSpec, Rec601Spec, Rec709Spec, Rec2020Spec, Rec2100PQSpec,
		Rec2100HLGSpec, ACEScgSpec, ACES2065Spec, AppleRGBSpec,
		WideGamutRGBSpec, PALSECAMSpec, NTSCSpec,

		ACEScctSpec, BetaRGBSpec, BestRGBSpec, BruceRGBSpec, CIERGBSpec,
		ColorMatchRGBSpec, DonRGB4Spec, ECIRGBSpec, EktaSpacePS5Spec,
		ARRIWideGamut3Spec, ARRIWideGamut4Spec, BlackmagicWideGamutSpec,
		CanonCinemaGamutSpec, DaVinciWideGamutSpec, FilmLightEGamutSpec,
		VGamutSpec, REDWideGamutSpec, SGamut3Spec, SGamut3CineSpec,
	} {
		spaces[s.Name()] = s
	}
}

// Spaces returns the built-in RGB space specifications, sorted by name.
func Spaces() []*RGBSpec {
	names := maps.Keys(spaces)
	slices.Sort(names)
	res := make([]*RGBSpec, len(names))
	for i, name := range names {
		res[i] = spaces[name]
	}
	return res
}

// SpaceByName returns the built-in RGB space with the given name.
func SpaceByName(name string) (*RGBSpec, error) {
	s, ok := spaces[name]
	if !ok {
		return nil, fmt.Errorf("%w: RGB space %q", ErrUnknownName, name)
	}
	return s, nil
}
