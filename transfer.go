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
)

// TransferFunction relates linear light to the encoded (gamma corrected)
// values of an RGB space.
//
// Decode maps encoded values to linear light, Encode is its inverse.
// Values outside [0, 1] are never clamped: the linear segments extend
// naturally and the power segments are mirrored through the origin.
//
// The piecewise power curves are described by ICC parametric curve
// parameters:
//   - type 0: y = x^g
//   - type 3: y = (ax+b)^g for x >= d, else y = cx
//
// where x is the encoded and y the linear value.
type TransferFunction struct {
	kind   transferKind
	params [5]float64 // [g, a, b, c, d]
	name   string
}

type transferKind int

const (
	transferLinear transferKind = iota
	transferPower               // ICC type 0
	transferPiecewise           // ICC type 3
	transferPQ
	transferHLG
)

// The standard transfer functions.
var (
	// Linear is the identity transfer function.
	Linear = TransferFunction{kind: transferLinear, name: "Linear"}

	// SRGBCurve is the transfer function of IEC 61966-2-1.
	SRGBCurve = TransferFunction{
		kind:   transferPiecewise,
		params: [5]float64{2.4, 1 / 1.055, 0.055 / 1.055, 1 / 12.92, 0.04045},
		name:   "sRGB",
	}

	// BT709Curve is the transfer function of ITU-R BT.709 and BT.2020.
	// The constants are the continuous ones from BT.2020.
	BT709Curve = TransferFunction{
		kind:   transferPiecewise,
		params: [5]float64{1 / 0.45, 1 / bt709Alpha, (bt709Alpha - 1) / bt709Alpha, 1 / 4.5, 4.5 * bt709Beta},
		name:   "BT.709",
	}

	// BT601Curve is the transfer function of ITU-R BT.601, which is the
	// same curve as BT.709.
	BT601Curve = TransferFunction{
		kind:   transferPiecewise,
		params: BT709Curve.params,
		name:   "BT.601",
	}

	// ProPhotoCurve is the transfer function of ROMM RGB.
	ProPhotoCurve = TransferFunction{
		kind:   transferPiecewise,
		params: [5]float64{1.8, 1, 0, 1.0 / 16, 16.0 / 512},
		name:   "ProPhoto RGB",
	}

	// PQ is the perceptual quantizer of SMPTE ST 2084.
	// Linear 1.0 corresponds to 10000 cd/m².
	PQ = TransferFunction{kind: transferPQ, name: "PQ (ST 2084)"}

	// HLG is the hybrid log-gamma curve of ARIB STD-B67 / BT.2100.
	HLG = TransferFunction{kind: transferHLG, name: "HLG"}
)

const (
	bt709Alpha = 1.09929682680944
	bt709Beta  = 0.018053968510807

	hlgA = 0.17883277
	hlgB = 0.28466892
	hlgC = 0.55991073

	pqC1 = 3424.0 / 4096.0
	pqC2 = 2413.0 / 4096.0 * 32.0
	pqC3 = 2392.0 / 4096.0 * 32.0
	pqM1 = 2610.0 / 16384.0
	pqM2 = 2523.0 / 4096.0 * 128.0
)

// NewGamma returns the pure power-law transfer function with the given
// exponent.  Decoding computes x^gamma.
func NewGamma(gamma float64) (TransferFunction, error) {
	if !(gamma > 0) || math.IsInf(gamma, 0) {
		return TransferFunction{}, fmt.Errorf("%w: %g", ErrInvalidGamma, gamma)
	}
	return TransferFunction{
		kind:   transferPower,
		params: [5]float64{gamma},
		name:   fmt.Sprintf("Gamma %.2f", gamma),
	}, nil
}

// Gamma is like [NewGamma] but panics if gamma is not a positive, finite
// number.  It is intended for initialising package level variables.
func Gamma(gamma float64) TransferFunction {
	tf, err := NewGamma(gamma)
	if err != nil {
		panic(err)
	}
	return tf
}

// Decode maps an encoded value to linear light.
func (tf TransferFunction) Decode(encoded float64) float64 {
	switch tf.kind {
	case transferPower:
		return mirror(encoded, func(x float64) float64 {
			return math.Pow(x, tf.params[0])
		})
	case transferPiecewise:
		g, a, b, c, d := tf.params[0], tf.params[1], tf.params[2], tf.params[3], tf.params[4]
		if encoded < 0 {
			return -tf.Decode(-encoded)
		}
		if encoded >= d {
			return math.Pow(a*encoded+b, g)
		}
		return c * encoded
	case transferPQ:
		return mirror(encoded, pqDecode)
	case transferHLG:
		return mirror(encoded, hlgDecode)
	default:
		return encoded
	}
}

// Encode maps linear light to an encoded value.
// This is the inverse of Decode.
func (tf TransferFunction) Encode(linear float64) float64 {
	switch tf.kind {
	case transferPower:
		return mirror(linear, func(y float64) float64 {
			return math.Pow(y, 1/tf.params[0])
		})
	case transferPiecewise:
		g, a, b, c, d := tf.params[0], tf.params[1], tf.params[2], tf.params[3], tf.params[4]
		if linear < 0 {
			return -tf.Encode(-linear)
		}
		// threshold output is at c*d
		if linear < c*d {
			return linear / c
		}
		return (math.Pow(linear, 1/g) - b) / a
	case transferPQ:
		return mirror(linear, pqEncode)
	case transferHLG:
		return mirror(linear, hlgEncode)
	default:
		return linear
	}
}

// IsLinear reports whether the transfer function is the identity.
func (tf TransferFunction) IsLinear() bool {
	switch tf.kind {
	case transferLinear:
		return true
	case transferPower:
		return tf.params[0] == 1
	}
	return false
}

// Params returns the ICC parametric curve type and parameters of the
// transfer function.  The last return value is false for curves which
// cannot be represented as an ICC parametric curve.
func (tf TransferFunction) Params() (funcType int, params []float64, ok bool) {
	switch tf.kind {
	case transferLinear:
		return 0, []float64{1}, true
	case transferPower:
		return 0, []float64{tf.params[0]}, true
	case transferPiecewise:
		return 3, append([]float64(nil), tf.params[:]...), true
	}
	return 0, nil, false
}

func (tf TransferFunction) String() string {
	if tf.name == "" {
		return "Linear"
	}
	return tf.name
}

func mirror(x float64, f func(float64) float64) float64 {
	if x < 0 {
		return -f(-x)
	}
	return f(x)
}

func pqDecode(e float64) float64 {
	p := math.Pow(e, 1/pqM2)
	num := math.Max(p-pqC1, 0)
	den := pqC2 - pqC3*p
	return math.Pow(num/den, 1/pqM1)
}

func pqEncode(y float64) float64 {
	ym := math.Pow(y, pqM1)
	return math.Pow((pqC1+pqC2*ym)/(1+pqC3*ym), pqM2)
}

func hlgDecode(e float64) float64 {
	if e <= 0.5 {
		return e * e / 3
	}
	return (math.Exp((e-hlgC)/hlgA) + hlgB) / 12
}

func hlgEncode(y float64) float64 {
	if y <= 1.0/12 {
		return math.Sqrt(3 * y)
	}
	return hlgA*math.Log(12*y-hlgB) + hlgC
}
