//----------------------------------------------------------------------
// This file is part of rfcascade.
// Copyright (C) 2024-present Bernd Fix >Y<,  DO3YQ
//
// rfcascade is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// rfcascade is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package lib

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ComponentKind is a closed enumeration of the component library. The
// two-port produced by a constructor is the only value that flows
// through the algebra; ComponentKind exists only to label a value
// sweep or a Monte-Carlo tolerance.
type ComponentKind int

const (
	SeriesR ComponentKind = iota
	SeriesL
	SeriesC
	ShuntR
	ShuntL
	ShuntC
	TransmissionLineKind
)

// String names a ComponentKind.
func (k ComponentKind) String() string {
	switch k {
	case SeriesR:
		return "series_R"
	case SeriesL:
		return "series_L"
	case SeriesC:
		return "series_C"
	case ShuntR:
		return "shunt_R"
	case ShuntL:
		return "shunt_L"
	case ShuntC:
		return "shunt_C"
	case TransmissionLineKind:
		return "transmission_line"
	default:
		return "unknown"
	}
}

// SeriesImpedance returns the two-port for a series impedance Z.
func SeriesImpedance(z complex128) TwoPort {
	return TwoPort{a: 1, b: z, c: 0, d: 1}
}

// ShuntAdmittance returns the two-port for a shunt admittance Y.
func ShuntAdmittance(y complex128) TwoPort {
	return TwoPort{a: 1, b: 0, c: y, d: 1}
}

// SeriesResistor returns the two-port for a series resistor, R >= 0.
func SeriesResistor(r float64) (TwoPort, error) {
	if r < 0 {
		return TwoPort{}, fmt.Errorf("series resistor %g: %w", r, ErrInvalidComponent)
	}
	return SeriesImpedance(complex(r, 0)), nil
}

// SeriesInductor returns the two-port for a series inductor, Z=jωL.
func SeriesInductor(l, freq float64) (TwoPort, error) {
	if l <= 0 {
		return TwoPort{}, fmt.Errorf("series inductor L=%g: %w", l, ErrInvalidComponent)
	}
	if freq <= 0 {
		return TwoPort{}, fmt.Errorf("series inductor at freq=%g: %w", freq, ErrInvalidComponent)
	}
	w := angularFreq(freq)
	return SeriesImpedance(complex(0, w*l)), nil
}

// SeriesCapacitor returns the two-port for a series capacitor, Z=1/(jωC).
func SeriesCapacitor(c, freq float64) (TwoPort, error) {
	if c <= 0 {
		return TwoPort{}, fmt.Errorf("series capacitor C=%g: %w", c, ErrInvalidComponent)
	}
	if freq <= 0 {
		return TwoPort{}, fmt.Errorf("series capacitor at freq=%g: %w", freq, ErrInvalidComponent)
	}
	w := angularFreq(freq)
	return SeriesImpedance(complex(0, -1/(w*c))), nil
}

// ShuntResistor returns the two-port for a shunt resistor, Y=1/R, R > 0.
func ShuntResistor(r float64) (TwoPort, error) {
	if r <= 0 {
		return TwoPort{}, fmt.Errorf("shunt resistor R=%g: %w", r, ErrInvalidComponent)
	}
	return ShuntAdmittance(complex(1/r, 0)), nil
}

// ShuntInductor returns the two-port for a shunt inductor, Y=-j/(ωL).
func ShuntInductor(l, freq float64) (TwoPort, error) {
	if l <= 0 {
		return TwoPort{}, fmt.Errorf("shunt inductor L=%g: %w", l, ErrInvalidComponent)
	}
	if freq <= 0 {
		return TwoPort{}, fmt.Errorf("shunt inductor at freq=%g: %w", freq, ErrInvalidComponent)
	}
	w := angularFreq(freq)
	return ShuntAdmittance(complex(0, -1/(w*l))), nil
}

// ShuntCapacitor returns the two-port for a shunt capacitor, Y=jωC.
func ShuntCapacitor(c, freq float64) (TwoPort, error) {
	if c <= 0 {
		return TwoPort{}, fmt.Errorf("shunt capacitor C=%g: %w", c, ErrInvalidComponent)
	}
	if freq <= 0 {
		return TwoPort{}, fmt.Errorf("shunt capacitor at freq=%g: %w", freq, ErrInvalidComponent)
	}
	w := angularFreq(freq)
	return ShuntAdmittance(complex(0, w*c)), nil
}

// IdealTransformer returns the two-port for an ideal transformer with
// turns ratio n > 0.
func IdealTransformer(n float64) (TwoPort, error) {
	if n <= 0 {
		return TwoPort{}, fmt.Errorf("transformer n=%g: %w", n, ErrInvalidComponent)
	}
	return TwoPort{a: complex(n, 0), b: 0, c: 0, d: complex(1/n, 0)}, nil
}

// SeriesRLC returns the two-port for a series R-L-C, Z=R+jωL-j/(ωC).
func SeriesRLC(r, l, c, freq float64) (TwoPort, error) {
	if r <= 0 || l <= 0 || c <= 0 {
		return TwoPort{}, fmt.Errorf("series RLC R=%g L=%g C=%g: %w", r, l, c, ErrInvalidComponent)
	}
	if freq <= 0 {
		return TwoPort{}, fmt.Errorf("series RLC at freq=%g: %w", freq, ErrInvalidComponent)
	}
	w := angularFreq(freq)
	z := complex(r, w*l-1/(w*c))
	return SeriesImpedance(z), nil
}

// ShuntRLC returns the two-port for a shunt R-L-C, Y=1/R+jωC-j/(ωL).
func ShuntRLC(r, l, c, freq float64) (TwoPort, error) {
	if r <= 0 || l <= 0 || c <= 0 {
		return TwoPort{}, fmt.Errorf("shunt RLC R=%g L=%g C=%g: %w", r, l, c, ErrInvalidComponent)
	}
	if freq <= 0 {
		return TwoPort{}, fmt.Errorf("shunt RLC at freq=%g: %w", freq, ErrInvalidComponent)
	}
	w := angularFreq(freq)
	y := complex(1/r, w*c-1/(w*l))
	return ShuntAdmittance(y), nil
}

// angularFreq converts an ordinary frequency in Hz to ω=2πf.
func angularFreq(freq float64) float64 {
	return CircAng * freq
}

//----------------------------------------------------------------------
// Transmission line
//----------------------------------------------------------------------

// TransmissionLine returns the ABCD matrix of a transmission-line
// section of physical length lenM, complex characteristic impedance
// z0c, at frequency freq, with velocity factor vf (0,1] and attenuation
// alphaNpM in nepers/meter.
//
//	β = ω·√(μ0ε0)/vf
//	γ = α + jβ
//	A = D = cosh(γℓ), B = Z0c·sinh(γℓ), C = sinh(γℓ)/Z0c
func TransmissionLine(lenM float64, z0c complex128, freq, vf, alphaNpM float64) (TwoPort, error) {
	if freq <= 0 {
		return TwoPort{}, fmt.Errorf("transmission line at freq=%g: %w", freq, ErrInvalidComponent)
	}
	if vf <= 0 || vf > 1 {
		return TwoPort{}, fmt.Errorf("transmission line vf=%g: %w", vf, ErrInvalidComponent)
	}
	if cmplx.Abs(z0c) < DenominatorGuard {
		return TwoPort{}, fmt.Errorf("transmission line z0c=%v: %w", z0c, ErrInvalidComponent)
	}
	beta := PhaseConstant(freq, vf)
	gamma := complex(alphaNpM, beta)
	gl := gamma * complex(lenM, 0)
	ch, sh := cmplx.Cosh(gl), cmplx.Sinh(gl)
	return TwoPort{
		a: ch,
		b: z0c * sh,
		c: sh / z0c,
		d: ch,
	}, nil
}

// PhaseConstant returns β = ω·√(μ0ε0)/vf for a given frequency and
// velocity factor.
func PhaseConstant(freq, vf float64) float64 {
	return angularFreq(freq) * math.Sqrt(Mu0*Eps0) / vf
}

// LossDBPerMeterToNepers converts a matched-line loss figure in dB/m to
// attenuation in nepers/meter: α = loss_dB_per_m·ln(10)/20.
func LossDBPerMeterToNepers(lossDBPerM float64) float64 {
	return lossDBPerM * math.Ln10 / 20
}

// TransmissionLineByLossDB is a convenience constructor for a real
// characteristic impedance and a loss figure given in dB/m.
func TransmissionLineByLossDB(lenM, z0 float64, freq, vf, lossDBPerM float64) (TwoPort, error) {
	return TransmissionLine(lenM, complex(z0, 0), freq, vf, LossDBPerMeterToNepers(lossDBPerM))
}

// TransmissionLineByCable builds a lossy transmission line from a named
// cable preset (see cable.go) at the given physical length and frequency.
func TransmissionLineByCable(cableName string, lenM, freq float64) (TwoPort, error) {
	spec, err := CableProperties(cableName)
	if err != nil {
		return TwoPort{}, err
	}
	return TransmissionLine(lenM, spec.Z0c, freq, spec.VF, LossDBPerMeterToNepers(spec.LossDBPerMeter))
}

// TransmissionLineByDegrees is a convenience constructor taking
// electrical length in degrees: ℓ = (θ/360)·(c/(f·vf)).
func TransmissionLineByDegrees(thetaDeg float64, z0c complex128, freq, vf, alphaNpM float64) (TwoPort, error) {
	if freq <= 0 {
		return TwoPort{}, fmt.Errorf("transmission line at freq=%g: %w", freq, ErrInvalidComponent)
	}
	if vf <= 0 || vf > 1 {
		return TwoPort{}, fmt.Errorf("transmission line vf=%g: %w", vf, ErrInvalidComponent)
	}
	lenM := (thetaDeg / 360) * (SpeedOfLight / (freq * vf))
	return TransmissionLine(lenM, z0c, freq, vf, alphaNpM)
}

// QuarterWaveLength returns the physical length of a quarter-wave
// transmission line at freq with velocity factor vf.
func QuarterWaveLength(freq, vf float64) (float64, error) {
	if freq <= 0 {
		return 0, fmt.Errorf("quarter wave at freq=%g: %w", freq, ErrInvalidComponent)
	}
	if vf <= 0 || vf > 1 {
		return 0, fmt.Errorf("quarter wave vf=%g: %w", vf, ErrInvalidComponent)
	}
	return SpeedOfLight / (4 * freq * vf), nil
}

// QuarterWaveLine builds a (nominally lossless) quarter-wave
// transmission-line section: a convenience wrapper around
// TransmissionLine at the exact quarter-wave length.
func QuarterWaveLine(z0c complex128, freq, vf float64) (TwoPort, error) {
	lenM, err := QuarterWaveLength(freq, vf)
	if err != nil {
		return TwoPort{}, err
	}
	return TransmissionLine(lenM, z0c, freq, vf, 0)
}

//----------------------------------------------------------------------
// Transmission-line stubs
//----------------------------------------------------------------------

// betaLength returns βℓ for a lossless stub at frequency freq, velocity
// factor vf, and physical length lenM.
func betaLength(lenM, freq, vf float64) float64 {
	return PhaseConstant(freq, vf) * lenM
}

// stubSingular reports whether βℓ sits on the given multiple-of-π/2
// grid (k·π or (k+1/2)·π, selected via oddMultiple) within 1e-9 rad.
func stubSingular(bl float64, oddMultiple bool) bool {
	base := bl
	if oddMultiple {
		base -= RectAng
	}
	k := math.Round(base / math.Pi)
	return math.Abs(base-k*math.Pi) < 1e-9
}

// SeriesOpenStub returns the series two-port of an open-circuited
// lossless stub: Z = -j·Z0·cot(βℓ). Singular when βℓ = kπ.
func SeriesOpenStub(lenM float64, z0, freq, vf float64) (TwoPort, error) {
	bl := betaLength(lenM, freq, vf)
	if stubSingular(bl, false) {
		return TwoPort{}, fmt.Errorf("series open stub at βℓ=%g: %w", bl, ErrSingular)
	}
	z := complex(0, -z0/math.Tan(bl))
	return SeriesImpedance(z), nil
}

// SeriesShortStub returns the series two-port of a short-circuited
// lossless stub: Z = j·Z0·tan(βℓ). Singular when βℓ = (k+1/2)π.
func SeriesShortStub(lenM float64, z0, freq, vf float64) (TwoPort, error) {
	bl := betaLength(lenM, freq, vf)
	if stubSingular(bl, true) {
		return TwoPort{}, fmt.Errorf("series short stub at βℓ=%g: %w", bl, ErrSingular)
	}
	z := complex(0, z0*math.Tan(bl))
	return SeriesImpedance(z), nil
}

// ShuntOpenStub returns the shunt two-port of an open-circuited
// lossless stub: Y = j·tan(βℓ)/Z0. Singular when βℓ = (k+1/2)π.
func ShuntOpenStub(lenM float64, z0, freq, vf float64) (TwoPort, error) {
	bl := betaLength(lenM, freq, vf)
	if stubSingular(bl, true) {
		return TwoPort{}, fmt.Errorf("shunt open stub at βℓ=%g: %w", bl, ErrSingular)
	}
	y := complex(0, math.Tan(bl)/z0)
	return ShuntAdmittance(y), nil
}

// ShuntShortStub returns the shunt two-port of a short-circuited
// lossless stub: Y = -j·cot(βℓ)/Z0. Singular when βℓ = kπ.
func ShuntShortStub(lenM float64, z0, freq, vf float64) (TwoPort, error) {
	bl := betaLength(lenM, freq, vf)
	if stubSingular(bl, false) {
		return TwoPort{}, fmt.Errorf("shunt short stub at βℓ=%g: %w", bl, ErrSingular)
	}
	y := complex(0, -1/(math.Tan(bl)*z0))
	return ShuntAdmittance(y), nil
}

//----------------------------------------------------------------------
// Shunt-tee termination helper
//----------------------------------------------------------------------

// largeAdmittance stands in for 1/z when |z| is too small to invert
// safely, treating the network as a near-short.
const largeAdmittance = 1e12

// ShuntTee computes the input impedance of n under termination zt,
// converts it to an admittance (saturating near a short), and returns
// the resulting shunt-admittance two-port.
func ShuntTee(n TwoPort, zt complex128) (TwoPort, error) {
	z, err := n.InputImpedance(zt)
	if err != nil {
		return TwoPort{}, err
	}
	var y complex128
	if cmplx.Abs(z) < DenominatorGuard {
		y = complex(largeAdmittance, 0)
	} else {
		y = 1 / z
	}
	return ShuntAdmittance(y), nil
}

// ShortTerminatedTee is ShuntTee with zt=0.
func ShortTerminatedTee(n TwoPort) (TwoPort, error) {
	return ShuntTee(n, 0)
}

// OpenTerminatedTee is ShuntTee with a very large real termination.
func OpenTerminatedTee(n TwoPort) (TwoPort, error) {
	return ShuntTee(n, complex(1e12, 0))
}

// MatchTerminatedTee is ShuntTee with a real termination equal to z0.
func MatchTerminatedTee(n TwoPort, z0 float64) (TwoPort, error) {
	return ShuntTee(n, complex(z0, 0))
}
