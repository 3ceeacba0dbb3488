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

// SmithConfig tunes the point-spacing policy used by adaptive
// interpolation. All spacings are reflection-coefficient distances on
// the unit disk.
type SmithConfig struct {
	MinSpacing float64
	MaxSpacing float64
	EdgeThresh float64
	EdgeBoost  float64
	Adaptive   bool
}

// DefaultSmithConfig mirrors the defaults used throughout this
// package's tests: generous spacing near the chart center, aggressive
// densification near the unit-circle edge.
func DefaultSmithConfig() SmithConfig {
	return SmithConfig{
		MinSpacing: 0.01,
		MaxSpacing: 0.1,
		EdgeThresh: 0.8,
		EdgeBoost:  5,
		Adaptive:   true,
	}
}

// ImpedanceToReflection is the bilinear mapping Γ = (Z-Z0)/(Z+Z0) with
// real reference impedance z0.
func ImpedanceToReflection(z complex128, z0 float64) complex128 {
	return ToReflection(z, complex(z0, 0))
}

// ReflectionToImpedance is the inverse bilinear mapping. Fails Singular
// as Γ approaches 1 (an open circuit).
func ReflectionToImpedance(g complex128, z0 float64) (complex128, error) {
	den := 1 - g
	if cmplx.Abs(den) < DenominatorGuard {
		return 0, fmt.Errorf("reflection to impedance: %w", ErrSingular)
	}
	return FromReflection(g, complex(z0, 0)), nil
}

// spacing implements the point-spacing policy of SmithConfig at a
// point of magnitude r = |Γ|.
func (c SmithConfig) spacing(r float64) float64 {
	if r < c.EdgeThresh {
		return c.MaxSpacing - (r/c.EdgeThresh)*(c.MaxSpacing-c.MinSpacing)
	}
	u := (r - c.EdgeThresh) / (1 - c.EdgeThresh)
	return c.MinSpacing / (1 + c.EdgeBoost*u)
}

// clampUnit clamps a reflection coefficient to [-1,1] on each axis,
// preserving the unit-disk output guarantee even for degenerate inputs
// that map outside it.
func clampUnit(g complex128) complex128 {
	clamp := func(v float64) float64 {
		if v > 1 {
			return 1
		}
		if v < -1 {
			return -1
		}
		return v
	}
	return complex(clamp(real(g)), clamp(imag(g)))
}

// PointStream is the output format for sweep-to-Smith conversion:
// parallel arrays of reflection coefficients, the value that produced
// each, and a timestamp for animation. Value/Timestamp are optional and
// left nil by modes that do not populate them.
type PointStream struct {
	Points    []complex128
	Value     []float64
	Timestamp []float64
	Meta      TraceMeta
}

// TraceMeta is descriptive metadata attached to a point stream. The
// core never interprets it.
type TraceMeta struct {
	Kind        string
	RGBA        [4]float64
	LineWidth   float64
	Opacity     float64
	ShowMarkers bool
	Label       string
}

// maxStubInterp is the hard cap on interpolated points per segment.
const maxStubInterp = 20

// refine inserts adaptively-spaced interpolated points between ps[k]
// and ps[k+1] using cfg's spacing policy, linearly interpolating the
// optional parallel value/timestamp arrays along with Γ. It returns
// newly built slices and leaves its inputs untouched; with fewer than
// two points it returns the inputs themselves.
func refine(cfg SmithConfig, points []complex128, values, timestamps []float64) ([]complex128, []float64, []float64) {
	if len(points) < 2 {
		return points, values, timestamps
	}
	outP := make([]complex128, 0, len(points))
	var outV, outT []float64
	if values != nil {
		outV = make([]float64, 0, len(points))
	}
	if timestamps != nil {
		outT = make([]float64, 0, len(points))
	}
	appendPoint := func(i int, g complex128, v, ts float64) {
		outP = append(outP, g)
		if values != nil {
			outV = append(outV, v)
		}
		if timestamps != nil {
			outT = append(outT, ts)
		}
	}

	for k := 0; k < len(points)-1; k++ {
		g0, g1 := points[k], points[k+1]
		var v0, v1, t0, t1 float64
		if values != nil {
			v0, v1 = values[k], values[k+1]
		}
		if timestamps != nil {
			t0, t1 = timestamps[k], timestamps[k+1]
		}
		appendPoint(k, g0, v0, t0)

		if cfg.Adaptive {
			d := cmplx.Abs(g1 - g0)
			sAvg := (cfg.spacing(cmplx.Abs(g0)) + cfg.spacing(cmplx.Abs(g1))) / 2
			if sAvg > 0 && d > sAvg {
				n := int(math.Ceil(d/sAvg)) - 1
				if n < 0 {
					n = 0
				}
				if n > maxStubInterp {
					n = maxStubInterp
				}
				for i := 1; i <= n; i++ {
					frac := float64(i) / float64(n+1)
					gi := g0 + complex(frac, 0)*(g1-g0)
					appendPoint(k, clampUnit(gi), v0+frac*(v1-v0), t0+frac*(t1-t0))
				}
			}
		}
	}
	// final point
	last := len(points) - 1
	var vl, tl float64
	if values != nil {
		vl = values[last]
	}
	if timestamps != nil {
		tl = timestamps[last]
	}
	appendPoint(last, points[last], vl, tl)
	return outP, outV, outT
}

// clampAll clamps every point of a slice to the unit disk.
func clampAll(points []complex128) []complex128 {
	out := make([]complex128, len(points))
	for i, g := range points {
		out[i] = clampUnit(g)
	}
	return out
}

//----------------------------------------------------------------------
// Five input modes
//----------------------------------------------------------------------

// SmithFromSweep is input mode 1: evaluate build at each point of
// sweep, take Zin under zl, map through the bilinear transform, and
// adaptively refine per cfg.
func SmithFromSweep(cfg SmithConfig, sweep FrequencySweep, z0 float64, zl complex128, build NetworkAtFrequency) (PointStream, error) {
	freqs, err := sweep.Values()
	if err != nil {
		return PointStream{}, err
	}
	points := make([]complex128, len(freqs))
	for i, f := range freqs {
		n, err := build(f)
		if err != nil {
			return PointStream{}, fmt.Errorf("smith sweep at freq=%g: %w", f, err)
		}
		zin, err := n.InputImpedance(zl)
		if err != nil {
			return PointStream{}, fmt.Errorf("smith sweep at freq=%g: %w", f, err)
		}
		points[i] = clampUnit(ImpedanceToReflection(zin, z0))
	}
	rp, rv, rt := refine(cfg, points, freqs, nil)
	return PointStream{Points: rp, Value: rv, Timestamp: rt}, nil
}

// SmithFromFixedNetwork is input mode 2: a frequency-independent
// two-port swept over frequencies purely for point-count purposes.
// Produces N identical, unrefined points.
func SmithFromFixedNetwork(n TwoPort, sweep FrequencySweep, z0 float64, zl complex128) (PointStream, error) {
	freqs, err := sweep.Values()
	if err != nil {
		return PointStream{}, err
	}
	zin, err := n.InputImpedance(zl)
	if err != nil {
		return PointStream{}, err
	}
	g := clampUnit(ImpedanceToReflection(zin, z0))
	points := make([]complex128, len(freqs))
	for i := range points {
		points[i] = g
	}
	return PointStream{Points: points, Value: freqs}, nil
}

// SmithFromImpedances is input modes 3 and 5 (impedance-list
// Monte-Carlo scatter / direct Γ conversion alias): map each impedance
// to Γ and emit without interpolation.
func SmithFromImpedances(impedances []complex128, z0 float64) PointStream {
	points := make([]complex128, len(impedances))
	for i, z := range impedances {
		points[i] = clampUnit(ImpedanceToReflection(z, z0))
	}
	return PointStream{Points: points}
}

// SmithFromS11 is input mode 4: treat each element as Γ directly,
// skipping the bilinear map, still subject to clamping and adaptive
// refinement between consecutive samples.
func SmithFromS11(cfg SmithConfig, s11 []complex128) PointStream {
	points := clampAll(s11)
	rp, _, _ := refine(cfg, points, nil, nil)
	return PointStream{Points: rp}
}

//----------------------------------------------------------------------
// 2-D mesh mode
//----------------------------------------------------------------------

// MeshTriangle is one winding-consistent triangle of a 2-D Smith mesh,
// indexing into MeshResult.Points/Value.
type MeshTriangle struct {
	I0, I1, I2 int
}

// MeshResult is the output of a 2-D Smith mesh: a regular grid of
// reflection coefficients with a matching value array and a
// triangulation of the grid.
type MeshResult struct {
	Points    []complex128
	Value     []float64
	Triangles []MeshTriangle
	Rows, Cols int
}

// NetworkAtFreqAndValue builds a two-port from a frequency and a swept
// component value.
type NetworkAtFreqAndValue func(freq, value float64) (TwoPort, error)

// SmithMesh builds a 2-D mesh of R rows (frequency sweep) by C columns
// (component-value sweep), mapping each cell's input impedance under zl
// through the bilinear transform, and triangulating the resulting grid
// with two triangles per cell: (i00,i01,i10) and (i01,i11,i10).
func SmithMesh(freqSweep FrequencySweep, valSweep ComponentSweep, z0 float64, zl complex128, build NetworkAtFreqAndValue) (MeshResult, error) {
	freqs, err := freqSweep.Values()
	if err != nil {
		return MeshResult{}, err
	}
	values, err := valSweep.Values()
	if err != nil {
		return MeshResult{}, err
	}
	rows, cols := len(freqs), len(values)
	points := make([]complex128, rows*cols)
	vals := make([]float64, rows*cols)

	idx := func(r, c int) int { return r*cols + c }

	for r, f := range freqs {
		for c, v := range values {
			n, err := build(f, v)
			if err != nil {
				return MeshResult{}, fmt.Errorf("smith mesh at freq=%g value=%g: %w", f, v, err)
			}
			zin, err := n.InputImpedance(zl)
			if err != nil {
				return MeshResult{}, fmt.Errorf("smith mesh at freq=%g value=%g: %w", f, v, err)
			}
			i := idx(r, c)
			points[i] = clampUnit(ImpedanceToReflection(zin, z0))
			vals[i] = v
		}
	}

	var tris []MeshTriangle
	if rows > 1 && cols > 1 {
		tris = make([]MeshTriangle, 0, 2*(rows-1)*(cols-1))
		for r := 0; r < rows-1; r++ {
			for c := 0; c < cols-1; c++ {
				i00, i01 := idx(r, c), idx(r, c+1)
				i10, i11 := idx(r+1, c), idx(r+1, c+1)
				tris = append(tris, MeshTriangle{i00, i01, i10})
				tris = append(tris, MeshTriangle{i01, i11, i10})
			}
		}
	}

	return MeshResult{Points: points, Value: vals, Triangles: tris, Rows: rows, Cols: cols}, nil
}
