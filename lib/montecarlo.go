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
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// ComponentTolerance describes one manufacturing-tolerance-bearing
// component feeding a network builder: its nominal value, the
// distribution its actual value is drawn from, and an optional linear
// temperature coefficient in ppm/°C used by AnalyzeTemperature.
type ComponentTolerance struct {
	Nominal     float64
	Dist        Distribution
	TempCoeffPM float64 // ppm/°C, applied relative to 25°C
}

// valueAt returns the nominal value adjusted for temperature tC.
func (c ComponentTolerance) valueAt(tC float64) float64 {
	return c.Nominal * (1 + c.TempCoeffPM*1e-6*(tC-25))
}

// NetworkBuilder constructs a two-port from one sampled value per
// ComponentTolerance, in the same order as the Sampler's Components.
type NetworkBuilder func(values []float64) (TwoPort, error)

// Sampler draws Monte-Carlo samples of a component set and evaluates a
// network built from them against a load and reference impedance.
type Sampler struct {
	Components  []ComponentTolerance
	Correlation *mat.SymDense // optional; nil means independent sampling
	cholL       *mat.TriDense // lower Cholesky factor of Correlation, cached
	rnd         *rand.Rand
}

// NewSampler builds a Sampler seeded deterministically from seed. If
// correlation is non-nil it must be an NxN symmetric positive-definite
// matrix, N=len(components); it is factored once via Cholesky
// decomposition and reused for every draw.
func NewSampler(seed int64, components []ComponentTolerance, correlation *mat.SymDense) (*Sampler, error) {
	s := &Sampler{
		Components:  components,
		Correlation: correlation,
		rnd:         Randomizer(seed),
	}
	if correlation != nil {
		n, _ := correlation.Dims()
		if n != len(components) {
			return nil, fmt.Errorf("correlation matrix is %dx%d, want %dx%d: %w",
				n, n, len(components), len(components), ErrInvalidDistribution)
		}
		var chol mat.Cholesky
		if ok := chol.Factorize(correlation); !ok {
			return nil, fmt.Errorf("correlation matrix is not positive-definite: %w", ErrInvalidDistribution)
		}
		s.cholL = chol.LTo(nil)
	}
	return s, nil
}

// draw produces one sample row of component values using rnd as the
// entropy source. When a correlation matrix was supplied, a vector of
// independent standard normals is passed through the Cholesky factor
// to induce the requested correlation structure between the per
// -component tolerance fractions before each fraction is applied
// around its nominal (temperature-adjusted) value. A Gaussian component
// is scaled by Tolerance/3 (its sigma), uniform and triangular ones by
// their full Tolerance; the result is not clamped to the tolerance band.
func (s *Sampler) draw(tC float64, rnd *rand.Rand) []float64 {
	n := len(s.Components)
	values := make([]float64, n)

	if s.cholL == nil {
		for i, c := range s.Components {
			values[i] = c.Dist.Sample(c.valueAt(tC), rnd)
		}
		return values
	}

	z := mat.NewVecDense(n, nil)
	for i := range n {
		z.SetVec(i, rnd.NormFloat64())
	}
	var lz mat.VecDense
	lz.MulVec(s.cholL, z)
	for i, c := range s.Components {
		mean := c.valueAt(tC)
		var tol float64
		switch d := c.Dist.(type) {
		case UniformDistribution:
			tol = d.Tolerance
		case GaussianDistribution:
			tol = d.Tolerance / 3
		case TriangularDistribution:
			tol = d.Tolerance
		default:
			tol = 0
		}
		values[i] = positivityFloor(mean+lz.AtVec(i)*mean*tol, mean)
	}
	return values
}

// Sample draws a single component-value row at 25°C.
func (s *Sampler) Sample() []float64 {
	return s.draw(25, s.rnd)
}

// Stats summarizes the outcome of a Monte-Carlo run over N samples of
// the network's input impedance under the load.
type Stats struct {
	N             int
	MeanImpedance complex128
	StdDevReal    float64
	StdDevImag    float64
	Yield         float64
	Samples       []complex128 // the raw input impedance of every sample
}

// Percentile returns the rank-based p-th percentile (0..100) of the
// sample set's impedance magnitude, using nearest-rank selection (no
// interpolation between ranks).
func (st Stats) Percentile(p float64) float64 {
	if len(st.Samples) == 0 {
		return 0
	}
	mags := make([]float64, len(st.Samples))
	for i, v := range st.Samples {
		mags[i] = cmplx.Abs(v)
	}
	sort.Float64s(mags)
	rank := int(math.Ceil(p/100*float64(len(mags)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(mags) {
		rank = len(mags) - 1
	}
	return mags[rank]
}

// YieldPredicate reports whether a sampled input impedance passes a
// design criterion (a VSWR bound, a return-loss bound, ...).
type YieldPredicate func(zin complex128) bool

// computeStats reduces a slice of per-sample input impedances to Stats
// against a yield predicate.
func computeStats(samples []complex128, pass YieldPredicate) Stats {
	n := len(samples)
	st := Stats{N: n, Samples: samples}
	if n == 0 {
		return st
	}
	var sum complex128
	for _, z := range samples {
		sum += z
	}
	mean := sum / complex(float64(n), 0)
	st.MeanImpedance = mean

	var sqReal, sqImag float64
	passed := 0
	for _, z := range samples {
		dr := real(z) - real(mean)
		di := imag(z) - imag(mean)
		sqReal += dr * dr
		sqImag += di * di
		if pass != nil && pass(z) {
			passed++
		}
	}
	denom := float64(n - 1)
	if n < 2 {
		denom = 1
	}
	st.StdDevReal = math.Sqrt(sqReal / denom)
	st.StdDevImag = math.Sqrt(sqImag / denom)
	if pass != nil {
		st.Yield = float64(passed) / float64(n)
	}
	return st
}

// Analyze runs n Monte-Carlo samples of build under load zl at 25°C and
// reports Stats over the resulting input impedance, evaluating pass
// (which may be nil to skip yield computation) on each sample.
func (s *Sampler) Analyze(n int, zl complex128, build NetworkBuilder, pass YieldPredicate) (Stats, error) {
	samples := make([]complex128, n)
	for i := range n {
		values := s.draw(25, s.rnd)
		net, err := build(values)
		if err != nil {
			return Stats{}, fmt.Errorf("monte-carlo sample %d: %w", i, err)
		}
		zin, err := net.InputImpedance(zl)
		if err != nil {
			return Stats{}, fmt.Errorf("monte-carlo sample %d: %w", i, err)
		}
		samples[i] = zin
	}
	return computeStats(samples, pass), nil
}

// AnalyzeTemperature runs Analyze once per temperature in tempsC,
// applying each ComponentTolerance's TempCoeffPM at the sampled
// temperature before drawing its tolerance distribution.
func (s *Sampler) AnalyzeTemperature(n int, zl complex128, tempsC []float64, build NetworkBuilder, pass YieldPredicate) (map[float64]Stats, error) {
	out := make(map[float64]Stats, len(tempsC))
	for _, tC := range tempsC {
		samples := make([]complex128, n)
		for i := range n {
			values := s.draw(tC, s.rnd)
			net, err := build(values)
			if err != nil {
				return nil, fmt.Errorf("monte-carlo sample %d at %gC: %w", i, tC, err)
			}
			zin, err := net.InputImpedance(zl)
			if err != nil {
				return nil, fmt.Errorf("monte-carlo sample %d at %gC: %w", i, tC, err)
			}
			samples[i] = zin
		}
		out[tC] = computeStats(samples, pass)
	}
	return out, nil
}

// AnalyzeConcurrent is Analyze spread across runtime.GOMAXPROCS(0)
// worker goroutines, each with its own deterministic child RNG derived
// from seed and its worker index so that a fixed seed and worker count
// reproduce the same sample set across runs.
func (s *Sampler) AnalyzeConcurrent(seed int64, n int, zl complex128, build NetworkBuilder, pass YieldPredicate) (Stats, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	samples := make([]complex128, n)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := range workers {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			rnd := Randomizer(seed + int64(w) + 1)
			for i := start; i < end; i++ {
				values := s.draw(25, rnd)
				net, err := build(values)
				if err != nil {
					errs[w] = fmt.Errorf("monte-carlo sample %d: %w", i, err)
					return
				}
				zin, err := net.InputImpedance(zl)
				if err != nil {
					errs[w] = fmt.Errorf("monte-carlo sample %d: %w", i, err)
					return
				}
				samples[i] = zin
			}
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Stats{}, err
		}
	}
	return computeStats(samples, pass), nil
}

// CorrelationMatrix builds a symmetric correlation matrix from a dense
// row-major slice of coefficients (n*n entries, diagonal expected to be
// 1) for use as Sampler's Correlation.
func CorrelationMatrix(n int, coeffs []float64) (*mat.SymDense, error) {
	if len(coeffs) != n*n {
		return nil, fmt.Errorf("correlation coefficients: got %d, want %d: %w", len(coeffs), n*n, ErrInvalidDistribution)
	}
	return mat.NewSymDense(n, coeffs), nil
}
