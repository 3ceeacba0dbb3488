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
	"math"
	"math/cmplx"
	"testing"
)

func TestAnalyzeResistorWithGaussianTolerance(t *testing.T) {
	dist, err := GetDistribution("gaussian", 0.05)
	if err != nil {
		t.Fatal(err)
	}
	components := []ComponentTolerance{{Nominal: 50, Dist: dist}}
	sampler, err := NewSampler(42, components, nil)
	if err != nil {
		t.Fatal(err)
	}
	build := func(values []float64) (TwoPort, error) {
		return SeriesResistor(values[0])
	}
	pass := func(zin complex128) bool {
		g := ToReflection(zin, complex(50, 0))
		return cmplx.Abs(g) < 0.1
	}
	// a short-circuit load makes Zin of the series resistor equal its sampled value
	stats, err := sampler.Analyze(2000, 0, build, pass)
	if err != nil {
		t.Fatal(err)
	}
	if stats.N != 2000 {
		t.Fatalf("expected 2000 samples, got %d", stats.N)
	}
	if real(stats.MeanImpedance) < 45 || real(stats.MeanImpedance) > 55 {
		t.Errorf("mean impedance out of expected band: %v", stats.MeanImpedance)
	}
	if stats.Yield <= 0 || stats.Yield > 1 {
		t.Errorf("yield out of [0,1]: %v", stats.Yield)
	}
}

func TestAnalyzeGaussianStdDevMatchesToleranceOverThree(t *testing.T) {
	dist, err := GetDistribution("gaussian", 0.05)
	if err != nil {
		t.Fatal(err)
	}
	components := []ComponentTolerance{{Nominal: 50, Dist: dist}}
	sampler, err := NewSampler(99, components, nil)
	if err != nil {
		t.Fatal(err)
	}
	build := func(values []float64) (TwoPort, error) {
		return SeriesResistor(values[0])
	}
	stats, err := sampler.Analyze(20000, complex(50, 0), build, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := 50 * 0.05 / 3
	if math.Abs(stats.StdDevReal-want) > 0.3 {
		t.Errorf("stddev = %v, want %v +/- 0.3", stats.StdDevReal, want)
	}
}

func TestAnalyzeConcurrentReturnsAllSamples(t *testing.T) {
	dist, err := GetDistribution("uniform", 0.1)
	if err != nil {
		t.Fatal(err)
	}
	components := []ComponentTolerance{{Nominal: 100, Dist: dist}}
	sampler, err := NewSampler(7, components, nil)
	if err != nil {
		t.Fatal(err)
	}
	build := func(values []float64) (TwoPort, error) {
		return ShuntResistor(values[0])
	}
	stats, err := sampler.AnalyzeConcurrent(7, 500, complex(50, 0), build, nil)
	if err != nil {
		t.Fatal(err)
	}
	if stats.N != 500 {
		t.Fatalf("expected 500 samples, got %d", stats.N)
	}
}

func TestAnalyzeTemperatureShiftsMean(t *testing.T) {
	dist, err := GetDistribution("uniform", 0.01)
	if err != nil {
		t.Fatal(err)
	}
	components := []ComponentTolerance{{Nominal: 50, Dist: dist, TempCoeffPM: 1000}}
	sampler, err := NewSampler(3, components, nil)
	if err != nil {
		t.Fatal(err)
	}
	build := func(values []float64) (TwoPort, error) {
		return SeriesResistor(values[0])
	}
	out, err := sampler.AnalyzeTemperature(200, complex(50, 0), []float64{-25, 25, 85}, build, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 temperature points, got %d", len(out))
	}
	if real(out[85.0].MeanImpedance) <= real(out[-25.0].MeanImpedance) {
		t.Errorf("expected mean resistance to rise with temperature given a positive coefficient")
	}
}

func TestCorrelatedSamplerProducesCorrelatedValues(t *testing.T) {
	corr, err := CorrelationMatrix(2, []float64{1, 0.9, 0.9, 1})
	if err != nil {
		t.Fatal(err)
	}
	dist, err := GetDistribution("gaussian", 0.1)
	if err != nil {
		t.Fatal(err)
	}
	components := []ComponentTolerance{
		{Nominal: 50, Dist: dist},
		{Nominal: 50, Dist: dist},
	}
	sampler, err := NewSampler(11, components, corr)
	if err != nil {
		t.Fatal(err)
	}
	var sumProd, sumA, sumB float64
	const n = 2000
	for range n {
		v := sampler.draw(25, sampler.rnd)
		da, db := v[0]-50, v[1]-50
		sumProd += da * db
		sumA += da * da
		sumB += db * db
	}
	corrCoeff := sumProd / (math.Sqrt(sumA) * math.Sqrt(sumB))
	if corrCoeff < 0.5 {
		t.Errorf("expected strongly positive correlation, got %v", corrCoeff)
	}
}

func TestNewSamplerRejectsNonPositiveDefiniteCorrelation(t *testing.T) {
	corr, err := CorrelationMatrix(2, []float64{1, 2, 2, 1})
	if err != nil {
		t.Fatal(err)
	}
	dist, _ := GetDistribution("uniform", 0.05)
	components := []ComponentTolerance{{Nominal: 1, Dist: dist}, {Nominal: 1, Dist: dist}}
	if _, err := NewSampler(1, components, corr); err == nil {
		t.Fatal("expected error for a non-positive-definite correlation matrix")
	}
}

func TestPercentileNearestRank(t *testing.T) {
	st := Stats{Samples: []complex128{1, 2, 3, 4, 5}}
	if p := st.Percentile(100); p != 5 {
		t.Errorf("p100 = %v, want 5", p)
	}
	if p := st.Percentile(1); p != 1 {
		t.Errorf("p1 = %v, want 1", p)
	}
}
