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

// rfmc runs a Monte-Carlo tolerance analysis of a single series resistor
// (or, with -shunt, a shunt resistor) against manufacturing tolerance
// and reports impedance statistics and VSWR yield.
package main

import (
	"flag"
	"log"
	"math/cmplx"
	"time"

	"github.com/bfix/rfcascade/lib"
)

func main() {
	var (
		config    string
		nominal   float64
		tolerance float64
		dist      string
		samples   int
		seed      int64
		z0        float64
		vswrMax   float64
		shunt     bool
		concurr   bool
		tempRange string
		tempCoeff float64
	)
	flag.StringVar(&config, "config", "", "configuration file")
	flag.Float64Var(&nominal, "r", 50, "nominal resistance (Ohm)")
	flag.Float64Var(&tolerance, "tol", 0.05, "tolerance fraction")
	flag.StringVar(&dist, "dist", "gaussian", "distribution: uniform|gaussian|triangular")
	flag.IntVar(&samples, "samples", 0, "number of samples (0: use config default)")
	flag.Int64Var(&seed, "seed", 1, "RNG seed")
	flag.Float64Var(&z0, "z0", 50, "reference impedance (Ohm)")
	flag.Float64Var(&vswrMax, "vswr-max", 1.5, "yield threshold on VSWR")
	flag.BoolVar(&shunt, "shunt", false, "model a shunt resistor instead of series")
	flag.BoolVar(&concurr, "concurrent", false, "evaluate samples across a worker pool")
	flag.StringVar(&tempRange, "temp-range", "", "temperature band in degC, \"min-max\" (default: skip temperature analysis)")
	flag.Float64Var(&tempCoeff, "tempco", 100, "temperature coefficient, ppm/degC")
	flag.Parse()

	if len(config) > 0 {
		if err := lib.ReadConfig(config); err != nil {
			log.Fatal(err)
		}
	}
	if samples == 0 {
		samples = lib.Cfg.MC.DefaultSamples
	}

	d, err := lib.GetDistribution(dist, tolerance)
	if err != nil {
		log.Fatal(err)
	}
	components := []lib.ComponentTolerance{{Nominal: nominal, Dist: d, TempCoeffPM: tempCoeff}}
	sampler, err := lib.NewSampler(seed, components, nil)
	if err != nil {
		log.Fatal(err)
	}

	build := func(values []float64) (lib.TwoPort, error) {
		if shunt {
			return lib.ShuntResistor(values[0])
		}
		return lib.SeriesResistor(values[0])
	}
	pass := func(zin complex128) bool {
		g := lib.ToReflection(zin, complex(z0, 0))
		mag := cmplx.Abs(g)
		vswr := (1 + mag) / (1 - mag)
		return vswr <= vswrMax
	}

	t0 := time.Now()
	var stats lib.Stats
	if concurr {
		stats, err = sampler.AnalyzeConcurrent(seed, samples, complex(z0, 0), build, pass)
	} else {
		stats, err = sampler.Analyze(samples, complex(z0, 0), build, pass)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("ran %d samples in %s", samples, lib.FormatDuration(int64(time.Since(t0).Seconds())))

	log.Printf("samples:        %d", stats.N)
	log.Printf("mean impedance: %s", lib.FormatImpedance(stats.MeanImpedance, 4))
	log.Printf("stddev (re,im): %g, %g", stats.StdDevReal, stats.StdDevImag)
	log.Printf("yield (VSWR<=%g): %.2f%%", vswrMax, stats.Yield*100)
	log.Printf("p50 |Zin|:      %g", stats.Percentile(50))
	log.Printf("p95 |Zin|:      %g", stats.Percentile(95))

	if len(tempRange) > 0 {
		tMin, tMax, err := lib.GetRange(tempRange)
		if err != nil {
			log.Fatal(err)
		}
		tempsC := []float64{tMin, (tMin + tMax) / 2, tMax}
		perTemp, err := sampler.AnalyzeTemperature(samples, complex(z0, 0), tempsC, build, pass)
		if err != nil {
			log.Fatal(err)
		}
		for _, tC := range tempsC {
			st := perTemp[tC]
			log.Printf("T=%gC: mean=%s stddev=(%g,%g) yield=%.2f%%",
				tC, lib.FormatImpedance(st.MeanImpedance, 4), st.StdDevReal, st.StdDevImag, st.Yield*100)
		}
	}
}
