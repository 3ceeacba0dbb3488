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

// rfsweep drives a frequency sweep over one of the built-in network
// factories and emits the resulting S-parameters as CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/bfix/rfcascade/lib"
)

func main() {
	var (
		config  string
		network string
		rangeS  string
		points  int
		logSc   bool
		z0      float64
		zl      string
		atten   string
		out     string
	)
	flag.StringVar(&config, "config", "", "configuration file")
	flag.StringVar(&network, "net", "butterworth3", "network: butterworth3|pi-atten|t-atten")
	flag.StringVar(&rangeS, "range", "10M-1G", "sweep frequency range, \"start-stop\"")
	flag.IntVar(&points, "points", 101, "number of sweep points")
	flag.BoolVar(&logSc, "log", true, "use logarithmic frequency spacing")
	flag.Float64Var(&z0, "z0", 50, "reference impedance (Ohm)")
	flag.StringVar(&zl, "zl", "", "load impedance, \"re+imj\" (default: z0)")
	flag.StringVar(&atten, "atten", "10", "attenuation in dB for the attenuator networks")
	flag.StringVar(&out, "out", "", "output CSV file (default: stdout)")
	flag.Parse()

	if len(config) > 0 {
		if err := lib.ReadConfig(config); err != nil {
			log.Fatal(err)
		}
	}

	start, stop, err := lib.GetRange(rangeS)
	if err != nil {
		log.Fatal(err)
	}
	attenDB, err := strconv.ParseFloat(atten, 64)
	if err != nil {
		log.Fatal(err)
	}
	zLoad := complex(z0, 0)
	if len(zl) > 0 {
		if zLoad, err = lib.ParseImpedance(zl); err != nil {
			log.Fatal(err)
		}
	}

	scale := lib.Linear
	if logSc {
		scale = lib.Log
	}
	sweep := lib.FrequencySweep{Start: start, Stop: stop, Points: points, Scale: scale}

	var build lib.NetworkAtFrequency
	switch network {
	case "butterworth3":
		build = func(f float64) (lib.TwoPort, error) {
			return lib.Butterworth3LowPass(z0, f)
		}
	case "pi-atten":
		build = func(f float64) (lib.TwoPort, error) {
			return lib.PiAttenuator(z0, attenDB)
		}
	case "t-atten":
		build = func(f float64) (lib.TwoPort, error) {
			return lib.TAttenuator(z0, attenDB)
		}
	default:
		log.Fatalf("unknown network %q", network)
	}

	t0 := time.Now()
	res, err := lib.PerformSweep(sweep, complex(z0, 0), zLoad, complex(z0, 0), build)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("swept %d points in %s", points, lib.FormatDuration(int64(time.Since(t0).Seconds())))

	w := os.Stdout
	if len(out) > 0 {
		f, err := os.Create(out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}
	csvw := csv.NewWriter(w)
	defer csvw.Flush()
	csvw.Write([]string{"freq_hz", "return_loss_db", "insertion_loss_db", "vswr", "z_in", "z_out", "arg_s11_deg", "arg_s21_deg"})
	for i, f := range res.Freq {
		csvw.Write([]string{
			fmt.Sprintf("%g", f),
			fmt.Sprintf("%g", res.ReturnLossDB[i]),
			fmt.Sprintf("%g", res.InsertionLossDB[i]),
			fmt.Sprintf("%g", res.VSWR[i]),
			fmt.Sprintf("%g%+gj", real(res.ZIn[i]), imag(res.ZIn[i])),
			fmt.Sprintf("%g%+gj", real(res.ZOut[i]), imag(res.ZOut[i])),
			fmt.Sprintf("%g", res.ArgS11Deg[i]),
			fmt.Sprintf("%g", res.ArgS21Deg[i]),
		})
	}
}
