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

// NetworkAtFrequency builds the two-port of a network at a single swept
// frequency. A sweep is executed by calling this once per frequency
// point; its error, if any, aborts the whole sweep.
type NetworkAtFrequency func(freq float64) (TwoPort, error)

// NetworkAtComponentValue builds the two-port of a network for a single
// swept component value (an R, L or C) at a fixed frequency.
type NetworkAtComponentValue func(value float64) (TwoPort, error)

// SweepResult carries the parallel-array results of a frequency sweep:
// one entry per sweep point, all slices the same length.
type SweepResult struct {
	Freq            []float64
	S               []S
	ZIn             []complex128
	ZOut            []complex128
	ReturnLossDB    []float64
	InsertionLossDB []float64
	VSWR            []float64
	ArgS11Deg       []float64
	ArgS21Deg       []float64
}

// PerformSweep evaluates build at every point of sweep under load zLoad
// and source zSource, converts each resulting two-port to an
// S-parameter bundle referenced to z0, and returns the parallel-array
// result. It stops and returns the first error encountered; no partial
// SweepResult is returned on error.
func PerformSweep(sweep FrequencySweep, z0, zLoad, zSource complex128, build NetworkAtFrequency) (SweepResult, error) {
	freqs, err := sweep.Values()
	if err != nil {
		return SweepResult{}, err
	}
	res := SweepResult{
		Freq:            freqs,
		S:               make([]S, len(freqs)),
		ZIn:             make([]complex128, len(freqs)),
		ZOut:            make([]complex128, len(freqs)),
		ReturnLossDB:    make([]float64, len(freqs)),
		InsertionLossDB: make([]float64, len(freqs)),
		VSWR:            make([]float64, len(freqs)),
		ArgS11Deg:       make([]float64, len(freqs)),
		ArgS21Deg:       make([]float64, len(freqs)),
	}
	for i, f := range freqs {
		n, err := build(f)
		if err != nil {
			return SweepResult{}, fmt.Errorf("sweep at freq=%g: %w", f, err)
		}
		s, err := n.ToS(z0)
		if err != nil {
			return SweepResult{}, fmt.Errorf("sweep at freq=%g: %w", f, err)
		}
		zin, err := n.InputImpedance(zLoad)
		if err != nil {
			return SweepResult{}, fmt.Errorf("sweep at freq=%g: %w", f, err)
		}
		zout, err := n.OutputImpedance(zSource)
		if err != nil {
			return SweepResult{}, fmt.Errorf("sweep at freq=%g: %w", f, err)
		}
		res.S[i] = s
		res.ZIn[i] = zin
		res.ZOut[i] = zout
		res.ReturnLossDB[i] = s.ReturnLossDB()
		res.InsertionLossDB[i] = s.InsertionLossDB()
		res.VSWR[i] = s.VSWR()
		res.ArgS11Deg[i] = cmplx.Phase(s.S11) * 180 / math.Pi
		res.ArgS21Deg[i] = cmplx.Phase(s.S21) * 180 / math.Pi
	}
	return res, nil
}

// ComponentSweepResult carries the parallel-array results of a
// component-value sweep: one entry per swept value, all slices the
// same length.
type ComponentSweepResult struct {
	Value           []float64
	S               []S
	ZIn             []complex128
	YIn             []complex128
	Gamma           []complex128
	ReturnLossDB    []float64
	InsertionLossDB []float64
	VSWR            []float64
}

// PerformComponentSweep evaluates build at every point of sweep at the
// fixed system reference impedance z0System, optionally cascading the
// swept primitive as before ⊗ value_network ⊗ after (either may be nil
// to omit that stage), and evaluates the result under load zLoad. It
// mirrors PerformSweep's error semantics: the first error aborts the
// sweep and no partial result is returned.
func PerformComponentSweep(sweep ComponentSweep, z0System complex128, before, after *TwoPort, zLoad complex128, build NetworkAtComponentValue) (ComponentSweepResult, error) {
	values, err := sweep.Values()
	if err != nil {
		return ComponentSweepResult{}, err
	}
	res := ComponentSweepResult{
		Value:           values,
		S:               make([]S, len(values)),
		ZIn:             make([]complex128, len(values)),
		YIn:             make([]complex128, len(values)),
		Gamma:           make([]complex128, len(values)),
		ReturnLossDB:    make([]float64, len(values)),
		InsertionLossDB: make([]float64, len(values)),
		VSWR:            make([]float64, len(values)),
	}
	for i, v := range values {
		n, err := build(v)
		if err != nil {
			return ComponentSweepResult{}, fmt.Errorf("component sweep at value=%g: %w", v, err)
		}
		if before != nil {
			n = Cascade(*before, n)
		}
		if after != nil {
			n = Cascade(n, *after)
		}
		s, err := n.ToS(z0System)
		if err != nil {
			return ComponentSweepResult{}, fmt.Errorf("component sweep at value=%g: %w", v, err)
		}
		zin, err := n.InputImpedance(zLoad)
		if err != nil {
			return ComponentSweepResult{}, fmt.Errorf("component sweep at value=%g: %w", v, err)
		}
		res.S[i] = s
		res.ZIn[i] = zin
		res.YIn[i] = 1 / zin
		res.Gamma[i] = ToReflection(zin, z0System)
		res.ReturnLossDB[i] = s.ReturnLossDB()
		res.InsertionLossDB[i] = s.InsertionLossDB()
		res.VSWR[i] = s.VSWR()
	}
	return res, nil
}
