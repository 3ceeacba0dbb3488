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
)

//----------------------------------------------------------------------
// Third-order Butterworth LC low-pass
//----------------------------------------------------------------------

// Butterworth3LowPass builds a 3rd-order (series-L, shunt-C, series-L)
// Butterworth low-pass filter terminated in a real impedance z0 with
// corner frequency fc:
//
//	L1 = L3 = 0.7654·Z0/ω_c, C2 = 1.8478/(Z0·ω_c)
//
// The returned two-port is the filter evaluated at fc only; there is no
// parameter for evaluating it at any other frequency.
func Butterworth3LowPass(z0, fc float64) (TwoPort, error) {
	if z0 <= 0 {
		return TwoPort{}, fmt.Errorf("butterworth LP3 z0=%g: %w", z0, ErrInvalidComponent)
	}
	if fc <= 0 {
		return TwoPort{}, fmt.Errorf("butterworth LP3 fc=%g: %w", fc, ErrInvalidComponent)
	}
	wc := angularFreq(fc)
	l1 := 0.7654 * z0 / wc
	c2 := 1.8478 / (z0 * wc)
	l3 := l1

	stage1, err := SeriesInductor(l1, fc)
	if err != nil {
		return TwoPort{}, err
	}
	stage2, err := ShuntCapacitor(c2, fc)
	if err != nil {
		return TwoPort{}, err
	}
	stage3, err := SeriesInductor(l3, fc)
	if err != nil {
		return TwoPort{}, err
	}
	return Cascade(stage1, stage2, stage3), nil
}

//----------------------------------------------------------------------
// Resistive attenuators
//----------------------------------------------------------------------

// attenuatorFactor converts an attenuation figure in dB to the linear
// voltage ratio K = 10^(dB/20), K > 1.
func attenuatorFactor(attenDB float64) (float64, error) {
	if attenDB <= 0 {
		return 0, fmt.Errorf("attenuator attenDB=%g: %w", attenDB, ErrInvalidComponent)
	}
	return math.Pow(10, attenDB/20), nil
}

// PiAttenuator builds a symmetric resistive Pi attenuator (shunt R1,
// series R2, shunt R1) matched to z0 at the given attenuation in dB:
//
//	K  = 10^(dB/20)
//	R2 = Z0·(K²-1)/(2K)
//	R1 = Z0·(K+1)/(K-1)
func PiAttenuator(z0, attenDB float64) (TwoPort, error) {
	if z0 <= 0 {
		return TwoPort{}, fmt.Errorf("pi attenuator z0=%g: %w", z0, ErrInvalidComponent)
	}
	k, err := attenuatorFactor(attenDB)
	if err != nil {
		return TwoPort{}, err
	}
	r2 := z0 * (k*k - 1) / (2 * k)
	r1 := z0 * (k + 1) / (k - 1)

	shunt1, err := ShuntResistor(r1)
	if err != nil {
		return TwoPort{}, err
	}
	series, err := SeriesResistor(r2)
	if err != nil {
		return TwoPort{}, err
	}
	shunt2, err := ShuntResistor(r1)
	if err != nil {
		return TwoPort{}, err
	}
	return Cascade(shunt1, series, shunt2), nil
}

// TAttenuator builds a symmetric resistive T attenuator (series R1,
// shunt R2, series R1) matched to z0 at the given attenuation in dB:
//
//	K  = 10^(dB/20)
//	R1 = Z0·(K-1)/(K+1)
//	R2 = 2·Z0·K/(K²-1)
func TAttenuator(z0, attenDB float64) (TwoPort, error) {
	if z0 <= 0 {
		return TwoPort{}, fmt.Errorf("t attenuator z0=%g: %w", z0, ErrInvalidComponent)
	}
	k, err := attenuatorFactor(attenDB)
	if err != nil {
		return TwoPort{}, err
	}
	r1 := z0 * (k - 1) / (k + 1)
	r2 := 2 * z0 * k / (k*k - 1)

	series1, err := SeriesResistor(r1)
	if err != nil {
		return TwoPort{}, err
	}
	shunt, err := ShuntResistor(r2)
	if err != nil {
		return TwoPort{}, err
	}
	series2, err := SeriesResistor(r1)
	if err != nil {
		return TwoPort{}, err
	}
	return Cascade(series1, shunt, series2), nil
}

//----------------------------------------------------------------------
// L-match network
//----------------------------------------------------------------------

// LMatchResult reports the reactive element values of an L-match
// network solved by Zmatch, together with the placement of its shunt
// leg (AtSource if true, AtLoad otherwise).
type LMatchResult struct {
	AtSource bool
	Matcher  *Matcher
}

// LMatch solves the two-element L-match network between Zs and Zl using
// Zmatch, then realizes it as a cascaded two-port at frequency freq
// using the low-pass topology (shunt C, series L) unless highPass is
// set (series C, shunt L). The shunt leg sits on whichever side had the
// higher impedance magnitude, matching Zmatch's own convention.
func LMatch(zs, zl complex128, freq float64, highPass bool) (TwoPort, LMatchResult, error) {
	if freq <= 0 {
		return TwoPort{}, LMatchResult{}, fmt.Errorf("l-match at freq=%g: %w", freq, ErrInvalidComponent)
	}
	_, m := Zmatch(zs, zl)
	res := LMatchResult{AtSource: m.AtSource, Matcher: m}

	var shunt, series TwoPort
	var err error
	if highPass {
		cs, lp := m.HighPass(freq)
		series, err = SeriesCapacitor(cs, freq)
		if err != nil {
			return TwoPort{}, LMatchResult{}, err
		}
		shunt, err = ShuntInductor(lp, freq)
		if err != nil {
			return TwoPort{}, LMatchResult{}, err
		}
	} else {
		cp, ls := m.LowPass(freq)
		shunt, err = ShuntCapacitor(cp, freq)
		if err != nil {
			return TwoPort{}, LMatchResult{}, err
		}
		series, err = SeriesInductor(ls, freq)
		if err != nil {
			return TwoPort{}, LMatchResult{}, err
		}
	}

	if res.AtSource {
		return Cascade(shunt, series), res, nil
	}
	return Cascade(series, shunt), res, nil
}
