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
	"errors"
	"math/cmplx"
	"testing"
)

func TestSeriesResistorAt50Ohm(t *testing.T) {
	n, err := SeriesResistor(50)
	if err != nil {
		t.Fatal(err)
	}
	s, err := n.ToS(complex(50, 0))
	if err != nil {
		t.Fatal(err)
	}
	// a series 50Ω resistor between two 50Ω ports reflects 1/3.
	want := 1.0 / 3.0
	if got := cmplx.Abs(s.S11); abs(got-want) > 1e-9 {
		t.Errorf("S11 magnitude = %v, want %v", got, want)
	}
}

func TestShuntResistorAt50Ohm(t *testing.T) {
	n, err := ShuntResistor(100)
	if err != nil {
		t.Fatal(err)
	}
	zin, err := n.InputImpedance(complex(50, 0))
	if err != nil {
		t.Fatal(err)
	}
	// 100Ω shunt in parallel with a 50Ω load: 100*50/150 = 33.33
	want := complex(100.0*50.0/150.0, 0)
	if cmplx.Abs(zin-want) > 1e-6 {
		t.Errorf("Zin = %v, want %v", zin, want)
	}
}

func TestSeriesResistorNegativeIsInvalid(t *testing.T) {
	if _, err := SeriesResistor(-1); !errors.Is(err, ErrInvalidComponent) {
		t.Fatalf("expected ErrInvalidComponent, got %v", err)
	}
}

func TestShuntResistorZeroIsInvalid(t *testing.T) {
	if _, err := ShuntResistor(0); !errors.Is(err, ErrInvalidComponent) {
		t.Fatalf("expected ErrInvalidComponent, got %v", err)
	}
}

func TestSeriesInductorRequiresFrequency(t *testing.T) {
	if _, err := SeriesInductor(1e-6, 0); !errors.Is(err, ErrInvalidComponent) {
		t.Fatalf("expected ErrInvalidComponent, got %v", err)
	}
}

func TestIdealTransformerReciprocalLossless(t *testing.T) {
	n, err := IdealTransformer(2)
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsReciprocal(0) {
		t.Error("ideal transformer should be reciprocal")
	}
	if !n.IsLossless(0) {
		t.Error("ideal transformer should be lossless")
	}
}

func TestQuarterWaveLineTransformsImpedance(t *testing.T) {
	freq := 1e9
	vf := 1.0
	z0 := complex(50, 0)
	n, err := QuarterWaveLine(z0, freq, vf)
	if err != nil {
		t.Fatal(err)
	}
	zl := complex(100, 0)
	zin, err := n.InputImpedance(zl)
	if err != nil {
		t.Fatal(err)
	}
	// Zin = Z0^2/Zl = 2500/100 = 25
	want := complex(25, 0)
	if cmplx.Abs(zin-want) > 1e-6 {
		t.Errorf("Zin = %v, want %v", zin, want)
	}
	if !n.IsLossless(1e-9) {
		t.Error("lossless quarter-wave line should satisfy IsLossless")
	}
}

func TestTransmissionLineByCable(t *testing.T) {
	n, err := TransmissionLineByCable("RG58", 1.0, 100e6)
	if err != nil {
		t.Fatal(err)
	}
	if n.Det() == 0 {
		t.Error("expected non-degenerate two-port")
	}
}

func TestTransmissionLineUnknownCable(t *testing.T) {
	if _, err := TransmissionLineByCable("bogus", 1.0, 1e6); err == nil {
		t.Fatal("expected error for unknown cable")
	}
}

func TestSeriesOpenStubSingularAtZeroLength(t *testing.T) {
	if _, err := SeriesOpenStub(0, 50, 1e9, 1.0); !errors.Is(err, ErrSingular) {
		t.Fatalf("expected ErrSingular at zero-length open stub, got %v", err)
	}
}

func TestShuntShortStubSingularAtZeroLength(t *testing.T) {
	if _, err := ShuntShortStub(0, 50, 1e9, 1.0); !errors.Is(err, ErrSingular) {
		t.Fatalf("expected ErrSingular at zero-length short stub, got %v", err)
	}
}

func TestShuntOpenStubQuarterWaveIsSingular(t *testing.T) {
	freq := 1e9
	vf := 1.0
	lenM, err := QuarterWaveLength(freq, vf)
	if err != nil {
		t.Fatal(err)
	}
	// an exact quarter-wave open stub transforms to a short: Y -> infinity
	if _, err := ShuntOpenStub(lenM, 50, freq, vf); !errors.Is(err, ErrSingular) {
		t.Fatalf("expected ErrSingular at quarter-wave open stub, got %v", err)
	}
	// just off the exact quarter-wave point it is finite and large
	n, err := ShuntOpenStub(lenM*0.999, 50, freq, vf)
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(n.C()) < 1e2 {
		t.Errorf("expected large shunt admittance near quarter-wave open stub, got %v", n.C())
	}
}

func TestShuntTeeShortTermination(t *testing.T) {
	n, err := SeriesResistor(10)
	if err != nil {
		t.Fatal(err)
	}
	tee, err := ShortTerminatedTee(n)
	if err != nil {
		t.Fatal(err)
	}
	// input impedance of series 10Ω shorted at far end is 10Ω -> y = 1/10
	want := complex(0.1, 0)
	if cmplx.Abs(tee.C()-want) > 1e-6 {
		t.Errorf("shunt-tee admittance = %v, want %v", tee.C(), want)
	}
}
