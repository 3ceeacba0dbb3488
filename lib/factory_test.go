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
	"testing"
)

func TestButterworth3LowPassAtCornerIsLossless(t *testing.T) {
	n, err := Butterworth3LowPass(50, 100e6)
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsLossless(1e-6) {
		t.Error("ideal LC ladder should be lossless")
	}
}

func TestButterworth3LowPassCornerLossIsMinus3dB(t *testing.T) {
	n, err := Butterworth3LowPass(50, 100e6)
	if err != nil {
		t.Fatal(err)
	}
	sp, err := n.ToS(complex(50, 0))
	if err != nil {
		t.Fatal(err)
	}
	if loss := sp.InsertionLossDB(); math.Abs(loss-3) > 1.5 {
		t.Errorf("insertion loss at corner = %v dB, want 3 +/- 1.5 dB", loss)
	}
}

func TestButterworth3LowPassSweepRolloff(t *testing.T) {
	z0 := 50.0
	fc := 100e6
	s := func(f float64) float64 {
		n, err := Butterworth3LowPass(z0, f)
		if err != nil {
			t.Fatal(err)
		}
		sp, err := n.ToS(complex(z0, 0))
		if err != nil {
			t.Fatal(err)
		}
		return sp.InsertionLossDB()
	}
	lowLoss := s(10e6)
	passLoss := s(fc)
	highLoss := s(10 * fc)
	if !(highLoss > passLoss && passLoss >= lowLoss) {
		t.Errorf("expected monotonically increasing loss with frequency: %v, %v, %v", lowLoss, passLoss, highLoss)
	}
}

func TestPiAttenuatorMatchedLoss(t *testing.T) {
	n, err := PiAttenuator(50, 10)
	if err != nil {
		t.Fatal(err)
	}
	sp, err := n.ToS(complex(50, 0))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(sp.InsertionLossDB()-10) > 0.05 {
		t.Errorf("insertion loss = %v dB, want ~10 dB", sp.InsertionLossDB())
	}
	if sp.ReturnLossDB() < 40 {
		t.Errorf("expected a well-matched attenuator, return loss = %v dB", sp.ReturnLossDB())
	}
}

func TestTAttenuatorMatchedLoss(t *testing.T) {
	n, err := TAttenuator(50, 6)
	if err != nil {
		t.Fatal(err)
	}
	sp, err := n.ToS(complex(50, 0))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(sp.InsertionLossDB()-6) > 0.05 {
		t.Errorf("insertion loss = %v dB, want ~6 dB", sp.InsertionLossDB())
	}
}

func TestAttenuatorRejectsNonPositiveDB(t *testing.T) {
	if _, err := PiAttenuator(50, 0); err == nil {
		t.Fatal("expected error for non-positive attenuation")
	}
	if _, err := TAttenuator(50, -3); err == nil {
		t.Fatal("expected error for negative attenuation")
	}
}

func TestLMatchProducesValidNetwork(t *testing.T) {
	zs := complex(50, 0)
	zl := complex(5, 0)
	n, res, err := LMatch(zs, zl, 145e6, false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Matcher == nil {
		t.Fatal("expected non-nil matcher detail")
	}
	if n.Det() == 0 {
		t.Error("expected non-degenerate two-port from L-match")
	}
}
