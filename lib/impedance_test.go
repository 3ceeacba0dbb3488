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
	"math/cmplx"
	"testing"
)

func TestReflectionRoundTrip(t *testing.T) {
	z0 := complex(50, 0)
	z := complex(75, -25)
	g := ToReflection(z, z0)
	if cmplx.Abs(g) >= 1 {
		t.Errorf("expected reflection magnitude < 1 for passive impedance, got %v", g)
	}
	back := FromReflection(g, z0)
	if cmplx.Abs(back-z) > 1e-9 {
		t.Errorf("round trip mismatch: got %v, want %v", back, z)
	}
}

func TestReflectionAtMatch(t *testing.T) {
	z0 := complex(50, 0)
	g := ToReflection(z0, z0)
	if cmplx.Abs(g) > 1e-12 {
		t.Errorf("expected zero reflection at match, got %v", g)
	}
}

func TestMatch(t *testing.T) {

	Zs := complex(50, 0)
	Zl := complex(5, 0)
	f := 145000000.

	Z, matcher := Zmatch(Zs, Zl)

	t.Logf("AtSource=%v, Zmatch=%s\n", matcher.AtSource, FormatImpedance(Z, 5))

	Cp, Ls := matcher.LowPass(f)
	t.Logf("LP: Cp=%sF, Ls=%sH\n", FormatNumber(Cp, 4), FormatNumber(Ls, 4))
	Cs, Lp := matcher.HighPass(f)
	t.Logf("Cs=%sF, Lp=%sH\n", FormatNumber(Cs, 4), FormatNumber(Lp, 4))
}
