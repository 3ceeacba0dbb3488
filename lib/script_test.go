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

import "testing"

func TestScriptedBuilderBuildsCascade(t *testing.T) {
	params := map[string]float64{"c1": 10e-12, "l2": 100e-9}
	b := NewScriptedBuilder("testdata/pi_lowpass.lua", params)
	n, err := b.Build(100e6)
	if err != nil {
		t.Fatal(err)
	}
	if n.Det() == 0 {
		t.Error("expected a non-degenerate cascaded two-port")
	}
}

func TestScriptedBuilderAsNetworkAtFrequency(t *testing.T) {
	params := map[string]float64{"c1": 10e-12, "l2": 100e-9}
	b := NewScriptedBuilder("testdata/pi_lowpass.lua", params)
	build := b.AsNetworkAtFrequency()
	sweep := FrequencySweep{Start: 10e6, Stop: 1e9, Points: 5, Scale: Log}
	_, err := PerformSweep(sweep, complex(50, 0), complex(50, 0), complex(50, 0), build)
	if err != nil {
		t.Fatal(err)
	}
}
