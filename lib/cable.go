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

import "fmt"

// CableSpec describes a named, real-world transmission-line preset.
type CableSpec struct {
	Z0c            complex128 // nominal characteristic impedance
	VF             float64    // velocity factor, (0,1]
	LossDBPerMeter float64    // matched-line loss at the preset's reference frequency
}

// cable is the table of known transmission-line presets.
var cable = map[string]CableSpec{
	"RG58": {
		Z0c:            complex(50, 0),
		VF:             0.66,
		LossDBPerMeter: 0.197, // @ 100 MHz
	},
	"RG213": {
		Z0c:            complex(50, 0),
		VF:             0.66,
		LossDBPerMeter: 0.069, // @ 100 MHz
	},
	"LMR400": {
		Z0c:            complex(50, 0),
		VF:             0.85,
		LossDBPerMeter: 0.043, // @ 100 MHz
	},
	"RG59": {
		Z0c:            complex(75, 0),
		VF:             0.66,
		LossDBPerMeter: 0.145, // @ 100 MHz
	},
	"450-Ohm-Ladder": {
		Z0c:            complex(450, 0),
		VF:             0.95,
		LossDBPerMeter: 0.007, // @ 100 MHz, nominal
	},
}

// CableProperties returns the preset for a named cable.
func CableProperties(label string) (spec CableSpec, err error) {
	spec, ok := cable[label]
	if !ok {
		err = fmt.Errorf("unknown cable preset %q", label)
	}
	return
}

// RegisterCable adds or replaces a named cable preset.
func RegisterCable(label string, spec CableSpec) {
	cable[label] = spec
}
