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

// SweepScale selects linear or logarithmic point spacing.
type SweepScale int

const (
	Linear SweepScale = iota
	Log
)

// FrequencySweep describes a swept range of frequencies in Hz.
type FrequencySweep struct {
	Start, Stop float64
	Points      int
	Scale       SweepScale
}

// Validate reports whether the sweep descriptor is well-formed: at
// least one point, Start > 0 for a single-point sweep, and otherwise
// Stop != Start and Start > 0 when Scale is Log.
func (s FrequencySweep) Validate() error {
	if s.Points < 1 {
		return fmt.Errorf("frequency sweep points=%d: %w", s.Points, ErrInvalidSweep)
	}
	if s.Points == 1 {
		if s.Start <= 0 {
			return fmt.Errorf("frequency sweep start=%g: %w", s.Start, ErrInvalidSweep)
		}
		return nil
	}
	if s.Start == s.Stop {
		return fmt.Errorf("frequency sweep start==stop with points>1: %w", ErrInvalidSweep)
	}
	if s.Scale == Log && s.Start <= 0 {
		return fmt.Errorf("frequency sweep start=%g invalid for log scale: %w", s.Start, ErrInvalidSweep)
	}
	return nil
}

// Values enumerates the swept frequency points.
func (s FrequencySweep) Values() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := make([]float64, s.Points)
	if s.Points == 1 {
		out[0] = s.Start
		return out, nil
	}
	switch s.Scale {
	case Log:
		logStart, logStop := math.Log10(s.Start), math.Log10(s.Stop)
		step := (logStop - logStart) / float64(s.Points-1)
		for i := range out {
			out[i] = math.Pow(10, logStart+step*float64(i))
		}
	default:
		step := (s.Stop - s.Start) / float64(s.Points-1)
		for i := range out {
			out[i] = s.Start + step*float64(i)
		}
	}
	return out, nil
}
