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

import "errors"

// Sentinel errors for the package's error taxonomy. Callers distinguish
// kinds with errors.Is; functions that need to report context (a failing
// frequency, a failing sample index, the offending denominator) wrap one
// of these with fmt.Errorf("...: %w", ErrX).
var (
	// ErrSingular indicates a denominator fell below DenominatorGuard in
	// magnitude: an impedance/gain formula, a parameter conversion, or the
	// Smith-chart bilinear inverse near Γ=1.
	ErrSingular = errors.New("rfcascade: singular (denominator below guard)")

	// ErrNonsymmetric indicates characteristic_impedance was requested of
	// a two-port that fails the symmetric predicate.
	ErrNonsymmetric = errors.New("rfcascade: network is not symmetric")

	// ErrInvalidSweep indicates a malformed sweep descriptor: fewer than
	// one point, start==stop with more than one point, non-positive
	// start under a log distribution, or a non-positive frequency.
	ErrInvalidSweep = errors.New("rfcascade: invalid sweep descriptor")

	// ErrInvalidComponent indicates a component constructor received a
	// non-physical parameter (negative R/L/C, or non-positive frequency
	// for a reactive element that needs one).
	ErrInvalidComponent = errors.New("rfcascade: invalid component parameter")

	// ErrInvalidDistribution indicates a Monte-Carlo component was
	// requested at zero frequency for a reactive kind, or was given a
	// negative tolerance.
	ErrInvalidDistribution = errors.New("rfcascade: invalid distribution parameter")
)
