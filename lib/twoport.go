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

// Package lib implements a steady-state, linear, frequency-domain model
// of cascaded two-port RF networks: the ABCD (chain) algebra, a closed
// library of lumped and distributed components, frequency/value sweeps,
// Monte-Carlo tolerance analysis, and a Smith-chart point generator.
package lib

import (
	"fmt"
	"math/cmplx"
)

// TwoPort is an immutable ABCD (chain) matrix value:
//
//	[V1]   [A B] [ V2]
//	[I1] = [C D] [-I2]
//
// relating port-1 voltage/current to port-2 voltage/current of a linear
// two-port network. The zero value is not meaningful; use Identity or
// NewTwoPort.
type TwoPort struct {
	a, b, c, d complex128
}

// Identity returns the two-sided unit of cascade composition.
func Identity() TwoPort {
	return TwoPort{a: 1, b: 0, c: 0, d: 1}
}

// NewTwoPort builds a two-port from its four ABCD entries.
func NewTwoPort(a, b, c, d complex128) TwoPort {
	return TwoPort{a: a, b: b, c: c, d: d}
}

// A returns the ABCD entry A.
func (t TwoPort) A() complex128 { return t.a }

// B returns the ABCD entry B.
func (t TwoPort) B() complex128 { return t.b }

// C returns the ABCD entry C.
func (t TwoPort) C() complex128 { return t.c }

// D returns the ABCD entry D.
func (t TwoPort) D() complex128 { return t.d }

// Cascade composes t with next, i.e. computes t ⊗ next: the two-port
// seen when t's output port feeds next's input port. Cascade is
// associative and non-commutative, and does not assume reciprocity.
func (t TwoPort) Cascade(next TwoPort) TwoPort {
	return TwoPort{
		a: t.a*next.a + t.b*next.c,
		b: t.a*next.b + t.b*next.d,
		c: t.c*next.a + t.d*next.c,
		d: t.c*next.b + t.d*next.d,
	}
}

// Cascade composes a sequence of two-ports left-to-right: the identity
// if empty, else ts[0] ⊗ ts[1] ⊗ ... ⊗ ts[n-1].
func Cascade(ts ...TwoPort) TwoPort {
	out := Identity()
	for _, t := range ts {
		out = out.Cascade(t)
	}
	return out
}

// Det returns the determinant Δ = AD - BC.
func (t TwoPort) Det() complex128 {
	return t.a*t.d - t.b*t.c
}

// IsReciprocal reports whether |Δ-1| < eps.
func (t TwoPort) IsReciprocal(eps float64) bool {
	eps = resolveEpsilon(eps)
	return cmplx.Abs(t.Det()-1) < eps
}

// IsSymmetric reports whether |A-D| < eps.
func (t TwoPort) IsSymmetric(eps float64) bool {
	eps = resolveEpsilon(eps)
	return cmplx.Abs(t.a-t.d) < eps
}

// IsLossless reports whether A,D are purely real, B,C are purely
// imaginary, and |Δ|-1 is within eps in absolute value.
func (t TwoPort) IsLossless(eps float64) bool {
	eps = resolveEpsilon(eps)
	if abs(imag(t.a)) >= eps || abs(imag(t.d)) >= eps {
		return false
	}
	if abs(real(t.b)) >= eps || abs(real(t.c)) >= eps {
		return false
	}
	return abs(cmplx.Abs(t.Det())-1) < eps
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// InputImpedance returns Zin = (A*Zl+B)/(C*Zl+D) for a load Zl.
func (t TwoPort) InputImpedance(zl complex128) (complex128, error) {
	den := t.c*zl + t.d
	if cmplx.Abs(den) < DenominatorGuard {
		return 0, fmt.Errorf("input impedance: %w", ErrSingular)
	}
	return (t.a*zl + t.b) / den, nil
}

// OutputImpedance returns Zout = (D*Zs+B)/(C*Zs+A) for a source Zs.
func (t TwoPort) OutputImpedance(zs complex128) (complex128, error) {
	den := t.c*zs + t.a
	if cmplx.Abs(den) < DenominatorGuard {
		return 0, fmt.Errorf("output impedance: %w", ErrSingular)
	}
	return (t.d*zs + t.b) / den, nil
}

// CharacteristicImpedance returns sqrt(B/C) for a symmetric network.
func (t TwoPort) CharacteristicImpedance(eps float64) (complex128, error) {
	if !t.IsSymmetric(eps) {
		return 0, fmt.Errorf("characteristic impedance: %w", ErrNonsymmetric)
	}
	if cmplx.Abs(t.c) < DenominatorGuard {
		return 0, fmt.Errorf("characteristic impedance: %w", ErrSingular)
	}
	return cmplx.Sqrt(t.b / t.c), nil
}

// VoltageGain returns V2/V1 = 1/(A+B/Zl) under a load Zl.
func (t TwoPort) VoltageGain(zl complex128) (complex128, error) {
	den := t.a + t.b/zl
	if cmplx.Abs(den) < DenominatorGuard {
		return 0, fmt.Errorf("voltage gain: %w", ErrSingular)
	}
	return 1 / den, nil
}

// CurrentGain returns I2/I1 = 1/(C*Zl+D) under a load Zl.
func (t TwoPort) CurrentGain(zl complex128) (complex128, error) {
	den := t.c*zl + t.d
	if cmplx.Abs(den) < DenominatorGuard {
		return 0, fmt.Errorf("current gain: %w", ErrSingular)
	}
	return 1 / den, nil
}

// PowerGain returns |V2/V1|·|I2/I1|, the magnitude product of voltage
// and current gain under a load Zl, i.e. the ratio of apparent power
// delivered to Zl to the apparent power at port 1 for a voltage source
// directly driving port 1.
func (t TwoPort) PowerGain(zl complex128) (float64, error) {
	vg, err := t.VoltageGain(zl)
	if err != nil {
		return 0, err
	}
	ig, err := t.CurrentGain(zl)
	if err != nil {
		return 0, err
	}
	return cmplx.Abs(vg) * cmplx.Abs(ig), nil
}

// ToS converts the ABCD matrix to an S-parameter bundle referenced to
// (possibly complex) impedance z0.
func (t TwoPort) ToS(z0 complex128) (S, error) {
	den := t.a + t.b/z0 + t.c*z0 + t.d
	if cmplx.Abs(den) < DenominatorGuard {
		return S{}, fmt.Errorf("abcd to s: %w", ErrSingular)
	}
	delta := t.Det()
	return S{
		S11: (t.a + t.b/z0 - t.c*z0 - t.d) / den,
		S12: 2 * delta / den,
		S21: 2 / den,
		S22: (-t.a + t.b/z0 - t.c*z0 + t.d) / den,
	}, nil
}

// ToZ converts the ABCD matrix to a Z-parameter bundle. Requires |C| >=
// DenominatorGuard.
func (t TwoPort) ToZ() (Z, error) {
	if cmplx.Abs(t.c) < DenominatorGuard {
		return Z{}, fmt.Errorf("abcd to z: %w", ErrSingular)
	}
	delta := t.Det()
	return Z{
		Z11: t.a / t.c,
		Z12: delta / t.c,
		Z21: 1 / t.c,
		Z22: t.d / t.c,
	}, nil
}

// ToY converts the ABCD matrix to a Y-parameter bundle. Requires |B| >=
// DenominatorGuard.
func (t TwoPort) ToY() (Y, error) {
	if cmplx.Abs(t.b) < DenominatorGuard {
		return Y{}, fmt.Errorf("abcd to y: %w", ErrSingular)
	}
	delta := t.Det()
	return Y{
		Y11: t.d / t.b,
		Y12: -delta / t.b,
		Y21: -1 / t.b,
		Y22: t.a / t.b,
	}, nil
}

// FromS builds a two-port from an S-parameter bundle referenced to
// (possibly complex) impedance z0. Requires |S21| >= DenominatorGuard.
func FromS(s S, z0 complex128) (TwoPort, error) {
	if cmplx.Abs(s.S21) < DenominatorGuard {
		return TwoPort{}, fmt.Errorf("s to abcd: %w", ErrSingular)
	}
	den := 2 * s.S21
	cross := s.S12 * s.S21
	a := ((1+s.S11)*(1-s.S22) + cross) / den
	b := z0 * ((1+s.S11)*(1+s.S22) - cross) / den
	c := ((1-s.S11)*(1-s.S22) - cross) / (den * z0)
	d := ((1-s.S11)*(1+s.S22) + cross) / den
	return TwoPort{a: a, b: b, c: c, d: d}, nil
}
