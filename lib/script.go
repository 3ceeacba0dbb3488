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

	lua "github.com/Shopify/go-lua"
)

// ScriptedBuilder constructs a two-port network from a Lua script. The
// script runs once per call with the frequency bound as the global
// "freq" and calls the registered component functions (series_r,
// shunt_c, tline, ...), each of which appends its two-port to the
// network in call order; it is a scripting input to the core, not an
// export of the core to a host.
type ScriptedBuilder struct {
	path     string
	params   map[string]float64
	state    *lua.State
	stage    []TwoPort
	stageErr error
}

// NewScriptedBuilder prepares repeated invocation of the script at path;
// each Build call runs it in a fresh Lua VM. params are exposed to the
// script as numeric globals.
func NewScriptedBuilder(path string, params map[string]float64) *ScriptedBuilder {
	return &ScriptedBuilder{path: path, params: params}
}

// registerComponentFuncs exposes the series/shunt R, L, C constructors
// and a lossless real-Z0 transmission line (tline) to the script as Lua
// global functions taking plain numbers and appending the resulting
// two-port to the accumulator; the first constructor error is recorded,
// the script keeps running, and Build returns that error afterwards.
func (b *ScriptedBuilder) registerComponentFuncs(freq float64) {
	push := func(n TwoPort, err error) int {
		if err != nil && b.stageErr == nil {
			b.stageErr = err
		}
		b.stage = append(b.stage, n)
		return 0
	}
	b.state.Register("series_r", func(s *lua.State) int {
		r, _ := s.ToNumber(1)
		return push(SeriesResistor(r))
	})
	b.state.Register("series_l", func(s *lua.State) int {
		l, _ := s.ToNumber(1)
		return push(SeriesInductor(l, freq))
	})
	b.state.Register("series_c", func(s *lua.State) int {
		c, _ := s.ToNumber(1)
		return push(SeriesCapacitor(c, freq))
	})
	b.state.Register("shunt_r", func(s *lua.State) int {
		r, _ := s.ToNumber(1)
		return push(ShuntResistor(r))
	})
	b.state.Register("shunt_l", func(s *lua.State) int {
		l, _ := s.ToNumber(1)
		return push(ShuntInductor(l, freq))
	})
	b.state.Register("shunt_c", func(s *lua.State) int {
		c, _ := s.ToNumber(1)
		return push(ShuntCapacitor(c, freq))
	})
	b.state.Register("tline", func(s *lua.State) int {
		lenM, _ := s.ToNumber(1)
		z0, _ := s.ToNumber(2)
		vf, _ := s.ToNumber(3)
		return push(TransmissionLine(lenM, complex(z0, 0), freq, vf, 0))
	})
}

// Build runs the script at a given frequency and returns the cascade of
// every component the script constructed, in the order it constructed
// them.
func (b *ScriptedBuilder) Build(freq float64) (TwoPort, error) {
	b.state = lua.NewState()
	lua.OpenLibraries(b.state)
	b.stage = nil
	b.stageErr = nil

	b.state.PushNumber(freq)
	b.state.SetGlobal("freq")
	for k, v := range b.params {
		b.state.PushNumber(v)
		b.state.SetGlobal(k)
	}
	b.registerComponentFuncs(freq)

	if err := lua.DoFile(b.state, b.path); err != nil {
		return TwoPort{}, fmt.Errorf("scripted network %q: %w", b.path, err)
	}
	if b.stageErr != nil {
		return TwoPort{}, fmt.Errorf("scripted network %q: %w", b.path, b.stageErr)
	}
	if len(b.stage) == 0 {
		return Identity(), nil
	}
	return Cascade(b.stage...), nil
}

// AsNetworkAtFrequency adapts a ScriptedBuilder to the NetworkAtFrequency
// signature used by sweep executors and the Smith-chart generator.
func (b *ScriptedBuilder) AsNetworkAtFrequency() NetworkAtFrequency {
	return b.Build
}
