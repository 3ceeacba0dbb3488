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
	"encoding/json"
	"os"
)

// Default holds system-wide default values loaded with the
// configuration. The CLIs in cmd/ do not read them; their flags carry
// their own defaults.
type Default struct {
	Z0          float64 `json:"z0"`          // default reference impedance (Ohm)
	Epsilon     float64 `json:"epsilon"`     // default tolerance predicate epsilon
	RandomSeed  int64   `json:"randomSeed"`  // default Monte-Carlo seed
	VelocityFac float64 `json:"velocityFac"` // default cable velocity factor
}

// SmithDefaults mirrors SmithConfig for JSON round-tripping.
type SmithDefaults struct {
	MinSpacing float64 `json:"minSpacing"`
	MaxSpacing float64 `json:"maxSpacing"`
	EdgeThresh float64 `json:"edgeThresh"`
	EdgeBoost  float64 `json:"edgeBoost"`
	Adaptive   bool    `json:"adaptive"`
}

// toSmithConfig converts the JSON-friendly defaults to a SmithConfig.
func (s SmithDefaults) toSmithConfig() SmithConfig {
	return SmithConfig{
		MinSpacing: s.MinSpacing,
		MaxSpacing: s.MaxSpacing,
		EdgeThresh: s.EdgeThresh,
		EdgeBoost:  s.EdgeBoost,
		Adaptive:   s.Adaptive,
	}
}

// MonteCarlo holds default sample counts used by the analysis CLIs.
type MonteCarlo struct {
	DefaultSamples int `json:"defaultSamples"`
}

// CableConfig is the JSON-friendly form of CableSpec: encoding/json
// cannot marshal a complex128 field directly, so Z0c is split into its
// real and imaginary parts.
type CableConfig struct {
	Z0cReal        float64 `json:"z0cReal"`
	Z0cImag        float64 `json:"z0cImag"`
	VF             float64 `json:"vf"`
	LossDBPerMeter float64 `json:"lossDBPerMeter"`
}

// toCableSpec converts the JSON-friendly form to a CableSpec.
func (c CableConfig) toCableSpec() CableSpec {
	return CableSpec{
		Z0c:            complex(c.Z0cReal, c.Z0cImag),
		VF:             c.VF,
		LossDBPerMeter: c.LossDBPerMeter,
	}
}

// Config is the top-level, JSON-loadable configuration.
type Config struct {
	Def     *Default               `json:"default"`
	Smith   *SmithDefaults         `json:"smith"`
	MC      *MonteCarlo            `json:"montecarlo"`
	Cables  map[string]CableConfig `json:"cables"`
	Plugins map[string]string      `json:"plugins"`
}

// Cfg is the globally-accessible configuration (pre-set).
var Cfg = &Config{
	Def: &Default{
		Z0:          50,
		Epsilon:     DefaultEpsilon,
		RandomSeed:  1,
		VelocityFac: 0.66,
	},
	Smith: &SmithDefaults{
		MinSpacing: 0.01,
		MaxSpacing: 0.1,
		EdgeThresh: 0.8,
		EdgeBoost:  5,
		Adaptive:   true,
	},
	MC: &MonteCarlo{
		DefaultSamples: 10000,
	},
	Cables:  make(map[string]CableConfig),
	Plugins: make(map[string]string),
}

// SmithConfigFromCfg returns the active Smith-chart configuration,
// falling back to DefaultSmithConfig if Cfg.Smith is nil.
func SmithConfigFromCfg() SmithConfig {
	if Cfg.Smith == nil {
		return DefaultSmithConfig()
	}
	return Cfg.Smith.toSmithConfig()
}

// ReadConfig loads configuration from a JSON file, merging any
// additional cable presets into the package-level cable registry.
func ReadConfig(fname string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fname); err == nil {
		err = json.Unmarshal(data, &Cfg)
	}
	if err == nil {
		for name, cfg := range Cfg.Cables {
			RegisterCable(name, cfg.toCableSpec())
		}
	}
	return
}
