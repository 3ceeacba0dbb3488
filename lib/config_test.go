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
	"os"
	"testing"
)

func TestDefaultConfigIsUsable(t *testing.T) {
	if Cfg.Def.Z0 != 50 {
		t.Errorf("default Z0 = %v, want 50", Cfg.Def.Z0)
	}
	if Cfg.Smith == nil {
		t.Fatal("expected non-nil default Smith config")
	}
}

func TestSmithConfigFromCfgMatchesDefault(t *testing.T) {
	cfg := SmithConfigFromCfg()
	if cfg.EdgeBoost != Cfg.Smith.EdgeBoost {
		t.Errorf("EdgeBoost = %v, want %v", cfg.EdgeBoost, Cfg.Smith.EdgeBoost)
	}
}

func TestReadConfigMergesCablePresets(t *testing.T) {
	fname := t.TempDir() + "/rfcascade.json"
	body := `{"cables":{"custom-75":{"z0cReal":75,"z0cImag":0,"vf":0.7,"lossDBPerMeter":0.05}}}`
	if err := os.WriteFile(fname, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ReadConfig(fname); err != nil {
		t.Fatal(err)
	}
	spec, err := CableProperties("custom-75")
	if err != nil {
		t.Fatal(err)
	}
	if real(spec.Z0c) != 75 {
		t.Errorf("Z0c = %v, want 75", spec.Z0c)
	}
}
