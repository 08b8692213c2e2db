// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edinar/staking/edinar"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero apy", func(c *Config) { c.APYBasisPoints = 0 }, false},
		{"max apy", func(c *Config) { c.APYBasisPoints = edinar.MaxAPYBasisPoints }, false},
		{"apy too high", func(c *Config) { c.APYBasisPoints = edinar.MaxAPYBasisPoints + 1 }, true},
		{"full bonus", func(c *Config) { c.ReferralBonusBasisPoints = 10_000 }, false},
		{"bonus too high", func(c *Config) { c.ReferralBonusBasisPoints = 10_001 }, true},
		{"zero pool", func(c *Config) { c.Pool = edinar.Address{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
