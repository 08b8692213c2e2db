// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/pkg/errors"

	"github.com/edinar/staking/edinar"
)

// Config is the pool configuration. Rates are in basis points.
type Config struct {
	APYBasisPoints           uint64         `yaml:"apy-bp"`
	ReferralBonusBasisPoints uint64         `yaml:"referral-bonus-bp"`
	Pool                     edinar.Address `yaml:"pool"`
}

func DefaultConfig() Config {
	return Config{
		APYBasisPoints:           edinar.DefaultAPYBasisPoints,
		ReferralBonusBasisPoints: edinar.DefaultReferralBonusBasisPoints,
		Pool:                     edinar.DefaultPoolAddress,
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.APYBasisPoints > edinar.MaxAPYBasisPoints {
		return errors.Errorf("apy %d bp exceeds maximum %d bp", c.APYBasisPoints, edinar.MaxAPYBasisPoints)
	}
	if c.ReferralBonusBasisPoints > edinar.BasisPointsDenominator {
		return errors.Errorf("referral bonus %d bp exceeds 100%%", c.ReferralBonusBasisPoints)
	}
	if c.Pool.IsZero() {
		return errors.New("pool address is zero")
	}
	return nil
}
