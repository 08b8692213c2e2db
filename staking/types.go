// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/edinar/staking/edinar"
)

// StakerRecord is the per-address ledger entry. It is created on the first
// stake, or on demand when the address is named as a referrer, and is never
// removed.
type StakerRecord struct {
	Principal *big.Int
	// Unclaimed is settled reward that has not been paid out yet,
	// including referral bonuses credited to this address.
	Unclaimed *big.Int
	// AccrualRemainder is the truncated part of the last settlement, scaled
	// by the accrual denominator. It is carried into the next settlement.
	AccrualRemainder *big.Int
	LastUpdateTime   uint64

	Referrer          edinar.Address // zero when none
	ReferralCount     uint64
	ReferralRewards   *big.Int
	ReferralRemainder *big.Int // carry of the bonus paid to Referrer

	Claimed *big.Int
	Staked  bool // has staked at least once
}

func newStakerRecord() *StakerRecord {
	return &StakerRecord{
		Principal:         new(big.Int),
		Unclaimed:         new(big.Int),
		AccrualRemainder:  new(big.Int),
		ReferralRewards:   new(big.Int),
		ReferralRemainder: new(big.Int),
		Claimed:           new(big.Int),
	}
}

// IsActive returns whether the record currently holds principal.
func (r *StakerRecord) IsActive() bool {
	return r.Principal.Sign() > 0
}

func (r *StakerRecord) clone() *StakerRecord {
	cpy := *r
	cpy.Principal = new(big.Int).Set(r.Principal)
	cpy.Unclaimed = new(big.Int).Set(r.Unclaimed)
	cpy.AccrualRemainder = new(big.Int).Set(r.AccrualRemainder)
	cpy.ReferralRewards = new(big.Int).Set(r.ReferralRewards)
	cpy.ReferralRemainder = new(big.Int).Set(r.ReferralRemainder)
	cpy.Claimed = new(big.Int).Set(r.Claimed)
	return &cpy
}

// PoolState holds the pool wide aggregates.
type PoolState struct {
	TotalStaked    *big.Int
	ActiveStakers  uint64
	RewardsReserve *big.Int
	TotalUnclaimed *big.Int

	// the rate is fixed when the pool is created
	APYBasisPoints           uint64
	ReferralBonusBasisPoints uint64
}

func newPoolState(cfg Config) *PoolState {
	return &PoolState{
		TotalStaked:              new(big.Int),
		RewardsReserve:           new(big.Int),
		TotalUnclaimed:           new(big.Int),
		APYBasisPoints:           cfg.APYBasisPoints,
		ReferralBonusBasisPoints: cfg.ReferralBonusBasisPoints,
	}
}

func (p *PoolState) clone() *PoolState {
	cpy := *p
	cpy.TotalStaked = new(big.Int).Set(p.TotalStaked)
	cpy.RewardsReserve = new(big.Int).Set(p.RewardsReserve)
	cpy.TotalUnclaimed = new(big.Int).Set(p.TotalUnclaimed)
	return &cpy
}
