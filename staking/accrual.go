// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/edinar/staking/edinar"
)

var (
	bpDenominator = new(big.Int).SetUint64(edinar.BasisPointsDenominator)
	// an APY in basis points applied for one second
	accrualDenominator = new(big.Int).SetUint64(edinar.BasisPointsDenominator * edinar.SecondsPerYear)
)

// accrue computes the reward earned by principal over elapsed seconds.
// The result is floored; the truncated part is returned as remainder and must
// be passed back in on the next call, so that splitting a period never
// changes the total.
func accrue(principal, remainder *big.Int, apyBP, elapsed uint64) (reward, rem *big.Int) {
	num := new(big.Int).Mul(principal, new(big.Int).SetUint64(apyBP))
	num.Mul(num, new(big.Int).SetUint64(elapsed))
	num.Add(num, remainder)

	reward, rem = new(big.Int), new(big.Int)
	reward.QuoRem(num, accrualDenominator, rem)
	return reward, rem
}

// referralBonus computes the referrer's cut of a settled reward.
func referralBonus(reward, remainder *big.Int, bonusBP uint64) (bonus, rem *big.Int) {
	num := new(big.Int).Mul(reward, new(big.Int).SetUint64(bonusBP))
	num.Add(num, remainder)

	bonus, rem = new(big.Int), new(big.Int)
	bonus.QuoRem(num, bpDenominator, rem)
	return bonus, rem
}

// elapsedSince returns 0 when the clock went backwards.
func elapsedSince(last, now uint64) uint64 {
	if now <= last {
		return 0
	}
	return now - last
}

// rewardRate is the per second reward per token, scaled by edinar.RatePrecision.
func rewardRate(apyBP uint64) *big.Int {
	rate := new(big.Int).Mul(edinar.RatePrecision, new(big.Int).SetUint64(apyBP))
	return rate.Quo(rate, accrualDenominator)
}
