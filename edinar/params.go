// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package edinar

import "math/big"

// Constants of the staking pool.
const (
	Decimals    = 18
	TokenName   = "EDINAR"
	TokenSymbol = "EDINAR"

	SecondsPerDay  uint64 = 24 * 3600
	SecondsPerYear uint64 = 365 * SecondsPerDay

	BasisPointsDenominator uint64 = 10_000

	DefaultAPYBasisPoints           uint64 = 200 // 2.00%
	DefaultReferralBonusBasisPoints uint64 = 500 // 5% of the referee's settled reward
	MaxAPYBasisPoints               uint64 = 1_000_000
)

var (
	// Unit is one whole token in wei.
	Unit = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

	// RatePrecision is the fixed-point scale of RewardRate.
	RatePrecision = new(big.Int).Set(Unit)

	// DefaultPoolAddress is the custody address of the deployed staking contract.
	DefaultPoolAddress = MustParseAddress("0x0448753a4F2502EAbC78e6Abb38C2158Da83Fa4E")
)
