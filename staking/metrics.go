// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math"
	"math/big"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/metrics"
	"github.com/edinar/staking/staking/reverts"
)

var (
	metricOps           = metrics.LazyLoadCounterVec("staking_ops_count", []string{"op", "result"})
	metricActiveStakers = metrics.LazyLoadGauge("staking_active_stakers")
	metricTokenFlow     = metrics.LazyLoadCounterVec("staking_token_flow_count", []string{"direction"})
	metricStakeAmount   = metrics.LazyLoadHistogram("staking_stake_amount_tokens", metrics.BucketAmounts)
	metricPoolTokens    = metrics.LazyLoadGaugeVec("staking_pool_tokens", []string{"kind"})
)

// wholeTokens truncates wei to whole tokens, saturating at MaxInt64.
func wholeTokens(wei *big.Int) int64 {
	v := new(big.Int).Quo(wei, edinar.Unit)
	if !v.IsInt64() {
		return math.MaxInt64
	}
	return v.Int64()
}

func observePool(pool *PoolState) {
	metricActiveStakers().Set(int64(pool.ActiveStakers))
	metricPoolTokens().SetWithLabel(wholeTokens(pool.TotalStaked), map[string]string{"kind": "staked"})
	metricPoolTokens().SetWithLabel(wholeTokens(pool.RewardsReserve), map[string]string{"kind": "reserve"})
	metricPoolTokens().SetWithLabel(wholeTokens(pool.TotalUnclaimed), map[string]string{"kind": "unclaimed"})
}

// observeOp counts op by result: "ok", the revert reason, or "error".
func observeOp(op string, err error) {
	result := "ok"
	if err != nil {
		result = reverts.Label(err)
		if result == "" {
			result = "error"
		}
	}
	metricOps().AddWithLabel(1, map[string]string{"op": op, "result": result})
}
