// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/staking/reverts"
)

type randomOp struct {
	Kind     uint8
	Staker   uint8
	Referrer uint8
	Amount   uint32
	Elapsed  uint32
}

func TestRandomOperations(t *testing.T) {
	env := newTestEnv(t)
	l := env.ledger
	require.NoError(t, l.FundRewards(funder, tokens(100_000)))

	stakers := []edinar.Address{alice, bob, carol}
	expected := map[edinar.Address]*big.Int{}
	for _, s := range stakers {
		expected[s] = new(big.Int)
	}

	fuzzer := fuzz.NewWithSeed(42).NilChance(0)
	for i := range 2000 {
		var op randomOp
		fuzzer.Fuzz(&op)

		caller := stakers[int(op.Staker)%len(stakers)]
		referrer := noReferrer
		if r := int(op.Referrer) % (len(stakers) + 1); r < len(stakers) {
			referrer = stakers[r]
		}
		// up to ~4295 tokens, zero included
		amount := new(big.Int).Mul(big.NewInt(int64(op.Amount)), big.NewInt(1e12))
		env.clock.Advance(uint64(op.Elapsed) % day)

		var err error
		switch op.Kind % 3 {
		case 0:
			err = l.Stake(caller, amount, referrer)
			if err == nil {
				expected[caller].Add(expected[caller], amount)
			}
		case 1:
			err = l.Unstake(caller, amount)
			if err == nil {
				expected[caller].Sub(expected[caller], amount)
			}
		case 2:
			var before, paid *big.Int
			before = l.PendingRewards(caller)
			paid, err = l.ClaimRewards(caller)
			if err == nil {
				require.Equal(t, before.String(), paid.String(), "op %d", i)
				require.Zero(t, l.PendingRewards(caller).Sign())
				require.Zero(t, l.ReserveShortfall().Sign(), "op %d: claim left settled rewards unfunded", i)
			}
		}
		if err != nil {
			require.True(t, reverts.Is(err), "op %d: unexpected error %v", i, err)
		}

		for _, s := range stakers {
			require.Equal(t, expected[s].String(), l.StakedBalance(s).String(), "op %d: principal of %v", i, s)
		}
		checkInvariants(t, l)
	}
}
