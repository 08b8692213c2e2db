// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/edinar/staking/edinar"
)

func TestConcurrentOperations(t *testing.T) {
	env := newTestEnv(t)
	l := env.ledger
	require.NoError(t, l.FundRewards(funder, tokens(1000)))

	var g errgroup.Group
	for _, addr := range []edinar.Address{alice, bob, carol} {
		g.Go(func() error {
			for range 100 {
				if err := l.Stake(addr, tokens(3), noReferrer); err != nil {
					return err
				}
				if err := l.Unstake(addr, tokens(1)); err != nil {
					return err
				}
				if _, err := l.ClaimRewards(addr); err != nil {
					return err
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		for range 300 {
			env.clock.Advance(3600)
		}
		return nil
	})
	// readers always see a consistent pool
	g.Go(func() error {
		for range 300 {
			p := l.Pool()
			assert.LessOrEqual(t, p.ActiveStakers, uint64(3))
			_ = l.PendingRewards(alice)
			_ = l.Stakers()
		}
		return nil
	})
	require.NoError(t, g.Wait())

	for _, addr := range []edinar.Address{alice, bob, carol} {
		assertAmount(t, tokens(200), l.StakedBalance(addr))
	}
	assertAmount(t, tokens(600), l.TotalValueLocked())
	assert.Equal(t, uint64(3), l.ActiveStakers())
	checkInvariants(t, l)

	// pool custody holds principal plus what is left of the reserve
	custody := new(big.Int).Add(l.TotalValueLocked(), l.Reserve())
	assertAmount(t, custody, env.token.BalanceOf(pool))
}
