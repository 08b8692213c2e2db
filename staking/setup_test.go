// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/token"
)

var (
	alice  = edinar.BytesToAddress([]byte("alice"))
	bob    = edinar.BytesToAddress([]byte("bob"))
	carol  = edinar.BytesToAddress([]byte("carol"))
	funder = edinar.BytesToAddress([]byte("funder"))
	pool   = edinar.BytesToAddress([]byte("pool"))

	year = edinar.SecondsPerYear
	day  = edinar.SecondsPerDay
)

// tokens returns n whole tokens in wei.
func tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), edinar.Unit)
}

func assertAmount(t *testing.T, expected, actual *big.Int, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, expected.String(), actual.String(), msgAndArgs...)
}

type testClock struct {
	now atomic.Uint64
}

func (c *testClock) Now() uint64 {
	return c.now.Load()
}

func (c *testClock) Advance(seconds uint64) {
	c.now.Add(seconds)
}

func (c *testClock) Set(now uint64) {
	c.now.Store(now)
}

type testEnv struct {
	ledger *Ledger
	token  *token.Ledger
	clock  *testClock
	events []*Event
}

// newTestEnv creates a pool backed by a token ledger where every test account
// holds 1M tokens and has approved the pool without limit.
func newTestEnv(t *testing.T, cfg ...Config) *testEnv {
	c := DefaultConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	c.Pool = pool

	env := &testEnv{
		token: token.New(),
		clock: &testClock{},
	}
	for _, addr := range []edinar.Address{alice, bob, carol, funder} {
		require.NoError(t, env.token.Mint(addr, tokens(1_000_000)))
		require.NoError(t, env.token.Approve(addr, pool, tokens(1_000_000)))
	}

	ledger, err := New(c, token.NewCustody(env.token, pool),
		WithClock(env.clock.Now),
		WithEventSink(EventSinkFunc(func(events []*Event) {
			env.events = append(env.events, events...)
		})),
	)
	require.NoError(t, err)
	env.ledger = ledger
	return env
}

func (env *testEnv) eventKinds() []EventKind {
	kinds := make([]EventKind, 0, len(env.events))
	for _, ev := range env.events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

type TestFunc func(t *testing.T)

type TestSequence struct {
	env *testEnv

	funcs []TestFunc
	mu    sync.Mutex
}

func NewSequence(env *testEnv) *TestSequence {
	return &TestSequence{funcs: make([]TestFunc, 0), env: env}
}

func (st *TestSequence) AddFunc(f TestFunc) *TestSequence {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.funcs = append(st.funcs, f)
	return st
}

func (st *TestSequence) Stake(addr edinar.Address, amount *big.Int, referrer edinar.Address) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		if err := st.env.ledger.Stake(addr, amount, referrer); err != nil {
			t.Fatalf("failed to stake %s for %s: %v", amount, addr, err)
		}
		t.Logf("staked %s for %s", amount, addr)
	})
}

func (st *TestSequence) Unstake(addr edinar.Address, amount *big.Int) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		if err := st.env.ledger.Unstake(addr, amount); err != nil {
			t.Fatalf("failed to unstake %s for %s: %v", amount, addr, err)
		}
		t.Logf("unstaked %s for %s", amount, addr)
	})
}

func (st *TestSequence) Claim(addr edinar.Address, expected *big.Int) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		paid, err := st.env.ledger.ClaimRewards(addr)
		if err != nil {
			t.Fatalf("failed to claim for %s: %v", addr, err)
		}
		if expected != nil {
			assertAmount(t, expected, paid, "claim payout mismatch for %s", addr)
		}
		t.Logf("claimed %s for %s", paid, addr)
	})
}

func (st *TestSequence) Fund(amount *big.Int) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		if err := st.env.ledger.FundRewards(funder, amount); err != nil {
			t.Fatalf("failed to fund %s: %v", amount, err)
		}
	})
}

func (st *TestSequence) Advance(seconds uint64) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		st.env.clock.Advance(seconds)
	})
}

func (st *TestSequence) Run(t *testing.T) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, f := range st.funcs {
		f(t)
	}
}

type StakerAssertions struct {
	ledger *Ledger
	addr   edinar.Address

	staked          *big.Int
	pending         *big.Int
	referralCount   *uint64
	referralRewards *big.Int
	referrer        *edinar.Address
}

func AssertStaker(ledger *Ledger, addr edinar.Address) *StakerAssertions {
	return &StakerAssertions{ledger: ledger, addr: addr}
}

func (sa *StakerAssertions) Staked(expected *big.Int) *StakerAssertions {
	sa.staked = expected
	return sa
}

func (sa *StakerAssertions) Pending(expected *big.Int) *StakerAssertions {
	sa.pending = expected
	return sa
}

func (sa *StakerAssertions) ReferralCount(expected uint64) *StakerAssertions {
	sa.referralCount = &expected
	return sa
}

func (sa *StakerAssertions) ReferralRewards(expected *big.Int) *StakerAssertions {
	sa.referralRewards = expected
	return sa
}

func (sa *StakerAssertions) Referrer(expected edinar.Address) *StakerAssertions {
	sa.referrer = &expected
	return sa
}

func (sa *StakerAssertions) Assert(t *testing.T) {
	t.Helper()

	if sa.staked != nil {
		assertAmount(t, sa.staked, sa.ledger.StakedBalance(sa.addr), "staker %s principal mismatch", sa.addr)
	}
	if sa.pending != nil {
		assertAmount(t, sa.pending, sa.ledger.PendingRewards(sa.addr), "staker %s pending mismatch", sa.addr)
	}
	if sa.referralCount != nil {
		assert.Equal(t, *sa.referralCount, sa.ledger.ReferralCount(sa.addr), "staker %s referral count mismatch", sa.addr)
	}
	if sa.referralRewards != nil {
		assertAmount(t, sa.referralRewards, sa.ledger.ReferralRewards(sa.addr), "staker %s referral rewards mismatch", sa.addr)
	}
	if sa.referrer != nil {
		rec, ok := sa.ledger.Staker(sa.addr)
		require.True(t, ok, "staker %s has no record", sa.addr)
		assert.Equal(t, *sa.referrer, rec.Referrer, "staker %s referrer mismatch", sa.addr)
	}
}

// checkInvariants verifies the pool aggregates against the records.
func checkInvariants(t *testing.T, l *Ledger) {
	t.Helper()

	l.lock.RLock()
	defer l.lock.RUnlock()

	total := new(big.Int)
	unclaimed := new(big.Int)
	var active uint64
	for addr, rec := range l.stakers {
		require.GreaterOrEqual(t, rec.Principal.Sign(), 0, "negative principal for %s", addr)
		require.GreaterOrEqual(t, rec.Unclaimed.Sign(), 0, "negative unclaimed for %s", addr)
		total.Add(total, rec.Principal)
		unclaimed.Add(unclaimed, rec.Unclaimed)
		if rec.IsActive() {
			active++
		}
	}
	require.Equal(t, total.String(), l.pool.TotalStaked.String(), "total staked mismatch")
	require.Equal(t, unclaimed.String(), l.pool.TotalUnclaimed.String(), "total unclaimed mismatch")
	require.Equal(t, active, l.pool.ActiveStakers, "active stakers mismatch")
}
