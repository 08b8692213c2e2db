// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"bytes"
	"math/big"
	"slices"
	"sync"
	"time"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/log"
)

var logger = log.WithContext("pkg", "staking")

func SetLogger(l log.Logger) {
	logger = l
}

// TokenLedger moves tokens in and out of the pool's custody.
type TokenLedger interface {
	// Pull draws amount from a pre-authorized allowance of from.
	Pull(from edinar.Address, amount *big.Int) error
	// Push pays amount out of custody.
	Push(to edinar.Address, amount *big.Int) error
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the source of the current unix time in seconds.
func WithClock(now func() uint64) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithEventSink sets where the events of committed operations go.
func WithEventSink(sink EventSink) Option {
	return func(l *Ledger) {
		l.sink = sink
	}
}

// Ledger is the reward ledger of one staking pool.
// Mutating operations are serialized, queries run concurrently.
type Ledger struct {
	lock sync.RWMutex

	token TokenLedger
	now   func() uint64
	sink  EventSink

	pool    *PoolState
	stakers map[edinar.Address]*StakerRecord
	dirty   map[edinar.Address]struct{}
}

// New creates an empty pool with the rate taken from cfg.
func New(cfg Config, token TokenLedger, opts ...Option) (*Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newLedger(newPoolState(cfg), token, opts...), nil
}

func newLedger(pool *PoolState, token TokenLedger, opts ...Option) *Ledger {
	l := &Ledger{
		token:   token,
		now:     func() uint64 { return uint64(time.Now().Unix()) },
		pool:    pool,
		stakers: make(map[edinar.Address]*StakerRecord),
		dirty:   make(map[edinar.Address]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Stake locks amount from caller into the pool. A non-zero referrer is
// recorded on the caller's first stake only.
func (l *Ledger) Stake(caller edinar.Address, amount *big.Int, referrer edinar.Address) (err error) {
	defer func() { observeOp("stake", err) }()

	if !isPositive(amount) {
		return ErrInvalidAmount
	}
	if !referrer.IsZero() && referrer == caller {
		return ErrSelfReferral
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	s := l.begin()
	rec := s.settle(caller)

	if !rec.Staked {
		rec.Staked = true
		if !referrer.IsZero() {
			rec.Referrer = referrer
			s.record(referrer).ReferralCount++
			s.emit(EventReferralRegistered, referrer, caller, nil)
		}
	}

	if err := l.token.Pull(caller, amount); err != nil {
		return transferFailed(err)
	}
	metricTokenFlow().AddWithLabel(1, map[string]string{"direction": "in"})
	metricStakeAmount().Observe(wholeTokens(amount))

	wasActive := rec.IsActive()
	rec.Principal.Add(rec.Principal, amount)
	s.pool.TotalStaked.Add(s.pool.TotalStaked, amount)
	if !wasActive {
		s.pool.ActiveStakers++
	}
	s.emit(EventStaked, caller, rec.Referrer, amount)
	s.commit()

	logger.Debug("staked", "staker", caller, "amount", amount, "principal", rec.Principal)
	return nil
}

// Unstake returns amount of caller's principal. Unclaimed rewards are kept.
func (l *Ledger) Unstake(caller edinar.Address, amount *big.Int) (err error) {
	defer func() { observeOp("unstake", err) }()

	if !isPositive(amount) {
		return ErrInvalidAmount
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	if _, ok := l.stakers[caller]; !ok {
		return ErrInsufficientStake
	}

	s := l.begin()
	rec := s.settle(caller)
	if rec.Principal.Cmp(amount) < 0 {
		return ErrInsufficientStake
	}

	if err := l.token.Push(caller, amount); err != nil {
		return transferFailed(err)
	}
	metricTokenFlow().AddWithLabel(1, map[string]string{"direction": "out"})

	rec.Principal.Sub(rec.Principal, amount)
	s.pool.TotalStaked.Sub(s.pool.TotalStaked, amount)
	if !rec.IsActive() {
		s.pool.ActiveStakers--
	}
	s.emit(EventUnstaked, caller, edinar.Address{}, amount)
	s.commit()

	logger.Debug("unstaked", "staker", caller, "amount", amount, "principal", rec.Principal)
	return nil
}

// ClaimRewards pays caller's whole unclaimed reward out of the reserve and
// returns the amount paid. It is refused while the reserve does not cover the
// settled rewards of all stakers.
func (l *Ledger) ClaimRewards(caller edinar.Address) (paid *big.Int, err error) {
	defer func() { observeOp("claim", err) }()

	l.lock.Lock()
	defer l.lock.Unlock()

	if _, ok := l.stakers[caller]; !ok {
		return new(big.Int), nil
	}

	s := l.begin()
	rec := s.settle(caller)

	payout := new(big.Int).Set(rec.Unclaimed)
	// the reserve must cover every settled reward, not only this payout
	if s.pool.TotalUnclaimed.Cmp(s.pool.RewardsReserve) > 0 {
		logger.Warn("rewards reserve does not cover settled rewards",
			"staker", caller,
			"payout", payout,
			"unclaimed", s.pool.TotalUnclaimed,
			"reserve", s.pool.RewardsReserve,
		)
		return nil, ErrInsufficientReserve
	}

	if payout.Sign() > 0 {
		if err := l.token.Push(caller, payout); err != nil {
			return nil, transferFailed(err)
		}
		metricTokenFlow().AddWithLabel(1, map[string]string{"direction": "out"})
	}

	rec.Unclaimed.SetInt64(0)
	rec.Claimed.Add(rec.Claimed, payout)
	s.pool.RewardsReserve.Sub(s.pool.RewardsReserve, payout)
	s.pool.TotalUnclaimed.Sub(s.pool.TotalUnclaimed, payout)
	s.emit(EventRewardsClaimed, caller, edinar.Address{}, payout)
	s.commit()

	logger.Debug("rewards claimed", "staker", caller, "amount", payout)
	return payout, nil
}

// FundRewards moves amount from from into the rewards reserve.
func (l *Ledger) FundRewards(from edinar.Address, amount *big.Int) (err error) {
	defer func() { observeOp("fund", err) }()

	if !isPositive(amount) {
		return ErrInvalidAmount
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	if err := l.token.Pull(from, amount); err != nil {
		return transferFailed(err)
	}
	metricTokenFlow().AddWithLabel(1, map[string]string{"direction": "in"})

	s := l.begin()
	s.pool.RewardsReserve.Add(s.pool.RewardsReserve, amount)
	s.emit(EventReserveFunded, from, edinar.Address{}, amount)
	s.commit()

	logger.Info("rewards reserve funded", "from", from, "amount", amount, "reserve", s.pool.RewardsReserve)
	return nil
}

//
// Getters - no state change
//

// StakedBalance returns the principal of addr.
func (l *Ledger) StakedBalance(addr edinar.Address) *big.Int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	if rec, ok := l.stakers[addr]; ok {
		return new(big.Int).Set(rec.Principal)
	}
	return new(big.Int)
}

// PendingRewards returns what ClaimRewards would pay addr right now.
func (l *Ledger) PendingRewards(addr edinar.Address) *big.Int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	rec, ok := l.stakers[addr]
	if !ok {
		return new(big.Int)
	}
	reward, _ := accrue(rec.Principal, rec.AccrualRemainder, l.pool.APYBasisPoints, elapsedSince(rec.LastUpdateTime, l.now()))
	return reward.Add(reward, rec.Unclaimed)
}

// TotalValueLocked returns the sum of all principal.
func (l *Ledger) TotalValueLocked() *big.Int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return new(big.Int).Set(l.pool.TotalStaked)
}

// StakingAPY returns the pool rate in basis points, e.g. 200 for 2.00%.
func (l *Ledger) StakingAPY() uint64 {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.pool.APYBasisPoints
}

// ReferralBonus returns the referrer's share of referee rewards in basis points.
func (l *Ledger) ReferralBonus() uint64 {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.pool.ReferralBonusBasisPoints
}

// RewardRate returns the per second reward of one token, scaled by 1e18.
func (l *Ledger) RewardRate() *big.Int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return rewardRate(l.pool.APYBasisPoints)
}

// ActiveStakers returns the number of addresses with principal.
func (l *Ledger) ActiveStakers() uint64 {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.pool.ActiveStakers
}

// ReferralCount returns how many stakers named addr as referrer.
func (l *Ledger) ReferralCount(addr edinar.Address) uint64 {
	l.lock.RLock()
	defer l.lock.RUnlock()

	if rec, ok := l.stakers[addr]; ok {
		return rec.ReferralCount
	}
	return 0
}

// ReferralRewards returns the bonus credited to addr so far. Bonus on
// referee rewards that are not settled yet is not included.
func (l *Ledger) ReferralRewards(addr edinar.Address) *big.Int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	if rec, ok := l.stakers[addr]; ok {
		return new(big.Int).Set(rec.ReferralRewards)
	}
	return new(big.Int)
}

func (l *Ledger) Reserve() *big.Int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return new(big.Int).Set(l.pool.RewardsReserve)
}

// TotalUnclaimed returns the settled rewards owed to all stakers.
func (l *Ledger) TotalUnclaimed() *big.Int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return new(big.Int).Set(l.pool.TotalUnclaimed)
}

// ReserveShortfall returns how much settled reward the reserve cannot cover.
func (l *Ledger) ReserveShortfall() *big.Int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	diff := new(big.Int).Sub(l.pool.TotalUnclaimed, l.pool.RewardsReserve)
	if diff.Sign() < 0 {
		return diff.SetInt64(0)
	}
	return diff
}

// Staker returns a copy of the record of addr.
func (l *Ledger) Staker(addr edinar.Address) (*StakerRecord, bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	rec, ok := l.stakers[addr]
	if !ok {
		return nil, false
	}
	return rec.clone(), true
}

// Stakers lists the addresses that have a record, in byte order.
func (l *Ledger) Stakers() []edinar.Address {
	l.lock.RLock()
	defer l.lock.RUnlock()

	addrs := make([]edinar.Address, 0, len(l.stakers))
	for addr := range l.stakers {
		addrs = append(addrs, addr)
	}
	slices.SortFunc(addrs, func(a, b edinar.Address) int {
		return bytes.Compare(a[:], b[:])
	})
	return addrs
}

// Pool returns a copy of the pool aggregates.
func (l *Ledger) Pool() *PoolState {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.pool.clone()
}

func isPositive(amount *big.Int) bool {
	return amount != nil && amount.Sign() > 0
}
