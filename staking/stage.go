// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/edinar/staking/edinar"
)

// stage collects the mutations of one operation on copies of the touched
// records. Nothing is visible to the ledger until commit, so an operation
// that fails midway simply drops its stage.
type stage struct {
	l       *Ledger
	now     uint64
	pool    *PoolState
	records map[edinar.Address]*StakerRecord
	events  []*Event
}

// begin must be called with the write lock held.
func (l *Ledger) begin() *stage {
	return &stage{
		l:       l,
		now:     l.now(),
		pool:    l.pool.clone(),
		records: make(map[edinar.Address]*StakerRecord),
	}
}

// record returns the staged copy of addr's record, creating one if needed.
func (s *stage) record(addr edinar.Address) *StakerRecord {
	if rec, ok := s.records[addr]; ok {
		return rec
	}
	var rec *StakerRecord
	if cur, ok := s.l.stakers[addr]; ok {
		rec = cur.clone()
	} else {
		rec = newStakerRecord()
	}
	s.records[addr] = rec
	return rec
}

// settle accrues addr's reward up to now, credits the referrer's bonus and
// advances the checkpoint.
func (s *stage) settle(addr edinar.Address) *StakerRecord {
	rec := s.record(addr)

	elapsed := elapsedSince(rec.LastUpdateTime, s.now)
	if elapsed == 0 {
		// a backwards clock never moves the checkpoint back
		return rec
	}

	reward, rem := accrue(rec.Principal, rec.AccrualRemainder, s.pool.APYBasisPoints, elapsed)
	rec.AccrualRemainder = rem
	rec.LastUpdateTime = s.now

	if reward.Sign() == 0 {
		return rec
	}
	rec.Unclaimed.Add(rec.Unclaimed, reward)
	s.pool.TotalUnclaimed.Add(s.pool.TotalUnclaimed, reward)

	if rec.Referrer.IsZero() || s.pool.ReferralBonusBasisPoints == 0 {
		return rec
	}
	bonus, bonusRem := referralBonus(reward, rec.ReferralRemainder, s.pool.ReferralBonusBasisPoints)
	rec.ReferralRemainder = bonusRem
	if bonus.Sign() > 0 {
		ref := s.record(rec.Referrer)
		ref.Unclaimed.Add(ref.Unclaimed, bonus)
		ref.ReferralRewards.Add(ref.ReferralRewards, bonus)
		s.pool.TotalUnclaimed.Add(s.pool.TotalUnclaimed, bonus)
		s.emit(EventReferralCredited, rec.Referrer, addr, bonus)
	}
	return rec
}

func (s *stage) emit(kind EventKind, account, counterparty edinar.Address, amount *big.Int) {
	ev := &Event{
		Kind:         kind,
		Account:      account,
		Counterparty: counterparty,
		Amount:       new(big.Int),
		Time:         s.now,
	}
	if amount != nil {
		ev.Amount.Set(amount)
	}
	s.events = append(s.events, ev)
}

// commit publishes the staged state. It cannot fail.
func (s *stage) commit() {
	l := s.l
	for addr, rec := range s.records {
		l.stakers[addr] = rec
		l.dirty[addr] = struct{}{}
	}
	l.pool = s.pool
	observePool(s.pool)

	if l.sink != nil && len(s.events) > 0 {
		l.sink.Publish(s.events)
	}
}
