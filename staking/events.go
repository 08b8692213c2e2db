// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/edinar/staking/edinar"
)

type EventKind string

const (
	EventStaked             EventKind = "staked"
	EventUnstaked           EventKind = "unstaked"
	EventRewardsClaimed     EventKind = "rewards-claimed"
	EventReserveFunded      EventKind = "reserve-funded"
	EventReferralRegistered EventKind = "referral-registered"
	EventReferralCredited   EventKind = "referral-credited"
)

// Event describes one effect of a committed operation.
// For referral events Account is the referrer and Counterparty the referee.
type Event struct {
	Kind         EventKind
	Account      edinar.Address
	Counterparty edinar.Address
	Amount       *big.Int
	Time         uint64
}

// EventSink receives the events of each committed operation, in order.
// It is called with the ledger lock held and must not call back into the ledger.
type EventSink interface {
	Publish(events []*Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(events []*Event)

func (f EventSinkFunc) Publish(events []*Event) { f(events) }
