// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"math/big"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/staking"
)

// Activity is a stored staking.Event.
type Activity struct {
	Seq          uint64
	Kind         staking.EventKind
	Account      edinar.Address
	Counterparty edinar.Address // zero when none
	Amount       *big.Int
	Time         uint64
}

type Order string

const (
	ASC  Order = "asc"
	DESC Order = "desc"
)

// Range is an inclusive time range in unix seconds. A range with To below From
// matches nothing.
type Range struct {
	From uint64
	To   uint64
}

type Options struct {
	Offset uint64
	Limit  uint64
}

// Filter selects activities. Activities match when they involve Account either
// as account or counterparty.
type Filter struct {
	Account *edinar.Address
	Kinds   []staking.EventKind
	Range   *Range
	Order   Order
	Options *Options
}
