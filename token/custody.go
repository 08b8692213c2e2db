// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"math/big"

	"github.com/edinar/staking/edinar"
)

// Custody moves tokens in and out of the pool's balance on behalf of the
// staking ledger. Pulls rely on the payer having approved the pool.
type Custody struct {
	Ledger *Ledger
	Pool   edinar.Address
}

func NewCustody(ledger *Ledger, pool edinar.Address) *Custody {
	return &Custody{Ledger: ledger, Pool: pool}
}

func (c *Custody) Pull(from edinar.Address, amount *big.Int) error {
	return c.Ledger.TransferFrom(c.Pool, from, c.Pool, amount)
}

func (c *Custody) Push(to edinar.Address, amount *big.Int) error {
	return c.Ledger.Transfer(c.Pool, to, amount)
}
