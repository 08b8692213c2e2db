// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token implements an in-process fungible token ledger with ERC20
// semantics. It stands in for the external EDINAR token contract.
package token

import (
	"errors"
	"math/big"
	"sync"

	"github.com/holiman/uint256"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/log"
	"github.com/edinar/staking/metrics"
)

var (
	logger         = log.WithContext("pkg", "token")
	metricTransfer = metrics.LazyLoadCounter("token_transfer_count")
)

var (
	ErrInsufficientBalance   = errors.New("token: transfer amount exceeds balance")
	ErrInsufficientAllowance = errors.New("token: insufficient allowance")
	ErrOverflow              = errors.New("token: amount overflows 256 bits")
	ErrNegativeAmount        = errors.New("token: negative amount")
)

type allowanceKey struct {
	owner   edinar.Address
	spender edinar.Address
}

// Ledger holds balances, allowances and the total supply.
// It is safe for concurrent use.
type Ledger struct {
	lock       sync.RWMutex
	balances   map[edinar.Address]*uint256.Int
	allowances map[allowanceKey]*uint256.Int
	supply     *uint256.Int

	dirtyBalances   map[edinar.Address]struct{}
	dirtyAllowances map[allowanceKey]struct{}
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		balances:        make(map[edinar.Address]*uint256.Int),
		allowances:      make(map[allowanceKey]*uint256.Int),
		supply:          new(uint256.Int),
		dirtyBalances:   make(map[edinar.Address]struct{}),
		dirtyAllowances: make(map[allowanceKey]struct{}),
	}
}

func toUint256(amount *big.Int) (*uint256.Int, error) {
	if amount == nil {
		return new(uint256.Int), nil
	}
	if amount.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	v, overflow := uint256.FromBig(amount)
	if overflow {
		return nil, ErrOverflow
	}
	return v, nil
}

func (l *Ledger) balance(addr edinar.Address) *uint256.Int {
	if b, ok := l.balances[addr]; ok {
		return b
	}
	return new(uint256.Int)
}

func (l *Ledger) allowance(owner, spender edinar.Address) *uint256.Int {
	if a, ok := l.allowances[allowanceKey{owner, spender}]; ok {
		return a
	}
	return new(uint256.Int)
}

func (l *Ledger) setBalance(addr edinar.Address, v *uint256.Int) {
	l.balances[addr] = v
	l.dirtyBalances[addr] = struct{}{}
}

func (l *Ledger) setAllowance(owner, spender edinar.Address, v *uint256.Int) {
	k := allowanceKey{owner, spender}
	l.allowances[k] = v
	l.dirtyAllowances[k] = struct{}{}
}

// BalanceOf returns the balance of addr.
func (l *Ledger) BalanceOf(addr edinar.Address) *big.Int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.balance(addr).ToBig()
}

// Allowance returns how much spender may still move out of owner's balance.
func (l *Ledger) Allowance(owner, spender edinar.Address) *big.Int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.allowance(owner, spender).ToBig()
}

// TotalSupply returns the amount minted so far.
func (l *Ledger) TotalSupply() *big.Int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.supply.ToBig()
}

// Mint creates amount tokens on addr.
func (l *Ledger) Mint(addr edinar.Address, amount *big.Int) error {
	v, err := toUint256(amount)
	if err != nil {
		return err
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	supply, overflow := new(uint256.Int).AddOverflow(l.supply, v)
	if overflow {
		return ErrOverflow
	}
	// balance <= supply, so it cannot overflow once supply did not
	bal := new(uint256.Int).Add(l.balance(addr), v)

	l.supply = supply
	l.setBalance(addr, bal)
	logger.Debug("minted", "to", addr, "amount", v)
	return nil
}

// Approve sets spender's allowance over owner's balance, replacing any previous value.
func (l *Ledger) Approve(owner, spender edinar.Address, amount *big.Int) error {
	v, err := toUint256(amount)
	if err != nil {
		return err
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	l.setAllowance(owner, spender, v)
	return nil
}

// Transfer moves amount from one balance to another.
func (l *Ledger) Transfer(from, to edinar.Address, amount *big.Int) error {
	v, err := toUint256(amount)
	if err != nil {
		return err
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	return l.transfer(from, to, v)
}

// TransferFrom moves amount from owner to recipient, consuming spender's allowance.
func (l *Ledger) TransferFrom(spender, owner, to edinar.Address, amount *big.Int) error {
	v, err := toUint256(amount)
	if err != nil {
		return err
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	allowed := l.allowance(owner, spender)
	if allowed.Lt(v) {
		return ErrInsufficientAllowance
	}
	if err := l.transfer(owner, to, v); err != nil {
		return err
	}
	l.setAllowance(owner, spender, new(uint256.Int).Sub(allowed, v))
	return nil
}

func (l *Ledger) transfer(from, to edinar.Address, v *uint256.Int) error {
	fromBal := l.balance(from)
	if fromBal.Lt(v) {
		return ErrInsufficientBalance
	}
	if v.IsZero() || from == to {
		return nil
	}
	l.setBalance(from, new(uint256.Int).Sub(fromBal, v))
	l.setBalance(to, new(uint256.Int).Add(l.balance(to), v))
	metricTransfer().Add(1)
	return nil
}
