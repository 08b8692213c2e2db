// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/kv"
)

// key layout inside the token bucket:
//
//	'b' + address            -> balance
//	'a' + owner + spender    -> allowance
//	's'                      -> total supply
//
// values are big-endian minimal bytes of the amount.
const (
	balancePrefix   = 'b'
	allowancePrefix = 'a'
	supplyPrefix    = 's'
)

func balanceKey(addr edinar.Address) []byte {
	return append([]byte{balancePrefix}, addr.Bytes()...)
}

func allowanceStoreKey(k allowanceKey) []byte {
	key := make([]byte, 0, 1+2*edinar.AddressLength)
	key = append(key, allowancePrefix)
	key = append(key, k.owner.Bytes()...)
	return append(key, k.spender.Bytes()...)
}

// Load reads the ledger persisted in store.
func Load(store kv.Store) (*Ledger, error) {
	l := New()

	iter := store.Iterate(kv.Range{})
	defer iter.Release()

	for iter.Next() {
		key := iter.Key()
		if len(key) == 0 {
			continue
		}
		v := new(uint256.Int).SetBytes(iter.Value())
		switch key[0] {
		case balancePrefix:
			if len(key) != 1+edinar.AddressLength {
				return nil, errors.Errorf("malformed balance key %x", key)
			}
			l.balances[edinar.BytesToAddress(key[1:])] = v
		case allowancePrefix:
			if len(key) != 1+2*edinar.AddressLength {
				return nil, errors.Errorf("malformed allowance key %x", key)
			}
			l.allowances[allowanceKey{
				owner:   edinar.BytesToAddress(key[1 : 1+edinar.AddressLength]),
				spender: edinar.BytesToAddress(key[1+edinar.AddressLength:]),
			}] = v
		case supplyPrefix:
			l.supply = v
		}
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "iterate token store")
	}
	return l, nil
}

// Flush writes entries changed since the last flush. Zero values are deleted.
func (l *Ledger) Flush(putter kv.Putter) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	for addr := range l.dirtyBalances {
		if err := putAmount(putter, balanceKey(addr), l.balances[addr]); err != nil {
			return errors.Wrap(err, "flush balance")
		}
	}
	for k := range l.dirtyAllowances {
		if err := putAmount(putter, allowanceStoreKey(k), l.allowances[k]); err != nil {
			return errors.Wrap(err, "flush allowance")
		}
	}
	if err := putter.Put([]byte{supplyPrefix}, l.supply.Bytes()); err != nil {
		return errors.Wrap(err, "flush supply")
	}

	clear(l.dirtyBalances)
	clear(l.dirtyAllowances)
	return nil
}

func putAmount(putter kv.Putter, key []byte, v *uint256.Int) error {
	if v == nil || v.IsZero() {
		return putter.Delete(key)
	}
	return putter.Put(key, v.Bytes())
}
