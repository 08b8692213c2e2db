// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/kv"
)

var (
	poolKey      = []byte("p")
	stakerPrefix = byte('s')
)

func stakerKey(addr edinar.Address) []byte {
	return append([]byte{stakerPrefix}, addr.Bytes()...)
}

// Load restores a pool from store. An empty store yields a new pool built
// from cfg. For an existing pool the persisted rate wins over cfg, since the
// rate is fixed for the pool's lifetime.
func Load(store kv.Store, cfg Config, token TokenLedger, opts ...Option) (*Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := store.Get(poolKey)
	if err != nil {
		if store.IsNotFound(err) {
			return New(cfg, token, opts...)
		}
		return nil, errors.Wrap(err, "get pool state")
	}

	var pool PoolState
	if err := rlp.DecodeBytes(data, &pool); err != nil {
		return nil, errors.Wrap(err, "decode pool state")
	}
	if pool.APYBasisPoints != cfg.APYBasisPoints || pool.ReferralBonusBasisPoints != cfg.ReferralBonusBasisPoints {
		logger.Warn("configured rates differ from the pool, keeping the pool's",
			"apy", pool.APYBasisPoints,
			"referral-bonus", pool.ReferralBonusBasisPoints,
		)
	}

	l := newLedger(&pool, token, opts...)

	iter := store.Iterate(kv.Range{Start: []byte{stakerPrefix}, Limit: []byte{stakerPrefix + 1}})
	defer iter.Release()
	for iter.Next() {
		key := iter.Key()
		if len(key) != 1+edinar.AddressLength {
			return nil, errors.Errorf("malformed staker key %x", key)
		}
		rec := newStakerRecord()
		if err := rlp.DecodeBytes(iter.Value(), rec); err != nil {
			return nil, errors.Wrapf(err, "decode staker %x", key[1:])
		}
		l.stakers[edinar.BytesToAddress(key[1:])] = rec
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "iterate stakers")
	}

	observePool(&pool)
	logger.Debug("pool loaded", "stakers", len(l.stakers), "tvl", pool.TotalStaked)
	return l, nil
}

// Flush writes the records changed since the last flush and the pool state.
// Pass a kv.Bulk to have it written atomically together with other state.
func (l *Ledger) Flush(putter kv.Putter) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	for addr := range l.dirty {
		data, err := rlp.EncodeToBytes(l.stakers[addr])
		if err != nil {
			return errors.Wrapf(err, "encode staker %v", addr)
		}
		if err := putter.Put(stakerKey(addr), data); err != nil {
			return errors.Wrap(err, "put staker")
		}
	}

	data, err := rlp.EncodeToBytes(l.pool)
	if err != nil {
		return errors.Wrap(err, "encode pool state")
	}
	if err := putter.Put(poolKey, data); err != nil {
		return errors.Wrap(err, "put pool state")
	}

	clear(l.dirty)
	return nil
}
