// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb_test

import (
	"context"
	"math"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/logdb"
	"github.com/edinar/staking/staking"
)

var (
	alice = edinar.BytesToAddress([]byte("alice"))
	bob   = edinar.BytesToAddress([]byte("bob"))
)

func newEvents() []*staking.Event {
	return []*staking.Event{
		{Kind: staking.EventReserveFunded, Account: bob, Amount: big.NewInt(100), Time: 10},
		{Kind: staking.EventStaked, Account: alice, Amount: big.NewInt(50), Time: 20},
		{Kind: staking.EventReferralRegistered, Account: alice, Counterparty: bob, Amount: new(big.Int), Time: 30},
		{Kind: staking.EventStaked, Account: bob, Counterparty: alice, Amount: big.NewInt(70), Time: 30},
		{Kind: staking.EventReferralCredited, Account: alice, Counterparty: bob, Amount: big.NewInt(3), Time: 40},
		{Kind: staking.EventRewardsClaimed, Account: bob, Amount: big.NewInt(0), Time: 50},
	}
}

func TestLogDB(t *testing.T) {
	db, err := logdb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.Insert(ctx, newEvents()))
	require.NoError(t, db.Insert(ctx, nil))

	n, err := db.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), n)

	all, err := db.Filter(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 6)
	for i, a := range all {
		assert.Equal(t, uint64(i+1), a.Seq)
	}
	assert.Equal(t, staking.EventReferralRegistered, all[2].Kind)
	assert.Equal(t, alice, all[2].Account)
	assert.Equal(t, bob, all[2].Counterparty)
	assert.True(t, all[0].Counterparty.IsZero())
	assert.Equal(t, "100", all[0].Amount.String())
	assert.Equal(t, 0, all[5].Amount.Sign())
}

func TestLogDB_Filter(t *testing.T) {
	db, err := logdb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.Insert(ctx, newEvents()))

	tests := []struct {
		name   string
		filter *logdb.Filter
		seqs   []uint64
	}{
		{"account or counterparty", &logdb.Filter{Account: &alice}, []uint64{2, 3, 4, 5}},
		{"kinds", &logdb.Filter{Kinds: []staking.EventKind{staking.EventStaked, staking.EventRewardsClaimed}}, []uint64{2, 4, 6}},
		{"range", &logdb.Filter{Range: &logdb.Range{From: 20, To: 30}}, []uint64{2, 3, 4}},
		{"open range", &logdb.Filter{Range: &logdb.Range{From: 40, To: math.MaxUint64}}, []uint64{5, 6}},
		{"inverted range", &logdb.Filter{Range: &logdb.Range{From: 40}}, nil},
		{"inverted range with account", &logdb.Filter{Account: &alice, Range: &logdb.Range{From: 30, To: 20}}, nil},
		{"desc with paging", &logdb.Filter{Order: logdb.DESC, Options: &logdb.Options{Offset: 1, Limit: 2}}, []uint64{5, 4}},
		{"combined", &logdb.Filter{Account: &bob, Kinds: []staking.EventKind{staking.EventStaked}}, []uint64{4}},
		{"no match", &logdb.Filter{Range: &logdb.Range{From: 100, To: 200}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.Filter(ctx, tt.filter)
			require.NoError(t, err)

			var seqs []uint64
			for _, a := range got {
				seqs = append(seqs, a.Seq)
			}
			assert.Equal(t, tt.seqs, seqs)
		})
	}
}

func TestLogDB_Persistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.db")
	ctx := context.Background()

	db, err := logdb.New(path)
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())
	assert.NotEmpty(t, db.DriverVersion())
	require.NoError(t, db.Insert(ctx, newEvents()[:2]))
	require.NoError(t, db.Close())

	db, err = logdb.New(path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Insert(ctx, newEvents()[2:3]))

	all, err := db.Filter(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, uint64(3), all[2].Seq)
}

func TestLogDB_ContextCanceled(t *testing.T) {
	db, err := logdb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, db.Insert(ctx, newEvents()))
}
