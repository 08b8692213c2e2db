// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/edinar/staking/kv"
	"github.com/edinar/staking/log"
	"github.com/edinar/staking/logdb"
	"github.com/edinar/staking/lvldb"
	"github.com/edinar/staking/staking"
	"github.com/edinar/staking/token"
)

var logger = log.WithContext("pkg", "cmd")

const (
	tokenBucket   = kv.Bucket("t")
	stakingBucket = kv.Bucket("s")
)

// pool bundles the databases and ledgers a command works on.
type pool struct {
	cfg    *config
	db     *lvldb.LevelDB
	logDB  *logdb.LogDB
	token  *token.Ledger
	ledger *staking.Ledger
	events []*staking.Event
}

func openPool(ctx *cli.Context) (*pool, error) {
	cfg := getConfig(ctx)
	if cfg.DataDir == "" {
		return nil, errors.Errorf("unable to infer default data dir, use -%s to specify one", dataDirFlag.Name)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "create data dir at '%v'", cfg.DataDir)
	}

	p := &pool{cfg: cfg}
	if err := p.open(ctx); err != nil {
		p.close()
		return nil, err
	}
	return p, nil
}

func (p *pool) open(ctx *cli.Context) (err error) {
	dir := filepath.Join(p.cfg.DataDir, "ledger.db")
	if p.db, err = lvldb.New(dir, lvldb.Options{}); err != nil {
		return errors.Wrapf(err, "open ledger database at '%v'", dir)
	}
	dir = filepath.Join(p.cfg.DataDir, "activity.db")
	if p.logDB, err = logdb.New(dir); err != nil {
		return errors.Wrapf(err, "open activity database at '%v'", dir)
	}

	if p.token, err = token.Load(tokenBucket.NewStore(p.db)); err != nil {
		return errors.Wrap(err, "load token ledger")
	}

	opts := []staking.Option{
		staking.WithEventSink(staking.EventSinkFunc(func(events []*staking.Event) {
			p.events = append(p.events, events...)
		})),
	}
	if ctx.GlobalIsSet(nowFlag.Name) {
		now := ctx.GlobalUint64(nowFlag.Name)
		opts = append(opts, staking.WithClock(func() uint64 { return now }))
	}
	custody := token.NewCustody(p.token, p.cfg.Staking.Pool)
	if p.ledger, err = staking.Load(stakingBucket.NewStore(p.db), p.cfg.Staking, custody, opts...); err != nil {
		return errors.Wrap(err, "load staking ledger")
	}
	return nil
}

// commit writes both ledgers in one batch, then records the activity.
func (p *pool) commit(ctx context.Context) error {
	bulk := p.db.Bulk()
	if err := p.token.Flush(tokenBucket.NewPutter(bulk)); err != nil {
		return err
	}
	if err := p.ledger.Flush(stakingBucket.NewPutter(bulk)); err != nil {
		return err
	}
	if err := bulk.Write(); err != nil {
		return errors.Wrap(err, "write ledger database")
	}

	if err := p.logDB.Insert(ctx, p.events); err != nil {
		return errors.Wrap(err, "record activity")
	}
	logger.Debug("committed", "events", len(p.events))
	p.events = nil
	return nil
}

func (p *pool) close() {
	if p.logDB != nil {
		if err := p.logDB.Close(); err != nil {
			logger.Warn("failed to close activity database", "err", err)
		}
	}
	if p.db != nil {
		if err := p.db.Close(); err != nil {
			logger.Warn("failed to close ledger database", "err", err)
		}
	}
}

// withPool runs fn on an opened pool, commits when fn mutated state and
// prints its result as JSON.
func withPool(ctx *cli.Context, mutates bool, fn func(p *pool) (any, error)) error {
	p, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer p.close()

	result, err := fn(p)
	if err != nil {
		return err
	}
	if mutates {
		if err := p.commit(context.Background()); err != nil {
			return err
		}
	}
	return writeJSON(ctx.App.Writer, result)
}
