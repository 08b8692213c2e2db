// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"context"
	"database/sql"
	"math"
	"math/big"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/staking"
)

const insertActivityQuery = "INSERT INTO activity(kind, account, counterparty, amount, time) VALUES(?, ?, ?, ?, ?)"

type LogDB struct {
	path          string
	db            *sql.DB
	stmtCache     *stmtCache
	driverVersion string
}

// New create or open log db at given path.
func New(path string) (*LogDB, error) {
	return open(path, path+"?_journal_mode=WAL&_busy_timeout=5000")
}

// NewMem create a log db in ram.
func NewMem() (*LogDB, error) {
	return open(":memory:", ":memory:")
}

func open(path, dsn string) (logDB *LogDB, err error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	defer func() {
		if logDB == nil {
			db.Close()
		}
	}()

	// a single connection serializes writers and keeps an in-memory db alive
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(activityTableSchema); err != nil {
		return nil, errors.Wrap(err, "create activity table")
	}

	driverVer, _, _ := sqlite3.Version()
	return &LogDB{
		path,
		db,
		newStmtCache(db),
		driverVer,
	}, nil
}

// Close close the log db.
func (db *LogDB) Close() error {
	db.stmtCache.Clear()
	return db.db.Close()
}

func (db *LogDB) Path() string {
	return db.path
}

// DriverVersion returns the version of the linked sqlite library.
func (db *LogDB) DriverVersion() string {
	return db.driverVersion
}

// Insert stores events in one transaction, in the given order.
func (db *LogDB) Insert(ctx context.Context, events []*staking.Event) error {
	if len(events) == 0 {
		return nil
	}
	// prepared outside the tx, which holds the only connection
	prepared, err := db.stmtCache.Prepare(insertActivityQuery)
	if err != nil {
		return err
	}
	return db.execInTx(ctx, func(tx *sql.Tx) error {
		stmt := tx.StmtContext(ctx, prepared)
		defer stmt.Close()

		for _, ev := range events {
			var counterparty []byte
			if !ev.Counterparty.IsZero() {
				counterparty = ev.Counterparty.Bytes()
			}
			amount := []byte{}
			if ev.Amount != nil {
				amount = ev.Amount.Bytes()
			}
			if _, err := stmt.ExecContext(ctx,
				string(ev.Kind),
				ev.Account.Bytes(),
				counterparty,
				amount,
				ev.Time,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *LogDB) execInTx(ctx context.Context, proc func(*sql.Tx) error) (err error) {
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := proc(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Filter queries activities.
func (db *LogDB) Filter(ctx context.Context, filter *Filter) ([]*Activity, error) {
	if filter == nil {
		return db.queryActivities(ctx, "SELECT seq, kind, account, counterparty, amount, time FROM activity ORDER BY seq ASC")
	}
	metricsHandleFilter(filter)

	var (
		args []any
		sb   strings.Builder
	)
	sb.WriteString("SELECT seq, kind, account, counterparty, amount, time FROM activity WHERE 1")

	if filter.Account != nil {
		sb.WriteString(" AND (account = ? OR counterparty = ?)")
		args = append(args, filter.Account.Bytes(), filter.Account.Bytes())
	}
	if len(filter.Kinds) > 0 {
		sb.WriteString(" AND kind IN (")
		for i, kind := range filter.Kinds {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString("?")
			args = append(args, string(kind))
		}
		sb.WriteString(")")
	}
	if filter.Range != nil {
		if filter.Range.To < filter.Range.From {
			return nil, nil
		}
		sb.WriteString(" AND time >= ? AND time <= ?")
		args = append(args, min(filter.Range.From, math.MaxInt64), min(filter.Range.To, math.MaxInt64))
	}

	if filter.Order == DESC {
		sb.WriteString(" ORDER BY seq DESC")
	} else {
		sb.WriteString(" ORDER BY seq ASC")
	}

	if filter.Options != nil {
		sb.WriteString(" LIMIT ?, ?")
		args = append(args, filter.Options.Offset, filter.Options.Limit)
	}
	return db.queryActivities(ctx, sb.String(), args...)
}

// Count returns the number of stored activities.
func (db *LogDB) Count(ctx context.Context) (uint64, error) {
	stmt, err := db.stmtCache.Prepare("SELECT COUNT(*) FROM activity")
	if err != nil {
		return 0, err
	}
	var n uint64
	if err := stmt.QueryRowContext(ctx).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (db *LogDB) queryActivities(ctx context.Context, query string, args ...any) ([]*Activity, error) {
	stmt, err := db.stmtCache.Prepare(query)
	if err != nil {
		return nil, err
	}
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*Activity
	for rows.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		var (
			seq          uint64
			kind         string
			account      []byte
			counterparty []byte
			amount       []byte
			time         uint64
		)
		if err := rows.Scan(
			&seq,
			&kind,
			&account,
			&counterparty,
			&amount,
			&time,
		); err != nil {
			return nil, err
		}
		activities = append(activities, &Activity{
			Seq:          seq,
			Kind:         staking.EventKind(kind),
			Account:      edinar.BytesToAddress(account),
			Counterparty: edinar.BytesToAddress(counterparty),
			Amount:       new(big.Int).SetBytes(amount),
			Time:         time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return activities, nil
}
