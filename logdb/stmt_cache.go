// Copyright (c) 2020 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"database/sql"
	"sync"

	"github.com/pkg/errors"
)

// stmtCache keeps prepared statements by query text. Filter queries vary only
// by which conditions are present, so the set of distinct queries stays small.
type stmtCache struct {
	db    *sql.DB
	lock  sync.Mutex
	stmts map[string]*sql.Stmt
}

func newStmtCache(db *sql.DB) *stmtCache {
	return &stmtCache{db: db, stmts: make(map[string]*sql.Stmt)}
}

func (sc *stmtCache) Prepare(query string) (*sql.Stmt, error) {
	sc.lock.Lock()
	defer sc.lock.Unlock()

	if stmt, ok := sc.stmts[query]; ok {
		return stmt, nil
	}
	stmt, err := sc.db.Prepare(query)
	if err != nil {
		return nil, errors.Wrap(err, "prepare statement")
	}
	sc.stmts[query] = stmt
	return stmt, nil
}

func (sc *stmtCache) Len() int {
	sc.lock.Lock()
	defer sc.lock.Unlock()

	return len(sc.stmts)
}

func (sc *stmtCache) Clear() {
	sc.lock.Lock()
	defer sc.lock.Unlock()

	for query, stmt := range sc.stmts {
		_ = stmt.Close()
		delete(sc.stmts, query)
	}
}
