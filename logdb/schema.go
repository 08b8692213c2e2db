// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

// create a table for pool activity
const activityTableSchema = `CREATE TABLE IF NOT EXISTS activity (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT NOT NULL,
	account BLOB(20) NOT NULL,
	counterparty BLOB(20),
	amount BLOB NOT NULL,
	time INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS activity_account_idx ON activity(account);
CREATE INDEX IF NOT EXISTS activity_time_idx ON activity(time);
`
