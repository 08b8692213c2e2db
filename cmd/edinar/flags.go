// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/edinar/staking/log"
)

var (
	dataDirFlag = cli.StringFlag{
		Name:  "data-dir",
		Value: defaultDataDir(),
		Usage: "directory for the ledger and activity databases",
	}
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to a YAML config file; explicit flags take precedence",
	}
	verbosityFlag = cli.Uint64Flag{
		Name:  "verbosity",
		Value: log.LegacyLevelWarn,
		Usage: "log verbosity (0-5)",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:  "json-logs",
		Usage: "output logs in JSON format",
	}
	nowFlag = cli.Uint64Flag{
		Name:  "now",
		Usage: "unix time in seconds to use as the current time (default: system clock)",
	}
	metricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "print metrics in Prometheus text format after the command",
	}

	referrerFlag = cli.StringFlag{
		Name:  "referrer",
		Usage: "address credited for referring the staker, only recorded on the first stake",
	}

	kindFlag = cli.StringSliceFlag{
		Name:  "kind",
		Usage: "only list activity of this kind (repeatable)",
	}
	fromFlag = cli.Uint64Flag{
		Name:  "from",
		Usage: "only list activity at or after this unix time",
	}
	toFlag = cli.Uint64Flag{
		Name:  "to",
		Usage: "only list activity at or before this unix time",
	}
	offsetFlag = cli.Uint64Flag{
		Name:  "offset",
		Usage: "number of entries to skip",
	}
	limitFlag = cli.Uint64Flag{
		Name:  "limit",
		Value: 100,
		Usage: "maximum number of entries to list",
	}
	descFlag = cli.BoolFlag{
		Name:  "desc",
		Usage: "list newest first",
	}
)
