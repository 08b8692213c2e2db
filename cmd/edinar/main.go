// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/edinar/staking/metrics"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

const configMetaKey = "config"

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = fullVersion()
	app.Name = "edinar"
	app.Usage = "EDINAR staking pool ledger"
	app.Flags = []cli.Flag{
		dataDirFlag,
		configFlag,
		verbosityFlag,
		jsonLogsFlag,
		nowFlag,
		metricsFlag,
	}
	app.Before = beforeAction
	app.After = afterAction
	app.Commands = []cli.Command{
		{
			Name:      "mint",
			Usage:     "mint tokens to an account (dev faucet)",
			ArgsUsage: "<address> <amount>",
			Action:    mintAction,
		},
		{
			Name:      "approve",
			Usage:     "allow the pool to draw tokens from an account",
			ArgsUsage: "<address> <amount>",
			Action:    approveAction,
		},
		{
			Name:      "fund",
			Usage:     "move tokens from an account into the rewards reserve",
			ArgsUsage: "<address> <amount>",
			Action:    fundAction,
		},
		{
			Name:      "stake",
			Usage:     "stake tokens",
			ArgsUsage: "<address> <amount>",
			Flags:     []cli.Flag{referrerFlag},
			Action:    stakeAction,
		},
		{
			Name:      "unstake",
			Usage:     "withdraw staked tokens",
			ArgsUsage: "<address> <amount>",
			Action:    unstakeAction,
		},
		{
			Name:      "claim",
			Usage:     "pay out all unclaimed rewards",
			ArgsUsage: "<address>",
			Action:    claimAction,
		},
		{
			Name:      "balance",
			Usage:     "show token balance, stake and rewards of an account",
			ArgsUsage: "<address>",
			Action:    balanceAction,
		},
		{
			Name:   "stats",
			Usage:  "show pool statistics",
			Action: statsAction,
		},
		{
			Name:      "referrals",
			Usage:     "show referral count, rewards and referees of an account",
			ArgsUsage: "<address>",
			Action:    referralsAction,
		},
		{
			Name:      "history",
			Usage:     "list pool activity",
			ArgsUsage: "[address]",
			Flags: []cli.Flag{
				kindFlag,
				fromFlag,
				toFlag,
				offsetFlag,
				limitFlag,
				descFlag,
			},
			Action: historyAction,
		},
		{
			Name:   "token-info",
			Usage:  "show token metadata and supply",
			Action: tokenInfoAction,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		os.Exit(1)
	}
}

func beforeAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx.String(configFlag.Name))
	if err != nil {
		return err
	}
	cfg.applyFlags(ctx)
	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]any)
	}
	ctx.App.Metadata[configMetaKey] = cfg

	initLogger(cfg.Verbosity, cfg.JSONLogs)
	if ctx.Bool(metricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}
	return nil
}

func afterAction(ctx *cli.Context) error {
	if !ctx.Bool(metricsFlag.Name) {
		return nil
	}
	return metrics.WriteText(ctx.App.Writer)
}

func getConfig(ctx *cli.Context) *config {
	return ctx.App.Metadata[configMetaKey].(*config)
}
