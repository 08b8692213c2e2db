// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/log"
)

func initLogger(verbosity int, jsonLogs bool) {
	var level slog.LevelVar
	level.Set(log.FromLegacyLevel(verbosity))

	var handler slog.Handler
	if jsonLogs {
		handler = log.JSONHandlerWithLevel(os.Stderr, &level)
	} else {
		fd := os.Stderr.Fd()
		useColor := (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("TERM") != "dumb"
		handler = log.NewTerminalHandlerWithLevel(os.Stderr, &level, useColor)
	}
	log.SetDefault(log.NewLogger(handler))
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".edinar")
	}
	return ""
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseAddressArg(ctx *cli.Context, i int) (edinar.Address, error) {
	arg := ctx.Args().Get(i)
	if arg == "" {
		return edinar.Address{}, errors.Errorf("missing address argument (usage: %v %v)", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	addr, err := edinar.ParseAddress(arg)
	if err != nil {
		return edinar.Address{}, errors.Wrapf(err, "invalid address %q", arg)
	}
	return *addr, nil
}

func parseAmountArg(ctx *cli.Context, i int) (*big.Int, error) {
	arg := ctx.Args().Get(i)
	if arg == "" {
		return nil, errors.Errorf("missing amount argument (usage: %v %v)", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	amount, err := edinar.ParseUnits(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid amount %q", arg)
	}
	return amount, nil
}

func parseAddressAndAmount(ctx *cli.Context) (edinar.Address, *big.Int, error) {
	addr, err := parseAddressArg(ctx, 0)
	if err != nil {
		return edinar.Address{}, nil, err
	}
	amount, err := parseAmountArg(ctx, 1)
	if err != nil {
		return edinar.Address{}, nil, err
	}
	return addr, amount, nil
}
