// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/edinar/staking/log"
	"github.com/edinar/staking/staking"
)

type config struct {
	DataDir   string         `yaml:"data-dir"`
	Verbosity int            `yaml:"verbosity"`
	JSONLogs  bool           `yaml:"json-logs"`
	Staking   staking.Config `yaml:"staking"`
}

func defaultConfig() *config {
	return &config{
		DataDir:   defaultDataDir(),
		Verbosity: log.LegacyLevelWarn,
		Staking:   staking.DefaultConfig(),
	}
}

// loadConfig reads the YAML file at path over the defaults. An empty path
// yields the defaults.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %v", path)
	}
	if err := cfg.Staking.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %v", path)
	}
	return cfg, nil
}

// applyFlags overrides file values with flags set on the command line.
func (c *config) applyFlags(ctx *cli.Context) {
	if ctx.IsSet(dataDirFlag.Name) || c.DataDir == "" {
		c.DataDir = ctx.String(dataDirFlag.Name)
	}
	if ctx.IsSet(verbosityFlag.Name) {
		c.Verbosity = int(ctx.Uint64(verbosityFlag.Name))
	}
	if ctx.IsSet(jsonLogsFlag.Name) {
		c.JSONLogs = ctx.Bool(jsonLogsFlag.Name)
	}
}
