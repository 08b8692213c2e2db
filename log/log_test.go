// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math/big"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false))

	l.Info("staked", "amount", big.NewInt(1000), "note", "two words")
	line := out.String()

	assert.True(t, strings.HasPrefix(line, "INFO  ["), line)
	assert.Contains(t, line, "staked")
	assert.Contains(t, line, "amount=1000")
	assert.Contains(t, line, `note="two words"`)
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestTerminalHandlerLevel(t *testing.T) {
	out := new(bytes.Buffer)
	var lvl slog.LevelVar
	lvl.Set(slog.LevelWarn)
	l := NewLogger(NewTerminalHandlerWithLevel(out, &lvl, false))

	l.Info("hidden")
	l.Debug("hidden")
	assert.Empty(t, out.String())

	l.Warn("shown")
	assert.Contains(t, out.String(), "shown")
}

func TestTerminalHandlerWithAttrs(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false)).With("pkg", "staking")

	l.Debug("settled", "reward", uint256.NewInt(7))
	assert.Contains(t, out.String(), "pkg=staking")
	assert.Contains(t, out.String(), "reward=7")
}

func TestJSONHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(JSONHandler(out))

	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	l.Warn("reserve low", "shortfall", huge)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "warn", rec["lvl"])
	assert.Equal(t, "reserve low", rec["msg"])
	assert.Equal(t, "123456789012345678901234567890", rec["shortfall"])
}

func TestWithContextFollowsRoot(t *testing.T) {
	pkgLogger := WithContext("pkg", "test")

	old := Root()
	defer SetDefault(old)

	out := new(bytes.Buffer)
	SetDefault(NewLogger(NewTerminalHandler(out, false)))

	pkgLogger.Info("after set default")
	assert.Contains(t, out.String(), "after set default")
	assert.Contains(t, out.String(), "pkg=test")
}

func TestFromLegacyLevel(t *testing.T) {
	assert.Equal(t, LevelCrit, FromLegacyLevel(0))
	assert.Equal(t, slog.LevelInfo, FromLegacyLevel(3))
	assert.Equal(t, LevelTrace, FromLegacyLevel(5))
	assert.Equal(t, LevelTrace, FromLegacyLevel(9))
	assert.Equal(t, "debug", LevelString(FromLegacyLevel(4)))
}
