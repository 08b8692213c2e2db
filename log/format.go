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
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	timeFormat     = "2006-01-02T15:04:05-0700"
	termTimeFormat = "01-02|15:04:05.000"
	termMsgJust    = 40
)

func levelColor(level slog.Level) int {
	switch {
	case level >= LevelCrit:
		return 35
	case level >= slog.LevelError:
		return 31
	case level >= slog.LevelWarn:
		return 33
	case level >= slog.LevelInfo:
		return 32
	case level >= slog.LevelDebug:
		return 36
	default:
		return 34
	}
}

func (h *TerminalHandler) format(buf []byte, r slog.Record, usecolor bool) []byte {
	msg := escapeMessage(r.Message)
	lvl := LevelAlignedString(r.Level)

	if usecolor {
		buf = fmt.Appendf(buf, "\x1b[%dm%s\x1b[0m", levelColor(r.Level), lvl)
	} else {
		buf = append(buf, lvl...)
	}
	buf = append(buf, " ["...)
	buf = r.Time.AppendFormat(buf, termTimeFormat)
	buf = append(buf, "] "...)
	buf = append(buf, msg...)

	// try to justify the log output for short messages
	if (r.NumAttrs()+len(h.attrs)) > 0 && len(msg) < termMsgJust {
		buf = append(buf, strings.Repeat(" ", termMsgJust-len(msg))...)
	}

	for _, attr := range h.attrs {
		buf = appendAttr(buf, attr, usecolor, r.Level)
	}
	r.Attrs(func(attr slog.Attr) bool {
		buf = appendAttr(buf, attr, usecolor, r.Level)
		return true
	})
	return append(buf, '\n')
}

func appendAttr(buf []byte, attr slog.Attr, usecolor bool, level slog.Level) []byte {
	buf = append(buf, ' ')
	if usecolor {
		buf = fmt.Appendf(buf, "\x1b[%dm%s\x1b[0m=", levelColor(level), attr.Key)
	} else {
		buf = append(buf, attr.Key...)
		buf = append(buf, '=')
	}
	return append(buf, escapeString(formatValue(replaceValue(attr.Value)))...)
}

func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(timeFormat)
	case slog.KindAny:
		if v.Any() == nil {
			return "<nil>"
		}
	}
	return fmt.Sprintf("%+v", v.Any())
}

// escapeString quotes s when it contains spaces, quotes, '=' or control characters.
func escapeString(s string) string {
	needsQuoting := false
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' || r == utf8.RuneError {
			needsQuoting = true
			break
		}
	}
	if s == "" || !needsQuoting {
		return s
	}
	return strconv.Quote(s)
}

// escapeMessage quotes messages that contain newlines or other control characters.
func escapeMessage(s string) string {
	needsQuoting := false
	for _, r := range s {
		if r == '\r' || r == '\n' || r == '\t' || (r < ' ' && r != '\x1b') {
			needsQuoting = true
			break
		}
	}
	if !needsQuoting {
		return s
	}
	return strconv.Quote(s)
}
