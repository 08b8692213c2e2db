// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package reverts tells ledger failures caused by the caller's input or the
// pool's funding apart from storage and encoding faults.
package reverts

import (
	"errors"
	"strings"
)

// Error is a revert. Its reason is a short lower case phrase.
type Error struct {
	reason string
}

func New(reason string) *Error {
	return &Error{reason: reason}
}

func (e *Error) Error() string {
	return e.reason
}

// Reason returns the reason of the first revert wrapped by err.
func Reason(err error) (string, bool) {
	var r *Error
	if errors.As(err, &r) {
		return r.reason, true
	}
	return "", false
}

// Is reports whether err wraps a revert.
func Is(err error) bool {
	_, ok := Reason(err)
	return ok
}

// Label renders the reason of err as a metric label value, e.g.
// "insufficient-stake".
func Label(err error) string {
	reason, ok := Reason(err)
	if !ok {
		return ""
	}
	return strings.ReplaceAll(reason, " ", "-")
}
