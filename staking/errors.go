// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"fmt"

	"github.com/edinar/staking/staking/reverts"
)

var (
	ErrInvalidAmount       = reverts.New("invalid amount")
	ErrInsufficientStake   = reverts.New("insufficient stake")
	ErrInsufficientReserve = reverts.New("insufficient rewards reserve")
	ErrTransferFailed      = reverts.New("token transfer failed")
	ErrSelfReferral        = reverts.New("self referral")
)

// transferFailed keeps the token ledger's cause matchable next to ErrTransferFailed.
func transferFailed(cause error) error {
	return fmt.Errorf("%w: %w", ErrTransferFailed, cause)
}
