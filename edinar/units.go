// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package edinar

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ParseUnits parses a decimal token amount like "1000" or "0.25" into wei.
func ParseUnits(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return nil, errors.Errorf("negative amount %q", s)
	}
	if strings.HasPrefix(s, "+") {
		return nil, errors.Errorf("signed amount %q", s)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if hasFrac && len(frac) > Decimals {
		return nil, errors.Errorf("amount %q has more than %d decimals", s, Decimals)
	}
	if whole == "" {
		whole = "0"
	}
	digits := whole + frac + strings.Repeat("0", Decimals-len(frac))

	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, errors.Errorf("invalid amount %q", s)
	}
	return v, nil
}

// FormatUnits renders wei as a decimal token amount, keeping at least one
// fractional digit ("1.0", "0.25").
func FormatUnits(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}
	neg := wei.Sign() < 0
	abs := new(big.Int).Abs(wei)

	q, r := new(big.Int).QuoRem(abs, Unit, new(big.Int))
	frac := r.String()
	frac = strings.Repeat("0", Decimals-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		frac = "0"
	}

	out := q.String() + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatBasisPoints renders a basis point rate as a percentage, 200 -> "2.00%".
//
// The legacy front end divides the raw APY getter by 10 and so displays 200 as
// 20%. This is the single place where the display conversion happens.
func FormatBasisPoints(bp uint64) string {
	return fmt.Sprintf("%d.%02d%%", bp/100, bp%100)
}
