// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	noop := defaultNoopMetrics()

	meters := []any{
		noop.GetOrCreateCountMeter("staking_ops_count"),
		noop.GetOrCreateCountVecMeter("staking_token_flow_count", []string{"direction"}),
		noop.GetOrCreateGaugeMeter("staking_active_stakers"),
		noop.GetOrCreateGaugeVecMeter("staking_pool_tokens", []string{"kind"}),
		noop.GetOrCreateHistogramMeter("staking_stake_amount_tokens", BucketAmounts),
	}
	for _, m := range meters {
		assert.Equal(t, noopMetrics{}, m)
	}

	noop.GetOrCreateCountVecMeter("flow", nil).AddWithLabel(1, map[string]string{"unknown": "label"})
	noop.GetOrCreateGaugeVecMeter("pool", nil).SetWithLabel(-1, nil)
	noop.GetOrCreateGaugeMeter("gauge").Add(-5)
	noop.GetOrCreateHistogramMeter("hist", nil).Observe(1 << 62)

	out := new(bytes.Buffer)
	require.NoError(t, noop.WriteText(out))
	assert.Zero(t, out.Len())
}
