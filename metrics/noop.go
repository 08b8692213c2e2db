// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import "io"

// noopMetrics is the service in place until Prometheus is initialized.
// It is its own meter of every kind, so meters handed out before
// initialization stay silent for the life of the process.
type noopMetrics struct{}

var (
	_ Metrics        = noopMetrics{}
	_ HistogramMeter = noopMetrics{}
	_ CountVecMeter  = noopMetrics{}
	_ GaugeMeter     = noopMetrics{}
	_ GaugeVecMeter  = noopMetrics{}
)

func defaultNoopMetrics() Metrics { return noopMetrics{} }

func (n noopMetrics) GetOrCreateHistogramMeter(string, []int64) HistogramMeter { return n }
func (n noopMetrics) GetOrCreateCountMeter(string) CountMeter                  { return n }
func (n noopMetrics) GetOrCreateCountVecMeter(string, []string) CountVecMeter  { return n }
func (n noopMetrics) GetOrCreateGaugeMeter(string) GaugeMeter                  { return n }
func (n noopMetrics) GetOrCreateGaugeVecMeter(string, []string) GaugeVecMeter  { return n }

// WriteText writes nothing.
func (noopMetrics) WriteText(io.Writer) error { return nil }

func (noopMetrics) Add(int64)                             {}
func (noopMetrics) Set(int64)                             {}
func (noopMetrics) Observe(int64)                         {}
func (noopMetrics) AddWithLabel(int64, map[string]string) {}
func (noopMetrics) SetWithLabel(int64, map[string]string) {}
