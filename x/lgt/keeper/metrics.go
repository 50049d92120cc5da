package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the LGT module
type Metrics struct {
	// Operation counters
	MintToLiquidityTotal prometheus.Counter
	MintToSellTotal      prometheus.Counter

	// Pool state gauges
	PoolCurrencyReserve  prometheus.Gauge
	PoolTokenReserve     prometheus.Gauge
	LiquidityShareSupply prometheus.Gauge
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers LGT metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			MintToLiquidityTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "lgt",
					Subsystem: "pool",
					Name:      "mint_to_liquidity_total",
					Help:      "Total successful mint-to-liquidity operations",
				},
			),
			MintToSellTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "lgt",
					Subsystem: "pool",
					Name:      "mint_to_sell_total",
					Help:      "Total successful mint-to-sell operations",
				},
			),
			PoolCurrencyReserve: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "lgt",
					Subsystem: "pool",
					Name:      "currency_reserve",
					Help:      "Current pool currency reserve",
				},
			),
			PoolTokenReserve: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "lgt",
					Subsystem: "pool",
					Name:      "token_reserve",
					Help:      "Current pool token reserve",
				},
			),
			LiquidityShareSupply: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "lgt",
					Subsystem: "pool",
					Name:      "liquidity_share_supply",
					Help:      "Total liquidity shares outstanding",
				},
			),
		}
	})
	return metrics
}

// intToFloat converts a math.Int to float64 for gauge export. Precision loss
// above 2^53 is acceptable for monitoring.
func intToFloat(i math.Int) float64 {
	f, _ := new(big.Float).SetInt(i.BigInt()).Float64()
	return f
}
