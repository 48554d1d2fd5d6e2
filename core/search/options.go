package search

import corelogger "github.com/kilianp07/evrouter/core/logger"

// Options configures a strategy instance.
type Options struct {
	// RechargeOnlyAtStations narrows the recharge rule: charge is restored to
	// the maximum only on arrival at a charging station, and is drained by
	// each traversed edge otherwise. The default (false) restores full charge
	// at every node, matching the routing model this package preserves.
	RechargeOnlyAtStations bool
	// Logger receives per-query debug output. Nil disables logging.
	Logger corelogger.Logger
}

// Option is a functional option for strategy construction.
type Option func(*Options)

// WithRechargeOnlyAtStations restricts full recharging to charging stations.
func WithRechargeOnlyAtStations() Option {
	return func(o *Options) { o.RechargeOnlyAtStations = true }
}

// WithLogger attaches a logger to the query.
func WithLogger(l corelogger.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
