// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// configs is used to store the values of different parameters of the manager
type configs struct {
	varnum          int // number of variables
	nodesize        int // initial number of nodes in the table
	cachesize       int // initial cache size
	cacheratio      int // initial ratio (0 if size constant) between cache size and node table
	maxnodesize     int // Maximum total number of nodes (0 if no limit)
	maxnodeincrease int // Maximum number of nodes that can be added to the table at each resize (0 if no limit)
	minfreenodes    int // Minimum number of nodes that should be left after GC before triggering a resize
	logger          *slog.Logger
	registerer      prometheus.Registerer
}

// Option is a configuration function that can be passed to New.
type Option func(*configs)

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	c.minfreenodes = _MINFREENODES
	c.maxnodeincrease = _DEFAULTMAXNODEINC
	// we build enough nodes to include the four distinguished constants and
	// all the variables in varset
	c.nodesize = 2*varnum + 6
	return c
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial size for the node table. The size of the table can
// increase during computation. By default we create a table large enough to
// include the four distinguished constants and the "variables" used in the
// call to Ithvar and NIthvar.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size >= 2*c.varnum+6 {
			c.nodesize = size
		}
	}
}

// Maxnodesize is a configuration option (function). Used as a parameter in New
// it sets a limit to the number of nodes in the table. An operation trying to
// raise the number of nodes above this limit will generate an ErrMemory error
// and return a nil Node. The default value (0) means that there is no limit.
// In which case allocation can panic if we exhaust all the available memory.
func Maxnodesize(size int) Option {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Maxnodeincrease is a configuration option (function). Used as a parameter in
// New it sets a limit on the increase in size of the node table. Below this
// limit we typically double the size of the node list each time we need to
// resize it. The default value is about a million nodes. Set the value to zero
// to avoid imposing a limit.
func Maxnodeincrease(size int) Option {
	return func(c *configs) {
		c.maxnodeincrease = size
	}
}

// Minfreenodes is a configuration option (function). Used as a parameter in
// New it sets the ratio of free nodes (%) that has to be left after a Garbage
// Collection event. When there is not enough free nodes in the table, we try
// reclaiming unused nodes. With a ratio of, say 25, we resize the table if the
// number a free nodes is less than 25% of the capacity of the table (see
// Maxnodesize and Maxnodeincrease). The default value is 20%.
func Minfreenodes(ratio int) Option {
	return func(c *configs) {
		c.minfreenodes = ratio
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New
// it sets the initial number of entries in the operation cache. By default we
// use a fifth of the node table size. See also the Cacheratio config.
func Cachesize(size int) Option {
	return func(c *configs) {
		c.cachesize = size
	}
}

// Cacheratio is a configuration option (function). Used as a parameter in New
// it sets a "cache ratio" (%) so that the cache can grow each time we resize
// the node table. With a cache ratio of r, we have r available entries in the
// cache for every 100 slots in the node table. (A typical value for the cache
// ratio is 25% or 20%). The default value (0) means that the cache size never
// grows.
func Cacheratio(ratio int) Option {
	return func(c *configs) {
		c.cacheratio = ratio
	}
}

// Logger is a configuration option (function). Used as a parameter in New it
// attaches a structured logger to the manager. Garbage collections, table
// resizes and rebuilds are reported at the Debug level. By default nothing is
// logged.
func Logger(log *slog.Logger) Option {
	return func(c *configs) {
		c.logger = log
	}
}

// Telemetry is a configuration option (function). Used as a parameter in New
// it registers a collector for the manager on the given Prometheus registerer.
// The collector exports table occupancy, cache performance and garbage
// collection counters, sampled at scrape time.
func Telemetry(reg prometheus.Registerer) Option {
	return func(c *configs) {
		c.registerer = reg
	}
}
