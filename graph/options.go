// SPDX-License-Identifier: MIT

package graph

import (
	"io"
	"log/slog"
)

// DefaultPowerCacheSize is the number of adjacency powers memoised per graph.
const DefaultPowerCacheSize = 16

// Option configures a Graph before creation.
type Option func(*config)

type config struct {
	directed  bool
	logger    *slog.Logger
	cacheSize int
}

func defaultConfig() config {
	return config{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		cacheSize: DefaultPowerCacheSize,
	}
}

// WithDirected makes links one-way. Graphs are undirected by default.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithLogger routes the graph's debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPowerCacheSize bounds the power cache to n entries; n <= 0 disables it.
func WithPowerCacheSize(n int) Option {
	return func(c *config) { c.cacheSize = n }
}
