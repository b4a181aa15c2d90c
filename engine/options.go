// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures a Cache.
type Option func(*cacheOptions)

type cacheOptions struct {
	logger      *zap.Logger
	compiler    Compiler
	registerer  prometheus.Registerer
	fastPaths   bool
	retryFailed bool
}

func defaultOptions() cacheOptions {
	return cacheOptions{
		logger:    zap.NewNop(),
		compiler:  DirectCompiler{},
		fastPaths: true,
	}
}

// WithLogger routes specialization events to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}

	return func(o *cacheOptions) { o.logger = l }
}

// WithCompiler replaces the DirectCompiler. Panics on nil.
func WithCompiler(c Compiler) Option {
	if c == nil {
		panic("engine: WithCompiler(nil)")
	}

	return func(o *cacheOptions) { o.compiler = c }
}

// WithRegisterer registers the cache's specialization counter with r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *cacheOptions) { o.registerer = r }
}

// WithoutFastPaths forces every call through the slot, even for built-in
// kinds with a registered fast path.
func WithoutFastPaths() Option {
	return func(o *cacheOptions) { o.fastPaths = false }
}

// WithRetryFailed disables memoization of compile failures: a failed slot
// stays Unspecialized and the next call compiles again.
func WithRetryFailed() Option {
	return func(o *cacheOptions) { o.retryFailed = true }
}
