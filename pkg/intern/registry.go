// Package intern provides a process-wide, concurrency-safe string interning
// registry. Key content is deduplicated into small dense handles; resolving a
// handle back to its string never takes a lock, so read-heavy callers stay
// cheap. See [Registry].
package intern

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/swiss"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/atomic"
)

// DefaultRegistry is the process-wide registry used by callers that do not
// wire their own. Tests may swap it; replacing it after handles have been
// handed out invalidates those handles.
var DefaultRegistry = MustNew(DefaultConfig(), nil)

// Handle identifies an interned key. Handles are minted by [Registry.Intern],
// are assigned densely from zero in interning order, and stay valid for the
// lifetime of the registry that assigned them.
type Handle uint32

// Registry deduplicates key strings across all documents in the process.
// Interning equal content always yields the same Handle regardless of which
// goroutine asks first, and the content bytes are held once.
//
// A Registry must not be copied after first use.
type Registry struct {
	logger  log.Logger
	metrics *registryMetrics

	mask   uint64
	shards []shard

	table blockTable

	bytes  atomic.Uint64
	hits   atomic.Uint64
	misses atomic.Uint64
}

// shard holds the key to handle mapping for a slice of the hash space. The
// shard mutex is the linearization point for interning: equal content always
// hashes to the same shard, so the first writer holding the lock assigns the
// handle and every later caller finds it.
type shard struct {
	mtx sync.RWMutex
	m   *swiss.Map[string, Handle]
}

// New creates a Registry from cfg. A nil logger defaults to a no-op logger.
func New(cfg Config, logger log.Logger) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registry config: %w", err)
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	r := &Registry{
		logger: logger,
		mask:   uint64(cfg.Shards - 1),
		shards: make([]shard, cfg.Shards),
	}
	for i := range r.shards {
		r.shards[i].m = swiss.NewMap[string, Handle](uint32(cfg.InitialCapacity))
	}
	r.table.init()
	r.metrics = newRegistryMetrics(r)

	level.Debug(logger).Log("msg", "created key registry", "shards", cfg.Shards, "initial_capacity", cfg.InitialCapacity)
	return r, nil
}

// MustNew is like [New] but panics if the configuration is invalid.
func MustNew(cfg Config, logger log.Logger) *Registry {
	r, err := New(cfg, logger)
	if err != nil {
		panic(err)
	}
	return r
}

// Intern returns the Handle for key, assigning a new one if the content has
// never been seen. Safe for concurrent use.
func (r *Registry) Intern(key string) Handle {
	sh := &r.shards[xxhash.Sum64String(key)&r.mask]

	sh.mtx.RLock()
	h, ok := sh.m.Get(key)
	sh.mtx.RUnlock()
	if ok {
		r.hits.Inc()
		return h
	}

	sh.mtx.Lock()
	defer sh.mtx.Unlock()
	if h, ok := sh.m.Get(key); ok {
		r.hits.Inc()
		return h
	}
	h = r.table.append(key)
	sh.m.Put(key, h)
	r.bytes.Add(uint64(len(key)))
	r.misses.Inc()
	return h
}

// Lookup returns the Handle for key if the content has already been interned.
// It never assigns a new handle.
func (r *Registry) Lookup(key string) (Handle, bool) {
	sh := &r.shards[xxhash.Sum64String(key)&r.mask]
	sh.mtx.RLock()
	h, ok := sh.m.Get(key)
	sh.mtx.RUnlock()
	return h, ok
}

// Resolve returns the content for h without taking a lock. It panics if h was
// not assigned by this registry; handles only come from [Registry.Intern], so
// an unassigned handle is a programming error.
func (r *Registry) Resolve(h Handle) string {
	s, ok := r.table.lookup(h)
	if !ok {
		panic(fmt.Sprintf("intern: resolve of unassigned handle %d", h))
	}
	return s
}

// Len returns the number of distinct keys interned so far.
func (r *Registry) Len() int {
	return int(r.table.len())
}

// Bytes returns the total content bytes held for distinct keys.
func (r *Registry) Bytes() uint64 {
	return r.bytes.Load()
}

// Hits returns how many Intern calls found existing content.
func (r *Registry) Hits() uint64 {
	return r.hits.Load()
}

// Misses returns how many Intern calls assigned a new handle.
func (r *Registry) Misses() uint64 {
	return r.misses.Load()
}
