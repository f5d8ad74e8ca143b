package service

import (
	"hash/fnv"
	"sync"
)

const defaultShards = 64

// keyMutex serializes work per string key using a fixed set of mutex shards
// selected by consistent hashing. The tracking service locks on the shipment
// ID so that two near-simultaneous events for the same shipment cannot
// interleave their read-classify-write-append sequences and lose an update.
// Distinct shipments may share a shard; that only costs contention, never
// correctness.
type keyMutex struct {
	shards []sync.Mutex
}

func newKeyMutex(shards int) *keyMutex {
	if shards <= 0 {
		shards = defaultShards
	}
	return &keyMutex{shards: make([]sync.Mutex, shards)}
}

// Lock acquires the shard owning key and returns its unlock func.
func (m *keyMutex) Lock(key string) func() {
	mu := &m.shards[m.shardIndex(key)]
	mu.Lock()
	return mu.Unlock
}

func (m *keyMutex) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(m.shards)
}
