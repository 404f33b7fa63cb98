// Package calibrated implements a generic object pool with
// capacity-bucketed storage. Buckets are sized in elements, not bytes,
// and the pool periodically recalibrates its default and maximum
// capacities from the observed demand distribution.
package calibrated

import (
	"math/bits"
	"sort"
	"sync"
	"sync/atomic"
)

const (
	MinBitSize = 4  // 16 elements
	Steps      = 16 // 16 to 512Ki elements

	MinSize = 1 << MinBitSize
	MaxSize = 1 << (MinBitSize + Steps - 1)

	calibrateThreshold = 42000
	percentile95       = 0.95
)

// Pool is a generic calibrated pool with capacity buckets.
type Pool[T any] struct {
	demand      [Steps]uint64
	calibrating uint64
	defaultCap  uint64
	maxCap      uint64
	buckets     [Steps]sync.Pool
	newFunc     func(capacity int) T
	capFunc     func(T) int
	resetFunc   func(T)
}

// New creates a calibrated pool. newFunc builds an item of at least the
// given capacity, capFunc reports an item's capacity, and resetFunc (may
// be nil) clears an item before it re-enters the pool.
func New[T any](newFunc func(capacity int) T, capFunc func(T) int, resetFunc func(T)) *Pool[T] {
	p := &Pool[T]{
		newFunc:   newFunc,
		capFunc:   capFunc,
		resetFunc: resetFunc,
	}
	for i := range p.buckets {
		capacity := MinSize << i
		p.buckets[i].New = func() any {
			return newFunc(capacity)
		}
	}
	return p
}

// Get returns an item with capacity of at least n elements.
func (p *Pool[T]) Get(n int) T {
	if n <= 0 {
		n = MinSize
	}

	idx := CapToIndex(n)
	if idx >= Steps {
		return p.newFunc(n)
	}

	return p.buckets[idx].Get().(T)
}

// Put returns an item to the pool. Items larger than the calibrated
// maximum are dropped so rare spikes do not pin memory.
func (p *Pool[T]) Put(item T) {
	capacity := p.capFunc(item)
	if capacity == 0 {
		return
	}

	idx := CapToIndex(capacity)
	if idx >= Steps {
		return
	}

	if atomic.AddUint64(&p.demand[idx], 1) > calibrateThreshold {
		p.calibrate()
	}

	max := int(atomic.LoadUint64(&p.maxCap))
	if max > 0 && capacity > max {
		return
	}

	if p.resetFunc != nil {
		p.resetFunc(item)
	}
	p.buckets[idx].Put(item)
}

// calibrate analyzes demand and adjusts the default/max capacities.
func (p *Pool[T]) calibrate() {
	if !atomic.CompareAndSwapUint64(&p.calibrating, 0, 1) {
		return
	}
	defer atomic.StoreUint64(&p.calibrating, 0)

	stats := p.collectStats()
	sort.Sort(stats)
	p.updateCaps(stats)
}

func (p *Pool[T]) collectStats() bucketStats {
	stats := make(bucketStats, 0, Steps)
	for i := uint64(0); i < Steps; i++ {
		uses := atomic.SwapUint64(&p.demand[i], 0)
		stats = append(stats, bucket{uses: uses, capacity: MinSize << i})
	}
	return stats
}

func (p *Pool[T]) updateCaps(stats bucketStats) {
	if len(stats) == 0 {
		return
	}

	defaultCap := stats[0].capacity
	maxCap := defaultCap

	var total, sum uint64
	for _, s := range stats {
		total += s.uses
	}
	threshold := uint64(float64(total) * percentile95)

	for _, s := range stats {
		if sum > threshold {
			break
		}
		sum += s.uses
		if s.capacity > maxCap {
			maxCap = s.capacity
		}
	}

	atomic.StoreUint64(&p.defaultCap, defaultCap)
	atomic.StoreUint64(&p.maxCap, maxCap)
}

// DefaultCap returns the calibrated default capacity.
func (p *Pool[T]) DefaultCap() uint64 {
	return atomic.LoadUint64(&p.defaultCap)
}

// MaxCap returns the calibrated max capacity (95th percentile).
func (p *Pool[T]) MaxCap() uint64 {
	return atomic.LoadUint64(&p.maxCap)
}

// Stats returns demand counts per bucket.
func (p *Pool[T]) Stats() [Steps]uint64 {
	var result [Steps]uint64
	for i := range p.demand {
		result[i] = atomic.LoadUint64(&p.demand[i])
	}
	return result
}

type bucket struct {
	uses     uint64
	capacity uint64
}

type bucketStats []bucket

func (b bucketStats) Len() int           { return len(b) }
func (b bucketStats) Less(i, j int) bool { return b[i].uses > b[j].uses }
func (b bucketStats) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }

// CapToIndex returns the bucket index for a given capacity.
func CapToIndex(n int) int {
	return bits.Len(uint(n-1) >> MinBitSize)
}

// BucketCap returns the nominal capacity of the bucket at index i.
func BucketCap(i int) int {
	if i < 0 || i >= Steps {
		return 0
	}
	return MinSize << i
}
