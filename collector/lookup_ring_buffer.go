package collector

import "sync"

// Identifiable records expose a key for lookups.
type Identifiable[K comparable] interface {
	Identity() K
}

// LookupRingBuffer is a thread-safe ring buffer with lookup by identity.
// When full, adding a record overwrites the oldest one.
type LookupRingBuffer[T Identifiable[K], K comparable] struct {
	buffer     []T
	lookup     map[K]uint64
	size       uint64
	capacity   uint64
	writeIndex uint64
	mu         sync.RWMutex
}

// NewLookupRingBuffer creates a new ring buffer with the given capacity
func NewLookupRingBuffer[T Identifiable[K], K comparable](capacity uint64) *LookupRingBuffer[T, K] {
	if capacity == 0 {
		panic("capacity must be greater than 0")
	}

	return &LookupRingBuffer[T, K]{
		buffer:   make([]T, capacity),
		lookup:   make(map[K]uint64, capacity),
		capacity: capacity,
	}
}

// Add adds a record to the buffer
func (rb *LookupRingBuffer[T, K]) Add(record T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	index := rb.writeIndex % rb.capacity

	if rb.size == rb.capacity {
		delete(rb.lookup, rb.buffer[index].Identity())
	} else {
		rb.size++
	}

	rb.buffer[index] = record
	rb.lookup[record.Identity()] = index
	rb.writeIndex++
}

// GetRecords returns the most recent n records, newest last
func (rb *LookupRingBuffer[T, K]) GetRecords(n uint64) []T {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	count := min(n, rb.size)
	if count == 0 {
		return []T{}
	}

	result := make([]T, count)
	startIdx := rb.writeIndex - count
	for i := uint64(0); i < count; i++ {
		result[i] = rb.buffer[(startIdx+i)%rb.capacity]
	}

	return result
}

// Lookup returns the record with the given identity if it is still buffered
func (rb *LookupRingBuffer[T, K]) Lookup(identity K) (T, bool) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	if index, found := rb.lookup[identity]; found {
		return rb.buffer[index], true
	}

	var empty T
	return empty, false
}

// Reset removes all records
func (rb *LookupRingBuffer[T, K]) Reset() {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	clear(rb.buffer)
	clear(rb.lookup)
	rb.size = 0
	rb.writeIndex = 0
}

// Size returns the current number of records in the buffer
func (rb *LookupRingBuffer[T, K]) Size() uint64 {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.size
}

// Capacity returns the maximum capacity of the buffer
func (rb *LookupRingBuffer[T, K]) Capacity() uint64 {
	return rb.capacity
}
