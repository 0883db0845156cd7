package event

import (
	"sync/atomic"
)

// EventQueue is a bounded ring of game events with many producers and one consumer
// Producers claim a slot by CAS on the write cursor and publish it with the slot's ready flag.
// The consumer stops at the first slot that is claimed but not yet published.
// When the ring is full the oldest unread events are overwritten and counted as dropped.
type EventQueue struct {
	slots []queueSlot
	mask  uint64

	read    atomic.Uint64
	write   atomic.Uint64
	dropped atomic.Uint64

	// Consumer-owned scratch reused across Drain calls
	batch []GameEvent
}

type queueSlot struct {
	event GameEvent
	ready atomic.Bool
}

// NewEventQueue creates a queue holding at least capacity events, rounded up to a power of two
func NewEventQueue(capacity int) *EventQueue {
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &EventQueue{
		slots: make([]queueSlot, size),
		mask:  uint64(size - 1),
		batch: make([]GameEvent, 0, size),
	}
}

// Cap returns the number of events held before the oldest is overwritten
func (q *EventQueue) Cap() int {
	return len(q.slots)
}

// Push appends an event, safe for concurrent producers
func (q *EventQueue) Push(ev GameEvent) {
	size := uint64(len(q.slots))
	for {
		w := q.write.Load()
		if !q.write.CompareAndSwap(w, w+1) {
			continue
		}

		s := &q.slots[w&q.mask]
		s.event = ev
		s.ready.Store(true) // after the write

		r := q.read.Load()
		if w+1-r > size {
			oldest := w + 1 - size
			if q.read.CompareAndSwap(r, oldest) {
				q.dropped.Add(oldest - r)
			}
		}
		return
	}
}

// Drain hands every published event to fn in FIFO order and returns how many were handled
// Single consumer only; fn must not call Drain on the same queue
func (q *EventQueue) Drain(fn func(GameEvent)) int {
	batch := q.take()
	for _, ev := range batch {
		fn(ev)
	}
	return len(batch)
}

// Dropped returns the total number of events lost to overflow
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}

// take moves the published prefix of the ring into the scratch batch and advances the read cursor
func (q *EventQueue) take() []GameEvent {
	size := uint64(len(q.slots))
	for {
		r := q.read.Load()
		w := q.write.Load()
		if r == w {
			return nil
		}

		start := r
		if w-r > size {
			start = w - size
		}

		q.batch = q.batch[:0]
		for i := start; i < w; i++ {
			s := &q.slots[i&q.mask]
			if !s.ready.Load() {
				break
			}
			q.batch = append(q.batch, s.event)
			s.ready.Store(false)
		}

		if q.read.CompareAndSwap(r, start+uint64(len(q.batch))) {
			if start > r {
				q.dropped.Add(start - r)
			}
			return q.batch
		}
	}
}
