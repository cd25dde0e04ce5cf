package fsa

import "sync"

// FIFO is a first-in-first-out queue of pending work. Items are never
// dropped; Push reports false once the optional limit of total pushes is
// reached.
type FIFO[T any] struct {
	values []T
	pushed int
	limit  int
	mu     sync.Mutex
}

func (fifo *FIFO[T]) Push(value T) bool {
	fifo.mu.Lock()
	defer fifo.mu.Unlock()
	if fifo.limit > 0 && fifo.pushed >= fifo.limit {
		return false
	}
	fifo.pushed++
	fifo.values = append(fifo.values, value)
	return true
}

// Pop removes the oldest item. ok is false when the queue is empty.
func (fifo *FIFO[T]) Pop() (value T, ok bool) {
	fifo.mu.Lock()
	defer fifo.mu.Unlock()
	if len(fifo.values) == 0 {
		return value, false
	}
	value = fifo.values[0]
	fifo.values = fifo.values[1:]
	return value, true
}

func (fifo *FIFO[T]) Len() int {
	fifo.mu.Lock()
	defer fifo.mu.Unlock()
	return len(fifo.values)
}

// Pushed is the number of items ever accepted.
func (fifo *FIFO[T]) Pushed() int {
	fifo.mu.Lock()
	defer fifo.mu.Unlock()
	return fifo.pushed
}

func NewFIFO[T any](limit int) *FIFO[T] {
	return &FIFO[T]{limit: limit}
}
