package fsa_test

import (
	"sync"
	"testing"

	"github.com/jt05610/fsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO_Order(t *testing.T) {
	f := fsa.NewFIFO[int](0)
	for i := 0; i < 5; i++ {
		require.True(t, f.Push(i))
	}
	for i := 0; i < 5; i++ {
		v, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	_, ok := f.Pop()
	assert.False(t, ok)
}

func TestFIFO_Limit(t *testing.T) {
	f := fsa.NewFIFO[string](2)
	assert.True(t, f.Push("a"))
	assert.True(t, f.Push("b"))
	_, _ = f.Pop()
	assert.False(t, f.Push("c"), "popping does not free capacity")
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, 2, f.Pushed())
}

func TestFIFO_Concurrency(t *testing.T) {
	var wg sync.WaitGroup
	f := fsa.NewFIFO[int](0)
	concurrent := 100
	for i := 0; i < concurrent; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				f.Push(i)
				f.Pop()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, concurrent*100, f.Pushed())
}
