package resilience

import (
	"sync"
	"testing"
	"time"
)

func TestKeyedMutex_SerialisesSameKey(t *testing.T) {
	var km KeyedMutex
	var mu sync.Mutex
	active, maxActive := 0, 0

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("career-1")
			defer unlock()

			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			time.Sleep(2 * time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if maxActive != 1 {
		t.Fatalf("expected at most one holder, got %d", maxActive)
	}
	if km.size() != 0 {
		t.Fatalf("expected lock table to be empty, got %d", km.size())
	}
}

func TestKeyedMutex_DistinctKeysDoNotBlock(t *testing.T) {
	var km KeyedMutex
	unlockA := km.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := km.Lock("b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("lock on distinct key blocked")
	}
}

func TestKeyedMutex_UnlockIsIdempotent(t *testing.T) {
	var km KeyedMutex
	unlock := km.Lock("a")
	unlock()
	unlock()

	relock := km.Lock("a")
	relock()
}
