package api

import (
	"sync"
	"testing"
)

func TestKeyedBusy(t *testing.T) {
	b := newKeyedBusy()
	if !b.acquire("s1") {
		t.Fatalf("fresh key should acquire")
	}
	if b.acquire("s1") {
		t.Fatalf("held key acquired twice")
	}
	if !b.acquire("s2") {
		t.Fatalf("unrelated key blocked")
	}
	b.release("s1")
	if !b.acquire("s1") {
		t.Fatalf("released key should acquire again")
	}
}

func TestKeyedBusy_SingleWinner(t *testing.T) {
	b := newKeyedBusy()
	const n = 32
	var wg sync.WaitGroup
	wins := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b.acquire("shared") {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)
	var count int
	for range wins {
		count++
	}
	if count != 1 {
		t.Fatalf("want exactly one winner, got %d", count)
	}
}
