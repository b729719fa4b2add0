package sessionstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocks_SerializesSameSession(t *testing.T) {
	var locks Locks
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("tab-1")
			defer unlock()

			// read-modify-write sin atomics: solo es correcto si Lock serializa
			v := counter
			v++
			counter = v
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, locks.size(), "entries must be released")
}

func TestLocks_DifferentSessionsDoNotBlock(t *testing.T) {
	var locks Locks

	unlockA := locks.Lock("tab-a")
	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("tab-b")
		unlockB()
		close(done)
	}()
	<-done
	unlockA()
}
