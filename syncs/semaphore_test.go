package syncs

import (
	"testing"
	"time"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(2)
	sem.Acquire()
	sem.Acquire()
	if sem.TryAcquire() {
		t.Fatal("should be full")
	}

	acquired := make(chan struct{})
	go func() {
		sem.Acquire()
		close(acquired)
	}()
	select {
	case <-acquired:
		t.Fatal("should block")
	case <-time.After(10 * time.Millisecond):
	}

	sem.Release()
	<-acquired
	sem.Release()
	if !sem.TryAcquire() {
		t.Fatal("should acquire")
	}
}
