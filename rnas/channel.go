package rnas

import (
	"iter"
	"sync"

	"github.com/edwingeng/deque"
	"github.com/reusee/endo/dna"
	"github.com/reusee/endo/syncs"
	"github.com/tevino/abool/v2"
)

type item struct {
	chunk dna.DNA
	end   bool
}

// Channel delivers RNA chunks in emission order from one producer to its
// consumers. Close sends an end-of-stream marker after the last chunk.
type Channel struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  deque.Deque
	done   bool
	slots  syncs.Semaphore
	closed *abool.AtomicBool
}

// NewChannel makes a channel holding at most capacity undelivered chunks, or
// any number if capacity is not positive.
func NewChannel(capacity int) *Channel {
	c := &Channel{
		queue:  deque.NewDeque(),
		closed: abool.New(),
	}
	c.cond = sync.NewCond(&c.mu)
	if capacity > 0 {
		c.slots = syncs.NewSemaphore(capacity)
	}
	return c
}

func (c *Channel) push(it item) {
	if c.slots != nil {
		c.slots.Acquire()
	}
	c.mu.Lock()
	c.queue.PushBack(it)
	c.mu.Unlock()
	c.cond.Signal()
}

// Send queues chunk, blocking while a bounded channel is full.
func (c *Channel) Send(chunk dna.DNA) {
	if c.closed.IsSet() {
		panic("rnas: send on closed channel")
	}
	c.push(item{
		chunk: chunk,
	})
}

func (c *Channel) Close() {
	if !c.closed.SetToIf(false, true) {
		panic("rnas: close of closed channel")
	}
	c.push(item{
		end: true,
	})
}

// Recv blocks until a chunk is available. It returns false once the
// end-of-stream marker has been received.
func (c *Channel) Recv() (dna.DNA, bool) {
	c.mu.Lock()
	for c.queue.Empty() && !c.done {
		c.cond.Wait()
	}
	if c.done {
		c.mu.Unlock()
		return dna.DNA{}, false
	}
	it := c.queue.PopFront().(item)
	if it.end {
		c.done = true
		c.cond.Broadcast()
	}
	c.mu.Unlock()

	if c.slots != nil {
		c.slots.Release()
	}
	if it.end {
		return dna.DNA{}, false
	}
	return it.chunk, true
}

func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Len()
}

func (c *Channel) All() iter.Seq[dna.DNA] {
	return func(yield func(dna.DNA) bool) {
		for {
			chunk, ok := c.Recv()
			if !ok {
				return
			}
			if !yield(chunk) {
				return
			}
		}
	}
}
