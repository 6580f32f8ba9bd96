package tui

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

type pollEntry struct {
	due time.Time
	seq uint64
	id  NodeID
}

// pollHeap is a min-heap of poll entries ordered by deadline, then by
// insertion.
type pollHeap []pollEntry

func (h pollHeap) Len() int { return len(h) }
func (h pollHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}
func (h pollHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pollHeap) Push(x any)   { *h = append(*h, x.(pollEntry)) }
func (h *pollHeap) Pop() any {
	old := *h
	e := old[len(old)-1]
	*h = old[:len(old)-1]
	return e
}

// scheduler wakes nodes whose poll delay expired. It runs on its own
// goroutine and never touches the arena: due ids are handed to the UI
// goroutine through fire.
type scheduler struct {
	mu      sync.Mutex
	pending []PollRequest
	wake    chan struct{}
	now     func() time.Time

	heap pollHeap
	seq  uint64
}

func newScheduler() *scheduler {
	return &scheduler{wake: make(chan struct{}, 1), now: time.Now}
}

// add queues requests without blocking. Safe for concurrent use.
func (s *scheduler) add(reqs []PollRequest) {
	if len(reqs) == 0 {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, reqs...)
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *scheduler) take() []PollRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}

// run sleeps until the earliest deadline, or until add wakes it, and calls
// fire for every due id in deadline order. It returns when ctx is done or
// fire fails.
func (s *scheduler) run(ctx context.Context, fire func(context.Context, NodeID) error) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		var expired <-chan time.Time
		if len(s.heap) > 0 {
			timer.Reset(max(0, s.heap[0].due.Sub(s.now())))
			expired = timer.C
		}
		select {
		case <-ctx.Done():
			return nil
		case <-s.wake:
			now := s.now()
			for _, r := range s.take() {
				s.seq++
				heap.Push(&s.heap, pollEntry{due: now.Add(r.Delay), seq: s.seq, id: r.ID})
			}
		case <-expired:
			now := s.now()
			for len(s.heap) > 0 && !s.heap[0].due.After(now) {
				e := heap.Pop(&s.heap).(pollEntry)
				if err := fire(ctx, e.id); err != nil {
					return err
				}
			}
		}
	}
}
