package tui

import (
	"container/heap"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func testID(i uint32) NodeID {
	return NodeID{index: i, gen: 1}
}

func TestPollHeap_Order(t *testing.T) {
	base := time.Unix(100, 0)
	var h pollHeap
	for _, e := range []pollEntry{
		{due: base.Add(3 * time.Second), seq: 1, id: testID(1)},
		{due: base.Add(time.Second), seq: 2, id: testID(2)},
		{due: base.Add(3 * time.Second), seq: 3, id: testID(3)},
		{due: base, seq: 4, id: testID(4)},
		{due: base.Add(time.Second), seq: 5, id: testID(5)},
	} {
		heap.Push(&h, e)
	}

	var got []uint32
	for h.Len() > 0 {
		got = append(got, heap.Pop(&h).(pollEntry).id.index)
	}
	if diff := cmp.Diff([]uint32{4, 2, 5, 1, 3}, got); diff != "" {
		t.Errorf("pop order mismatch (-want +got):\n%s", diff)
	}
}

func TestScheduler_AddEmptyDoesNotWake(t *testing.T) {
	s := newScheduler()
	s.add(nil)
	if len(s.wake) != 0 {
		t.Error("empty add woke the scheduler")
	}
	s.add([]PollRequest{{ID: testID(1)}})
	s.add([]PollRequest{{ID: testID(2)}})
	if len(s.wake) != 1 {
		t.Errorf("wake has %d tokens, want 1", len(s.wake))
	}
	if got := s.take(); len(got) != 2 {
		t.Errorf("take returned %d requests, want 2", len(got))
	}
	if got := s.take(); got != nil {
		t.Errorf("second take returned %v", got)
	}
}

func TestScheduler_FiresInDeadlineOrder(t *testing.T) {
	s := newScheduler()
	s.add([]PollRequest{
		{ID: testID(1), Delay: 30 * time.Millisecond},
		{ID: testID(2)},
		{ID: testID(3)},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fired := make(chan NodeID, 3)
	done := make(chan error, 1)
	go func() {
		done <- s.run(ctx, func(_ context.Context, id NodeID) error {
			fired <- id
			return nil
		})
	}()

	var got []uint32
	for range 3 {
		select {
		case id := <-fired:
			got = append(got, id.index)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %v", got)
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Errorf("run returned %v after cancel", err)
	}
	if diff := cmp.Diff([]uint32{2, 3, 1}, got); diff != "" {
		t.Errorf("fire order mismatch (-want +got):\n%s", diff)
	}
}

func TestScheduler_StopsOnFireError(t *testing.T) {
	boom := errors.New("boom")
	s := newScheduler()
	s.add([]PollRequest{{ID: testID(1)}, {ID: testID(2)}})

	calls := 0
	err := s.run(context.Background(), func(context.Context, NodeID) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("run = %v, want boom", err)
	}
	if calls != 1 {
		t.Errorf("fire called %d times, want 1", calls)
	}
}

func TestScheduler_CancelWithPending(t *testing.T) {
	s := newScheduler()
	s.add([]PollRequest{{ID: testID(1), Delay: time.Hour}})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := s.run(ctx, func(context.Context, NodeID) error {
		t.Error("fired a poll that was an hour away")
		return nil
	})
	if err != nil {
		t.Errorf("run = %v, want nil on cancel", err)
	}
}
