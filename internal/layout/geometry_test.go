package layout

import (
	"errors"
	"testing"
)

func TestExtent_Split(t *testing.T) {
	type tc struct {
		extent               Extent
		start, length, total int
		pre, active, post    Extent
		err                  error
	}

	tests := map[string]tc{
		"window at start": {
			extent: Extent{Len: 10}, start: 0, length: 5, total: 20,
			pre: Extent{Off: 0, Len: 0}, active: Extent{Off: 0, Len: 3}, post: Extent{Off: 3, Len: 7},
		},
		"window at end": {
			extent: Extent{Len: 10}, start: 15, length: 5, total: 20,
			pre: Extent{Off: 0, Len: 7}, active: Extent{Off: 7, Len: 3}, post: Extent{Off: 10, Len: 0},
		},
		"window in middle": {
			extent: Extent{Len: 10}, start: 5, length: 5, total: 20,
			pre: Extent{Off: 0, Len: 3}, active: Extent{Off: 3, Len: 3}, post: Extent{Off: 6, Len: 4},
		},
		"offset extent": {
			extent: Extent{Off: 4, Len: 10}, start: 0, length: 5, total: 20,
			pre: Extent{Off: 4, Len: 0}, active: Extent{Off: 4, Len: 3}, post: Extent{Off: 7, Len: 7},
		},
		"tiny window keeps one cell": {
			extent: Extent{Len: 4}, start: 0, length: 1, total: 1000,
			pre: Extent{Off: 0, Len: 0}, active: Extent{Off: 0, Len: 1}, post: Extent{Off: 1, Len: 3},
		},
		"zero length extent": {
			extent: Extent{Len: 0}, start: 0, length: 1, total: 2, err: ErrZeroExtent,
		},
		"zero total": {
			extent: Extent{Len: 5}, start: 0, length: 0, total: 0, err: ErrZeroExtent,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pre, active, post, err := tt.extent.Split(tt.start, tt.length, tt.total)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Split() error = %v, want %v", err, tt.err)
			}
			if err != nil {
				return
			}
			if pre != tt.pre || active != tt.active || post != tt.post {
				t.Errorf("Split() = %+v %+v %+v, want %+v %+v %+v", pre, active, post, tt.pre, tt.active, tt.post)
			}
			if pre.Len+active.Len+post.Len != tt.extent.Len {
				t.Errorf("Split() parts sum to %d, want %d", pre.Len+active.Len+post.Len, tt.extent.Len)
			}
		})
	}
}

func TestExtent_SplitWeights(t *testing.T) {
	parts, err := Extent{Len: 10}.SplitWeights(1, 1, 1)
	if err != nil {
		t.Fatalf("SplitWeights() error = %v", err)
	}
	want := []Extent{{Off: 0, Len: 4}, {Off: 4, Len: 3}, {Off: 7, Len: 3}}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("SplitWeights()[%d] = %+v, want %+v", i, parts[i], want[i])
		}
	}

	if _, err := (Extent{Len: 10}).SplitWeights(1, 0); err == nil {
		t.Error("SplitWeights() with zero weight returned no error")
	}
}

func TestFrame(t *testing.T) {
	f := NewFrame(NewRect(0, 0, 5, 4), 1)

	type tc struct {
		got, want Rect
	}
	tests := map[string]tc{
		"top":    {got: f.Top, want: NewRect(0, 0, 5, 1)},
		"bottom": {got: f.Bottom, want: NewRect(0, 3, 5, 1)},
		"left":   {got: f.Left, want: NewRect(0, 1, 1, 2)},
		"right":  {got: f.Right, want: NewRect(4, 1, 1, 2)},
		"inner":  {got: f.Inner, want: NewRect(1, 1, 3, 2)},
		"outer":  {got: f.Outer(), want: NewRect(0, 0, 5, 4)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %+v, want %+v", name, tt.got, tt.want)
			}
		})
	}

	corners := f.Corners()
	if corners[3] != (Point{X: 4, Y: 3}) {
		t.Errorf("Corners()[3] = %+v, want {4 3}", corners[3])
	}
	if n := len(f.Parts()); n != 4 {
		t.Errorf("len(Parts()) = %d, want 4", n)
	}
}

func TestFrame_TooSmall(t *testing.T) {
	f := NewFrame(NewRect(0, 0, 1, 1), 1)
	if !f.Inner.IsEmpty() {
		t.Errorf("Inner = %+v, want empty", f.Inner)
	}
	if n := len(f.Parts()); n != 1 {
		t.Errorf("len(Parts()) = %d, want 1", n)
	}
}

func TestLine(t *testing.T) {
	l := VLine(2, 1, 5)
	if got := l.End(); got != (Point{X: 2, Y: 6}) {
		t.Errorf("End() = %+v, want {2 6}", got)
	}
	clipped, ok := l.Clip(NewRect(0, 3, 10, 10))
	if !ok {
		t.Fatal("Clip() ok = false, want true")
	}
	if clipped != VLine(2, 3, 3) {
		t.Errorf("Clip() = %+v, want %+v", clipped, VLine(2, 3, 3))
	}
	if _, ok := HLine(0, 0, 3).Clip(NewRect(5, 5, 1, 1)); ok {
		t.Error("Clip() of disjoint line ok = true")
	}
}
