package sheet

import (
	"math"
	"testing"
)

func TestOpenClose(t *testing.T) {
	s := New(600)
	if s.IsOpen() || s.Height() != 0 {
		t.Fatal("sheet should start closed")
	}

	s.Toggle()
	if !s.IsOpen() || s.Height() != 300 || s.Top() != 300 {
		t.Errorf("open: height %v top %v", s.Height(), s.Top())
	}

	s.Toggle()
	if s.IsOpen() || s.Height() != 0 {
		t.Error("toggle should close")
	}
}

func TestDragOnlyFromHandle(t *testing.T) {
	s := New(600)
	s.Open()

	if s.BeginDrag(200) {
		t.Error("drag above the sheet should be ignored")
	}
	if s.BeginDrag(300 + HandleHeight) {
		t.Error("drag below the handle should be ignored")
	}
	if !s.BeginDrag(310) {
		t.Fatal("drag on the handle should start")
	}
}

func TestDragClamps(t *testing.T) {
	tests := []struct {
		y    float64
		want float64
	}{
		{0, 540},   // 90%
		{150, 450}, // 75%
		{590, 60},  // 10%
		{700, 60},
	}
	for _, tt := range tests {
		s := New(600)
		s.Open()
		s.BeginDrag(305)
		s.DragTo(tt.y)
		if math.Abs(s.Height()-tt.want) > 1e-9 {
			t.Errorf("DragTo(%v): height %v, want %v", tt.y, s.Height(), tt.want)
		}
	}
}

func TestEndDragCloseThreshold(t *testing.T) {
	s := New(600)
	s.Open()
	s.BeginDrag(305)
	s.DragTo(480) // 20%
	s.EndDrag()
	if s.IsOpen() {
		t.Error("sheet pulled below 25% should close")
	}

	s.Open()
	s.BeginDrag(305)
	s.DragTo(420) // 30%
	s.EndDrag()
	if !s.IsOpen() || s.Dragging() {
		t.Error("sheet at 30% should stay open and stop dragging")
	}
}

func TestResizeKeepsFraction(t *testing.T) {
	s := New(600)
	s.Open()
	s.Resize(1000)
	if s.Height() != 500 {
		t.Errorf("height after resize = %v, want 500", s.Height())
	}
}
