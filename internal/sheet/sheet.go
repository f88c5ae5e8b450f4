// Package sheet implements a bottom sheet that slides up over the page and
// can be resized by dragging its handle.
package sheet

// Height limits as fractions of the viewport.
const (
	OpenFraction  = 0.5
	MinFraction   = 0.1
	MaxFraction   = 0.9
	CloseFraction = 0.25
	HandleHeight  = 28.0
)

// Sheet tracks whether the sheet is open and how tall it is.
type Sheet struct {
	viewport float64
	fraction float64
	open     bool
	dragging bool
}

func New(viewportHeight float64) *Sheet {
	return &Sheet{viewport: viewportHeight}
}

// Resize keeps the height fraction and adopts the new viewport.
func (s *Sheet) Resize(viewportHeight float64) {
	s.viewport = viewportHeight
}

func (s *Sheet) Open() {
	s.open = true
	s.fraction = OpenFraction
}

func (s *Sheet) Close() {
	s.open = false
	s.dragging = false
	s.fraction = 0
}

func (s *Sheet) Toggle() {
	if s.open {
		s.Close()
		return
	}
	s.Open()
}

func (s *Sheet) IsOpen() bool { return s.open }

func (s *Sheet) Dragging() bool { return s.dragging }

// Height in px.
func (s *Sheet) Height() float64 { return s.fraction * s.viewport }

// Top is the viewport y of the sheet's upper edge.
func (s *Sheet) Top() float64 { return s.viewport - s.Height() }

// OnHandle reports whether viewport y falls on the drag handle.
func (s *Sheet) OnHandle(y float64) bool {
	top := s.Top()
	return s.open && y >= top && y < top+HandleHeight
}

// Contains reports whether viewport y is covered by the sheet.
func (s *Sheet) Contains(y float64) bool {
	return s.open && y >= s.Top()
}

// BeginDrag starts a drag if y is on the handle.
func (s *Sheet) BeginDrag(y float64) bool {
	if !s.OnHandle(y) {
		return false
	}
	s.dragging = true
	return true
}

// DragTo moves the top edge to y within the height limits.
func (s *Sheet) DragTo(y float64) {
	if !s.dragging || s.viewport <= 0 {
		return
	}
	f := (s.viewport - y) / s.viewport
	s.fraction = min(max(f, MinFraction), MaxFraction)
}

// EndDrag finishes a drag, closing the sheet if it was pulled low.
func (s *Sheet) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	if s.fraction < CloseFraction {
		s.Close()
	}
}
