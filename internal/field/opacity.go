package field

// Band is the vertical extent of a page section in viewport coordinates.
type Band struct {
	Top, Bottom float64
}

// visibleFraction is the share of the viewport height covered by b.
func (b Band) visibleFraction(viewportHeight float64) float64 {
	top := max(0, b.Top)
	bottom := min(viewportHeight, b.Bottom)
	visible := max(0, bottom-top)
	return visible / viewportHeight
}

// ComputeOpacity fades the field under active sections: each band
// contributes 1 minus its visible fraction, and the sum is clamped to [0, 1].
// With no active band the field is fully visible.
func ComputeOpacity(active []Band, viewportHeight float64) float64 {
	if len(active) == 0 || viewportHeight <= 0 {
		return 1
	}
	total := 0.0
	for _, b := range active {
		total += 1 - b.visibleFraction(viewportHeight)
	}
	return clamp01(total)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
