package field

import "math"

type cell struct {
	X, Y int
}

// grid buckets particles into square cells of the connection distance so the
// pair pass only compares neighbouring cells.
type grid struct {
	buckets map[cell][]int
}

func newGrid() *grid {
	return &grid{buckets: make(map[cell][]int)}
}

func (g *grid) reset() {
	for k, v := range g.buckets {
		g.buckets[k] = v[:0]
	}
}

func cellOf(x, y, size float64) cell {
	return cell{X: int(math.Floor(x / size)), Y: int(math.Floor(y / size))}
}

func (g *grid) forEachPair(ps []Particle, maxDist float64, fn func(a, b *Particle, d float64)) {
	if maxDist <= 0 {
		return
	}
	g.reset()
	for i := range ps {
		c := cellOf(ps[i].X, ps[i].Y, maxDist)
		g.buckets[c] = append(g.buckets[c], i)
	}

	for i := range ps {
		c := cellOf(ps[i].X, ps[i].Y, maxDist)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, j := range g.buckets[cell{X: c.X + dx, Y: c.Y + dy}] {
					if j <= i {
						continue
					}
					d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
					if d < maxDist {
						fn(&ps[i], &ps[j], d)
					}
				}
			}
		}
	}
}
