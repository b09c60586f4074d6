package turtle

// Rect is an axis-aligned bounding box in turtle-local coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Bounds returns the bounding box of all segment endpoints. The zero Rect
// is returned for an empty sequence.
func Bounds(segments []Segment) Rect {
	if len(segments) == 0 {
		return Rect{}
	}

	r := Rect{
		MinX: segments[0].X1, MaxX: segments[0].X1,
		MinY: segments[0].Y1, MaxY: segments[0].Y1,
	}
	for _, s := range segments {
		for _, p := range [][2]float64{{s.X1, s.Y1}, {s.X2, s.Y2}} {
			if p[0] < r.MinX {
				r.MinX = p[0]
			}
			if p[0] > r.MaxX {
				r.MaxX = p[0]
			}
			if p[1] < r.MinY {
				r.MinY = p[1]
			}
			if p[1] > r.MaxY {
				r.MaxY = p[1]
			}
		}
	}
	return r
}
