package physics

// Circle is a circular collision shape.
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides reports whether two circles overlap. Touching is not a hit.
func (c Circle) Collides(other Circle) bool {
	reach := c.Radius + other.Radius
	return c.Center.Sub(other.Center).LengthSquared() < reach*reach
}

// Bounds returns the axis-aligned square enclosing the circle.
func (c Circle) Bounds() Rect {
	return Rect{Center: c.Center, Width: 2 * c.Radius, Height: 2 * c.Radius}
}

// Rect is an axis-aligned rectangle described by its center.
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// Contains reports whether point lies inside the rectangle. The upper edges
// are inclusive so a point sitting exactly on the field bound is accepted.
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X <= r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y <= r.Center.Y+r.Height/2
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(other.Center.X-other.Width/2 > r.Center.X+r.Width/2 ||
		other.Center.X+other.Width/2 < r.Center.X-r.Width/2 ||
		other.Center.Y-other.Height/2 > r.Center.Y+r.Height/2 ||
		other.Center.Y+other.Height/2 < r.Center.Y-r.Height/2)
}

// QuadTree is a point quadtree used as a collision broadphase.
type QuadTree[T any] struct {
	boundary Rect
	capacity int
	points   []Vector2D
	items    []T
	children *[4]QuadTree[T]
}

// NewQuadTree creates an empty tree covering boundary. capacity is the
// number of points a node holds before it subdivides.
func NewQuadTree[T any](boundary Rect, capacity int) *QuadTree[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &QuadTree[T]{
		boundary: boundary,
		capacity: capacity,
		points:   make([]Vector2D, 0, capacity),
		items:    make([]T, 0, capacity),
	}
}

// Insert stores item at point. It returns false when point lies outside
// the tree's boundary.
func (qt *QuadTree[T]) Insert(point Vector2D, item T) bool {
	if !qt.boundary.Contains(point) {
		return false
	}

	if qt.children == nil {
		if len(qt.points) < qt.capacity || qt.boundary.Width <= minCellSize {
			qt.points = append(qt.points, point)
			qt.items = append(qt.items, item)
			return true
		}
		qt.subdivide()
	}

	for i := range qt.children {
		if qt.children[i].Insert(point, item) {
			return true
		}
	}
	return false
}

// minCellSize stops subdivision when many points share one location.
const minCellSize = 1e-6

func (qt *QuadTree[T]) subdivide() {
	x, y := qt.boundary.Center.X, qt.boundary.Center.Y
	w, h := qt.boundary.Width/2, qt.boundary.Height/2

	quadrants := [4]Vector2D{
		{X: x - w/2, Y: y + h/2},
		{X: x + w/2, Y: y + h/2},
		{X: x - w/2, Y: y - h/2},
		{X: x + w/2, Y: y - h/2},
	}
	qt.children = new([4]QuadTree[T])
	for i, c := range quadrants {
		qt.children[i] = *NewQuadTree[T](Rect{Center: c, Width: w, Height: h}, qt.capacity)
	}

	// Points on shared edges go to the first quadrant that accepts them.
	points, items := qt.points, qt.items
	qt.points, qt.items = qt.points[:0], qt.items[:0]
	for i, p := range points {
		placed := false
		for j := range qt.children {
			if qt.children[j].Insert(p, items[i]) {
				placed = true
				break
			}
		}
		if !placed {
			qt.points = append(qt.points, p)
			qt.items = append(qt.items, items[i])
		}
	}
}

// Query appends to dst every item whose point lies inside area.
func (qt *QuadTree[T]) Query(area Rect, dst []T) []T {
	if !qt.boundary.Intersects(area) {
		return dst
	}
	for i, p := range qt.points {
		if area.Contains(p) {
			dst = append(dst, qt.items[i])
		}
	}
	if qt.children != nil {
		for i := range qt.children {
			dst = qt.children[i].Query(area, dst)
		}
	}
	return dst
}

// Len returns the number of stored points.
func (qt *QuadTree[T]) Len() int {
	n := len(qt.points)
	if qt.children != nil {
		for i := range qt.children {
			n += qt.children[i].Len()
		}
	}
	return n
}

// Clear empties the tree while keeping its boundary and capacity.
func (qt *QuadTree[T]) Clear() {
	qt.points = qt.points[:0]
	qt.items = qt.items[:0]
	qt.children = nil
}
