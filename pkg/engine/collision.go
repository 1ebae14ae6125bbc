package engine

import (
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// quadCapacity is the number of asteroids a quadtree node holds before it
// subdivides.
const quadCapacity = 8

// Destruction records one asteroid destroyed during a collision pass.
type Destruction struct {
	Asteroid entity.Handle
	Position physics.Vector2D
	Radius   float64
	Split    bool
	Points   int // zero when the ship rammed it

	parent entity.Entity
}

// CollisionReport summarises one collision pass.
type CollisionReport struct {
	Destroyed []Destruction
	ShipHit   bool
	Score     int
}

// Collisions finds bullet/asteroid and ship/asteroid overlaps, marks the
// participants dead and creates asteroid fragments. Collisions across the
// wrap seam are not detected.
type Collisions struct {
	spawner *Spawner
	points  int
	tree    *physics.QuadTree[indexed]

	// scratch, reused between frames
	bullets []entity.Handle
	stray   []indexed
	found   []indexed
	reach   float64
}

// indexed is an asteroid handle with its position in store order.
type indexed struct {
	handle entity.Handle
	order  int
}

// NewCollisions creates a collision pass over a field of cfg's size.
// Fragments are produced by spawner.
func NewCollisions(cfg *config.GameConfig, spawner *Spawner) *Collisions {
	side := 2 * cfg.Physics.WrapBound
	return &Collisions{
		spawner: spawner,
		points:  cfg.Asteroids.Points,
		tree: physics.NewQuadTree[indexed](
			physics.Rect{Width: side, Height: side},
			quadCapacity,
		),
	}
}

// Resolve runs one collision pass. It must run between the step and the
// reap; entities already marked dead take no part.
func (c *Collisions) Resolve(store *entity.Store, ship entity.Handle) CollisionReport {
	var report CollisionReport
	c.index(store)

	for _, bh := range c.bullets {
		b, _ := store.Get(bh)
		hit, ok := c.firstHit(store, b.Collider())
		if !ok {
			continue
		}
		b.Kill()
		d := c.destroy(store, hit, c.points)
		report.Score += d.Points
		report.Destroyed = append(report.Destroyed, d)
	}

	if s, ok := store.Get(ship); ok && !s.Dead() {
		if hit, ok := c.firstHit(store, s.Collider()); ok {
			report.ShipHit = true
			report.Destroyed = append(report.Destroyed, c.destroy(store, hit, 0))
		}
	}

	// No pointers into the store are held past this point.
	for _, d := range report.Destroyed {
		if !d.Split {
			continue
		}
		for _, f := range c.spawner.Fragments(d.parent) {
			store.Create(f)
		}
	}

	return report
}

// index rebuilds the asteroid quadtree and collects the live bullets.
func (c *Collisions) index(store *entity.Store) {
	c.tree.Clear()
	c.bullets = c.bullets[:0]
	c.stray = c.stray[:0]
	c.reach = 0

	order := 0
	for h, e := range store.All() {
		order++
		if e.Dead() {
			continue
		}
		switch e.Kind {
		case entity.Asteroid:
			item := indexed{handle: h, order: order}
			if !c.tree.Insert(e.Position, item) {
				c.stray = append(c.stray, item)
			}
			c.reach = max(c.reach, e.Radius)
		case entity.Bullet:
			c.bullets = append(c.bullets, h)
		}
	}
}

// firstHit returns the live asteroid overlapping circle that comes first
// in store order.
func (c *Collisions) firstHit(store *entity.Store, circle physics.Circle) (entity.Handle, bool) {
	area := physics.Circle{Center: circle.Center, Radius: circle.Radius + c.reach}.Bounds()
	c.found = c.tree.Query(area, c.found[:0])
	c.found = append(c.found, c.stray...)

	best := indexed{order: -1}
	for _, it := range c.found {
		if best.order >= 0 && it.order > best.order {
			continue
		}
		a, ok := store.Get(it.handle)
		if ok && !a.Dead() && a.Collider().Collides(circle) {
			best = it
		}
	}
	return best.handle, best.order >= 0
}

func (c *Collisions) destroy(store *entity.Store, h entity.Handle, points int) Destruction {
	a, _ := store.Get(h)
	d := Destruction{
		Asteroid: h,
		Position: a.Position,
		Radius:   a.Radius,
		Split:    c.spawner.CanSplit(a.Radius),
		Points:   points,
		parent:   *a,
	}
	a.Kill()
	return d
}
