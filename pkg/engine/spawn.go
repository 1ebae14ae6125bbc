package engine

import (
	"math/rand/v2"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// seedStream is the second PCG word; the configured seed picks the first.
const seedStream = 0x9e3779b97f4a7c15

// Spawner creates asteroids. Its random source is seeded from the
// configuration so a given seed always produces the same field.
type Spawner struct {
	cfg   config.AsteroidsConfig
	bound float64
	rng   *rand.Rand
}

// NewSpawner creates a spawner for cfg.
func NewSpawner(cfg *config.GameConfig) *Spawner {
	s := &Spawner{
		cfg:   cfg.Asteroids,
		bound: cfg.Physics.WrapBound,
	}
	s.Reseed(cfg.Asteroids.Seed)
	return s
}

// Reseed restarts the random sequence from seed.
func (s *Spawner) Reseed(seed uint64) {
	s.rng = rand.New(rand.NewPCG(seed, seedStream))
}

// Populate creates count asteroids no closer than SafeDistance to avoid.
func (s *Spawner) Populate(store *entity.Store, count int, avoid physics.Vector2D) []entity.Handle {
	handles := make([]entity.Handle, 0, count)
	for i := 0; i < count; i++ {
		handles = append(handles, store.Create(s.Asteroid(avoid)))
	}
	return handles
}

// Asteroid returns a randomly sized, drifting and spinning asteroid placed
// between SafeDistance and the field bound away from avoid. The distance
// holds across the wrap seam too, since an offset no longer than bound
// is also the shortest way round the field.
func (s *Spawner) Asteroid(avoid physics.Vector2D) entity.Entity {
	distance := s.between(s.cfg.SafeDistance, max(s.cfg.SafeDistance, s.bound))
	position := physics.WrapAroundPoint(avoid.Add(physics.FromDegrees(s.angle(), distance)), s.bound)

	a := entity.New(entity.Asteroid, position, s.between(s.cfg.MinRadius, s.cfg.MaxRadius))
	a.Velocity = physics.FromDegrees(s.angle(), s.between(s.cfg.MinSpeed, s.cfg.MaxSpeed))
	a.Angle = s.angle()
	a.AngularVelocity = s.between(-s.cfg.MaxSpin, s.cfg.MaxSpin)
	return a
}

// Fragments returns the two pieces a destroyed asteroid breaks into. They
// start at the parent's position and fly apart in opposite directions on
// top of the parent's drift.
func (s *Spawner) Fragments(parent entity.Entity) [2]entity.Entity {
	radius := parent.Radius * s.cfg.SplitFactor
	heading := s.angle()
	speed := s.between(s.cfg.MinSpeed, s.cfg.MaxSpeed)

	var out [2]entity.Entity
	for i := range out {
		f := entity.New(entity.Asteroid, parent.Position, radius)
		f.Velocity = parent.Velocity.Add(physics.FromDegrees(heading+float64(i)*180, speed))
		f.Angle = parent.Angle
		f.AngularVelocity = s.between(-s.cfg.MaxSpin, s.cfg.MaxSpin)
		out[i] = f
	}
	return out
}

// CanSplit reports whether an asteroid of radius breaks into fragments
// rather than vanishing.
func (s *Spawner) CanSplit(radius float64) bool {
	return radius > s.cfg.MinSplitRadius
}

func (s *Spawner) angle() float64 {
	return s.rng.Float64() * physics.FullTurn
}

func (s *Spawner) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
