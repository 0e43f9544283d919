package sim

import "fmt"

// PoolConfig describes bullets handed out by a BulletPool.
type PoolConfig struct {
	Capacity int     // Number of slots, fixed for the pool's lifetime
	Width    float64 // Bullet width
	Height   float64 // Bullet height
	Velocity float64 // Vertical units per tick; negative travels up
}

// BulletPool is a fixed-size set of bullet slots.
// Firing takes the first inactive slot; a full pool drops the shot.
type BulletPool struct {
	cfg   PoolConfig
	field Playfield
	slots []Bullet
}

// NewBulletPool creates a pool with every slot inactive.
func NewBulletPool(cfg PoolConfig, field Playfield) (*BulletPool, error) {
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("%w: bullet capacity must be positive, got %d", ErrInvalidConfig, cfg.Capacity)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: bullet size must be positive, got %vx%v", ErrInvalidConfig, cfg.Width, cfg.Height)
	}

	p := &BulletPool{
		cfg:   cfg,
		field: field,
		slots: make([]Bullet, cfg.Capacity),
	}
	for i := range p.slots {
		p.slots[i].W = cfg.Width
		p.slots[i].H = cfg.Height
	}
	return p, nil
}

// Fire activates the first inactive slot, horizontally centered on originX.
// Upward bullets start with their bottom edge at originY, downward bullets
// with their top edge there. Returns false when every slot is busy.
func (p *BulletPool) Fire(originX, originY float64) bool {
	for i := range p.slots {
		b := &p.slots[i]
		if b.Active {
			continue
		}

		b.X = originX - b.W/2
		if p.cfg.Velocity < 0 {
			b.Y = originY - b.H
		} else {
			b.Y = originY
		}
		b.Active = true
		return true
	}
	return false
}

// Advance moves active bullets by velocity*dt and retires the ones whose
// top edge passed above 0 or below the playfield height.
func (p *BulletPool) Advance(dt float64) {
	for i := range p.slots {
		b := &p.slots[i]
		if !b.Active {
			continue
		}

		b.Y += p.cfg.Velocity * dt
		if b.Y < 0 || b.Y > p.field.H {
			b.Active = false
		}
	}
}

// Deactivate retires slot i. Out-of-range indexes are ignored.
func (p *BulletPool) Deactivate(i int) {
	if i < 0 || i >= len(p.slots) {
		return
	}
	p.slots[i].Active = false
}

// Reset retires every slot.
func (p *BulletPool) Reset() {
	for i := range p.slots {
		p.slots[i].Active = false
	}
}

// Bullets returns the slots in pool order. Callers must not modify them.
func (p *BulletPool) Bullets() []Bullet {
	return p.slots
}

// ActiveCount returns the number of bullets in flight.
func (p *BulletPool) ActiveCount() int {
	n := 0
	for _, b := range p.slots {
		if b.Active {
			n++
		}
	}
	return n
}

// Cap returns the pool capacity.
func (p *BulletPool) Cap() int {
	return len(p.slots)
}
