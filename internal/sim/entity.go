// Package sim holds the per-frame simulation building blocks shared by the
// arcade games: fixed-capacity bullet pools, the enemy formation, contact
// detection and the phase/score/level state machine.
//
// Everything here is single-threaded and infallible once constructed.
// Construction validates configuration and returns ErrInvalidConfig.
package sim

import (
	"errors"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// ErrInvalidConfig is returned by constructors for unusable configuration.
var ErrInvalidConfig = errors.New("sim: invalid configuration")

// Playfield is the logical area entities live in, in playfield units.
type Playfield struct {
	W, H float64
}

// Entity is a plain positioned box.
type Entity struct {
	X, Y float64
	W, H float64
}

// Bounds returns the entity's bounding box.
func (e Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Right returns the x-coordinate of the right edge.
func (e Entity) Right() float64 {
	return e.X + e.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (e Entity) Bottom() float64 {
	return e.Y + e.H
}

// CenterX returns the horizontal center.
func (e Entity) CenterX() float64 {
	return e.X + e.W/2
}

// Bullet is a pool slot. Only active bullets move, collide and render.
type Bullet struct {
	Entity
	Active bool
}

// Enemy is a formation member. Dead enemies never come back within a level.
type Enemy struct {
	Entity
	Alive bool
}
