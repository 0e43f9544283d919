package pong

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// Side identifies which edge of the playfield a paddle defends.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Ball is the square ball with its per-tick velocity.
type Ball struct {
	sim.Entity
	VX, VY float64
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Stop zeroes the velocity.
func (b *Ball) Stop() {
	b.VX, b.VY = 0, 0
}

// BounceWalls reflects the ball off the top and bottom walls. The ball is
// clamped onto the wall it touched and its vertical velocity points back
// into the field. Reports whether a wall was hit.
func BounceWalls(b *Ball, field sim.Playfield) bool {
	switch {
	case b.Y <= 0:
		b.Y = 0
		b.VY = math.Abs(b.VY)
		return true
	case b.Bottom() >= field.H:
		b.Y = field.H - b.H
		b.VY = -math.Abs(b.VY)
		return true
	}
	return false
}

// BouncePaddle reflects the ball off a paddle it overlaps while moving
// toward that paddle's side. The ball is clamped to the paddle face so it
// cannot pass through on the same tick.
func BouncePaddle(b *Ball, paddle sim.Entity, side Side) bool {
	if !b.Bounds().Intersects(paddle.Bounds()) {
		return false
	}

	switch side {
	case SideLeft:
		if b.VX >= 0 {
			return false
		}
		b.X = paddle.Right()
		b.VX = math.Abs(b.VX)
	case SideRight:
		if b.VX <= 0 {
			return false
		}
		b.X = paddle.X - b.W
		b.VX = -math.Abs(b.VX)
	}
	return true
}

// Scorer returns the side credited with a point once the ball reaches the
// opposite edge. The second result is false while the ball is in play.
func Scorer(b *Ball, field sim.Playfield) (Side, bool) {
	switch {
	case b.X <= 0:
		return SideRight, true
	case b.Right() >= field.W:
		return SideLeft, true
	}
	return SideLeft, false
}
