package pong

import "math"

// updateCPU moves the right paddle toward the ball with skill-limited speed.
// The CPU only reacts while the ball is travelling toward it.
func (g *Game) updateCPU() {
	if g.ball.VX <= 0 {
		return
	}

	skill := g.difficulty.Lerp(g.cfg.CPU.MinSkill, g.cfg.CPU.MaxSkill, 0, int(g.tickCount))
	paddle := &g.paddles[SideRight]

	targetY := g.ball.Y + g.ball.H/2 - paddle.H/2
	diff := targetY - paddle.Y

	moveSpeed := g.cfg.Paddles.Speed * skill
	if math.Abs(diff) > moveSpeed {
		if diff > 0 {
			paddle.Y += moveSpeed
		} else {
			paddle.Y -= moveSpeed
		}
	}
}
