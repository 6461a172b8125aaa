package passive

import (
	"github.com/vovakirdan/passive/internal/core"
)

// checkCollisions pauses the game on the first gate edge within the
// player's radius. Player and gate are both X-scaled by 1/aspect before
// testing so the geometry matches what is drawn.
func (g *Game) checkCollisions() {
	scale := 1 / g.aspect
	player := g.player.Coords.ScaleX(scale)
	radius := g.cfg.Player.Radius

	// Scaled gate vertices stay within max(scale, 1)*R of the scaled center.
	reach := g.cfg.Gates.Radius*max(scale, 1) + radius

	for i, gate := range g.gates {
		if g.cfg.Collision.BroadPhase &&
			!core.CirclePointIntersects(gate.Coords.ScaleX(scale), reach, player) {
			continue
		}

		for _, edge := range gate.Edges(g.cfg.Gates.Radius, g.aspect) {
			if !core.CircleSegmentIntersects(player, radius, edge.A, edge.B) {
				continue
			}

			g.paused = true
			g.crashed = true
			g.logger.Info("gate collision",
				"gate", i,
				"player", g.player.Coords,
				"gate_center", gate.Coords,
				"rotation", gate.Rotation,
				"edge_a", edge.A,
				"edge_b", edge.B,
			)
			return
		}
	}
}
