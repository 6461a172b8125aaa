package passive

import (
	"fmt"
	"math"

	"github.com/vovakirdan/passive/internal/core"
)

// Render draws the current game state to the screen.
// The play field [-1,1]² fills the screen; shapes are X-scaled by
// 1/aspect so they keep their proportions.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	gateShape := Shape{Kind: ShapeGate, Radius: g.cfg.Gates.Radius}
	for _, gv := range snap.Gates {
		g.drawShape(dst, gateShape, Instance{Position: gv.Position, Rotation: gv.Rotation})
	}

	enemyShape := Shape{Kind: ShapeEnemy, Radius: g.cfg.Enemies.Radius}
	for _, e := range snap.Enemies {
		g.drawShape(dst, enemyShape, Instance{Position: e})
	}

	playerShape := Shape{Kind: ShapePlayer, Radius: g.cfg.Player.Radius}
	if snap.Crashed {
		g.drawShapeColored(dst, playerShape, Instance{Position: snap.Player}, core.ColorBrightRed)
	} else {
		g.drawShape(dst, playerShape, Instance{Position: snap.Player})
	}

	g.drawHUD(dst, snap)

	switch {
	case snap.Crashed:
		drawCenteredMessage(dst, "BOOM", fmt.Sprintf("Survived %.1fs  |  Space to resume, R to restart", snap.Timer), core.ColorBrightRed)
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press Space to resume", core.ColorYellow)
	}
}

func (g *Game) drawShape(dst *core.Screen, s Shape, inst Instance) {
	g.drawShapeColored(dst, s, inst, s.Color())
}

// drawShapeColored traces the outline of the shape and marks its center.
func (g *Game) drawShapeColored(dst *core.Screen, s Shape, inst Instance, c core.Color) {
	for _, e := range Edges(s.WorldVertices(inst, g.aspect)) {
		drawSegment(dst, e, s.EdgeRune(), c)
	}
	col, row := ToCell(dst, inst.Position.ScaleX(1/g.aspect))
	dst.SetColored(col, row, s.Glyph(), c)
}

// drawSegment samples the segment once per cell it crosses.
func drawSegment(dst *core.Screen, seg Segment, r rune, c core.Color) {
	c0, r0 := ToCell(dst, seg.A)
	c1, r1 := ToCell(dst, seg.B)
	steps := max(abs(c1-c0), abs(r1-r0))
	if steps == 0 {
		dst.SetColored(c0, r0, r, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		col, row := ToCell(dst, seg.A.Add(seg.B.Sub(seg.A).Scale(t)))
		dst.SetColored(col, row, r, c)
	}
}

// ToCell maps an aspect-corrected point in [-1,1]² to a screen cell.
// +y points up on the field and down on the screen.
func ToCell(dst *core.Screen, p core.Vec2) (col, row int) {
	w := float32(dst.Width())
	h := float32(dst.Height())
	col = int(math.Floor(float64((p.X + 1) / 2 * w)))
	row = int(math.Floor(float64((1 - p.Y) / 2 * h)))
	// The closed edge of the field belongs to the last cell.
	if col == dst.Width() {
		col--
	}
	if row == dst.Height() {
		row--
	}
	return col, row
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" TIME %5.1fs  WAVE %d  ENEMIES %d  GATES %d ",
		snap.Timer, snap.Waves, len(snap.Enemies), len(snap.Gates))
	dst.DrawTextColored(1, 0, hud, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Clamp(max(len([]rune(title)), len([]rune(subtitle)))+4, 0, w)
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	dst.DrawTextCentered(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorDefault)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
