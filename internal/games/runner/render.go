package runner

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/beer-arcade/internal/core"
	"github.com/vovakirdan/beer-arcade/internal/impair"
)

// Visual characters for rendering
const (
	GroundChar = '═'
	DirtChar   = '▓'
	BodyChar   = '█'
	BeerChar   = '▒'
	FoamChar   = '░'
	LegLeft    = '╱'
	LegRight   = '╲'
)

// viewport maps world pixels onto screen cells.
type viewport struct {
	sx, sy float64
}

func (v viewport) x(wx float64) int { return int(math.Floor(wx * v.sx)) }
func (v viewport) y(wy float64) int { return int(math.Floor(wy * v.sy)) }

// rect converts a world box to the cells it covers, at least one cell.
func (v viewport) rect(b Box) core.Rect {
	x0, y0 := v.x(b.X), v.y(b.Y)
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if g.scratch == nil {
		g.scratch = core.NewScreen(w, h)
	} else {
		g.scratch.Resize(w, h)
	}
	world := g.scratch
	world.Clear()

	v := viewport{
		sx: float64(w) / g.cfg.World.Width,
		sy: float64(h) / g.cfg.World.Height,
	}

	g.drawGround(world, v)
	for _, e := range g.spawner.Entities() {
		if e.Kind == KindWife {
			g.drawWife(world, v, e)
		}
	}
	for _, e := range g.spawner.Entities() {
		if e.Kind == KindBeer {
			g.drawBeer(world, v, e)
		}
	}
	g.drawPlayer(world, v)
	if g.cfg.Debug.ShowHitboxes {
		g.drawHitboxes(world, v)
	}
	g.drawHUD(world)

	switch {
	case g.phase == phaseTitle:
		world.DrawMessageBox("BEER RUNNER", "Grab the beer, dodge the wife, jump the holes", "SPACE to start")
	case g.phase == phaseGameOver:
		world.DrawMessageBox("GAME OVER", reasonText(g.endReason),
			fmt.Sprintf("Score: %d  |  Best: %d", g.Score(), g.best),
			"SPACE or R to restart")
	case g.paused:
		world.DrawMessageBox("PAUSED", "Press P to resume")
	}

	wob := g.cfg.Drunkenness.ScreenWobble
	warp := impair.ScreenWobble(g.snap.Fraction, wob.MaxRotationDeg, wob.MaxOffsetPx, g.now)
	dst.Warp(world, warp.Angle, warp.OffsetX*v.sx, warp.OffsetY*v.sy)
}

func reasonText(reason string) string {
	switch reason {
	case ReasonFall:
		return "You fell into a hole!"
	case ReasonHit:
		return "The wife caught you!"
	default:
		return ""
	}
}

// drawGround draws the ground line and dirt, leaving hole gaps open.
func (g *Game) drawGround(dst *core.Screen, v viewport) {
	gy := v.y(g.cfg.World.GroundY)
	for x := 0; x < dst.Width(); x++ {
		wx := (float64(x) + 0.5) / v.sx
		if g.overHole(wx) {
			continue
		}
		dst.SetColored(x, gy, GroundChar, core.ColorBrightGreen)
		for y := gy + 1; y < dst.Height(); y++ {
			dst.SetColored(x, y, DirtChar, core.ColorGray)
		}
	}
}

func (g *Game) overHole(wx float64) bool {
	for _, e := range g.spawner.Entities() {
		if e.Kind == KindHole && wx >= e.X && wx < e.X+e.Gap {
			return true
		}
	}
	return false
}

// drawPlayer draws the runner: head, shirt and animated legs. Sway leans
// the sprite around its feet.
func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	r := v.rect(g.player.Box)
	lean := impair.Sway(g.snap.Fraction, g.cfg.Drunkenness.PlayerSway.MaxRotationDeg, g.now)
	headRows := max(1, r.H/3)
	legRows := max(1, r.H/4)
	stride := int(g.now/(120*time.Millisecond)) % 2
	grounded := g.player.Y >= g.floorY()-0.5

	for dy := 0; dy < r.H; dy++ {
		y := r.Y + dy
		shift := int(math.Round(math.Sin(lean) * float64(r.H-1-dy) * core.CellAspect))
		for dx := 0; dx < r.W; dx++ {
			x := r.X + dx + shift
			switch {
			case dy < headRows:
				ch := BodyChar
				if dy == headRows/2 && (dx == r.W/3 || dx == r.W-1-r.W/3) {
					ch = '•'
				}
				dst.SetColored(x, y, ch, core.ColorBrightWhite)
			case dy < r.H-legRows:
				dst.SetColored(x, y, BodyChar, core.ColorBlue)
			default:
				leg := LegLeft
				if (dx+stride)%2 == 1 || !grounded {
					leg = LegRight
				}
				if dx == 0 || dx == r.W-1 || dx%2 == stride || !grounded {
					dst.SetColored(x, y, leg, core.ColorCyan)
				}
			}
		}
	}
}

// drawBeer draws a mug with a foam head.
func (g *Game) drawBeer(dst *core.Screen, v viewport, e Entity) {
	r := v.rect(e.Box)
	dst.DrawRectColored(core.NewRect(r.X, r.Y, r.W, 1), FoamChar, core.ColorFoam)
	if r.H > 1 {
		dst.DrawRectColored(core.NewRect(r.X, r.Y+1, r.W, r.H-1), BeerChar, core.ColorAmber)
		dst.DrawVLine(r.Right(), r.Y+1, max(1, r.H-2), '▐')
	}
}

// drawWife draws the obstacle with a rolling pin raised.
func (g *Game) drawWife(dst *core.Screen, v viewport, e Entity) {
	r := v.rect(e.Box)
	head := max(1, r.H/3)
	dst.DrawRectColored(core.NewRect(r.X, r.Y, r.W, head), BodyChar, core.ColorBrightRed)
	dst.DrawRectColored(core.NewRect(r.X, r.Y+head, r.W, r.H-head), DirtChar, core.ColorMagenta)
	if r.Y > 0 {
		dst.DrawTextColored(r.X-1, r.Y-1, strings.Repeat("═", max(2, r.W/2)), core.ColorYellow)
	}
}

// drawHitboxes marks collision box corners.
func (g *Game) drawHitboxes(dst *core.Screen, v viewport) {
	corners := func(b Box) {
		r := v.rect(b)
		dst.SetColored(r.X, r.Y, '┌', core.ColorRed)
		dst.SetColored(r.Right()-1, r.Y, '┐', core.ColorRed)
		dst.SetColored(r.X, r.Bottom()-1, '└', core.ColorRed)
		dst.SetColored(r.Right()-1, r.Bottom()-1, '┘', core.ColorRed)
	}
	corners(g.playerHitbox())
	for _, e := range g.spawner.Entities() {
		if e.Kind != KindBeer {
			corners(e.Hitbox(&g.cfg))
		}
	}
}

// drawHUD draws score, best and the intoxication meter.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", g.Score()), core.ColorBrightWhite)
	best := fmt.Sprintf("BEST %d", g.best)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorBrightYellow)

	dst.DrawMeter(0, g.snap.Fraction, g.snap.Tier.ID)
}
