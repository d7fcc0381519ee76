package pour

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/beer-arcade/internal/core"
	"github.com/vovakirdan/beer-arcade/internal/impair"
)

// Visual characters for rendering
const (
	WallChar   = '┃'
	BaseChar   = '━'
	BeerChar   = '▒'
	FoamChar   = '░'
	SurfChar   = '~'
	BubbleChar = '°'
)

// glassRect is the glass bounding box in cells, sized from the screen.
func glassRect(w, h int) core.Rect {
	rows := max(4, int(float64(h)*0.55))
	cols := max(4, int(float64(rows)*0.64*core.CellAspect))
	x := w/2 - int(float64(cols)*0.5)
	y := int(float64(h) * 0.18)
	return core.NewRect(x, y, cols, rows)
}

// profile returns the horizontal extent of the glass at relative height t
// (0 top, 1 bottom) as fractions of its width. ok is false below a stemmed
// glass's bowl.
func profile(id string, t float64) (left, right float64, ok bool) {
	lerp := func(a, b float64) float64 { return a + (b-a)*t }
	switch id {
	case "pint":
		return lerp(0.1, 0), lerp(0.9, 1), true
	case "pilsner":
		return lerp(0.2, 0.4), lerp(0.8, 0.6), true
	case "flute":
		if t > 0.75 {
			return 0, 0, false
		}
		t /= 0.75
		return 0.35 + (0.4-0.35)*t, 0.65 + (0.6-0.65)*t, true
	default:
		return 0, 1, true
	}
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

	g.drawBackground(world)
	g.drawGlass(world)
	g.drawCharacter(world)
	if g.rimFlash > 0 {
		world.DrawBoxColored(core.NewRect(0, 0, w, h), core.ColorBrightRed)
	}

	warp := impair.Warp{UIScale: 1}
	if g.phase == phasePlaying {
		warp = impair.WarpFor(g.snap.Effects(), g.now-g.startedAt)
	}
	dst.Warp(world, warp.Angle, warp.OffsetX, warp.OffsetY)
	dst.Ghost(g.prev, warp.Ghosting)

	g.drawHUD(dst, warp.UIScale)
	g.drawPops(dst)

	switch {
	case g.phase == phaseTitle:
		dst.DrawMessageBox("BEER POUR",
			"Tilt with LEFT/RIGHT or the mouse to pour",
			"Hold SPACE or the mouse button to drink",
			"Don't spill!",
			"ENTER to start")
	case g.phase == phaseResult:
		lines := []string{
			"TIME UP",
			fmt.Sprintf("SCORE %d", g.score),
			fmt.Sprintf("MAX DRUNK: %s", g.maxTierID()),
			fmt.Sprintf("BEST COMBO: %d", g.bestCombo),
		}
		if g.comment != "" {
			lines = append(lines, g.comment)
		}
		lines = append(lines, fmt.Sprintf("Best: %d", g.best), "ENTER or R to play again")
		dst.DrawMessageBox(lines...)
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}

	if g.prev == nil {
		g.prev = core.NewScreen(w, h)
	}
	g.prev.CopyFrom(dst)
}

// drawBackground draws the bar shelf and a few rising bubbles.
func (g *Game) drawBackground(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	shelf := h - 2
	for x := 0; x < w; x++ {
		dst.SetColored(x, shelf, '▔', core.ColorOrange)
	}
	t := g.now.Seconds()
	for i := 0; i < 6; i++ {
		x := (i*w)/6 + w/12
		y := shelf - 1 - int(math.Mod(t*1.5+float64(i)*1.7, float64(max(1, shelf-2))))
		dst.SetColored(x, y, BubbleChar, core.ColorGray)
	}
}

// drawGlass draws the glass outline with its liquid, foam and slosh. The
// glass leans with the current tilt around its base.
func (g *Game) drawGlass(dst *core.Screen) {
	r := glassRect(dst.Width(), dst.Height())
	gl := g.glass
	rows := r.H

	liquid := core.ClampF(gl.InGlass, 0, 1) * float64(rows)
	foam := core.ClampF(gl.Foam, 0, 0.3) * float64(rows)
	surface := float64(rows) - liquid
	slosh := gl.Slosh * float64(rows)
	lean := math.Sin(g.tilt) * 0.5

	stemmed := false
	for dy := 0; dy < rows; dy++ {
		t := float64(dy) / float64(max(1, rows-1))
		left, right, ok := profile(gl.Spec.ID, t)
		shift := int(math.Round(lean * float64(rows-1-dy) * core.CellAspect))
		y := r.Y + dy
		if !ok {
			stemmed = true
			dst.SetColored(r.X+r.W/2+shift, y, '│', core.ColorBrightWhite)
			continue
		}
		x0 := r.X + int(math.Round(left*float64(r.W))) + shift
		x1 := r.X + int(math.Round(right*float64(r.W))) - 1 + shift
		dst.SetColored(x0, y, WallChar, core.ColorBrightWhite)
		dst.SetColored(x1, y, WallChar, core.ColorBrightWhite)

		for x := x0 + 1; x < x1; x++ {
			// The surface tips with the slosh across the glass width.
			rel := 0.0
			if x1-x0 > 1 {
				rel = float64(x-x0)/float64(x1-x0)*2 - 1
			}
			top := surface - slosh*rel
			row := float64(dy) + 0.5
			switch {
			case liquid > 0 && row >= top && row < top+1:
				dst.SetColored(x, y, SurfChar, core.ColorBrightYellow)
			case row >= top:
				dst.SetColored(x, y, BeerChar, core.ColorAmber)
			case row >= top-foam:
				dst.SetColored(x, y, FoamChar, core.ColorFoam)
			}
		}
	}

	base := r.Y + rows
	if stemmed {
		dst.DrawHLine(r.X+r.W/4, base, r.W/2, BaseChar)
	} else {
		shift := int(math.Round(lean * -core.CellAspect))
		left, right, _ := profile(gl.Spec.ID, 1)
		x0 := r.X + int(math.Round(left*float64(r.W))) + shift
		x1 := r.X + int(math.Round(right*float64(r.W))) + shift
		dst.DrawHLine(x0, base, x1-x0, BaseChar)
	}

	if gl.Spec.ID == "mug" {
		hx := r.X + r.W + int(math.Round(lean*float64(rows)))
		hy := r.Y + rows/4
		hh := max(1, rows*3/10)
		dst.SetColored(hx, hy, '╮', core.ColorBrightWhite)
		dst.DrawVLine(hx+1, hy+1, hh, '│')
		dst.SetColored(hx, hy+hh+1, '╯', core.ColorBrightWhite)
	}

	label := gl.Spec.Label
	dst.DrawTextColored(r.X+(r.W-utf8.RuneCountInString(label))/2, base+1, label, core.ColorGray)
}

// drawCharacter draws the drinker, whose face follows the tier.
func (g *Game) drawCharacter(dst *core.Screen) {
	x := int(float64(dst.Width())*0.18) - 3
	y := int(float64(dst.Height())*0.72) - 4

	tier := g.snap.Tier.ID
	eyes := "o o"
	if tier == "drunk" {
		eyes = "x x"
	}
	mouth := "  -  "
	if tier == "buzzed" || tier == "drunk" {
		mouth = " \\_/ "
	}
	cheeks := " "
	if tier != "" && tier != "sober" {
		cheeks = "*"
	}

	lines := []string{
		"  ___  ",
		" /   \\ ",
		"|" + cheeks + eyes + cheeks + "|",
		"|" + mouth + "|",
		" \\___/ ",
	}
	for i, l := range lines {
		dst.DrawTextColored(x, y+i, l, core.ColorYellow)
	}
	if cheeks == "*" {
		dst.SetColored(x+1, y+2, '*', core.ColorBrightRed)
		dst.SetColored(x+5, y+2, '*', core.ColorBrightRed)
	}
	if g.drinking {
		dst.DrawTextColored(x+7, y+3, "glug", core.ColorBrightCyan)
	}
}

// drawHUD draws timer, score, combo and the intoxication meter. UI warp
// pushes the HUD away from the screen center.
func (g *Game) drawHUD(dst *core.Screen, scale float64) {
	w := dst.Width()
	shift := int(math.Round((scale - 1) * float64(w) * 0.5))

	timer := fmt.Sprintf("TIME %4.1f", math.Max(0, g.timeLeft))
	color := core.ColorBrightWhite
	if g.timeLeft < 5 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(1-shift, 0, timer, color)

	score := fmt.Sprintf("SCORE %d", g.score)
	if g.combo > 1 {
		score += fmt.Sprintf("  x%d", g.combo)
	}
	dst.DrawTextColored(w-utf8.RuneCountInString(score)-1+shift, 0, score, core.ColorBrightYellow)

	dst.DrawMeter(0, g.snap.Fraction, g.snap.Tier.ID)
}

// drawPops draws floating score text rising above the glass.
func (g *Game) drawPops(dst *core.Screen) {
	base := int(float64(dst.Height()) * 0.15)
	for _, p := range g.pops {
		rise := int((popLife - p.Life) * 4)
		color := core.ColorBrightGreen
		if p.Life < popLife/2 {
			color = core.ColorGreen
		}
		dst.DrawTextCenteredColored(base-rise, p.Text, color)
	}
}
