package snake

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/poopsnake/internal/core"
)

// Glyphs used on the playfield.
const (
	glyphSegment   = '●'
	glyphBomb      = '✹'
	glyphExplosion = '✸'
	glyphGulp      = '█'
)

// Layout rows relative to the top of the screen.
const (
	hudRow    = 0
	boxTopRow = 1
)

// MinScreen returns the screen size needed to draw a rows x cols playfield.
func MinScreen(rows, cols int) (w, h int) {
	return cols + 2, rows + 5
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws s into dst.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()

	minW, minH := MinScreen(s.Rows, s.Cols)
	if dst.Width() < minW || dst.Height() < minH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Resize to at least %dx%d", minW, minH))
		return
	}

	box := core.NewRect((dst.Width()-minW)/2, boxTopRow, minW, s.Rows+2)
	field := core.NewRect(box.X+1, box.Y+1, s.Cols, s.Rows)
	cell := func(p Point) (int, int) { return field.X + p.Col, field.Y + p.Row }

	renderHUD(dst, s)

	dst.DrawBox(box, core.ColorWhite)
	dst.FillRect(field, core.Cell{Rune: ' ', Fg: core.ColorWhite, Bg: core.ColorBlue})
	put := func(p Point, r rune, fg core.Color) {
		x, y := cell(p)
		dst.SetCell(x, y, core.Cell{Rune: r, Fg: fg, Bg: core.ColorBlue})
	}

	// Hazards
	for _, h := range s.Hazards {
		switch h.Phase {
		case PhaseGood:
			put(h.Pos, glyphSegment, core.ColorBrown)
		case PhaseBomb:
			glyph := glyphSegment
			// Blink in the last third before going off.
			if h.Progress > 2.0/3.0 && s.Tick%2 == 0 {
				glyph = glyphBomb
			}
			put(h.Pos, glyph, core.ColorRed)
		}
	}
	for _, e := range s.Explosions {
		put(e.Pos, glyphExplosion, core.ColorOrange)
	}

	// Snake
	snakeColor := core.ColorBrightGreen
	if s.RewardFlash > 0 && s.RewardFlash%2 == 1 {
		snakeColor = core.ColorBrightCyan
	}
	for _, seg := range s.Snake {
		put(seg, glyphSegment, snakeColor)
	}

	if s.HasFood {
		put(s.Food, glyphSegment, core.ColorBrightYellow)
	}

	// Gulp overlay covers food and body around the head.
	if s.State == StateChomping {
		grid := Grid{Rows: s.Rows, Cols: s.Cols}
		head := s.Head()
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				p := grid.Wrap(Point{Row: head.Row + dr, Col: head.Col + dc})
				if gulpCovers(s.ChompElapsed, s.Dir, dr, dc) {
					put(p, glyphGulp, core.ColorBrightGreen)
				}
			}
		}
	}

	// Floating texts, clipped to the playfield
	for _, t := range s.Texts {
		x, y := cell(t.Pos)
		x++
		n := utf8.RuneCountInString(t.Text)
		if x+n > field.Right() {
			x = field.Right() - n
		}
		x = max(x, field.X)
		i := 0
		for _, r := range t.Text {
			if x+i < field.Right() {
				dst.SetCell(x+i, y, core.Cell{Rune: r, Fg: core.ColorBrightWhite, Bg: core.ColorBlue})
			}
			i++
		}
	}

	footer := box.Bottom()
	dst.DrawTextCentered(footer, "WASD/arrows to move, P to pause, Q to quit.", core.ColorGray, core.ColorDefault)
	if s.LevelFlash > 0 {
		dst.DrawTextCentered(footer+1, "LEVEL UP!  Speed increased", core.ColorBrightYellow, core.ColorDefault)
	}

	// Level-up: reverse video pulses
	if s.LevelFlash > 0 && (s.LevelFlash/2)%2 == 0 {
		dst.Map(box, core.Cell.Reverse)
	}

	switch s.State {
	case StateGameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d  -  R to restart, Q to quit", s.Score))
	case StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// gulpCovers reports whether the 5x5 gulp disc covers the offset (dr, dc)
// from the head, elapsed frames into the chomp. The mouth opens towards dir
// and closes as the chomp goes on.
func gulpCovers(elapsed int, dir Direction, dr, dc int) bool {
	radius := 2.0
	mouthBand, forwardMin := 0, 99
	switch {
	case elapsed <= 1:
		radius, mouthBand, forwardMin = 2.4, 2, 0
	case elapsed <= 3:
		radius, mouthBand, forwardMin = 2.2, 1, 1
	}
	if float64(dr*dr+dc*dc) > radius*radius {
		return false
	}

	vr, vc := dir.Delta()
	forward := vr*dr + vc*dc
	perp := vr*dc - vc*dr
	return forward < forwardMin || core.Abs(perp) > mouthBand
}

// renderHUD draws the centered status line.
func renderHUD(dst *core.Screen, s Snapshot) {
	status := fmt.Sprintf("Score: %d   Level: %d", s.Score, s.Level)
	if s.State == StateChomping {
		status += "   (CHOMP!)"
	}
	if s.Dropping {
		status += "   (Dropping...)"
	}
	dst.DrawTextCentered(hudRow, status, core.ColorBrightWhite, core.ColorDefault)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	r := dst.Bounds().Centered(maxLen+4, 5)

	dst.FillRect(r, core.Cell{Rune: ' ', Fg: core.ColorBrightWhite, Bg: core.ColorDefault})
	dst.DrawBox(r, core.ColorBrightWhite)
	dst.DrawTextCentered(r.Y+1, line1, core.ColorBrightYellow, core.ColorDefault)
	dst.DrawTextCentered(r.Y+3, line2, core.ColorBrightWhite, core.ColorDefault)
}
