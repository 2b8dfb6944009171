package pong

import (
	"math"
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┆'
)

// scoreRows is the number of rows above the playfield.
const scoreRows = 1

// Messages shown once the match is over.
const (
	LeftWonText   = "Left player won."
	RightWonText  = "Right player won."
	RestartPrompt = "Press <SPACE> to restart."
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= scoreRows {
		return
	}

	snap := g.engine.Snapshot()
	v := newViewport(dst, snap.FieldW, snap.FieldH)

	// Draw center line (net)
	centerX := dst.Width() / 2
	dst.DrawVLine(centerX, scoreRows, dst.Height()-scoreRows, 2, NetChar, core.ColorGray)

	// Draw paddles
	dst.DrawRect(v.rect(snap.Paddle(match.Player).Box()), PaddleChar, core.ColorBrightBlue)
	dst.DrawRect(v.rect(snap.Paddle(match.Opponent).Box()), PaddleChar, core.ColorCyan)

	// Draw ball
	dst.DrawRect(v.rect(snap.Ball.Box()), BallChar, core.ColorBrightWhite)

	// Draw scores
	left := strconv.Itoa(snap.Score[match.Player])
	right := strconv.Itoa(snap.Score[match.Opponent])
	dst.DrawTextColored(centerX-3-len(left), 0, left, core.ColorYellow)
	dst.DrawTextColored(centerX+4, 0, right, core.ColorYellow)

	// Draw labels
	dst.DrawTextColored(1, 0, "W/S", core.ColorGray)
	dst.DrawTextColored(dst.Width()-4, 0, "↑/↓", core.ColorGray)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.State == match.MatchOver {
		msg := LeftWonText
		if snap.Winner == match.Opponent {
			msg = RightWonText
		}
		drawCenteredMessage(dst, msg, RestartPrompt)
	}
}

// viewport maps playfield units onto the cells below the score row.
type viewport struct {
	sx, sy float64
	cols   int
	rows   int
}

func newViewport(dst *core.Screen, fieldW, fieldH float64) viewport {
	rows := dst.Height() - scoreRows
	return viewport{
		sx:   float64(dst.Width()) / fieldW,
		sy:   float64(rows) / fieldH,
		cols: dst.Width(),
		rows: rows,
	}
}

// rect returns the cells covered by b. Every object covers at least one cell
// and stays inside the playfield rows.
func (v viewport) rect(b core.Box) core.Rect {
	w := max(1, int(math.Round(b.W*v.sx)))
	h := max(1, int(math.Round(b.H*v.sy)))
	x := core.Clamp(int(math.Floor(b.X*v.sx)), 0, max(0, v.cols-w))
	y := core.Clamp(int(math.Floor(b.Y*v.sy)), 0, max(0, v.rows-h))
	return core.NewRect(x, y+scoreRows, w, h)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	// Draw box
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
