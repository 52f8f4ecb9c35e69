package choir

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-choir/internal/core"
	"github.com/vovakirdan/tui-choir/internal/sequence"
)

// Layout constants, in cells.
const (
	choirTop   = 2
	padTop     = 8
	padHeight  = 5
	singerTop  = padTop + padHeight + 1
	stageWidth = 4 * 10
)

// Singer figure, three rows tall.
var singerRows = [3]string{" o ", "/|\\", "/ \\"}

var pitchColors = [sequence.PitchCount]core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
}

var pitchLitColors = [sequence.PitchCount]core.Color{
	core.ColorBrightRed,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.drawTooSmall(dst)
		return
	}

	left := (dst.Width() - stageWidth) / 2
	g.drawHUD(dst)
	g.drawChoir(dst, left)
	g.drawPads(dst, left)
	g.drawSinger(dst)
	g.drawProgress(dst)
	g.drawFeedback(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Round: %d ", g.score, g.rounds+1)
	dst.DrawText(1, 0, hud)

	var mistakes string
	if g.mode == ModeClassic && g.cfg.Gameplay.MaxMistakes > 0 {
		mistakes = fmt.Sprintf(" Mistakes: %d/%d ", g.mistakes, g.cfg.Gameplay.MaxMistakes)
	} else {
		mistakes = fmt.Sprintf(" Mistakes: %d ", g.mistakes)
	}
	dst.DrawTextColor(dst.Width()-len(mistakes)-1, 0, mistakes, core.ColorGray)
}

// drawChoir draws one singer per pitch. The choir sways while it sings and
// the singer of the revealed pitch lights up.
func (g *Game) drawChoir(dst *core.Screen, left int) {
	sway := 0
	if g.playing {
		sway = swayOffset(g.choirPhase)
	}
	for i := 0; i < sequence.PitchCount; i++ {
		c := core.ColorGray
		if g.litLeft > 0 && g.litBy == core.CueChoir && int(g.litPitch) == i {
			c = pitchLitColors[i]
		}
		x := left + i*10 + 3 + sway
		for row, line := range singerRows {
			dst.DrawTextColor(x, choirTop+row, line, c)
		}
	}

	status := "Your turn"
	if g.playing {
		status = "Listen..."
	}
	dst.DrawTextCentered(choirTop+4, status, core.ColorCyan)
}

// drawPads draws the four note pads with their pitch names and key hints.
func (g *Game) drawPads(dst *core.Screen, left int) {
	hints := [sequence.PitchCount][]string{
		g.cfg.Keys.Low, g.cfg.Keys.MidLow, g.cfg.Keys.MidHigh, g.cfg.Keys.High,
	}
	for i, p := range sequence.Pitches {
		r := core.NewRect(left+i*10, padTop, 9, padHeight)
		c := pitchColors[i]
		if g.litLeft > 0 && g.litPitch == p {
			c = pitchLitColors[i]
			dst.DrawRect(core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2), '░', c)
		}
		dst.DrawBox(r, c)
		name := p.String()
		dst.DrawTextColor(r.X+(r.W-len([]rune(name)))/2, r.Y+1, name, c)
		hint := "[" + keyLabel(hints[i]) + "]"
		dst.DrawTextColor(r.X+(r.W-len([]rune(hint)))/2, r.Y+3, hint, core.ColorDefault)
	}
}

func (g *Game) drawSinger(dst *core.Screen) {
	sway := 0
	if g.singerSway > 0 {
		sway = swayOffset(g.singerPhase)
	}
	c := core.ColorDefault
	if g.litLeft > 0 && g.litBy == core.CueNote {
		c = pitchLitColors[g.litPitch]
	}
	x := dst.Width()/2 - 1 + sway
	for row, line := range singerRows {
		dst.DrawTextColor(x, singerTop+row, line, c)
	}
}

// drawProgress shows one marker per slot: filled when matched.
func (g *Game) drawProgress(dst *core.Screen) {
	var sb strings.Builder
	matched := g.seq.MatchedCount()
	for i := 0; i < sequence.Length; i++ {
		if i > 0 {
			sb.WriteRune(' ')
		}
		if i < matched {
			sb.WriteRune('●')
		} else {
			sb.WriteRune('○')
		}
	}
	dst.DrawTextCentered(singerTop+4, sb.String(), core.ColorDefault)

	replay := "[" + keyLabel(g.cfg.Keys.Replay) + "] replay  [P] pause"
	dst.DrawTextCentered(dst.Height()-1, replay, core.ColorGray)
}

func (g *Game) drawFeedback(dst *core.Screen) {
	switch g.feedback {
	case FeedbackCorrect:
		dst.DrawTextCentered(padTop-1, "  Bravo!  ", core.ColorBrightGreen)
	case FeedbackWrong:
		dst.DrawTextCentered(padTop-1, "  Wrong note, start over  ", core.ColorBrightRed)
	}
}

func (g *Game) drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := len([]rune(subtitle)) + 4
	if tw := len([]rune(title)) + 4; tw > w {
		w = tw
	}
	h := 5
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorYellow)
	dst.DrawTextCentered(r.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(r.Y+3, subtitle, core.ColorDefault)
}

// swayOffset maps a wobble phase to a horizontal offset of -1, 0 or 1.
func swayOffset(phase float64) int {
	return int(math.Round(math.Sin(2 * math.Pi * phase)))
}

// keyLabel returns a printable name for the first bound key.
func keyLabel(keys []string) string {
	if len(keys) == 0 {
		return "?"
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}
