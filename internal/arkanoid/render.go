package arkanoid

import (
	"fmt"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Minimum terminal size the game renders at.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// line is one row of an overlay.
type line struct {
	text  string
	color core.Color
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	c := NewCanvas(dst, g.screenW, g.screenH)

	switch g.phase {
	case PhaseTitle:
		g.renderTitle(dst)
	case PhasePlaying:
		g.renderPlayfield(c)
		if g.paused {
			drawCenteredBox(dst, []line{
				{"PAUSED", core.ColorWhite},
				{"Press P to resume", core.ColorLightGray},
			})
		}
	case PhaseLevelComplete:
		g.renderPlayfield(c)
		drawCenteredBox(dst, []line{
			{fmt.Sprintf("LEVEL %d COMPLETE!", g.completedLevel), core.ColorGold},
			{fmt.Sprintf("Level Bonus: +%d points", g.cfg.Gameplay.LevelBonus*g.completedLevel), core.ColorSoftGreen},
			{fmt.Sprintf("Preparing Level %d...", g.level), core.ColorLightGray},
		})
	case PhaseGameOver, PhaseWin:
		if g.phase == PhaseWin {
			drawAll(c, g.fireworks)
		}
		g.renderEnd(dst)
	}

	drawAll(c, g.particles)
	g.renderMuteButton(dst)

	if g.messageTimer > 0 && g.message != "" {
		_, row := c.ToCell(0, g.screenH-60)
		dst.DrawTextCenteredColored(row, g.message, core.ColorWhite)
	}
}

func (g *Game) renderTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-6, "A R K A N O I D", core.ColorWhite)
	dst.DrawTextCenteredColored(mid-4, "Terminal Arkanoid", core.ColorLightGray)
	dst.DrawTextCenteredColored(mid-2, "Press SPACE to Start", core.ColorWhite)

	controls := []string{
		"Arrow Keys / A D - Move Paddle",
		"SPACE - Launch Ball(s)",
		"F - Fire Laser (when available)",
		"M - Toggle Mute / Click Mute Button",
		"P - Pause    Q - Quit",
	}
	dst.DrawTextCenteredColored(mid, "Controls:", core.ColorWhite)
	for i, text := range controls {
		dst.DrawTextCenteredColored(mid+1+i, text, core.ColorLightGray)
	}
}

// renderPlayfield draws the entities and the HUD.
func (g *Game) renderPlayfield(c *Canvas) {
	drawAll(c, g.bricks)
	drawAll(c, g.powerUps)
	drawAll(c, g.lasers)
	g.paddle.Draw(c)
	drawAll(c, g.balls)
	g.renderHUD(c.Screen())
}

// renderHUD draws score, level, lives and active effect indicators.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, "SCORE: "+humanize.Comma(int64(g.score)), core.ColorWhite)
	dst.DrawTextCenteredColored(0, fmt.Sprintf("LEVEL: %d", g.level), core.ColorWhite)
	lives := fmt.Sprintf("LIVES: %d", g.lives)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(lives)-1, 0, lives, core.ColorWhite)

	var indicators []line
	if len(g.balls) > 1 {
		indicators = append(indicators, line{fmt.Sprintf("BALLS: %d", len(g.balls)), core.ColorYellow})
	}
	if g.paddle.HasLaser {
		indicators = append(indicators, line{"LASER", KindLaser.Info().Color})
	}
	if g.paddle.HasGlue {
		indicators = append(indicators, line{"CATCH", KindGlue.Info().Color})
	}
	if g.paddle.Grown() {
		indicators = append(indicators, line{"GROW", KindGrow.Info().Color})
	}
	if len(indicators) == 0 {
		return
	}

	width := -2
	for _, ind := range indicators {
		width += utf8.RuneCountInString(ind.text) + 2
	}
	x := dst.Width() - width - 1
	for _, ind := range indicators {
		dst.DrawTextColored(x, 1, ind.text, ind.color)
		x += utf8.RuneCountInString(ind.text) + 2
	}
}

func (g *Game) renderEnd(dst *core.Screen) {
	lines := []line{{"GAME OVER", core.ColorSoftRed}}
	if g.phase == PhaseWin {
		lines = []line{
			{"CONGRATULATIONS!", core.ColorSoftGreen},
			{"You completed all levels!", core.ColorWhite},
		}
	}
	lines = append(lines,
		line{"Final Score: " + humanize.Comma(int64(g.score)), core.ColorWhite},
		line{"Press SPACE to return to Title", core.ColorLightGray},
	)

	top := dst.Height()/2 - len(lines)
	for i, l := range lines {
		dst.DrawTextCenteredColored(top+i*2, l.text, l.color)
	}
}

// muteLabel returns the text of the mute toggle.
func (g *Game) muteLabel() string {
	if g.muted {
		return "[♪ OFF]"
	}
	return "[♪ ON] "
}

// MuteButtonCells returns the cells the mute toggle occupies on a cols x rows screen.
func (g *Game) MuteButtonCells(cols, rows int) core.Rect {
	r := NewViewport(cols, rows, g.screenW, g.screenH).CellRect(g.MuteButton())
	r.W = max(r.W, utf8.RuneCountInString(g.muteLabel()))
	return r
}

func (g *Game) renderMuteButton(dst *core.Screen) {
	r := g.MuteButtonCells(dst.Width(), dst.Height())
	color := core.ColorSteelBlue
	if g.muted {
		color = core.ColorCrimson
	}
	dst.DrawTextColored(r.X, r.Y, g.muteLabel(), color)
}

// drawCenteredBox draws a centered message box with one line per row and a
// blank row between lines.
func drawCenteredBox(dst *core.Screen, lines []line) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l.text))
	}
	boxW := inner + 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		pad := (boxW - utf8.RuneCountInString(l.text)) / 2
		dst.DrawTextColored(boxX+pad, boxY+1+i*2, l.text, l.color)
	}
}
