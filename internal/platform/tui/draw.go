package tui

import (
	"fmt"
	"strings"

	"github.com/emirpasha/sokak-snake/internal/core"
	"github.com/emirpasha/sokak-snake/internal/game"
)

// Cells are two columns wide so the grid looks roughly square in a
// terminal font.
const cellW = 2

// foodGlyph returns the rune and color for a food type.
func foodGlyph(t game.FoodType) (rune, core.Color) {
	switch t {
	case game.FoodSimit:
		return '@', core.ColorOrange
	case game.FoodDoner:
		return 'D', core.ColorYellow
	case game.FoodBaklava:
		return 'B', core.ColorBrightYellow
	case game.FoodCay:
		return 'c', core.ColorRed
	case game.FoodAyran:
		return 'a', core.ColorBrightWhite
	case game.FoodKahve:
		return 'k', core.ColorMagenta
	case game.FoodRaki:
		return 'r', core.ColorBrightCyan
	default:
		return '*', core.ColorWhite
	}
}

// drawGame renders a snapshot plus the latest flavor text into the
// screen buffer.
func drawGame(dst *core.Screen, snap game.Snapshot, title, flavor, deathLine string, muted bool) {
	dst.Clear()

	boxW := snap.GridW*cellW + 2
	boxH := snap.GridH + 2
	if dst.Width() < boxW || dst.Height() < boxH+4 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightRed)
		return
	}
	offX := (dst.Width() - boxW) / 2
	offY := core.Max(2, (dst.Height()-boxH)/2)

	drawHUD(dst, snap, title, muted)
	dst.DrawBox(offX, offY, boxW, boxH, core.ColorGray)

	// Map a grid cell to screen coordinates of its left column.
	toScreen := func(p core.Point) (int, int) {
		return offX + 1 + p.X*cellW, offY + 1 + p.Y
	}

	if snap.Food.In(snap.GridW, snap.GridH) {
		r, c := foodGlyph(snap.FoodType)
		fx, fy := toScreen(snap.Food)
		dst.SetCell(fx, fy, r, c)
	}
	if snap.CharmActive {
		cx, cy := toScreen(snap.Charm)
		dst.SetCell(cx, cy, 'Ø', core.ColorBrightBlue)
	}
	for i, seg := range snap.Snake {
		sx, sy := toScreen(seg)
		if i == 0 {
			dst.SetCell(sx, sy, 'O', core.ColorBrightGreen)
		} else {
			dst.SetCell(sx, sy, 'o', core.ColorGreen)
		}
	}

	// Transient drink flash right after ayran or rakı.
	if snap.OverlayActive && snap.Phase == game.PhaseRunning {
		label := "AYRAN!"
		if snap.OverlayFood == game.FoodRaki {
			label = "ŞEREFE!"
		}
		dst.DrawTextCentered(offY-1, label, core.ColorBrightMagenta)
	}

	if flavor != "" && snap.Phase == game.PhaseRunning {
		dst.DrawTextCentered(offY+boxH, flavor, core.ColorCyan)
	}

	switch snap.Phase {
	case game.PhaseReady:
		drawOverlay(dst, title, "Space: başla", "q: çık")
	case game.PhaseGameOver:
		score := fmt.Sprintf("Skor: %d  Rekor: %d", snap.Score, snap.BestScore)
		drawOverlay(dst, "Oyun Bitti", deathLine, score+"  Space: tekrar")
	}
}

// drawHUD draws the two status lines above the grid.
func drawHUD(dst *core.Screen, snap game.Snapshot, title string, muted bool) {
	line := fmt.Sprintf(" %s — Skor: %d  Rekor: %d", title, snap.Score, snap.BestScore)
	if snap.TeaStreak > 0 {
		line += fmt.Sprintf("  Çay: %d", snap.TeaStreak)
	}
	if muted {
		line += "  [sessiz]"
	}
	dst.DrawText(0, 0, line, core.ColorWhite)

	var tags []string
	switch snap.Traffic {
	case game.TrafficRed:
		tags = append(tags, "KIRMIZI IŞIK")
	case game.TrafficGreen:
		tags = append(tags, "yeşil ışık")
	}
	if snap.Frozen {
		tags = append(tags, "mola")
	}
	if snap.SpeedBoost {
		tags = append(tags, "hızlı")
	}
	if snap.Slowed {
		tags = append(tags, "ağır")
	}
	if snap.Drunk {
		tags = append(tags, "çakırkeyif")
	}
	if snap.Reversed {
		tags = append(tags, "ters")
	}
	if len(tags) == 0 {
		return
	}

	color := core.ColorBrightYellow
	if snap.Traffic == game.TrafficRed || snap.Frozen {
		color = core.ColorBrightRed
	}
	dst.DrawText(1, 1, strings.Join(tags, "  "), color)
}

// drawOverlay draws a centered boxed message over the playfield.
func drawOverlay(dst *core.Screen, line1, line2, line3 string) {
	maxLen := len([]rune(line1))
	if n := len([]rune(line2)); n > maxLen {
		maxLen = n
	}
	if n := len([]rune(line3)); n > maxLen {
		maxLen = n
	}
	boxW := maxLen + 4
	boxH := 5
	if line3 != "" {
		boxH = 6
	}
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+1, line1, core.ColorBrightYellow)
	if line2 != "" {
		dst.DrawTextCentered(boxY+2, line2, core.ColorWhite)
	}
	if line3 != "" {
		dst.DrawTextCentered(boxY+3, line3, core.ColorGray)
	}
}
