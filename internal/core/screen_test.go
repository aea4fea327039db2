package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, 'X', ColorRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(3, 2) = %+v, expected {X Red}", cell)
	}

	// Out-of-bounds writes are ignored, reads return a blank cell
	s.SetCell(-1, 0, 'Y', ColorGreen)
	s.SetCell(10, 0, 'Y', ColorGreen)
	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell should return space, got %q", c.Rune)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, '#', ColorYellow)
	s.Clear()

	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear() left cell %+v", c)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize produced %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if c := s.GetCell(2, 2); c.Rune != 'A' {
		t.Errorf("content lost on grow: got %q", c.Rune)
	}

	s.Resize(3, 3)
	if c := s.GetCell(2, 2); c.Rune != 'A' {
		t.Errorf("content lost on shrink: got %q", c.Rune)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hey", ColorCyan)

	if got := strings.TrimRight(s.Row(1), " "); got != "  hey" {
		t.Errorf("Row(1) = %q, expected %q", got, "  hey")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "long", ColorCyan)
	if got := s.Row(0); !strings.HasSuffix(got, "lo") {
		t.Errorf("Row(0) = %q, expected text clipped to \"lo\"", got)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(1, 0, 4, '-', ColorGray)

	if got := strings.TrimRight(s.Row(0), " "); got != " ----" {
		t.Errorf("Row(0) = %q, expected %q", got, " ----")
	}

	// Clipped at the right edge
	s.DrawHLine(4, 1, 5, '=', ColorGray)
	if got := strings.TrimRight(s.Row(1), " "); got != "    ==" {
		t.Errorf("Row(1) = %q, expected %q", got, "    ==")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
