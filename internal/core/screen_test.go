package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(3, 4, 'o', ColorBlue)

	c := s.GetCell(3, 4)
	if c.Rune != 'o' || c.Color != ColorBlue {
		t.Errorf("GetCell(3, 4) = %+v, expected blue 'o'", c)
	}

	// Plain Set resets the color
	s.Set(3, 4, 'x')
	if c := s.GetCell(3, 4); c.Color != ColorDefault {
		t.Errorf("Set should use default color, got %v", c.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(5, 5)

	// None of these may panic
	s.Set(-1, 0, 'A')
	s.Set(5, 0, 'A')
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetColored(0, 5, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(0, 99) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.Fill('#')
	if s.String() != "####\n####\n####" {
		t.Errorf("Fill produced %q", s.String())
	}

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("Clear left content: %q", s.String())
	}
}

func TestScreenDrawTextClipsAndColors(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(5, 1, "abcdef", ColorGreen)

	if s.Row(1) != "     abc" {
		t.Errorf("Row(1) = %q, expected clipped text", s.Row(1))
	}
	if s.GetCell(6, 1).Color != ColorGreen {
		t.Error("DrawTextColored should color every rune")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "→x←")

	if s.Get(1, 0) != 'x' || s.Get(2, 0) != '←' {
		t.Errorf("multibyte runes should occupy one cell each, row = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")

	if s.Row(0) != "    ab    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawHLine(1, 2, 4, '-', ColorGray)
	s.DrawVLine(0, 1, 3, '|', ColorGray)

	if s.Row(2) != "|---- " {
		t.Errorf("Row(2) = %q", s.Row(2))
	}
	if s.Get(0, 3) != '|' || s.Get(0, 4) != ' ' {
		t.Error("DrawVLine drew the wrong length")
	}
	if s.GetCell(2, 2).Color != ColorGray {
		t.Error("lines should carry their color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3))

	expected := "┌───┐\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("DrawBox produced\n%s\nexpected\n%s", s.String(), expected)
	}
}

func TestScreenDrawMessageBox(t *testing.T) {
	s := NewScreen(30, 9)
	box := s.DrawMessageBox("LEVEL COMPLETE", "Score: 90")

	if box.W != len("LEVEL COMPLETE")+4 || box.H != 4 {
		t.Fatalf("box = %+v", box)
	}
	if !strings.Contains(s.Row(box.Y+1), "LEVEL COMPLETE") {
		t.Errorf("title row = %q", s.Row(box.Y+1))
	}
	if !strings.Contains(s.Row(box.Y+2), "Score: 90") {
		t.Errorf("second row = %q", s.Row(box.Y+2))
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorRed)

	s.Resize(3, 2)
	if s.Row(0) != "Hel" {
		t.Errorf("after shrink Row(0) = %q", s.Row(0))
	}

	s.Resize(6, 4)
	if s.Row(0) != "Hel   " {
		t.Errorf("after grow Row(0) = %q", s.Row(0))
	}
	if s.GetCell(1, 0).Color != ColorRed {
		t.Error("resize should keep colors")
	}
	if s.Row(-1) != "      " {
		t.Error("out of bounds row should be blank")
	}
}
