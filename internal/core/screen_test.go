package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("New screen should be filled with blanks, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColored(2, 3, '●', "1")
	if c := s.GetCell(2, 3); c.Rune != '●' || c.Color != "1" {
		t.Errorf("GetCell(2, 3) = %+v, expected red disc", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(0, 100) != ' ' {
		t.Error("Get out of bounds should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, 'X', "2")
	s.Clear()

	if c := s.GetCell(1, 1); c != blank {
		t.Errorf("after Clear() cell = %+v, expected blank", c)
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(8, 0, "abc", "3")

	if s.Row(0) != "        ab" {
		t.Errorf("Row(0) = %q, expected text clipped at the edge", s.Row(0))
	}
	if s.GetCell(9, 0).Color != "3" {
		t.Error("DrawTextColored should color every written cell")
	}
}

func TestScreenDrawTextCenteredRunes(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "●●●", ColorDefault)

	if s.Row(0) != "   ●●●   " {
		t.Errorf("Row(0) = %q, expected multibyte text centered by rune count", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorFrame)

	want := []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}
	for y, row := range want {
		if s.Row(y) != row {
			t.Errorf("Row(%d) = %q, expected %q", y, s.Row(y), row)
		}
	}
	if s.GetCell(0, 0).Color != ColorFrame {
		t.Error("box corners should use the frame color")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q, expected %q", got, "abc\ndef")
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Error("String() should separate rows with a single newline")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "wxyz")

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("Resize() = %dx%d, expected 2x3", s.Width(), s.Height())
	}
	if s.Row(0) != "wx" {
		t.Errorf("Row(0) = %q after shrink, expected preserved prefix", s.Row(0))
	}
	if s.Row(2) != "  " {
		t.Errorf("Row(2) = %q after grow, expected blanks", s.Row(2))
	}
}
