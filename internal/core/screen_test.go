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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Fg != ColorDefault || c.Bg != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetKeepsColours(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'x', Fg: ColorGreen, Bg: ColorBlue})
	s.Set(5, 5, 'X')

	c := s.GetCell(5, 5)
	if c.Rune != 'X' || c.Fg != ColorGreen || c.Bg != ColorBlue {
		t.Errorf("GetCell(5, 5) = %+v, expected X green on blue", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetCell(0, -1, Cell{Rune: 'A'})
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Héllo", ColorYellow, ColorDefault)

	for i, ch := range []rune("Héllo") {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Fg != ColorYellow {
			t.Errorf("DrawText: expected %q yellow at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello", ColorDefault, ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "●●", ColorDefault, ColorDefault)

	if s.Get(9, 2) != '●' || s.Get(10, 2) != '●' {
		t.Errorf("DrawTextCentered should count runes, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Fg != ColorGray {
		t.Error("box should use the requested colour")
	}
}

func TestScreenFillAndMap(t *testing.T) {
	s := NewScreen(6, 4)
	r := NewRect(1, 1, 3, 2)
	s.FillRect(r, Cell{Rune: ' ', Bg: ColorBlue})
	s.Map(r, Cell.Reverse)

	c := s.GetCell(2, 2)
	if c.Bg != ColorWhite || c.Fg != ColorBlue {
		t.Errorf("reversed blue cell = %+v, expected blue on white", c)
	}
	if s.GetCell(0, 0).Bg != ColorDefault {
		t.Error("Map should not touch cells outside the rect")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault, ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault, ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault, ColorDefault)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if !strings.HasPrefix(s.Row(1), "BBB") {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.Row(-1) != "     " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Bounds() != NewRect(0, 0, 8, 4) {
		t.Errorf("Bounds() = %+v", s.Bounds())
	}
}
