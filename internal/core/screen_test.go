package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("NewScreen(80, 24) = %dx%d", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(3, 2, '█', ColorBlue)

	cell := s.GetCell(3, 2)
	if cell.Rune != '█' || cell.Color != ColorBlue {
		t.Errorf("GetCell(3, 2) = %+v, expected blue block", cell)
	}

	// Out of bounds writes are ignored and reads are blank.
	s.SetColored(-1, 0, 'X', ColorBlue)
	s.SetColored(10, 0, 'X', ColorBlue)
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("GetCell out of bounds = %+v, expected blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), '#', ColorYellow)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if row := s.Row(1); !strings.HasPrefix(row, "  Hello") {
		t.Errorf("Row(1) = %q, expected text at column 2", row)
	}

	// Clipped at the right boundary.
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox should draw horizontal and vertical edges")
	}
}

func TestScreenDrawVLineDashed(t *testing.T) {
	s := NewScreen(5, 10)
	s.DrawVLine(2, 0, 10, 2, '│', ColorGray)

	for y := 0; y < 10; y++ {
		want := ' '
		if y%2 == 0 {
			want = '│'
		}
		if got := s.Get(2, y); got != want {
			t.Errorf("Get(2, %d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if got := s.Row(7); got != strings.Repeat(" ", 15) {
		t.Errorf("New rows should be blank, got %q", got)
	}
}
