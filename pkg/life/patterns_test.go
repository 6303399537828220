package life

import (
	"strings"
	"testing"
)

func TestGliderLayout(t *testing.T) {
	want := ".O.\n..O\nOOO"
	if got := Glider().String(); got != want {
		t.Fatalf("glider =\n%s\nwant\n%s", got, want)
	}
}

func TestGliderGunLayout(t *testing.T) {
	gun := GliderGun()
	if rows, cols := gun.Size(); rows != 9 || cols != 36 {
		t.Fatalf("gun size = %dx%d, want 9x36", rows, cols)
	}
	if gun.Population() != 36 {
		t.Fatalf("gun population = %d, want 36", gun.Population())
	}
	rows := strings.Split(gun.String(), "\n")
	if rows[0] != "........................O..........." {
		t.Fatalf("gun row 0 = %q", rows[0])
	}
	if rows[5] != "OO........O...O.OO....O.O..........." {
		t.Fatalf("gun row 5 = %q", rows[5])
	}
}

func TestParsePatternPadsShortRows(t *testing.T) {
	p := ParsePattern("O", "...O", "*#o")
	if rows, cols := p.Size(); rows != 3 || cols != 4 {
		t.Fatalf("size = %dx%d, want 3x4", rows, cols)
	}
	if got := p.String(); got != "O...\n...O\nOOO." {
		t.Fatalf("pattern =\n%s", got)
	}
}

func TestPatternByName(t *testing.T) {
	for _, name := range PatternNames() {
		p, err := PatternByName(name)
		if err != nil {
			t.Fatalf("PatternByName(%q): %v", name, err)
		}
		if p.Population() == 0 {
			t.Fatalf("pattern %q is empty", name)
		}
	}

	p, err := PatternByName(" Glider ")
	if err != nil {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
	p[0][0] = true
	if Glider()[0][0] {
		t.Fatal("PatternByName returned shared storage")
	}

	if _, err := PatternByName("spaceship-9000"); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}
