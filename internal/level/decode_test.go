package level

import (
	"errors"
	"reflect"
	"testing"

	"sokoban/internal/component"
	"sokoban/internal/gamemap"
)

func TestDecodeSimpleLevel(t *testing.T) {
	lvl, err := Decode("W W W\nW P .\nW W W")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if lvl.Width != 3 || lvl.Height != 3 {
		t.Fatalf("expected 3x3, got %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.Count(KindWall) != 7 {
		t.Fatalf("expected 7 walls, got %d", lvl.Count(KindWall))
	}
	if lvl.Count(KindPlayer) != 1 {
		t.Fatalf("expected 1 player, got %d", lvl.Count(KindPlayer))
	}
	// P and . both establish floor.
	if lvl.Count(KindFloor) != 2 {
		t.Fatalf("expected 2 floor cells, got %d", lvl.Count(KindFloor))
	}
	if !lvl.Map.IsWalkable(1, 1) || !lvl.Map.IsWalkable(2, 1) {
		t.Fatal("player cell and floor cell should be walkable")
	}
	if lvl.Map.IsWalkable(0, 1) {
		t.Fatal("wall cell should not be walkable")
	}
}

func TestDecodeTokenSpawns(t *testing.T) {
	lvl, err := Decode("N P RB BS BB")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []Spawn{
		{component.Position{X: 1, Y: 0}, KindFloor},
		{component.Position{X: 1, Y: 0}, KindPlayer},
		{component.Position{X: 2, Y: 0}, KindFloor},
		{component.Position{X: 2, Y: 0}, KindBox},
		{component.Position{X: 3, Y: 0}, KindFloor},
		{component.Position{X: 3, Y: 0}, KindBoxSpot},
		{component.Position{X: 4, Y: 0}, KindFloor},
		{component.Position{X: 4, Y: 0}, KindBoxSpot},
		{component.Position{X: 4, Y: 0}, KindBox},
	}
	if !reflect.DeepEqual(lvl.Spawns, want) {
		t.Fatalf("spawns mismatch:\n got %v\nwant %v", lvl.Spawns, want)
	}
	if lvl.Map.At(0, 0).Kind != gamemap.TileVoid {
		t.Fatal("N should leave the cell void")
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	text := "W W W W\nW P RB BS\nW W W W"
	a, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	b, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(a.Spawns, b.Spawns) {
		t.Fatal("identical text produced different spawn sequences")
	}
	if a.ID != b.ID {
		t.Fatalf("identical text produced different IDs: %x vs %x", a.ID, b.ID)
	}
}

func TestDecodeIgnoresIndentationAndBlankEdges(t *testing.T) {
	indented := `
        W W W
        W P .
        W W W
        `
	a, err := Decode(indented)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	b, _ := Decode("W W W\nW P .\nW W W")
	if !reflect.DeepEqual(a.Spawns, b.Spawns) || a.ID != b.ID {
		t.Fatal("indented level should decode like its compact form")
	}
	// A trailing separator is not an extra token.
	if _, err := Decode("W W W \nW P . \nW W W"); err != nil {
		t.Fatalf("trailing whitespace should be tolerated: %v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"unknown token", "W W W\nW P X\nW W W"},
		{"lowercase token", "W W W\nW p .\nW W W"},
		{"ragged row", "W W W\nW P\nW W W"},
		{"blank line inside", "W W W\nW P .\n\nW W W"},
		{"empty", "  \n \n"},
		{"no player", "W W W\nW . .\nW W W"},
		{"two players", "W W W\nW P P\nW W W"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lvl, err := Decode(tc.text)
			if !errors.Is(err, ErrMalformedLevel) {
				t.Fatalf("expected ErrMalformedLevel, got %v", err)
			}
			if lvl != nil {
				t.Fatal("failed decode must not return a level")
			}
		})
	}
}

func TestDecodeErrorLocation(t *testing.T) {
	_, err := Decode("W W W\nW P ?\nW W W")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if de.Row != 1 || de.Col != 2 || de.Token != "?" {
		t.Fatalf("unexpected location: row=%d col=%d token=%q", de.Row, de.Col, de.Token)
	}
}
