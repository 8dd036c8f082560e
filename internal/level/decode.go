// Package level turns textual level maps into spawn descriptors.
//
// A map is a sequence of lines, each a whitespace-separated list of tokens:
//
//	W   wall
//	.   floor
//	N   no cell (irregular level shapes)
//	P   player on floor
//	RB  box on floor
//	BS  box spot on floor
//	BB  box resting on a box spot
//
// Decoding is pure: the same text always yields the same Level.
package level

import (
	"errors"
	"fmt"
	"strings"

	"sokoban/internal/component"
	"sokoban/internal/gamemap"

	"github.com/cespare/xxhash/v2"
)

// ErrMalformedLevel is wrapped by every decoding failure.
var ErrMalformedLevel = errors.New("malformed level")

// DecodeError describes where decoding failed. Row and Col are zero-based
// grid coordinates; Col is -1 for whole-row problems.
type DecodeError struct {
	Row, Col int
	Token    string
	Reason   string
}

func (e *DecodeError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("%s: row %d: %s", ErrMalformedLevel, e.Row, e.Reason)
	}
	return fmt.Sprintf("%s: row %d col %d %q: %s", ErrMalformedLevel, e.Row, e.Col, e.Token, e.Reason)
}

func (e *DecodeError) Unwrap() error { return ErrMalformedLevel }

// Kind is the entity kind a spawn descriptor asks for.
type Kind uint8

const (
	KindFloor Kind = iota
	KindWall
	KindBoxSpot
	KindBox
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindWall:
		return "wall"
	case KindBoxSpot:
		return "box_spot"
	case KindBox:
		return "box"
	case KindPlayer:
		return "player"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Spawn is one entity to create at level load.
type Spawn struct {
	Pos  component.Position
	Kind Kind
}

// Level is the decoded form of one map.
type Level struct {
	Name          string
	ID            uint64 // xxhash of the normalised grid
	Width, Height int
	Map           *gamemap.GameMap
	Spawns        []Spawn
}

// tokenKinds maps each token to the spawns it produces, in spawn order.
var tokenKinds = map[string][]Kind{
	"W":  {KindWall},
	".":  {KindFloor},
	"N":  nil,
	"P":  {KindFloor, KindPlayer},
	"RB": {KindFloor, KindBox},
	"BS": {KindFloor, KindBoxSpot},
	"BB": {KindFloor, KindBoxSpot, KindBox},
}

// Decode parses text into a Level. Leading and trailing blank lines and
// per-line indentation are ignored.
func Decode(text string) (*Level, error) {
	rows := splitRows(text)
	if len(rows) == 0 {
		return nil, &DecodeError{Row: 0, Col: -1, Reason: "empty level"}
	}

	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, &DecodeError{Row: y, Col: -1,
				Reason: fmt.Sprintf("has %d tokens, want %d", len(row), width)}
		}
	}

	gmap := gamemap.New(width, len(rows))
	var spawns []Spawn
	players := 0
	for y, row := range rows {
		for x, tok := range row {
			kinds, ok := tokenKinds[tok]
			if !ok {
				return nil, &DecodeError{Row: y, Col: x, Token: tok, Reason: "unrecognized token"}
			}
			switch tok {
			case "N":
				// stays void
			case "W":
				gmap.Set(x, y, gamemap.MakeWall())
			default:
				gmap.Set(x, y, gamemap.MakeFloor())
			}
			for _, k := range kinds {
				if k == KindPlayer {
					players++
					if players > 1 {
						return nil, &DecodeError{Row: y, Col: x, Token: tok, Reason: "second player"}
					}
				}
				spawns = append(spawns, Spawn{Pos: component.Position{X: x, Y: y}, Kind: k})
			}
		}
	}
	if players == 0 {
		return nil, &DecodeError{Row: 0, Col: -1, Reason: "no player"}
	}

	return &Level{
		ID:     fingerprint(rows),
		Width:  width,
		Height: len(rows),
		Map:    gmap,
		Spawns: spawns,
	}, nil
}

func splitRows(text string) [][]string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	rows := make([][]string, 0, end-start)
	for _, line := range lines[start:end] {
		rows = append(rows, strings.Fields(line))
	}
	return rows
}

func fingerprint(rows [][]string) uint64 {
	d := xxhash.New()
	for _, row := range rows {
		d.WriteString(strings.Join(row, " ")) //nolint:errcheck
		d.WriteString("\n")                   //nolint:errcheck
	}
	return d.Sum64()
}

// Count returns how many spawns of kind k the level holds.
func (l *Level) Count(k Kind) int {
	n := 0
	for _, s := range l.Spawns {
		if s.Kind == k {
			n++
		}
	}
	return n
}
