package level

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"sokoban/assets"

	"gopkg.in/yaml.v3"
)

// Pack is an ordered, named collection of level maps.
type Pack struct {
	Name   string  `yaml:"name"`
	Levels []Entry `yaml:"levels"`
}

// Entry is one map in a pack.
type Entry struct {
	Name string `yaml:"name"`
	Map  string `yaml:"map"`
}

// LoadPack reads a YAML pack and checks that every level decodes.
func LoadPack(r io.Reader) (*Pack, error) {
	var p Pack
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}
	if len(p.Levels) == 0 {
		return nil, fmt.Errorf("pack %q: no levels", p.Name)
	}
	for i := range p.Levels {
		if _, err := p.Level(i); err != nil {
			return nil, fmt.Errorf("pack %q: %w", p.Name, err)
		}
	}
	return &p, nil
}

// LoadPackFile reads a pack from a YAML file.
func LoadPackFile(path string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPack(f)
}

// DefaultPack returns the built-in pack.
func DefaultPack() *Pack {
	p, err := LoadPack(bytes.NewReader(assets.LevelPack))
	if err != nil {
		panic("level: built-in pack: " + err.Error())
	}
	return p
}

// Len returns the number of levels in the pack.
func (p *Pack) Len() int { return len(p.Levels) }

// Level decodes the i-th level.
func (p *Pack) Level(i int) (*Level, error) {
	if i < 0 || i >= len(p.Levels) {
		return nil, fmt.Errorf("level index %d out of range [0,%d)", i, len(p.Levels))
	}
	e := p.Levels[i]
	lvl, err := Decode(e.Map)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", e.Name, err)
	}
	lvl.Name = e.Name
	return lvl, nil
}

// Find returns the index of the level with the given name.
func (p *Pack) Find(name string) (int, bool) {
	for i, e := range p.Levels {
		if e.Name == name {
			return i, true
		}
	}
	return 0, false
}
