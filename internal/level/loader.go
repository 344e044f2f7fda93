package level

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vovakirdan/bubble-arena/internal/core"
)

// Files names the four level files inside a level directory.
type Files struct {
	Platform string `yaml:"platform"`
	Dragon   string `yaml:"dragon"`
	Enemy    string `yaml:"enemy"`
	Bonus    string `yaml:"bonus"`
}

// DefaultFiles returns the standard file names.
func DefaultFiles() Files {
	return Files{
		Platform: "platform.txt",
		Dragon:   "dragon.txt",
		Enemy:    "enemy.txt",
		Bonus:    "bonus.txt",
	}
}

// WithDefaults fills empty names from DefaultFiles.
func (f Files) WithDefaults() Files {
	d := DefaultFiles()
	if f.Platform == "" {
		f.Platform = d.Platform
	}
	if f.Dragon == "" {
		f.Dragon = d.Dragon
	}
	if f.Enemy == "" {
		f.Enemy = d.Enemy
	}
	if f.Bonus == "" {
		f.Bonus = d.Bonus
	}
	return f
}

// Names returns the file names in load order.
func (f Files) Names() []string {
	return []string{f.Platform, f.Dragon, f.Enemy, f.Bonus}
}

// Layout is the parsed content of a level directory, in file order.
type Layout struct {
	Dir       string
	Platforms []core.Rect
	Heroes    [2]core.Point
	Enemies   []core.Point
	Bonuses   []core.Point
}

// Stray locates a record that lies outside the play field.
type Stray struct {
	File string
	Line int
}

// Strays lists the records of l outside field: platforms that do not
// overlap it and spawn points it does not contain. Names come from files.
func (l *Layout) Strays(field core.Rect, files Files) []Stray {
	files = files.WithDefaults()

	var out []Stray
	for i, r := range l.Platforms {
		if !field.Intersects(r) {
			out = append(out, Stray{File: files.Platform, Line: i + 1})
		}
	}
	for i, p := range l.Heroes {
		if !field.Contains(p) {
			out = append(out, Stray{File: files.Dragon, Line: i + 1})
		}
	}
	for i, p := range l.Enemies {
		if !field.Contains(p) {
			out = append(out, Stray{File: files.Enemy, Line: i + 1})
		}
	}
	for i, p := range l.Bonuses {
		if !field.Contains(p) {
			out = append(out, Stray{File: files.Bonus, Line: i + 1})
		}
	}
	return out
}

// Load reads the level files from dir in the order platform, dragon, enemy,
// bonus. Each file is closed before the next is opened. The first failure
// aborts the load.
func Load(dir string, files Files) (*Layout, error) {
	files = files.WithDefaults()
	layout := &Layout{Dir: dir}

	err := readFile(dir, files.Platform, func(r io.Reader) (err error) {
		layout.Platforms, err = ParsePlatforms(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = readFile(dir, files.Dragon, func(r io.Reader) (err error) {
		layout.Heroes, err = ParseHeroes(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = readFile(dir, files.Enemy, func(r io.Reader) (err error) {
		layout.Enemies, err = ParseSpawns(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = readFile(dir, files.Bonus, func(r io.Reader) (err error) {
		layout.Bonuses, err = ParseSpawns(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	return layout, nil
}

// IsLevelFile reports whether name is one of the level files.
func (f Files) IsLevelFile(name string) bool {
	base := filepath.Base(name)
	for _, n := range f.WithDefaults().Names() {
		if base == n {
			return true
		}
	}
	return false
}

func readFile(dir, name string, parse func(io.Reader) error) error {
	path := filepath.Join(dir, name)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("level: cannot open %s: %w", path, err)
	}
	defer f.Close()

	if err := parse(f); err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.File = name
			return fmt.Errorf("level: %w", pe)
		}
		return fmt.Errorf("level: cannot read %s: %w", path, err)
	}
	return nil
}
