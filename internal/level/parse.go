// Package level reads the flat level files of an arena: one record per
// line, integer fields separated by commas, no header.
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/bubble-arena/internal/core"
)

var (
	// ErrFieldCount means a line did not split into the expected number of fields.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrNotInteger means a field could not be converted to an integer.
	ErrNotInteger = errors.New("field is not an integer")

	// ErrMissingHero means the hero file has fewer than two lines.
	ErrMissingHero = errors.New("hero file needs two lines")
)

// ParseError locates a malformed record.
type ParseError struct {
	File string
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("%s:%d %q: %v", e.File, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParsePlatforms reads x,y,w,h records.
func ParsePlatforms(r io.Reader) ([]core.Rect, error) {
	var rects []core.Rect
	err := scan(r, 4, -1, func(f []int) {
		rects = append(rects, core.NewRect(f[0], f[1], f[2], f[3]))
	})
	return rects, err
}

// ParseSpawns reads x,y records.
func ParseSpawns(r io.Reader) ([]core.Point, error) {
	var points []core.Point
	err := scan(r, 2, -1, func(f []int) {
		points = append(points, core.Pt(f[0], f[1]))
	})
	return points, err
}

// ParseHeroes reads the two hero spawn points: primary first, secondary second.
// Anything after the second line is ignored.
func ParseHeroes(r io.Reader) ([2]core.Point, error) {
	var heroes [2]core.Point
	n := 0
	err := scan(r, 2, 2, func(f []int) {
		heroes[n] = core.Pt(f[0], f[1])
		n++
	})
	if err != nil {
		return heroes, err
	}
	if n < 2 {
		return heroes, &ParseError{Line: n + 1, Err: ErrMissingHero}
	}
	return heroes, nil
}

// scan feeds every line of r to emit as a record. It stops after limit
// records when limit is positive. A blank line is a record with one empty
// field, so it fails the field count.
func scan(r io.Reader, fields, limit int, emit func([]int)) error {
	sc := bufio.NewScanner(r)
	values := make([]int, fields)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")

		parts := strings.Split(text, ",")
		if len(parts) != fields {
			return &ParseError{Line: line, Text: text, Err: ErrFieldCount}
		}
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return &ParseError{Line: line, Text: text, Err: ErrNotInteger}
			}
			values[i] = v
		}
		emit(values)

		if limit > 0 && line == limit {
			return nil
		}
	}
	return sc.Err()
}
