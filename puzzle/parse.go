package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// OpenCell is the character marking a fillable cell in a text structure
// file. Every other character is a block.
const OpenCell = '_'

// ParseText reads a plain-text structure, one grid row per line. Short
// lines are padded with blocks on the right, so the grid is always
// rectangular.
func ParseText(r io.Reader) (*Puzzle, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: reading structure: %w", err)
	}
	return fromRows(lines)
}

type yamlStructure struct {
	Rows []string `yaml:"rows"`
}

// ParseYAML reads a structure of the form:
//
//	rows:
//	  - "__#"
//	  - "___"
//
// with the same cell conventions as the text format.
func ParseYAML(r io.Reader) (*Puzzle, error) {
	var ys yamlStructure
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&ys); err != nil {
		return nil, fmt.Errorf("puzzle: decoding yaml structure: %w", err)
	}
	return fromRows(ys.Rows)
}

// LoadFile reads a structure file, choosing the format by extension
// (.yaml/.yml for YAML, anything else for text).
func LoadFile(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return ParseText(f)
	}
}

func fromRows(lines []string) (*Puzzle, error) {
	if len(lines) == 0 {
		return nil, errors.New("puzzle: structure has no rows")
	}
	rows := make([][]rune, len(lines))
	width := 0
	for r, line := range lines {
		rows[r] = []rune(line)
		if len(rows[r]) > width {
			width = len(rows[r])
		}
	}
	if width == 0 {
		return nil, errors.New("puzzle: structure rows are all empty")
	}
	open := make([][]bool, len(rows))
	for r, row := range rows {
		open[r] = make([]bool, width)
		for c, ch := range row {
			open[r][c] = ch == OpenCell
		}
	}
	return New(open)
}
