// scu.go — source code units: immutable, line-indexed views of program text.
package sflk

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// SourceUnit is one loaded piece of SFLK source. Its content always ends with
// a '\n' (one is appended at construction if missing) and is never mutated
// afterwards; every Loc and ReadingHead derived from it shares the same unit
// by pointer.
type SourceUnit struct {
	Name    string
	Content string

	// LineOffsets holds the byte offset at which each line begins.
	// LineOffsets[0] is always 0, the offsets are strictly increasing, and
	// the last one equals len(Content).
	LineOffsets []int
}

// SourceUnitFromFile reads the whole file at path into a new SourceUnit named
// after the path.
func SourceUnitFromFile(path string) (*SourceUnit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "source file `%s` couldn't be read", path)
	}
	return SourceUnitFromString(string(src), path), nil
}

// SourceUnitFromString builds a SourceUnit from in-memory text. It never
// fails. The name identifies the unit in diagnostics (e.g. "<repl>").
func SourceUnitFromString(text, name string) *SourceUnit {
	content := text
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	offsets := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	// The final '\n' ensures the last offset equals len(content).
	return &SourceUnit{
		Name:        name,
		Content:     content,
		LineOffsets: offsets,
	}
}

// LineCount returns the number of lines in the unit, counting the normalized
// trailing newline's line terminator as ending the last line.
func (scu *SourceUnit) LineCount() int {
	return len(scu.LineOffsets) - 1
}

// Line returns the 1-based line's text without its terminating '\n'.
// Out-of-range lines yield "".
func (scu *SourceUnit) Line(line int) string {
	if line < 1 || line > scu.LineCount() {
		return ""
	}
	start := scu.LineOffsets[line-1]
	end := scu.LineOffsets[line]
	return strings.TrimSuffix(scu.Content[start:end], "\n")
}
