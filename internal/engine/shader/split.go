package shader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source holds the two text sections of a combined shader file.
// It is immutable after parsing.
type Source struct {
	Vertex   string
	Fragment string
}

// marker introduces a section inside a combined shader file. Matching is
// case-sensitive and substring-based: a line containing "#shader" selects
// the vertex section if it also contains "vertex", else the fragment
// section if it contains "fragment" (checked in that order).
const marker = "#shader"

// ParseFile reads a combined shader file and splits it into its vertex and
// fragment sections. A missing or unreadable file is a distinct error, not
// an empty Source.
func ParseFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("open shader file: %w", err)
	}
	defer f.Close()

	src, err := Parse(f)
	if err != nil {
		return Source{}, fmt.Errorf("read shader file %s: %w", path, err)
	}
	return src, nil
}

// Parse splits a combined shader stream into its sections. Marker lines are
// never copied into the output; lines before the first marker are dropped.
// A stream with no markers yields an empty Source.
func Parse(r io.Reader) (Source, error) {
	var vertex, fragment strings.Builder
	var active *strings.Builder

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, marker) {
			// A marker with an unrecognized stage keyword leaves the
			// current section unchanged; the line itself is dropped
			// either way.
			switch {
			case strings.Contains(line, "vertex"):
				active = &vertex
			case strings.Contains(line, "fragment"):
				active = &fragment
			}
			continue
		}
		if active != nil {
			active.WriteString(line)
			active.WriteByte('\n')
		}
	}
	if err := scanner.Err(); err != nil {
		return Source{}, err
	}

	return Source{Vertex: vertex.String(), Fragment: fragment.String()}, nil
}

// Validate reports which sections are missing. Both sections must be
// non-empty for the source to be compilable.
func (s Source) Validate() error {
	switch {
	case s.Vertex == "" && s.Fragment == "":
		return errors.New("shader source has no vertex or fragment section")
	case s.Vertex == "":
		return errors.New("shader source has no vertex section")
	case s.Fragment == "":
		return errors.New("shader source has no fragment section")
	}
	return nil
}
