// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown finds asset sections in a portfolio sheet and lifts the
// pipe tables that follow each section heading into cell grids.
//
// Section discovery matches every line against per-class heading patterns.
// Table discovery is a small line-scanning state machine: it seeks a
// separator row, backs up one line to the header, then consumes contiguous
// pipe lines until a blank line, a non-table line, or the next heading.
package markdown

import (
	"regexp"
	"strings"
)

var (
	headingRe   = regexp.MustCompile(`^#{1,6}\s`)
	sepMarkRe   = regexp.MustCompile(`\|\s*-`)
	alignCellRe = regexp.MustCompile(`^:?-{3,}:?$`)
)

// Table is one pipe table lifted from a section.
type Table struct {
	// Line is the 0-based index of the table's first line.
	Line int

	// Header holds the header cells, or nil when no header line preceded the
	// separator row.
	Header []string

	// Rows holds the data rows. Alignment rows are removed.
	Rows [][]string
}

// StopReason records why a Scanner stopped looking for tables.
type StopReason int

const (
	// StopNone means the scanner has not finished yet.
	StopNone StopReason = iota
	// StopHeading means the next markdown heading closed the section.
	StopHeading
	// StopEnd means the document ran out.
	StopEnd
)

func (r StopReason) String() string {
	switch r {
	case StopHeading:
		return "heading"
	case StopEnd:
		return "end"
	default:
		return "none"
	}
}

type scanState int

const (
	seekingTable scanState = iota
	inTable
)

// Scanner yields the tables between a section heading and the next heading.
type Scanner struct {
	lines    []string
	start    int
	pos      int
	stop     StopReason
	stopLine int
}

// NewScanner returns a Scanner over the lines following lines[start].
func NewScanner(lines []string, start int) *Scanner {
	return &Scanner{lines: lines, start: start, pos: start + 1, stopLine: -1}
}

// Stop reports why scanning ended and, for StopHeading, the heading's line.
func (s *Scanner) Stop() (StopReason, int) {
	return s.stop, s.stopLine
}

// Next returns the next table in the section. It returns false once the
// section is exhausted.
func (s *Scanner) Next() (Table, bool) {
	if s.stop != StopNone {
		return Table{}, false
	}

	state := seekingTable
	var t Table
	for ; s.pos < len(s.lines); s.pos++ {
		line := s.lines[s.pos]
		switch state {
		case seekingTable:
			if IsHeading(line) {
				s.stop, s.stopLine = StopHeading, s.pos
				return Table{}, false
			}
			if !IsSeparator(line) {
				continue
			}
			t = Table{Line: s.pos}
			if prev := s.pos - 1; prev > s.start && isTableLine(s.lines[prev]) {
				t.Line = prev
				t.Header = SplitRow(s.lines[prev])
			}
			t.addRow(line)
			state = inTable
		case inTable:
			// The terminating line is left for the next call so that a
			// heading still closes the section.
			if !isTableLine(line) || IsHeading(line) {
				return t, true
			}
			t.addRow(line)
		}
	}

	if state == inTable {
		return t, true
	}
	s.stop = StopEnd
	return Table{}, false
}

func (t *Table) addRow(line string) {
	cells := SplitRow(line)
	if IsAlignmentRow(cells) {
		return
	}
	t.Rows = append(t.Rows, cells)
}

// TablesAfter returns every table between lines[start] and the next heading.
func TablesAfter(lines []string, start int) []Table {
	var tables []Table
	sc := NewScanner(lines, start)
	for {
		t, ok := sc.Next()
		if !ok {
			return tables
		}
		tables = append(tables, t)
	}
}

// IsHeading reports whether line opens a markdown heading (1 to 6 '#'
// followed by whitespace, starting in column 0).
func IsHeading(line string) bool {
	return headingRe.MatchString(line)
}

// IsSeparator reports whether line looks like a table separator row.
func IsSeparator(line string) bool {
	return strings.Contains(line, "|") && strings.Contains(line, "---") && sepMarkRe.MatchString(line)
}

// IsAlignmentRow reports whether every cell is an alignment marker such as
// "---", ":---" or ":---:".
func IsAlignmentRow(cells []string) bool {
	for _, c := range cells {
		if !alignCellRe.MatchString(c) {
			return false
		}
	}
	return true
}

// SplitRow splits a pipe table line into trimmed cells. One leading and one
// trailing pipe are dropped first.
func SplitRow(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	parts := strings.Split(s, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// SplitLines splits document content into lines, accepting CRLF endings.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func isTableLine(line string) bool {
	return strings.TrimSpace(line) != "" && strings.Contains(line, "|")
}
