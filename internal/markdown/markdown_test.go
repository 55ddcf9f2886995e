// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/portfolio-extract/pkg/types"
)

func TestIsHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"# Title", true},
		{"### 2.7 Cash Deposits", true},
		{"###### deep", true},
		{"####### too deep", false},
		{"#nospace", false},
		{"  ### indented", false},
		{"| a | b |", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHeading(tt.line))
		})
	}
}

func TestIsSeparator(t *testing.T) {
	assert.True(t, IsSeparator("|---|---|"))
	assert.True(t, IsSeparator("| :--- | ---: |"))
	assert.True(t, IsSeparator("|-----|"))
	assert.False(t, IsSeparator("| a | b |"))
	assert.False(t, IsSeparator("---"))
	assert.False(t, IsSeparator("| -- | -- |"))
}

func TestIsAlignmentRow(t *testing.T) {
	assert.True(t, IsAlignmentRow([]string{"---", ":---", "---:", ":---:"}))
	assert.False(t, IsAlignmentRow([]string{"---", "x"}))
	assert.False(t, IsAlignmentRow([]string{"-", "-"}))
}

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "outer pipes", line: "| USD | 1,000.00 |", want: []string{"USD", "1,000.00"}},
		{name: "no outer pipes", line: "USD | 1,000.00", want: []string{"USD", "1,000.00"}},
		{name: "empty cell", line: "| a |  | c |", want: []string{"a", "", "c"}},
		{name: "surrounding spaces", line: "   | a | b |   ", want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRow(tt.line))
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, SplitLines("a\r\nb\n"))
}

func TestTablesAfter(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		start int
		want  []Table
	}{
		{
			name: "single table",
			doc:  "### 2.7 Cash\n\n| 通貨 | 残高 |\n|---|---|\n| USD | 1000 |\n| JPY | 5 |\n",
			want: []Table{{
				Line:   2,
				Header: []string{"通貨", "残高"},
				Rows:   [][]string{{"USD", "1000"}, {"JPY", "5"}},
			}},
		},
		{
			name: "two tables in one section",
			doc:  "### S\n| a | b |\n|---|---|\n| 1 | 2 |\n\nnote line\n\n| c |\n|---|\n| 3 |\n",
			want: []Table{
				{Line: 1, Header: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}},
				{Line: 7, Header: []string{"c"}, Rows: [][]string{{"3"}}},
			},
		},
		{
			name: "next heading closes the section",
			doc:  "### S\n| a |\n|---|\n| 1 |\n### T\n| b |\n|---|\n| 2 |\n",
			want: []Table{{Line: 1, Header: []string{"a"}, Rows: [][]string{{"1"}}}},
		},
		{
			name: "heading directly after table rows",
			doc:  "### S\n| a |\n|---|\n| 1 |\n## Next | with pipe\n| 9 |\n",
			want: []Table{{Line: 1, Header: []string{"a"}, Rows: [][]string{{"1"}}}},
		},
		{
			name: "non-table line ends the table",
			doc:  "### S\n| a |\n|---|\n| 1 |\ntrailing text\n| 2 |\n",
			want: []Table{{Line: 1, Header: []string{"a"}, Rows: [][]string{{"1"}}}},
		},
		{
			name: "separator right after heading has no header",
			doc:  "### S\n|---|---|\n| x | y |\n",
			want: []Table{{Line: 1, Rows: [][]string{{"x", "y"}}}},
		},
		{
			name: "blank line before separator has no header",
			doc:  "### S\ntext\n\n|---|\n| x |\n",
			want: []Table{{Line: 3, Rows: [][]string{{"x"}}}},
		},
		{
			name: "header only table is still recorded",
			doc:  "### S\n| a | b |\n|---|---|\n",
			want: []Table{{Line: 1, Header: []string{"a", "b"}}},
		},
		{
			name: "pipe lines without separator are ignored",
			doc:  "### S\n| a | b |\n| 1 | 2 |\n",
			want: nil,
		},
		{
			name:  "scanning starts after the given heading",
			doc:   "| a |\n|---|\n| 0 |\n### S\n| b |\n|---|\n| 1 |",
			start: 3,
			want:  []Table{{Line: 4, Header: []string{"b"}, Rows: [][]string{{"1"}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TablesAfter(SplitLines(tt.doc), tt.start)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanner_Stop(t *testing.T) {
	lines := SplitLines("### S\n| a |\n|---|\n| 1 |\n\n### T\n")
	sc := NewScanner(lines, 0)

	_, ok := sc.Next()
	require.True(t, ok)
	reason, _ := sc.Stop()
	assert.Equal(t, StopNone, reason)

	_, ok = sc.Next()
	require.False(t, ok)
	reason, line := sc.Stop()
	assert.Equal(t, StopHeading, reason)
	assert.Equal(t, 5, line)

	_, ok = sc.Next()
	assert.False(t, ok, "an exhausted scanner stays exhausted")

	sc = NewScanner(SplitLines("### S\nplain text"), 0)
	_, ok = sc.Next()
	require.False(t, ok)
	reason, _ = sc.Stop()
	assert.Equal(t, StopEnd, reason)
	assert.Equal(t, "end", reason.String())
}

func TestLocate(t *testing.T) {
	patterns := []Pattern{
		{Class: types.ClassUSStock, Re: regexp.MustCompile(`(?i)^\s*###\s*2\.5.*米国株|US\s*Stocks`)},
		{Class: types.ClassCash, Re: regexp.MustCompile(`(?i)^\s*###\s*2\.7.*(預金|Cash\s*Deposits)`)},
	}
	lines := SplitLines(`# Portfolio
### 2.5 米国株
| x |
### 2.7 Cash Deposits
text
### 2.5 US Stocks (template B)
`)

	got := Locate(lines, patterns)
	require.Len(t, got, 3)
	assert.Equal(t, Section{Class: types.ClassUSStock, Line: 1, Heading: "### 2.5 米国株"}, got[0])
	assert.Equal(t, types.ClassCash, got[1].Class)
	assert.Equal(t, 3, got[1].Line)
	assert.Equal(t, types.ClassUSStock, got[2].Class)
	assert.Equal(t, 5, got[2].Line)
}

func TestLocate_NoMatches(t *testing.T) {
	patterns := []Pattern{{Class: types.ClassCash, Re: regexp.MustCompile(`Cash`)}}
	assert.Empty(t, Locate([]string{"# Title", "nothing here"}, patterns))
}
