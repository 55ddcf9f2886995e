// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"regexp"

	"github.com/pdiddy/portfolio-extract/pkg/types"
)

// Pattern pairs an asset class with the heading expression that opens its
// section.
type Pattern struct {
	Class types.AssetClass
	Re    *regexp.Regexp
}

// Section is one heading that matched a class pattern.
type Section struct {
	Class   types.AssetClass
	Line    int
	Heading string
}

// Locate returns every line that matches a section pattern, in line order.
// A class may match several lines (a sheet that repeats a section), and one
// line may open sections for several classes; ties keep pattern order.
func Locate(lines []string, patterns []Pattern) []Section {
	var sections []Section
	for i, line := range lines {
		for _, p := range patterns {
			if p.Re.MatchString(line) {
				sections = append(sections, Section{Class: p.Class, Line: i, Heading: line})
			}
		}
	}
	return sections
}
