// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes a YAML account of an extraction run: which files
// were read, which tables were found under which sections, and why any table
// or file contributed nothing.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/portfolio-extract/internal/extract"
)

// Report is the on-disk representation of one run.
type Report struct {
	RunID     string     `yaml:"run_id"`
	Timestamp time.Time  `yaml:"timestamp"`
	Inputs    []string   `yaml:"inputs"`
	Output    string     `yaml:"output"`
	Missing   []string   `yaml:"missing,omitempty"`
	Summary   Summary    `yaml:"summary"`
	Documents []Document `yaml:"documents"`
}

// Summary carries the run counts.
type Summary struct {
	Files         int `yaml:"files"`
	Missing       int `yaml:"missing"`
	Tables        int `yaml:"tables"`
	TablesSkipped int `yaml:"tables_skipped"`
	Records       int `yaml:"records"`
	Duplicates    int `yaml:"duplicates_removed"`
	Written       int `yaml:"written"`
}

// Document lists the tables of one input file.
type Document struct {
	File    string  `yaml:"file"`
	Records int     `yaml:"records"`
	Tables  []Table `yaml:"tables,omitempty"`
}

// Table is one table outcome. Lines are 1-based.
type Table struct {
	Class       string `yaml:"class"`
	SectionLine int    `yaml:"section_line"`
	Line        int    `yaml:"line,omitempty"`
	Status      string `yaml:"status"`
	Layout      string `yaml:"layout,omitempty"`
	Records     int    `yaml:"records"`
	RowsSkipped int    `yaml:"rows_skipped,omitempty"`
	Reason      string `yaml:"reason,omitempty"`
}

// StatusNoTable marks a section heading with no table before the next
// heading.
const StatusNoTable = "no_table"

// Build assembles the report for res.
func Build(res extract.Result, inputs []string, output string) Report {
	r := Report{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Inputs:    inputs,
		Output:    output,
		Missing:   res.Missing,
		Summary: Summary{
			Files:         res.Summary.Files,
			Missing:       res.Summary.Missing,
			Tables:        res.Summary.Tables,
			TablesSkipped: res.Summary.TablesSkipped,
			Records:       res.Summary.Records,
			Duplicates:    res.Summary.Duplicates,
			Written:       res.Summary.Written(),
		},
	}

	for _, doc := range res.Documents {
		d := Document{File: doc.Name, Records: len(doc.Records)}
		for _, s := range doc.Sections {
			if len(s.Tables) == 0 {
				d.Tables = append(d.Tables, Table{
					Class:       string(s.Class),
					SectionLine: s.Line + 1,
					Status:      StatusNoTable,
				})
				continue
			}
			for _, t := range s.Tables {
				d.Tables = append(d.Tables, Table{
					Class:       string(t.Class),
					SectionLine: s.Line + 1,
					Line:        t.Line + 1,
					Status:      string(t.Status),
					Layout:      t.Layout,
					Records:     len(t.Records),
					RowsSkipped: t.RowsSkipped,
					Reason:      t.Reason,
				})
			}
		}
		r.Documents = append(r.Documents, d)
	}
	return r
}

// Write saves r to path as YAML.
func Write(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Read loads a report written by Write.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
