// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract runs the sheet-to-records pipeline: it locates asset
// sections in each markdown sheet, lifts their tables, parses the rows into
// typed records, and pools the records of every sheet into one deduplicated
// list.
package extract

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/pdiddy/portfolio-extract/internal/dedup"
	"github.com/pdiddy/portfolio-extract/internal/layout"
	"github.com/pdiddy/portfolio-extract/internal/markdown"
	"github.com/pdiddy/portfolio-extract/internal/parse"
	"github.com/pdiddy/portfolio-extract/pkg/types"
)

// SectionResult holds the tables found under one section heading.
type SectionResult struct {
	markdown.Section
	Tables []parse.TableResult
	// Stop is why the table scan ended: the next heading or end of document.
	Stop markdown.StopReason
}

// DocumentResult is everything one sheet contributed, before deduplication.
type DocumentResult struct {
	Name     string
	Sections []SectionResult
	Records  []types.Asset
}

// Tables returns the number of tables found and how many of them were
// skipped.
func (d DocumentResult) Tables() (total, skipped int) {
	for _, s := range d.Sections {
		for _, t := range s.Tables {
			total++
			if t.Status == parse.StatusSkipped {
				skipped++
			}
		}
	}
	return total, skipped
}

// Summary holds counts from a run.
type Summary struct {
	Files         int
	Missing       int
	Tables        int
	TablesSkipped int
	// Records counts records before deduplication.
	Records    int
	Duplicates int
}

// Written returns the number of records left after deduplication.
func (s Summary) Written() int {
	return s.Records - s.Duplicates
}

// HasMissing reports whether any input file was absent.
func (s Summary) HasMissing() bool {
	return s.Missing > 0
}

// Result is the outcome of a run.
type Result struct {
	Assets    []types.Asset
	Documents []DocumentResult
	Missing   []string
	Summary   Summary
}

// ParseDocument extracts records from one sheet. Sections are visited in
// line order; a section heading that appears more than once is parsed each
// time.
func ParseDocument(name string, content []byte, cfg layout.Config) DocumentResult {
	doc := DocumentResult{Name: name}
	lines := markdown.SplitLines(string(content))

	for _, sec := range markdown.Locate(lines, cfg.Patterns()) {
		sr := SectionResult{Section: sec}
		sc := markdown.NewScanner(lines, sec.Line)
		for {
			t, ok := sc.Next()
			if !ok {
				break
			}
			tr := parse.ParseTable(sec.Class, t, cfg.LayoutsFor(sec.Class))
			sr.Tables = append(sr.Tables, tr)
			doc.Records = append(doc.Records, tr.Records...)
		}
		sr.Stop, _ = sc.Stop()
		doc.Sections = append(doc.Sections, sr)
	}
	return doc
}

// Run processes paths in order and writes one status line per file to w.
// Missing files are skipped; any other read error aborts the run.
func Run(paths []string, cfg layout.Config, log zerolog.Logger, w io.Writer) (Result, error) {
	var (
		res  Result
		pool []types.Asset
	)

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Warn().Str("file", path).Msg("input not found, skipping")
				fmt.Fprintf(w, "skipped %s (not found)\n", path)
				res.Missing = append(res.Missing, path)
				res.Summary.Missing++
				continue
			}
			return Result{}, fmt.Errorf("reading %s: %w", path, err)
		}

		doc := ParseDocument(path, content, cfg)
		logDocument(log, doc)

		tables, skipped := doc.Tables()
		res.Summary.Files++
		res.Summary.Tables += tables
		res.Summary.TablesSkipped += skipped
		res.Documents = append(res.Documents, doc)
		pool = append(pool, doc.Records...)

		fmt.Fprintf(w, "parsed  %s (%d records)\n", path, len(doc.Records))
	}

	res.Summary.Records = len(pool)
	res.Assets, res.Summary.Duplicates = dedup.Dedup(pool)

	fmt.Fprintf(w, "\n%d files parsed, %d missing, %d records (%d duplicates dropped)\n",
		res.Summary.Files, res.Summary.Missing, res.Summary.Written(), res.Summary.Duplicates)
	log.Info().
		Int("files", res.Summary.Files).
		Int("missing", res.Summary.Missing).
		Int("tables", res.Summary.Tables).
		Int("tables_skipped", res.Summary.TablesSkipped).
		Int("records", res.Summary.Written()).
		Int("duplicates", res.Summary.Duplicates).
		Msg("extraction complete")

	return res, nil
}

func logDocument(log zerolog.Logger, doc DocumentResult) {
	if len(doc.Sections) == 0 {
		log.Debug().Str("file", doc.Name).Msg("no asset sections found")
		return
	}
	for _, s := range doc.Sections {
		log.Debug().
			Str("file", doc.Name).
			Str("class", string(s.Class)).
			Int("line", s.Line+1).
			Int("tables", len(s.Tables)).
			Str("stop", s.Stop.String()).
			Msg("section")
		for _, t := range s.Tables {
			ev := log.Debug()
			if t.Status == parse.StatusSkipped {
				ev = log.Warn()
			}
			ev.Str("file", doc.Name).
				Str("class", string(t.Class)).
				Int("line", t.Line+1).
				Str("status", string(t.Status)).
				Str("layout", t.Layout).
				Int("records", len(t.Records)).
				Int("rows_skipped", t.RowsSkipped).
				Str("reason", t.Reason).
				Msg("table")
		}
	}
}
