// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/portfolio-extract/pkg/types"
)

// Write emits the header row and one row per asset under schema. Lines end
// with CRLF.
func Write(w io.Writer, schema []string, assets []types.Asset) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(schema); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, a := range assets {
		if err := cw.Write(Project(a).Cells(schema)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the CSV to path in one step. The content goes to a
// temporary file in the destination directory which is renamed over path
// once complete, so a failed run leaves no partial output.
func WriteFile(path string, schema []string, assets []types.Asset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary output: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := Write(tmp, schema, assets); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("moving output into place: %w", err)
	}
	return nil
}
