// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/pdiddy/portfolio-extract/internal/extract"
	"github.com/pdiddy/portfolio-extract/internal/layout"
	"github.com/pdiddy/portfolio-extract/internal/output"
	"github.com/pdiddy/portfolio-extract/internal/report"
	"github.com/pdiddy/portfolio-extract/pkg/types"
)

// runExtract parses inputs and writes the CSV to out. Every check that can
// fail the run happens before the output file is touched.
func runExtract(cfg types.ExtractConfig, out string, inputs []string, w io.Writer, log zerolog.Logger) error {
	schema, err := output.ResolveSchema(cfg.TemplatePath, cfg.RequireTemplate)
	if err != nil {
		if errors.Is(err, output.ErrTemplateMissing) {
			return withCode(exitTemplate, err)
		}
		return withCode(exitEnv, err)
	}
	log.Debug().Strs("columns", schema).Msg("output schema")

	lcfg, err := loadLayout(cfg.LayoutPath)
	if err != nil {
		return err
	}

	res, err := extract.Run(inputs, lcfg, log, w)
	if err != nil {
		return withCode(exitEnv, err)
	}

	if err := output.WriteFile(out, schema, res.Assets); err != nil {
		return withCode(exitEnv, err)
	}
	fmt.Fprintf(w, "wrote %s (%d records)\n", out, len(res.Assets))

	if cfg.ReportPath != "" {
		if err := report.Write(cfg.ReportPath, report.Build(res, inputs, out)); err != nil {
			return withCode(exitEnv, err)
		}
		log.Info().Str("path", cfg.ReportPath).Msg("report written")
	}
	return nil
}

// loadLayout returns the built-in layouts, overridden by the file at path
// when one is given.
func loadLayout(path string) (layout.Config, error) {
	if path == "" {
		return layout.Default(), nil
	}
	cfg, err := layout.Load(path)
	if err != nil {
		return layout.Config{}, withCode(exitEnv, err)
	}
	return cfg, nil
}
