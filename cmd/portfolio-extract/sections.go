// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/portfolio-extract/internal/extract"
	"github.com/pdiddy/portfolio-extract/internal/layout"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <md...>",
	Short: "List the asset sections and tables found in each sheet",
	Long: `Sections reports, for each sheet, every heading that matched an asset
class and the tables found under it: the layout used, the number of records,
and why a table was skipped. Nothing is written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadLayout(viper.GetString("layout"))
		if err != nil {
			return err
		}
		return listSections(cmd.OutOrStdout(), args, cfg)
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

func listSections(w io.Writer, paths []string, cfg layout.Config) error {
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(w, "skipped %s (not found)\n", path)
				continue
			}
			return withCode(exitEnv, fmt.Errorf("reading %s: %w", path, err))
		}

		doc := extract.ParseDocument(path, content, cfg)
		fmt.Fprintf(w, "%s (%d records)\n", path, len(doc.Records))
		if len(doc.Sections) == 0 {
			fmt.Fprintln(w, "  no asset sections")
			continue
		}
		for _, s := range doc.Sections {
			fmt.Fprintf(w, "  %-4d %-15s %s\n", s.Line+1, s.Class, s.Heading)
			if len(s.Tables) == 0 {
				fmt.Fprintln(w, "       no table")
			}
			for _, t := range s.Tables {
				fmt.Fprintf(w, "       table at line %d: %s", t.Line+1, t.Status)
				if t.Layout != "" {
					fmt.Fprintf(w, " [%s]", t.Layout)
				}
				fmt.Fprintf(w, ", %d records, %d rows skipped", len(t.Records), t.RowsSkipped)
				if t.Reason != "" {
					fmt.Fprintf(w, " (%s)", t.Reason)
				}
				fmt.Fprintln(w)
			}
		}
	}
	return nil
}
