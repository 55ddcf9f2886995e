// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/portfolio-extract/internal/layout"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the effective section patterns and table layouts as YAML",
	Long: `Layout prints the section patterns and table layouts in effect, with any
--layout overrides applied. The output is a valid layout file and can be
edited and passed back with --layout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadLayout(viper.GetString("layout"))
		if err != nil {
			return err
		}
		data, err := layout.Marshal(cfg)
		if err != nil {
			return withCode(exitEnv, err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
