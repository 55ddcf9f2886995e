// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the portfolio-extract CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/portfolio-extract/internal/logger"
	"github.com/pdiddy/portfolio-extract/internal/output"
	"github.com/pdiddy/portfolio-extract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const usageLine = "Usage: portfolio-extract <out.csv> <md1> [md2 ...]"

// log is built from the log flags before any command runs.
var log = logger.Nop()

// rootCmd extracts portfolio sheets into the CSV schema.
var rootCmd = &cobra.Command{
	Use:   "portfolio-extract <out.csv> <md1> [md2 ...]",
	Short: "Convert markdown portfolio sheets into a portfolio CSV",
	Long: `portfolio-extract reads one or more markdown portfolio sheets, finds the
asset sections (collections, watches, precious metals, real estate, US and
Japanese equities, cash), and writes their rows as one deduplicated CSV.

Column order comes from the header row of the template file when it exists,
or from the built-in schema otherwise. Input files that do not exist are
skipped.`,
	Args:          outputAndInputs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logger.New(logger.Config{
			Level:  viper.GetString("log_level"),
			Pretty: viper.GetBool("pretty_log"),
		})
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(loadConfig(), args[0], args[1:], cmd.OutOrStdout(), log)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./portfolio-extract.yaml or ~/.config/portfolio-extract/portfolio-extract.yaml)")
	pf.String("log-level", "warn", "diagnostics level: debug, info, warn, error")
	pf.Bool("pretty-log", false, "human-readable diagnostics instead of JSON lines")
	pf.String("layout", "", "YAML file overriding section patterns and table layouts")

	f := rootCmd.Flags()
	f.String("template", output.DefaultTemplate, "CSV template whose header row sets the column order")
	f.Bool("require-template", false, "fail when the template file does not exist")
	f.String("report", "", "write a YAML run report to this path")

	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("pretty_log", pf.Lookup("pretty-log"))
	_ = viper.BindPFlag("layout", pf.Lookup("layout"))
	_ = viper.BindPFlag("template", f.Lookup("template"))
	_ = viper.BindPFlag("require_template", f.Lookup("require-template"))
	_ = viper.BindPFlag("report", f.Lookup("report"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("portfolio-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "portfolio-extract"))
		}
	}

	viper.SetEnvPrefix("PORTFOLIO_EXTRACT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig collects the effective settings from flags, environment, and
// config file.
func loadConfig() types.ExtractConfig {
	return types.ExtractConfig{
		TemplatePath:    viper.GetString("template"),
		RequireTemplate: viper.GetBool("require_template"),
		LayoutPath:      viper.GetString("layout"),
		ReportPath:      viper.GetString("report"),
		LogLevel:        viper.GetString("log_level"),
		PrettyLog:       viper.GetBool("pretty_log"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if isUsage(err) {
			fmt.Fprintln(os.Stderr, usageLine)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(exitCode(err))
	}
}
