package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tillworks/qbtill/internal/config"
	"github.com/tillworks/qbtill/internal/convert"
)

func newConvertCommand(verbose *bool) *cobra.Command {
	var configPath string
	var outputPath string
	var preamble int

	cmd := &cobra.Command{
		Use:   "convert <statement>",
		Short: "Convert one statement file to an IIF export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("preamble") {
				cfg.Statement.PreambleRows = preamble
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runConvert(args[0], outputPath, cfg, *verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to qbtill.yaml (defaults apply when omitted)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output .iif path (default: input name with .iif)")
	cmd.Flags().IntVar(&preamble, "preamble", 0, "override the number of preamble rows")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runConvert(inputPath, outputPath string, cfg *config.Config, verbose bool) error {
	log := newLogger(verbose)

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading statement: %w", err)
	}

	result, err := convert.New(cfg, log).Convert(raw, filepath.Base(inputPath))
	if err != nil {
		return err
	}

	if outputPath == "" {
		ext := filepath.Ext(inputPath)
		outputPath = strings.TrimSuffix(inputPath, ext) + ".iif"
	}
	if err := os.WriteFile(outputPath, result.IIF, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	fmt.Printf("Wrote %d entries to %s (paid in %s, withdrawn %s, merchant charges %s)\n",
		result.EntryCount, outputPath,
		result.Totals.PaidIn.StringFixed(2),
		result.Totals.Withdrawn.StringFixed(2),
		result.Totals.MerchantCharges.StringFixed(2))
	return nil
}
