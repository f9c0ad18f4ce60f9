package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/letspeppol/letspeppol/internal/logger"
	"github.com/letspeppol/letspeppol/internal/profile"
)

var (
	version = "1.0.0"

	// Global flags
	verbose    bool
	configPath string
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:   "letspeppol",
	Short: "Work with Peppol BIS Billing 3.0 invoices and credit notes",
	Long: `letspeppol is a CLI for the UBL 2.1 subset used on the Peppol network.

Supports:
  - Parsing invoice and credit-note XML into typed JSON
  - Building XML back from JSON, byte-stable across round trips
  - Recalculating line, tax and document totals
  - Converting between invoice and credit note
  - Composing drafts from a sender profile
  - Embedding file attachments

Examples:
  # Parse an invoice to JSON
  letspeppol parse invoice.xml

  # Recalculate totals
  letspeppol totals invoice.xml -o recalculated.xml

  # Convert an invoice into a credit note
  letspeppol convert invoice.xml

  # Compose a draft from the profile in letspeppol.yaml
  letspeppol compose --customer-name "Buyer BV" --customer-enterprise 0705969661`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: letspeppol.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Write output to file instead of stdout")
}

func loadConfig() (*profile.Config, error) {
	return profile.Load(configPath)
}

func newLogger(level string) *logger.Logger {
	if verbose {
		level = "debug"
	}
	return logger.New(level, verbose)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(data []byte) error {
	if outputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
