package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/letspeppol/letspeppol/internal/model"
	"github.com/letspeppol/letspeppol/internal/ubl"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse invoice or credit-note XML into typed JSON",
	Long: `Parse a UBL document into its typed JSON form.

Values that fail numeric or boolean coercion keep their original text and
are reported as warnings; they survive a rebuild unchanged.

Examples:
  letspeppol parse invoice.xml
  cat invoice.xml | letspeppol parse -`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

// parseOutput is the JSON envelope written by the parse command.
type parseOutput struct {
	Kind     model.Kind      `json:"kind"`
	Document model.Document  `json:"document"`
	Warnings []model.Warning `json:"warnings,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	doc, warnings, err := ubl.Parse(data)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		printVerbose("warning: %s\n", w.String())
	}

	out, err := json.MarshalIndent(parseOutput{
		Kind:     doc.Kind(),
		Document: doc,
		Warnings: warnings,
	}, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(append(out, '\n'))
}
