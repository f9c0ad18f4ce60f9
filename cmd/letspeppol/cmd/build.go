package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/letspeppol/letspeppol/internal/model"
	"github.com/letspeppol/letspeppol/internal/ubl"
)

var buildCmd = &cobra.Command{
	Use:   "build [file.json]",
	Short: "Build UBL XML from typed JSON",
	Long: `Build UBL XML from the JSON form produced by parse.

Elements are emitted in a fixed order, so building the output of parse
reproduces the source document modulo whitespace.

Examples:
  letspeppol build invoice.json -o invoice.xml
  letspeppol parse invoice.xml | letspeppol build -`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	var envelope struct {
		Kind     model.Kind      `json:"kind"`
		Document json.RawMessage `json:"document"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	var doc model.Document
	switch envelope.Kind {
	case model.KindCreditNote:
		var cn model.CreditNote
		if err := json.Unmarshal(envelope.Document, &cn); err != nil {
			return fmt.Errorf("decode credit note: %w", err)
		}
		doc = &cn
	case model.KindInvoice, "":
		var inv model.Invoice
		if err := json.Unmarshal(envelope.Document, &inv); err != nil {
			return fmt.Errorf("decode invoice: %w", err)
		}
		doc = &inv
	default:
		return fmt.Errorf("unknown document kind %q", envelope.Kind)
	}

	out, err := ubl.Build(doc)
	if err != nil {
		return err
	}
	return writeOutput(out)
}
