package cmd

import (
	"github.com/spf13/cobra"

	"github.com/letspeppol/letspeppol/internal/calc"
	"github.com/letspeppol/letspeppol/internal/convert"
	"github.com/letspeppol/letspeppol/internal/ubl"
)

var convertRecalculate bool

var convertCmd = &cobra.Command{
	Use:   "convert [file.xml]",
	Short: "Convert between invoice and credit note",
	Long: `Convert an invoice into a credit note or back.

All fields are carried over verbatim; amounts are not recomputed unless
--recalculate is given. Converting an invoice drops its due date, because
the credit-note layout has no place for one.

Examples:
  letspeppol convert invoice.xml -o creditnote.xml
  letspeppol convert creditnote.xml --recalculate`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&convertRecalculate, "recalculate", false, "Recalculate totals after converting")
}

func runConvert(cmd *cobra.Command, args []string) error {
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

	converted := convert.Toggle(doc)
	if convertRecalculate {
		if err := calc.Recalculate(converted); err != nil {
			return err
		}
	}

	out, err := ubl.Build(converted)
	if err != nil {
		return err
	}
	return writeOutput(out)
}
