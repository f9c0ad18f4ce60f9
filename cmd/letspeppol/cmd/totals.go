package cmd

import (
	"github.com/spf13/cobra"

	"github.com/letspeppol/letspeppol/internal/calc"
	"github.com/letspeppol/letspeppol/internal/ubl"
)

var totalsCmd = &cobra.Command{
	Use:   "totals [file.xml]",
	Short: "Recalculate line, tax and document totals",
	Long: `Recalculate the derived amounts of a document from its lines.

Line extension amounts are recomputed from price and quantity, a tax
subtotal is built per rate group, and the legal monetary total is rewritten.
A pre-stated ChargeTotalAmount is carried into the tax-exclusive amount;
document-level allowances and charges are otherwise left alone.

Examples:
  letspeppol totals invoice.xml
  letspeppol totals invoice.xml -o recalculated.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runTotals,
}

func init() {
	rootCmd.AddCommand(totalsCmd)
}

func runTotals(cmd *cobra.Command, args []string) error {
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

	if err := calc.Recalculate(doc); err != nil {
		return err
	}

	out, err := ubl.Build(doc)
	if err != nil {
		return err
	}
	return writeOutput(out)
}
