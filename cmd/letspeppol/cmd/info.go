package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/letspeppol/letspeppol/internal/model"
	"github.com/letspeppol/letspeppol/internal/ubl"
)

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Show summary information about documents",
	Long: `Display a short summary of one or more UBL documents.

Shows the document kind, identifiers, parties, line count and payable
amount, plus any soft-coercion warnings.

Examples:
  letspeppol info invoice.xml
  letspeppol info *.xml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	for _, file := range args {
		printDocumentInfo(file)
		fmt.Println()
	}
	return nil
}

func printDocumentInfo(path string) {
	fmt.Printf("File: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
		return
	}

	doc, warnings, err := ubl.Parse(data)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
		return
	}

	fmt.Printf("  Kind: %s\n", doc.Kind())
	fmt.Printf("  ID: %s\n", doc.DocumentID())
	fmt.Printf("  Currency: %s\n", doc.Currency())

	switch d := doc.(type) {
	case *model.Invoice:
		fmt.Printf("  Issue date: %s\n", d.IssueDate)
		if d.DueDate != nil {
			fmt.Printf("  Due date: %s\n", *d.DueDate)
		}
		printParties(d.AccountingSupplierParty, d.AccountingCustomerParty)
		fmt.Printf("  Lines: %d\n", len(d.InvoiceLine))
		fmt.Printf("  Payable: %s %s\n", d.LegalMonetaryTotal.PayableAmount.Raw, d.LegalMonetaryTotal.PayableAmount.CurrencyID)
	case *model.CreditNote:
		fmt.Printf("  Issue date: %s\n", d.IssueDate)
		if d.BillingReference != nil {
			fmt.Printf("  Corrects invoice: %s\n", d.BillingReference.InvoiceDocumentReference.ID)
		}
		printParties(d.AccountingSupplierParty, d.AccountingCustomerParty)
		fmt.Printf("  Lines: %d\n", len(d.CreditNoteLine))
		fmt.Printf("  Payable: %s %s\n", d.LegalMonetaryTotal.PayableAmount.Raw, d.LegalMonetaryTotal.PayableAmount.CurrencyID)
	}

	for _, w := range warnings {
		fmt.Printf("  Warning: %s\n", w.String())
	}
}

func printParties(supplier, customer model.AccountingParty) {
	if supplier.Party.PartyName != nil {
		fmt.Printf("  Supplier: %s\n", supplier.Party.PartyName.Name)
	}
	if customer.Party.PartyName != nil {
		fmt.Printf("  Customer: %s\n", customer.Party.PartyName.Name)
	}
}
