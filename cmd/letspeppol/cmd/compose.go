package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/letspeppol/letspeppol/internal/compose"
	"github.com/letspeppol/letspeppol/internal/model"
	"github.com/letspeppol/letspeppol/internal/ubl"
)

var (
	composeKind       string
	composeID         string
	composeInvoiceID  string
	customerName      string
	customerKBO       string
	customerVAT       string
	customerStreet    string
	customerCity      string
	customerZone      string
	customerCountry   string
	customerEmail     string
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose a draft document from the sender profile",
	Long: `Compose a draft invoice or credit note.

The supplier party, payment means and payment terms come from the sender
profile (letspeppol.yaml or LETSPEPPOL_* environment variables). The draft
carries one blank line; edit it and run totals before sending.

Examples:
  letspeppol compose --customer-name "Buyer BV" --customer-enterprise 0705969661
  letspeppol compose --kind credit-note --invoice-id INV-001 --customer-name "Buyer BV"`,
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)

	composeCmd.Flags().StringVar(&composeKind, "kind", "invoice", "Document kind (invoice, credit-note)")
	composeCmd.Flags().StringVar(&composeID, "id", "", "Document ID (default: generated UUID)")
	composeCmd.Flags().StringVar(&composeInvoiceID, "invoice-id", "", "Invoice referenced by a credit note")
	composeCmd.Flags().StringVar(&customerName, "customer-name", "", "Customer name")
	composeCmd.Flags().StringVar(&customerKBO, "customer-enterprise", "", "Customer enterprise number")
	composeCmd.Flags().StringVar(&customerVAT, "customer-vat", "", "Customer VAT number")
	composeCmd.Flags().StringVar(&customerStreet, "customer-street", "", "Customer street")
	composeCmd.Flags().StringVar(&customerCity, "customer-city", "", "Customer city")
	composeCmd.Flags().StringVar(&customerZone, "customer-zone", "", "Customer postal zone")
	composeCmd.Flags().StringVar(&customerCountry, "customer-country", "", "Customer country code")
	composeCmd.Flags().StringVar(&customerEmail, "customer-email", "", "Customer email")
}

func runCompose(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	composer := compose.New(cfg)
	customer := compose.Customer{
		Name:             customerName,
		EnterpriseNumber: customerKBO,
		VATNumber:        customerVAT,
		StreetName:       customerStreet,
		CityName:         customerCity,
		PostalZone:       customerZone,
		CountryCode:      customerCountry,
		Email:            customerEmail,
	}

	var doc model.Document
	switch model.Kind(composeKind) {
	case model.KindInvoice:
		doc = composer.NewInvoice(composeID, customer)
	case model.KindCreditNote:
		doc = composer.NewCreditNote(composeID, customer, composeInvoiceID)
	default:
		return fmt.Errorf("unknown document kind %q", composeKind)
	}

	out, err := ubl.Build(doc)
	if err != nil {
		return err
	}
	return writeOutput(out)
}
