package model

// PaymentMeans describes how the document is to be paid. PaymentDueDate is
// only used on credit notes, which carry no document-level due date.
type PaymentMeans struct {
	PaymentMeansCode      Code                   `json:"PaymentMeansCode"`
	PaymentDueDate        *string                `json:"PaymentDueDate,omitempty"`
	PaymentID             *string                `json:"PaymentID,omitempty"`
	PayeeFinancialAccount *PayeeFinancialAccount `json:"PayeeFinancialAccount,omitempty"`
}

// PayeeFinancialAccount is the account to pay into, identified by IBAN.
type PayeeFinancialAccount struct {
	ID                         string                      `json:"ID"`
	Name                       *string                     `json:"Name,omitempty"`
	FinancialInstitutionBranch *FinancialInstitutionBranch `json:"FinancialInstitutionBranch,omitempty"`
}

// FinancialInstitutionBranch identifies the branch (BIC).
type FinancialInstitutionBranch struct {
	ID string `json:"ID"`
}

// PaymentTerms is the free-text payment terms note.
type PaymentTerms struct {
	Note string `json:"Note"`
}
