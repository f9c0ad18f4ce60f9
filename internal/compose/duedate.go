package compose

import "time"

const dateLayout = "2006-01-02"

// Payment terms accepted by DueDate.
const (
	Term15Days         = "15_DAYS"
	Term30Days         = "30_DAYS"
	Term60Days         = "60_DAYS"
	TermEndOfNextMonth = "END_OF_NEXT_MONTH"
)

// DueDate computes the payment due date for an issue date and payment term.
// Day terms add calendar days; END_OF_NEXT_MONTH resolves to the last day of
// the month after the issue month. Unknown terms and unparseable issue dates
// return false, leaving any existing due date for the caller to keep.
func DueDate(issueDate, term string) (string, bool) {
	t, err := time.Parse(dateLayout, issueDate)
	if err != nil {
		return "", false
	}
	switch term {
	case Term15Days:
		t = t.AddDate(0, 0, 15)
	case Term30Days:
		t = t.AddDate(0, 0, 30)
	case Term60Days:
		t = t.AddDate(0, 0, 60)
	case TermEndOfNextMonth:
		// First day of the month after next, minus one day. time.Date
		// normalizes month overflow, so December rolls into next year.
		t = time.Date(t.Year(), t.Month()+2, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	default:
		return "", false
	}
	return t.Format(dateLayout), true
}

// TermNote renders the human-readable payment terms note for a term.
func TermNote(term string) string {
	switch term {
	case Term15Days:
		return "Payment within 15 days"
	case Term30Days:
		return "Payment within 30 days"
	case Term60Days:
		return "Payment within 60 days"
	case TermEndOfNextMonth:
		return "Payment before the end of next month"
	}
	return ""
}
