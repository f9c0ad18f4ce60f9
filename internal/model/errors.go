package model

import "fmt"

// ParseError reports XML that could not be read at all. It is fatal: no
// document is returned alongside it.
type ParseError struct {
	Op      string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error.
func NewParseError(op, message string, cause error) *ParseError {
	return &ParseError{Op: op, Message: message, Cause: cause}
}

// UnrecognizedRootError reports a well-formed document whose root element is
// neither Invoice nor CreditNote.
type UnrecognizedRootError struct {
	Root string
}

func (e *UnrecognizedRootError) Error() string {
	if e.Root == "" {
		return "document has no root element"
	}
	return fmt.Sprintf("unrecognized root element %q, want Invoice or CreditNote", e.Root)
}

// NonFiniteAmountError reports a calculator input that never coerced to a
// number. The calculator fails fast instead of folding garbage into totals.
type NonFiniteAmountError struct {
	LineID string
	Field  string
	Raw    string
}

func (e *NonFiniteAmountError) Error() string {
	return fmt.Sprintf("line %s: %s is not a finite number (%q)", e.LineID, e.Field, e.Raw)
}

// Warning is a non-fatal soft type mismatch collected during parsing: a tag
// expected to be numeric or boolean whose text did not coerce. The original
// text is preserved in the document, so rebuilding is unaffected.
type Warning struct {
	Path string `json:"path"`
	Tag  string `json:"tag"`
	Raw  string `json:"raw"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: value %q is not a valid %s", w.Path, w.Raw, w.Tag)
}
