package types

import "fmt"

// FieldWarning records a recoverable problem found while normalizing a raw
// questionnaire response. Warnings never abort a scoring pass; they are
// accumulated and surfaced in the result payload.
type FieldWarning struct {
	Field     string `json:"field"`
	Message   string `json:"message"`
	Defaulted bool   `json:"defaulted"`
}

// String renders the warning as "field: message".
func (w FieldWarning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}
