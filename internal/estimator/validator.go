// ABOUTME: Required-field validation gating estimation submits
// ABOUTME: Produces the per-field error map shown beside the form

package estimator

// Per-field messages shown inline by the presentation layer
const (
	DocumentCountRequiredMsg = "Number of documents is required"
	DocumentSizeRequiredMsg  = "Average document size is required"
)

// ValidationErrors flags which required fields were empty at submit time
type ValidationErrors struct {
	DocumentCountMissing bool
	DocumentSizeMissing  bool
}

// Any reports whether at least one field failed validation
func (v ValidationErrors) Any() bool {
	return v.DocumentCountMissing || v.DocumentSizeMissing
}

// Messages returns the inline messages for the failed fields, in form order
func (v ValidationErrors) Messages() []string {
	var msgs []string
	if v.DocumentCountMissing {
		msgs = append(msgs, DocumentCountRequiredMsg)
	}
	if v.DocumentSizeMissing {
		msgs = append(msgs, DocumentSizeRequiredMsg)
	}
	return msgs
}

// Validate applies the required-field rules. Bounds are left to the service.
func Validate(raw RawInput) ValidationErrors {
	return ValidationErrors{
		DocumentCountMissing: raw.DocumentCount == "",
		DocumentSizeMissing:  raw.DocumentSize == "",
	}
}
