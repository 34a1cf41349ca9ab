// Package export turns rendered resume markup into downloadable artifacts:
// client-side-equivalent PDF rasterization via headless Chrome, and DOCX
// conversion through a remote HTML-to-DOCX service.
package export

import "fmt"

// ExportError represents a failed export attempt. Exports never mutate the
// source document, so a failure leaves the editing session fully usable.
type ExportError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s export failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s export failed: %s", e.Format, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
