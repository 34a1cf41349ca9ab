package ai

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schemas the model output must satisfy before it is decoded.
const (
	optimizationSchema = `{
		"type": "object",
		"required": ["optimizedContent", "missingInformation", "suggestions"],
		"properties": {
			"optimizedContent": {"type": "string"},
			"missingInformation": {"type": "string"},
			"suggestions": {"type": "string"}
		}
	}`

	atsReportSchema = `{
		"type": "object",
		"required": ["score", "checks"],
		"properties": {
			"score": {"type": "number"},
			"checks": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["text", "status"],
					"properties": {
						"text": {"type": "string"},
						"status": {"type": "string", "enum": ["pass", "fail", "warn"]}
					}
				}
			}
		}
	}`

	coverLetterSchema = `{
		"type": "object",
		"required": ["coverLetter"],
		"properties": {
			"coverLetter": {"type": "string"}
		}
	}`

	skillGapSchema = `{
		"type": "object",
		"required": ["matchingSkills", "missingSkills", "suggestedSkills"],
		"properties": {
			"matchingSkills": {"type": "array", "items": {"type": "string"}},
			"missingSkills": {"type": "array", "items": {"type": "string"}},
			"suggestedSkills": {"type": "array", "items": {"type": "string"}}
		}
	}`
)

// ResponseValidationError reports model output that does not match the
// expected shape, with one message per offending field.
type ResponseValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *ResponseValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("model response validation failed:\n")
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// validateResponse checks raw JSON model output against a schema.
func validateResponse(schema, document string) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewStringLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ResponseValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
