package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Himesh-1/CraftMyCV/internal/ai"
	"github.com/Himesh-1/CraftMyCV/internal/editor"
	"github.com/Himesh-1/CraftMyCV/internal/export"
	"github.com/Himesh-1/CraftMyCV/internal/render"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation      *ErrValidation
		unknownSection  *editor.ErrUnknownSection
		unknownField    *editor.ErrUnknownField
		invalidValue    *editor.ErrInvalidValue
		entryNotFound   *editor.ErrEntryNotFound
		unknownTemplate *render.ErrUnknownTemplate
		taskErr         *ai.TaskError
		exportErr       *export.ExportError
	)

	switch {
	case errors.As(err, &validation),
		errors.As(err, &unknownSection),
		errors.As(err, &unknownField),
		errors.As(err, &invalidValue),
		errors.As(err, &unknownTemplate):
		return http.StatusBadRequest
	case errors.As(err, &entryNotFound):
		return http.StatusNotFound
	case errors.As(err, &taskErr), errors.As(err, &exportErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
