// Package editor provides the mutable-document controller behind the resume
// form: add/update/remove operations over the list-typed sections.
package editor

import "fmt"

// ErrUnknownSection indicates a section name outside {experience, education, skills}.
type ErrUnknownSection struct {
	Section string
}

func (e *ErrUnknownSection) Error() string {
	return fmt.Sprintf("unknown section: %s", e.Section)
}

// ErrUnknownField indicates a field name the section's entry type does not have.
type ErrUnknownField struct {
	Section Section
	Field   string
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("unknown field %q for section %s", e.Field, e.Section)
}

// ErrEntryNotFound indicates an update against an id absent from the list.
type ErrEntryNotFound struct {
	Section Section
	ID      string
}

func (e *ErrEntryNotFound) Error() string {
	return fmt.Sprintf("no %s entry with id %s", e.Section, e.ID)
}

// ErrInvalidValue indicates a field value that cannot be coerced to the
// field's type, e.g. a non-numeric skill level.
type ErrInvalidValue struct {
	Field   string
	Value   string
	Message string
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value %q for field %s: %s", e.Value, e.Field, e.Message)
}
