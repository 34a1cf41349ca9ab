// Package render maps a resume document and a template variant to a layout
// tree of styled blocks, and serializes that tree to HTML markup for the
// preview and the export pipeline.
package render

import "fmt"

// Template identifies one of the fixed visual template variants.
type Template string

// The complete template set.
const (
	TemplateModern         Template = "modern"
	TemplateClassic        Template = "classic"
	TemplateMIT            Template = "mit"
	TemplateHarvard        Template = "harvard"
	TemplateATSClassic     Template = "ats-classic"
	TemplateUIUX           Template = "ui-ux"
	TemplateMedical        Template = "medical"
	TemplateProjectManager Template = "project-manager"
	TemplateCopyeditor     Template = "copyeditor"
)

// All returns every template variant in display order.
func All() []Template {
	return []Template{
		TemplateModern,
		TemplateClassic,
		TemplateMIT,
		TemplateHarvard,
		TemplateATSClassic,
		TemplateUIUX,
		TemplateMedical,
		TemplateProjectManager,
		TemplateCopyeditor,
	}
}

// ErrUnknownTemplate indicates a template id outside the fixed set.
type ErrUnknownTemplate struct {
	Name string
}

func (e *ErrUnknownTemplate) Error() string {
	return fmt.Sprintf("unknown template: %s", e.Name)
}

// Parse validates a template id from the API surface.
func Parse(name string) (Template, error) {
	for _, t := range All() {
		if Template(name) == t {
			return t, nil
		}
	}
	return "", &ErrUnknownTemplate{Name: name}
}

// DisplayName returns the human-readable template name.
func (t Template) DisplayName() string {
	switch t {
	case TemplateModern:
		return "Modern"
	case TemplateClassic:
		return "Classic"
	case TemplateMIT:
		return "MIT"
	case TemplateHarvard:
		return "Harvard"
	case TemplateATSClassic:
		return "ATS Classic"
	case TemplateUIUX:
		return "UI/UX"
	case TemplateMedical:
		return "Medical"
	case TemplateProjectManager:
		return "Project Manager"
	case TemplateCopyeditor:
		return "Copyeditor"
	}
	return string(t)
}
