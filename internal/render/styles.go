package render

// Style is a template's table of visual attributes, one entry per block
// role. Values are CSS class lists consumed by the external stylesheet.
type Style struct {
	Container       string
	Header          string
	FullName        string
	ContactInfo     string
	SectionTitle    string
	EntryTitle      string
	EntrySubtitle   string
	EntryDate       string
	SkillsContainer string
	SkillBadge      string
	DescriptionList string
}

// styleFor returns the style table for a template. The switch is
// exhaustive over the template set.
func styleFor(t Template) Style {
	switch t {
	case TemplateMIT:
		return Style{
			Container:       "font-sans text-sm",
			Header:          "text-center border-b-2 border-black pb-2 mb-4",
			FullName:        "text-3xl font-bold font-headline text-black tracking-tight",
			ContactInfo:     "flex justify-center items-center flex-wrap gap-x-4 gap-y-1 text-xs text-black",
			SectionTitle:    "text-lg font-bold font-headline text-black uppercase tracking-wider border-b border-black pb-1 mb-2",
			EntryTitle:      "font-bold text-black",
			EntrySubtitle:   "italic text-black",
			EntryDate:       "text-xs text-black",
			SkillsContainer: "flex flex-wrap gap-2",
			SkillBadge:      "bg-black/10 text-black px-2 py-0.5 rounded text-xs",
			DescriptionList: "list-disc pl-5 mt-1 space-y-1 text-black",
		}
	case TemplateHarvard:
		return Style{
			Container:       "font-serif text-sm",
			Header:          "text-center mb-4",
			FullName:        "text-4xl font-bold font-headline text-black tracking-normal",
			ContactInfo:     "flex justify-center items-center flex-wrap gap-x-4 gap-y-1 text-xs text-black",
			SectionTitle:    "text-sm font-bold font-headline text-black uppercase tracking-widest border-b-2 border-black mb-2",
			EntryTitle:      "font-bold text-black",
			EntrySubtitle:   "text-black",
			EntryDate:       "font-bold text-xs text-black",
			SkillsContainer: "columns-2 md:columns-3",
			SkillBadge:      "text-black",
			DescriptionList: "list-disc pl-5 mt-1 space-y-1 text-black",
		}
	case TemplateClassic:
		return Style{
			Container:       "font-serif",
			Header:          "text-center py-4 border-b-4 border-black",
			FullName:        "text-4xl font-bold tracking-widest text-black uppercase",
			ContactInfo:     "text-center text-xs space-x-4 mt-2 text-black",
			SectionTitle:    "text-xl font-bold text-black mb-2 border-b border-black pb-1",
			EntryTitle:      "font-bold text-black",
			EntrySubtitle:   "italic text-black",
			EntryDate:       "text-sm text-black",
			SkillsContainer: "flex flex-wrap gap-x-4 gap-y-1",
			SkillBadge:      "text-black",
			DescriptionList: "list-disc pl-6 mt-1 space-y-1 text-black",
		}
	case TemplateModern:
		return Style{
			Container:       "font-sans text-sm flex",
			SectionTitle:    "text-lg font-bold uppercase text-black mb-2 tracking-wider",
			EntryTitle:      "font-semibold text-black",
			EntrySubtitle:   "text-sm text-black",
			EntryDate:       "text-xs text-black font-medium",
			SkillsContainer: "flex flex-wrap gap-2",
			SkillBadge:      "bg-black/10 text-black px-2 py-1 rounded text-xs",
			DescriptionList: "list-disc pl-5 mt-1 space-y-1 text-black",
		}
	case TemplateATSClassic:
		return Style{
			Container:       "font-sans",
			Header:          "mb-8 text-center",
			FullName:        "text-3xl font-bold mb-2",
			SectionTitle:    "text-xl font-bold border-b-2 border-black pb-2 mb-4",
			EntryTitle:      "text-lg font-bold",
			EntryDate:       "font-bold",
			SkillsContainer: "flex flex-wrap gap-2",
			SkillBadge:      "bg-gray-100 text-black px-3 py-1 rounded text-sm",
			DescriptionList: "list-disc pl-5 mt-1 space-y-1 text-sm",
		}
	case TemplateUIUX:
		return Style{
			Container:       "font-sans text-gray-800",
			Header:          "grid grid-cols-5 gap-8 mb-8 border-b-2 border-gray-200 pb-6",
			FullName:        "text-4xl font-bold",
			SectionTitle:    "text-xl font-bold border-b border-gray-300 pb-1 mb-3",
			EntryTitle:      "text-lg font-semibold",
			EntrySubtitle:   "italic text-sm mb-1",
			EntryDate:       "text-gray-600 text-sm",
			SkillsContainer: "space-y-2 text-sm",
			SkillBadge:      "",
			DescriptionList: "list-disc pl-5 space-y-1 text-sm",
		}
	case TemplateMedical:
		return Style{
			Container:       "font-sans text-gray-800",
			Header:          "grid grid-cols-3 gap-8 mb-8 border-b-2 border-gray-200 pb-6",
			FullName:        "text-4xl font-bold",
			SectionTitle:    "text-2xl font-bold border-b border-gray-300 pb-1 mb-3",
			EntryTitle:      "text-xl font-semibold",
			EntrySubtitle:   "font-medium",
			EntryDate:       "text-gray-600 text-sm",
			SkillsContainer: "space-y-3 text-sm",
			SkillBadge:      "",
			DescriptionList: "list-disc pl-5 mt-2 space-y-1 text-sm",
		}
	case TemplateProjectManager:
		return Style{
			Container:       "font-sans text-gray-800",
			Header:          "grid grid-cols-3 gap-8 mb-8 border-b-2 border-gray-200 pb-6",
			FullName:        "text-4xl font-bold",
			SectionTitle:    "text-xl font-bold border-b border-gray-300 pb-1 mb-3",
			EntryTitle:      "text-lg font-semibold",
			EntrySubtitle:   "font-medium",
			EntryDate:       "text-gray-600 text-sm",
			SkillsContainer: "space-y-2 text-sm",
			SkillBadge:      "",
			DescriptionList: "list-disc pl-5 mt-2 space-y-1 text-sm",
		}
	case TemplateCopyeditor:
		return Style{
			Container:       "font-serif text-gray-800",
			Header:          "text-center mb-8",
			FullName:        "text-4xl font-bold tracking-tight",
			ContactInfo:     "flex justify-center flex-wrap gap-x-4 gap-y-1 mt-4 text-sm",
			SectionTitle:    "text-xl font-bold border-b border-gray-300 pb-1 mb-3",
			EntryTitle:      "text-lg font-semibold",
			EntrySubtitle:   "font-medium",
			EntryDate:       "text-gray-600 text-sm",
			SkillsContainer: "list-disc pl-5 space-y-1 text-sm",
			SkillBadge:      "",
			DescriptionList: "list-disc pl-5 mt-2 space-y-1 text-sm",
		}
	}
	// Unreachable for a valid Template; keep rendering total.
	return Style{}
}
