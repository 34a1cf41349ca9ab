package render

import (
	"strings"

	"github.com/Himesh-1/CraftMyCV/internal/resume"
)

// Render maps a document and a template to a layout tree. Rendering is pure
// and total: any valid document produces a layout, empty sections are
// omitted rather than rendered as empty shells, and unparseable dates pass
// through verbatim.
func Render(doc *resume.Document, t Template) *Layout {
	switch t {
	case TemplateModern:
		return buildModern(doc)
	case TemplateClassic, TemplateMIT, TemplateHarvard:
		return buildStandard(doc, t)
	case TemplateATSClassic:
		return buildATSClassic(doc)
	case TemplateUIUX:
		return buildUIUX(doc)
	case TemplateMedical:
		return buildMedical(doc)
	case TemplateProjectManager:
		return buildProjectManager(doc)
	case TemplateCopyeditor:
		return buildCopyeditor(doc)
	}
	// Unknown ids fall back to the default single-column shape.
	return buildStandard(doc, TemplateModern)
}

func dateRange(start, end, sep string) string {
	return resume.FormatDate(start) + sep + resume.FormatDate(end)
}

func atsDateRange(start, end string) string {
	return resume.FormatDateUpper(start) + " – " + resume.FormatDateUpper(end)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func skillNames(skills []resume.Skill) []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}

// experienceEntries builds one EntryBlock per position in list order.
func experienceEntries(doc *resume.Document, subtitleWithLocation bool, sep string) []Block {
	blocks := make([]Block, 0, len(doc.Experience))
	for _, exp := range doc.Experience {
		subtitle := exp.Company
		if subtitleWithLocation {
			subtitle = joinNonEmpty(", ", exp.Company, exp.Location)
		}
		blocks = append(blocks, EntryBlock{
			Title:    exp.JobTitle,
			Subtitle: subtitle,
			Aside:    dateRange(exp.StartDate, exp.EndDate, sep),
			Bullets:  resume.SplitBullets(exp.Description),
		})
	}
	return blocks
}

// addTextSection appends a single-paragraph section unless the text is empty.
func addTextSection(sections []Section, title, text string, role Role) []Section {
	if text == "" {
		return sections
	}
	return append(sections, Section{Title: title, Blocks: []Block{TextBlock{Role: role, Text: text}}})
}

// mainSections is the shared Summary/Experience/Education/Skills column used
// by the classic, mit, harvard and modern templates.
func mainSections(doc *resume.Document, includeSkills bool) []Section {
	var sections []Section

	sections = addTextSection(sections, "Summary", doc.Summary, RoleSummary)

	if len(doc.Experience) > 0 {
		sections = append(sections, Section{Title: "Experience", Blocks: experienceEntries(doc, true, " - ")})
	}

	if len(doc.Education) > 0 {
		blocks := make([]Block, 0, len(doc.Education))
		for _, edu := range doc.Education {
			blocks = append(blocks, EntryBlock{
				Title:    edu.Degree,
				Subtitle: joinNonEmpty(", ", edu.Institution, edu.Location),
				Aside:    resume.FormatDate(edu.GraduationDate),
				Detail:   edu.Details,
			})
		}
		sections = append(sections, Section{Title: "Education", Blocks: blocks})
	}

	if includeSkills && len(doc.Skills) > 0 {
		sections = append(sections, Section{
			Title:  "Skills",
			Blocks: []Block{ListBlock{Items: skillNames(doc.Skills), Badges: true}},
		})
	}

	return sections
}

// buildStandard is the single-column header-then-sections shape shared by
// the classic, mit and harvard variants; they differ only in style tables.
func buildStandard(doc *resume.Document, t Template) *Layout {
	pd := doc.PersonalDetails
	return &Layout{
		Template: t,
		Shape:    ShapeSingleColumn,
		Style:    styleFor(t),
		Header: []Block{
			TextBlock{Role: RoleName, Text: pd.FullName},
			ContactBlock{Items: []ContactItem{
				{Value: pd.Address},
				{Value: pd.Email},
				{Value: pd.PhoneNumber},
				{Value: pd.Website},
			}},
		},
		Columns: []Column{{Sections: mainSections(doc, true)}},
	}
}

func buildModern(doc *resume.Document) *Layout {
	pd := doc.PersonalDetails

	sidebar := []Section{
		{Blocks: []Block{TextBlock{Role: RoleName, Text: pd.FullName}}},
		{Title: "Contact", Blocks: []Block{ContactBlock{Items: []ContactItem{
			{Value: pd.Address},
			{Value: pd.Email},
			{Value: pd.PhoneNumber},
			{Value: pd.Website},
		}}}},
	}
	if len(doc.Skills) > 0 {
		sidebar = append(sidebar, Section{
			Title:  "Skills",
			Blocks: []Block{ListBlock{Items: skillNames(doc.Skills), Badges: true}},
		})
	}

	return &Layout{
		Template: TemplateModern,
		Shape:    ShapeTwoColumn,
		Style:    styleFor(TemplateModern),
		Columns: []Column{
			{Sidebar: true, Sections: sidebar},
			{Sections: mainSections(doc, false)},
		},
	}
}

func buildATSClassic(doc *resume.Document) *Layout {
	pd := doc.PersonalDetails

	var sections []Section

	if len(doc.Experience) > 0 {
		blocks := make([]Block, 0, len(doc.Experience))
		for _, exp := range doc.Experience {
			blocks = append(blocks, EntryBlock{
				Title:    joinNonEmpty(" | ", exp.JobTitle, exp.Company),
				Subtitle: exp.Location,
				Aside:    atsDateRange(exp.StartDate, exp.EndDate),
				Bullets:  resume.SplitBullets(exp.Description),
			})
		}
		sections = append(sections, Section{Title: "Experience", Blocks: blocks})
	}

	if len(doc.Skills) > 0 {
		sections = append(sections, Section{
			Title:  "Skills",
			Blocks: []Block{ListBlock{Items: skillNames(doc.Skills), Badges: true}},
		})
	}

	if len(doc.Education) > 0 {
		blocks := make([]Block, 0, len(doc.Education))
		for _, edu := range doc.Education {
			blocks = append(blocks, EntryBlock{
				Title:    joinNonEmpty(" | ", edu.Degree, edu.Institution),
				Subtitle: edu.Location,
				Aside:    resume.FormatDateUpper(edu.GraduationDate),
				Detail:   edu.Details,
			})
		}
		sections = append(sections, Section{Title: "Education", Blocks: blocks})
	}

	if doc.Activities != "" {
		sections = append(sections, Section{
			Title:  "Activities",
			Blocks: []Block{TextBlock{Role: RoleAside, Text: doc.Activities}},
		})
	}

	header := []Block{TextBlock{Role: RoleTitle, Text: pd.Title}}
	if doc.Summary != "" {
		header = append(header, TextBlock{Role: RoleSummary, Text: doc.Summary})
	}

	return &Layout{
		Template: TemplateATSClassic,
		Shape:    ShapeSingleColumn,
		Style:    styleFor(TemplateATSClassic),
		Header:   header,
		Columns:  []Column{{Sections: sections}},
	}
}

func buildUIUX(doc *resume.Document) *Layout {
	pd := doc.PersonalDetails

	var main []Section
	main = addTextSection(main, "Objective", doc.Summary, RoleSummary)
	if len(doc.Experience) > 0 {
		main = append(main, Section{Title: "Experience", Blocks: experienceEntries(doc, true, " - ")})
	}

	var side []Section
	if doc.AboutMe != "" {
		side = append(side, Section{Title: "About Me", Blocks: []Block{TextBlock{Role: RoleSummary, Text: doc.AboutMe}}})
	}
	if len(doc.Education) > 0 {
		blocks := make([]Block, 0, len(doc.Education))
		for _, edu := range doc.Education {
			blocks = append(blocks, EntryBlock{
				Title:    edu.Institution,
				Subtitle: edu.Degree,
				Aside:    resume.FormatDate(edu.GraduationDate),
				Detail:   edu.Details,
			})
		}
		side = append(side, Section{Title: "Education", Blocks: blocks})
	}
	if len(doc.Skills) > 0 {
		side = append(side, Section{
			Title:  "Skills",
			Blocks: []Block{ListBlock{Items: skillNames(doc.Skills)}},
		})
	}

	return &Layout{
		Template: TemplateUIUX,
		Shape:    ShapeTwoColumn,
		Style:    styleFor(TemplateUIUX),
		Header: []Block{
			TextBlock{Role: RoleName, Text: pd.FullName},
			TextBlock{Role: RoleTitle, Text: pd.Title},
			ContactBlock{Items: []ContactItem{
				{Label: "Email", Value: pd.Email},
				{Label: "Phone", Value: pd.PhoneNumber},
				{Label: "Portfolio", Value: pd.Website},
				{Label: "Location", Value: pd.Address},
			}},
		},
		Columns: []Column{
			{Sections: main},
			{Sidebar: true, Sections: side},
		},
	}
}

func buildMedical(doc *resume.Document) *Layout {
	pd := doc.PersonalDetails

	var main []Section
	main = addTextSection(main, "Profile", doc.Summary, RoleSummary)
	if len(doc.Experience) > 0 {
		main = append(main, Section{Title: "Work Experience", Blocks: experienceEntries(doc, false, " - ")})
	}

	var side []Section
	if len(doc.Skills) > 0 {
		ratings := make([]SkillRating, len(doc.Skills))
		for i, s := range doc.Skills {
			ratings[i] = SkillRating{Name: s.Name, Level: resume.ClampLevel(s.Level)}
		}
		side = append(side, Section{Title: "Skills", Blocks: []Block{RatingBlock{Items: ratings}}})
	}
	if len(doc.Education) > 0 {
		blocks := make([]Block, 0, len(doc.Education))
		for _, edu := range doc.Education {
			blocks = append(blocks, EntryBlock{
				Title:    edu.Institution,
				Subtitle: edu.Degree,
				Aside:    resume.FormatDate(edu.GraduationDate),
				Detail:   edu.Details,
			})
		}
		side = append(side, Section{Title: "Education", Blocks: blocks})
	}
	if hobbies := resume.SplitActivities(doc.Activities); len(hobbies) > 0 {
		side = append(side, Section{Title: "Hobbies", Blocks: []Block{ListBlock{Items: hobbies}}})
	}

	return &Layout{
		Template: TemplateMedical,
		Shape:    ShapeTwoColumn,
		Style:    styleFor(TemplateMedical),
		Header: []Block{
			ContactBlock{Items: []ContactItem{
				{Label: "Phone", Value: pd.PhoneNumber},
				{Label: "Website", Value: pd.Website},
				{Label: "Email", Value: pd.Email},
			}},
			TextBlock{Role: RoleName, Text: pd.FullName},
			TextBlock{Role: RoleTitle, Text: pd.Title},
		},
		Columns: []Column{
			{Sections: main},
			{Sidebar: true, Sections: side},
		},
	}
}

// educationDetailLines splits education details for the project-manager
// template, where lines mentioning coursework read as sub-headings.
func educationDetailLines(details string) []DetailLine {
	bullets := resume.SplitBullets(details)
	lines := make([]DetailLine, len(bullets))
	for i, text := range bullets {
		lines[i] = DetailLine{
			Text:    text,
			Heading: strings.Contains(strings.ToLower(text), "coursework"),
		}
	}
	return lines
}

func buildProjectManager(doc *resume.Document) *Layout {
	pd := doc.PersonalDetails

	var main []Section
	main = addTextSection(main, "Objective", doc.Summary, RoleSummary)
	if len(doc.Experience) > 0 {
		main = append(main, Section{Title: "Experience", Blocks: experienceEntries(doc, false, " – ")})
	}

	var side []Section
	if len(doc.Skills) > 0 {
		side = append(side, Section{
			Title:  "Skills & Abilities",
			Blocks: []Block{ListBlock{Items: skillNames(doc.Skills)}},
		})
	}
	if len(doc.Education) > 0 {
		blocks := make([]Block, 0, len(doc.Education))
		for _, edu := range doc.Education {
			blocks = append(blocks, EntryBlock{
				Title:       edu.Institution,
				Subtitle:    edu.Degree,
				Aside:       resume.FormatDate(edu.GraduationDate),
				DetailLines: educationDetailLines(edu.Details),
			})
		}
		side = append(side, Section{Title: "Education", Blocks: blocks})
	}
	if doc.Leadership != "" {
		side = append(side, Section{
			Title:  "Leadership",
			Blocks: []Block{TextBlock{Role: RoleDetail, Text: doc.Leadership}},
		})
	}

	return &Layout{
		Template: TemplateProjectManager,
		Shape:    ShapeTwoColumn,
		Style:    styleFor(TemplateProjectManager),
		Header: []Block{
			TextBlock{Role: RoleName, Text: pd.FullName},
			TextBlock{Role: RoleTitle, Text: pd.Title},
			ContactBlock{Items: []ContactItem{
				{Value: pd.Address},
				{Value: pd.PhoneNumber},
				{Value: pd.Email},
			}},
		},
		Columns: []Column{
			{Sections: main},
			{Sidebar: true, Sections: side},
		},
	}
}

func buildCopyeditor(doc *resume.Document) *Layout {
	pd := doc.PersonalDetails

	var sections []Section
	sections = addTextSection(sections, "Objective", doc.Summary, RoleSummary)
	if len(doc.Skills) > 0 {
		sections = append(sections, Section{
			Title:  "Skills & Abilities",
			Blocks: []Block{ListBlock{Items: skillNames(doc.Skills)}},
		})
	}
	if len(doc.Experience) > 0 {
		sections = append(sections, Section{Title: "Experience", Blocks: experienceEntries(doc, true, " – ")})
	}
	if len(doc.Education) > 0 {
		blocks := make([]Block, 0, len(doc.Education))
		for _, edu := range doc.Education {
			blocks = append(blocks, EntryBlock{
				Title:    edu.Degree,
				Subtitle: edu.Institution,
				Aside:    resume.FormatDate(edu.GraduationDate),
				Detail:   edu.Details,
			})
		}
		sections = append(sections, Section{Title: "Education", Blocks: blocks})
	}
	if doc.Leadership != "" {
		sections = append(sections, Section{
			Title:  "Leadership",
			Blocks: []Block{TextBlock{Role: RoleDetail, Text: doc.Leadership}},
		})
	}

	return &Layout{
		Template: TemplateCopyeditor,
		Shape:    ShapeSingleColumn,
		Style:    styleFor(TemplateCopyeditor),
		Header: []Block{
			TextBlock{Role: RoleName, Text: strings.ToUpper(pd.FullName)},
			TextBlock{Role: RoleTitle, Text: pd.Title},
			ContactBlock{Items: []ContactItem{
				{Value: pd.PhoneNumber},
				{Value: strings.ToUpper(pd.Email)},
				{Value: pd.Address},
			}},
		},
		Columns: []Column{{Sections: sections}},
	}
}
