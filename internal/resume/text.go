package resume

import (
	"fmt"
	"strings"
)

// PlainText flattens the document into the labeled plain-text form sent to
// the AI gateway. Section order and field labels are fixed; the same
// document always serializes to the same text.
func PlainText(doc *Document) string {
	var sb strings.Builder

	pd := doc.PersonalDetails
	fmt.Fprintf(&sb, "Full Name: %s\n", pd.FullName)
	fmt.Fprintf(&sb, "Title: %s\n", pd.Title)
	fmt.Fprintf(&sb, "Email: %s\n", pd.Email)
	fmt.Fprintf(&sb, "Phone: %s\n", pd.PhoneNumber)
	fmt.Fprintf(&sb, "Address: %s\n", pd.Address)
	fmt.Fprintf(&sb, "Website: %s\n\n", pd.Website)

	fmt.Fprintf(&sb, "Summary/Objective:\n%s\n\n", doc.Summary)
	if doc.AboutMe != "" {
		fmt.Fprintf(&sb, "About Me:\n%s\n\n", doc.AboutMe)
	}

	sb.WriteString("Experience:\n")
	for _, exp := range doc.Experience {
		fmt.Fprintf(&sb, "- %s at %s (%s - %s)\n%s\n", exp.JobTitle, exp.Company, exp.StartDate, exp.EndDate, exp.Description)
	}

	sb.WriteString("\nEducation:\n")
	for _, edu := range doc.Education {
		fmt.Fprintf(&sb, "- %s from %s (%s)\n%s\n", edu.Degree, edu.Institution, edu.GraduationDate, edu.Details)
	}

	names := make([]string, len(doc.Skills))
	for i, skill := range doc.Skills {
		names[i] = skill.Name
	}
	fmt.Fprintf(&sb, "\nSkills: %s\n", strings.Join(names, ", "))

	if doc.Activities != "" {
		fmt.Fprintf(&sb, "\nActivities: %s\n", doc.Activities)
	}

	return sb.String()
}
