package render

import (
	"fmt"
	"html"
	"strings"
)

// Stars renders a 1-5 proficiency as filled and hollow stars.
func Stars(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return strings.Repeat("★", level) + strings.Repeat("☆", 5-level)
}

// HTML serializes a layout tree to the markup consumed by the preview and
// the export pipeline. All document text is HTML-escaped; class attributes
// come from the template's style table.
func HTML(l *Layout) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<div class="resume resume--%s %s">`, l.Template, l.Style.Container)
	sb.WriteString("\n")

	if len(l.Header) > 0 {
		fmt.Fprintf(&sb, `<header class="%s">`, l.Style.Header)
		sb.WriteString("\n")
		for _, b := range l.Header {
			writeBlock(&sb, b, l.Style)
		}
		sb.WriteString("</header>\n")
	}

	if l.Shape == ShapeTwoColumn {
		sb.WriteString(`<div class="resume-columns">` + "\n")
	}
	for _, col := range l.Columns {
		tag := "main"
		if col.Sidebar {
			tag = "aside"
		}
		fmt.Fprintf(&sb, "<%s class=\"resume-column\">\n", tag)
		for _, sec := range col.Sections {
			writeSection(&sb, sec, l.Style)
		}
		fmt.Fprintf(&sb, "</%s>\n", tag)
	}
	if l.Shape == ShapeTwoColumn {
		sb.WriteString("</div>\n")
	}

	sb.WriteString("</div>\n")
	return sb.String()
}

func writeSection(sb *strings.Builder, sec Section, style Style) {
	sb.WriteString("<section>\n")
	if sec.Title != "" {
		fmt.Fprintf(sb, `<h2 class="%s">%s</h2>`, style.SectionTitle, html.EscapeString(sec.Title))
		sb.WriteString("\n")
	}
	for _, b := range sec.Blocks {
		writeBlock(sb, b, style)
	}
	sb.WriteString("</section>\n")
}

func writeBlock(sb *strings.Builder, b Block, style Style) {
	switch v := b.(type) {
	case TextBlock:
		writeText(sb, v, style)
	case ContactBlock:
		fmt.Fprintf(sb, `<div class="%s">`, style.ContactInfo)
		sb.WriteString("\n")
		for _, item := range v.Items {
			if item.Label != "" {
				fmt.Fprintf(sb, `<span><span class="contact-label">%s:</span> %s</span>`,
					html.EscapeString(item.Label), html.EscapeString(item.Value))
			} else {
				fmt.Fprintf(sb, "<span>%s</span>", html.EscapeString(item.Value))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("</div>\n")
	case EntryBlock:
		writeEntry(sb, v, style)
	case ListBlock:
		if v.Badges {
			fmt.Fprintf(sb, `<div class="%s">`, style.SkillsContainer)
			sb.WriteString("\n")
			for _, item := range v.Items {
				fmt.Fprintf(sb, `<span class="%s">%s</span>`, style.SkillBadge, html.EscapeString(item))
				sb.WriteString("\n")
			}
			sb.WriteString("</div>\n")
		} else {
			fmt.Fprintf(sb, `<ul class="%s">`, style.SkillsContainer)
			sb.WriteString("\n")
			for _, item := range v.Items {
				fmt.Fprintf(sb, "<li>%s</li>\n", html.EscapeString(item))
			}
			sb.WriteString("</ul>\n")
		}
	case RatingBlock:
		fmt.Fprintf(sb, `<ul class="%s">`, style.SkillsContainer)
		sb.WriteString("\n")
		for _, item := range v.Items {
			fmt.Fprintf(sb, `<li><span class="skill-stars">%s</span> %s</li>`, Stars(item.Level), html.EscapeString(item.Name))
			sb.WriteString("\n")
		}
		sb.WriteString("</ul>\n")
	}
}

func writeText(sb *strings.Builder, t TextBlock, style Style) {
	text := html.EscapeString(t.Text)
	switch t.Role {
	case RoleName:
		fmt.Fprintf(sb, `<h1 class="%s">%s</h1>`, style.FullName, text)
	case RoleTitle:
		fmt.Fprintf(sb, `<h2 class="resume-role-title">%s</h2>`, text)
	case RoleSummary:
		fmt.Fprintf(sb, `<p class="resume-summary">%s</p>`, text)
	case RoleAside:
		fmt.Fprintf(sb, `<p class="resume-aside">%s</p>`, text)
	default:
		fmt.Fprintf(sb, `<p class="resume-detail">%s</p>`, text)
	}
	sb.WriteString("\n")
}

func writeEntry(sb *strings.Builder, e EntryBlock, style Style) {
	sb.WriteString(`<div class="resume-entry">` + "\n")
	if e.Title != "" {
		fmt.Fprintf(sb, `<p class="%s">%s</p>`, style.EntryTitle, html.EscapeString(e.Title))
		sb.WriteString("\n")
	}
	if e.Subtitle != "" {
		fmt.Fprintf(sb, `<p class="%s">%s</p>`, style.EntrySubtitle, html.EscapeString(e.Subtitle))
		sb.WriteString("\n")
	}
	if e.Aside != "" {
		fmt.Fprintf(sb, `<p class="%s">%s</p>`, style.EntryDate, html.EscapeString(e.Aside))
		sb.WriteString("\n")
	}
	if len(e.Bullets) > 0 {
		fmt.Fprintf(sb, `<ul class="%s">`, style.DescriptionList)
		sb.WriteString("\n")
		for _, bullet := range e.Bullets {
			fmt.Fprintf(sb, "<li>%s</li>\n", html.EscapeString(bullet))
		}
		sb.WriteString("</ul>\n")
	}
	if e.Detail != "" {
		fmt.Fprintf(sb, `<p class="resume-detail">%s</p>`, html.EscapeString(e.Detail))
		sb.WriteString("\n")
	}
	for _, line := range e.DetailLines {
		class := "resume-detail-line"
		if line.Heading {
			class = "resume-detail-heading"
		}
		fmt.Fprintf(sb, `<p class="%s">%s</p>`, class, html.EscapeString(line.Text))
		sb.WriteString("\n")
	}
	sb.WriteString("</div>\n")
}
