package resume

import "strings"

// SplitBullets normalizes a free-text description into bullet items.
// The contract is deliberately lossy and one-way: split on newline, drop
// blank lines, strip a single leading "-" plus any following whitespace.
// Running the output back through the splitter is a no-op.
func SplitBullets(text string) []string {
	if text == "" {
		return nil
	}

	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = strings.TrimPrefix(line, "-")
		bullets = append(bullets, strings.TrimSpace(line))
	}
	return bullets
}

// SplitActivities splits an activities string on the literal "•" and ","
// delimiters, trimming each segment and dropping empty ones.
func SplitActivities(text string) []string {
	if text == "" {
		return nil
	}

	var items []string
	for _, segment := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '•' || r == ','
	}) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		items = append(items, segment)
	}
	return items
}
