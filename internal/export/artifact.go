package export

import (
	"regexp"
	"strings"
)

// Artifact is a finished export: the bytes plus the download filename.
type Artifact struct {
	Filename string
	MIMEType string
	Data     []byte
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename derives the download name for an export:
// "<FullName with whitespace runs replaced by hyphens>-Resume.<ext>".
func Filename(fullName, ext string) string {
	name := whitespaceRun.ReplaceAllString(strings.TrimSpace(fullName), "-")
	if name == "" {
		name = "Untitled"
	}
	return name + "-Resume." + ext
}
