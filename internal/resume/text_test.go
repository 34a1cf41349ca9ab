package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText_Deterministic(t *testing.T) {
	doc := Seed()
	assert.Equal(t, PlainText(doc), PlainText(doc))
}

func TestPlainText_SectionOrderAndLabels(t *testing.T) {
	text := PlainText(Seed())

	assert.Contains(t, text, "Full Name: John Doe\n")
	assert.Contains(t, text, "Summary/Objective:\n")
	assert.Contains(t, text, "About Me:\n")
	assert.Contains(t, text, "Experience:\n- Senior Software Engineer at Tech Solutions Inc. (2021-01-01 - Present)\n")
	assert.Contains(t, text, "Education:\n- B.S. in Computer Science from State University (2019-05-01)\n")
	assert.Contains(t, text, "Skills: TypeScript, React, Node.js, System Design\n")
	assert.Contains(t, text, "Activities: Literature")

	// Sections appear in document order.
	assert.Less(t, strings.Index(text, "Summary/Objective:"), strings.Index(text, "Experience:"))
	assert.Less(t, strings.Index(text, "Experience:"), strings.Index(text, "Education:"))
	assert.Less(t, strings.Index(text, "Education:"), strings.Index(text, "Skills:"))
}

func TestPlainText_OptionalSectionsOmitted(t *testing.T) {
	doc := Seed()
	doc.AboutMe = ""
	doc.Activities = ""

	text := PlainText(doc)
	assert.NotContains(t, text, "About Me:")
	assert.NotContains(t, text, "Activities:")
}

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 1, ClampLevel(0))
	assert.Equal(t, 1, ClampLevel(-3))
	assert.Equal(t, 5, ClampLevel(6))
	assert.Equal(t, 3, ClampLevel(3))
}

func TestClone_Independent(t *testing.T) {
	doc := Seed()
	snap := doc.Clone()

	doc.Experience[0].JobTitle = "changed"
	doc.Skills = append(doc.Skills, Skill{ID: "skill5", Name: "Go", Level: 5})

	assert.Equal(t, "Senior Software Engineer", snap.Experience[0].JobTitle)
	assert.Len(t, snap.Skills, 4)
}
