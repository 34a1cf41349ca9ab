package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Himesh-1/CraftMyCV/internal/resume"
)

func parseHTML(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestHTML_ClassicStructure(t *testing.T) {
	markup := HTML(Render(resume.Seed(), TemplateClassic))
	doc := parseHTML(t, markup)

	assert.Equal(t, 1, doc.Find("div.resume--classic").Length())
	assert.Equal(t, 1, doc.Find("header h1").Length())
	assert.Equal(t, "John Doe", doc.Find("header h1").Text())

	titles := doc.Find("section > h2").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"Summary", "Experience", "Education", "Skills"}, titles)

	// Seed experience has two bullet lines.
	assert.Equal(t, 2, doc.Find("section ul li").Length())
}

func TestHTML_ModernColumns(t *testing.T) {
	markup := HTML(Render(resume.Seed(), TemplateModern))
	doc := parseHTML(t, markup)

	assert.Equal(t, 1, doc.Find("div.resume-columns").Length())
	assert.Equal(t, 1, doc.Find("aside.resume-column").Length())
	assert.Equal(t, 1, doc.Find("main.resume-column").Length())
	assert.Equal(t, "John Doe", doc.Find("aside h1").Text())
}

func TestHTML_MedicalStarsRendered(t *testing.T) {
	markup := HTML(Render(resume.Seed(), TemplateMedical))
	assert.Contains(t, markup, "★★★★★")
	assert.Contains(t, markup, "★★★★☆")
}

func TestHTML_EscapesDocumentText(t *testing.T) {
	doc := resume.Seed()
	doc.PersonalDetails.FullName = `<script>alert("x")</script>`
	doc.Summary = "Profit & loss <b>expert</b>"

	markup := HTML(Render(doc, TemplateClassic))
	assert.NotContains(t, markup, "<script>")
	assert.Contains(t, markup, "&lt;script&gt;")
	assert.Contains(t, markup, "Profit &amp; loss")
}

func TestHTML_Deterministic(t *testing.T) {
	doc := resume.Seed()
	first := HTML(Render(doc, TemplateHarvard))
	second := HTML(Render(doc, TemplateHarvard))
	assert.Equal(t, first, second)
}

func TestHTML_ContactLabels(t *testing.T) {
	markup := HTML(Render(resume.Seed(), TemplateUIUX))
	doc := parseHTML(t, markup)

	labels := doc.Find("header .contact-label").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"Email:", "Phone:", "Portfolio:", "Location:"}, labels)
}
