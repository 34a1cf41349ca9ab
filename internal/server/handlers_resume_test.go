package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Himesh-1/CraftMyCV/internal/resume"
)

func TestGetResumeReturnsSeed(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := decodeJSON[resume.Document](t, rec)
	assert.Equal(t, "John Doe", doc.PersonalDetails.FullName)
	assert.NotEmpty(t, doc.Experience)
	assert.NotEmpty(t, doc.Education)
	assert.NotEmpty(t, doc.Skills)
}

func TestUpdatePersonalDetails(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPut, "/resume/personal", map[string]string{
		"full_name": "Jane Q. Public",
		"title":     "Staff Engineer",
		"email":     "jane@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	doc := env.session.Document()
	assert.Equal(t, "Jane Q. Public", doc.PersonalDetails.FullName)
	assert.Equal(t, "Staff Engineer", doc.PersonalDetails.Title)
	// Unspecified fields are replaced, not merged
	assert.Empty(t, doc.PersonalDetails.PhoneNumber)
}

func TestUpdatePersonalRejectsBadEmail(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPut, "/resume/personal", map[string]string{
		"full_name": "Jane",
		"email":     "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSummary(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPut, "/resume/summary", map[string]string{"value": "A new summary."})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "A new summary.", env.session.Document().Summary)
}

func TestUpdateUnknownTextField(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPut, "/resume/nickname", map[string]string{"value": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddExperienceEntry(t *testing.T) {
	env := newTestEnv(t)
	before := len(env.session.Document().Experience)

	rec := env.do(t, http.MethodPost, "/resume/experience", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeJSON[map[string]string](t, rec)
	assert.NotEmpty(t, resp["id"])
	assert.Len(t, env.session.Document().Experience, before+1)
}

func TestAddEntryUnknownSection(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/resume/certifications", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSkillLevelClamps(t *testing.T) {
	env := newTestEnv(t)
	id := env.session.Document().Skills[0].ID

	rec := env.do(t, http.MethodPut, "/resume/skills/"+id, map[string]string{
		"field": "level",
		"value": "9",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, env.session.Document().Skills[0].Level)
}

func TestUpdateEntryNotFound(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPut, "/resume/experience/no-such-id", map[string]string{
		"field": "company",
		"value": "Initech",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateEntryMissingField(t *testing.T) {
	env := newTestEnv(t)
	id := env.session.Document().Experience[0].ID
	rec := env.do(t, http.MethodPut, "/resume/experience/"+id, map[string]string{"value": "Initech"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveEntry(t *testing.T) {
	env := newTestEnv(t)
	id := env.session.Document().Education[0].ID
	before := len(env.session.Document().Education)

	rec := env.do(t, http.MethodDelete, "/resume/education/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env.session.Document().Education, before-1)
}

func TestRemoveMissingEntryIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	before := env.session.Document()

	rec := env.do(t, http.MethodDelete, "/resume/skills/no-such-id", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before, env.session.Document())
}
