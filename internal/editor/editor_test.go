package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Himesh-1/CraftMyCV/internal/resume"
)

func TestAddEntry_AppendsWithFreshID(t *testing.T) {
	e := New(resume.Seed())

	id, err := e.AddEntry(SectionExperience)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	exps := e.Document().Experience
	require.Len(t, exps, 2)
	assert.Equal(t, id, exps[1].ID)
	assert.NotEqual(t, exps[0].ID, exps[1].ID)
}

func TestAddEntry_SkillDefaultsToLevelThree(t *testing.T) {
	e := New(resume.Seed())

	id, err := e.AddEntry(SectionSkills)
	require.NoError(t, err)

	skills := e.Document().Skills
	require.Len(t, skills, 5)
	assert.Equal(t, id, skills[4].ID)
	assert.Equal(t, 3, skills[4].Level)
}

func TestUpdateField_ReplacesOnlyTargetField(t *testing.T) {
	e := New(resume.Seed())
	id := e.Document().Experience[0].ID

	err := e.UpdateField(SectionExperience, id, "company", "Initech")
	require.NoError(t, err)

	exp := e.Document().Experience[0]
	assert.Equal(t, "Initech", exp.Company)
	assert.Equal(t, "Senior Software Engineer", exp.JobTitle)
}

func TestUpdateField_UnknownID(t *testing.T) {
	e := New(resume.Seed())

	err := e.UpdateField(SectionEducation, "nope", "degree", "PhD")
	var notFound *ErrEntryNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestUpdateField_UnknownField(t *testing.T) {
	e := New(resume.Seed())
	id := e.Document().Skills[0].ID

	err := e.UpdateField(SectionSkills, id, "color", "blue")
	var unknown *ErrUnknownField
	assert.ErrorAs(t, err, &unknown)
}

func TestUpdateField_SkillLevelClamped(t *testing.T) {
	e := New(resume.Seed())
	id := e.Document().Skills[0].ID

	tests := []struct {
		value string
		want  int
	}{
		{"0", 1},
		{"6", 5},
		{"3", 3},
		{"-2", 1},
		{" 4 ", 4},
	}
	for _, tt := range tests {
		require.NoError(t, e.UpdateField(SectionSkills, id, "level", tt.value))
		assert.Equal(t, tt.want, e.Document().Skills[0].Level, "value %q", tt.value)
	}
}

func TestUpdateField_SkillLevelNonNumeric(t *testing.T) {
	e := New(resume.Seed())
	id := e.Document().Skills[0].ID
	before := e.Document().Skills[0].Level

	err := e.UpdateField(SectionSkills, id, "level", "high")
	var invalid *ErrInvalidValue
	assert.ErrorAs(t, err, &invalid)
	// Prior value is kept when coercion fails.
	assert.Equal(t, before, e.Document().Skills[0].Level)
}

func TestRemoveEntry_RemovesMatching(t *testing.T) {
	e := New(resume.Seed())
	id := e.Document().Skills[1].ID

	require.NoError(t, e.RemoveEntry(SectionSkills, id))

	skills := e.Document().Skills
	require.Len(t, skills, 3)
	for _, s := range skills {
		assert.NotEqual(t, id, s.ID)
	}
}

func TestRemoveEntry_NonExistentIDIsNoOp(t *testing.T) {
	e := New(resume.Seed())
	before := append([]resume.Skill(nil), e.Document().Skills...)

	require.NoError(t, e.RemoveEntry(SectionSkills, "does-not-exist"))
	assert.Equal(t, before, e.Document().Skills)
}

func TestRemoveEntry_PreservesOrder(t *testing.T) {
	e := New(resume.Seed())
	ids := []string{e.Document().Skills[0].ID, e.Document().Skills[2].ID, e.Document().Skills[3].ID}

	require.NoError(t, e.RemoveEntry(SectionSkills, e.Document().Skills[1].ID))

	got := make([]string, 0, 3)
	for _, s := range e.Document().Skills {
		got = append(got, s.ID)
	}
	assert.Equal(t, ids, got)
}

func TestParseSection(t *testing.T) {
	for _, name := range []string{"experience", "education", "skills"} {
		sec, err := ParseSection(name)
		require.NoError(t, err)
		assert.Equal(t, Section(name), sec)
	}

	_, err := ParseSection("projects")
	var unknown *ErrUnknownSection
	assert.ErrorAs(t, err, &unknown)
}
