package editor

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Himesh-1/CraftMyCV/internal/resume"
)

// Section names a list-typed part of the document.
type Section string

// Sections the controller operates on.
const (
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
)

// ParseSection validates a section name from the API surface.
func ParseSection(name string) (Section, error) {
	switch Section(name) {
	case SectionExperience, SectionEducation, SectionSkills:
		return Section(name), nil
	default:
		return "", &ErrUnknownSection{Section: name}
	}
}

// defaultSkillLevel matches the rating a freshly added skill starts with.
const defaultSkillLevel = 3

// Editor owns a resume document and applies form edits to it. It is not
// safe for concurrent use; the session layer serializes access.
type Editor struct {
	doc *resume.Document
}

// New wraps an existing document. A nil document starts from the seed.
func New(doc *resume.Document) *Editor {
	if doc == nil {
		doc = resume.Seed()
	}
	return &Editor{doc: doc}
}

// Document returns the underlying document.
func (e *Editor) Document() *resume.Document {
	return e.doc
}

// AddEntry appends a new entry with a freshly generated id to the end of
// the named list and returns the id. New skills start at the default level.
func (e *Editor) AddEntry(section Section) (string, error) {
	id := uuid.New().String()
	switch section {
	case SectionExperience:
		e.doc.Experience = append(e.doc.Experience, resume.WorkExperience{ID: id})
	case SectionEducation:
		e.doc.Education = append(e.doc.Education, resume.Education{ID: id})
	case SectionSkills:
		e.doc.Skills = append(e.doc.Skills, resume.Skill{ID: id, Level: defaultSkillLevel})
	default:
		return "", &ErrUnknownSection{Section: string(section)}
	}
	return id, nil
}

// UpdateField replaces a single field on the entry matching id, leaving
// list order and all other entries untouched.
func (e *Editor) UpdateField(section Section, id, field, value string) error {
	switch section {
	case SectionExperience:
		for i := range e.doc.Experience {
			if e.doc.Experience[i].ID == id {
				return setExperienceField(&e.doc.Experience[i], field, value)
			}
		}
	case SectionEducation:
		for i := range e.doc.Education {
			if e.doc.Education[i].ID == id {
				return setEducationField(&e.doc.Education[i], field, value)
			}
		}
	case SectionSkills:
		for i := range e.doc.Skills {
			if e.doc.Skills[i].ID == id {
				return setSkillField(&e.doc.Skills[i], field, value)
			}
		}
	default:
		return &ErrUnknownSection{Section: string(section)}
	}
	return &ErrEntryNotFound{Section: section, ID: id}
}

// RemoveEntry removes the entry matching id. Removing an id that is not in
// the list is a no-op; ids are never reused after removal.
func (e *Editor) RemoveEntry(section Section, id string) error {
	switch section {
	case SectionExperience:
		e.doc.Experience = removeByID(e.doc.Experience, id, func(x resume.WorkExperience) string { return x.ID })
	case SectionEducation:
		e.doc.Education = removeByID(e.doc.Education, id, func(x resume.Education) string { return x.ID })
	case SectionSkills:
		e.doc.Skills = removeByID(e.doc.Skills, id, func(x resume.Skill) string { return x.ID })
	default:
		return &ErrUnknownSection{Section: string(section)}
	}
	return nil
}

func removeByID[T any](list []T, id string, key func(T) string) []T {
	out := list[:0]
	for _, item := range list {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}

// SetPersonalDetails replaces the contact block.
func (e *Editor) SetPersonalDetails(details resume.PersonalDetails) {
	e.doc.PersonalDetails = details
}

// SetSummary replaces the summary text.
func (e *Editor) SetSummary(text string) { e.doc.Summary = text }

// SetAboutMe replaces the optional about-me text.
func (e *Editor) SetAboutMe(text string) { e.doc.AboutMe = text }

// SetActivities replaces the optional activities text.
func (e *Editor) SetActivities(text string) { e.doc.Activities = text }

// SetLeadership replaces the optional leadership text.
func (e *Editor) SetLeadership(text string) { e.doc.Leadership = text }

func setExperienceField(exp *resume.WorkExperience, field, value string) error {
	switch field {
	case "job_title":
		exp.JobTitle = value
	case "company":
		exp.Company = value
	case "location":
		exp.Location = value
	case "start_date":
		exp.StartDate = value
	case "end_date":
		exp.EndDate = value
	case "description":
		exp.Description = value
	default:
		return &ErrUnknownField{Section: SectionExperience, Field: field}
	}
	return nil
}

func setEducationField(edu *resume.Education, field, value string) error {
	switch field {
	case "degree":
		edu.Degree = value
	case "institution":
		edu.Institution = value
	case "location":
		edu.Location = value
	case "graduation_date":
		edu.GraduationDate = value
	case "details":
		edu.Details = value
	default:
		return &ErrUnknownField{Section: SectionEducation, Field: field}
	}
	return nil
}

func setSkillField(skill *resume.Skill, field, value string) error {
	switch field {
	case "name":
		skill.Name = value
	case "level":
		level, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return &ErrInvalidValue{Field: "level", Value: value, Message: "must be an integer"}
		}
		skill.Level = resume.ClampLevel(level)
	default:
		return &ErrUnknownField{Section: SectionSkills, Field: field}
	}
	return nil
}
