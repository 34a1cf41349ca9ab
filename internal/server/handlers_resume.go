package server

import (
	"net/http"

	"github.com/Himesh-1/CraftMyCV/internal/editor"
	"github.com/Himesh-1/CraftMyCV/internal/resume"
)

// handleGetResume returns the current document.
func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

type personalRequest struct {
	FullName    string `json:"full_name"`
	Title       string `json:"title"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Website     string `json:"website"`
}

// handleUpdatePersonal replaces the personal details block.
func (s *Server) handleUpdatePersonal(w http.ResponseWriter, r *http.Request) {
	var req personalRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	err := s.session.Update(func(doc *resume.Document) error {
		editor.New(doc).SetPersonalDetails(resume.PersonalDetails{
			FullName:    req.FullName,
			Title:       req.Title,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
			Website:     req.Website,
		})
		return nil
	})
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

type textFieldRequest struct {
	Value string `json:"value"`
}

// handleUpdateTextField sets one of the free-text fields: summary,
// about-me, activities, or leadership.
func (s *Server) handleUpdateTextField(w http.ResponseWriter, r *http.Request) {
	field := r.PathValue("field")

	var req textFieldRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	err := s.session.Update(func(doc *resume.Document) error {
		ed := editor.New(doc)
		switch field {
		case "summary":
			ed.SetSummary(req.Value)
		case "about-me":
			ed.SetAboutMe(req.Value)
		case "activities":
			ed.SetActivities(req.Value)
		case "leadership":
			ed.SetLeadership(req.Value)
		default:
			return &editor.ErrUnknownField{Field: field}
		}
		return nil
	})
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

// handleAddEntry appends a blank entry to a list section and returns its id.
func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	section, err := editor.ParseSection(r.PathValue("section"))
	if err != nil {
		s.handleError(w, err)
		return
	}

	var id string
	err = s.session.Update(func(doc *resume.Document) error {
		var addErr error
		id, addErr = editor.New(doc).AddEntry(section)
		return addErr
	})
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

type entryFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// handleUpdateEntryField updates a single field of a list entry.
func (s *Server) handleUpdateEntryField(w http.ResponseWriter, r *http.Request) {
	section, err := editor.ParseSection(r.PathValue("section"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	id := r.PathValue("id")

	var req entryFieldRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	err = s.session.Update(func(doc *resume.Document) error {
		return editor.New(doc).UpdateField(section, id, req.Field, req.Value)
	})
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

// handleRemoveEntry deletes a list entry. Removing an id that does not
// exist leaves the document unchanged.
func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	section, err := editor.ParseSection(r.PathValue("section"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	id := r.PathValue("id")

	err = s.session.Update(func(doc *resume.Document) error {
		return editor.New(doc).RemoveEntry(section, id)
	})
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}
