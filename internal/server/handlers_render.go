package server

import (
	"net/http"

	"github.com/Himesh-1/CraftMyCV/internal/render"
)

type templateInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Active      bool   `json:"active"`
}

// handleListTemplates enumerates the template set.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	active := s.session.Template()
	templates := make([]templateInfo, 0, len(render.All()))
	for _, t := range render.All() {
		templates = append(templates, templateInfo{
			ID:          string(t),
			DisplayName: t.DisplayName(),
			Active:      t == active,
		})
	}
	s.jsonResponse(w, http.StatusOK, templates)
}

type selectTemplateRequest struct {
	Template string `json:"template" validate:"required"`
}

// handleSelectTemplate switches the active template. The document is
// untouched; only the rendering changes.
func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	var req selectTemplateRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	t, err := render.Parse(req.Template)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.session.SetTemplate(t)
	s.jsonResponse(w, http.StatusOK, map[string]string{"template": string(t)})
}

// handlePreview returns the rendered HTML for the active template, or for
// ?template= when given.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	t := s.session.Template()
	if name := r.URL.Query().Get("template"); name != "" {
		parsed, err := render.Parse(name)
		if err != nil {
			s.handleError(w, err)
			return
		}
		t = parsed
	}

	layout := render.Render(s.session.Document(), t)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(render.HTML(layout))); err != nil {
		return
	}
}
