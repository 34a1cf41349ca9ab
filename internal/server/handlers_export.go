package server

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/Himesh-1/CraftMyCV/internal/export"
	"github.com/Himesh-1/CraftMyCV/internal/render"
)

// exportMarkup renders the current document with the active template and
// wraps it in a complete HTML page for the converters.
func (s *Server) exportMarkup() (markup, fullName string) {
	doc := s.session.Document()
	layout := render.Render(doc, s.session.Template())

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<script src=\"https://cdn.tailwindcss.com\"></script>\n")
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(render.HTML(layout))
	sb.WriteString("\n</body>\n</html>\n")

	return sb.String(), doc.PersonalDetails.FullName
}

// writeArtifact streams a download with the artifact's filename.
func (s *Server) writeArtifact(w http.ResponseWriter, artifact *export.Artifact) {
	w.Header().Set("Content-Type", artifact.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}

// handleExportPDF renders the active template to a PDF download.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	markup, fullName := s.exportMarkup()
	artifact, err := s.exporter.PDF(r.Context(), markup, fullName)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.writeArtifact(w, artifact)
}

// handleExportDOCX converts the active template to a DOCX download.
func (s *Server) handleExportDOCX(w http.ResponseWriter, r *http.Request) {
	markup, fullName := s.exportMarkup()
	artifact, err := s.exporter.DOCX(r.Context(), markup, fullName)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.writeArtifact(w, artifact)
}

type bundleArtifact struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

// handleExportBundle produces both formats concurrently and returns them
// base64-encoded in one response. Either both succeed or neither does.
func (s *Server) handleExportBundle(w http.ResponseWriter, r *http.Request) {
	markup, fullName := s.exportMarkup()
	pdf, docx, err := s.exporter.Bundle(r.Context(), markup, fullName)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]bundleArtifact{
		"pdf": {
			Filename: pdf.Filename,
			MIMEType: pdf.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(pdf.Data),
		},
		"docx": {
			Filename: docx.Filename,
			MIMEType: docx.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(docx.Data),
		},
	})
}
