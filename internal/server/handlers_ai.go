package server

import (
	"errors"
	"net/http"

	"github.com/Himesh-1/CraftMyCV/internal/ai"
	"github.com/Himesh-1/CraftMyCV/internal/resume"
	"github.com/Himesh-1/CraftMyCV/internal/session"
)

// runTask drives one task slot through its lifecycle: the previous
// outcome is cleared before the model call, so a failed call never leaves
// a stale result behind.
func (s *Server) runTask(w http.ResponseWriter, task ai.Task, call func(resumeText string) (any, error)) {
	resumeText := resume.PlainText(s.session.Document())

	s.session.Begin(task)
	result, err := call(resumeText)
	if err != nil {
		message := err.Error()
		var taskErr *ai.TaskError
		if errors.As(err, &taskErr) {
			message = taskErr.UserMessage()
		}
		s.session.Fail(task, message)
		s.handleError(w, err)
		return
	}

	s.session.Complete(task, result)
	s.jsonResponse(w, http.StatusOK, result)
}

type optimizeRequest struct {
	JobRole  string `json:"job_role" validate:"required"`
	Industry string `json:"industry" validate:"required"`
}

// handleOptimize rewrites the resume for a job role and industry.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	s.runTask(w, ai.TaskOptimize, func(resumeText string) (any, error) {
		return s.tasks.Optimize(r.Context(), resumeText, req.JobRole, req.Industry)
	})
}

type jobDescriptionRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
}

// handleATSCheck scores the resume against a job description.
func (s *Server) handleATSCheck(w http.ResponseWriter, r *http.Request) {
	var req jobDescriptionRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	s.runTask(w, ai.TaskATSCheck, func(resumeText string) (any, error) {
		return s.tasks.ATSCheck(r.Context(), resumeText, req.JobDescription)
	})
}

// handleCoverLetter writes a cover letter for the current applicant.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req jobDescriptionRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	applicantName := s.session.Document().PersonalDetails.FullName
	s.runTask(w, ai.TaskCoverLetter, func(resumeText string) (any, error) {
		return s.tasks.CoverLetter(r.Context(), resumeText, req.JobDescription, applicantName)
	})
}

// handleSkillGap compares resume skills with a job description.
func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	var req jobDescriptionRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	s.runTask(w, ai.TaskSkillGap, func(resumeText string) (any, error) {
		return s.tasks.SkillGap(r.Context(), resumeText, req.JobDescription)
	})
}

type taskStateResponse struct {
	Task   string        `json:"task"`
	State  session.State `json:"state"`
	Result any           `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// handleTaskState reports the current slot state for a task.
func (s *Server) handleTaskState(w http.ResponseWriter, r *http.Request) {
	task, err := ai.ParseTask(r.PathValue("task"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	slot := s.session.TaskState(task)
	s.jsonResponse(w, http.StatusOK, taskStateResponse{
		Task:   string(task),
		State:  slot.State,
		Result: slot.Result,
		Error:  slot.Error,
	})
}
