// Package session holds the single in-memory editing session: the resume
// document, the active template, and the state of each AI task. Nothing is
// persisted; the session lives and dies with the process.
package session

import (
	"sync"

	"github.com/Himesh-1/CraftMyCV/internal/ai"
	"github.com/Himesh-1/CraftMyCV/internal/render"
	"github.com/Himesh-1/CraftMyCV/internal/resume"
)

// State is the lifecycle phase of one task slot.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateSuccess State = "success"
	StateFailed  State = "failed"
)

// Slot is a snapshot of one task's state. Result is non-nil only in
// StateSuccess; Error is non-empty only in StateFailed.
type Slot struct {
	State  State `json:"state"`
	Result any   `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Session is safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	doc      *resume.Document
	template render.Template
	tasks    map[ai.Task]Slot
}

// New creates a session seeded with the sample document and the modern
// template, all task slots idle.
func New() *Session {
	tasks := make(map[ai.Task]Slot, len(ai.Tasks()))
	for _, task := range ai.Tasks() {
		tasks[task] = Slot{State: StateIdle}
	}
	return &Session{
		doc:      resume.Seed(),
		template: render.TemplateModern,
		tasks:    tasks,
	}
}

// Document returns a copy of the current document. Mutating the copy does
// not affect the session.
func (s *Session) Document() *resume.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Update applies fn to the document under the session lock. If fn returns
// an error the document keeps whatever state fn left it in; editor
// operations are expected to fail without partial writes.
func (s *Session) Update(fn func(doc *resume.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.doc)
}

// Template returns the active template.
func (s *Session) Template() render.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// SetTemplate selects the active template.
func (s *Session) SetTemplate(t render.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = t
}

// Begin moves a task slot to pending, discarding any previous result or
// error. The previous outcome is cleared before the new request is issued,
// so a reader mid-flight sees pending with no stale result.
func (s *Session) Begin(task ai.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task] = Slot{State: StatePending}
}

// Complete stores a task result and moves the slot to success.
func (s *Session) Complete(task ai.Task, result any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task] = Slot{State: StateSuccess, Result: result}
}

// Fail stores the user-facing failure message and moves the slot to
// failed. No result survives a failure.
func (s *Session) Fail(task ai.Task, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task] = Slot{State: StateFailed, Error: message}
}

// TaskState returns a snapshot of the slot for a task.
func (s *Session) TaskState(task ai.Task) Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks[task]
}
