package ai

import "fmt"

// TaskError wraps any failure inside a gateway operation. Message is the
// fixed user-facing text for the task; the underlying cause is preserved
// for logs.
type TaskError struct {
	Task    Task
	Message string
	Cause   error
}

func (e *TaskError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Task, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Task, e.Message)
}

func (e *TaskError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the text shown to the editing user when a task fails.
func (e *TaskError) UserMessage() string {
	return e.Message
}

// taskFailure builds the TaskError for a task with its fixed user message.
func taskFailure(task Task, cause error) *TaskError {
	return &TaskError{Task: task, Message: failureMessage(task), Cause: cause}
}

func failureMessage(task Task) string {
	switch task {
	case TaskOptimize:
		return "Failed to optimize resume. Please try again."
	case TaskATSCheck:
		return "Failed to analyze resume. Please try again."
	case TaskCoverLetter:
		return "Failed to generate cover letter. Please try again."
	case TaskSkillGap:
		return "Failed to analyze skill gap. Please try again."
	default:
		return "Request failed. Please try again."
	}
}
