// Package ai exposes the four model-backed resume tasks behind a single
// gateway: content optimization, ATS analysis, cover letter generation,
// and skill gap analysis.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
)

// Task identifies one of the gateway operations.
type Task string

const (
	TaskOptimize    Task = "optimize"
	TaskATSCheck    Task = "ats-check"
	TaskCoverLetter Task = "cover-letter"
	TaskSkillGap    Task = "skill-gap"
)

// Tasks lists every gateway task.
func Tasks() []Task {
	return []Task{TaskOptimize, TaskATSCheck, TaskCoverLetter, TaskSkillGap}
}

// ParseTask maps a path segment to a Task.
func ParseTask(s string) (Task, error) {
	switch Task(s) {
	case TaskOptimize, TaskATSCheck, TaskCoverLetter, TaskSkillGap:
		return Task(s), nil
	}
	return "", fmt.Errorf("unknown task %q", s)
}

// Optimization is the result of the optimize task.
type Optimization struct {
	OptimizedContent   string `json:"optimizedContent"`
	MissingInformation string `json:"missingInformation"`
	Suggestions        string `json:"suggestions"`
}

// CheckStatus is the outcome of one ATS check.
type CheckStatus string

const (
	CheckPass CheckStatus = "pass"
	CheckFail CheckStatus = "fail"
	CheckWarn CheckStatus = "warn"
)

// Check is one line item in an ATS report.
type Check struct {
	Text   string      `json:"text"`
	Status CheckStatus `json:"status"`
}

// ATSReport is the result of the ats-check task. Score is always in [0, 100].
type ATSReport struct {
	Score  int     `json:"score"`
	Checks []Check `json:"checks"`
}

// CoverLetter is the result of the cover-letter task.
type CoverLetter struct {
	CoverLetter string `json:"coverLetter"`
}

// SkillGapReport is the result of the skill-gap task.
type SkillGapReport struct {
	MatchingSkills  []string `json:"matchingSkills"`
	MissingSkills   []string `json:"missingSkills"`
	SuggestedSkills []string `json:"suggestedSkills"`
}

// Gateway runs the four resume tasks against a model Client.
type Gateway struct {
	client Client
}

// NewGateway creates a Gateway backed by the given client.
func NewGateway(client Client) *Gateway {
	return &Gateway{client: client}
}

// Optimize rewrites the resume text for a job role and industry.
func (g *Gateway) Optimize(ctx context.Context, resumeText, jobRole, industry string) (*Optimization, error) {
	raw, err := g.generate(ctx, TaskOptimize, "optimize", TierStandard, map[string]string{
		"ResumeContent": resumeText,
		"JobRole":       jobRole,
		"Industry":      industry,
	}, optimizationSchema)
	if err != nil {
		return nil, err
	}

	var result Optimization
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, taskFailure(TaskOptimize, fmt.Errorf("failed to decode response: %w", err))
	}
	return &result, nil
}

// ATSCheck scores the resume text against a job description.
func (g *Gateway) ATSCheck(ctx context.Context, resumeText, jobDescription string) (*ATSReport, error) {
	raw, err := g.generate(ctx, TaskATSCheck, "ats_check", TierStandard, map[string]string{
		"ResumeContent":  resumeText,
		"JobDescription": jobDescription,
	}, atsReportSchema)
	if err != nil {
		return nil, err
	}

	// Score arrives as a JSON number, possibly fractional or out of range.
	var result struct {
		Score  float64 `json:"score"`
		Checks []Check `json:"checks"`
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, taskFailure(TaskATSCheck, fmt.Errorf("failed to decode response: %w", err))
	}
	return &ATSReport{Score: clampScore(result.Score), Checks: result.Checks}, nil
}

// CoverLetter writes a cover letter for the applicant.
func (g *Gateway) CoverLetter(ctx context.Context, resumeText, jobDescription, applicantName string) (*CoverLetter, error) {
	raw, err := g.generate(ctx, TaskCoverLetter, "cover_letter", TierStandard, map[string]string{
		"ResumeContent":  resumeText,
		"JobDescription": jobDescription,
		"ApplicantName":  applicantName,
	}, coverLetterSchema)
	if err != nil {
		return nil, err
	}

	var result CoverLetter
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, taskFailure(TaskCoverLetter, fmt.Errorf("failed to decode response: %w", err))
	}
	return &result, nil
}

// SkillGap compares resume skills with a job description.
func (g *Gateway) SkillGap(ctx context.Context, resumeText, jobDescription string) (*SkillGapReport, error) {
	raw, err := g.generate(ctx, TaskSkillGap, "skill_gap", TierLite, map[string]string{
		"ResumeContent":  resumeText,
		"JobDescription": jobDescription,
	}, skillGapSchema)
	if err != nil {
		return nil, err
	}

	var result SkillGapReport
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, taskFailure(TaskSkillGap, fmt.Errorf("failed to decode response: %w", err))
	}
	return &result, nil
}

// generate builds the prompt for a task, calls the model, and validates
// the raw JSON response against the task's schema.
func (g *Gateway) generate(ctx context.Context, task Task, promptKey string, tier ModelTier, data map[string]string, schema string) (string, error) {
	template, err := promptFor(promptKey)
	if err != nil {
		return "", taskFailure(task, err)
	}

	raw, err := g.client.GenerateJSON(ctx, formatPrompt(template, data), tier)
	if err != nil {
		return "", taskFailure(task, err)
	}

	if err := validateResponse(schema, raw); err != nil {
		return "", taskFailure(task, err)
	}
	return raw, nil
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}
