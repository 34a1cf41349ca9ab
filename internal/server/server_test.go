package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Himesh-1/CraftMyCV/internal/ai"
	"github.com/Himesh-1/CraftMyCV/internal/export"
	"github.com/Himesh-1/CraftMyCV/internal/session"
)

// fakeTasks returns canned results and records the resume text it was
// given.
type fakeTasks struct {
	optimization *ai.Optimization
	atsReport    *ai.ATSReport
	letter       *ai.CoverLetter
	gap          *ai.SkillGapReport
	err          error

	lastResumeText string
	lastName       string
}

func (f *fakeTasks) Optimize(_ context.Context, resumeText, _, _ string) (*ai.Optimization, error) {
	f.lastResumeText = resumeText
	return f.optimization, f.err
}

func (f *fakeTasks) ATSCheck(_ context.Context, resumeText, _ string) (*ai.ATSReport, error) {
	f.lastResumeText = resumeText
	return f.atsReport, f.err
}

func (f *fakeTasks) CoverLetter(_ context.Context, resumeText, _, applicantName string) (*ai.CoverLetter, error) {
	f.lastResumeText = resumeText
	f.lastName = applicantName
	return f.letter, f.err
}

func (f *fakeTasks) SkillGap(_ context.Context, resumeText, _ string) (*ai.SkillGapReport, error) {
	f.lastResumeText = resumeText
	return f.gap, f.err
}

// fakeExporter fabricates artifacts without touching Chrome or the
// converter service.
type fakeExporter struct {
	err        error
	lastMarkup string
}

func (f *fakeExporter) PDF(_ context.Context, markup, fullName string) (*export.Artifact, error) {
	f.lastMarkup = markup
	if f.err != nil {
		return nil, f.err
	}
	return &export.Artifact{
		Filename: export.Filename(fullName, "pdf"),
		MIMEType: "application/pdf",
		Data:     []byte("%PDF-fake"),
	}, nil
}

func (f *fakeExporter) DOCX(_ context.Context, markup, fullName string) (*export.Artifact, error) {
	f.lastMarkup = markup
	if f.err != nil {
		return nil, f.err
	}
	return &export.Artifact{
		Filename: export.Filename(fullName, "docx"),
		MIMEType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Data:     []byte("PK-fake"),
	}, nil
}

func (f *fakeExporter) Bundle(ctx context.Context, markup, fullName string) (*export.Artifact, *export.Artifact, error) {
	pdf, err := f.PDF(ctx, markup, fullName)
	if err != nil {
		return nil, nil, err
	}
	docx, err := f.DOCX(ctx, markup, fullName)
	if err != nil {
		return nil, nil, err
	}
	return pdf, docx, nil
}

type testEnv struct {
	server   *Server
	session  *session.Session
	tasks    *fakeTasks
	exporter *fakeExporter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	sess := session.New()
	tasks := &fakeTasks{}
	exporter := &fakeExporter{}
	return &testEnv{
		server:   New(Config{Port: 0}, sess, tasks, exporter),
		session:  sess,
		tasks:    tasks,
		exporter: exporter,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "10.0.0.1:54321"
	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodOptions, "/resume", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAIRateLimitKicksIn(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	sess := session.New()
	tasks := &fakeTasks{atsReport: &ai.ATSReport{Score: 50}}
	srv := New(Config{Port: 0}, sess, tasks, &fakeExporter{})

	body := map[string]string{"job_description": "Go developer"}
	var lastCode int
	for i := 0; i < 3; i++ {
		data, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/ai/ats-check", bytes.NewReader(data))
		req.RemoteAddr = "10.0.0.9:1234"
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		lastCode = rec.Code
	}

	// Burst capacity for AI endpoints is 2
	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}
