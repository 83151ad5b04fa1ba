package domain

import "time"

// VerdictKind classifies the outcome of one test case run.
type VerdictKind string

const (
	VerdictPass  VerdictKind = "Pass"
	VerdictFail  VerdictKind = "Fail"
	VerdictError VerdictKind = "Error"
)

// StepOutcome records whether one step's action executed successfully.
type StepOutcome struct {
	Step    string `json:"step"`
	Success bool   `json:"success"`
}

// RunVerdict is the final result of executing one test case. It is built once
// at the end of a run (or on abort) and never mutated afterwards.
type RunVerdict struct {
	Result         VerdictKind   `json:"result"`
	ExpectedOutput string        `json:"expected_output"`
	FinalURL       string        `json:"final_url,omitempty"`
	StepResults    []StepOutcome `json:"step_results,omitempty"`
	ContentPreview string        `json:"content_preview,omitempty"`
	Error          string        `json:"error,omitempty"`
}

// CaseResult pairs a test case with its verdict for reporting and storage.
type CaseResult struct {
	Name     string     `json:"name"`
	FilePath string     `json:"file_path"`
	URL      string     `json:"url"`
	Verdict  RunVerdict `json:"verdict"`
	Resolved bool       `json:"resolved,omitempty"` // marked reviewed in the failures viewer
}

// RunMeta contains metadata about a full run of test cases.
type RunMeta struct {
	TotalCases      int     `json:"total_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	ErroredCases    int     `json:"errored_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for one run.
type RunOutput struct {
	Meta  RunMeta      `json:"meta"`
	Cases []CaseResult `json:"cases"`
}

// NewRunOutput builds a RunOutput with meta counters derived from the cases.
func NewRunOutput(cases []CaseResult, duration time.Duration) *RunOutput {
	var passed, failed, errored int
	for _, c := range cases {
		switch c.Verdict.Result {
		case VerdictPass:
			passed++
		case VerdictFail:
			failed++
		default:
			errored++
		}
	}
	return &RunOutput{
		Meta: RunMeta{
			TotalCases:      len(cases),
			PassedCases:     passed,
			FailedCases:     failed,
			ErroredCases:    errored,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Cases: cases,
	}
}
