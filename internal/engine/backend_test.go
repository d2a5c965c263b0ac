package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestParseBackendOutput_Valid(t *testing.T) {
	// 成功时脚本直接输出分析对象，没有 success 字段
	out := []byte(`{
		"overall_score": 7.8,
		"detailed_scores": {"content": 8.0, "organization": 7.5, "language": 7.2, "conventions": 8.4},
		"feedback": {"overall": "Good essay"},
		"analysis_method": "ml",
		"error_count": 3
	}`)
	got, err := parseBackendOutput(out)
	if err != nil {
		t.Fatalf("parseBackendOutput: %v", err)
	}
	want := BackendResult{Content: 8.0, Organization: 7.5, Language: 7.2, Conventions: 8.4, Overall: 7.8}
	if *got != want {
		t.Fatalf("got %+v, want %+v", *got, want)
	}
}

func TestParseBackendOutput_ClampsOutOfRange(t *testing.T) {
	out := []byte(`{"overall_score": 14.2, "detailed_scores": {"content": 0.3, "organization": 7.0, "language": 7.0, "conventions": 11.0}}`)
	got, err := parseBackendOutput(out)
	if err != nil {
		t.Fatalf("parseBackendOutput: %v", err)
	}
	if got.Overall != 10 || got.Content != 1 || got.Conventions != 10 {
		t.Fatalf("scores not clamped: %+v", got)
	}
}

func TestParseBackendOutput_Failures(t *testing.T) {
	cases := []struct {
		name    string
		out     string
		mention string
	}{
		{"explicit failure", `{"success": false, "error": "model not loaded"}`, "model not loaded"},
		{"missing overall score", `{"detailed_scores": {"content": 8, "organization": 8, "language": 8, "conventions": 8}}`, "overall_score"},
		{"missing dimension", `{"overall_score": 8, "detailed_scores": {"content": 8, "organization": 8, "conventions": 8}}`, "language"},
		{"not json", `Traceback (most recent call last): ...`, ""},
	}
	for _, c := range cases {
		got, err := parseBackendOutput([]byte(c.out))
		if got != nil {
			t.Fatalf("%s: expected nil result, got %+v", c.name, got)
		}
		var be *BackendError
		if !errors.As(err, &be) {
			t.Fatalf("%s: expected BackendError, got %v", c.name, err)
		}
		if be.Kind != BackendMalformed {
			t.Fatalf("%s: kind = %q, want %q", c.name, be.Kind, BackendMalformed)
		}
		if c.mention != "" && !strings.Contains(err.Error(), c.mention) {
			t.Fatalf("%s: error %q should mention %q", c.name, err, c.mention)
		}
	}
}

func TestBackendError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := error(&BackendError{Kind: BackendUnavailable, Err: inner})
	if !errors.Is(err, inner) {
		t.Fatalf("BackendError should unwrap to the inner error")
	}
	if !strings.Contains(err.Error(), "unavailable") || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("message = %q", err.Error())
	}
}
