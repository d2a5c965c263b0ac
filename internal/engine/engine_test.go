package engine

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

const engineEssay = `Technology shapes the modern classroom in ways that teachers cannot ignore. Students reach for search engines before they reach for the library shelf, and schools must decide what that means for learning.

However, the shift brings real benefits when schools plan carefully. In conclusion, thoughtful adoption serves students better than blanket bans.`

// stubBackend 可编程的测试后端
type stubBackend struct {
	result   *BackendResult
	err      error
	delay    time.Duration
	probeErr error
	calls    int
}

func (s *stubBackend) Infer(ctx context.Context, req Request) (*BackendResult, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, &BackendError{Kind: BackendTimeout, Err: ctx.Err()}
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubBackend) Probe(ctx context.Context) error { return s.probeErr }

func TestAnalyze_ValidationErrors(t *testing.T) {
	eng := NewEngine(nil, false, 0, nil)
	cases := []struct {
		name  string
		req   Request
		field string
	}{
		{"empty essay", Request{Essay: ""}, "essay"},
		{"whitespace only", Request{Essay: "   \n\n\t   "}, "essay"},
		{"below minimum length", Request{Essay: "too short here"}, "essay"},
		{"unknown level", Request{Essay: engineEssay, Level: "expert"}, "level"},
	}
	for _, c := range cases {
		res, err := eng.Analyze(context.Background(), c.req)
		if res != nil {
			t.Fatalf("%s: expected nil result, got %+v", c.name, res)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %v", c.name, err)
		}
		if ve.Field != c.field {
			t.Fatalf("%s: field = %q, want %q", c.name, ve.Field, c.field)
		}
	}
}

func TestAnalyze_EmptyLevelDefaultsToIntermediate(t *testing.T) {
	eng := NewEngine(nil, false, 0, nil)

	blank, err := eng.Analyze(context.Background(), Request{Essay: engineEssay})
	if err != nil {
		t.Fatalf("blank level: %v", err)
	}
	explicit, err := eng.Analyze(context.Background(), Request{Essay: engineEssay, Level: LevelIntermediate})
	if err != nil {
		t.Fatalf("explicit level: %v", err)
	}
	if blank.Scores != explicit.Scores {
		t.Fatalf("blank level scores %+v, want %+v", blank.Scores, explicit.Scores)
	}
}

func TestAnalyze_RuleBasedWithoutBackend(t *testing.T) {
	eng := NewEngine(nil, true, 0, nil) // 无后端时能力标志被强制关闭
	if eng.MLAvailable() {
		t.Fatalf("MLAvailable should be false without a backend")
	}

	res, err := eng.Analyze(context.Background(), Request{Essay: engineEssay, Level: LevelIntermediate})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Method != MethodRuleBased {
		t.Fatalf("method = %q, want %q", res.Method, MethodRuleBased)
	}
	if res.Statistics.WordCount == 0 || res.Statistics.ParagraphCount != 2 {
		t.Fatalf("statistics not populated: %+v", res.Statistics)
	}
	if res.ErrorCount != len(res.Errors) {
		t.Fatalf("errorCount = %d, len(errors) = %d", res.ErrorCount, len(res.Errors))
	}
	grouped := 0
	for _, g := range res.GroupedErrors {
		grouped += len(g)
	}
	if grouped != len(res.Errors) {
		t.Fatalf("grouped total = %d, want %d", grouped, len(res.Errors))
	}
	if res.Feedback.Overall == "" || len(res.Improvements) == 0 {
		t.Fatalf("feedback not populated: %+v", res.Feedback)
	}
	for _, v := range []float64{res.Scores.Content, res.Scores.Organization, res.Scores.Language, res.Scores.Conventions, res.Scores.Overall} {
		if v < 1 || v > 10 {
			t.Fatalf("score %v out of range: %+v", v, res.Scores)
		}
	}
}

func TestAnalyze_BackendTimeoutFallsBack(t *testing.T) {
	stub := &stubBackend{delay: 100 * time.Millisecond, result: &BackendResult{Content: 9, Organization: 9, Language: 9, Conventions: 9, Overall: 9}}
	eng := NewEngine(stub, true, 20*time.Millisecond, nil)

	res, err := eng.Analyze(context.Background(), Request{Essay: engineEssay, Level: LevelIntermediate})
	if err != nil {
		t.Fatalf("Analyze must not fail on backend timeout: %v", err)
	}
	if res.Method != MethodRuleBased {
		t.Fatalf("method = %q, want %q after timeout", res.Method, MethodRuleBased)
	}
	if stub.calls != 1 {
		t.Fatalf("backend called %d times, want exactly 1", stub.calls)
	}

	ruleOnly, err := NewEngine(nil, false, 0, nil).Analyze(context.Background(), Request{Essay: engineEssay, Level: LevelIntermediate})
	if err != nil {
		t.Fatalf("rule-only Analyze: %v", err)
	}
	if res.Scores != ruleOnly.Scores {
		t.Fatalf("fallback scores %+v, want rule-side %+v", res.Scores, ruleOnly.Scores)
	}
}

func TestAnalyze_BackendErrorFallsBack(t *testing.T) {
	stub := &stubBackend{err: &BackendError{Kind: BackendUnavailable, Err: errors.New("spawn failed")}}
	eng := NewEngine(stub, true, time.Second, nil)

	res, err := eng.Analyze(context.Background(), Request{Essay: engineEssay, Level: LevelIntermediate})
	if err != nil {
		t.Fatalf("Analyze must not fail on backend error: %v", err)
	}
	if res.Method != MethodRuleBased {
		t.Fatalf("method = %q, want %q", res.Method, MethodRuleBased)
	}
	if stub.calls != 1 {
		t.Fatalf("backend called %d times, want exactly 1", stub.calls)
	}
}

func TestAnalyze_HybridCombinesScores(t *testing.T) {
	ml := &BackendResult{Content: 9, Organization: 9, Language: 9, Conventions: 9, Overall: 9}
	eng := NewEngine(&stubBackend{result: ml}, true, time.Second, nil)

	res, err := eng.Analyze(context.Background(), Request{Essay: engineEssay, Level: LevelIntermediate})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Method != MethodHybrid {
		t.Fatalf("method = %q, want %q", res.Method, MethodHybrid)
	}

	ruleOnly, err := NewEngine(nil, false, 0, nil).Analyze(context.Background(), Request{Essay: engineEssay, Level: LevelIntermediate})
	if err != nil {
		t.Fatalf("rule-only Analyze: %v", err)
	}
	if want := combineScores(ml, ruleOnly.Scores); res.Scores != want {
		t.Fatalf("hybrid scores %+v, want %+v", res.Scores, want)
	}
}

func TestCombineScores(t *testing.T) {
	cases := []struct {
		name string
		ml   float64
		rule float64
		want float64
	}{
		{"close scores favor model", 9, 8, 8.7},
		{"large gap favors rules", 9, 5, 6.6},
		{"agreement passes through", 7, 7, 7.0},
		{"both at ceiling", 10, 10, 10.0},
	}
	for _, c := range cases {
		ml := &BackendResult{Content: c.ml, Organization: c.ml, Language: c.ml, Conventions: c.ml}
		rule := Scores{Content: c.rule, Organization: c.rule, Language: c.rule, Conventions: c.rule}
		got := combineScores(ml, rule)
		for dim, v := range map[string]float64{
			"content": got.Content, "organization": got.Organization,
			"language": got.Language, "conventions": got.Conventions, "overall": got.Overall,
		} {
			if math.Abs(v-c.want) > 1e-9 {
				t.Fatalf("%s: %s = %v, want %v", c.name, dim, v, c.want)
			}
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	eng := NewEngine(nil, false, 0, nil)
	req := Request{Essay: engineEssay, Prompt: "technology in education", Level: LevelAdvanced}

	first, err := eng.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := eng.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	first.ProcessingMS, second.ProcessingMS = 0, 0
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between runs:\n%+v\n%+v", first, second)
	}
}

func TestProbeBackend(t *testing.T) {
	if ProbeBackend(context.Background(), nil, time.Second, nil) {
		t.Fatalf("nil backend should probe false")
	}
	failing := &stubBackend{probeErr: &BackendError{Kind: BackendUnavailable, Err: errors.New("no model")}}
	if ProbeBackend(context.Background(), failing, time.Second, nil) {
		t.Fatalf("failing probe should return false")
	}
	if !ProbeBackend(context.Background(), &stubBackend{}, 0, nil) {
		t.Fatalf("healthy probe should return true")
	}
}
