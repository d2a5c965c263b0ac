package engine

import (
	"reflect"
	"sort"
	"strings"
	"testing"
)

func errorsOfType(errs []WritingError, typ ErrorType) []WritingError {
	var out []WritingError
	for _, e := range errs {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestDetectErrors_CommonMisspellings(t *testing.T) {
	essay := "I talk alot about things. I recieve letters."
	errs := DetectErrors(essay)

	if len(errs) != 2 {
		t.Fatalf("got %d errors, want exactly 2: %+v", len(errs), errs)
	}
	wants := []struct {
		flagged    string
		suggestion string
	}{
		{"alot", "a lot"},
		{"recieve", "receive"},
	}
	for i, w := range wants {
		e := errs[i]
		if e.Type != ErrorSpelling {
			t.Fatalf("errs[%d].Type = %q, want spelling", i, e.Type)
		}
		if e.Severity != SeverityMedium {
			t.Fatalf("errs[%d].Severity = %q, want medium", i, e.Severity)
		}
		if e.Flagged != w.flagged || e.Suggestion != w.suggestion {
			t.Fatalf("errs[%d] = %q -> %q, want %q -> %q", i, e.Flagged, e.Suggestion, w.flagged, w.suggestion)
		}
		if essay[e.Start:e.End] != e.Flagged {
			t.Fatalf("span mismatch: essay[%d:%d] = %q, flagged %q", e.Start, e.End, essay[e.Start:e.End], e.Flagged)
		}
	}
}

func TestDetectErrors_GrammarPatterns(t *testing.T) {
	cases := []struct {
		text       string
		flagged    string
		suggestion string
		severity   Severity
	}{
		{"He are happy.", "He are", "He is", SeverityHigh},
		{"It were broken.", "It were", "It was", SeverityHigh},
		{"They was here.", "They was", "They were", SeverityHigh},
		{"We is ready.", "We is", "We are", SeverityHigh},
		{"You could of won.", "could of", "could have", SeverityHigh},
		{"This is different than that.", "different than", "different from", SeverityMedium},
		{"We see less cars now.", "less cars", "fewer cars", SeverityMedium},
		{"You don't haven't time.", "don't haven't", "Use only one negative in a sentence", SeverityMedium},
		{"Because it was raining. The game stopped.", "Because it was raining. T", "Complete the dependent clause or connect to main clause", SeverityMedium},
	}
	for _, c := range cases {
		grammar := errorsOfType(DetectErrors(c.text), ErrorGrammar)
		if len(grammar) != 1 {
			t.Fatalf("%q: got %d grammar errors, want 1: %+v", c.text, len(grammar), grammar)
		}
		e := grammar[0]
		if e.Flagged != c.flagged {
			t.Fatalf("%q: flagged %q, want %q", c.text, e.Flagged, c.flagged)
		}
		if e.Suggestion != c.suggestion {
			t.Fatalf("%q: suggestion %q, want %q", c.text, e.Suggestion, c.suggestion)
		}
		if e.Severity != c.severity {
			t.Fatalf("%q: severity %q, want %q", c.text, e.Severity, c.severity)
		}
		if c.text[e.Start:e.End] != e.Flagged {
			t.Fatalf("%q: span [%d:%d] = %q, flagged %q", c.text, e.Start, e.End, c.text[e.Start:e.End], e.Flagged)
		}
	}
}

func TestDetectErrors_Punctuation(t *testing.T) {
	essay := "Hello,world!! I am here , yes."
	errs := errorsOfType(DetectErrors(essay), ErrorPunctuation)
	if len(errs) != 3 {
		t.Fatalf("got %d punctuation errors, want 3: %+v", len(errs), errs)
	}

	byFlagged := make(map[string]WritingError)
	for _, e := range errs {
		byFlagged[e.Flagged] = e
	}

	if e, ok := byFlagged[",w"]; !ok || e.Suggestion != ", w" || e.Severity != SeverityMedium {
		t.Fatalf("missing-space error = %+v", e)
	}
	if e, ok := byFlagged["!!"]; !ok || e.Suggestion != "!" || e.Severity != SeverityLow {
		t.Fatalf("repeated-punctuation error = %+v", e)
	}
	if e, ok := byFlagged[" ,"]; !ok || e.Suggestion != "," || e.Severity != SeverityLow {
		t.Fatalf("space-before error = %+v", e)
	}
}

func TestDetectErrors_WordChoice(t *testing.T) {
	errs := errorsOfType(DetectErrors("Their dog runs fast."), ErrorWordChoice)
	if len(errs) != 1 {
		t.Fatalf("got %d word choice errors, want 1: %+v", len(errs), errs)
	}
	if errs[0].Flagged != "Their" || errs[0].Suggestion != "there" {
		t.Fatalf("got %q -> %q, want Their -> there", errs[0].Flagged, errs[0].Suggestion)
	}
	if errs[0].Severity != SeverityMedium || errs[0].Confidence != 0.6 {
		t.Fatalf("severity/confidence = %q/%v", errs[0].Severity, errs[0].Confidence)
	}

	// 上下文出现 result 时 affect 更可能是 effect 的误用
	errs = errorsOfType(DetectErrors("The medicine will affect the result you see."), ErrorWordChoice)
	if len(errs) != 1 {
		t.Fatalf("got %d word choice errors, want 1: %+v", len(errs), errs)
	}
	if errs[0].Suggestion != "effect" {
		t.Fatalf("context suggestion = %q, want effect", errs[0].Suggestion)
	}
}

func TestDetectErrors_WordRepetition(t *testing.T) {
	essay := "The system runs. The system stops. The system waits. The system fails. The system wins."
	errs := DetectErrors(essay)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
	}

	e := errs[0]
	if e.Type != ErrorStyle || e.Severity != SeverityLow {
		t.Fatalf("type/severity = %q/%q", e.Type, e.Severity)
	}
	if e.Flagged != "system" || e.Start != strings.Index(essay, "system") {
		t.Fatalf("repetition should flag the first occurrence, got %+v", e)
	}
	if !strings.Contains(e.Explanation, "appears 5 times") {
		t.Fatalf("explanation = %q", e.Explanation)
	}
}

func TestDetectErrors_PassiveVoice(t *testing.T) {
	errs := errorsOfType(DetectErrors("The cake was eaten quickly."), ErrorStyle)
	if len(errs) != 1 {
		t.Fatalf("got %d style errors, want 1: %+v", len(errs), errs)
	}
	if errs[0].Flagged != "was eaten" || errs[0].Suggestion != "Consider active voice" {
		t.Fatalf("passive error = %+v", errs[0])
	}

	// 后接 by 的被动结构不提示
	if errs := errorsOfType(DetectErrors("The cake was eaten by me."), ErrorStyle); len(errs) != 0 {
		t.Fatalf("agentful passive should not be flagged: %+v", errs)
	}
}

func TestDetectErrors_StylePhrases(t *testing.T) {
	cases := []struct {
		text       string
		flagged    string
		suggestion string
	}{
		{"It is very very good.", "very very", "extremely"},
		{"We work in order to live.", "in order to", "to"},
		{"We left due to the fact that rain fell.", "due to the fact that", "because"},
		{"That is a true fact today.", "true fact", "fact"},
	}
	for _, c := range cases {
		errs := errorsOfType(DetectErrors(c.text), ErrorStyle)
		if len(errs) != 1 {
			t.Fatalf("%q: got %d style errors, want 1: %+v", c.text, len(errs), errs)
		}
		if errs[0].Flagged != c.flagged || errs[0].Suggestion != c.suggestion {
			t.Fatalf("%q: got %q -> %q, want %q -> %q", c.text, errs[0].Flagged, errs[0].Suggestion, c.flagged, c.suggestion)
		}
	}
}

func TestDetectErrors_Coherence(t *testing.T) {
	essay := "This essay will discuss the topic of learning.\n\n" +
		"Students spend many hours practicing new skills every day of the week."
	errs := errorsOfType(DetectErrors(essay), ErrorCoherence)
	if len(errs) != 1 {
		t.Fatalf("got %d coherence errors, want 1: %+v", len(errs), errs)
	}
	if errs[0].Suggestion != "Add transition words" {
		t.Fatalf("suggestion = %q", errs[0].Suggestion)
	}
	if essay[errs[0].Start:errs[0].End] != errs[0].Flagged {
		t.Fatalf("span mismatch: %+v", errs[0])
	}

	linked := "This essay will discuss the topic of learning.\n\n" +
		"However, students spend many hours practicing new skills every day."
	if errs := errorsOfType(DetectErrors(linked), ErrorCoherence); len(errs) != 0 {
		t.Fatalf("paragraph opening with a transition should pass: %+v", errs)
	}
}

func TestDetectErrors_SpanInvariantAndDeterminism(t *testing.T) {
	essay := "He are a wierd person and they was wrong.\n\n" +
		"The report was delayed ,and nobody cared!! Their answer came later.\n\n" +
		"We tried in order to fix it but could of done more."

	errs := DetectErrors(essay)
	if len(errs) == 0 {
		t.Fatalf("expected errors in noisy text")
	}
	for _, e := range errs {
		if e.Start < 0 || e.Start >= e.End || e.End > len(essay) {
			t.Fatalf("bad span [%d:%d] for essay length %d", e.Start, e.End, len(essay))
		}
		if essay[e.Start:e.End] != e.Flagged {
			t.Fatalf("span text %q != flagged %q", essay[e.Start:e.End], e.Flagged)
		}
		if e.Confidence <= 0 || e.Confidence > 1 {
			t.Fatalf("confidence %v out of (0,1]", e.Confidence)
		}
	}

	if !sort.SliceIsSorted(errs, func(i, j int) bool { return errs[i].Start < errs[j].Start }) {
		t.Fatalf("errors not ordered by position: %+v", errs)
	}

	again := DetectErrors(essay)
	if !reflect.DeepEqual(errs, again) {
		t.Fatalf("detector output not deterministic")
	}
}

func TestGroupErrors(t *testing.T) {
	essay := "I talk alot and they was wrong."
	errs := DetectErrors(essay)
	grouped := GroupErrors(errs)

	total := 0
	for _, g := range grouped {
		total += len(g)
	}
	if total != len(errs) {
		t.Fatalf("grouped total %d != %d", total, len(errs))
	}
	if len(grouped["spelling"]) != 1 || len(grouped["grammar"]) != 1 {
		t.Fatalf("unexpected grouping: %+v", grouped)
	}
}
