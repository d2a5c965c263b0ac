package engine

import (
	"strings"
	"testing"
)

func TestGenerateFeedback_OverallBands(t *testing.T) {
	cases := []struct {
		overall float64
		want    string
	}{
		{8.5, "Excellent"},
		{8.0, "Excellent"},
		{6.0, "Good essay"},
		{4.0, "Developing"},
		{3.9, "needs significant development"},
	}
	for _, c := range cases {
		fb := GenerateFeedback(Scores{Overall: c.overall}, Statistics{}, nil, LevelIntermediate)
		if !strings.Contains(fb.Overall, c.want) {
			t.Fatalf("overall %.1f: comment %q does not mention %q", c.overall, fb.Overall, c.want)
		}
	}
}

func TestGenerateFeedback_StrengthsAndAreas(t *testing.T) {
	scores := Scores{Content: 8.0, Organization: 7.5, Language: 5.0, Conventions: 4.0, Overall: 6.1}
	stats := Statistics{VocabularyDiversity: 0.65, AvgWordsPerSentence: 15, WordCount: 300, ParagraphCount: 4}
	fb := GenerateFeedback(scores, stats, mkErrs(3, ErrorSpelling, SeverityMedium), LevelIntermediate)

	// 内容、结构、词汇多样性、句长四项优点
	if len(fb.Strengths) != 4 {
		t.Fatalf("strengths = %v, want 4 entries", fb.Strengths)
	}
	// 语言与规范两项短板
	if len(fb.AreasForImprovement) != 2 {
		t.Fatalf("areas = %v, want 2 entries", fb.AreasForImprovement)
	}
	if !strings.Contains(fb.AreasForImprovement[1], "3 total") {
		t.Fatalf("conventions area should carry the error count: %v", fb.AreasForImprovement)
	}
}

func TestGenerateFeedback_Suggestions(t *testing.T) {
	stats := Statistics{WordCount: 150, ParagraphCount: 2, VocabularyDiversity: 0.4}
	fb := GenerateFeedback(Scores{Overall: 5}, stats, mkErrs(11, ErrorStyle, SeverityLow), LevelIntermediate)

	if len(fb.Suggestions) != 4 {
		t.Fatalf("suggestions = %v, want 4 entries", fb.Suggestions)
	}

	clean := GenerateFeedback(Scores{Overall: 5}, Statistics{WordCount: 400, ParagraphCount: 4, VocabularyDiversity: 0.7}, nil, LevelIntermediate)
	if len(clean.Suggestions) != 0 {
		t.Fatalf("clean stats should trigger no suggestions: %v", clean.Suggestions)
	}
}

func TestGenerateFeedback_LevelSpecific(t *testing.T) {
	advanced := GenerateFeedback(Scores{Overall: 6.5}, Statistics{}, nil, LevelAdvanced)
	if len(advanced.LevelSpecific) != 1 || !strings.Contains(advanced.LevelSpecific[0], "advanced level") {
		t.Fatalf("advanced note = %v", advanced.LevelSpecific)
	}

	beginner := GenerateFeedback(Scores{Overall: 7.5}, Statistics{}, nil, LevelBeginner)
	if len(beginner.LevelSpecific) != 1 || !strings.Contains(beginner.LevelSpecific[0], "beginner level") {
		t.Fatalf("beginner note = %v", beginner.LevelSpecific)
	}

	middling := GenerateFeedback(Scores{Overall: 6.5}, Statistics{}, nil, LevelIntermediate)
	if len(middling.LevelSpecific) != 0 {
		t.Fatalf("intermediate should get no level note: %v", middling.LevelSpecific)
	}
}

func TestGenerateImprovements_DimensionThresholds(t *testing.T) {
	scores := Scores{Content: 5.5, Organization: 6.5, Language: 8.0, Conventions: 8.0}
	got := GenerateImprovements(scores, nil, LevelIntermediate)

	if len(got) != 2 {
		t.Fatalf("got %d improvements, want 2: %+v", len(got), got)
	}
	if got[0].Area != "Content Development" || got[0].Priority != "high" {
		t.Fatalf("content entry = %+v", got[0])
	}
	if got[1].Area != "Essay Organization" || got[1].Priority != "medium" {
		t.Fatalf("organization entry = %+v", got[1])
	}
	for _, imp := range got {
		if len(imp.Tips) != 4 {
			t.Fatalf("%s: %d tips, want 4", imp.Area, len(imp.Tips))
		}
	}
}

func TestGenerateImprovements_BeginnerTipCount(t *testing.T) {
	scores := Scores{Content: 5.0, Organization: 8.0, Language: 8.0, Conventions: 8.0}
	got := GenerateImprovements(scores, nil, LevelBeginner)
	if len(got) != 1 || len(got[0].Tips) != 3 {
		t.Fatalf("beginner improvements = %+v, want one entry with 3 tips", got)
	}
}

func TestGenerateImprovements_ConventionsErrorTrigger(t *testing.T) {
	// 规范分达标但错误超过5条时仍要给出改进计划
	scores := Scores{Content: 8.0, Organization: 8.0, Language: 8.0, Conventions: 7.5}
	got := GenerateImprovements(scores, mkErrs(6, ErrorPunctuation, SeverityLow), LevelIntermediate)

	var areas []string
	for _, imp := range got {
		areas = append(areas, imp.Area)
	}
	if len(got) != 2 || got[0].Area != "Writing Conventions" || got[1].Area != "Punctuation Accuracy" {
		t.Fatalf("areas = %v, want conventions plus punctuation", areas)
	}
	if got[1].Priority != "high" {
		t.Fatalf("error-based priority = %q, want high for 6 errors", got[1].Priority)
	}
	if !strings.Contains(got[1].Description, "6 errors detected") {
		t.Fatalf("description = %q", got[1].Description)
	}
}

func TestGenerateImprovements_GeneralFallback(t *testing.T) {
	scores := Scores{Content: 9.0, Organization: 9.0, Language: 9.0, Conventions: 9.0}
	got := GenerateImprovements(scores, nil, LevelIntermediate)
	if len(got) != 1 || got[0].Area != "General Writing Development" {
		t.Fatalf("got %+v, want the general fallback entry", got)
	}
}

func TestErrorBasedImprovement_TypePreference(t *testing.T) {
	errs := append(mkErrs(2, ErrorGrammar, SeverityHigh), mkErrs(2, ErrorSpelling, SeverityMedium)...)
	imp, ok := errorBasedImprovement(errs)
	if !ok {
		t.Fatalf("expected an improvement for mixed errors")
	}
	// 数量并列时按固定顺序取拼写优先
	if imp.Area != "Spelling Accuracy" {
		t.Fatalf("area = %q, want Spelling Accuracy", imp.Area)
	}
	if imp.Priority != "medium" {
		t.Fatalf("priority = %q, want medium for 2 errors", imp.Priority)
	}

	if _, ok := errorBasedImprovement(mkErrs(3, ErrorCoherence, SeverityLow)); ok {
		t.Fatalf("coherence has no error catalog and should yield nothing")
	}
}
