package engine

import (
	"strings"
	"testing"
)

func TestAnalyzeStructure_FullEssay(t *testing.T) {
	essay := "In this essay I will argue that practice matters.\n\n" +
		"Practice builds skill through repetition and feedback from mistakes.\n\n" +
		"Daily habits compound over months into real ability.\n\n" +
		"In conclusion, steady practice beats raw talent."

	s := AnalyzeStructure(essay)
	if !s.HasIntroduction {
		t.Fatalf("HasIntroduction = false, want true")
	}
	if !s.HasThesis {
		t.Fatalf("HasThesis = false, want true")
	}
	if !s.HasConclusion {
		t.Fatalf("HasConclusion = false, want true")
	}
	if s.BodyParagraphs != 2 {
		t.Fatalf("BodyParagraphs = %d, want 2", s.BodyParagraphs)
	}
	if s.TransitionCount != 1 {
		t.Fatalf("TransitionCount = %d, want 1", s.TransitionCount)
	}
	if s.ParagraphBalance != balanceWellBalanced {
		t.Fatalf("ParagraphBalance = %q, want %q", s.ParagraphBalance, balanceWellBalanced)
	}
}

func TestAnalyzeStructure_LengthFallbacks(t *testing.T) {
	// 没有任何指示词，长度达标也应识别出开头和结尾
	essay := "Students around the world spend many hours every week working on their writing skills with mixed results.\n\n" +
		"Some improve quickly while others struggle for years."

	s := AnalyzeStructure(essay)
	if !s.HasIntroduction {
		t.Fatalf("long first paragraph should count as introduction")
	}
	if s.HasThesis {
		t.Fatalf("HasThesis = true, want false")
	}
	if !s.HasConclusion {
		t.Fatalf("long last paragraph should count as conclusion")
	}
	if s.BodyParagraphs != 0 {
		t.Fatalf("BodyParagraphs = %d, want 0", s.BodyParagraphs)
	}
}

func TestAnalyzeStructure_ShortSingleParagraph(t *testing.T) {
	s := AnalyzeStructure("Dogs bark.")
	if s.HasIntroduction || s.HasConclusion || s.HasThesis {
		t.Fatalf("short text should have no structural markers: %+v", s)
	}
	if s.BodyParagraphs != 0 {
		t.Fatalf("BodyParagraphs = %d, want 0", s.BodyParagraphs)
	}
}

func TestParagraphBalance_Classification(t *testing.T) {
	para := func(words int) string {
		return strings.TrimSpace(strings.Repeat("word ", words))
	}

	cases := []struct {
		name  string
		sizes []int
		want  string
	}{
		{"equal", []int{20, 20, 20}, balanceWellBalanced},
		{"moderate spread", []int{10, 50}, balanceSomewhatUneven},
		{"wide spread", []int{10, 70}, balanceUneven},
	}
	for _, c := range cases {
		paragraphs := make([]string, 0, len(c.sizes))
		for _, n := range c.sizes {
			paragraphs = append(paragraphs, para(n))
		}
		if got := paragraphBalance(paragraphs); got != c.want {
			t.Fatalf("%s: paragraphBalance = %q, want %q", c.name, got, c.want)
		}
	}
}
