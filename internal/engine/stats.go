package engine

import (
	"math"
	"regexp"
	"strings"
)

var (
	wordRe     = regexp.MustCompile(`\b\w+\b`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// splitSentences 按句末标点切句，去掉空白片段
func splitSentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitParagraphs 按空行切段，去掉空白片段
func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ComputeStatistics 计算作文的全部统计指标。纯函数，空文本返回零值。
// 句子/段落为零时比率退化为分子本身，避免除零。
func ComputeStatistics(essay string) Statistics {
	cleaned := spaceRe.ReplaceAllString(strings.TrimSpace(essay), " ")
	words := wordRe.FindAllString(cleaned, -1)
	sentences := splitSentences(cleaned)
	paragraphs := splitParagraphs(essay)

	stats := Statistics{
		WordCount:      len(words),
		SentenceCount:  len(sentences),
		ParagraphCount: len(paragraphs),
		CharacterCount: len(cleaned),
	}
	stats.CharacterCountNoSpaces = len(strings.ReplaceAll(cleaned, " ", ""))

	if len(words) == 0 {
		return stats
	}

	stats.AvgWordsPerSentence = round1(float64(len(words)) / float64(max(len(sentences), 1)))
	stats.AvgSentencesPerPara = round1(float64(len(sentences)) / float64(max(len(paragraphs), 1)))
	stats.ReadingTimeMinutes = int(math.Ceil(float64(len(words)) / 200.0))

	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[strings.ToLower(w)] = true
	}
	stats.UniqueWordCount = len(unique)
	stats.VocabularyDiversity = round3(float64(len(unique)) / float64(len(words)))

	academicSet := make(map[string]bool, len(academicWords))
	for _, w := range academicWords {
		academicSet[w] = true
	}
	for _, w := range words {
		if academicSet[strings.ToLower(w)] {
			stats.AcademicWordCount++
		}
	}

	lower := strings.ToLower(essay)
	for _, t := range transitionWords {
		if strings.Contains(lower, t) {
			stats.TransitionWordCount++
		}
	}

	for _, s := range sentences {
		if len(wordRe.FindAllString(s, -1)) > complexSentenceWords {
			stats.ComplexSentenceCount++
		}
	}

	return stats
}

const complexSentenceWords = 15

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
