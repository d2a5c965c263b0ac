package engine

import (
	"math"
	"strings"
)

// ScoreEssay 按内容、结构、语言、规范四个维度评分并计算总分。
// level 只缩放前三个维度，规范分完全由错误扣分决定。
// 各维度得分落在 1.0–10.0，保留一位小数。
func ScoreEssay(essay, prompt, level string, stats Statistics, structure Structure, errs []WritingError) Scores {
	content := scoreContent(essay, prompt, stats, structure)
	organization := scoreOrganization(essay, structure, stats)
	language := scoreLanguage(essay, stats)
	conventions := scoreConventions(errs)

	factor := levelFactor(level)
	content = round1(clampScore(content * factor))
	organization = round1(clampScore(organization * factor))
	language = round1(clampScore(language * factor))
	conventions = round1(conventions)

	overall := round1((content + organization + language + conventions) / 4)
	return Scores{
		Content:      content,
		Organization: organization,
		Language:     language,
		Conventions:  conventions,
		Overall:      overall,
	}
}

// levelFactor 初级从宽、高级从严
func levelFactor(level string) float64 {
	switch level {
	case LevelBeginner:
		return 1.2
	case LevelAdvanced:
		return 0.9
	}
	return 1.0
}

func clampScore(v float64) float64 {
	return math.Min(10, math.Max(1, v))
}

// scoreContent 内容分：篇幅、切题度、论据、论点与论证力度
func scoreContent(essay, prompt string, stats Statistics, structure Structure) float64 {
	score := 5.0

	switch {
	case stats.WordCount >= 400:
		score += 1.5
	case stats.WordCount >= 250:
		score += 1.0
	case stats.WordCount >= 150:
		score += 0.5
	}
	if stats.WordCount < 100 {
		score -= 1.5
	}

	score += promptRelevance(essay, prompt)

	lower := strings.ToLower(essay)
	evidence := 0
	for _, ind := range evidenceIndicators {
		if strings.Contains(lower, ind) {
			evidence++
		}
	}
	score += math.Min(float64(evidence)*0.4, 2.0)

	if structure.HasThesis {
		score += 1.2
	}

	score += math.Min(float64(structure.TransitionCount)*0.3, 1.5)
	score += math.Min(float64(evidence)*0.25, 1.0)

	return clampScore(score)
}

// promptRelevance 切题度：题干关键词在文中命中的比例，满分 2.5。
// 关键词取长度大于3的实词（去停用词），与作文实词互为子串即算命中，
// 以覆盖词形变化。未给题干时不加不减。
func promptRelevance(essay, prompt string) float64 {
	keywords := contentWords(prompt)
	if len(keywords) == 0 {
		return 0
	}

	essayWords := contentWords(essay)
	matched := 0
	for _, k := range keywords {
		for _, w := range essayWords {
			if strings.Contains(w, k) || strings.Contains(k, w) {
				matched++
				break
			}
		}
	}
	return 2.5 * float64(matched) / float64(len(keywords))
}

func contentWords(text string) []string {
	seen := make(map[string]bool)
	words := make([]string, 0)
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if len(w) > 3 && !stopWords[w] && !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	return words
}

// scoreOrganization 结构分：段落数量、开头结尾、衔接词与段落均衡
func scoreOrganization(essay string, structure Structure, stats Statistics) float64 {
	score := 5.0

	switch {
	case stats.ParagraphCount >= 5:
		score += 1.5
	case stats.ParagraphCount >= 4:
		score += 1.0
	case stats.ParagraphCount >= 3:
		score += 0.5
	}
	if stats.ParagraphCount < 2 {
		score -= 1.5
	}

	if structure.HasIntroduction {
		score += 1.2
	}
	if structure.HasConclusion {
		score += 1.2
	}

	score += math.Min(float64(structure.TransitionCount)*0.25, 1.8)
	score += flowBonus(splitParagraphs(essay), structure.ParagraphBalance)

	return clampScore(score)
}

// flowBonus 段落均衡与主题句长度带来的行文流畅加成，上限 1.5
func flowBonus(paragraphs []string, balance string) float64 {
	bonus := 0.0
	switch balance {
	case balanceWellBalanced:
		bonus = 0.8
	case balanceSomewhatUneven:
		bonus = 0.4
	}

	if len(paragraphs) > 0 {
		ok := 0
		for _, p := range paragraphs {
			first := p
			if idx := strings.Index(p, "."); idx >= 0 {
				first = p[:idx]
			}
			n := len(wordRe.FindAllString(first, -1))
			if n >= 5 && n <= 30 {
				ok++
			}
		}
		bonus += 0.7 * float64(ok) / float64(len(paragraphs))
	}
	return math.Min(bonus, 1.5)
}

// scoreLanguage 语言分：词汇多样性、平均句长、学术词汇与复合句
func scoreLanguage(essay string, stats Statistics) float64 {
	score := 5.0

	switch {
	case stats.VocabularyDiversity > 0.75:
		score += 1.8
	case stats.VocabularyDiversity > 0.6:
		score += 1.2
	case stats.VocabularyDiversity > 0.45:
		score += 0.6
	}
	if stats.WordCount > 0 && stats.VocabularyDiversity < 0.3 {
		score -= 1.0
	}

	avg := stats.AvgWordsPerSentence
	switch {
	case avg >= 12 && avg <= 22:
		score += 1.0
	case (avg >= 8 && avg < 12) || (avg > 22 && avg <= 28):
		score += 0.4
	default:
		score -= 0.6
	}

	score += math.Min(float64(stats.AcademicWordCount)*0.08, 1.5)
	score += math.Min(float64(subordinateSentenceCount(essay))*0.15, 1.2)

	return clampScore(score)
}

// subordinateSentenceCount 统计含从属连词的句子数
func subordinateSentenceCount(essay string) int {
	count := 0
	for _, s := range splitSentences(essay) {
		lower := " " + strings.ToLower(s) + " "
		for _, conj := range subordinatingConjunctions {
			if strings.Contains(lower, " "+conj+" ") {
				count++
				break
			}
		}
	}
	return count
}

// scoreConventions 规范分：从 8.5 起按错误的类型与严重程度逐条扣分，
// 扣到 1.0 为止，之后再按错误总数补扣（每条0.1，上限2.0）。
// 该维度不做水平缩放。
func scoreConventions(errs []WritingError) float64 {
	score := 8.5
	for _, e := range errs {
		score -= conventionDeduction(e)
	}
	if score < 1.0 {
		score = 1.0
	}

	score -= math.Min(float64(len(errs))*0.1, 2.0)
	return clampScore(score)
}

// 规范扣分表：先按（严重程度，类别）精确匹配，未列出的类别落到
// 该严重程度的默认档
var conventionPenalties = map[Severity]map[ErrorType]float64{
	SeverityHigh:   {ErrorGrammar: 0.6},
	SeverityMedium: {ErrorSpelling: 0.3},
}

var conventionDefaults = map[Severity]float64{
	SeverityHigh:   0.4,
	SeverityMedium: 0.25,
	SeverityLow:    0.1,
}

func conventionDeduction(e WritingError) float64 {
	if byType, ok := conventionPenalties[e.Severity]; ok {
		if p, ok := byType[e.Type]; ok {
			return p
		}
	}
	if p, ok := conventionDefaults[e.Severity]; ok {
		return p
	}
	return 0.1
}
