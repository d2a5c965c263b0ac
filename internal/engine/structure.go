package engine

import (
	"strings"
)

const (
	balanceWellBalanced   = "well_balanced"
	balanceSomewhatUneven = "somewhat_uneven"
	balanceUneven         = "uneven"
)

// AnalyzeStructure 识别篇章结构：开头、结尾、论点、正文段落与衔接词。
// 指示词匹配不区分大小写；较长的首段/末段在缺少指示词时也按
// 开头/结尾处理。
func AnalyzeStructure(essay string) Structure {
	paragraphs := splitParagraphs(essay)
	lower := strings.ToLower(essay)

	var st Structure
	if len(paragraphs) == 0 {
		st.ParagraphBalance = balanceWellBalanced
		return st
	}

	firstPara := strings.ToLower(paragraphs[0])
	for _, ind := range introIndicators {
		if strings.Contains(firstPara, ind) {
			st.HasIntroduction = true
			break
		}
	}
	if !st.HasIntroduction && len(firstPara) > 100 {
		st.HasIntroduction = true
	}

	for _, ind := range thesisIndicators {
		if strings.Contains(firstPara, ind) {
			st.HasThesis = true
			break
		}
	}

	lastPara := strings.ToLower(paragraphs[len(paragraphs)-1])
	for _, ind := range conclusionIndicators {
		if strings.Contains(lastPara, ind) {
			st.HasConclusion = true
			break
		}
	}
	if !st.HasConclusion && len(lastPara) > 50 {
		st.HasConclusion = true
	}

	if st.HasIntroduction && st.HasConclusion {
		st.BodyParagraphs = max(0, len(paragraphs)-2)
	} else {
		st.BodyParagraphs = max(0, len(paragraphs)-1)
	}

	for _, t := range transitionWords {
		if strings.Contains(lower, t) {
			st.TransitionCount++
		}
	}

	st.ParagraphBalance = paragraphBalance(paragraphs)
	return st
}

// paragraphBalance 以段落词数方差衡量篇幅分布
func paragraphBalance(paragraphs []string) string {
	if len(paragraphs) < 2 {
		return balanceWellBalanced
	}

	counts := make([]float64, len(paragraphs))
	var sum float64
	for i, p := range paragraphs {
		counts[i] = float64(len(wordRe.FindAllString(p, -1)))
		sum += counts[i]
	}
	mean := sum / float64(len(counts))

	var variance float64
	for _, c := range counts {
		variance += (c - mean) * (c - mean)
	}
	variance /= float64(len(counts))

	switch {
	case variance < 200:
		return balanceWellBalanced
	case variance < 500:
		return balanceSomewhatUneven
	default:
		return balanceUneven
	}
}
