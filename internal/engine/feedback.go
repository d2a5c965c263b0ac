package engine

import (
	"fmt"
)

// GenerateFeedback 汇总评语：按总分选整体评价，按维度阈值列优点与
// 待改进项，再按具体指标给出针对性建议。输出对相同输入稳定。
func GenerateFeedback(scores Scores, stats Statistics, errs []WritingError, level string) Feedback {
	fb := Feedback{
		Strengths:           []string{},
		AreasForImprovement: []string{},
		Suggestions:         []string{},
	}

	switch {
	case scores.Overall >= 8:
		fb.Overall = "Excellent essay with strong performance across all areas."
	case scores.Overall >= 6:
		fb.Overall = "Good essay with solid foundation and clear strengths."
	case scores.Overall >= 4:
		fb.Overall = "Developing essay with room for improvement in several areas."
	default:
		fb.Overall = "Essay needs significant development across multiple areas."
	}

	if scores.Content >= 7 {
		fb.Strengths = append(fb.Strengths, "Strong content with good evidence and analysis")
	}
	if scores.Organization >= 7 {
		fb.Strengths = append(fb.Strengths, "Well-organized with clear structure and good flow")
	}
	if scores.Language >= 7 {
		fb.Strengths = append(fb.Strengths, "Sophisticated language with good variety and precision")
	}
	if scores.Conventions >= 7 {
		fb.Strengths = append(fb.Strengths, "Good command of writing conventions with few errors")
	}
	if stats.VocabularyDiversity > 0.6 {
		fb.Strengths = append(fb.Strengths, "Good vocabulary variety throughout the essay")
	}
	if stats.AvgWordsPerSentence >= 12 && stats.AvgWordsPerSentence <= 20 {
		fb.Strengths = append(fb.Strengths, "Well-balanced sentence lengths")
	}

	if scores.Content < 6 {
		fb.AreasForImprovement = append(fb.AreasForImprovement, "Content needs deeper development and stronger evidence")
	}
	if scores.Organization < 6 {
		fb.AreasForImprovement = append(fb.AreasForImprovement, "Essay structure and logical flow need improvement")
	}
	if scores.Language < 6 {
		fb.AreasForImprovement = append(fb.AreasForImprovement, "Language use needs more clarity and variety")
	}
	if scores.Conventions < 6 {
		fb.AreasForImprovement = append(fb.AreasForImprovement, fmt.Sprintf("Multiple convention errors detected (%d total)", len(errs)))
	}

	if stats.WordCount < 200 {
		fb.Suggestions = append(fb.Suggestions, "Try to develop your ideas more fully with additional details and examples.")
	}
	if stats.ParagraphCount < 3 {
		fb.Suggestions = append(fb.Suggestions, "Organize your essay into clear paragraphs: introduction, body, and conclusion.")
	}
	if len(errs) > 10 {
		fb.Suggestions = append(fb.Suggestions, "Proofread carefully to catch spelling and grammar errors.")
	}
	if stats.VocabularyDiversity < 0.5 {
		fb.Suggestions = append(fb.Suggestions, "Vary your word choice to make your writing more engaging.")
	}

	if level == LevelAdvanced && scores.Overall < 7.0 {
		fb.LevelSpecific = append(fb.LevelSpecific, "For advanced level, higher sophistication is expected.")
	} else if level == LevelBeginner && scores.Overall >= 7.0 {
		fb.LevelSpecific = append(fb.LevelSpecific, "Excellent work for beginner level! Consider advancing to intermediate.")
	}

	return fb
}

var improvementCatalog = map[string]Improvement{
	"content": {
		Area:        "Content Development",
		Description: "Strengthen your argument development and evidence use.",
		Tips: []string{
			"Develop a clear, arguable thesis statement",
			"Use specific examples and evidence from sources",
			"Explain how evidence supports your claims",
			"Address counterarguments to strengthen your position",
			"Ensure all content directly relates to the prompt",
		},
	},
	"organization": {
		Area:        "Essay Organization",
		Description: "Improve the structure and logical flow of your essay.",
		Tips: []string{
			"Create a clear introduction with thesis statement",
			"Use topic sentences to start each body paragraph",
			"Add transition words and phrases between ideas",
			"Ensure logical progression of arguments",
			"Write a strong conclusion that reinforces your thesis",
		},
	},
	"language": {
		Area:        "Language and Style",
		Description: "Enhance your vocabulary and sentence variety.",
		Tips: []string{
			"Vary sentence lengths and structures",
			"Use more precise and sophisticated vocabulary",
			"Avoid repetitive word choices",
			"Practice combining simple sentences into complex ones",
			"Read academic texts to improve language patterns",
		},
	},
	"conventions": {
		Area:        "Writing Conventions",
		Description: "Improve accuracy in grammar, punctuation, and mechanics.",
		Tips: []string{
			"Proofread carefully for grammar and spelling errors",
			"Review punctuation rules and usage",
			"Check subject-verb agreement throughout",
			"Use spell-check and grammar tools",
			"Read your essay aloud to catch errors",
		},
	},
}

var errorImprovementCatalog = map[ErrorType]Improvement{
	ErrorSpelling: {
		Area:        "Spelling Accuracy",
		Description: "Focus on correcting spelling errors (%d detected).",
		Tips: []string{
			"Use spell-check tools during writing",
			"Keep a personal list of commonly misspelled words",
			"Practice spelling rules and patterns",
			"Proofread specifically for spelling errors",
		},
	},
	ErrorGrammar: {
		Area:        "Grammar Accuracy",
		Description: "Address grammar issues (%d detected).",
		Tips: []string{
			"Review basic grammar rules",
			"Pay attention to subject-verb agreement",
			"Check verb tenses for consistency",
			"Use grammar checking tools",
		},
	},
	ErrorPunctuation: {
		Area:        "Punctuation Accuracy",
		Description: "Improve punctuation usage (%d errors detected).",
		Tips: []string{
			"Review punctuation rules",
			"Pay attention to comma usage",
			"Ensure proper sentence endings",
			"Check spacing around punctuation marks",
		},
	},
	ErrorStyle: {
		Area:        "Writing Style",
		Description: "Address style issues (%d detected).",
		Tips: []string{
			"Vary sentence structures for better flow",
			"Avoid repetitive word choices",
			"Use active voice when appropriate",
			"Eliminate wordy or redundant phrases",
		},
	},
}

var generalImprovement = Improvement{
	Area:        "General Writing Development",
	Priority:    "medium",
	Description: "Continue developing your writing skills across all areas.",
	Tips: []string{
		"Read widely to improve vocabulary and style",
		"Practice writing regularly with varied prompts",
		"Seek feedback from teachers or peers",
		"Study model essays in your field",
	},
}

// 高频错误类型并列时的取舍顺序
var errorTypeOrder = []ErrorType{
	ErrorSpelling, ErrorGrammar, ErrorPunctuation,
	ErrorWordChoice, ErrorStyle, ErrorCoherence,
}

// GenerateImprovements 低于阈值的维度各出一条改进计划（规范维度在
// 错误超过5条时也会触发），错误存在时再追加针对高频错误类型的一条。
// 初级学习者每条只保留前3条要点，其余保留4条。
func GenerateImprovements(scores Scores, errs []WritingError, level string) []Improvement {
	var improvements []Improvement

	dims := []struct {
		name  string
		score float64
	}{
		{"content", scores.Content},
		{"organization", scores.Organization},
		{"language", scores.Language},
		{"conventions", scores.Conventions},
	}
	for _, d := range dims {
		if d.score >= 7 && !(d.name == "conventions" && len(errs) > 5) {
			continue
		}
		entry := improvementCatalog[d.name]
		entry.Priority = "medium"
		if d.score < 6 {
			entry.Priority = "high"
		}
		if level == LevelBeginner {
			entry.Tips = entry.Tips[:3]
		} else {
			entry.Tips = entry.Tips[:4]
		}
		improvements = append(improvements, entry)
	}

	if entry, ok := errorBasedImprovement(errs); ok {
		improvements = append(improvements, entry)
	}

	if len(improvements) == 0 {
		improvements = append(improvements, generalImprovement)
	}
	return improvements
}

func errorBasedImprovement(errs []WritingError) (Improvement, bool) {
	if len(errs) == 0 {
		return Improvement{}, false
	}

	counts := make(map[ErrorType]int)
	for _, e := range errs {
		counts[e.Type]++
	}

	var top ErrorType
	best := 0
	for _, t := range errorTypeOrder {
		if counts[t] > best {
			top = t
			best = counts[t]
		}
	}

	entry, ok := errorImprovementCatalog[top]
	if !ok {
		return Improvement{}, false
	}
	entry.Description = fmt.Sprintf(entry.Description, best)
	entry.Priority = "medium"
	if best > 5 {
		entry.Priority = "high"
	}
	return entry, true
}
