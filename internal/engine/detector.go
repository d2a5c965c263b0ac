package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

type patternRule struct {
	re         *regexp.Regexp
	message    string
	suggestion string
	severity   Severity
}

var grammarRules = []patternRule{
	{
		re:         regexp.MustCompile(`(?i)\b(he|she|it)\s+(are|were)\b`),
		message:    "Subject-verb agreement error",
		suggestion: "Use 'is' or 'was' with singular subjects",
		severity:   SeverityHigh,
	},
	{
		re:         regexp.MustCompile(`(?i)\b(they|we|you)\s+(is|was)\b`),
		message:    "Subject-verb agreement error",
		suggestion: "Use 'are' or 'were' with plural subjects",
		severity:   SeverityHigh,
	},
	{
		re:         regexp.MustCompile(`(?i)\b(could|should|would|must|might) of\b`),
		message:    "Incorrect modal verb form",
		suggestion: "Use 'have' instead of 'of' after modal verbs",
		severity:   SeverityHigh,
	},
	{
		re:         regexp.MustCompile(`(?i)\b(don't|can't)\s+\w*n't\b`),
		message:    "Double negative",
		suggestion: "Use only one negative in a sentence",
		severity:   SeverityMedium,
	},
	{
		re:         regexp.MustCompile(`(?i)\bdifferent than\b`),
		message:    "Incorrect preposition",
		suggestion: "Use 'different from' instead of 'different than'",
		severity:   SeverityMedium,
	},
	{
		re:         regexp.MustCompile(`(?i)\bless\s+\w+s\b`),
		message:    "Incorrect quantifier",
		suggestion: "Use 'fewer' with countable nouns",
		severity:   SeverityMedium,
	},
	{
		re:         regexp.MustCompile(`\b(Because|Since|Although|While|If)\s+[^.!?]*\.\s*[A-Z]`),
		message:    "Possible sentence fragment",
		suggestion: "Complete the dependent clause or connect to main clause",
		severity:   SeverityMedium,
	},
}

var punctuationRules = []patternRule{
	{
		re:         regexp.MustCompile(`[.!?]{2,}`),
		message:    "Multiple punctuation marks",
		suggestion: "Use only one punctuation mark",
		severity:   SeverityLow,
	},
	{
		re:         regexp.MustCompile(`[.!?,;:][a-zA-Z]`),
		message:    "Missing space after punctuation",
		suggestion: "Add space after punctuation marks",
		severity:   SeverityMedium,
	},
	{
		re:         regexp.MustCompile(`\s+[,;:]`),
		message:    "Space before punctuation",
		suggestion: "Remove space before punctuation",
		severity:   SeverityLow,
	},
	{
		re:         regexp.MustCompile(`[a-zA-Z]\(|\)[a-zA-Z]`),
		message:    "Parentheses spacing",
		suggestion: "Check spacing around parentheses",
		severity:   SeverityLow,
	},
}

var styleRules = []patternRule{
	{
		re:         regexp.MustCompile(`(?i)\bvery\s+very\b`),
		message:    "Redundant intensifier",
		suggestion: "Use a single, stronger adjective",
		severity:   SeverityLow,
	},
	{
		re:         regexp.MustCompile(`(?i)\bthat\s+that\b`),
		message:    "Repeated word",
		suggestion: "Remove redundant 'that'",
		severity:   SeverityLow,
	},
	{
		re:         regexp.MustCompile(`(?i)\bin order to\b`),
		message:    "Wordy phrase",
		suggestion: "Consider using 'to' instead",
		severity:   SeverityLow,
	},
	{
		re:         regexp.MustCompile(`(?i)\bdue to the fact that\b`),
		message:    "Wordy phrase",
		suggestion: "Consider using 'because' instead",
		severity:   SeverityLow,
	},
}

type wordRule struct {
	re          *regexp.Regexp
	word        string
	replacement string
	alts        []string
}

var misspellingRules = buildMisspellingRules()
var wordChoiceRules = buildWordChoiceRules()
var redundancyRules = buildRedundancyRules()

func buildMisspellingRules() []wordRule {
	keys := make([]string, 0, len(commonMisspellings))
	for k := range commonMisspellings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rules := make([]wordRule, 0, len(keys))
	for _, k := range keys {
		rules = append(rules, wordRule{
			re:          regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k) + `\b`),
			word:        k,
			replacement: commonMisspellings[k],
		})
	}
	return rules
}

func buildWordChoiceRules() []wordRule {
	keys := make([]string, 0, len(confusedWords))
	for k := range confusedWords {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rules := make([]wordRule, 0, len(keys))
	for _, k := range keys {
		rules = append(rules, wordRule{
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k) + `\b`),
			word: k,
			alts: confusedWords[k],
		})
	}
	return rules
}

func buildRedundancyRules() []wordRule {
	keys := make([]string, 0, len(redundantPhrases))
	for k := range redundantPhrases {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rules := make([]wordRule, 0, len(keys))
	for _, k := range keys {
		rules = append(rules, wordRule{
			re:          regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k) + `\b`),
			word:        k,
			replacement: redundantPhrases[k],
		})
	}
	return rules
}

// DetectErrors 运行全部子检测器并按位置归并结果。
// 同一片段允许被多个检测器命中，互不去重。输出对相同输入稳定。
func DetectErrors(essay string) []WritingError {
	var errs []WritingError
	errs = append(errs, detectSpelling(essay)...)
	errs = append(errs, detectGrammar(essay)...)
	errs = append(errs, detectPunctuation(essay)...)
	errs = append(errs, detectWordChoice(essay)...)
	errs = append(errs, detectStyle(essay)...)
	errs = append(errs, detectCoherence(essay)...)

	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Start != errs[j].Start {
			return errs[i].Start < errs[j].Start
		}
		if errs[i].End != errs[j].End {
			return errs[i].End < errs[j].End
		}
		if errs[i].Type != errs[j].Type {
			return errs[i].Type < errs[j].Type
		}
		return errs[i].Explanation < errs[j].Explanation
	})
	return errs
}

// GroupErrors 按错误类别分桶
func GroupErrors(errs []WritingError) map[string][]WritingError {
	grouped := make(map[string][]WritingError)
	for _, e := range errs {
		grouped[string(e.Type)] = append(grouped[string(e.Type)], e)
	}
	return grouped
}

func detectSpelling(text string) []WritingError {
	var errs []WritingError
	for _, rule := range misspellingRules {
		for _, loc := range rule.re.FindAllStringIndex(text, -1) {
			flagged := text[loc[0]:loc[1]]
			errs = append(errs, WritingError{
				Type:        ErrorSpelling,
				Severity:    SeverityMedium,
				Confidence:  0.9,
				Start:       loc[0],
				End:         loc[1],
				Flagged:     flagged,
				Suggestion:  rule.replacement,
				Explanation: fmt.Sprintf("'%s' should be '%s'", flagged, rule.replacement),
			})
		}
	}
	return errs
}

func detectGrammar(text string) []WritingError {
	var errs []WritingError
	for _, rule := range grammarRules {
		for _, loc := range rule.re.FindAllStringIndex(text, -1) {
			flagged := text[loc[0]:loc[1]]
			errs = append(errs, WritingError{
				Type:        ErrorGrammar,
				Severity:    rule.severity,
				Confidence:  0.8,
				Start:       loc[0],
				End:         loc[1],
				Flagged:     flagged,
				Suggestion:  grammarSuggestion(flagged, rule),
				Explanation: rule.message + ". " + rule.suggestion,
			})
		}
	}
	return errs
}

var (
	areRe  = regexp.MustCompile(`(?i)\bare\b`)
	wereRe = regexp.MustCompile(`(?i)\bwere\b`)
	isRe   = regexp.MustCompile(`(?i)\bis\b`)
	wasRe  = regexp.MustCompile(`(?i)\bwas\b`)
)

// grammarSuggestion 对可机械改写的语法错误给出改写结果，
// 无法改写的返回规则自带的提示
func grammarSuggestion(flagged string, rule patternRule) string {
	switch rule.message {
	case "Incorrect modal verb form":
		return strings.ReplaceAll(strings.ReplaceAll(flagged, "of", "have"), "Of", "Have")
	case "Subject-verb agreement error":
		if strings.Contains(rule.suggestion, "singular") {
			return wereRe.ReplaceAllString(areRe.ReplaceAllString(flagged, "is"), "was")
		}
		return wasRe.ReplaceAllString(isRe.ReplaceAllString(flagged, "are"), "were")
	case "Incorrect preposition":
		return strings.ReplaceAll(flagged, "than", "from")
	case "Incorrect quantifier":
		return strings.ReplaceAll(strings.ReplaceAll(flagged, "less", "fewer"), "Less", "Fewer")
	}
	return rule.suggestion
}

func detectPunctuation(text string) []WritingError {
	var errs []WritingError
	for _, rule := range punctuationRules {
		for _, loc := range rule.re.FindAllStringIndex(text, -1) {
			flagged := text[loc[0]:loc[1]]
			errs = append(errs, WritingError{
				Type:        ErrorPunctuation,
				Severity:    rule.severity,
				Confidence:  0.8,
				Start:       loc[0],
				End:         loc[1],
				Flagged:     flagged,
				Suggestion:  punctuationSuggestion(flagged, rule),
				Explanation: rule.message + ". " + rule.suggestion,
			})
		}
	}
	return errs
}

func punctuationSuggestion(flagged string, rule patternRule) string {
	switch rule.message {
	case "Multiple punctuation marks":
		return flagged[:1]
	case "Missing space after punctuation":
		return flagged[:1] + " " + flagged[1:]
	case "Space before punctuation":
		return strings.TrimLeft(flagged, " \t\n")
	case "Parentheses spacing":
		if strings.Contains(flagged, "(") {
			return flagged[:1] + " ("
		}
		return ") " + flagged[1:]
	}
	return rule.suggestion
}

func detectWordChoice(text string) []WritingError {
	var errs []WritingError
	for _, rule := range wordChoiceRules {
		for _, loc := range rule.re.FindAllStringIndex(text, -1) {
			flagged := text[loc[0]:loc[1]]
			errs = append(errs, WritingError{
				Type:        ErrorWordChoice,
				Severity:    SeverityMedium,
				Confidence:  0.6,
				Start:       loc[0],
				End:         loc[1],
				Flagged:     flagged,
				Suggestion:  contextSuggestion(text, rule.word, rule.alts, loc[0]),
				Explanation: fmt.Sprintf("'%s' might be confused with similar words. Check context.", flagged),
			})
		}
	}
	return errs
}

// contextSuggestion 根据上下文窗口的线索词挑选更可能的替换词
func contextSuggestion(text, word string, alts []string, pos int) string {
	const window = 50
	start := max(0, pos-window)
	end := pos + len(word) + window
	if end > len(text) {
		end = len(text)
	}
	context := strings.ToLower(text[start:end])

	switch {
	case word == "affect" && (strings.Contains(context, "noun") || strings.Contains(context, "result")):
		return "effect"
	case word == "effect" && (strings.Contains(context, "verb") || strings.Contains(context, "influence")):
		return "affect"
	case word == "than" && (strings.Contains(context, "time") || strings.Contains(context, "when")):
		return "then"
	case word == "then" && (strings.Contains(context, "comparison") || strings.Contains(context, "more")):
		return "than"
	}

	if len(alts) > 0 {
		return alts[0]
	}
	return word
}

var passiveRe = regexp.MustCompile(`(?i)\b(is|are|was|were|be|been|being)\s+\w*ed\b`)
var byFollowRe = regexp.MustCompile(`(?i)^\s+by\b`)

func detectStyle(text string) []WritingError {
	var errs []WritingError

	for _, rule := range styleRules {
		for _, loc := range rule.re.FindAllStringIndex(text, -1) {
			flagged := text[loc[0]:loc[1]]
			errs = append(errs, WritingError{
				Type:        ErrorStyle,
				Severity:    rule.severity,
				Confidence:  0.7,
				Start:       loc[0],
				End:         loc[1],
				Flagged:     flagged,
				Suggestion:  styleSuggestion(flagged),
				Explanation: rule.message + ". " + rule.suggestion,
			})
		}
	}

	for _, rule := range redundancyRules {
		for _, loc := range rule.re.FindAllStringIndex(text, -1) {
			errs = append(errs, WritingError{
				Type:        ErrorStyle,
				Severity:    SeverityLow,
				Confidence:  0.8,
				Start:       loc[0],
				End:         loc[1],
				Flagged:     text[loc[0]:loc[1]],
				Suggestion:  rule.replacement,
				Explanation: "This phrase contains redundant words.",
			})
		}
	}

	errs = append(errs, detectWordRepetition(text)...)
	errs = append(errs, detectPassiveVoice(text)...)
	errs = append(errs, detectOverlongSentences(text)...)
	return errs
}

func styleSuggestion(flagged string) string {
	lower := strings.ToLower(flagged)
	switch {
	case strings.Contains(lower, "very very"):
		return "extremely"
	case strings.Contains(lower, "that that"):
		return "that"
	case strings.Contains(lower, "in order to"):
		return strings.ReplaceAll(strings.ReplaceAll(flagged, "in order to", "to"), "In order to", "To")
	case strings.Contains(lower, "due to the fact that"):
		return strings.ReplaceAll(strings.ReplaceAll(flagged, "due to the fact that", "because"), "Due to the fact that", "Because")
	}
	return flagged
}

// detectWordRepetition 统计词频，超长词重复出现超过4次时提示换词。
// 每个词只标记首次出现的位置。
func detectWordRepetition(text string) []WritingError {
	counts := make(map[string]int)
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		counts[w]++
	}

	offenders := make([]string, 0)
	for w, c := range counts {
		if len(w) > 4 && !stopWords[w] && c > 4 {
			offenders = append(offenders, w)
		}
	}
	sort.Strings(offenders)

	var errs []WritingError
	for _, w := range offenders {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		errs = append(errs, WritingError{
			Type:        ErrorStyle,
			Severity:    SeverityLow,
			Confidence:  0.6,
			Start:       loc[0],
			End:         loc[1],
			Flagged:     text[loc[0]:loc[1]],
			Suggestion:  "Use synonyms for variety",
			Explanation: fmt.Sprintf("The word '%s' appears %d times. Consider using synonyms.", w, counts[w]),
		})
	}
	return errs
}

func detectPassiveVoice(text string) []WritingError {
	var errs []WritingError
	for _, loc := range passiveRe.FindAllStringIndex(text, -1) {
		// 后接 by 的被动多为有意为之，跳过
		if byFollowRe.MatchString(text[loc[1]:]) {
			continue
		}
		errs = append(errs, WritingError{
			Type:        ErrorStyle,
			Severity:    SeverityLow,
			Confidence:  0.5,
			Start:       loc[0],
			End:         loc[1],
			Flagged:     text[loc[0]:loc[1]],
			Suggestion:  "Consider active voice",
			Explanation: "Consider rewriting in active voice for more direct expression.",
		})
	}
	return errs
}

const overlongSentenceWords = 40

func detectOverlongSentences(text string) []WritingError {
	var errs []WritingError
	for _, s := range splitSentences(text) {
		if len(wordRe.FindAllString(s, -1)) <= overlongSentenceWords {
			continue
		}
		start := strings.Index(text, s)
		if start < 0 {
			continue
		}
		errs = append(errs, WritingError{
			Type:        ErrorStyle,
			Severity:    SeverityMedium,
			Confidence:  0.7,
			Start:       start,
			End:         start + len(s),
			Flagged:     s,
			Suggestion:  "Break into shorter sentences",
			Explanation: "This sentence is very long and may be hard to follow.",
		})
	}
	return errs
}

// detectCoherence 检查第二段起各段是否以衔接词开头
func detectCoherence(text string) []WritingError {
	paragraphs := splitParagraphs(text)
	if len(paragraphs) <= 1 {
		return nil
	}

	var errs []WritingError
	for i := 1; i < len(paragraphs); i++ {
		p := paragraphs[i]
		if len(p) <= 50 {
			continue
		}

		firstSentence := p
		if idx := strings.Index(p, "."); idx >= 0 {
			firstSentence = p[:idx]
		}

		lower := strings.ToLower(firstSentence)
		hasTransition := false
		for _, t := range coherenceTransitions {
			if strings.Contains(lower, t) {
				hasTransition = true
				break
			}
		}
		if hasTransition {
			continue
		}

		start := strings.Index(text, p)
		if start < 0 {
			continue
		}
		errs = append(errs, WritingError{
			Type:        ErrorCoherence,
			Severity:    SeverityLow,
			Confidence:  0.6,
			Start:       start,
			End:         start + len(firstSentence),
			Flagged:     firstSentence,
			Suggestion:  "Add transition words",
			Explanation: "Consider adding transition words to improve paragraph flow.",
		})
	}
	return errs
}
