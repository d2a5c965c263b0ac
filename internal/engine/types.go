// Package engine 实现作文自动批改的核心逻辑：文本统计、错误检测、
// 四维评分、反馈生成，以及可选 ML 后端的编排与规则回退。
// 包内不依赖数据库与 Web 框架，所有函数对相同输入产生相同输出。
package engine

// ErrorType 错误类别
type ErrorType string

const (
	ErrorSpelling    ErrorType = "spelling"
	ErrorGrammar     ErrorType = "grammar"
	ErrorPunctuation ErrorType = "punctuation"
	ErrorWordChoice  ErrorType = "word_choice"
	ErrorStyle       ErrorType = "style"
	ErrorCoherence   ErrorType = "coherence"
)

// Severity 错误严重程度
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// WritingError 定位到原文的一条批改意见。
// Start/End 为字节偏移，End 开区间，essay[Start:End] == Flagged。
type WritingError struct {
	Type        ErrorType `json:"type"`
	Severity    Severity  `json:"severity"`
	Confidence  float64   `json:"confidence"`
	Start       int       `json:"start"`
	End         int       `json:"end"`
	Flagged     string    `json:"flagged"`
	Suggestion  string    `json:"suggestion"`
	Explanation string    `json:"explanation"`
}

// Statistics 文本统计指标
type Statistics struct {
	WordCount              int     `json:"wordCount"`
	SentenceCount          int     `json:"sentenceCount"`
	ParagraphCount         int     `json:"paragraphCount"`
	CharacterCount         int     `json:"characterCount"`
	CharacterCountNoSpaces int     `json:"characterCountNoSpaces"`
	UniqueWordCount        int     `json:"uniqueWordCount"`
	AvgWordsPerSentence    float64 `json:"avgWordsPerSentence"`
	AvgSentencesPerPara    float64 `json:"avgSentencesPerParagraph"`
	VocabularyDiversity    float64 `json:"vocabularyDiversity"`
	ReadingTimeMinutes     int     `json:"readingTimeMinutes"`
	AcademicWordCount      int     `json:"academicWordCount"`
	TransitionWordCount    int     `json:"transitionWordCount"`
	ComplexSentenceCount   int     `json:"complexSentenceCount"`
}

// Structure 篇章结构分析结果
type Structure struct {
	HasIntroduction  bool   `json:"hasIntroduction"`
	HasConclusion    bool   `json:"hasConclusion"`
	HasThesis        bool   `json:"hasThesis"`
	BodyParagraphs   int    `json:"bodyParagraphs"`
	TransitionCount  int    `json:"transitionCount"`
	ParagraphBalance string `json:"paragraphBalance"`
}

// Scores 四维得分与总分，均为 1.0–10.0 保留一位小数
type Scores struct {
	Content      float64 `json:"content"`
	Organization float64 `json:"organization"`
	Language     float64 `json:"language"`
	Conventions  float64 `json:"conventions"`
	Overall      float64 `json:"overall"`
}

// Feedback 整体评语、优点、待改进与针对性建议
type Feedback struct {
	Overall             string   `json:"overall"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Suggestions         []string `json:"suggestions"`
	LevelSpecific       []string `json:"levelSpecific,omitempty"`
}

// Improvement 某一维度的改进计划
type Improvement struct {
	Area        string   `json:"area"`
	Priority    string   `json:"priority"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
}

// Request 一次批改请求
type Request struct {
	Essay  string `json:"essay"`
	Prompt string `json:"prompt"`
	Level  string `json:"level"`
}

// Result 一次批改的完整结果
type Result struct {
	Scores        Scores                    `json:"scores"`
	Statistics    Statistics                `json:"statistics"`
	Errors        []WritingError            `json:"errors"`
	GroupedErrors map[string][]WritingError `json:"groupedErrors"`
	ErrorCount    int                       `json:"errorCount"`
	Feedback      Feedback                  `json:"feedback"`
	Improvements  []Improvement             `json:"improvements"`
	Structure     Structure                 `json:"structure"`
	Method        string                    `json:"method"`
	ProcessingMS  int64                     `json:"processingMs"`
}

// 水平常量与合法性校验（与 model 包保持一致的取值）
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// 批改方式
const (
	MethodML        = "ml"
	MethodRuleBased = "rule_based"
	MethodHybrid    = "hybrid"
)
