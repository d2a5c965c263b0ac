package model

// SubmissionStatus 作文提交状态
type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionAnalyzed  SubmissionStatus = "analyzed"
	SubmissionFailed    SubmissionStatus = "failed"
)

// swagger:model EssaySubmission
type EssaySubmission struct {
	UUIDBase
	UserID           uint             `gorm:"index;type:bigint unsigned" json:"userId"`
	PromptID         *uint            `gorm:"index;type:bigint unsigned" json:"promptId,omitempty"` // 为空表示自由写作
	Title            string           `gorm:"size:255" json:"title"`
	Content          string           `gorm:"type:longtext;not null" json:"content"`
	Level            ProficiencyLevel `gorm:"type:enum('beginner','intermediate','advanced');default:'intermediate'" json:"level"`
	WordCount        int              `gorm:"default:0" json:"wordCount"`
	TimeSpentSeconds int              `gorm:"default:0" json:"timeSpentSeconds"` // 学生作答用时
	Status           SubmissionStatus `gorm:"size:20;default:'submitted'" json:"status"`

	Analysis *EssayAnalysis `gorm:"foreignKey:SubmissionID" json:"analysis,omitempty"`
}

func (EssaySubmission) TableName() string {
	return "essay_submissions"
}
