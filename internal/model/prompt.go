package model

import (
	"time"
)

// EssayGenre 作文体裁
type EssayGenre string

const (
	GenreArgumentative EssayGenre = "argumentative"
	GenreNarrative     EssayGenre = "narrative"
	GenreExpository    EssayGenre = "expository"
	GenreDescriptive   EssayGenre = "descriptive"
)

func ValidGenre(g EssayGenre) bool {
	switch g {
	case GenreArgumentative, GenreNarrative, GenreExpository, GenreDescriptive:
		return true
	}
	return false
}

// swagger:model WritingPrompt
type WritingPrompt struct {
	BaseModel
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"type:text;not null" json:"description"`
	Genre       EssayGenre       `gorm:"size:32;default:'argumentative'" json:"genre"`
	Category    string           `gorm:"size:64;index" json:"category"` // 主题分类，如 education、technology
	Level       ProficiencyLevel `gorm:"type:enum('beginner','intermediate','advanced');default:'intermediate'" json:"level"`
	MinWords    int              `gorm:"default:0" json:"minWords"`
	MaxWords    int              `gorm:"default:0" json:"maxWords"` // 0 表示不限
	Published   bool             `gorm:"default:false" json:"published"`
	PublishedAt *time.Time       `json:"publishedAt,omitempty"`
	ScheduledAt *time.Time       `json:"scheduledAt,omitempty"` // 到点自动发布
	CreatorID   uint             `gorm:"index;type:bigint unsigned" json:"creatorId"`

	SourceTexts []PromptSourceText `gorm:"foreignKey:PromptID" json:"sourceTexts,omitempty"`
}

func (WritingPrompt) TableName() string {
	return "writing_prompts"
}

// PromptSourceText 题目附带的参考阅读材料
type PromptSourceText struct {
	BaseModel
	PromptID   uint   `gorm:"index;type:bigint unsigned" json:"promptId"`
	Name       string `gorm:"size:255;not null" json:"name"`
	URL        string `gorm:"size:512;not null" json:"url"`
	ObjectKey  string `gorm:"size:512" json:"-"` // 存储层对象名，删除时用
	MimeType   string `gorm:"size:100" json:"mimeType"`
	SizeBytes  int64  `gorm:"default:0" json:"sizeBytes"`
	UploaderID uint   `gorm:"index;type:bigint unsigned" json:"uploaderId"`
}

func (PromptSourceText) TableName() string {
	return "prompt_source_texts"
}
