package model

import (
	"encoding/json"
	"time"
)

// WritingTrend 近期成绩走势
type WritingTrend string

const (
	TrendImproving WritingTrend = "improving"
	TrendStable    WritingTrend = "stable"
	TrendDeclining WritingTrend = "declining"
)

// WritingProgress 学生写作进度汇总，每个用户一行，随每次批改增量更新。
type WritingProgress struct {
	BaseModel
	UserID           uint             `gorm:"uniqueIndex;type:bigint unsigned" json:"userId"`
	TotalEssays      int              `gorm:"default:0" json:"totalEssays"`
	TotalWords       int64            `gorm:"default:0" json:"totalWords"`
	TotalTimeSeconds int64            `gorm:"default:0" json:"totalTimeSeconds"`
	AverageScore     float64          `gorm:"type:decimal(4,2);default:0" json:"averageScore"`
	BestScore        float64          `gorm:"type:decimal(3,1);default:0" json:"bestScore"`
	LastScore        float64          `gorm:"type:decimal(3,1);default:0" json:"lastScore"`
	LastLevel        ProficiencyLevel `gorm:"size:20" json:"lastLevel,omitempty"` // 最近一次批改的水平

	ContentAvg      float64 `gorm:"type:decimal(4,2);default:0" json:"contentAvg"`
	OrganizationAvg float64 `gorm:"type:decimal(4,2);default:0" json:"organizationAvg"`
	LanguageAvg     float64 `gorm:"type:decimal(4,2);default:0" json:"languageAvg"`
	ConventionsAvg  float64 `gorm:"type:decimal(4,2);default:0" json:"conventionsAvg"`

	Trend          WritingTrend    `gorm:"size:20;default:'stable'" json:"trend"`
	RecentScores   json.RawMessage `gorm:"type:json" json:"recentScores,omitempty"` // 最近5次总分，新在后
	Strengths      json.RawMessage `gorm:"type:json" json:"strengths,omitempty"`    // 维度均分≥7的长项快照
	Weaknesses     json.RawMessage `gorm:"type:json" json:"weaknesses,omitempty"`   // 维度均分<6的短板快照
	LastAnalyzedAt *time.Time      `json:"lastAnalyzedAt,omitempty"`
}

func (WritingProgress) TableName() string {
	return "writing_progress"
}
