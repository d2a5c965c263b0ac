package model

import (
	"encoding/json"
)

// AnalysisMethod 批改结果的产生方式
type AnalysisMethod string

const (
	MethodML        AnalysisMethod = "ml"
	MethodRuleBased AnalysisMethod = "rule_based"
	MethodHybrid    AnalysisMethod = "hybrid"
)

// swagger:model EssayAnalysis
type EssayAnalysis struct {
	UUIDBase
	SubmissionID string `gorm:"uniqueIndex;type:varchar(36)" json:"submissionId"`
	UserID       uint   `gorm:"index;type:bigint unsigned" json:"userId"`

	ContentScore      float64 `gorm:"type:decimal(3,1);default:0" json:"contentScore"`
	OrganizationScore float64 `gorm:"type:decimal(3,1);default:0" json:"organizationScore"`
	LanguageScore     float64 `gorm:"type:decimal(3,1);default:0" json:"languageScore"`
	ConventionsScore  float64 `gorm:"type:decimal(3,1);default:0" json:"conventionsScore"`
	OverallScore      float64 `gorm:"type:decimal(3,1);default:0" json:"overallScore"`

	Method     AnalysisMethod `gorm:"size:20;default:'rule_based'" json:"method"`
	ErrorCount int            `gorm:"default:0" json:"errorCount"`

	Statistics    json.RawMessage `gorm:"type:json" json:"statistics,omitempty"`
	Errors        json.RawMessage `gorm:"type:json" json:"errors,omitempty"`
	GroupedErrors json.RawMessage `gorm:"type:json" json:"groupedErrors,omitempty"`
	Feedback      json.RawMessage `gorm:"type:json" json:"feedback,omitempty"`
	Improvements  json.RawMessage `gorm:"type:json" json:"improvements,omitempty"`
	Structure     json.RawMessage `gorm:"type:json" json:"structure,omitempty"`

	ProcessingMS int64 `gorm:"default:0" json:"processingMs"`
}

func (EssayAnalysis) TableName() string {
	return "essay_analyses"
}
