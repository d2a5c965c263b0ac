package repository

import (
	"essay_edu_backend/internal/model"

	"gorm.io/gorm"
)

type AnalysisRepository struct {
	DB *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{DB: db}
}

// Create 首次批改写入。同一提交的重复写入由唯一索引拒绝，重批走 Replace。
func (r *AnalysisRepository) Create(analysis *model.EssayAnalysis) error {
	return r.DB.Create(analysis).Error
}

// Replace 重批时覆盖旧结果，删除加新增放在同一事务里
func (r *AnalysisRepository) Replace(analysis *model.EssayAnalysis) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submission_id = ?", analysis.SubmissionID).
			Delete(&model.EssayAnalysis{}).Error; err != nil {
			return err
		}
		return tx.Create(analysis).Error
	})
}

func (r *AnalysisRepository) FindBySubmissionID(submissionID string) (*model.EssayAnalysis, error) {
	var analysis model.EssayAnalysis
	err := r.DB.Where("submission_id = ?", submissionID).First(&analysis).Error
	return &analysis, err
}

// FindRecentByUser 用户最近的批改结果，新在前，用于趋势重算
func (r *AnalysisRepository) FindRecentByUser(userID uint, limit int) ([]model.EssayAnalysis, error) {
	var analyses []model.EssayAnalysis
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&analyses).Error
	return analyses, err
}

func (r *AnalysisRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.EssayAnalysis{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
