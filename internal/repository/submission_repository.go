package repository

import (
	"essay_edu_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(submission *model.EssaySubmission) error {
	return r.DB.Create(submission).Error
}

func (r *SubmissionRepository) FindByID(id string) (*model.EssaySubmission, error) {
	var submission model.EssaySubmission
	err := r.DB.Where("id = ?", id).First(&submission).Error
	return &submission, err
}

// FindByIDWithAnalysis 提交详情连同批改结果一次取出
func (r *SubmissionRepository) FindByIDWithAnalysis(id string) (*model.EssaySubmission, error) {
	var submission model.EssaySubmission
	err := r.DB.Preload("Analysis").Where("id = ?", id).First(&submission).Error
	return &submission, err
}

// ListByUser 用户的提交历史，新的在前
func (r *SubmissionRepository) ListByUser(userID uint, page, limit int) ([]model.EssaySubmission, int64, error) {
	var submissions []model.EssaySubmission
	var total int64

	query := r.DB.Model(&model.EssaySubmission{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Analysis").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&submissions).Error

	return submissions, total, err
}

// AllIDs 全量提交ID，按提交时间升序，批量重批脚本用
func (r *SubmissionRepository) AllIDs() ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.EssaySubmission{}).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *SubmissionRepository) UpdateStatus(id string, status model.SubmissionStatus) error {
	return r.DB.Model(&model.EssaySubmission{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}

func (r *SubmissionRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.EssaySubmission{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *SubmissionRepository) CountByPrompt(promptID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.EssaySubmission{}).
		Where("prompt_id = ?", promptID).
		Count(&count).Error
	return count, err
}
