package repository

import (
	"errors"
	"essay_edu_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUser(userID uint) (*model.WritingProgress, error) {
	var progress model.WritingProgress
	err := r.DB.Where("user_id = ?", userID).First(&progress).Error
	return &progress, err
}

// FindOrCreate 不存在时建一条空进度，避免首篇提交时读写竞态
func (r *ProgressRepository) FindOrCreate(userID uint) (*model.WritingProgress, error) {
	var progress model.WritingProgress
	err := r.DB.Where("user_id = ?", userID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = model.WritingProgress{UserID: userID, Trend: model.TrendStable}
		if err := r.DB.Create(&progress).Error; err != nil {
			// 并发下可能已被别的请求创建，读回即可
			if readErr := r.DB.Where("user_id = ?", userID).First(&progress).Error; readErr != nil {
				return nil, err
			}
		}
		return &progress, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) Save(progress *model.WritingProgress) error {
	return r.DB.Save(progress).Error
}
