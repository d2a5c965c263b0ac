package repository

import (
	"essay_edu_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type PromptRepository struct {
	DB *gorm.DB
}

func NewPromptRepository(db *gorm.DB) *PromptRepository {
	return &PromptRepository{DB: db}
}

func (r *PromptRepository) Create(prompt *model.WritingPrompt) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prompt).Error; err != nil {
			return err
		}

		for i := range prompt.SourceTexts {
			st := &prompt.SourceTexts[i]
			st.PromptID = prompt.ID
			if st.ID == 0 {
				if err := tx.Create(st).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *PromptRepository) FindByID(id uint) (*model.WritingPrompt, error) {
	var prompt model.WritingPrompt
	err := r.DB.Preload("SourceTexts").First(&prompt, id).Error
	return &prompt, err
}

func (r *PromptRepository) Update(prompt *model.WritingPrompt) error {
	return r.DB.Save(prompt).Error
}

func (r *PromptRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("prompt_id = ?", id).Delete(&model.PromptSourceText{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.WritingPrompt{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListPublished 已发布题目列表，支持按水平、分类过滤和分页
func (r *PromptRepository) ListPublished(level model.ProficiencyLevel, category string, page, limit int) ([]model.WritingPrompt, int64, error) {
	var prompts []model.WritingPrompt
	var total int64

	query := r.DB.Model(&model.WritingPrompt{}).Where("published = ?", true)
	if level != "" {
		query = query.Where("level = ?", level)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("SourceTexts").
		Order("published_at DESC").
		Offset(offset).Limit(limit).
		Find(&prompts).Error

	return prompts, total, err
}

// ListByCreator 作者视角的题目列表，未发布的也包含在内
func (r *PromptRepository) ListByCreator(creatorID uint, page, limit int) ([]model.WritingPrompt, int64, error) {
	var prompts []model.WritingPrompt
	var total int64

	query := r.DB.Model(&model.WritingPrompt{}).Where("creator_id = ?", creatorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("SourceTexts").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&prompts).Error

	return prompts, total, err
}

// Publish 标记题目为已发布
func (r *PromptRepository) Publish(id uint, at time.Time) error {
	result := r.DB.Model(&model.WritingPrompt{}).
		Where("id = ? AND published = ?", id, false).
		Updates(map[string]interface{}{
			"published":    true,
			"published_at": at,
			"scheduled_at": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindDueScheduled 到期待发布的定时题目
func (r *PromptRepository) FindDueScheduled(now time.Time) ([]model.WritingPrompt, error) {
	var prompts []model.WritingPrompt
	err := r.DB.Where("published = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", false, now).
		Find(&prompts).Error
	return prompts, err
}

func (r *PromptRepository) AddSourceText(text *model.PromptSourceText) error {
	return r.DB.Create(text).Error
}

func (r *PromptRepository) FindSourceText(id uint) (*model.PromptSourceText, error) {
	var text model.PromptSourceText
	err := r.DB.First(&text, id).Error
	return &text, err
}

func (r *PromptRepository) DeleteSourceText(id uint, promptID uint) error {
	result := r.DB.Where("id = ? AND prompt_id = ?", id, promptID).Delete(&model.PromptSourceText{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
