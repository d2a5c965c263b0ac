package service

import (
	"context"
	"encoding/json"
	"errors"
	"essay_edu_backend/internal/model"
	"essay_edu_backend/internal/repository"
	"essay_edu_backend/internal/util"
	"essay_edu_backend/pkg/logger"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	promptCacheKeyPrefix = "writing:prompts:"
	promptCacheTTL       = time.Minute // 定时发布按分钟扫，列表缓存跟着这个节奏走
)

// PromptService 写作题目管理：创建、发布（含定时）、参考材料上传。
type PromptService struct {
	PromptRepo *repository.PromptRepository
	Storage    *StorageService
	Redis      *redis.Client
}

func NewPromptService(promptRepo *repository.PromptRepository, storage *StorageService, rdb *redis.Client) *PromptService {
	return &PromptService{
		PromptRepo: promptRepo,
		Storage:    storage,
		Redis:      rdb,
	}
}

type PromptInput struct {
	Title       string                 `json:"title" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Genre       model.EssayGenre       `json:"genre"`
	Category    string                 `json:"category"`
	Level       model.ProficiencyLevel `json:"level"`
	MinWords    int                    `json:"minWords"`
	MaxWords    int                    `json:"maxWords"`
	Publish     bool                   `json:"publish"`
	ScheduledAt *time.Time             `json:"scheduledAt"`
}

func (s *PromptService) CreatePrompt(creatorID uint, input PromptInput) (*model.WritingPrompt, error) {
	if input.Level == "" {
		input.Level = model.LevelIntermediate
	}
	if !model.ValidLevel(input.Level) {
		return nil, errors.New("写作水平取值不合法")
	}
	if input.Genre == "" {
		input.Genre = model.GenreArgumentative
	}
	if !model.ValidGenre(input.Genre) {
		return nil, errors.New("作文体裁取值不合法")
	}
	if input.MinWords < 0 || input.MaxWords < 0 {
		return nil, errors.New("字数限制不能为负数")
	}
	if input.MaxWords > 0 && input.MaxWords < input.MinWords {
		return nil, errors.New("字数上限不能低于下限")
	}

	prompt := &model.WritingPrompt{
		Title:       input.Title,
		Description: input.Description,
		Genre:       input.Genre,
		Category:    input.Category,
		Level:       input.Level,
		MinWords:    input.MinWords,
		MaxWords:    input.MaxWords,
		CreatorID:   creatorID,
	}

	now := time.Now()
	if input.Publish {
		prompt.Published = true
		prompt.PublishedAt = &now
	} else if input.ScheduledAt != nil {
		if input.ScheduledAt.Before(now) {
			return nil, errors.New("定时发布时间必须在将来")
		}
		prompt.ScheduledAt = input.ScheduledAt
	}

	if err := s.PromptRepo.Create(prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

func (s *PromptService) UpdatePrompt(id uint, requesterID uint, role model.UserRole, input PromptInput) (*model.WritingPrompt, error) {
	prompt, err := s.findManaged(id, requesterID, role)
	if err != nil {
		return nil, err
	}

	if input.Level != "" && !model.ValidLevel(input.Level) {
		return nil, errors.New("写作水平取值不合法")
	}
	if input.Genre != "" && !model.ValidGenre(input.Genre) {
		return nil, errors.New("作文体裁取值不合法")
	}
	if input.MaxWords > 0 && input.MaxWords < input.MinWords {
		return nil, errors.New("字数上限不能低于下限")
	}

	prompt.Title = input.Title
	prompt.Description = input.Description
	prompt.Category = input.Category
	prompt.MinWords = input.MinWords
	prompt.MaxWords = input.MaxWords
	if input.Genre != "" {
		prompt.Genre = input.Genre
	}
	if input.Level != "" {
		prompt.Level = input.Level
	}
	if !prompt.Published {
		prompt.ScheduledAt = input.ScheduledAt
	}

	if err := s.PromptRepo.Update(prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

func (s *PromptService) DeletePrompt(id uint, requesterID uint, role model.UserRole) error {
	if _, err := s.findManaged(id, requesterID, role); err != nil {
		return err
	}
	return s.PromptRepo.Delete(id)
}

// GetPrompt 未发布的题目只有老师、管理员能看
func (s *PromptService) GetPrompt(id uint, role model.UserRole) (*model.WritingPrompt, error) {
	prompt, err := s.PromptRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPromptNotFound
		}
		return nil, err
	}
	if !prompt.Published && role == model.Student {
		return nil, util.ErrPromptNotPublished
	}
	return prompt, nil
}

type promptPage struct {
	List  []model.WritingPrompt `json:"list"`
	Total int64                 `json:"total"`
}

// ListPublished 已发布题目列表。缓存只靠短 TTL 过期，不做主动失效。
func (s *PromptService) ListPublished(ctx context.Context, level model.ProficiencyLevel, category string, page, limit int) ([]model.WritingPrompt, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("%spublished:%s:%s:%d:%d", promptCacheKeyPrefix, level, category, page, limit)
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached promptPage
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached.List, cached.Total, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("题目列表缓存读取失败", zap.Error(err))
		}
	}

	prompts, total, err := s.PromptRepo.ListPublished(level, category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(promptPage{List: prompts, Total: total}); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, data, promptCacheTTL).Err(); err != nil {
				logger.Log.Warn("题目列表缓存写入失败", zap.Error(err))
			}
		}
	}
	return prompts, total, nil
}

func (s *PromptService) ListByCreator(creatorID uint, page, limit int) ([]model.WritingPrompt, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.PromptRepo.ListByCreator(creatorID, page, limit)
}

func (s *PromptService) PublishPrompt(id uint, requesterID uint, role model.UserRole) error {
	if _, err := s.findManaged(id, requesterID, role); err != nil {
		return err
	}
	return s.PromptRepo.Publish(id, time.Now())
}

// PublishDueScheduled 把到期的定时题目置为已发布，由后台每分钟调一次。
// 单条失败跳过，下一轮还会扫到。
func (s *PromptService) PublishDueScheduled(now time.Time) int {
	prompts, err := s.PromptRepo.FindDueScheduled(now)
	if err != nil {
		logger.Log.Error("查询定时发布题目失败", zap.Error(err))
		return 0
	}

	published := 0
	for _, p := range prompts {
		if err := s.PromptRepo.Publish(p.ID, now); err != nil {
			logger.Log.Warn("定时发布失败", zap.Uint("prompt_id", p.ID), zap.Error(err))
			continue
		}
		published++
	}
	if published > 0 {
		logger.Log.Info("定时题目发布完成", zap.Int("count", published))
	}
	return published
}

// UploadSourceText 上传题目参考材料，只认 txt/md/pdf
func (s *PromptService) UploadSourceText(ctx context.Context, promptID uint, uploaderID uint, role model.UserRole,
	filename string, reader io.Reader, size int64, contentType string) (*model.PromptSourceText, error) {
	if _, err := s.findManaged(promptID, uploaderID, role); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, e := range util.AllowedSourceTextExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, util.ErrUnsupportedFileType
	}

	// 深度校验文件内容，防止改后缀绕过
	mimeType, err := util.ValidateMimeType(reader, []string{util.MimeText, util.MimePDF})
	if err != nil {
		return nil, util.ErrUnsupportedFileType
	}
	// 重置读取指针
	if seeker, ok := reader.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}
	if contentType == "" {
		contentType = mimeType
	}

	objectKey := fmt.Sprintf("sources/%d/%s-%s", promptID,
		time.Now().Format("20060102150405"),
		strings.ReplaceAll(strings.TrimSuffix(filename, filepath.Ext(filename)), " ", "-")+ext)

	url, err := s.Storage.Upload(ctx, objectKey, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	text := &model.PromptSourceText{
		PromptID:   promptID,
		Name:       filename,
		URL:        url,
		ObjectKey:  objectKey,
		MimeType:   contentType,
		SizeBytes:  size,
		UploaderID: uploaderID,
	}
	if err := s.PromptRepo.AddSourceText(text); err != nil {
		// 落库失败时把已上传的对象清掉
		if delErr := s.Storage.Delete(ctx, objectKey); delErr != nil {
			logger.Log.Warn("清理未登记的参考材料失败", zap.String("object", objectKey), zap.Error(delErr))
		}
		return nil, err
	}
	return text, nil
}

func (s *PromptService) DeleteSourceText(ctx context.Context, promptID, textID uint, requesterID uint, role model.UserRole) error {
	if _, err := s.findManaged(promptID, requesterID, role); err != nil {
		return err
	}

	text, err := s.PromptRepo.FindSourceText(textID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSourceTextNotFound
		}
		return err
	}
	if text.PromptID != promptID {
		return util.ErrSourceTextNotFound
	}

	if err := s.PromptRepo.DeleteSourceText(textID, promptID); err != nil {
		return err
	}

	if text.ObjectKey != "" {
		if err := s.Storage.Delete(ctx, text.ObjectKey); err != nil {
			logger.Log.Warn("删除参考材料对象失败", zap.String("object", text.ObjectKey), zap.Error(err))
		}
	}
	return nil
}

func (s *PromptService) findManaged(id uint, requesterID uint, role model.UserRole) (*model.WritingPrompt, error) {
	prompt, err := s.PromptRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPromptNotFound
		}
		return nil, err
	}
	if role != model.Admin && prompt.CreatorID != requesterID {
		return nil, util.ErrPermissionDenied
	}
	return prompt, nil
}
