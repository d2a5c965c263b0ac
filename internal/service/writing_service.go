package service

import (
	"context"
	"encoding/json"
	"errors"
	"essay_edu_backend/internal/engine"
	"essay_edu_backend/internal/model"
	"essay_edu_backend/internal/util"
	"essay_edu_backend/pkg/logger"
	"essay_edu_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 存储依赖以窄接口注入，gorm 仓库天然满足，测试用桩替换
type SubmissionStore interface {
	Create(submission *model.EssaySubmission) error
	FindByIDWithAnalysis(id string) (*model.EssaySubmission, error)
	ListByUser(userID uint, page, limit int) ([]model.EssaySubmission, int64, error)
	UpdateStatus(id string, status model.SubmissionStatus) error
}

type AnalysisStore interface {
	Create(analysis *model.EssayAnalysis) error
	Replace(analysis *model.EssayAnalysis) error
	FindBySubmissionID(submissionID string) (*model.EssayAnalysis, error)
}

type PromptFinder interface {
	FindByID(id uint) (*model.WritingPrompt, error)
}

type UserFinder interface {
	FindByID(id uint) (*model.User, error)
}

type ProgressRecorder interface {
	Record(userID uint, scores engine.Scores, wordCount, timeSpentSeconds int, level model.ProficiencyLevel) error
}

// WritingService 作文提交与批改编排。批改本身永远成功（除非输入不合法），
// 落库与进度更新尽力而为，失败只记日志，不影响返回结果。
type WritingService struct {
	Engine      *engine.Engine
	Submissions SubmissionStore
	Analyses    AnalysisStore
	Prompts     PromptFinder
	Users       UserFinder
	Progress    ProgressRecorder
}

func NewWritingService(eng *engine.Engine, submissions SubmissionStore, analyses AnalysisStore,
	prompts PromptFinder, users UserFinder, progress ProgressRecorder) *WritingService {
	return &WritingService{
		Engine:      eng,
		Submissions: submissions,
		Analyses:    analyses,
		Prompts:     prompts,
		Users:       users,
		Progress:    progress,
	}
}

type AnalyzeEssayInput struct {
	UserID           uint
	PromptID         *uint
	Title            string
	Essay            string
	Level            model.ProficiencyLevel // 为空时回落到用户默认水平
	TimeSpentSeconds int
}

type AnalyzeEssayOutput struct {
	Submission *model.EssaySubmission `json:"submission,omitempty"`
	Result     *engine.Result         `json:"result"`
}

// AnalyzeEssay 解析题目、执行批改、落库并更新进度。
// 题目不存在或未发布按非法输入处理；落库失败不阻断返回。
func (s *WritingService) AnalyzeEssay(ctx context.Context, input AnalyzeEssayInput) (*AnalyzeEssayOutput, error) {
	start := time.Now()

	level := input.Level
	if level == "" && s.Users != nil {
		if user, err := s.Users.FindByID(input.UserID); err == nil && user.Level != "" {
			level = user.Level
		}
	}
	if level == "" {
		level = model.LevelIntermediate
	}

	promptText := ""
	if input.PromptID != nil {
		prompt, err := s.Prompts.FindByID(*input.PromptID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &engine.ValidationError{Field: "promptId", Reason: "prompt not found"}
			}
			return nil, err
		}
		if !prompt.Published {
			return nil, &engine.ValidationError{Field: "promptId", Reason: "prompt not published"}
		}
		promptText = prompt.Title + "\n" + prompt.Description
	}

	result, err := s.Engine.Analyze(ctx, engine.Request{
		Essay:  input.Essay,
		Prompt: promptText,
		Level:  string(level),
	})
	if err != nil {
		return nil, err
	}

	monitoring.RecordAnalysis(result.Method, time.Since(start))
	if s.Engine.MLAvailable() && result.Method == engine.MethodRuleBased {
		monitoring.BackendFallbackCounter.Inc()
	}

	submission := s.persistAnalysis(input, level, result)

	if s.Progress != nil {
		if err := s.Progress.Record(input.UserID, result.Scores, result.Statistics.WordCount, input.TimeSpentSeconds, level); err != nil {
			logger.Log.Warn("写作进度更新失败", zap.Uint("user_id", input.UserID), zap.Error(err))
		}
	}

	return &AnalyzeEssayOutput{Submission: submission, Result: result}, nil
}

// persistAnalysis 提交与批改结果落库。任何一步失败只记日志并返回已有部分。
func (s *WritingService) persistAnalysis(input AnalyzeEssayInput, level model.ProficiencyLevel, result *engine.Result) *model.EssaySubmission {
	submission := &model.EssaySubmission{
		UserID:           input.UserID,
		PromptID:         input.PromptID,
		Title:            input.Title,
		Content:          input.Essay,
		Level:            level,
		WordCount:        result.Statistics.WordCount,
		TimeSpentSeconds: input.TimeSpentSeconds,
		Status:           model.SubmissionSubmitted,
	}
	if err := s.Submissions.Create(submission); err != nil {
		logger.Log.Warn("作文提交落库失败，批改结果仍然返回",
			zap.Uint("user_id", input.UserID), zap.Error(err))
		return nil
	}

	analysis := analysisRow(submission.ID, input.UserID, result)
	if err := s.Analyses.Create(analysis); err != nil {
		logger.Log.Warn("批改结果落库失败",
			zap.String("submission_id", submission.ID), zap.Error(err))
		return submission
	}

	if err := s.Submissions.UpdateStatus(submission.ID, model.SubmissionAnalyzed); err != nil {
		logger.Log.Warn("提交状态更新失败",
			zap.String("submission_id", submission.ID), zap.Error(err))
	}
	submission.Status = model.SubmissionAnalyzed
	submission.Analysis = analysis
	return submission
}

func analysisRow(submissionID string, userID uint, result *engine.Result) *model.EssayAnalysis {
	return &model.EssayAnalysis{
		SubmissionID:      submissionID,
		UserID:            userID,
		ContentScore:      result.Scores.Content,
		OrganizationScore: result.Scores.Organization,
		LanguageScore:     result.Scores.Language,
		ConventionsScore:  result.Scores.Conventions,
		OverallScore:      result.Scores.Overall,
		Method:            model.AnalysisMethod(result.Method),
		ErrorCount:        result.ErrorCount,
		Statistics:        toJSON(result.Statistics),
		Errors:            toJSON(result.Errors),
		GroupedErrors:     toJSON(result.GroupedErrors),
		Feedback:          toJSON(result.Feedback),
		Improvements:      toJSON(result.Improvements),
		Structure:         toJSON(result.Structure),
		ProcessingMS:      result.ProcessingMS,
	}
}

// ReanalyzeSubmission 按存量内容重跑批改并覆盖旧结果。
// 进度只在首次批改时累计，重批不再记一篇。
func (s *WritingService) ReanalyzeSubmission(ctx context.Context, requesterID uint, role model.UserRole, submissionID string) (*AnalyzeEssayOutput, error) {
	submission, err := s.GetSubmission(requesterID, role, submissionID)
	if err != nil {
		return nil, err
	}

	promptText := ""
	if submission.PromptID != nil {
		// 题目可能在提交后被下架或删除，取不到就按自由写作重批
		if prompt, perr := s.Prompts.FindByID(*submission.PromptID); perr == nil {
			promptText = prompt.Title + "\n" + prompt.Description
		}
	}

	start := time.Now()
	result, err := s.Engine.Analyze(ctx, engine.Request{
		Essay:  submission.Content,
		Prompt: promptText,
		Level:  string(submission.Level),
	})
	if err != nil {
		var ve *engine.ValidationError
		if errors.As(err, &ve) {
			if uerr := s.Submissions.UpdateStatus(submission.ID, model.SubmissionFailed); uerr != nil {
				logger.Log.Warn("提交状态更新失败",
					zap.String("submission_id", submission.ID), zap.Error(uerr))
			}
		}
		return nil, err
	}

	monitoring.RecordAnalysis(result.Method, time.Since(start))
	if s.Engine.MLAvailable() && result.Method == engine.MethodRuleBased {
		monitoring.BackendFallbackCounter.Inc()
	}

	analysis := analysisRow(submission.ID, submission.UserID, result)
	if err := s.Analyses.Replace(analysis); err != nil {
		logger.Log.Warn("批改结果覆盖失败",
			zap.String("submission_id", submission.ID), zap.Error(err))
		return &AnalyzeEssayOutput{Submission: submission, Result: result}, nil
	}

	if err := s.Submissions.UpdateStatus(submission.ID, model.SubmissionAnalyzed); err != nil {
		logger.Log.Warn("提交状态更新失败",
			zap.String("submission_id", submission.ID), zap.Error(err))
	}
	submission.Status = model.SubmissionAnalyzed
	submission.Analysis = analysis
	return &AnalyzeEssayOutput{Submission: submission, Result: result}, nil
}

// GetSubmission 学生只能看自己的提交，老师和管理员不受限
func (s *WritingService) GetSubmission(requesterID uint, role model.UserRole, id string) (*model.EssaySubmission, error) {
	submission, err := s.Submissions.FindByIDWithAnalysis(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}
	if submission.UserID != requesterID && role == model.Student {
		return nil, util.ErrPermissionDenied
	}
	return submission, nil
}

func (s *WritingService) ListSubmissions(userID uint, page, limit int) ([]model.EssaySubmission, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.Submissions.ListByUser(userID, page, limit)
}

// GetAnalysis 按提交取批改结果，权限规则与 GetSubmission 一致
func (s *WritingService) GetAnalysis(requesterID uint, role model.UserRole, submissionID string) (*model.EssayAnalysis, error) {
	submission, err := s.GetSubmission(requesterID, role, submissionID)
	if err != nil {
		return nil, err
	}
	if submission.Analysis == nil {
		return nil, util.ErrAnalysisNotFound
	}
	return submission.Analysis, nil
}

func toJSON(v interface{}) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
