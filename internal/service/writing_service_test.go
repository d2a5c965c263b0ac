package service

import (
	"context"
	"errors"
	"essay_edu_backend/internal/engine"
	"essay_edu_backend/internal/model"
	"essay_edu_backend/internal/util"
	"essay_edu_backend/pkg/logger"
	"fmt"
	"os"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

const testEssay = `Technology has changed how students learn to write. Teachers now assign drafts online and expect quick revisions from everyone in the class.

However, the basics of good writing stay the same. In conclusion, clear thinking still matters more than any tool.`

type stubSubmissions struct {
	created       []*model.EssaySubmission
	createErr     error
	statusUpdates map[string]model.SubmissionStatus
	byID          map[string]*model.EssaySubmission
	listPage      int
	listLimit     int
}

func (s *stubSubmissions) Create(sub *model.EssaySubmission) error {
	if s.createErr != nil {
		return s.createErr
	}
	if sub.ID == "" {
		sub.ID = fmt.Sprintf("sub-%d", len(s.created)+1)
	}
	s.created = append(s.created, sub)
	return nil
}

func (s *stubSubmissions) FindByIDWithAnalysis(id string) (*model.EssaySubmission, error) {
	if sub, ok := s.byID[id]; ok {
		return sub, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubSubmissions) ListByUser(userID uint, page, limit int) ([]model.EssaySubmission, int64, error) {
	s.listPage, s.listLimit = page, limit
	return []model.EssaySubmission{}, 0, nil
}

func (s *stubSubmissions) UpdateStatus(id string, status model.SubmissionStatus) error {
	if s.statusUpdates == nil {
		s.statusUpdates = make(map[string]model.SubmissionStatus)
	}
	s.statusUpdates[id] = status
	return nil
}

type stubAnalyses struct {
	created    []*model.EssayAnalysis
	createErr  error
	replaced   []*model.EssayAnalysis
	replaceErr error
}

func (s *stubAnalyses) Create(a *model.EssayAnalysis) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, a)
	return nil
}

func (s *stubAnalyses) Replace(a *model.EssayAnalysis) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.replaced = append(s.replaced, a)
	return nil
}

func (s *stubAnalyses) FindBySubmissionID(submissionID string) (*model.EssayAnalysis, error) {
	for _, a := range s.created {
		if a.SubmissionID == submissionID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubPrompts struct {
	prompts map[uint]*model.WritingPrompt
}

func (s *stubPrompts) FindByID(id uint) (*model.WritingPrompt, error) {
	if p, ok := s.prompts[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubUsers struct {
	users map[uint]*model.User
}

func (s *stubUsers) FindByID(id uint) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type progressRecord struct {
	userID    uint
	scores    engine.Scores
	wordCount int
	timeSpent int
	level     model.ProficiencyLevel
}

type stubProgress struct {
	records []progressRecord
	err     error
}

func (s *stubProgress) Record(userID uint, scores engine.Scores, wordCount, timeSpentSeconds int, level model.ProficiencyLevel) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, progressRecord{userID, scores, wordCount, timeSpentSeconds, level})
	return nil
}

func newTestWritingService() (*WritingService, *stubSubmissions, *stubAnalyses, *stubPrompts, *stubProgress) {
	subs := &stubSubmissions{}
	analyses := &stubAnalyses{}
	prompts := &stubPrompts{prompts: map[uint]*model.WritingPrompt{}}
	progress := &stubProgress{}
	users := &stubUsers{users: map[uint]*model.User{}}

	eng := engine.NewEngine(nil, false, 0, nil)
	svc := NewWritingService(eng, subs, analyses, prompts, users, progress)
	return svc, subs, analyses, prompts, progress
}

func TestAnalyzeEssay_PersistsAndRecordsProgress(t *testing.T) {
	svc, subs, analyses, prompts, progress := newTestWritingService()
	promptID := uint(1)
	prompts.prompts[promptID] = &model.WritingPrompt{
		Title:       "Technology in Education",
		Description: "Discuss how technology changes modern education.",
		Published:   true,
	}

	out, err := svc.AnalyzeEssay(context.Background(), AnalyzeEssayInput{
		UserID:           7,
		PromptID:         &promptID,
		Title:            "My Essay",
		Essay:            testEssay,
		Level:            model.LevelIntermediate,
		TimeSpentSeconds: 900,
	})
	if err != nil {
		t.Fatalf("AnalyzeEssay: %v", err)
	}
	if out.Result == nil || out.Result.Method != engine.MethodRuleBased {
		t.Fatalf("result = %+v", out.Result)
	}

	if out.Submission == nil || out.Submission.ID == "" {
		t.Fatalf("submission not persisted: %+v", out.Submission)
	}
	if out.Submission.Status != model.SubmissionAnalyzed {
		t.Fatalf("status = %q, want analyzed", out.Submission.Status)
	}
	if out.Submission.WordCount != out.Result.Statistics.WordCount || out.Submission.WordCount == 0 {
		t.Fatalf("wordCount = %d, statistics say %d", out.Submission.WordCount, out.Result.Statistics.WordCount)
	}
	if out.Submission.TimeSpentSeconds != 900 {
		t.Fatalf("timeSpent = %d, want 900", out.Submission.TimeSpentSeconds)
	}

	if len(analyses.created) != 1 {
		t.Fatalf("analyses created = %d, want 1", len(analyses.created))
	}
	analysis := analyses.created[0]
	if analysis.SubmissionID != out.Submission.ID || analysis.UserID != 7 {
		t.Fatalf("analysis keys = %+v", analysis)
	}
	if analysis.OverallScore != out.Result.Scores.Overall {
		t.Fatalf("overall = %v, want %v", analysis.OverallScore, out.Result.Scores.Overall)
	}
	if analysis.Method != model.MethodRuleBased {
		t.Fatalf("method = %q", analysis.Method)
	}
	if len(analysis.Feedback) == 0 || len(analysis.Statistics) == 0 {
		t.Fatalf("analysis payloads not serialized: %+v", analysis)
	}

	if got := subs.statusUpdates[out.Submission.ID]; got != model.SubmissionAnalyzed {
		t.Fatalf("status update = %q", got)
	}

	if len(progress.records) != 1 {
		t.Fatalf("progress records = %d, want 1", len(progress.records))
	}
	rec := progress.records[0]
	if rec.userID != 7 || rec.wordCount != out.Result.Statistics.WordCount || rec.timeSpent != 900 || rec.level != model.LevelIntermediate {
		t.Fatalf("progress record = %+v", rec)
	}
}

func TestAnalyzeEssay_UnknownPromptRejected(t *testing.T) {
	svc, subs, _, _, progress := newTestWritingService()
	missing := uint(99)

	_, err := svc.AnalyzeEssay(context.Background(), AnalyzeEssayInput{
		UserID:   1,
		PromptID: &missing,
		Essay:    testEssay,
	})
	var ve *engine.ValidationError
	if !errors.As(err, &ve) || ve.Field != "promptId" {
		t.Fatalf("expected promptId validation error, got %v", err)
	}
	if len(subs.created) != 0 || len(progress.records) != 0 {
		t.Fatalf("nothing should be persisted on rejection")
	}
}

func TestAnalyzeEssay_UnpublishedPromptRejected(t *testing.T) {
	svc, _, _, prompts, _ := newTestWritingService()
	promptID := uint(2)
	prompts.prompts[promptID] = &model.WritingPrompt{Title: "Draft", Description: "...", Published: false}

	_, err := svc.AnalyzeEssay(context.Background(), AnalyzeEssayInput{
		UserID:   1,
		PromptID: &promptID,
		Essay:    testEssay,
	})
	var ve *engine.ValidationError
	if !errors.As(err, &ve) || ve.Field != "promptId" {
		t.Fatalf("expected promptId validation error, got %v", err)
	}
}

func TestAnalyzeEssay_ShortEssayRejected(t *testing.T) {
	svc, subs, analyses, _, progress := newTestWritingService()

	_, err := svc.AnalyzeEssay(context.Background(), AnalyzeEssayInput{UserID: 1, Essay: "too short"})
	var ve *engine.ValidationError
	if !errors.As(err, &ve) || ve.Field != "essay" {
		t.Fatalf("expected essay validation error, got %v", err)
	}
	if len(subs.created) != 0 || len(analyses.created) != 0 || len(progress.records) != 0 {
		t.Fatalf("nothing should be persisted on rejection")
	}
}

func TestAnalyzeEssay_PersistenceFailureStillReturnsResult(t *testing.T) {
	svc, subs, analyses, _, progress := newTestWritingService()
	subs.createErr = errors.New("mysql is down")

	out, err := svc.AnalyzeEssay(context.Background(), AnalyzeEssayInput{
		UserID:           3,
		Essay:            testEssay,
		Level:            model.LevelIntermediate,
		TimeSpentSeconds: 60,
	})
	if err != nil {
		t.Fatalf("persistence failure must not fail the analysis: %v", err)
	}
	if out.Result == nil {
		t.Fatalf("result missing")
	}
	if out.Submission != nil {
		t.Fatalf("submission should be nil when the insert failed, got %+v", out.Submission)
	}
	if len(analyses.created) != 0 {
		t.Fatalf("analysis must not be written without a submission row")
	}
	// 进度更新与提交落库相互独立
	if len(progress.records) != 1 {
		t.Fatalf("progress records = %d, want 1", len(progress.records))
	}
}

func TestAnalyzeEssay_AnalysisPersistFailureKeepsSubmission(t *testing.T) {
	svc, subs, analyses, _, _ := newTestWritingService()
	analyses.createErr = errors.New("json column too large")

	out, err := svc.AnalyzeEssay(context.Background(), AnalyzeEssayInput{
		UserID: 4,
		Essay:  testEssay,
	})
	if err != nil {
		t.Fatalf("AnalyzeEssay: %v", err)
	}
	if out.Submission == nil || out.Submission.Status != model.SubmissionSubmitted {
		t.Fatalf("submission = %+v, want kept in submitted state", out.Submission)
	}
	if out.Submission.Analysis != nil {
		t.Fatalf("analysis should not be attached when persist failed")
	}
	if len(subs.statusUpdates) != 0 {
		t.Fatalf("status must stay submitted, got updates %v", subs.statusUpdates)
	}
}

func TestAnalyzeEssay_LevelFallsBackToUserDefault(t *testing.T) {
	subs := &stubSubmissions{}
	analyses := &stubAnalyses{}
	prompts := &stubPrompts{prompts: map[uint]*model.WritingPrompt{}}
	progress := &stubProgress{}
	users := &stubUsers{users: map[uint]*model.User{
		5: {Level: model.LevelAdvanced},
	}}
	svc := NewWritingService(engine.NewEngine(nil, false, 0, nil), subs, analyses, prompts, users, progress)

	out, err := svc.AnalyzeEssay(context.Background(), AnalyzeEssayInput{UserID: 5, Essay: testEssay})
	if err != nil {
		t.Fatalf("AnalyzeEssay: %v", err)
	}
	if out.Submission.Level != model.LevelAdvanced {
		t.Fatalf("submission level = %q, want advanced from user profile", out.Submission.Level)
	}
	if progress.records[0].level != model.LevelAdvanced {
		t.Fatalf("progress level = %q, want advanced", progress.records[0].level)
	}
}

func TestReanalyzeSubmission_OverwritesAnalysis(t *testing.T) {
	svc, subs, analyses, _, progress := newTestWritingService()
	gone := uint(404) // 提交后题目被删除的场景
	subs.byID = map[string]*model.EssaySubmission{
		"sub-1": {
			UUIDBase: model.UUIDBase{ID: "sub-1"},
			UserID:   10,
			PromptID: &gone,
			Content:  testEssay,
			Level:    model.LevelIntermediate,
			Status:   model.SubmissionAnalyzed,
			Analysis: &model.EssayAnalysis{OverallScore: 5.0},
		},
	}

	out, err := svc.ReanalyzeSubmission(context.Background(), 10, model.Student, "sub-1")
	if err != nil {
		t.Fatalf("ReanalyzeSubmission: %v", err)
	}
	if len(analyses.replaced) != 1 || len(analyses.created) != 0 {
		t.Fatalf("replaced/created = %d/%d, want 1/0", len(analyses.replaced), len(analyses.created))
	}
	if analyses.replaced[0].OverallScore != out.Result.Scores.Overall {
		t.Fatalf("stored overall = %v, result says %v", analyses.replaced[0].OverallScore, out.Result.Scores.Overall)
	}
	if out.Submission.Analysis != analyses.replaced[0] {
		t.Fatalf("submission should carry the new analysis")
	}
	if got := subs.statusUpdates["sub-1"]; got != model.SubmissionAnalyzed {
		t.Fatalf("status update = %q", got)
	}
	// 重批不重复累计进度
	if len(progress.records) != 0 {
		t.Fatalf("progress must not be recorded twice, got %d records", len(progress.records))
	}
}

func TestReanalyzeSubmission_OwnershipEnforced(t *testing.T) {
	svc, subs, analyses, _, _ := newTestWritingService()
	subs.byID = map[string]*model.EssaySubmission{
		"sub-1": {UUIDBase: model.UUIDBase{ID: "sub-1"}, UserID: 10, Content: testEssay},
	}

	if _, err := svc.ReanalyzeSubmission(context.Background(), 11, model.Student, "sub-1"); err != util.ErrPermissionDenied {
		t.Fatalf("foreign student reanalyze: %v, want permission denied", err)
	}
	if _, err := svc.ReanalyzeSubmission(context.Background(), 11, model.Teacher, "sub-1"); err != nil {
		t.Fatalf("teacher reanalyze: %v", err)
	}
	if len(analyses.replaced) != 1 {
		t.Fatalf("replaced = %d, want 1", len(analyses.replaced))
	}
}

func TestGetSubmission_Ownership(t *testing.T) {
	svc, subs, _, _, _ := newTestWritingService()
	subs.byID = map[string]*model.EssaySubmission{
		"sub-1": {UUIDBase: model.UUIDBase{ID: "sub-1"}, UserID: 10},
	}

	if _, err := svc.GetSubmission(10, model.Student, "sub-1"); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if _, err := svc.GetSubmission(11, model.Student, "sub-1"); err != util.ErrPermissionDenied {
		t.Fatalf("foreign student read: %v, want permission denied", err)
	}
	if _, err := svc.GetSubmission(11, model.Teacher, "sub-1"); err != nil {
		t.Fatalf("teacher read: %v", err)
	}
	if _, err := svc.GetSubmission(10, model.Student, "nope"); err != util.ErrSubmissionNotFound {
		t.Fatalf("missing id: %v, want not found", err)
	}
}

func TestGetAnalysis(t *testing.T) {
	svc, subs, _, _, _ := newTestWritingService()
	subs.byID = map[string]*model.EssaySubmission{
		"bare":     {UUIDBase: model.UUIDBase{ID: "bare"}, UserID: 1},
		"analyzed": {UUIDBase: model.UUIDBase{ID: "analyzed"}, UserID: 1, Analysis: &model.EssayAnalysis{OverallScore: 7.5}},
	}

	if _, err := svc.GetAnalysis(1, model.Student, "bare"); err != util.ErrAnalysisNotFound {
		t.Fatalf("bare submission: %v, want analysis not found", err)
	}
	analysis, err := svc.GetAnalysis(1, model.Student, "analyzed")
	if err != nil || analysis.OverallScore != 7.5 {
		t.Fatalf("analysis = %+v, err = %v", analysis, err)
	}
}

func TestListSubmissions_NormalizesPaging(t *testing.T) {
	svc, subs, _, _, _ := newTestWritingService()

	if _, _, err := svc.ListSubmissions(1, 0, 500); err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}
	if subs.listPage != 1 || subs.listLimit != 10 {
		t.Fatalf("page/limit = %d/%d, want 1/10", subs.listPage, subs.listLimit)
	}
}
