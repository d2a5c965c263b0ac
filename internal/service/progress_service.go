package service

import (
	"context"
	"encoding/json"
	"errors"
	"essay_edu_backend/internal/engine"
	"essay_edu_backend/internal/model"
	"essay_edu_backend/pkg/logger"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	progressCacheKeyPrefix = "writing:progress:"
	progressCacheTTL       = 5 * time.Minute

	recentScoreWindow = 5   // 趋势窗口内保留的总分个数
	trendMinSamples   = 4   // 少于这个数量不下趋势结论
	trendThreshold    = 0.5 // 前后两半均值差超过该值才算有变化
)

type ProgressStore interface {
	FindByUser(userID uint) (*model.WritingProgress, error)
	FindOrCreate(userID uint) (*model.WritingProgress, error)
	Save(progress *model.WritingProgress) error
}

// DimensionHighlight 维度快照条目
type DimensionHighlight struct {
	Dimension    string  `json:"dimension"`
	AverageScore float64 `json:"averageScore"`
}

// ProgressOverview 进度查询结果，趋势从最近成绩现算
type ProgressOverview struct {
	EssaysCompleted   int                    `json:"essaysCompleted"`
	TotalWords        int64                  `json:"totalWords"`
	TotalTimeSeconds  int64                  `json:"totalTimeSeconds"`
	AverageScore      float64                `json:"averageScore"`
	BestScore         float64                `json:"bestScore"`
	LastScore         float64                `json:"lastScore"`
	LastLevel         model.ProficiencyLevel `json:"lastLevel,omitempty"`
	Trend             model.WritingTrend     `json:"trend"`
	DimensionAverages map[string]float64     `json:"dimensionAverages"`
	Strengths         []DimensionHighlight   `json:"strengths"`
	Weaknesses        []DimensionHighlight   `json:"weaknesses"`
	RecentScores      []float64              `json:"recentScores"`
	LastAnalyzedAt    *time.Time             `json:"lastAnalyzedAt,omitempty"`
}

// ProgressService 写作进度维护。每次批改后增量更新，不重算历史；
// 同一用户的更新串行化，避免并发提交把运行平均写花。
type ProgressService struct {
	Store ProgressStore
	Redis *redis.Client // 可为空，空则不走缓存

	locks sync.Map // userID -> *sync.Mutex
}

func NewProgressService(store ProgressStore, rdb *redis.Client) *ProgressService {
	return &ProgressService{Store: store, Redis: rdb}
}

func (s *ProgressService) userLock(userID uint) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Record 把一次批改并入进度：计数与总量累加、运行平均更新、
// 最好/最近成绩、近期成绩窗口与趋势、维度快照。
func (s *ProgressService) Record(userID uint, scores engine.Scores, wordCount, timeSpentSeconds int, level model.ProficiencyLevel) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	progress, err := s.Store.FindOrCreate(userID)
	if err != nil {
		return err
	}

	n := float64(progress.TotalEssays)
	progress.TotalEssays++
	progress.TotalWords += int64(wordCount)
	progress.TotalTimeSeconds += int64(timeSpentSeconds)

	progress.AverageScore = runningAvg(progress.AverageScore, n, scores.Overall)
	progress.ContentAvg = runningAvg(progress.ContentAvg, n, scores.Content)
	progress.OrganizationAvg = runningAvg(progress.OrganizationAvg, n, scores.Organization)
	progress.LanguageAvg = runningAvg(progress.LanguageAvg, n, scores.Language)
	progress.ConventionsAvg = runningAvg(progress.ConventionsAvg, n, scores.Conventions)

	progress.LastScore = scores.Overall
	progress.LastLevel = level
	if scores.Overall > progress.BestScore {
		progress.BestScore = scores.Overall
	}

	recent := appendRecentScore(progress.RecentScores, scores.Overall)
	progress.RecentScores = toJSON(recent)
	progress.Trend = trendOf(recent)

	progress.Strengths = toJSON(dimensionStrengths(progress))
	progress.Weaknesses = toJSON(dimensionWeaknesses(progress))

	now := time.Now()
	progress.LastAnalyzedAt = &now

	if err := s.Store.Save(progress); err != nil {
		return err
	}

	s.invalidateCache(userID)
	return nil
}

// GetProgress 进度总览。先查缓存，没建过进度的用户返回全零视图。
func (s *ProgressService) GetProgress(ctx context.Context, userID uint) (*ProgressOverview, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, progressCacheKey(userID)).Result()
		if err == nil {
			var overview ProgressOverview
			if err := json.Unmarshal([]byte(val), &overview); err == nil {
				return &overview, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("进度缓存读取失败", zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	progress, err := s.Store.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ProgressOverview{
			Trend:             model.TrendStable,
			DimensionAverages: map[string]float64{},
			Strengths:         []DimensionHighlight{},
			Weaknesses:        []DimensionHighlight{},
			RecentScores:      []float64{},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	overview := buildOverview(progress)

	if s.Redis != nil {
		if data, err := json.Marshal(overview); err == nil {
			if err := s.Redis.Set(ctx, progressCacheKey(userID), data, progressCacheTTL).Err(); err != nil {
				logger.Log.Warn("进度缓存写入失败", zap.Uint("user_id", userID), zap.Error(err))
			}
		}
	}

	return overview, nil
}

func buildOverview(progress *model.WritingProgress) *ProgressOverview {
	recent := decodeRecentScores(progress.RecentScores)
	return &ProgressOverview{
		EssaysCompleted:  progress.TotalEssays,
		TotalWords:       progress.TotalWords,
		TotalTimeSeconds: progress.TotalTimeSeconds,
		AverageScore:     progress.AverageScore,
		BestScore:        progress.BestScore,
		LastScore:        progress.LastScore,
		LastLevel:        progress.LastLevel,
		Trend:            trendOf(recent),
		DimensionAverages: map[string]float64{
			"content":      progress.ContentAvg,
			"organization": progress.OrganizationAvg,
			"language":     progress.LanguageAvg,
			"conventions":  progress.ConventionsAvg,
		},
		Strengths:      dimensionStrengths(progress),
		Weaknesses:     dimensionWeaknesses(progress),
		RecentScores:   recent,
		LastAnalyzedAt: progress.LastAnalyzedAt,
	}
}

func (s *ProgressService) invalidateCache(userID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), progressCacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("进度缓存失效失败", zap.Uint("user_id", userID), zap.Error(err))
	}
}

func progressCacheKey(userID uint) string {
	return progressCacheKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}

func runningAvg(prev, count, next float64) float64 {
	return (prev*count + next) / (count + 1)
}

func appendRecentScore(raw json.RawMessage, score float64) []float64 {
	scores := decodeRecentScores(raw)
	scores = append(scores, score)
	if len(scores) > recentScoreWindow {
		scores = scores[len(scores)-recentScoreWindow:]
	}
	return scores
}

func decodeRecentScores(raw json.RawMessage) []float64 {
	var scores []float64
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &scores)
	}
	if scores == nil {
		scores = []float64{}
	}
	return scores
}

// trendOf 窗口前后两半均值对比。样本不足时不下结论。
func trendOf(scores []float64) model.WritingTrend {
	if len(scores) < trendMinSamples {
		return model.TrendStable
	}
	mid := len(scores) / 2
	diff := meanOf(scores[mid:]) - meanOf(scores[:mid])
	switch {
	case diff > trendThreshold:
		return model.TrendImproving
	case diff < -trendThreshold:
		return model.TrendDeclining
	}
	return model.TrendStable
}

func meanOf(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	return sum / float64(len(scores))
}

func dimensionStrengths(progress *model.WritingProgress) []DimensionHighlight {
	return pickDimensions(progress, func(avg float64) bool { return avg >= 7.0 })
}

func dimensionWeaknesses(progress *model.WritingProgress) []DimensionHighlight {
	return pickDimensions(progress, func(avg float64) bool { return avg < 6.0 })
}

func pickDimensions(progress *model.WritingProgress, match func(float64) bool) []DimensionHighlight {
	highlights := []DimensionHighlight{}
	if progress.TotalEssays == 0 {
		return highlights
	}
	for _, d := range []struct {
		name string
		avg  float64
	}{
		{"content", progress.ContentAvg},
		{"organization", progress.OrganizationAvg},
		{"language", progress.LanguageAvg},
		{"conventions", progress.ConventionsAvg},
	} {
		if match(d.avg) {
			highlights = append(highlights, DimensionHighlight{Dimension: d.name, AverageScore: d.avg})
		}
	}
	return highlights
}
