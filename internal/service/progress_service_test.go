package service

import (
	"context"
	"encoding/json"
	"errors"
	"essay_edu_backend/internal/engine"
	"essay_edu_backend/internal/model"
	"math"
	"sync"
	"testing"

	"gorm.io/gorm"
)

type stubProgressStore struct {
	mu      sync.Mutex
	rows    map[uint]*model.WritingProgress
	saveErr error
}

func newStubProgressStore() *stubProgressStore {
	return &stubProgressStore{rows: make(map[uint]*model.WritingProgress)}
}

func (s *stubProgressStore) FindByUser(userID uint) (*model.WritingProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row, ok := s.rows[userID]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProgressStore) FindOrCreate(userID uint) (*model.WritingProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row, ok := s.rows[userID]; ok {
		return row, nil
	}
	row := &model.WritingProgress{UserID: userID, Trend: model.TrendStable}
	s.rows[userID] = row
	return row, nil
}

func (s *stubProgressStore) Save(progress *model.WritingProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.rows[progress.UserID] = progress
	return nil
}

func uniformScores(overall float64) engine.Scores {
	return engine.Scores{Content: overall, Organization: overall, Language: overall, Conventions: overall, Overall: overall}
}

func decodeHighlights(t *testing.T, raw json.RawMessage) []DimensionHighlight {
	t.Helper()
	var highlights []DimensionHighlight
	if err := json.Unmarshal(raw, &highlights); err != nil {
		t.Fatalf("decode highlights %s: %v", raw, err)
	}
	return highlights
}

func TestRecord_FirstEssay(t *testing.T) {
	store := newStubProgressStore()
	svc := NewProgressService(store, nil)

	scores := engine.Scores{Content: 7, Organization: 6, Language: 5.5, Conventions: 8, Overall: 6.5}
	if err := svc.Record(1, scores, 250, 300, model.LevelIntermediate); err != nil {
		t.Fatalf("Record: %v", err)
	}

	row := store.rows[1]
	if row.TotalEssays != 1 || row.TotalWords != 250 || row.TotalTimeSeconds != 300 {
		t.Fatalf("totals = %d/%d/%d", row.TotalEssays, row.TotalWords, row.TotalTimeSeconds)
	}
	if row.AverageScore != 6.5 || row.BestScore != 6.5 || row.LastScore != 6.5 {
		t.Fatalf("scores = avg %v best %v last %v", row.AverageScore, row.BestScore, row.LastScore)
	}
	if row.ContentAvg != 7 || row.OrganizationAvg != 6 || row.LanguageAvg != 5.5 || row.ConventionsAvg != 8 {
		t.Fatalf("dimension averages = %v/%v/%v/%v", row.ContentAvg, row.OrganizationAvg, row.LanguageAvg, row.ConventionsAvg)
	}
	if row.LastLevel != model.LevelIntermediate {
		t.Fatalf("lastLevel = %q", row.LastLevel)
	}
	if row.Trend != model.TrendStable {
		t.Fatalf("trend = %q, one sample is not a trend", row.Trend)
	}
	if got := decodeRecentScores(row.RecentScores); len(got) != 1 || got[0] != 6.5 {
		t.Fatalf("recentScores = %v", got)
	}
	if row.LastAnalyzedAt == nil {
		t.Fatalf("lastAnalyzedAt not set")
	}

	strengths := decodeHighlights(t, row.Strengths)
	if len(strengths) != 2 || strengths[0].Dimension != "content" || strengths[1].Dimension != "conventions" {
		t.Fatalf("strengths = %+v", strengths)
	}
	weaknesses := decodeHighlights(t, row.Weaknesses)
	if len(weaknesses) != 1 || weaknesses[0].Dimension != "language" {
		t.Fatalf("weaknesses = %+v", weaknesses)
	}
}

func TestRecord_RunningAverageAndBest(t *testing.T) {
	store := newStubProgressStore()
	svc := NewProgressService(store, nil)

	if err := svc.Record(1, uniformScores(6.0), 200, 60, model.LevelIntermediate); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := svc.Record(1, uniformScores(8.0), 300, 120, model.LevelAdvanced); err != nil {
		t.Fatalf("second record: %v", err)
	}

	row := store.rows[1]
	if row.TotalEssays != 2 {
		t.Fatalf("totalEssays = %d, want 2", row.TotalEssays)
	}
	if row.AverageScore != 7.0 {
		t.Fatalf("averageScore = %v, want 7.0", row.AverageScore)
	}
	if row.BestScore != 8.0 || row.LastScore != 8.0 {
		t.Fatalf("best/last = %v/%v, want 8.0/8.0", row.BestScore, row.LastScore)
	}
	if row.TotalWords != 500 || row.TotalTimeSeconds != 180 {
		t.Fatalf("totals = %d words %d seconds", row.TotalWords, row.TotalTimeSeconds)
	}
	if row.LastLevel != model.LevelAdvanced {
		t.Fatalf("lastLevel = %q, want advanced", row.LastLevel)
	}
	if row.ContentAvg != 7.0 {
		t.Fatalf("contentAvg = %v, want 7.0", row.ContentAvg)
	}
}

func TestRecord_TrendTransitions(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   model.WritingTrend
	}{
		{"improving run", []float64{5, 5, 8, 8, 8}, model.TrendImproving},
		{"declining run", []float64{8, 8, 5, 5, 5}, model.TrendDeclining},
		{"too few samples", []float64{6, 9, 9}, model.TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStubProgressStore()
			svc := NewProgressService(store, nil)
			for _, overall := range tt.scores {
				if err := svc.Record(2, uniformScores(overall), 100, 60, model.LevelIntermediate); err != nil {
					t.Fatalf("Record(%v): %v", overall, err)
				}
			}
			if got := store.rows[2].Trend; got != tt.want {
				t.Errorf("trend = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecord_RecentScoresWindow(t *testing.T) {
	store := newStubProgressStore()
	svc := NewProgressService(store, nil)

	for _, overall := range []float64{4, 5, 6, 7, 8, 9, 10} {
		if err := svc.Record(3, uniformScores(overall), 100, 60, model.LevelIntermediate); err != nil {
			t.Fatalf("Record(%v): %v", overall, err)
		}
	}

	got := decodeRecentScores(store.rows[3].RecentScores)
	want := []float64{6, 7, 8, 9, 10}
	if len(got) != len(want) {
		t.Fatalf("window = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("window = %v, want %v", got, want)
		}
	}
	if store.rows[3].BestScore != 10 {
		t.Fatalf("bestScore = %v, want 10", store.rows[3].BestScore)
	}
}

func TestRecord_SaveErrorPropagates(t *testing.T) {
	store := newStubProgressStore()
	store.saveErr = errors.New("deadlock found")
	svc := NewProgressService(store, nil)

	if err := svc.Record(4, uniformScores(6), 100, 60, model.LevelIntermediate); err == nil {
		t.Fatalf("expected save error to propagate")
	}
}

func TestRecord_ConcurrentSameUser(t *testing.T) {
	store := newStubProgressStore()
	svc := NewProgressService(store, nil)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if err := svc.Record(5, uniformScores(6), 100, 60, model.LevelIntermediate); err != nil {
				t.Errorf("Record: %v", err)
			}
		}()
	}
	wg.Wait()

	row := store.rows[5]
	if row.TotalEssays != workers {
		t.Fatalf("totalEssays = %d, want %d", row.TotalEssays, workers)
	}
	if row.TotalWords != int64(workers*100) {
		t.Fatalf("totalWords = %d, want %d", row.TotalWords, workers*100)
	}
	if math.Abs(row.AverageScore-6.0) > 1e-9 {
		t.Fatalf("averageScore = %v, want 6.0", row.AverageScore)
	}
}

func TestTrendOf(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   model.WritingTrend
	}{
		{"empty", nil, model.TrendStable},
		{"three samples", []float64{7, 8, 9}, model.TrendStable},
		{"clear improvement", []float64{5, 5, 8, 8, 8}, model.TrendImproving},
		{"clear decline", []float64{8, 8, 5, 5, 5}, model.TrendDeclining},
		{"flat", []float64{6, 6, 6, 6}, model.TrendStable},
		{"change at threshold", []float64{6, 6, 6.5, 6.5}, model.TrendStable},
		{"just past threshold", []float64{6, 6, 6.6, 6.6}, model.TrendImproving},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trendOf(tt.scores); got != tt.want {
				t.Errorf("trendOf(%v) = %q, want %q", tt.scores, got, tt.want)
			}
		})
	}
}

func TestRunningAvg(t *testing.T) {
	tests := []struct {
		prev, count, next, want float64
	}{
		{0, 0, 6, 6},
		{6, 1, 8, 7},
		{7, 2, 4, 6},
	}
	for _, tt := range tests {
		if got := runningAvg(tt.prev, tt.count, tt.next); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("runningAvg(%v, %v, %v) = %v, want %v", tt.prev, tt.count, tt.next, got, tt.want)
		}
	}
}

func TestGetProgress_EmptyUser(t *testing.T) {
	svc := NewProgressService(newStubProgressStore(), nil)

	overview, err := svc.GetProgress(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if overview.EssaysCompleted != 0 || overview.AverageScore != 0 {
		t.Fatalf("overview = %+v, want zeros", overview)
	}
	if overview.Trend != model.TrendStable {
		t.Fatalf("trend = %q, want stable", overview.Trend)
	}
	if overview.RecentScores == nil || len(overview.RecentScores) != 0 {
		t.Fatalf("recentScores = %v, want empty slice", overview.RecentScores)
	}
	if overview.Strengths == nil || overview.Weaknesses == nil || overview.DimensionAverages == nil {
		t.Fatalf("empty view must not contain nil collections: %+v", overview)
	}
}

func TestGetProgress_ReflectsRecordedData(t *testing.T) {
	store := newStubProgressStore()
	svc := NewProgressService(store, nil)

	if err := svc.Record(6, uniformScores(6.0), 200, 60, model.LevelIntermediate); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := svc.Record(6, uniformScores(8.0), 300, 90, model.LevelIntermediate); err != nil {
		t.Fatalf("Record: %v", err)
	}

	overview, err := svc.GetProgress(context.Background(), 6)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if overview.EssaysCompleted != 2 || overview.AverageScore != 7.0 || overview.BestScore != 8.0 {
		t.Fatalf("overview = %+v", overview)
	}
	if overview.TotalWords != 500 || overview.TotalTimeSeconds != 150 {
		t.Fatalf("totals = %d/%d", overview.TotalWords, overview.TotalTimeSeconds)
	}
	if got := overview.DimensionAverages["content"]; got != 7.0 {
		t.Fatalf("content average = %v, want 7.0", got)
	}
	if len(overview.RecentScores) != 2 || overview.RecentScores[0] != 6 || overview.RecentScores[1] != 8 {
		t.Fatalf("recentScores = %v", overview.RecentScores)
	}
	if overview.Trend != model.TrendStable {
		t.Fatalf("trend = %q, two samples stay stable", overview.Trend)
	}
	// 两篇均分 7.0，四个维度都算长项
	if len(overview.Strengths) != 4 || len(overview.Weaknesses) != 0 {
		t.Fatalf("strengths/weaknesses = %+v / %+v", overview.Strengths, overview.Weaknesses)
	}
	if overview.LastAnalyzedAt == nil {
		t.Fatalf("lastAnalyzedAt missing")
	}
}
