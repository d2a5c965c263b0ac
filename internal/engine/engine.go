package engine

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
)

// MinEssayLength 可批改的最短字符数（按去除首尾空白后计）
const MinEssayLength = 20

// Engine 批改编排器。模型后端可用时走混合评分，
// 任何后端失败都无条件降级为规则批改，单次请求只尝试一次推理。
type Engine struct {
	backend      InferenceBackend
	mlAvailable  bool
	inferTimeout time.Duration
	logger       *zap.Logger
}

// NewEngine mlAvailable 由启动探测得出，作为配置传入，不在运行中翻转
func NewEngine(backend InferenceBackend, mlAvailable bool, inferTimeout time.Duration, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if backend == nil {
		mlAvailable = false
	}
	if inferTimeout <= 0 {
		inferTimeout = 60 * time.Second
	}
	return &Engine{
		backend:      backend,
		mlAvailable:  mlAvailable,
		inferTimeout: inferTimeout,
		logger:       logger,
	}
}

// MLAvailable 模型后端是否参与批改
func (e *Engine) MLAvailable() bool {
	return e.mlAvailable
}

// ProbeBackend 启动时探测后端可用性，返回能力标志。
// 探测失败只降级，不阻止启动。
func ProbeBackend(ctx context.Context, backend InferenceBackend, timeout time.Duration, logger *zap.Logger) bool {
	if backend == nil {
		return false
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := backend.Probe(probeCtx); err != nil {
		logger.Warn("模型后端探测失败，仅使用规则批改", zap.Error(err))
		return false
	}
	return true
}

func ValidLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Analyze 对一篇作文执行完整批改。输入不合法返回 ValidationError，
// 合法输入总能得到完整结果，模型失败不会让调用失败。
func (e *Engine) Analyze(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	if len(strings.TrimSpace(req.Essay)) < MinEssayLength {
		return nil, &ValidationError{
			Field:  "essay",
			Reason: fmt.Sprintf("essay must be at least %d characters", MinEssayLength),
		}
	}
	if req.Level == "" {
		req.Level = LevelIntermediate
	}
	if !ValidLevel(req.Level) {
		return nil, &ValidationError{
			Field:  "level",
			Reason: "level must be beginner, intermediate or advanced",
		}
	}

	stats := ComputeStatistics(req.Essay)
	structure := AnalyzeStructure(req.Essay)
	errs := DetectErrors(req.Essay)
	scores := ScoreEssay(req.Essay, req.Prompt, req.Level, stats, structure, errs)

	method := MethodRuleBased
	if e.mlAvailable && e.backend != nil {
		if ml, err := e.tryInfer(ctx, req); err != nil {
			e.logger.Warn("模型推理失败，降级为规则批改",
				zap.Error(err),
				zap.Int("essay_length", len(req.Essay)))
		} else {
			scores = combineScores(ml, scores)
			method = MethodHybrid
		}
	}

	feedback := GenerateFeedback(scores, stats, errs, req.Level)
	improvements := GenerateImprovements(scores, errs, req.Level)

	return &Result{
		Scores:        scores,
		Statistics:    stats,
		Errors:        errs,
		GroupedErrors: GroupErrors(errs),
		ErrorCount:    len(errs),
		Feedback:      feedback,
		Improvements:  improvements,
		Structure:     structure,
		Method:        method,
		ProcessingMS:  time.Since(start).Milliseconds(),
	}, nil
}

// tryInfer 单次推理，超时由 inferTimeout 限定，不重试
func (e *Engine) tryInfer(ctx context.Context, req Request) (*BackendResult, error) {
	inferCtx, cancel := context.WithTimeout(ctx, e.inferTimeout)
	defer cancel()
	return e.backend.Infer(inferCtx, req)
}

// combineScores 模型分与规则分加权合成。默认模型权重 0.7，
// 两侧分歧超过 2.0 的维度更信任规则侧，模型权重降为 0.4。
func combineScores(ml *BackendResult, rule Scores) Scores {
	combine := func(m, r float64) float64 {
		mlWeight, ruleWeight := 0.7, 0.3
		if math.Abs(m-r) > 2.0 {
			mlWeight, ruleWeight = 0.4, 0.6
		}
		return round1(clampScore(m*mlWeight + r*ruleWeight))
	}

	s := Scores{
		Content:      combine(ml.Content, rule.Content),
		Organization: combine(ml.Organization, rule.Organization),
		Language:     combine(ml.Language, rule.Language),
		Conventions:  combine(ml.Conventions, rule.Conventions),
	}
	s.Overall = round1((s.Content + s.Organization + s.Language + s.Conventions) / 4)
	return s
}
