package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"
)

// InferenceBackend 可插拔的模型推理后端。Infer 返回四维得分，
// Probe 用于启动时探测可用性。两者都必须尊重 ctx 的超时与取消。
type InferenceBackend interface {
	Infer(ctx context.Context, req Request) (*BackendResult, error)
	Probe(ctx context.Context) error
}

// BackendResult 后端返回的得分部分。错误列表、统计与反馈仍由
// 规则侧生成，模型只参与评分。
type BackendResult struct {
	Content      float64
	Organization float64
	Language     float64
	Conventions  float64
	Overall      float64
}

// backendPayload 推理脚本/服务的线上输出。成功时直接输出分析对象，
// 失败时输出 {"success": false, "error": "..."}。
type backendPayload struct {
	Success        *bool              `json:"success,omitempty"`
	Error          string             `json:"error,omitempty"`
	OverallScore   *float64           `json:"overall_score"`
	DetailedScores map[string]float64 `json:"detailed_scores"`
}

func parseBackendOutput(out []byte) (*BackendResult, error) {
	var payload backendPayload
	if err := json.Unmarshal(out, &payload); err != nil {
		return nil, &BackendError{Kind: BackendMalformed, Err: err}
	}
	if payload.Success != nil && !*payload.Success {
		return nil, &BackendError{Kind: BackendMalformed, Err: errors.New(payload.Error)}
	}
	if payload.OverallScore == nil {
		return nil, &BackendError{Kind: BackendMalformed, Err: errors.New("missing overall_score")}
	}

	result := &BackendResult{Overall: clampScore(*payload.OverallScore)}
	for _, dim := range []struct {
		key string
		dst *float64
	}{
		{"content", &result.Content},
		{"organization", &result.Organization},
		{"language", &result.Language},
		{"conventions", &result.Conventions},
	} {
		v, ok := payload.DetailedScores[dim.key]
		if !ok {
			return nil, &BackendError{Kind: BackendMalformed, Err: fmt.Errorf("missing detailed score %q", dim.key)}
		}
		*dim.dst = clampScore(v)
	}
	return result, nil
}

// ScriptBackend 以子进程方式调用推理脚本：stdin 写入
// {"essay","prompt","level"}，stdout 读取分析 JSON。
// ctx 超时后子进程会被杀掉，不会泄漏。
type ScriptBackend struct {
	PythonBin  string
	ScriptPath string
}

func NewScriptBackend(pythonBin, scriptPath string) *ScriptBackend {
	return &ScriptBackend{PythonBin: pythonBin, ScriptPath: scriptPath}
}

func (b *ScriptBackend) Infer(ctx context.Context, req Request) (*BackendResult, error) {
	payload, err := json.Marshal(map[string]string{
		"essay":  req.Essay,
		"prompt": req.Prompt,
		"level":  req.Level,
	})
	if err != nil {
		return nil, &BackendError{Kind: BackendMalformed, Err: err}
	}

	cmd := exec.CommandContext(ctx, b.PythonBin, b.ScriptPath)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &BackendError{Kind: BackendTimeout, Err: ctx.Err()}
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return nil, &BackendError{Kind: BackendUnavailable, Err: err}
	}
	return parseBackendOutput(stdout.Bytes())
}

// Probe 以 --test 启动脚本，期望输出 ML_MODEL_READY
func (b *ScriptBackend) Probe(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, b.PythonBin, b.ScriptPath, "--test")
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return &BackendError{Kind: BackendTimeout, Err: ctx.Err()}
		}
		return &BackendError{Kind: BackendUnavailable, Err: err}
	}
	if !strings.Contains(string(out), "ML_MODEL_READY") {
		return &BackendError{Kind: BackendMalformed, Err: fmt.Errorf("unexpected probe output: %q", strings.TrimSpace(string(out)))}
	}
	return nil
}

// HTTPBackend 调用独立部署的推理服务，协议与脚本后端一致
type HTTPBackend struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewHTTPBackend(baseURL, apiKey string) *HTTPBackend {
	return &HTTPBackend{BaseURL: strings.TrimRight(baseURL, "/"), APIKey: apiKey, Client: &http.Client{}}
}

func (b *HTTPBackend) Infer(ctx context.Context, req Request) (*BackendResult, error) {
	jsonData, err := json.Marshal(map[string]string{
		"essay":  req.Essay,
		"prompt": req.Prompt,
		"level":  req.Level,
	})
	if err != nil {
		return nil, &BackendError{Kind: BackendMalformed, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", b.BaseURL+"/analyze", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, &BackendError{Kind: BackendUnavailable, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if b.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+b.APIKey)
	}

	resp, err := b.Client.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &BackendError{Kind: BackendTimeout, Err: ctx.Err()}
		}
		return nil, &BackendError{Kind: BackendUnavailable, Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, &BackendError{Kind: BackendUnavailable, Err: fmt.Errorf("inference service status %d: %s", resp.StatusCode, string(body))}
	}
	return parseBackendOutput(body)
}

func (b *HTTPBackend) Probe(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", b.BaseURL+"/health", nil)
	if err != nil {
		return &BackendError{Kind: BackendUnavailable, Err: err}
	}
	if b.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+b.APIKey)
	}

	resp, err := b.Client.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return &BackendError{Kind: BackendTimeout, Err: ctx.Err()}
		}
		return &BackendError{Kind: BackendUnavailable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &BackendError{Kind: BackendUnavailable, Err: fmt.Errorf("inference service status %d", resp.StatusCode)}
	}
	return nil
}
