package engine

import "fmt"

// ValidationError 输入不合法，直接抛给调用方，不触发规则回退
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// BackendFailureKind ML 后端失败分类
type BackendFailureKind string

const (
	BackendUnavailable BackendFailureKind = "unavailable"
	BackendTimeout     BackendFailureKind = "timeout"
	BackendMalformed   BackendFailureKind = "malformed_output"
)

// BackendError ML 后端调用失败。编排器内部消化并降级为规则批改，
// 不会作为 Analyze 的失败返回。
type BackendError struct {
	Kind BackendFailureKind
	Err  error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ml backend %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("ml backend %s", e.Kind)
}

func (e *BackendError) Unwrap() error { return e.Err }
