package util

import "errors"

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrPromptNotFound      = errors.New("prompt not found")
	ErrPromptNotPublished  = errors.New("prompt not published or not accessible")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrAnalysisNotFound    = errors.New("analysis not found")
	ErrProgressNotFound    = errors.New("progress not found")
	ErrSourceTextNotFound  = errors.New("source text not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
