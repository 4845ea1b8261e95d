package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrUsage             = errors.New("usage error")
	ErrInvalidClassifier = errors.New("invalid classifier")
	ErrInvalidExpression = errors.New("invalid match expression")
	ErrFileNotFound      = errors.New("file not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrReadFailed        = errors.New("read failed")
)

// Process exit codes.
// 进程退出码。
const (
	ExitOK    = 0
	ExitIO    = 1
	ExitUsage = 2
)

func NewUsageError(reason string) error {
	return fmt.Errorf("%w: %s", ErrUsage, reason)
}

func NewClassifierError(name string) error {
	return fmt.Errorf("%w: %q (want strict, tolerant or expr)", ErrInvalidClassifier, name)
}

func NewExpressionError(src string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidExpression, src, err)
}

// NewFileError classifies an open or read failure on path.
// NewFileError 对文件打开或读取失败进行分类。
func NewFileError(path string, reason error) error {
	switch {
	case errors.Is(reason, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, reason)
	case errors.Is(reason, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %v", ErrPermissionDenied, path, reason)
	default:
		return fmt.Errorf("%w: %s: %v", ErrReadFailed, path, reason)
	}
}

// IsUsage reports whether err should be answered with the usage text.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidClassifier) ||
		errors.Is(err, ErrInvalidExpression)
}

// ExitCode maps err to the process exit status.
// ExitCode 将错误映射为进程退出状态。
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUsage(err):
		return ExitUsage
	default:
		return ExitIO
	}
}
