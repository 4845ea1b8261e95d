package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestInit tests logger initialization
// TestInit 测试日志初始化
func TestInit(t *testing.T) {
	Init(LoggingConfig{Level: "info"})

	log := Get(nil)
	require.NotNil(t, log)

	// Sync may return error on stderr, which is expected
	// Sync 在 stderr 上可能返回错误，这是预期的
	_ = Sync()
}

// TestInitWithFile tests that a log path routes output through the rotator
// TestInitWithFile 测试日志路径通过轮转器输出
func TestInitWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "failscan.log")
	Init(LoggingConfig{Level: "debug", Path: path, MaxSize: 1})
	t.Cleanup(func() { globalLogger = nil })

	Get(nil).Infow("scan started", "file", "auth.log")
	_ = Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scan started")
	assert.Contains(t, string(data), "auth.log")
}

// TestInitUnwritableDirFallsBackToStderr tests that a log directory failure is reported on stderr
// TestInitUnwritableDirFallsBackToStderr 测试日志目录创建失败时输出到 stderr
func TestInitUnwritableDirFallsBackToStderr(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	stderr, err := os.Create(filepath.Join(tmp, "stderr"))
	require.NoError(t, err)
	savedStderr := os.Stderr
	os.Stderr = stderr
	t.Cleanup(func() {
		os.Stderr = savedStderr
		globalLogger = nil
		_ = stderr.Close()
	})

	Init(LoggingConfig{Level: "warn", Path: filepath.Join(blocker, "sub", "failscan.log")})
	Get(nil).Warn("still logging")
	_ = Sync()

	data, err := os.ReadFile(stderr.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Failed to create log directory")
	assert.Contains(t, string(data), "still logging")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(zapcore.AddSync(&buf), zapcore.WarnLevel)

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

// TestWithContext tests adding logger to context
// TestWithContext 测试将 logger 添加到 context
func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	log := New(zapcore.AddSync(&buf), zapcore.InfoLevel)

	ctx := WithContext(context.Background(), log)
	assert.Same(t, log, Get(ctx))
}

func TestGetWithoutInit(t *testing.T) {
	saved := globalLogger
	globalLogger = nil
	t.Cleanup(func() { globalLogger = saved })

	assert.NotNil(t, Get(context.Background()))
}
