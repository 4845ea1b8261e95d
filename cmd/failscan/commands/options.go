package commands

import (
	"github.com/livp123/failscan/internal/analyzer"
	"github.com/livp123/failscan/internal/report"
	"github.com/livp123/failscan/internal/utils/argutil"
)

// Recognised keys. Any other --key is accepted and ignored.
// 可识别的参数键，其他 --key 会被接受并忽略。
const (
	keyFile       = "file"
	keyThreshold  = "threshold"
	keyClassifier = "classifier"
	keyExpr       = "expr"
	keyLogLevel   = "log-level"
	keyLogFile    = "log-file"
	keyHelp       = "help"
	keyVersion    = "version"
)

const defaultLogLevel = "warn"

// Options is the resolved command line.
type Options struct {
	File       string
	Threshold  int
	Classifier string
	Expr       string
	LogLevel   string
	LogFile    string
	Help       bool
	Version    bool
}

// ParseOptions resolves the flat key-value arguments, applying defaults.
// A malformed threshold silently falls back to report.DefaultThreshold.
func ParseOptions(args []string) Options {
	m := argutil.Parse(args)

	threshold, ok := m[keyThreshold]
	opts := Options{
		File:       m[keyFile],
		Threshold:  argutil.IntOrDefault(threshold, ok, report.DefaultThreshold),
		Classifier: analyzer.ClassifierStrict,
		Expr:       m[keyExpr],
		LogLevel:   defaultLogLevel,
		LogFile:    m[keyLogFile],
	}
	if v, ok := m[keyClassifier]; ok {
		opts.Classifier = v
	}
	if v, ok := m[keyLogLevel]; ok {
		opts.LogLevel = v
	}
	_, opts.Help = m[keyHelp]
	_, opts.Version = m[keyVersion]
	return opts
}
