// Package analyzer classifies log lines as failed-login events and aggregates them
// per user and per source IP in a single pass.
// Package analyzer 将日志行分类为登录失败事件，并在单次遍历中按用户和来源 IP 聚合。
package analyzer

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/livp123/failscan/internal/metrics"
)

// Analyzer runs classify -> extract -> aggregate over every line of its input.
type Analyzer struct {
	classifier Classifier
	log        *zap.SugaredLogger
	stats      *metrics.ScanCollector
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMetrics records scan counters into c.
func WithMetrics(c *metrics.ScanCollector) Option {
	return func(a *Analyzer) {
		if c != nil {
			a.stats = c
		}
	}
}

// New creates an Analyzer. A nil classifier selects the strict one.
func New(c Classifier, opts ...Option) *Analyzer {
	if c == nil {
		c = NewStrictClassifier()
	}
	a := &Analyzer{
		classifier: c,
		log:        zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.stats == nil {
		a.stats = metrics.NewScanCollector(prometheus.NewRegistry())
	}
	return a
}

// AnalyzeFile scans path once from start to end.
// Any open or read failure aborts the scan and no Result is returned.
// AnalyzeFile 从头到尾扫描一次 path，任何读取失败都会中止扫描。
func (a *Analyzer) AnalyzeFile(path string) (*Result, error) {
	agg := NewAggregator()
	lineNo := 0
	err := readLines(path, func(line string) {
		lineNo++
		a.process(agg, lineNo, line)
	})
	if err != nil {
		return nil, err
	}
	a.log.Debugw("scan finished", "file", path, "lines", lineNo)
	return agg.Result(), nil
}

// AnalyzeLines runs the same pipeline over in-memory lines, splitting them like AnalyzeFile.
func (a *Analyzer) AnalyzeLines(lines []string) *Result {
	agg := NewAggregator()
	lineNo := 0
	for _, line := range lines {
		for _, rec := range splitRecords(line) {
			lineNo++
			a.process(agg, lineNo, rec)
		}
	}
	return agg.Result()
}

func (a *Analyzer) process(agg *Aggregator, lineNo int, line string) {
	a.stats.LinesRead.Inc()

	ev, ok := a.classifier.Classify(line)
	if !ok {
		a.stats.LinesSkipped.Inc()
		return
	}

	a.stats.FailedLogins.Inc()
	if !ev.TimestampParsed {
		a.stats.TimestampsUnparsed.Inc()
		a.log.Debugw("timestamp not parsed, event kept", "line", lineNo)
	}
	if !ev.HasUser() {
		a.stats.FieldsMissing.WithLabelValues(metrics.FieldUser).Inc()
	}
	if !ev.HasIP() {
		a.stats.FieldsMissing.WithLabelValues(metrics.FieldIP).Inc()
	}
	agg.Record(ev)
}
