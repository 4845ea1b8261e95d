package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "failscan"

// Field label values for FieldsMissing.
const (
	FieldUser = "user"
	FieldIP   = "ip"
)

// ScanCollector counts what happened during one scan.
// ScanCollector 统计一次扫描过程中发生的情况。
type ScanCollector struct {
	LinesRead          prometheus.Counter
	FailedLogins       prometheus.Counter
	LinesSkipped       prometheus.Counter
	TimestampsUnparsed prometheus.Counter
	FieldsMissing      *prometheus.CounterVec
}

// NewScanCollector registers the scan counters on reg.
// Each run uses its own registry so counts never leak across scans.
func NewScanCollector(reg prometheus.Registerer) *ScanCollector {
	f := promauto.With(reg)
	return &ScanCollector{
		LinesRead: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_read_total",
			Help:      "Lines read from the input file",
		}),
		FailedLogins: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failed_logins_total",
			Help:      "Lines classified as failed-login events",
		}),
		LinesSkipped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_skipped_total",
			Help:      "Lines that are not failed-login events",
		}),
		TimestampsUnparsed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timestamps_unparsed_total",
			Help:      "Events whose leading timestamp could not be parsed",
		}),
		FieldsMissing: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fields_missing_total",
			Help:      "Events without an extractable field",
		}, []string{"field"}),
	}
}

// Snapshot flattens the counters gathered from g into name -> value.
// Labelled series are keyed as name{label=value}.
// Snapshot 将 g 中收集的计数器展开为 名称 -> 值。
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			out[key] = m.GetCounter().GetValue()
		}
	}
	return out, nil
}
