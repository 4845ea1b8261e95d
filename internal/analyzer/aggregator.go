package analyzer

// Result is the aggregate of one full scan.
// The per-field maps only hold events where the field was extracted,
// so their sums may be lower than TotalFailedLogins.
// Result 是一次完整扫描的聚合结果。
type Result struct {
	TotalFailedLogins int
	FailedByUser      map[string]int
	FailedByIP        map[string]int
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{
		FailedByUser: make(map[string]int),
		FailedByIP:   make(map[string]int),
	}
}

// Aggregator accumulates events into a Result it owns until Result is called.
// Counts only grow; there is no decay or eviction.
type Aggregator struct {
	result *Result
}

// NewAggregator creates an Aggregator with an empty Result.
func NewAggregator() *Aggregator {
	return &Aggregator{result: NewResult()}
}

// Record counts one event.
func (a *Aggregator) Record(ev Event) {
	a.result.TotalFailedLogins++
	if ev.HasUser() {
		a.result.FailedByUser[ev.User]++
	}
	if ev.HasIP() {
		a.result.FailedByIP[ev.IP]++
	}
}

// Result hands the accumulated Result to the caller and starts a fresh one.
// The returned value is not touched by the Aggregator again.
func (a *Aggregator) Result() *Result {
	r := a.result
	a.result = NewResult()
	return r
}
