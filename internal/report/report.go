// Package report ranks aggregated failed-login counts, evaluates alerts and prints
// the plain-text summary.
// Package report 对登录失败计数排序、评估告警并输出纯文本摘要。
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/livp123/failscan/internal/analyzer"
)

// MaxEntries caps each ranked list.
const MaxEntries = 10

// DefaultThreshold is the alert threshold used when none is given.
const DefaultThreshold = 5

// Entry is one ranked identifier.
type Entry struct {
	Key   string
	Count int
}

// Alert flags a user at or above the threshold.
type Alert struct {
	User  string
	Count int
}

// sortEntries orders by descending count, then ascending key so output is reproducible.
func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
}

// Top returns at most n entries of counts, highest first.
// Top 返回计数最高的最多 n 个条目。
func Top(counts map[string]int, n int) []Entry {
	if n <= 0 {
		return nil
	}
	entries := make([]Entry, 0, len(counts))
	for k, v := range counts {
		entries = append(entries, Entry{Key: k, Count: v})
	}
	sortEntries(entries)
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Alerts returns every user whose count is >= threshold, ranked like Top.
// Alerts 返回计数大于等于阈值的所有用户。
func Alerts(r *analyzer.Result, threshold int) []Alert {
	var hits []Entry
	for user, count := range r.FailedByUser {
		if count >= threshold {
			hits = append(hits, Entry{Key: user, Count: count})
		}
	}
	sortEntries(hits)

	alerts := make([]Alert, 0, len(hits))
	for _, e := range hits {
		alerts = append(alerts, Alert{User: e.Key, Count: e.Count})
	}
	return alerts
}

// Render writes the summary for file to w. It only reads r.
func Render(w io.Writer, file string, r *analyzer.Result, threshold int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "=== Security Log Analyzer Summary ===")
	fmt.Fprintf(bw, "File: %s\n", file)
	fmt.Fprintf(bw, "Total failed login events: %d\n", r.TotalFailedLogins)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "Top users by failed logins:")
	writeEntries(bw, Top(r.FailedByUser, MaxEntries))

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Top IPs by failed logins:")
	writeEntries(bw, Top(r.FailedByIP, MaxEntries))

	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Alerts (threshold >= %d):\n", threshold)
	alerts := Alerts(r, threshold)
	for _, a := range alerts {
		fmt.Fprintf(bw, "  ALERT: user %s has %d failed logins\n", a.User, a.Count)
	}
	if len(alerts) == 0 {
		fmt.Fprintln(bw, "  (none)")
	}

	return bw.Flush()
}

func writeEntries(w io.Writer, entries []Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "  %s: %d\n", e.Key, e.Count)
	}
}
