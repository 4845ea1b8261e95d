package analyzer

import "time"

// Event is a failed-login event derived from one log line.
// An empty User or IP means the field was not present.
type Event struct {
	User            string
	IP              string
	Timestamp       time.Time
	TimestampParsed bool
}

// HasUser reports whether a user value was extracted.
func (e Event) HasUser() bool { return e.User != "" }

// HasIP reports whether an IP value was extracted.
func (e Event) HasIP() bool { return e.IP != "" }
