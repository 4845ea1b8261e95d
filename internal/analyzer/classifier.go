package analyzer

import (
	"regexp"
	"strings"

	fserrors "github.com/livp123/failscan/pkg/errors"
)

// Classifier names accepted by NewClassifier.
const (
	ClassifierStrict   = "strict"
	ClassifierTolerant = "tolerant"
	ClassifierExpr     = "expr"
)

// EventKeyword marks a failed-login line.
const EventKeyword = "FAILED_LOGIN"

// Classifier decides whether a line is a failed-login event and extracts its fields.
// Implementations are stateless and look at one line at a time.
type Classifier interface {
	Classify(line string) (Event, bool)
}

// NewClassifier builds the classifier registered under name.
// exprSrc is only used by the expr classifier; empty selects DefaultExpression.
// NewClassifier 根据名称构建分类器。
func NewClassifier(name, exprSrc string) (Classifier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ClassifierStrict:
		return NewStrictClassifier(), nil
	case ClassifierTolerant:
		return NewTolerantClassifier(), nil
	case ClassifierExpr:
		return NewExprClassifier(exprSrc)
	default:
		return nil, fserrors.NewClassifierError(name)
	}
}

// Supported line format:
// 2026-02-19T21:15:30Z FAILED_LOGIN user=johndoe ip=203.0.113.9 [anything]
// Whitespace includes the vertical tab, which RE2's \s leaves out.
var strictPattern = regexp.MustCompile(`^(?P<ts>[^\s\v]+)[\s\v]+FAILED_LOGIN[\s\v]+user=(?P<user>[^\s\v]+)[\s\v]+ip=(?P<ip>[^\s\v]+).*$`)

var (
	strictTS   = strictPattern.SubexpIndex("ts")
	strictUser = strictPattern.SubexpIndex("user")
	strictIP   = strictPattern.SubexpIndex("ip")
)

// StrictClassifier accepts only well-formed lines, so user and ip are always present.
// The timestamp is parsed opportunistically and never disqualifies a line.
type StrictClassifier struct{}

// NewStrictClassifier creates a StrictClassifier.
func NewStrictClassifier() *StrictClassifier {
	return &StrictClassifier{}
}

func (c *StrictClassifier) Classify(line string) (Event, bool) {
	m := strictPattern.FindStringSubmatch(line)
	if m == nil {
		return Event{}, false
	}
	ev := Event{User: m[strictUser], IP: m[strictIP]}
	ev.Timestamp, ev.TimestampParsed = parseTimestamp(m[strictTS])
	return ev, true
}

// TolerantClassifier accepts any line carrying FAILED_LOGIN as a whole word.
// user= and ip= are extracted independently and may be missing.
type TolerantClassifier struct{}

// NewTolerantClassifier creates a TolerantClassifier.
func NewTolerantClassifier() *TolerantClassifier {
	return &TolerantClassifier{}
}

func (c *TolerantClassifier) Classify(line string) (Event, bool) {
	if !hasWord(line, EventKeyword) {
		return Event{}, false
	}
	return extractEvent(line), true
}

// extractEvent pulls the optional fields out of an accepted line.
func extractEvent(line string) Event {
	var ev Event
	ev.User, _ = ExtractField(line, UserKey)
	ev.IP, _ = ExtractField(line, IPKey)
	ev.Timestamp, ev.TimestampParsed = parseTimestamp(firstField(line))
	return ev
}
