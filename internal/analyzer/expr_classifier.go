package analyzer

import (
	"regexp"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	fserrors "github.com/livp123/failscan/pkg/errors"
)

// DefaultExpression matches the tolerant classifier.
const DefaultExpression = `Has("FAILED_LOGIN")`

// Env is the environment a match expression is evaluated against.
// Env 是匹配表达式求值时使用的环境。
type Env struct {
	Line string
}

var regexCache sync.Map

// Has reports whether token occurs in the line as a whole word.
// Usage: Has("FAILED_LOGIN")
func (e *Env) Has(token string) bool {
	return hasWord(e.Line, token)
}

// Contains reports whether the line contains s (case sensitive).
func (e *Env) Contains(s string) bool {
	return strings.Contains(e.Line, s)
}

// IContains reports whether the line contains s (case insensitive).
func (e *Env) IContains(s string) bool {
	return strings.Contains(strings.ToLower(e.Line), strings.ToLower(s))
}

// Get returns the value of key=value in the line, or "" when missing.
// Usage: Get("user") == "root"
func (e *Env) Get(key string) string {
	v, _ := ExtractField(e.Line, key+"=")
	return v
}

// Match checks if the line matches the given regular expression.
// An invalid pattern never matches.
func (e *Env) Match(pattern string) bool {
	re, ok := regexCache.Load(pattern)
	if !ok {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return false
		}
		re, _ = regexCache.LoadOrStore(pattern, compiled)
	}
	return re.(*regexp.Regexp).MatchString(e.Line)
}

// ExprClassifier accepts lines for which a boolean expr-lang program returns true.
// Fields are extracted the same way as TolerantClassifier.
type ExprClassifier struct {
	source  string
	program *vm.Program
}

// NewExprClassifier compiles src. An empty src selects DefaultExpression.
func NewExprClassifier(src string) (*ExprClassifier, error) {
	if strings.TrimSpace(src) == "" {
		src = DefaultExpression
	}
	program, err := expr.Compile(src, expr.Env(&Env{}), expr.AsBool())
	if err != nil {
		return nil, fserrors.NewExpressionError(src, err)
	}
	return &ExprClassifier{source: src, program: program}, nil
}

// Source returns the compiled expression text.
func (c *ExprClassifier) Source() string {
	return c.source
}

// Classify runs the program on line. A runtime error counts as no match.
func (c *ExprClassifier) Classify(line string) (Event, bool) {
	out, err := expr.Run(c.program, &Env{Line: line})
	if err != nil {
		return Event{}, false
	}
	if matched, ok := out.(bool); !ok || !matched {
		return Event{}, false
	}
	return extractEvent(line), true
}
