package analyzer

import (
	"strings"
	"time"
	"unicode"
)

// Field keys recognised in failed-login lines.
const (
	UserKey = "user="
	IPKey   = "ip="
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// ExtractField returns the value following the first occurrence of key.
// The value ends at the next whitespace rune or at end of line and is not validated.
// A missing key or an empty value reports false.
// ExtractField 返回 key 第一次出现之后的值，直到下一个空白字符或行尾。
func ExtractField(line, key string) (string, bool) {
	idx := strings.Index(line, key)
	if idx == -1 {
		return "", false
	}
	rest := line[idx+len(key):]
	if end := strings.IndexFunc(rest, unicode.IsSpace); end != -1 {
		rest = rest[:end]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

// firstField returns the leading run of non-whitespace runes.
func firstField(line string) string {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if end := strings.IndexFunc(line, unicode.IsSpace); end != -1 {
		return line[:end]
	}
	return line
}

// parseTimestamp accepts ISO-8601 date-times with or without an offset.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// hasWord reports whether word occurs in s with a non-word byte (or the line edge) on both sides.
// hasWord 判断 word 是否作为完整单词出现在 s 中。
func hasWord(s, word string) bool {
	if word == "" {
		return false
	}
	for offset := 0; offset <= len(s)-len(word); {
		i := strings.Index(s[offset:], word)
		if i == -1 {
			return false
		}
		start := offset + i
		end := start + len(word)
		if (start == 0 || !isWordByte(s[start-1])) && (end == len(s) || !isWordByte(s[end])) {
			return true
		}
		offset = start + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}
