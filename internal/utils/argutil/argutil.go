// Package argutil parses the flat "--key value" command line used by failscan.
// Package argutil 解析 failscan 使用的扁平 "--key value" 命令行。
package argutil

import (
	"strconv"
	"strings"
)

const flagPrefix = "--"

// Parse collects every "--key" token into a map.
// A key followed by a token that does not start with "--" takes that token as its value;
// otherwise its value is the literal "true". Other tokens are ignored and later keys win.
func Parse(args []string) map[string]string {
	m := make(map[string]string)
	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, flagPrefix) {
			continue
		}
		key := a[len(flagPrefix):]
		val := "true"
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], flagPrefix) {
			i++
			val = args[i]
		}
		m[key] = val
	}
	return m
}

// IntOrDefault parses a decimal integer, returning fallback when value is absent or malformed.
// IntOrDefault 解析十进制整数，缺失或格式错误时返回默认值。
func IntOrDefault(value string, ok bool, fallback int) int {
	if !ok {
		return fallback
	}
	i, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return fallback
	}
	return int(i)
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
