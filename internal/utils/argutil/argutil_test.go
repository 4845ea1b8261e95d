package argutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want map[string]string
	}{
		{"empty", nil, map[string]string{}},
		{"key value", []string{"--file", "auth.log"}, map[string]string{"file": "auth.log"}},
		{"two pairs", []string{"--file", "a.log", "--threshold", "3"}, map[string]string{"file": "a.log", "threshold": "3"}},
		{"bare flag at end", []string{"--file", "a.log", "--verbose"}, map[string]string{"file": "a.log", "verbose": "true"}},
		{"bare flag before flag", []string{"--verbose", "--file", "a.log"}, map[string]string{"verbose": "true", "file": "a.log"}},
		{"positional ignored", []string{"stray", "--file", "a.log", "extra"}, map[string]string{"file": "a.log"}},
		{"later wins", []string{"--threshold", "1", "--threshold", "9"}, map[string]string{"threshold": "9"}},
		{"negative number is a value", []string{"--threshold", "-3"}, map[string]string{"threshold": "-3"}},
		{"unknown keys kept", []string{"--color", "always"}, map[string]string{"color": "always"}},
		{"empty key", []string{"--", "x"}, map[string]string{"": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.args))
		})
	}
}

func TestIntOrDefault(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
		want  int
	}{
		{"absent", "", false, 5},
		{"valid", "7", true, 7},
		{"zero", "0", true, 0},
		{"negative", "-2", true, -2},
		{"explicit plus", "+4", true, 4},
		{"not a number", "abc", true, 5},
		{"float", "2.5", true, 5},
		{"bare flag", "true", true, 5},
		{"hex is not decimal", "0x10", true, 5},
		{"leading zero stays decimal", "010", true, 10},
		{"overflow", "99999999999", true, 5},
		{"blank", "", true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntOrDefault(tt.value, tt.ok, 5))
		})
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  \t"))
	assert.False(t, IsBlank(" a "))
}
