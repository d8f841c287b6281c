package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloatPrefix(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1999.99", 1999.99, true},
		{"  42", 42, true},
		{"-3.5", -3.5, true},
		{"+7", 7, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"12.5g", 12.5, true},
		{"1e3", 1000, true},
		{"2E-2x", 0.02, true},
		{"3e", 3, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"N/A", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFloatPrefix(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "xyz", ToString([]byte("xyz")))
	assert.Equal(t, "12", ToString(12))
}
