package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxYears(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"5+ years of Java, 3 yrs of Spring", 5},
		{"2 years backend, 10 years total", 10},
		{"requires 6 Years experience", 6},
		{"no mention at all", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxYears(tt.text), tt.text)
	}
}

func TestLeadingYears(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"3-8 Yrs", 3, true},
		{"10 Yrs", 10, true},
		{"Fresher", 0, true},
		{"fresher (0-1 yrs)", 0, true},
		{"Not disclosed", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := LeadingYears(tt.text)
		assert.Equal(t, tt.ok, ok, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}
