package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnualMin(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{name: "annual range indian grouping", text: "₹12,00,000 - ₹18,00,000 a year", want: 1200000, ok: true},
		{name: "single lpa", text: "32 LPA", want: 3200000, ok: true},
		{name: "lpa range takes minimum", text: "12-20 LPA", want: 1200000, ok: true},
		{name: "monthly range", text: "₹90,000 - ₹1,10,000 a month", want: 1080000, ok: true},
		{name: "daily rate", text: "₹2,000 a day", want: 528000, ok: true},
		{name: "hourly rate", text: "₹1,000 an hour", want: 2112000, ok: true},
		{name: "single lakh", text: "15 lakh", want: 1500000, ok: true},
		{name: "fractional crore", text: "0.5 crore", want: 5000000, ok: true},
		{name: "crore range takes minimum", text: "1 - 2 crore", want: 10000000, ok: true},
		{name: "bare amount assumed annual", text: "₹32,50,000", want: 3250000, ok: true},
		{name: "western grouping", text: "1,234,567 - 2,345,678 per year", want: 1234567, ok: true},
		{name: "per annum keyword", text: "₹6,00,000 per annum", want: 600000, ok: true},
		{name: "fractional lpa", text: "2.5 lpa", want: 250000, ok: true},
		{name: "empty", text: "", ok: false},
		{name: "no numbers", text: "no numbers here", ok: false},
		{name: "unit keyword without figure", text: "salary in lakh, negotiable", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AnnualMin(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// A lakh keyword with no adjacent figure must not swallow a parseable
// amount elsewhere in the text; the generic branches still run.
func TestAnnualMinLakhFallthrough(t *testing.T) {
	got, ok := AnnualMin("lakh club employer, pays ₹50,000 a month")
	assert.True(t, ok)
	assert.Equal(t, 600000, got)
}

func TestAnnualMinIsPure(t *testing.T) {
	for _, text := range []string{"32 LPA", "₹2,000 a day", "garbage"} {
		a, okA := AnnualMin(text)
		b, okB := AnnualMin(text)
		assert.Equal(t, a, b)
		assert.Equal(t, okA, okB)
	}
}

func TestParseThreshold(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{in: "32 LPA", want: 3200000, ok: true},
		{in: "₹32,50,000", want: 3250000, ok: true},
		{in: "3200000", want: 3200000, ok: true},
		{in: "", ok: false},
		{in: "garbage", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseThreshold(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}
