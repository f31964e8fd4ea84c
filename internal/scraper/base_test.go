package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSenior(t *testing.T) {
	tests := []struct {
		name  string
		title string
		years int
		want  bool
	}{
		{"years alone", "Backend Engineer", 6, true},
		{"title alone", "Senior Engineer", 0, true},
		{"lead keyword", "Tech Lead", 0, true},
		{"case insensitive", "SENIOR Java Developer", 0, true},
		{"neither", "Java Developer", 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSenior(tt.title, tt.years))
		})
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "₹12,00,000 a year", CleanText("  ₹12,00,000 a\n year  "))
	assert.Equal(t, "", CleanText("   \n\t"))
}

func TestFoldText(t *testing.T) {
	assert.Equal(t, "senior developer", FoldText("Sénior Developer"))
}
