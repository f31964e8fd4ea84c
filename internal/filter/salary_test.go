package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobboard-automation/internal/scraper"
)

func intPtr(v int) *int { return &v }

func TestMinSalary(t *testing.T) {
	listings := []scraper.Listing{
		{Title: "below", SalaryMinAnnual: intPtr(1000000)},
		{Title: "at threshold", SalaryMinAnnual: intPtr(3200000)},
		{Title: "above", SalaryMinAnnual: intPtr(5000000)},
		{Title: "undisclosed"},
	}

	kept := MinSalary(listings, 3200000)
	assert.Len(t, kept, 2)
	assert.Equal(t, "at threshold", kept[0].Title)
	assert.Equal(t, "above", kept[1].Title)
}

func TestMinSalaryKeepsAllAtZeroThreshold(t *testing.T) {
	listings := []scraper.Listing{
		{Title: "any", SalaryMinAnnual: intPtr(1)},
		{Title: "zero", SalaryMinAnnual: intPtr(0)},
	}
	assert.Len(t, MinSalary(listings, 0), 2)
}
