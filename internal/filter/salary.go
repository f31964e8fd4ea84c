package filter

import (
	"go-jobboard-automation/internal/scraper"
)

// MinSalary keeps only listings whose parsed annual minimum meets the
// threshold. Listings with no parseable salary are dropped as well; a
// board that hides pay does not get the benefit of the doubt when the
// operator asked for a floor. Gated behind config, off by default.
func MinSalary(listings []scraper.Listing, threshold int) []scraper.Listing {
	kept := make([]scraper.Listing, 0, len(listings))
	for _, l := range listings {
		if l.SalaryMinAnnual == nil || *l.SalaryMinAnnual < threshold {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}
