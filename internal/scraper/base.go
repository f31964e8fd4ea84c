// Shared model and the interface every board adapter implements.

package scraper

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Source identifies the job board a listing came from.
type Source string

const (
	SourceIndeed Source = "indeed"
	SourceNaukri Source = "naukri"
)

// Listing is the canonical record one card becomes. It is built once
// during extraction and never mutated afterwards.
type Listing struct {
	Title      string
	Company    string
	URL        string
	DatePosted string // relative ("3 days ago") or ISO, as the board shows it
	City       string
	SalaryText string

	// SalaryMinAnnual is the annualized minimum in INR, nil when the card
	// carried no parseable salary. ExperienceYears is nil when the board
	// stated nothing.
	SalaryMinAnnual *int
	ExperienceYears *int

	IsSenior bool
	Source   Source
}

// FailurePolicy decides what a page-load (or initial card-wait) timeout
// does to the run. The boards behave differently on purpose, so this is
// adapter configuration, not a controller constant.
type FailurePolicy int

const (
	// AbortRun stops pagination; collected listings are still persisted.
	AbortRun FailurePolicy = iota
	// SkipPage logs and advances to the next page index.
	SkipPage
)

// Adapter is the per-board half of the crawl: URL scheme, selector sets
// and card-to-listing mapping. The Controller owns traversal.
type Adapter interface {
	Name() string
	Source() Source

	// SearchURL builds the results URL for a zero-based page index.
	SearchURL(pageIndex int) string

	// CardsPerPage is the board's typical result count per page, used to
	// size the page budget.
	CardsPerPage() int

	// CardSelectors is the fallback chain locating result cards.
	CardSelectors() []string

	// Extract maps one card to a Listing plus the identifier used for
	// in-run deduplication. An empty identifier means "cannot dedup".
	// Missing fields resolve to the board's defaults, never to errors.
	Extract(card playwright.Locator) (Listing, string)

	LoadFailurePolicy() FailurePolicy
}

// seniority keywords checked against the folded title
var seniorKeywords = []string{"senior", "lead"}

// IsSenior derives the seniority flag: six or more stated years of
// experience, or a seniority keyword anywhere in the title.
func IsSenior(title string, years int) bool {
	if years >= 6 {
		return true
	}
	t := FoldText(title)
	for _, kw := range seniorKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}
