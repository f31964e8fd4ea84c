package scraper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobboard-automation/internal/captcha"
	"go-jobboard-automation/internal/dedup"
)

func TestPageBudget(t *testing.T) {
	tests := []struct {
		name    string
		target  int
		perPage int
		slack   int
		want    int
	}{
		{"typical indeed run", 50, 15, 5, 9},
		{"exact multiple", 30, 15, 5, 7},
		{"single listing", 1, 15, 5, 6},
		{"zero per-page estimate", 10, 0, 5, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageBudget(tt.target, tt.perPage, tt.slack))
		})
	}
}

// The budget bounds page visits for any target/estimate combination.
func TestPageBudgetBound(t *testing.T) {
	for target := 1; target <= 100; target += 7 {
		for perPage := 1; perPage <= 30; perPage += 6 {
			budget := PageBudget(target, perPage, 5)
			assert.GreaterOrEqual(t, budget*perPage, target)
			assert.LessOrEqual(t, budget, target+5)
		}
	}
}

// stubAdapter serves the full-traversal test below; two cards per page,
// identified by a data-id attribute.
type stubAdapter struct{}

func (stubAdapter) Name() string   { return "Stub" }
func (stubAdapter) Source() Source { return Source("stub") }
func (stubAdapter) SearchURL(pageIndex int) string {
	return fmt.Sprintf("https://jobs.example.com/search?page=%d", pageIndex)
}
func (stubAdapter) CardsPerPage() int                { return 2 }
func (stubAdapter) CardSelectors() []string          { return []string{"li.job"} }
func (stubAdapter) LoadFailurePolicy() FailurePolicy { return AbortRun }

func (stubAdapter) Extract(card playwright.Locator) (Listing, string) {
	title, _ := Chain{"span.t"}.Text(card)
	id, _ := Chain{"span.t"}.Attr(card, "data-id")
	return Listing{Title: title, Source: "stub"}, id
}

const mockResultsHTML = `<html><body><ul>
<li class="job"><span class="t" data-id="j1">Backend Engineer</span></li>
<li class="job"><span class="t" data-id="j2">Data Engineer</span></li>
</ul></body></html>`

// Full traversal against a mocked board: navigation, the human-behavior
// pass (jiggle + scroll), card location and dedup across pages.
func TestControllerRunCollectsAndDedups(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}

	pw, err := playwright.Run()
	require.NoError(t, err)
	defer pw.Stop()
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	require.NoError(t, err)
	defer browser.Close()
	page, err := browser.NewPage()
	require.NoError(t, err)

	// every request gets the same results page back
	require.NoError(t, page.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html"),
			Body:        mockResultsHTML,
		})
	}))

	reg := dedup.NewRegistry()
	ctrl := &Controller{
		Adapter:    stubAdapter{},
		Guard:      &captcha.Guard{},
		Registry:   reg,
		Target:     3,
		Slack:      1,
		SettleWait: 10 * time.Millisecond,
		ScrollWait: 10 * time.Millisecond,
		PageDelay:  10 * time.Millisecond,
	}

	listings, err := ctrl.Run(context.Background(), page)
	require.NoError(t, err)

	// three pages visited, but the board repeats its two cards; the
	// registry keeps them once
	assert.Len(t, listings, 2)
	assert.Equal(t, "Backend Engineer", listings[0].Title)
	assert.Equal(t, "Data Engineer", listings[1].Title)
	assert.Equal(t, 2, reg.Len())
}
