// Page-traversal controller shared by the board adapters: budgeted
// pagination, captcha recovery, selector-fallback card location, dedup
// and early stop once the target count is met.

package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/time/rate"

	"go-jobboard-automation/internal/captcha"
	"go-jobboard-automation/internal/dedup"
	"go-jobboard-automation/utils"
)

const (
	defaultSlack      = 5
	defaultNavTimeout = 45 * time.Second
	defaultCardWait   = 15 * time.Second
	defaultSettle     = 3 * time.Second
	defaultScrollWait = 1500 * time.Millisecond
	defaultPageDelay  = 2500 * time.Millisecond
)

// PageBudget caps pagination at ceil(target/perPage) plus slack pages, so
// a board that keeps serving duplicate or empty pages cannot spin the
// controller forever.
func PageBudget(target, perPage, slack int) int {
	if perPage <= 0 {
		perPage = 1
	}
	return (target+perPage-1)/perPage + slack
}

// Controller drives one adapter across result pages until Target listings
// are collected or the page budget runs out. Zero-value durations fall
// back to the defaults above.
type Controller struct {
	Adapter  Adapter
	Guard    *captcha.Guard
	Registry *dedup.Registry

	Target int
	Slack  int

	NavTimeout time.Duration
	CardWait   time.Duration // initial wait for the card selector chain
	SettleWait time.Duration // after navigation, before the scroll trigger
	ScrollWait time.Duration // after the scroll trigger
	PageDelay  time.Duration // fixed pacing between page visits
}

func (c *Controller) Run(ctx context.Context, page playwright.Page) ([]Listing, error) {
	navTimeout := orDefault(c.NavTimeout, defaultNavTimeout)
	cardWait := orDefault(c.CardWait, defaultCardWait)
	settle := orDefault(c.SettleWait, defaultSettle)
	scrollWait := orDefault(c.ScrollWait, defaultScrollWait)
	pageDelay := orDefault(c.PageDelay, defaultPageDelay)

	slack := c.Slack
	if slack <= 0 {
		slack = defaultSlack
	}
	budget := PageBudget(c.Target, c.Adapter.CardsPerPage(), slack)
	policy := c.Adapter.LoadFailurePolicy()

	// burst 1 makes the first page immediate and every later visit wait
	// out the fixed pacing interval, whatever the previous page did
	pacer := rate.NewLimiter(rate.Every(pageDelay), 1)

	var collected []Listing
	for pageIdx := 0; pageIdx < budget && len(collected) < c.Target; pageIdx++ {
		if err := pacer.Wait(ctx); err != nil {
			return collected, err
		}

		url := c.Adapter.SearchURL(pageIdx)
		log.Printf("🔎 [%s] Visiting page %d: %s", c.Adapter.Name(), pageIdx+1, url)

		if _, err := page.Goto(url, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
			Timeout:   playwright.Float(float64(navTimeout.Milliseconds())),
		}); err != nil {
			if policy == AbortRun {
				return collected, fmt.Errorf("load page %d: %w", pageIdx+1, err)
			}
			log.Printf("⚠️ Failed to load page %d, skipping: %v", pageIdx+1, err)
			continue
		}

		// settle, then a human-behavior pass: a mouse jiggle followed by
		// one scroll to trigger lazy-loaded cards
		time.Sleep(settle)
		utils.MouseJiggle(page)
		utils.SmoothScroll(page)
		time.Sleep(scrollWait)

		if err := c.Guard.Check(ctx, page); err != nil {
			return collected, err
		}

		cards, err := c.locateCards(page, cardWait)
		if err != nil {
			if policy == AbortRun {
				return collected, fmt.Errorf("page %d: %w", pageIdx+1, err)
			}
			log.Printf("⚠️ No job cards detected on page %d, skipping.", pageIdx+1)
			continue
		}
		if len(cards) == 0 {
			// selector resolved but the page is empty; just move on
			log.Printf("ℹ️ Page %d had no cards.", pageIdx+1)
			continue
		}
		log.Printf("ℹ️ Found %d cards on page %d", len(cards), pageIdx+1)

		for _, card := range cards {
			if len(collected) >= c.Target {
				break
			}
			listing, id := c.Adapter.Extract(card)
			if !c.Registry.Admit(id) {
				continue
			}
			collected = append(collected, listing)
		}
		log.Printf("✅ Collected %d/%d listings so far", len(collected), c.Target)
	}

	return collected, nil
}

// locateCards waits for any selector of the chain to appear, then walks
// the chain until one yields a non-empty set.
func (c *Controller) locateCards(page playwright.Page, wait time.Duration) ([]playwright.Locator, error) {
	selectors := c.Adapter.CardSelectors()

	combined := strings.Join(selectors, ", ")
	if _, err := page.WaitForSelector(combined, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(wait.Milliseconds())),
	}); err != nil {
		return nil, fmt.Errorf("waiting for job cards: %w", err)
	}

	for _, sel := range selectors {
		cards, err := page.Locator(sel).All()
		if err != nil {
			continue
		}
		if len(cards) > 0 {
			return cards, nil
		}
	}
	return nil, nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
