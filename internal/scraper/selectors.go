package scraper

import (
	"github.com/playwright-community/playwright-go"
)

// fieldTimeoutMs bounds per-field text reads; a card whose node detaches
// mid-read should cost milliseconds, not the page's default 30s.
const fieldTimeoutMs = 250

// Chain is an ordered list of selectors for one field, tried in sequence.
// Boards A/B-test their DOM constantly; the primary selector is the
// current markup and the rest are older generations still seen in the
// wild. A miss on every selector is a FieldAbsent, not an error: callers
// get (value, false) and substitute the board's default.
type Chain []string

func (c Chain) first(card playwright.Locator) (playwright.Locator, bool) {
	for _, sel := range c {
		loc := card.Locator(sel).First()
		if n, err := loc.Count(); err == nil && n > 0 {
			return loc, true
		}
	}
	return nil, false
}

// Text resolves the chain and returns the cleaned text of the first
// matching element.
func (c Chain) Text(card playwright.Locator) (string, bool) {
	loc, ok := c.first(card)
	if !ok {
		return "", false
	}
	txt, err := loc.TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(fieldTimeoutMs),
	})
	if err != nil {
		return "", false
	}
	txt = CleanText(txt)
	return txt, txt != ""
}

// Attr resolves the chain and returns the named attribute of the first
// matching element.
func (c Chain) Attr(card playwright.Locator, name string) (string, bool) {
	loc, ok := c.first(card)
	if !ok {
		return "", false
	}
	val, err := loc.GetAttribute(name)
	if err != nil || val == "" {
		return "", false
	}
	return val, true
}
