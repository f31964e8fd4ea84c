package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Options configure the shared crawl browser. Boards get one browser,
// one context, one page per run.
type Options struct {
	Headless       bool
	SlowMo         time.Duration
	UserAgent      string
	ViewportWidth  int
	ViewportHeight int
}

// Manager owns the playwright driver and browser for one crawl run.
// Callers must Close it on every exit path; a deferred Close right after
// Launch covers captcha aborts and load failures too.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
}

func Launch(opts Options) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright driver: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		SlowMo:   playwright.Float(float64(opts.SlowMo.Milliseconds())),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	return &Manager{pw: pw, browser: browser, opts: opts}, nil
}

// NewPage creates a fresh context and page with the configured viewport
// and user agent, and scrubs navigator.webdriver before any site script
// runs.
func (m *Manager) NewPage() (playwright.Page, error) {
	ctx, err := m.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  m.opts.ViewportWidth,
			Height: m.opts.ViewportHeight,
		},
		UserAgent:         playwright.String(m.opts.UserAgent),
		JavaScriptEnabled: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	if err := page.AddInitScript(playwright.Script{
		Content: playwright.String("Object.defineProperty(navigator, 'webdriver', {get: () => undefined});"),
	}); err != nil {
		return nil, fmt.Errorf("install stealth script: %w", err)
	}

	return page, nil
}

// Close releases the browser and stops the driver. Safe to call once on
// any exit path.
func (m *Manager) Close() error {
	if m.browser != nil {
		if err := m.browser.Close(); err != nil {
			_ = m.pw.Stop()
			return err
		}
	}
	if m.pw != nil {
		return m.pw.Stop()
	}
	return nil
}
