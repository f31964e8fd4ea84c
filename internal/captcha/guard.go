// Bot-challenge detection and the manual-recovery state machine.
// Boards serve interstitial "verify you are human" pages mid-pagination;
// the only reliable way past them is a human solving the challenge in the
// headful window, so the guard suspends the run until an operator signal
// arrives, then rechecks once and either resumes or aborts.

package captcha

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// ErrAborted means the challenge was still present after the single
// recheck cycle (or the operator never responded). The run stops early;
// whatever was collected so far is still persisted by the caller.
var ErrAborted = errors.New("captcha unresolved, aborting run")

type State int

const (
	Normal State = iota
	Suspected
	AwaitingManual
	Rechecking
	Aborted
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Suspected:
		return "suspected"
	case AwaitingManual:
		return "awaiting-manual"
	case Rechecking:
		return "rechecking"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// markers are matched case-insensitively against the full page content.
var markers = []string{
	"verify you are human",
	"unusual traffic",
	"hcaptcha",
	"recaptcha",
	"/captcha/",
	"detected unusual",
}

// Detected reports whether page content looks like a bot challenge.
func Detected(content string) bool {
	c := strings.ToLower(content)
	for _, m := range markers {
		if strings.Contains(c, m) {
			return true
		}
	}
	return false
}

// ContentReader is the one slice of the browser page the guard needs.
// playwright.Page satisfies it.
type ContentReader interface {
	Content() (string, error)
}

// Guard drives the recovery state machine:
//
//	Normal -> Suspected -> AwaitingManual -> Rechecking -> Normal | Aborted
//
// Resume carries the operator's "I solved it" signal. ResumeTimeout bounds
// the wait; zero means wait indefinitely, which matches the old terminal
// prompt behavior but is not recommended for unattended runs.
type Guard struct {
	Resume        <-chan struct{}
	ResumeTimeout time.Duration
	SettleDelay   time.Duration // pause before the recheck, default 4s

	// OnSuspect runs once when a challenge is first detected, before the
	// suspension. Used for debug screenshots. May be nil.
	OnSuspect func()

	state State
}

func (g *Guard) State() State { return g.state }

// Check inspects the page and, when a challenge is present, blocks until
// the operator resolves it or the wait times out. Returns nil when
// pagination may continue and ErrAborted when the run must stop.
func (g *Guard) Check(ctx context.Context, page ContentReader) error {
	content, err := page.Content()
	if err != nil {
		// can't read the page, let the selector wait decide its fate
		return nil
	}
	if !Detected(content) {
		g.state = Normal
		return nil
	}

	g.state = Suspected
	log.Println("🛑 Captcha/human check detected. Please solve it in the opened window.")
	if g.OnSuspect != nil {
		g.OnSuspect()
	}

	g.state = AwaitingManual
	var timeout <-chan time.Time
	if g.ResumeTimeout > 0 {
		timer := time.NewTimer(g.ResumeTimeout)
		defer timer.Stop()
		timeout = timer.C
	}
	select {
	case <-g.Resume:
	case <-timeout:
		g.state = Aborted
		return fmt.Errorf("no operator response within %s: %w", g.ResumeTimeout, ErrAborted)
	case <-ctx.Done():
		g.state = Aborted
		return ctx.Err()
	}

	g.state = Rechecking
	settle := g.SettleDelay
	if settle <= 0 {
		settle = 4 * time.Second
	}
	time.Sleep(settle)

	content, err = page.Content()
	if err == nil && !Detected(content) {
		g.state = Normal
		return nil
	}
	log.Println("❌ Still blocked by captcha. Stopping this run.")
	g.state = Aborted
	return ErrAborted
}
