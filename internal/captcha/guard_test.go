package captcha

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const challengeHTML = `<html><body><h1>Please verify you are human</h1></body></html>`
const cleanHTML = `<html><body><ul><li data-testid="result">job</li></ul></body></html>`

// fakePage serves a scripted sequence of page contents, repeating the
// last one once the script runs out.
type fakePage struct {
	contents []string
	i        int
}

func (f *fakePage) Content() (string, error) {
	c := f.contents[len(f.contents)-1]
	if f.i < len(f.contents) {
		c = f.contents[f.i]
	}
	f.i++
	return c, nil
}

func TestDetected(t *testing.T) {
	assert.True(t, Detected("... Verify You Are Human ..."))
	assert.True(t, Detected(`<iframe src="/captcha/challenge">`))
	assert.True(t, Detected("our systems have detected unusual traffic"))
	assert.False(t, Detected(cleanHTML))
}

func TestCheckCleanPage(t *testing.T) {
	g := &Guard{}
	err := g.Check(context.Background(), &fakePage{contents: []string{cleanHTML}})
	require.NoError(t, err)
	assert.Equal(t, Normal, g.State())
}

func TestCheckResolvedAfterManual(t *testing.T) {
	resume := make(chan struct{}, 1)
	resume <- struct{}{}

	suspected := false
	g := &Guard{
		Resume:      resume,
		SettleDelay: time.Millisecond,
		OnSuspect:   func() { suspected = true },
	}
	page := &fakePage{contents: []string{challengeHTML, cleanHTML}}

	err := g.Check(context.Background(), page)
	require.NoError(t, err)
	assert.True(t, suspected)
	assert.Equal(t, Normal, g.State())
}

func TestCheckStillBlockedAborts(t *testing.T) {
	resume := make(chan struct{}, 1)
	resume <- struct{}{}

	g := &Guard{Resume: resume, SettleDelay: time.Millisecond}
	page := &fakePage{contents: []string{challengeHTML, challengeHTML}}

	err := g.Check(context.Background(), page)
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, Aborted, g.State())
}

func TestCheckOperatorTimeoutAborts(t *testing.T) {
	g := &Guard{
		Resume:        make(chan struct{}),
		ResumeTimeout: 10 * time.Millisecond,
		SettleDelay:   time.Millisecond,
	}
	page := &fakePage{contents: []string{challengeHTML}}

	err := g.Check(context.Background(), page)
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, Aborted, g.State())
}

func TestCheckContextCancelAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &Guard{Resume: make(chan struct{}), SettleDelay: time.Millisecond}
	page := &fakePage{contents: []string{challengeHTML}}

	err := g.Check(ctx, page)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Aborted, g.State())
}

// From Suspected the machine lands in exactly Normal or Aborted after one
// recheck cycle, never anywhere in between.
func TestCheckTerminates(t *testing.T) {
	for _, second := range []string{cleanHTML, challengeHTML} {
		resume := make(chan struct{}, 1)
		resume <- struct{}{}
		g := &Guard{Resume: resume, SettleDelay: time.Millisecond}
		_ = g.Check(context.Background(), &fakePage{contents: []string{challengeHTML, second}})
		assert.Contains(t, []State{Normal, Aborted}, g.State())
	}
}
