// Package browser provides pooled automated-browsing sessions.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
	"github.com/rotisserie/eris"
)

// Session is one reusable automated-browsing instance. A session is owned
// by at most one task at a time; tasks obtain one through Pool.Acquire and
// must hand it back with Pool.Release whether they succeeded or not.
type Session interface {
	// Navigate loads url and blocks until the main frame has loaded.
	Navigate(ctx context.Context, url string) error
	// WaitFor blocks until the selector is present in the DOM or the
	// timeout elapses.
	WaitFor(ctx context.Context, selector string, timeout time.Duration) error
	// CurrentMarkup returns the full HTML of the current page.
	CurrentMarkup(ctx context.Context) (string, error)
	// TypeAndSubmit focuses the named input, types text and presses Enter.
	TypeAndSubmit(ctx context.Context, fieldName, text string) error
	// Reset returns the session to a neutral state between uses.
	Reset(ctx context.Context) error
	// Close releases the underlying browser instance.
	Close()
}

const navigateTimeout = 30 * time.Second

// ChromeFactory creates chromedp-backed sessions off one shared exec
// allocator.
type ChromeFactory struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromeFactory starts a shared headless-Chrome allocator.
func NewChromeFactory() *ChromeFactory {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("ignore-certificate-errors", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &ChromeFactory{allocCtx: allocCtx, allocCancel: allocCancel}
}

// NewSession starts one browser context and warms it on about:blank.
func (f *ChromeFactory) NewSession() (Session, error) {
	ctx, cancel := chromedp.NewContext(f.allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	initCtx, initCancel := context.WithTimeout(ctx, navigateTimeout)
	defer initCancel()
	if err := chromedp.Run(initCtx, chromedp.Navigate("about:blank")); err != nil {
		cancel()
		return nil, eris.Wrap(err, "browser: initializing session")
	}

	return &chromeSession{ctx: ctx, cancel: cancel}, nil
}

// Close shuts down the shared allocator and every session spawned from it.
func (f *ChromeFactory) Close() {
	f.allocCancel()
}

type chromeSession struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// run executes actions against the session's browser context, bounded by
// the caller's context and the given timeout.
func (s *chromeSession) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runCtx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()
	return chromedp.Run(runCtx, actions...)
}

func (s *chromeSession) Navigate(ctx context.Context, url string) error {
	if err := s.run(ctx, navigateTimeout, chromedp.Navigate(url)); err != nil {
		return eris.Wrapf(err, "browser: navigating to %s", url)
	}
	return nil
}

func (s *chromeSession) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	if err := s.run(ctx, timeout, chromedp.WaitReady(selector, chromedp.ByQuery)); err != nil {
		return eris.Wrapf(err, "browser: waiting for %q", selector)
	}
	return nil
}

func (s *chromeSession) CurrentMarkup(ctx context.Context) (string, error) {
	var html string
	if err := s.run(ctx, navigateTimeout, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", eris.Wrap(err, "browser: reading page markup")
	}
	return html, nil
}

func (s *chromeSession) TypeAndSubmit(ctx context.Context, fieldName, text string) error {
	sel := fmt.Sprintf(`input[name=%q]`, fieldName)
	err := s.run(ctx, navigateTimeout,
		chromedp.WaitVisible(sel, chromedp.ByQuery),
		chromedp.Clear(sel, chromedp.ByQuery),
		chromedp.SendKeys(sel, text+kb.Enter, chromedp.ByQuery),
	)
	if err != nil {
		return eris.Wrapf(err, "browser: submitting %q", fieldName)
	}
	return nil
}

// Reset clears cookies and parks the session on a blank page so the next
// checkout starts from a neutral state.
func (s *chromeSession) Reset(ctx context.Context) error {
	return s.run(ctx, 3*time.Second,
		network.ClearBrowserCookies(),
		chromedp.Navigate("about:blank"),
	)
}

func (s *chromeSession) Close() {
	s.cancel()
}
