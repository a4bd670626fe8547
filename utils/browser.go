package utils

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"nonprofit-scraper/internal/types"
)

// BrowserClient drives a single headless browser tab that is reused for every navigation
type BrowserClient struct {
	config *types.Config
	logger types.Logger

	mu          sync.Mutex
	tabCtx      context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// NewBrowserClient creates a new browser client. The browser is started lazily on first use.
func NewBrowserClient(config *types.Config, logger types.Logger) *BrowserClient {
	return &BrowserClient{
		config: config,
		logger: logger,
	}
}

// start launches the browser and opens the shared tab
func (b *BrowserClient) start() (context.Context, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.tabCtx != nil {
		return b.tabCtx, nil
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", b.config.Headless),
		chromedp.UserAgent(b.config.UserAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	// chromedp's own logging is noise at our level
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		if e, ok := ev.(*runtime.EventConsoleAPICalled); ok {
			b.logger.Debugf("browser console: %s", consoleText(e))
		}
	})

	// Run with no actions allocates the browser and the tab
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	b.tabCtx = tabCtx
	b.cancelTab = cancelTab
	b.cancelAlloc = cancelAlloc
	b.logger.Debugf("Browser started (headless=%v)", b.config.Headless)
	return tabCtx, nil
}

// GetPageContent navigates the shared tab to url, waits for the network to go idle,
// and returns the rendered HTML of the page
func (b *BrowserClient) GetPageContent(ctx context.Context, url string) (string, error) {
	tabCtx, err := b.start()
	if err != nil {
		return "", err
	}

	// Bound this navigation by the caller context and the configured timeout
	navCtx, cancel := context.WithTimeout(tabCtx, b.config.Timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var html string
	err = chromedp.Run(navCtx,
		navigateAndWaitNetworkIdle(url),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("failed to load %s: %w", url, ctx.Err())
		}
		return "", fmt.Errorf("failed to load %s: %w", url, err)
	}

	b.logger.Debugf("Successfully retrieved page content from %s (%d bytes)", url, len(html))
	return html, nil
}

// navigateAndWaitNetworkIdle navigates and blocks until the page reports the
// networkIdle lifecycle event for the new document
func navigateAndWaitNetworkIdle(url string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		listenCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		idle := make(chan cdp.LoaderID, 16)
		chromedp.ListenTarget(listenCtx, func(ev interface{}) {
			if e, ok := ev.(*page.EventLifecycleEvent); ok && e.Name == "networkIdle" {
				select {
				case idle <- e.LoaderID:
				default:
				}
			}
		})

		if err := page.SetLifecycleEventsEnabled(true).Do(ctx); err != nil {
			return fmt.Errorf("failed to enable lifecycle events: %w", err)
		}

		_, loaderID, errorText, err := page.Navigate(url).Do(ctx)
		if err != nil {
			return fmt.Errorf("navigation failed: %w", err)
		}
		if errorText != "" {
			return fmt.Errorf("navigation failed: %s", errorText)
		}

		for {
			select {
			case id := <-idle:
				// Events from the previous document are ignored
				if id == loaderID {
					return nil
				}
			case <-ctx.Done():
				return fmt.Errorf("waiting for network idle: %w", ctx.Err())
			}
		}
	}
}

func consoleText(e *runtime.EventConsoleAPICalled) string {
	parts := make([]string, 0, len(e.Args))
	for _, arg := range e.Args {
		if arg.Value != nil {
			parts = append(parts, strings.Trim(string(arg.Value), `"`))
		} else if arg.Description != "" {
			parts = append(parts, arg.Description)
		}
	}
	return strings.Join(parts, " ")
}

// Close shuts down the tab and the browser process
func (b *BrowserClient) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancelTab != nil {
		b.cancelTab()
	}
	if b.cancelAlloc != nil {
		b.cancelAlloc()
	}
	b.tabCtx = nil
	b.cancelTab = nil
	b.cancelAlloc = nil
}
