package adapters

import (
	"context"
	"fmt"
	"strconv"

	"nonprofit-scraper/internal/types"
	"nonprofit-scraper/utils"
)

// BaseAdapter provides the page loading and element helpers shared by site adapters.
type BaseAdapter struct {
	config *types.Config    // Configuration settings (base URL, timeouts, browser settings)
	logger types.Logger     // Structured logging interface
	loader types.PageLoader // Headless browser or plain HTTP loader
}

// NewBaseAdapter creates a new base adapter around the given page loader.
func NewBaseAdapter(config *types.Config, logger types.Logger, loader types.PageLoader) *BaseAdapter {
	return &BaseAdapter{
		config: config,
		logger: logger,
		loader: loader,
	}
}

// LoadDocument loads url through the page loader and parses the result.
// The returned document is a snapshot, so nothing from a previous page can leak into it.
func (b *BaseAdapter) LoadDocument(ctx context.Context, url string) (types.Node, error) {
	html, err := b.loader.GetPageContent(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := utils.ParseDocument(html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}
	return doc, nil
}

// Config returns the scraper configuration the adapter was built with
func (b *BaseAdapter) Config() *types.Config {
	return b.config
}

// ExtractText returns the text of the first element matching selector, or nil when absent
func ExtractText(node types.Node, selector string) *string {
	el, ok := node.First(selector)
	if !ok {
		return nil
	}
	return types.String(el.Text())
}

// ExtractInt parses the text of the first element matching selector as an integer,
// or returns nil when the element is absent or its text has no leading integer
func ExtractInt(node types.Node, selector string) *int {
	el, ok := node.First(selector)
	if !ok {
		return nil
	}
	return parseLeadingInt(el.Text())
}

// parseLeadingInt reads an optional sign followed by leading decimal digits and ignores
// the rest, so "12 reviews" is 12 and "1,204" is 1. Text without leading digits is nil.
func parseLeadingInt(s string) *int {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return nil
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}
