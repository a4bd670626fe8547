package types

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// CausesCategory is the only description category whose value is a list
const CausesCategory = "Causes"

// OrgRecord represents one organization scraped from the directory.
// Every field is optional; a field is nil when it could not be scraped.
// Description, ContactInfo and Reviews stay nil until the detail page was
// enriched, and are non-nil (possibly empty) afterwards.
type OrgRecord struct {
	Name          *string      `json:"name,omitempty"`
	DetailURL     *string      `json:"detailUrl,omitempty"`
	ReviewCount   *int         `json:"reviewCount,omitempty"`
	AverageRating *int         `json:"averageRating,omitempty"`
	Description   Description  `json:"description,omitempty"`
	ContactInfo   *ContactInfo `json:"contactInfo,omitempty"`
	Reviews       []Review     `json:"reviews,omitempty"`
}

// orgRecordJSON mirrors OrgRecord with pointer collections so that an empty
// but extracted description or review list is kept in the output
type orgRecordJSON struct {
	Name          *string      `json:"name,omitempty"`
	DetailURL     *string      `json:"detailUrl,omitempty"`
	ReviewCount   *int         `json:"reviewCount,omitempty"`
	AverageRating *int         `json:"averageRating,omitempty"`
	Description   *Description `json:"description,omitempty"`
	ContactInfo   *ContactInfo `json:"contactInfo,omitempty"`
	Reviews       *[]Review    `json:"reviews,omitempty"`
}

// MarshalJSON omits Description and Reviews only when they are nil, so a
// detail page without an overview or reviews encodes as {} and [].
func (o OrgRecord) MarshalJSON() ([]byte, error) {
	out := orgRecordJSON{
		Name:          o.Name,
		DetailURL:     o.DetailURL,
		ReviewCount:   o.ReviewCount,
		AverageRating: o.AverageRating,
		ContactInfo:   o.ContactInfo,
	}
	if o.Description != nil {
		out.Description = &o.Description
	}
	if o.Reviews != nil {
		out.Reviews = &o.Reviews
	}
	return json.Marshal(out)
}

// DisplayName returns the record name for log lines
func (o OrgRecord) DisplayName() string {
	if o.Name == nil {
		return "<unnamed>"
	}
	return *o.Name
}

// Description maps an overview category label to its value
type Description map[string]DescriptionValue

// DescriptionValue holds either scalar text or, for the Causes category, a list of causes
type DescriptionValue struct {
	Text   string
	Causes []string
}

// TextValue creates a scalar description value
func TextValue(text string) DescriptionValue {
	return DescriptionValue{Text: text}
}

// ListValue creates a list description value
func ListValue(items []string) DescriptionValue {
	if items == nil {
		items = []string{}
	}
	return DescriptionValue{Causes: items}
}

// IsList reports whether the value is list-typed
func (d DescriptionValue) IsList() bool {
	return d.Causes != nil
}

// MarshalJSON encodes the value as a JSON string or a JSON array
func (d DescriptionValue) MarshalJSON() ([]byte, error) {
	if d.IsList() {
		return json.Marshal(d.Causes)
	}
	return json.Marshal(d.Text)
}

// UnmarshalJSON accepts either a JSON string or a JSON array of strings
func (d *DescriptionValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("invalid description list: %w", err)
		}
		*d = ListValue(items)
		return nil
	}

	var text string
	if err := json.Unmarshal(trimmed, &text); err != nil {
		return fmt.Errorf("invalid description text: %w", err)
	}
	*d = TextValue(text)
	return nil
}

// ContactInfo represents the contact block of an organization's detail page
type ContactInfo struct {
	TaxID       *string  `json:"taxId,omitempty"`
	Email       *string  `json:"email,omitempty"`
	PhoneNumber *string  `json:"phoneNumber,omitempty"`
	FacebookURL *string  `json:"facebookUrl,omitempty"`
	TwitterURL  *string  `json:"twitterUrl,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Address     *Address `json:"address,omitempty"`
}

// Address represents a postal address
type Address struct {
	Street     *string `json:"street,omitempty"`
	Locality   *string `json:"locality,omitempty"`
	Region     *string `json:"region,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	Country    *string `json:"country,omitempty"`
}

// Review represents a single review, both fields optional
type Review struct {
	Rating *int    `json:"rating,omitempty"`
	Text   *string `json:"text,omitempty"`
}

// String returns a pointer to s
func String(s string) *string {
	return &s
}

// Int returns a pointer to i
func Int(i int) *int {
	return &i
}

// Node is a loaded document, or an element within it, that extractors query
type Node interface {
	// Find returns every element matching selector, in document order
	Find(selector string) []Node

	// First returns the first element matching selector
	First(selector string) (Node, bool)

	// Text returns the element text with whitespace runs collapsed and trimmed
	Text() string

	// Attr returns the value of an attribute
	Attr(name string) (string, bool)
}

// Config holds the configuration for the scraper
type Config struct {
	BaseURL            string
	State              string
	MaxListPages       int
	Timeout            time.Duration
	UseHeadlessBrowser bool
	Headless           bool
	UserAgent          string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:            "https://greatnonprofits.org",
		State:              "California",
		MaxListPages:       2,
		Timeout:            60 * time.Second,
		UseHeadlessBrowser: true,
		Headless:           true,
		UserAgent:          "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}

// PageLoader fetches the fully loaded HTML of a page
type PageLoader interface {
	GetPageContent(ctx context.Context, url string) (string, error)
}

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}
