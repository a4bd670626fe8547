package adapters

import (
	"strings"

	"nonprofit-scraper/internal/types"
)

// maxExpectedLinks is the number of profile links the contact block normally carries
const maxExpectedLinks = 3

// ExtractContactInfo reads the contact block of a detail page
func ExtractContactInfo(doc types.Node, logger types.Logger) types.ContactInfo {
	var contact types.ContactInfo

	container, ok := doc.First(`div[id='np-info']`)
	if !ok {
		return contact
	}

	contact.TaxID = ExtractText(container, `span[itemprop='taxID']`)
	contact.Email = ExtractText(container, `a[itemprop='email']`)
	contact.PhoneNumber = ExtractText(container, `a[itemprop='telephone']`)

	links := container.Find(`a[itemprop='url']`)
	if len(links) > maxExpectedLinks {
		logger.Warnf("Org has more links than expected (%d)", len(links))
	}
	for _, link := range links {
		href, _ := link.Attr("href")
		switch {
		case strings.Contains(href, "facebook"):
			contact.FacebookURL = types.String(href)
		case strings.Contains(href, "twitter"):
			contact.TwitterURL = types.String(href)
		default:
			contact.Website = types.String(href)
		}
	}

	if addressEl, ok := container.First(`li[itemprop='address']`); ok {
		contact.Address = &types.Address{
			Street:     ExtractText(addressEl, `span[itemprop='streetAddress']`),
			Locality:   ExtractText(addressEl, `span[itemprop='addressLocality']`),
			Region:     ExtractText(addressEl, `span[itemprop='addressRegion']`),
			PostalCode: ExtractText(addressEl, `span[itemprop='postalCode']`),
			Country:    ExtractText(addressEl, `span[itemprop='addressCountry']`),
		}
	}

	return contact
}
