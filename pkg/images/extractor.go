// Package images mirrors image references embedded in entry HTML into the
// object store, tracking one task per (item, url) with a bounded retry budget.
package images

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractedImage is one qualifying image reference. Index is the img tag's
// position in document order, counting skipped tags too, so the index is
// stable regardless of how many references qualify.
type ExtractedImage struct {
	Index int
	URL   string
}

// ExtractImageURLs collects absolute http/https image references from entry
// HTML. Relative paths and data: URIs are skipped.
func ExtractImageURLs(html string) ([]ExtractedImage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse entry html: %w", err)
	}

	var images []ExtractedImage
	doc.Find("img").Each(func(i int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok {
			return
		}
		if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
			images = append(images, ExtractedImage{Index: i, URL: src})
		}
	})

	return images, nil
}
