package feed

import (
	"crypto/md5" //nolint:gosec // md5 used for stable non-cryptographic identity
	"encoding/hex"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
)

// ParsedFeed is the normalized adapter output: feed metadata plus entries
// in document order
type ParsedFeed struct {
	Title string
	Link  string
	Items []ParsedItem
}

// ParsedItem is one normalized entry. ID is freshly generated per ingest;
// GUID is the stable per-feed identity used for dedup.
type ParsedItem struct {
	ID          string
	GUID        string
	Link        string
	Title       string
	PubDate     time.Time
	ContentHTML string
}

// Parser adapts normalized feed text (RSS, Atom, JSON Feed) into entries
type Parser struct {
	parser *gofeed.Parser
}

// NewParser creates a feed format adapter
func NewParser() *Parser {
	return &Parser{parser: gofeed.NewParser()}
}

// Adapt converts UTF-8 feed text into feed metadata and ordered entries.
// Entries with no usable publish time get the current time; relative src and
// href references in entry HTML are resolved against the feed link.
func (p *Parser) Adapt(text, sourceURL string) (*ParsedFeed, error) {
	parsed, err := p.parser.ParseString(text)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", sourceURL, err)
	}

	result := &ParsedFeed{
		Title: parsed.Title,
		Link:  parsed.Link,
		Items: make([]ParsedItem, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		var published *time.Time
		if item.PublishedParsed != nil {
			published = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = item.UpdatedParsed
		}

		pubDate := time.Now().UTC()
		if published != nil {
			pubDate = published.UTC()
		}

		content := item.Content
		if content == "" {
			content = item.Description
		}
		if content != "" && result.Link != "" {
			content = resolveRelativeURLs(content, result.Link)
		}

		result.Items = append(result.Items, ParsedItem{
			ID:          uuid.NewString(),
			GUID:        resolveGUID(item.GUID, item.Link, item.Title, published),
			Link:        item.Link,
			Title:       item.Title,
			PubDate:     pubDate,
			ContentHTML: content,
		})
	}

	return result, nil
}

// resolveGUID picks the stable per-feed entry identity: adapter id, else
// link, else a content hash of title and the raw publish time. The raw time
// (not the ingest-time default) keeps the hash stable across re-ingestion.
func resolveGUID(id, link, title string, published *time.Time) string {
	if id != "" {
		return id
	}
	if link != "" {
		return link
	}
	raw := title
	if published != nil {
		raw += published.UTC().Format(time.RFC3339)
	}
	sum := md5.Sum([]byte(raw)) //nolint:gosec // stable identity, not security
	return hex.EncodeToString(sum[:])
}

var urlAttrRe = regexp.MustCompile(`(?i)(src|href)=["']([^"']+)["']`)

// resolveRelativeURLs rewrites relative src/href attribute values to absolute
// ones against baseURL, leaving absolute, data: and fragment references alone
func resolveRelativeURLs(html, baseURL string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return html
	}

	return urlAttrRe.ReplaceAllStringFunc(html, func(match string) string {
		parts := urlAttrRe.FindStringSubmatch(match)
		attr, ref := parts[1], parts[2]

		lower := strings.ToLower(ref)
		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
			strings.HasPrefix(lower, "data:") || strings.HasPrefix(ref, "#") {
			return match
		}

		resolved, err := base.Parse(ref)
		if err != nil {
			return match
		}
		return fmt.Sprintf("%s=%q", strings.ToLower(attr), resolved.String())
	})
}
