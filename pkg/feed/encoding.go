package feed

import (
	"fmt"
	"mime"
	"regexp"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/gogs/chardet"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	xmlDeclCharsetRe = regexp.MustCompile(`(?i)<\?xml[^?]*encoding=["']([^"']+)["']`)
	charsetCleanupRe = regexp.MustCompile(`[^a-z0-9]`)
)

// Normalize converts a raw feed payload to a UTF-8 string. Charset priority:
// transport Content-Type header, then the XML declaration inside the payload,
// then statistical detection, then pass-through as already-normalized text.
func Normalize(raw []byte, contentType string) (string, error) {
	charset := charsetFromContentType(contentType)
	if charset == "" {
		charset = charsetFromXMLDecl(raw)
	}
	if charset == "" {
		charset = detectCharset(raw)
	}

	if charsetCleanupRe.ReplaceAllString(strings.ToLower(charset), "") == "utf8" {
		return string(raw), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		lgr.Printf("[WARN] unknown charset %q, falling back to utf-8", charset)
		return string(raw), nil
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s payload: %w", charset, err)
	}
	lgr.Printf("[DEBUG] converted payload from %s to utf-8", charset)
	return string(decoded), nil
}

// charsetFromContentType pulls the charset parameter from a media type
func charsetFromContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}

// charsetFromXMLDecl scans the head of the payload for an XML declaration
func charsetFromXMLDecl(raw []byte) string {
	head := raw
	if len(head) > 200 {
		head = head[:200]
	}
	if m := xmlDeclCharsetRe.FindSubmatch(head); m != nil {
		return strings.TrimSpace(string(m[1]))
	}
	return ""
}

// detectCharset runs statistical detection, defaulting to utf-8 on low confidence
func detectCharset(raw []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil || result == nil || result.Confidence <= 50 {
		return "utf-8"
	}
	lgr.Printf("[DEBUG] charset auto-detected as %s (confidence %d)", result.Charset, result.Confidence)
	return result.Charset
}
