package scrape

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const jsonLDType = "application/ld+json"

// Decorative assets are excluded by filename heuristic.
var excludedImageFragments = []string{
	"icon", "badge", "payment", "1x1", "pixel", "spacer",
}

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	shopifyWidthRe = regexp.MustCompile(`([?&])width=\d+`)
)

// preferredImageWidth is substituted into Shopify CDN resize parameters for
// better downstream image quality.
const preferredImageWidth = "600"

func extractSignals(doc *goquery.Document, url string, maxImages, maxBodyChars int) *Signals {
	signals := &Signals{SourceURL: url}

	signals.StructuredData = extractStructuredData(doc)

	// Strip non-content elements before anything that reads text, keeping
	// structured-data blocks until after they are captured above.
	doc.Find("script, style, noscript, iframe").Remove()

	signals.Title = strings.TrimSpace(doc.Find("title").First().Text())
	signals.MetaDescription = doc.Find(`meta[name="description"]`).AttrOr("content", "")
	signals.OGImage = doc.Find(`meta[property="og:image"]`).AttrOr("content", "")
	signals.OGTitle = doc.Find(`meta[property="og:title"]`).AttrOr("content", "")
	signals.Images = extractImages(doc, maxImages)
	signals.BodyText = extractBodyText(doc, maxBodyChars)

	return signals
}

// extractStructuredData collects site-embedded JSON-LD blocks. Each block is
// parsed independently; parse failures are dropped, not fatal.
func extractStructuredData(doc *goquery.Document) []json.RawMessage {
	var blocks []json.RawMessage
	doc.Find("script[type='" + jsonLDType + "']").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" || !json.Valid([]byte(text)) {
			return
		}
		blocks = append(blocks, json.RawMessage(text))
	})
	return blocks
}

// extractImages collects images in document order, first occurrence wins for
// deduplication. URLs differing only by query parameters are considered
// duplicates.
func extractImages(doc *goquery.Document, maxImages int) []Image {
	var images []Image
	seen := make(map[string]bool)

	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src := s.AttrOr("src", "")
		if src == "" {
			src = s.AttrOr("data-src", "")
		}
		alt := s.AttrOr("alt", "")

		if strings.HasPrefix(src, "//") {
			src = "https:" + src
		}
		if !strings.HasPrefix(src, "http") {
			return true
		}
		for _, fragment := range excludedImageFragments {
			if strings.Contains(src, fragment) {
				return true
			}
		}

		src = normalizeImageURL(src)

		base, _, _ := strings.Cut(src, "?")
		if seen[base] {
			return true
		}
		seen[base] = true

		images = append(images, Image{URL: src, Alt: alt})
		return len(images) < maxImages
	})
	return images
}

// normalizeImageURL rewrites the Shopify CDN resize parameter to the
// preferred width. Best-effort: unmatched URLs pass through unchanged.
func normalizeImageURL(src string) string {
	if !strings.Contains(src, "cdn.shopify") {
		return src
	}
	if strings.Contains(src, "width=") {
		return shopifyWidthRe.ReplaceAllString(src, "${1}width="+preferredImageWidth)
	}
	if strings.Contains(src, "?") {
		return src + "&width=" + preferredImageWidth
	}
	return src + "?width=" + preferredImageWidth
}

func extractBodyText(doc *goquery.Document, maxBodyChars int) string {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return ""
	}
	body.Find("svg").Remove()
	text := whitespaceRe.ReplaceAllString(body.Text(), " ")
	text = strings.TrimSpace(text)
	if runes := []rune(text); len(runes) > maxBodyChars {
		text = string(runes[:maxBodyChars])
	}
	return text
}
