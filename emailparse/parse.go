// Package emailparse splits the generation stage's raw text output into
// discrete, independently usable email documents. It is the authoritative
// consumer of the in-band sentinel wire format: documents separated by a
// literal marker comment, each optionally preceded by a style-name comment,
// and each bounded by a DOCTYPE-to-closing-html span.
package emailparse

import (
	"fmt"
	"regexp"
	"strings"
)

// Separator is the literal sentinel the generation prompt instructs the
// model to place between documents.
const Separator = "<!-- EMAIL_SEPARATOR -->"

// MinDocumentLength is the minimum viable HTML payload size. Shorter blocks
// are treated as truncated and discarded without failing the batch.
const MinDocumentLength = 100

var (
	separatorRe = regexp.MustCompile(`(?i)<!--\s*EMAIL_SEPARATOR\s*-->`)
	doctypeRe   = regexp.MustCompile(`(?i)<!DOCTYPE html>`)

	// documentRe recovers concatenated documents when the model ignored the
	// separator instruction: lazy, so each span ends at the nearest </html>.
	documentRe = regexp.MustCompile(`(?is)<!DOCTYPE html>.*?</html>`)

	// payloadRe extracts a block's payload: greedy, so the span runs from
	// the first DOCTYPE to the last </html> in the block.
	payloadRe = regexp.MustCompile(`(?is)<!DOCTYPE html>.*</html>`)

	// styleRe matches a style-name comment: a known aesthetic or any short
	// single-line phrase.
	styleRe = regexp.MustCompile(`(?i)<!--\s*(MINIMAL LUXURY|TROPICAL VIBRANT|EDITORIAL|MAGAZINE|PLAYFUL FRESH|\w[\w ]{0,38})\s*-->`)
)

// Document is one rendered email recovered from the response text.
type Document struct {
	// SequenceIndex is the 1-based position among surviving documents.
	SequenceIndex int `json:"sequenceIndex"`

	// StyleLabel is the human-readable design name, "Style <n>" if the
	// model did not provide one.
	StyleLabel string `json:"styleLabel"`

	// HTML is the complete document text, from its DOCTYPE marker through
	// the matching closing html tag.
	HTML string `json:"html"`
}

// Parse splits raw model output into email documents. It never fails: input
// producing zero valid documents yields an empty slice, and the caller
// decides whether that is an error.
func Parse(rawText string) []Document {
	var candidates []candidate
	if blocks := separatorRe.Split(rawText, -1); len(blocks) > 1 {
		for _, block := range blocks {
			if doctypeRe.MatchString(block) {
				candidates = append(candidates, candidate{
					label: extractStyleLabel(block),
					html:  extractPayload(block),
				})
			}
		}
	}
	if len(candidates) == 0 {
		// The model ignored the separator instruction, or used a different
		// one, or none at all. Re-scan the whole text for DOCTYPE..</html>
		// spans to recover concatenated documents. Any style comment lands
		// in the gap before each span.
		prev := 0
		for _, loc := range documentRe.FindAllStringIndex(rawText, -1) {
			candidates = append(candidates, candidate{
				label: styleLabelIn(rawText[prev:loc[0]]),
				html:  strings.TrimSpace(rawText[loc[0]:loc[1]]),
			})
			prev = loc[1]
		}
	}

	var docs []Document
	for _, c := range candidates {
		if len(c.html) < MinDocumentLength {
			continue
		}
		docs = append(docs, Document{
			StyleLabel: c.label,
			HTML:       c.html,
		})
	}

	// Numbering is contiguous over survivors, not original candidates, and
	// unlabeled documents take their surviving position.
	for i := range docs {
		docs[i].SequenceIndex = i + 1
		if docs[i].StyleLabel == "" {
			docs[i].StyleLabel = fmt.Sprintf("Style %d", i+1)
		}
	}
	return docs
}

type candidate struct {
	label string
	html  string
}

// extractPayload returns the HTML span of a block, or the whole trimmed
// block when no complete DOCTYPE..</html> span is present.
func extractPayload(block string) string {
	if match := payloadRe.FindString(block); match != "" {
		return strings.TrimSpace(match)
	}
	return strings.TrimSpace(block)
}

// extractStyleLabel pulls the design name from a comment preceding the
// document, e.g. <!-- EDITORIAL -->. Only the text before the DOCTYPE is
// considered so comments inside the document body are not mistaken for
// labels.
func extractStyleLabel(block string) string {
	prefix := block
	if loc := doctypeRe.FindStringIndex(block); loc != nil {
		prefix = block[:loc[0]]
	}
	return styleLabelIn(prefix)
}

// styleLabelIn returns the first style-name comment in the given text.
func styleLabelIn(text string) string {
	match := styleRe.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}
