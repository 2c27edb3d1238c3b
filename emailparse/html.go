package emailparse

import "regexp"

var (
	htmlTagRe       = regexp.MustCompile(`(?is)<[a-z].*>`)
	htmlStructureRe = regexp.MustCompile(`(?i)<!DOCTYPE\s+html|<html`)
)

// LooksLikeHTML reports whether the given text plausibly contains an HTML
// email: it must have HTML tags and either a DOCTYPE declaration or an html
// tag. Used to sanity-check user-supplied template files before they are
// fed back into the pipeline.
func LooksLikeHTML(content string) bool {
	return htmlTagRe.MatchString(content) && htmlStructureRe.MatchString(content)
}
