package emailparse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleEmail returns a well-formed document comfortably above the minimum
// length threshold.
func sampleEmail(body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Email</title></head>
<body><table role="presentation"><tr><td style="padding: 20px;">%s</td></tr></table></body>
</html>`, body)
}

func TestParseSeparatedDocuments(t *testing.T) {
	raw := sampleEmail("one") + "\n<!-- EMAIL_SEPARATOR -->\n" + sampleEmail("two") +
		"\n<!-- EMAIL_SEPARATOR -->\n" + sampleEmail("three")

	docs := Parse(raw)
	require.Len(t, docs, 3)
	for i, doc := range docs {
		require.Equal(t, i+1, doc.SequenceIndex)
		require.True(t, strings.HasPrefix(doc.HTML, "<!DOCTYPE html>"))
		require.True(t, strings.HasSuffix(doc.HTML, "</html>"))
	}
	require.Contains(t, docs[0].HTML, "one")
	require.Contains(t, docs[1].HTML, "two")
	require.Contains(t, docs[2].HTML, "three")
}

func TestParseSeparatorCaseAndWhitespace(t *testing.T) {
	raw := sampleEmail("a") + "<!--email_separator-->" + sampleEmail("b") +
		"<!--  EMAIL_SEPARATOR  -->" + sampleEmail("c")
	docs := Parse(raw)
	require.Len(t, docs, 3)
}

func TestParseFallbackWithoutSeparators(t *testing.T) {
	// Documents concatenated with no separator at all: the greedy re-scan
	// must still recover each one.
	raw := sampleEmail("first") + "\n" + sampleEmail("second")
	docs := Parse(raw)
	require.Len(t, docs, 2)
	require.Contains(t, docs[0].HTML, "first")
	require.NotContains(t, docs[0].HTML, "second")
	require.Contains(t, docs[1].HTML, "second")
	require.Equal(t, 1, docs[0].SequenceIndex)
	require.Equal(t, 2, docs[1].SequenceIndex)
}

func TestParseDiscardsProsePreamble(t *testing.T) {
	raw := "Here are your emails!\n<!-- EMAIL_SEPARATOR -->\n" + sampleEmail("real")
	docs := Parse(raw)
	require.Len(t, docs, 1)
	require.Contains(t, docs[0].HTML, "real")
}

func TestParseDiscardsShortDocuments(t *testing.T) {
	tiny := "<!DOCTYPE html><html></html>"
	require.Less(t, len(tiny), MinDocumentLength)

	raw := sampleEmail("keep") + "\n<!-- EMAIL_SEPARATOR -->\n" + tiny +
		"\n<!-- EMAIL_SEPARATOR -->\n" + sampleEmail("also keep")
	docs := Parse(raw)
	require.Len(t, docs, 2)

	// Numbering is contiguous over survivors.
	require.Equal(t, 1, docs[0].SequenceIndex)
	require.Equal(t, 2, docs[1].SequenceIndex)
	require.Equal(t, "Style 1", docs[0].StyleLabel)
	require.Equal(t, "Style 2", docs[1].StyleLabel)
}

func TestParseEmptyInputs(t *testing.T) {
	require.Empty(t, Parse(""))
	require.Empty(t, Parse("no html here"))
	require.Empty(t, Parse("<!-- EMAIL_SEPARATOR -->"))
}

func TestParseStyleLabels(t *testing.T) {
	raw := "<!-- EDITORIAL -->\n" + sampleEmail("styled") +
		"\n<!-- EMAIL_SEPARATOR -->\n<!-- TROPICAL VIBRANT -->\n" + sampleEmail("tropical") +
		"\n<!-- EMAIL_SEPARATOR -->\n" + sampleEmail("plain")

	docs := Parse(raw)
	require.Len(t, docs, 3)
	require.Equal(t, "EDITORIAL", docs[0].StyleLabel)
	require.Equal(t, "TROPICAL VIBRANT", docs[1].StyleLabel)
	require.Equal(t, "Style 3", docs[2].StyleLabel)
}

func TestParseStyleLabelIgnoresBodyComments(t *testing.T) {
	raw := sampleEmail("<!-- preheader -->content")
	docs := Parse(raw)
	require.Len(t, docs, 1)
	require.Equal(t, "Style 1", docs[0].StyleLabel)
}

func TestParseFallbackLabelUsesSurvivingPosition(t *testing.T) {
	tiny := "<!DOCTYPE html><html></html>"
	raw := tiny + "\n<!-- EMAIL_SEPARATOR -->\n" + sampleEmail("survivor")
	docs := Parse(raw)
	require.Len(t, docs, 1)
	require.Equal(t, "Style 1", docs[0].StyleLabel)
	require.Equal(t, 1, docs[0].SequenceIndex)
}

func TestParseFallbackKeepsStyleLabels(t *testing.T) {
	raw := "<!-- EDITORIAL -->\n" + sampleEmail("one") +
		"\n<!-- MAGAZINE -->\n" + sampleEmail("two")
	docs := Parse(raw)
	require.Len(t, docs, 2)
	require.Equal(t, "EDITORIAL", docs[0].StyleLabel)
	require.Equal(t, "MAGAZINE", docs[1].StyleLabel)
}

func TestParseCaseInsensitiveDoctype(t *testing.T) {
	lower := strings.ReplaceAll(sampleEmail("lowercase"), "<!DOCTYPE html>", "<!doctype html>")
	docs := Parse(lower)
	require.Len(t, docs, 1)
	require.True(t, strings.HasPrefix(docs[0].HTML, "<!doctype html>"))
}

func TestParsePayloadTrimsSurroundingChatter(t *testing.T) {
	raw := "Sure! Here is the email you asked for:\n\n" + sampleEmail("content") +
		"\n\nLet me know if you need adjustments."
	docs := Parse(raw)
	require.Len(t, docs, 1)
	require.True(t, strings.HasPrefix(docs[0].HTML, "<!DOCTYPE html>"))
	require.True(t, strings.HasSuffix(docs[0].HTML, "</html>"))
	require.NotContains(t, docs[0].HTML, "Let me know")
}

func TestParseManyDocumentsStableOrder(t *testing.T) {
	var parts []string
	for i := 0; i < 4; i++ {
		parts = append(parts, sampleEmail(fmt.Sprintf("variation-%d", i)))
	}
	docs := Parse(strings.Join(parts, "\n<!-- EMAIL_SEPARATOR -->\n"))
	require.Len(t, docs, 4)
	for i, doc := range docs {
		require.Equal(t, i+1, doc.SequenceIndex)
		require.Contains(t, doc.HTML, fmt.Sprintf("variation-%d", i))
	}
}

func TestLooksLikeHTML(t *testing.T) {
	require.True(t, LooksLikeHTML(sampleEmail("x")))
	require.True(t, LooksLikeHTML("<html><body>hi</body></html>"))
	require.False(t, LooksLikeHTML("just some plain text"))
	require.False(t, LooksLikeHTML("{\"json\": true}"))
}
