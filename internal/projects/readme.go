package projects

import (
	"encoding/base64"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// summaries are capped for card display; truncation keeps 297 chars
	// plus an ellipsis.
	summaryMaxLen = 300

	// sentence fragments at or below this length are assumed to be
	// headings or list stubs rather than prose.
	minSentenceLen = 20
)

var (
	base64Alphabet = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

	codeBlockPattern  = regexp.MustCompile("(?s)```.*?```")
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headingPattern    = regexp.MustCompile(`#{1,6}\s+`)
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern     = regexp.MustCompile(`\*([^*]+)\*`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	blankLinesPattern = regexp.MustCompile(`\n{2,}`)
	sentenceEnd       = regexp.MustCompile(`[.!?]+`)
)

// SummarizeReadme extracts a short descriptive excerpt from raw README
// content, decoding base64 first when the content looks encoded. It is
// best-effort: malformed or unusable input reports ok=false and never an
// error, since summarization must not fail the caller.
func SummarizeReadme(content string) (summary string, ok bool) {
	text := strings.TrimSpace(content)
	if text == "" {
		return "", false
	}

	// The API delivers README content base64-encoded with embedded
	// newlines; strip whitespace before testing the alphabet. Encoded
	// payloads are padded to a multiple of four, which keeps short
	// all-letter prose from being mistaken for an encoding. When a
	// decode attempt fails anyway, the raw text is still usable.
	if compact := stripWhitespace(text); looksBase64(compact) {
		if decoded, err := base64.StdEncoding.DecodeString(compact); err == nil && utf8.Valid(decoded) {
			text = string(decoded)
		}
	}

	text = codeBlockPattern.ReplaceAllString(text, "")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = headingPattern.ReplaceAllString(text, "")
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	text = strings.TrimSpace(blankLinesPattern.ReplaceAllString(text, "\n\n"))
	if text == "" {
		return "", false
	}

	var sentences []string
	for _, chunk := range sentenceEnd.Split(text, -1) {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) > minSentenceLen {
			sentences = append(sentences, chunk)
		}
	}

	if len(sentences) > 0 {
		summary := strings.Join(sentences[:min(2, len(sentences))], ". ")
		if len(summary) > summaryMaxLen {
			return truncateEllipsis(summary, summaryMaxLen), true
		}
		if len(sentences) > 2 {
			summary += "."
		}
		return summary, true
	}

	// No prose-like sentences at all; fall back to the cleaned text.
	if len(text) > summaryMaxLen {
		return truncateEllipsis(text, summaryMaxLen), true
	}
	return text, true
}

func looksBase64(s string) bool {
	return len(s) >= 16 && len(s)%4 == 0 && base64Alphabet.MatchString(s)
}

// truncateEllipsis bounds s to max bytes, stepping the cut back to a
// rune boundary so multi-byte characters are never split, and marks the
// cut with an ellipsis.
func truncateEllipsis(s string, max int) string {
	cut := max - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
