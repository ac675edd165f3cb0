package portfolio

import "strings"

// stripFence removes a surrounding fenced code block (optionally labelled
// with lang) from a model response. Responses without a fence pass through
// unchanged.
func stripFence(s, lang string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	body := trimmed[3:]
	if lang != "" && strings.HasPrefix(strings.ToLower(body), lang) {
		body = body[len(lang):]
	}
	// Drop the remainder of the fence line.
	if idx := strings.Index(body, "\n"); idx >= 0 {
		body = body[idx+1:]
	} else {
		body = ""
	}

	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}
