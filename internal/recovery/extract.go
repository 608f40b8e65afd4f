// Package recovery extracts and parses backlog documents from noisy
// generated text: documents wrapped in prose or code fences, or carrying
// near-miss formatting errors.
package recovery

import "strings"

const projectToken = "project:"

// documentTerminators end a project: substring slice, tried in this order.
var documentTerminators = []string{"\n\n", "\r\n\r\n", "---", "###"}

// ExtractDocument returns the most plausible backlog document substring from
// arbitrary text. Stages are tried in order and the first hit wins:
// a trimmed input already starting with the project key is taken whole, then
// a yaml-tagged fence, then the first generic fence, then a slice from the
// project key to the first blank line, document separator, or heading.
// If nothing matches, the input comes back unchanged and the strict parse is
// left to fail with its own error.
func ExtractDocument(text string) string {
	if strings.HasPrefix(strings.TrimSpace(text), projectToken) {
		return text
	}

	if body, ok := fencedBlock(text, "```yaml"); ok {
		return body
	}
	if body, ok := fencedBlock(text, "```"); ok {
		return body
	}

	if start := strings.Index(text, projectToken); start != -1 {
		rest := text[start:]
		for _, term := range documentTerminators {
			if end := strings.Index(rest, term); end > 0 {
				return strings.TrimSpace(rest[:end])
			}
		}
		return strings.TrimSpace(rest)
	}

	return text
}

// fencedBlock returns the trimmed interior of the first fence opened by
// marker, if the interior is non-empty before the closing fence.
func fencedBlock(text, marker string) (string, bool) {
	start := strings.Index(text, marker)
	if start == -1 {
		return "", false
	}
	bodyStart := start + len(marker)
	end := strings.Index(text[bodyStart:], "```")
	if end <= 0 {
		return "", false
	}
	body := strings.TrimSpace(text[bodyStart : bodyStart+end])
	if body == "" {
		return "", false
	}
	return body, true
}
