package excuse

import "strings"

// subjectMarker is the one recognized subject prefix. The prompt instructs
// the model to start with this exact marker; matching is case-insensitive
// and tolerates leading whitespace, nothing more.
const subjectMarker = "subject:"

// Normalize splits a raw completion into subject and body. If the first
// non-blank line starts with the subject marker, that line (marker stripped)
// is the subject and the remaining lines are the body; otherwise the subject
// is synthesized from the request and the whole completion becomes the body.
// Both fields are trimmed. Safe on empty input, though the completion client
// rejects empty completions before this runs.
func Normalize(completion string, req Request) (subject, body string) {
	lines := strings.Split(completion, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if len(trimmed) >= len(subjectMarker) &&
			strings.EqualFold(trimmed[:len(subjectMarker)], subjectMarker) {
			subject = strings.TrimSpace(trimmed[len(subjectMarker):])
			body = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
			if subject == "" {
				subject = FallbackSubject(req)
			}
			return subject, body
		}
		break
	}

	return FallbackSubject(req), strings.TrimSpace(completion)
}
