package excuse

import (
	"fmt"
	"strings"
)

// seriousnessLabel maps the 1-5 scale to the wording used in the prompt.
// 1 is the silliest, 5 the most serious.
func seriousnessLabel(level int) string {
	switch level {
	case 1:
		return "very silly"
	case 2:
		return "playful"
	case 3:
		return "balanced"
	case 4:
		return "serious"
	default:
		return "very serious"
	}
}

// BuildPrompt maps a validated request to the instruction string sent to the
// model. Pure and deterministic: the same request always yields the same
// prompt. The model is told to open with a "Subject:" line so the normalizer
// can split the completion without guessing.
func BuildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("Generate a professional excuse email based on the following parameters:\n\n")
	b.WriteString(fmt.Sprintf("Category: %s\n", req.Category))
	b.WriteString(fmt.Sprintf("Tone: %s\n", req.Tone))
	b.WriteString(fmt.Sprintf("Seriousness Level: %d/5 (%s; 1=very silly, 5=very serious)\n",
		req.Seriousness, seriousnessLabel(req.Seriousness)))
	b.WriteString(fmt.Sprintf("Recipient: %s\n", req.RecipientName))
	b.WriteString(fmt.Sprintf("Sender: %s\n", req.SenderName))
	if req.ETAWhen != "" {
		b.WriteString(fmt.Sprintf("ETA/When: %s\n", req.ETAWhen))
	}

	b.WriteString("\nFormat the reply exactly as a plain-text email: the first line must be ")
	b.WriteString("\"Subject: <subject line>\", followed by a blank line, followed by the email body. ")
	b.WriteString("Do not wrap the reply in markdown or JSON.\n\n")

	b.WriteString("Guidelines:\n")
	b.WriteString(fmt.Sprintf("- Match the %s tone throughout\n", strings.ToLower(string(req.Tone))))
	b.WriteString("- Adjust formality to the seriousness level\n")
	if req.ETAWhen != "" {
		b.WriteString("- Work the ETA/when information in naturally\n")
	}
	b.WriteString(fmt.Sprintf("- Open the body with \"Dear %s\" and sign off as %s\n",
		req.RecipientName, req.SenderName))
	b.WriteString("- Keep it professional but appropriate for the tone\n")
	b.WriteString("- Use proper email formatting with line breaks\n")
	if req.Tone == ToneAssertive {
		b.WriteString("- Assertive means the sender is not at fault: attribute the situation to the ")
		b.WriteString("recipient with phrasing like \"due to your lack of advance notice\", ")
		b.WriteString("\"given your unclear instructions\", \"this could have been avoided if you had\", ")
		b.WriteString("\"the miscommunication on your end\", \"per our earlier conversation which you ")
		b.WriteString("seem to have forgotten\"\n")
	}

	return b.String()
}

// FallbackSubject synthesizes a subject line from the request when the
// completion carries no subject marker.
func FallbackSubject(req Request) string {
	if req.ETAWhen != "" {
		return fmt.Sprintf("%s - ETA %s", req.Category, req.ETAWhen)
	}
	return string(req.Category)
}
