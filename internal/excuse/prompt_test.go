package excuse

import (
	"strings"
	"testing"
)

func validRequest() Request {
	return Request{
		Category:      CategoryRunningLate,
		Tone:          TonePlayful,
		Seriousness:   3,
		RecipientName: "Alex",
		SenderName:    "Mona",
		ETAWhen:       "15 minutes",
	}
}

func TestBuildPrompt_ContainsCategoryAndToneVerbatim(t *testing.T) {
	for category := range categories {
		for tone := range tones {
			req := validRequest()
			req.Category = category
			req.Tone = tone

			prompt := BuildPrompt(req)
			if prompt == "" {
				t.Fatalf("empty prompt for %s/%s", category, tone)
			}
			if !strings.Contains(prompt, string(category)) {
				t.Errorf("prompt missing category %q", category)
			}
			if !strings.Contains(prompt, string(tone)) {
				t.Errorf("prompt missing tone %q", tone)
			}
		}
	}
}

func TestBuildPrompt_Smoke(t *testing.T) {
	prompt := BuildPrompt(validRequest())

	for _, want := range []string{
		"Seriousness Level: 3/5",
		"balanced",
		"Recipient: Alex",
		"Sender: Mona",
		"ETA/When: 15 minutes",
		"Subject:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	req := validRequest()
	if BuildPrompt(req) != BuildPrompt(req) {
		t.Fatal("prompt is not deterministic")
	}
}

func TestBuildPrompt_OmitsEmptyETA(t *testing.T) {
	req := validRequest()
	req.ETAWhen = ""

	prompt := BuildPrompt(req)
	if strings.Contains(prompt, "ETA/When") {
		t.Error("prompt mentions ETA/When without a value")
	}
}

func TestBuildPrompt_AssertiveGuidance(t *testing.T) {
	req := validRequest()
	req.Tone = ToneAssertive

	prompt := BuildPrompt(req)
	if !strings.Contains(prompt, "not at fault") {
		t.Error("assertive prompt missing blame-shifting guidance")
	}

	req.Tone = ToneSincere
	if strings.Contains(BuildPrompt(req), "not at fault") {
		t.Error("sincere prompt carries assertive guidance")
	}
}

func TestSeriousnessLabel_Range(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "very silly"},
		{2, "playful"},
		{3, "balanced"},
		{4, "serious"},
		{5, "very serious"},
	}
	for _, tt := range tests {
		if got := seriousnessLabel(tt.level); got != tt.want {
			t.Errorf("seriousnessLabel(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestFallbackSubject(t *testing.T) {
	req := validRequest()
	if got := FallbackSubject(req); got != "Running Late - ETA 15 minutes" {
		t.Errorf("FallbackSubject = %q", got)
	}

	req.ETAWhen = ""
	if got := FallbackSubject(req); got != "Running Late" {
		t.Errorf("FallbackSubject without ETA = %q", got)
	}
}
