// Package excuse defines the excuse email domain: the request and response
// models, the prompt assembled for the model-serving endpoint, and the
// normalization of raw completions into a subject and body.
package excuse

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRequest = errors.New("invalid excuse request")

// Category is the closed set of excuse situations the UI offers.
type Category string

const (
	CategoryRunningLate   Category = "Running Late"
	CategoryMissedMeeting Category = "Missed Meeting"
	CategoryDeadline      Category = "Deadline"
	CategoryWFHOOO        Category = "WFH/OOO"
	CategorySocial        Category = "Social"
	CategoryTravel        Category = "Travel"
)

// Tone is the closed set of writing styles the UI offers.
type Tone string

const (
	ToneSincere   Tone = "Sincere"
	TonePlayful   Tone = "Playful"
	ToneCorporate Tone = "Corporate"
	ToneAssertive Tone = "Assertive"
)

var categories = map[Category]struct{}{
	CategoryRunningLate:   {},
	CategoryMissedMeeting: {},
	CategoryDeadline:      {},
	CategoryWFHOOO:        {},
	CategorySocial:        {},
	CategoryTravel:        {},
}

var tones = map[Tone]struct{}{
	ToneSincere:   {},
	TonePlayful:   {},
	ToneCorporate: {},
	ToneAssertive: {},
}

// Request carries the form parameters for one excuse email.
type Request struct {
	Category      Category `json:"category"`
	Tone          Tone     `json:"tone"`
	Seriousness   int      `json:"seriousness"`
	RecipientName string   `json:"recipient_name"`
	SenderName    string   `json:"sender_name"`

	// ETAWhen is optional free-text timing context, e.g. "15 minutes".
	ETAWhen string `json:"eta_when,omitempty"`
}

// Response is the stable wire contract returned by the API. Exactly one of
// (subject+body, error) is populated, tracked by Success.
type Response struct {
	Subject string  `json:"subject"`
	Body    string  `json:"body"`
	Success bool    `json:"success"`
	Error   *string `json:"error"`
}

// SuccessResponse builds a successful response.
func SuccessResponse(subject, body string) Response {
	return Response{Subject: subject, Body: body, Success: true}
}

// FailureResponse builds a failed response with empty subject and body.
func FailureResponse(message string) Response {
	return Response{Success: false, Error: &message}
}

// Validate checks the request against the domain invariants. It returns an
// error wrapping ErrInvalidRequest naming the first offending field.
func (r *Request) Validate() error {
	if _, ok := categories[r.Category]; !ok {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidRequest, r.Category)
	}
	if _, ok := tones[r.Tone]; !ok {
		return fmt.Errorf("%w: unknown tone %q", ErrInvalidRequest, r.Tone)
	}
	if r.Seriousness < 1 || r.Seriousness > 5 {
		return fmt.Errorf("%w: seriousness %d out of range [1,5]", ErrInvalidRequest, r.Seriousness)
	}
	if strings.TrimSpace(r.RecipientName) == "" {
		return fmt.Errorf("%w: recipient_name is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.SenderName) == "" {
		return fmt.Errorf("%w: sender_name is required", ErrInvalidRequest)
	}
	return nil
}
