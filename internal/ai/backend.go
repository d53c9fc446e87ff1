// Package ai talks to text-completion services. Vendor-specific request and
// response shapes stay inside one Backend adapter per vendor family; the
// retry and fallback orchestration in Client is vendor-agnostic.
package ai

import "context"

const (
	// systemInstruction pins the output contract for every backend.
	systemInstruction = "You are a travel planner that must return ONLY valid JSON (no markdown, no extra text)."
	// userReinforcement is appended after the prompt as a trailing reminder.
	userReinforcement = "Return ONLY valid JSON. Do not wrap with markdown fences."
)

type Options struct {
	Temperature float32
	MaxTokens   int
}

// Backend sends one prompt to one upstream model and returns the raw text of
// its reply. An HTTP 200 with empty or absent content comes back as an empty
// string with a nil error; the normalizer downstream rejects it.
type Backend interface {
	Name() string
	Send(ctx context.Context, prompt string, opts Options) (string, error)
}
