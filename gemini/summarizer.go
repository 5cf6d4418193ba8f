// Package gemini summarizes notifications using the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/awalczak/govnotice"
	"google.golang.org/genai"
)

// DefaultModel is the model used when the caller does not pick one.
const DefaultModel = "gemini-2.5-flash"

// DefaultTimeout bounds a single summarization call. The external call is
// the slowest, least reliable step in the pipeline; a stuck call must not
// hold up the remaining items.
const DefaultTimeout = 30 * time.Second

// Generation settings. Low temperature favors conservative, repeatable
// phrasing over creative variation; the token cap keeps summaries short.
const (
	temperature     = 0.3
	maxOutputTokens = 150
)

// Ensure Summarizer implements govnotice.Summarizer at compile time.
var _ govnotice.Summarizer = (*Summarizer)(nil)

// Summarizer implements govnotice.Summarizer using Google Gemini.
// Callers are expected to degrade to govnotice.FallbackSummary when
// Summarize returns an error; Summarizer itself never retries.
type Summarizer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Summarizer) {
		s.timeout = d
	}
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel.
func NewSummarizer(client *genai.Client, model string, opts ...Option) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	s := &Summarizer{client: client, model: model, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize returns a short plain-language summary of a notification.
func (s *Summarizer) Summarize(ctx context.Context, title, content string) (string, error) {
	if content == "" {
		return "", govnotice.Errorf(govnotice.EINVALID, "content required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := BuildPrompt(title, content)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", govnotice.Errorf(govnotice.EINTERNAL, "gemini returned nil result")
	}

	summary := strings.TrimSpace(result.Text())
	if summary == "" {
		return "", govnotice.Errorf(govnotice.EINTERNAL, "gemini returned empty summary")
	}
	return summary, nil
}

// BuildConfig returns the GenerateContentConfig for summarization calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(temperature)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize government notifications for the general public in plain language.",
			}},
		},
		Temperature:     &temp,
		MaxOutputTokens: maxOutputTokens,
	}
}

// BuildPrompt builds the user prompt for one notification.
func BuildPrompt(title, content string) string {
	var sb strings.Builder
	sb.WriteString("Provide a 2-3 sentence plain-language summary of this government notification:\n\n")
	fmt.Fprintf(&sb, "Title: %s\n", title)
	fmt.Fprintf(&sb, "Content: %s\n\n", content)
	sb.WriteString("The summary should:\n")
	sb.WriteString("- Be easy to understand for the general public\n")
	sb.WriteString("- Highlight key actions or deadlines\n")
	sb.WriteString("- Mention who is affected\n")
	sb.WriteString("- Stay concise and actionable")
	return sb.String()
}
