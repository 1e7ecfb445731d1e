// Package insight produces a free-text executive summary of a project via a
// generative model. Every failure is absorbed at this boundary: callers
// always get displayable text, never an error.
package insight

import (
	"context"
	"errors"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
	"github.com/zakarianasim073/construction-project-monitoring/internal/llm"
)

// Canned texts returned when no insight can be generated.
const (
	FallbackNoKey    = "API Key missing. Cannot generate insights."
	FallbackFailed   = "Failed to generate insights. Please check API configuration."
	FallbackNoOutput = "No insights generated."
)

// Service generates project insight summaries.
type Service interface {
	// ProjectInsights returns Markdown text about the project's health.
	// It never fails; transport and API errors yield fallback text.
	ProjectInsights(ctx context.Context, p *domain.Project) string
}

type service struct {
	client llm.Client
}

// NewService creates a Service backed by a generation client.
func NewService(client llm.Client) Service {
	return &service{client: client}
}

func (s *service) ProjectInsights(ctx context.Context, p *domain.Project) string {
	if s.client == nil {
		return FallbackNoKey
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{Prompt: buildPrompt(p)})
	if err != nil {
		if errors.Is(err, llm.ErrNoAPIKey) {
			return FallbackNoKey
		}
		return FallbackFailed
	}
	if resp.Text == "" {
		return FallbackNoOutput
	}
	return resp.Text
}
