package services

import (
	"context"

	"github.com/healthpredictor/health_predictor_app/internal/core/domain"
)

// CompletionClient is the outbound port for the external LLM completion API.
// Implementations return the primary message content of the response, or the
// serialized response body when no message content is present.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ReportSvcFacade turns submitted health metrics into a structured report
// via the external completion API.
type ReportSvcFacade interface {
	// GenerateReport builds the prompt, invokes the completion API and
	// extracts the report object from whatever text comes back.
	// Returns apperrors.ErrLLMNotConfigured when no API credential is set
	// and *apperrors.UpstreamFormatError when no JSON object can be
	// extracted from the response. Failures are terminal; nothing retries.
	GenerateReport(ctx context.Context, metrics domain.HealthMetrics) (*domain.HealthReport, error)
}
