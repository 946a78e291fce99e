package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/healthpredictor/health_predictor_app/internal/apperrors"
	"github.com/healthpredictor/health_predictor_app/internal/core/domain"
	portssvc "github.com/healthpredictor/health_predictor_app/internal/core/ports/services"
	"github.com/healthpredictor/health_predictor_app/internal/platform/config"
	"github.com/healthpredictor/health_predictor_app/internal/utils"
)

// reportService implements ReportSvcFacade. The upstream completion API is
// treated as an untrusted text source: a network error, non-2xx response or
// unparsable payload fails the request outright. No retries, no fallback
// content.
type reportService struct {
	cfg *config.Config
	llm portssvc.CompletionClient
}

// NewReportService creates a new instance of reportService.
func NewReportService(cfg *config.Config, llm portssvc.CompletionClient) portssvc.ReportSvcFacade {
	return &reportService{cfg: cfg, llm: llm}
}

const reportPromptTemplate = `You are a preventive health assistant. A user submitted today's self-reported metrics:

- Posture: %s
- Screen time today: %v hours
- Last meal: %v hours ago
- Last water intake: %v minutes ago
- Last night's sleep: %v hours
- Sleep quality (1-5): %d
- Screen time before bed: %v minutes

Respond with ONLY a JSON object, no surrounding text, using exactly this schema:
{
  "alerts": {"<category>": {"level": "Risk|Moderate|Good", "message": "<one sentence>"}},
  "generalizedTips": ["<tip>", ...],
  "nearFutureRisks": {"<risk category>": "<one-sentence projection>"},
  "potentialFutureDiseases": ["<condition>", ...],
  "quickFixes": ["<immediate action>", ...]
}`

func buildReportPrompt(m domain.HealthMetrics) string {
	return fmt.Sprintf(reportPromptTemplate,
		m.Posture,
		m.ScreenTime,
		m.LastMeal,
		m.LastWater,
		m.LastNightSleep,
		m.QualitySleep,
		m.ScreenTimeBeforeBed,
	)
}

// GenerateReport builds the prompt, invokes the completion API and extracts
// the report object from whatever text the model returned.
func (s *reportService) GenerateReport(ctx context.Context, metrics domain.HealthMetrics) (*domain.HealthReport, error) {
	if s.llm == nil || s.cfg.GeminiAPIKey == "" {
		return nil, apperrors.ErrLLMNotConfigured
	}

	content, err := s.llm.Complete(ctx, buildReportPrompt(metrics))
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	raw, err := utils.ExtractJSONObject(content)
	if err != nil {
		return nil, &apperrors.UpstreamFormatError{ParseErr: err, Raw: content}
	}

	var report domain.HealthReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, &apperrors.UpstreamFormatError{ParseErr: err, Raw: content}
	}

	return &report, nil
}
