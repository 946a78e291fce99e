package services

import (
	portsrepo "github.com/healthpredictor/health_predictor_app/internal/core/ports/repositories"
	portssvc "github.com/healthpredictor/health_predictor_app/internal/core/ports/services"
	"github.com/healthpredictor/health_predictor_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The completion client is constructed by the
// caller so it can be substituted in tests.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, llm portssvc.CompletionClient) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Report = NewReportService(cfg, llm)

	return container
}
