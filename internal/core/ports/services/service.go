package services

// ServiceContainer aggregates the service facades handed to the HTTP layer.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Report      ReportSvcFacade
}
