package services

// ServiceContainer holds all the service facades used by the HTTP layer.
type ServiceContainer struct {
	ExchangeRateSvc ExchangeRateSvcFacade
	ExpenseSvc      ExpenseSvcFacade
	IncomeSvc       IncomeSvcFacade
	DashboardSvc    DashboardSvcFacade
	SettingsSvc     SettingsSvcFacade
	UserSvc         UserSvcFacade
	PreferencesSvc  PreferencesSvcFacade
	TokenSvc        TokenSvcFacade
	GoogleOAuthSvc  GoogleOAuthHandlerSvcFacade
}
