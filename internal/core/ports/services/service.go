package services

// ServiceContainer bundles the service implementations wired at startup and
// handed to the HTTP handlers.
type ServiceContainer struct {
	User         UserSvcFacade
	Document     DocumentSvcFacade
	Workflow     SignatureWorkflowSvc
	Notification NotificationSvc
}
