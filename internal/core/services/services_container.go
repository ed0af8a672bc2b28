package services

import (
	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
	portssvc "github.com/jyoo0515/docuflow/internal/core/ports/services"

	"github.com/jyoo0515/docuflow/internal/locking"
	"github.com/jyoo0515/docuflow/internal/platform/config"
	"github.com/jyoo0515/docuflow/internal/utils"
)

// NewServiceContainer wires the service implementations over the repository
// provider and shared infrastructure.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, lock *locking.KeyedLock, posthog *utils.PosthogClientWrapper) *portssvc.ServiceContainer {
	notification := NewNotificationService(repos.UserRepo, repos.LookupRepo)
	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo, repos.LookupRepo),
		Document:     NewDocumentService(repos.DocumentRepo, notification, posthog),
		Workflow: NewSignatureWorkflowService(
			repos.WorkflowRepo,
			repos.LookupRepo,
			repos.BoardRepo,
			repos.Snapshots,
			lock,
			cfg.LockWaitDuration,
			cfg.PdfFolderID,
			cfg.ScriptID,
			cfg.DocumentLabel,
		),
		Notification: notification,
	}
}
