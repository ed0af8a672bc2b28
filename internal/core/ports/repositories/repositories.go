package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container at startup.
type RepositoryProvider struct {
	UserRepo     UserRepositoryFacade
	DocumentRepo DocumentRepositoryFacade
	LookupRepo   LookupRepository
	BoardRepo    BoardRepository
	WorkflowRepo WorkflowRepository
	Snapshots    SnapshotStore
}
