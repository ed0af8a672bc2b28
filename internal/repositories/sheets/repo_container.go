package sheets

import (
	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
	"github.com/jyoo0515/docuflow/internal/imageref"
)

// NewRepositoryProvider wires the sheet-backed repositories over one store
// client. The snapshot store is provided separately because it talks to
// Drive, not Sheets.
func NewRepositoryProvider(
	store portsrepo.TabularStore,
	snapshots portsrepo.SnapshotStore,
	extractor *imageref.Extractor,
	mainStoreRef string,
	dataStoreRef string,
) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:     NewUserRepository(store, mainStoreRef),
		DocumentRepo: NewDocumentRepository(store, extractor),
		LookupRepo:   NewLookupRepository(store, mainStoreRef, dataStoreRef),
		BoardRepo:    NewBoardRepository(store),
		WorkflowRepo: NewWorkflowRepository(store, dataStoreRef),
		Snapshots:    snapshots,
	}
}
