package domain

import "time"

// WorkflowState tracks how far a signature-completion job has advanced.
// A job that fails mid-flight keeps its last reached state; each step is
// independently re-runnable, so a retry simply walks the states again.
type WorkflowState string

const (
	StatePending           WorkflowState = "pending"
	StateLockAcquired      WorkflowState = "lock_acquired"
	StateSignatureInserted WorkflowState = "signature_inserted"
	StateSnapshotGenerated WorkflowState = "snapshot_generated"
	StateCleaned           WorkflowState = "cleaned"
	StateNotified          WorkflowState = "notified"
)

// WorkflowJob is an ephemeral in-flight signature completion. It exists only
// for the duration of lock possession and is never persisted.
type WorkflowJob struct {
	StoreRef  string
	Row       int
	Role      SignatureRole
	State     WorkflowState
	StartedAt time.Time
}

// WorksheetInfo describes one worksheet (tab) of a spreadsheet.
type WorksheetInfo struct {
	ID    int64
	Title string
	Index int64
}

// Snapshot is an exported, immutable PDF artifact representing a document's
// state at signing time. At most one non-trashed snapshot should exist per
// resolved worksheet name; eviction is best-effort scan-and-trash.
type Snapshot struct {
	FileID    string
	Name      string
	CreatedAt time.Time
}

// BoardEntry is the cross-reference row appended to a downstream board
// spreadsheet when a signature completes.
type BoardEntry struct {
	Timestamp      time.Time
	DocumentLabel  string
	SourceValues   []string
	SourceRow      int
	SnapshotFileID string
	SignerValue    string
	ActionURL      string
}
