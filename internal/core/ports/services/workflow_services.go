package services

import "context"

// Workflow entry point statuses. The entry point always returns one of these
// short strings; no structured error object crosses the boundary.
const (
	StatusSuccess     = "success"
	StatusBusy        = "busy - try again later"
	StatusParamErr    = "param err"
	StatusInvalidRole = "invalid role"
)

// SubmissionStatus is the lifecycle state reported by the form intake.
type SubmissionStatus string

const (
	SubmissionWorkStarted SubmissionStatus = "work_started"
	SubmissionInProgress  SubmissionStatus = "in_progress"
	SubmissionCompleted   SubmissionStatus = "completed"
)

// SignatureWorkflowSvc runs signature-completion jobs against the data
// spreadsheet it is bound to.
type SignatureWorkflowSvc interface {
	// Complete runs one signature-completion job for (role, row) and returns
	// a short status string: StatusSuccess, StatusBusy, StatusParamErr,
	// StatusInvalidRole or "error: <message>".
	Complete(ctx context.Context, role string, row int) string

	// RegisterSubmission reacts to a form submission for the given row:
	// provisioning the working worksheet, logging progress timestamps, or
	// pushing the completion entry to the leader's board.
	RegisterSubmission(ctx context.Context, row int, status SubmissionStatus) error
}

// NotificationSvc resolves and delivers board webhook callbacks.
type NotificationSvc interface {
	// NotifyCompletion posts the completion callback for a signed row.
	// Failures are logged and swallowed; the returned error is always nil
	// unless the signer could not even be resolved.
	NotifyCompletion(ctx context.Context, storeRef string, rowNumber int) error
}
