// Package models pins the physical worksheet layouts the repositories map
// rows against. All column constants are 0-based offsets into a row slice
// unless suffixed Col1, which are 1-based sheet column numbers.
package models

// Members worksheet: one row per registered user.
const (
	MembersSheetTitle = "Members"
	MembersReadRange  = MembersSheetTitle + "!A:G"

	MemberColEmployeeCode = 0
	MemberColName         = 1
	MemberColStoreRef     = 2
	MemberColLoginID      = 3
	MemberColEmail        = 4
	MemberColJoinDate     = 5
	MemberColCredHash     = 6
)

// MembersHeader is written once when the worksheet is lazily provisioned.
var MembersHeader = []string{
	"Employee Code", "Name", "Personal Spreadsheet ID", "Login ID", "Email", "Join Date", "Password Hash",
}

// Document worksheet: one row per pending approval in a personal spreadsheet.
const (
	DocumentsReadRange = "A:P"

	DocColDate        = 0
	DocColTitle       = 1
	DocColAuthor      = 2
	DocColContent     = 3
	DocColLeaderSig   = 7
	DocColReviewerSig = 8
	DocColApproverSig = 9
	DocColCompleted   = 11
	DocColLink        = 14
	DocColKey         = 15

	// DocCompletedCol1 is the completion-flag column as written back ("L5").
	DocCompletedCol1 = "L"
	// DocKeyCol1 is the hidden surrogate-key column.
	DocKeyCol1 = "P"

	// DocCompletedColNumber is the 1-based completion column sent in webhook
	// payloads.
	DocCompletedColNumber = 12
)

// Directory worksheet: shared mapping table (name, spreadsheet id, script id,
// webhook URL). Maintained by an external admin process; read-only here.
const (
	DirectorySheetTitle = "Directory"
	DirectoryReadRange  = DirectorySheetTitle + "!A:E"

	DirColEntryID    = 0
	DirColName       = 1
	DirColStoreRef   = 2
	DirColScriptID   = 3
	DirColWebhookURL = 4
)

// SignatureAssets worksheet: name → signature asset reference.
const (
	SignatureSheetTitle = "SignatureAssets"
	SignatureReadRange  = SignatureSheetTitle + "!A:B"

	SigColName  = 0
	SigColAsset = 1
)

// Data worksheet layout used by the signature workflow. Column numbers are
// 1-based sheet columns.
const (
	DataSheetTitle = "Ledger"

	DataColTimestamp1  = 1
	DataColProduct1    = 3
	DataColWeight1     = 5
	DataColBoardCopy1  = 6
	DataColExpiry1     = 8
	DataColLot1        = 9
	DataColLine1       = 12
	DataColUniqueName1 = 15

	// Working worksheets log progress timestamps in column M starting at row
	// 10; rows above hold the copied template header.
	WorkLogColumn      = "M"
	WorkLogFirstRow    = 10
	TemplateSheetTitle = "Template"
)

// Board spreadsheet layout for appended completion entries (1-based columns).
const (
	BoardColTimestamp1 = 1
	BoardColSigner1    = 8
	BoardColSourceRow1 = 11
	BoardColCheckbox1  = 12
	BoardColAction1    = 13
	BoardColSnapshot1  = 15
)

// RoleColumns maps a signature role to its (name, signature) 1-based columns
// on the data worksheet.
type RoleColumns struct {
	Name      int
	Signature int
}
