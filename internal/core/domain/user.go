package domain

// User represents a registered member stored as a row of the members worksheet.
// EmployeeCode is a generated sequential code (EMP + 6-digit suffix) and is
// unique across the member table. CredentialHash and PersonalStoreRef may be
// set after creation: the personal spreadsheet is lazy-linked by name lookup
// on first login.
type User struct {
	EmployeeCode     string
	Name             string
	LoginID          string
	Email            string
	JoinDate         string
	CredentialHash   string
	PersonalStoreRef string
}
