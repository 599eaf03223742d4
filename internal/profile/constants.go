package profile

// MaxProfileNameLength bounds profile names, matching the storage key column
const MaxProfileNameLength = 100

// Log messages
const (
	LogMsgProfileLoaded          = "Profile loaded"
	LogMsgProfileCreated         = "Profile not stored yet, starting empty"
	LogMsgProfileSaved           = "Profile saved"
	LogMsgProfileDeleted         = "Profile deleted"
	LogMsgProfileImported        = "Profile imported"
	LogMsgFailedToUpdateSettings = "Failed to remember last opened profile"
)

// Error formats
const (
	ErrFmtNameTooLong   = "%w: longer than %d characters"
	ErrFmtNameEmpty     = "%w: name is empty"
	ErrFmtNameBadChars  = "%w: %q contains control characters or slashes"
	ErrFmtDecodeProfile = "%w: %v"
)
