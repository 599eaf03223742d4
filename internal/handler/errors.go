package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s in path"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Operation error messages
	ErrMsgComputeStrategyFailed = "Failed to compute strategy"
	ErrMsgListProfilesFailed    = "Failed to list profiles"
	ErrMsgLoadProfileFailed     = "Failed to load profile"
	ErrMsgSaveProfileFailed     = "Failed to save profile"
	ErrMsgDeleteProfileFailed   = "Failed to delete profile"
	ErrMsgExportProfileFailed   = "Failed to export profile"
	ErrMsgImportProfileFailed   = "Failed to import profile"
	ErrMsgReadImportFailed      = "Failed to read profile document"
	ErrMsgGetSettingsFailed     = "Failed to load settings"
	ErrMsgSaveSettingsFailed    = "Failed to save settings"
	ErrMsgSetQuantityFailed     = "Failed to update quantity"
	ErrMsgToggleExclusionFailed = "Failed to toggle exclusion"
	ErrMsgSetObjectiveFailed    = "Failed to change objective"
	ErrMsgValueFailed           = "Failed to value inventory"
	ErrMsgUpgradesFailed        = "Failed to plan upgrades"
	ErrMsgShopFailed            = "Failed to list shop"
	ErrMsgMergeLookupFailed     = "Failed to look up merge requirement"
)

// Success messages for API responses
const (
	MsgProfileSavedSuccess    = "Profile saved"
	MsgProfileDeletedSuccess  = "Profile deleted"
	MsgProfileImportedSuccess = "Profile imported"
	MsgSettingsSavedSuccess   = "Settings saved"
)

// Log messages
const (
	LogMsgRequestDecoded    = "%s request decoded"
	LogMsgDecodeFailed      = "Failed to decode %s request"
	LogMsgServiceError      = "Service error"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgStrategyComputed  = "Strategy computed"
	LogMsgProfileExported   = "Profile exported"
	LogMsgCatalogRequested  = "Catalog requested"
	LogMsgSuggestRequested  = "Catalog suggestions requested"
	LogMsgShopListed        = "Shop listed"
	LogMsgQuantityRequested = "Quantity update requested"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthStatusDegraded    = "degraded"

	HealthMsgDatabaseDown    = "database connection failed"
	HealthMsgCatalogFallback = "catalog data missing, built-in catalog in use"
)
