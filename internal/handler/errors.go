package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPlayerID       = "Missing player ID"
	ErrMsgNoOfflineChanges      = "Nothing to update: set enabled or mine_id"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
)

// Log messages shared by handlers
const (
	LogMsgServiceCallFailed = "Service call failed"
)
