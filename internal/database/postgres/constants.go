package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Inventory Constants
const (
	// EmptyInventoryJSON is the default JSON structure for a new/empty inventory
	EmptyInventoryJSON = `{"slots": []}`
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToInsertPlayer    = "failed to insert player"
	ErrMsgFailedToGetPlayer       = "failed to get player"
	ErrMsgFailedToLockPlayer      = "failed to lock player"
	ErrMsgFailedToUpdatePlayer    = "failed to update player"
	ErrMsgFailedToMarshalPlayer   = "failed to marshal player state"
	ErrMsgFailedToUnmarshalPlayer = "failed to unmarshal player state"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToGetItemByName = "failed to get item by name"
	ErrMsgFailedToGetItemByID   = "failed to get item by id"
	ErrMsgFailedToListItems     = "failed to list items"
	ErrMsgFailedToDecodeStats   = "failed to decode item stats"
)
