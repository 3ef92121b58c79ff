package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Classification
	ErrMsgValidation = "validation failed"
	ErrMsgNotFound   = "not found"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgUsernameTaken  = "username already taken"

	// Item errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgNotInInventory  = "item not in inventory"
	ErrMsgNotEquippable   = "item cannot be equipped"
	ErrMsgInvalidQuantity = "quantity must be positive"

	// Equipment errors
	ErrMsgInvalidEquipmentSlot = "invalid equipment slot"
	ErrMsgSlotEmpty            = "equipment slot is empty"

	// Mining errors
	ErrMsgUnknownMine          = "unknown mine"
	ErrMsgLevelTooLow          = "level too low"
	ErrMsgInsufficientStamina  = "insufficient stamina"
	ErrMsgAlreadyMining        = "already mining"
	ErrMsgNotMining            = "not mining"
	ErrMsgOfflineMineNotChosen = "offline mine not configured"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Error kinds. Every domain error below belongs to exactly one kind, so callers
// can branch with errors.Is(err, domain.ErrValidation) without listing sentinels.
var (
	// ErrValidation marks caller-correctable failures (bad input, unmet precondition).
	ErrValidation = errors.New(ErrMsgValidation)
	// ErrNotFound marks references to things that do not exist.
	ErrNotFound = errors.New(ErrMsgNotFound)
)

// kindError is a sentinel that also matches its kind through errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

func newValidationError(msg string) error { return &kindError{kind: ErrValidation, msg: msg} }

func newNotFoundError(msg string) error { return &kindError{kind: ErrNotFound, msg: msg} }

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Not found
	ErrPlayerNotFound   = newNotFoundError(ErrMsgPlayerNotFound)
	ErrItemNotFound     = newNotFoundError(ErrMsgItemNotFound)
	ErrNotInInventory   = newNotFoundError(ErrMsgNotInInventory)

	// Player and inventory
	ErrUsernameTaken    = newValidationError(ErrMsgUsernameTaken)
	ErrInvalidQuantity  = newValidationError(ErrMsgInvalidQuantity)
	ErrNotEquippable    = newValidationError(ErrMsgNotEquippable)
	ErrInvalidEquipSlot = newValidationError(ErrMsgInvalidEquipmentSlot)
	ErrSlotEmpty        = newValidationError(ErrMsgSlotEmpty)

	// Mining
	ErrUnknownMine          = newValidationError(ErrMsgUnknownMine)
	ErrLevelTooLow          = newValidationError(ErrMsgLevelTooLow)
	ErrInsufficientStamina  = newValidationError(ErrMsgInsufficientStamina)
	ErrAlreadyMining        = newValidationError(ErrMsgAlreadyMining)
	ErrNotMining            = newValidationError(ErrMsgNotMining)
	ErrOfflineMineNotChosen = newValidationError(ErrMsgOfflineMineNotChosen)
)

// IsValidation reports whether err is a caller-correctable failure.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err refers to a missing entity.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
