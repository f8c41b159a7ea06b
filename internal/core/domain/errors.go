package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedKind indicates an unknown content kind.
	ErrUnsupportedKind = errors.New("unsupported content kind")

	// ErrUnknownBlock indicates a rich-text block type the renderer cannot map.
	// Only returned in strict mode; otherwise the block degrades to plain text.
	ErrUnknownBlock = errors.New("unknown block type")

	// ErrSessionNotFound indicates a listing session id is unknown or closed.
	ErrSessionNotFound = errors.New("listing session not found")

	// ErrUnknownAction indicates a listing transition that does not exist.
	ErrUnknownAction = errors.New("unknown listing action")

	// ErrStoreUnavailable indicates the content store could not be reached.
	ErrStoreUnavailable = errors.New("content store unavailable")

	// ErrClipboardUnavailable indicates the system clipboard cannot be used.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrRateLimited indicates the content API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
