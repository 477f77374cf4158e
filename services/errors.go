package services

import "errors"

var (
	// ErrOperationInFlight rejects a mutating request while the session is
	// already running one. Mapped to HTTP 409.
	ErrOperationInFlight = errors.New("another operation is already running for this session")

	// ErrNoDraft means the session has no active draft to operate on.
	ErrNoDraft = errors.New("no active draft in this session")

	// ErrUnknownTopic means the given topic id is not in the session's
	// current trend list.
	ErrUnknownTopic = errors.New("unknown topic id")

	// ErrUnknownDraft means the given draft id is not among the session's
	// generated variations.
	ErrUnknownDraft = errors.New("unknown draft id")

	// ErrInvalidStyle rejects a style outside the known set.
	ErrInvalidStyle = errors.New("invalid blog style")

	// ErrInvalidImageSlot rejects an image edit aimed at a slot the draft
	// does not have.
	ErrInvalidImageSlot = errors.New("invalid image slot")

	// ErrAllVariationsFailed means none of the parallel style variations
	// produced a draft.
	ErrAllVariationsFailed = errors.New("all style variations failed")

	// ErrSettingsMissing means the session has not configured a target blog.
	ErrSettingsMissing = errors.New("publisher settings are not configured")
)
