package domain

import "errors"

// Sentinel errors shared by services and adapters.
var (
	ErrHubNotFound  = errors.New("hub not found")
	ErrLinkNotFound = errors.New("link not found")
	ErrSlugTaken    = errors.New("hub with this slug already exists")
	ErrForbidden    = errors.New("not authorized")
	ErrInvalidInput = errors.New("invalid input")

	// Rule authoring errors.
	ErrInvalidRule        = errors.New("invalid rule")
	ErrDuplicateRule      = errors.New("duplicate rule")
	ErrConflictingRules   = errors.New("conflicting rules")
	ErrOverlappingDevices = errors.New("redundant or conflicting device rule")
)
