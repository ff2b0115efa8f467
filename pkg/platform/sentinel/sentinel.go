package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
//   - ErrNotFound: record does not exist in the store
//   - ErrConflict: insert would violate a store uniqueness invariant
//
// For validation failures (bad input, missing fields), use pkg/apperrors.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
