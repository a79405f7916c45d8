package sentinel

import (
	"errors"
	"fmt"
)

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors with reason codes.
//
//   - ErrNotFound: record does not exist in the store
//   - ErrConflict: a uniqueness or exclusion constraint rejected the write
//   - ErrInUse: a delete was blocked by rows that still reference the record;
//     it matches ErrConflict too
//   - ErrUnavailable: backing service unreachable (fail closed on access checks)
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
	ErrInUse       = fmt.Errorf("%w: still referenced", ErrConflict)
)
