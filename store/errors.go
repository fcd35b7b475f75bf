package store

import (
	"errors"
	"fmt"
)

var (
	ErrConfigNotFound = errors.New("config not found")
	ErrStatsNotFound  = errors.New("stats not found")
	ErrUserExists     = errors.New("user already exists")
	ErrUserNotFound   = errors.New("user not found")
)

// DuplicateSourceError reports a config creation that lost to an existing
// config for the same source hostname. It carries the existing config's id
// so the API can point the caller at it.
type DuplicateSourceError struct {
	Source       string
	ExistingUUID string
}

func (e *DuplicateSourceError) Error() string {
	return fmt.Sprintf("config for source %q already exists (uuid %s)", e.Source, e.ExistingUUID)
}
