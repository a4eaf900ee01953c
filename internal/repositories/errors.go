package repositories

import "errors"

// Sentinel errors shared by all repository implementations. GORM-specific
// errors are translated into these at the repository boundary so that
// services and handlers can use errors.Is without importing gorm.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("duplicate record")
)
