package catalog

import "errors"

// ErrNotFound is returned for ids outside the catalog.
var ErrNotFound = errors.New("catalog: problem not found")
