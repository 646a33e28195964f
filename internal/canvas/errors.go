package canvas

import "errors"

// ErrNoSurface indicates a drawing surface could not be acquired.
var ErrNoSurface = errors.New("canvas: surface unavailable")
