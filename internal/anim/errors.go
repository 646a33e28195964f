package anim

import "errors"

// ErrRunning is returned by Start when the driver already has a live loop.
var ErrRunning = errors.New("anim: driver already running")
