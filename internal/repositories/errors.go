package repositories

import "errors"

// ErrNotFound is wrapped by every repository when the requested record does
// not exist, so callers can match with errors.Is instead of inspecting
// messages.
var ErrNotFound = errors.New("record not found")
