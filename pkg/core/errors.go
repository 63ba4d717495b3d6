package core

import "errors"

// ErrZeroVector is returned when a direction has no length to normalize by
var ErrZeroVector = errors.New("core: zero-length vector")
