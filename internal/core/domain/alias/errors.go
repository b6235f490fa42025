package alias

import "errors"

// ErrInvalidArgument is returned when an alias or destination is empty after trimming.
var ErrInvalidArgument = errors.New("invalid argument: alias and destination must not be empty")

// ErrStorageUnavailable is returned when the durable backend cannot be opened or written.
var ErrStorageUnavailable = errors.New("alias storage unavailable")
